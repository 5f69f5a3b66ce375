package middleware

import (
	"encoding/json"
	"net/http"

	"devcamper/app/apierr"
)

// writeError emits the uniform failure envelope for guard rejections, the
// same shape the controller-level normalizer produces.
func writeError(w http.ResponseWriter, e *apierr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": e.Message})
}
