package controllers

import (
	"encoding/json"
	"net/http"

	"devcamper/app/apierr"
	"devcamper/app/query"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// envelope is the single response body shape every endpoint uses.
type envelope struct {
	Success    bool              `json:"success"`
	Token      string            `json:"token,omitempty"`
	Count      *int64            `json:"count,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Data       any               `json:"data,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// HandlerFunc is an http handler that raises errors instead of writing them;
// Wrap normalizes whatever comes back into the failure envelope.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		e := apierr.Normalize(err)
		if e.Status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		}
		writeJSON(w, e.Status, envelope{Success: false, Error: e.Message})
	}
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondList attaches count and pagination metadata from a translator run.
func respondList(w http.ResponseWriter, data any, res *query.Result) {
	body := envelope{Success: true, Count: &res.Count, Data: data}
	if res.Pagination.Prev != nil || res.Pagination.Next != nil {
		body.Pagination = &res.Pagination
	}
	writeJSON(w, http.StatusOK, body)
}

// bind decodes the JSON body into dst and runs struct validation; failures
// flow to the normalizer as 400s.
func bind(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.BadRequest("invalid request body")
	}
	return validate.Struct(dst)
}
