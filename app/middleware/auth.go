package middleware

import (
	"context"
	"net/http"
	"strings"

	"devcamper/app/apierr"
	jwtutil "devcamper/app/jwt"
	"devcamper/app/models"
	"devcamper/app/repo"
)

type ctxKey int

const userKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *repo.UserRepository
}

// credential pulls the token from the Authorization header first, the session
// cookie second.
func credential(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}

// RequireAuth verifies the request credential, resolves it to a live user
// record and attaches that record to the request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := credential(r)
		if token == "" {
			writeError(w, apierr.Unauthorized("not authorized to access this route"))
			return
		}
		claims, err := a.Signer.Parse(token)
		if err != nil {
			writeError(w, apierr.Unauthorized("not authorized to access this route"))
			return
		}
		u, err := a.Users.FindByID(claims.UserID)
		if err != nil {
			writeError(w, apierr.Unauthorized("not authorized to access this route"))
			return
		}
		ctx := context.WithValue(r.Context(), userKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole passes only when the authenticated user's role is in the set.
// It must run inside RequireAuth.
func (a *Auth) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := CurrentUser(r.Context())
			if u == nil {
				writeError(w, apierr.Unauthorized("not authorized to access this route"))
				return
			}
			for _, role := range roles {
				if u.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, apierr.Forbidden("user role '%s' is not authorized to access this route", u.Role))
		})
	}
}

func CurrentUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// WithUser is a test hook for exercising handlers below the auth guard.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}
