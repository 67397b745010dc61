package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Dan9191/unidash/internal/session"
	"github.com/gorilla/mux"
)

// Authorizer turns a bearer token into a session.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (session.Session, error)
}

// AuthMiddleware binds a session to every request. In single-user mode each
// request runs as the local user and no token is needed; otherwise a valid
// "Authorization: Bearer <jwt>" header is required.
func AuthMiddleware(auth Authorizer, singleUser bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if singleUser {
				next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), session.Local())))
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				unauthorized(w, "missing bearer token")
				return
			}
			sess, err := auth.Authorize(r.Context(), strings.TrimSpace(token))
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
