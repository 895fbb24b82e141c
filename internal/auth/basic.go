package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// Verifier checks a username/password pair. *Htpasswd implements it.
type Verifier interface {
	Verify(user, password string) bool
}

type userKey struct{}

// UserFromContext returns the username the gate authenticated, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(userKey{}).(string)
	return user, ok
}

// Basic wraps next so it only runs after the request's HTTP Basic
// credentials are verified. Missing or invalid credentials get a 401
// with a WWW-Authenticate challenge and next is never called.
//
// The check is stateless: every request is verified on its own.
func Basic(realm string, verifier Verifier, next http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok || !verifier.Verify(user, password) {
			slog.Info("basic auth rejected",
				slog.String("path", r.URL.Path),
				slog.Bool("credentials_present", ok))

			w.Header().Set("WWW-Authenticate", challenge)
			http.Error(w, "401 Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}
