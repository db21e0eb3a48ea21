package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rainbox/internal/auth"
	"rainbox/internal/models"
)

type contextKey string

// subjectKey carries the authenticated auth.Subject through the request context.
const subjectKey contextKey = "subject"

// SubjectFromRequest extracts the authenticated subject placed in the request
// context by the auth middleware.
func SubjectFromRequest(r *http.Request) (auth.Subject, bool) {
	subject, ok := r.Context().Value(subjectKey).(auth.Subject)
	return subject, ok
}

// SubjectID returns the rate-limit key for a request: the authenticated
// subject's user ID. ok is false for unauthenticated requests.
func SubjectID(r *http.Request) (string, bool) {
	subject, ok := SubjectFromRequest(r)
	if !ok {
		return "", false
	}
	return subject.ID, true
}

// authMiddleware resolves the bearer token on every protected request and
// stores the resulting subject in the request context. Missing, malformed,
// invalid, and expired tokens all produce a 401 with a WWW-Authenticate
// challenge.
func authMiddleware(authService Authenticator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, "Not authenticated")
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				writeAuthError(w, "Invalid authorization format")
				return
			}

			subject, err := authService.Resolve(authHeader[len(prefix):])
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					writeAuthError(w, "Access token expired")
					return
				}
				writeAuthError(w, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	errorResp := models.NewErrorResponse(detail, models.ErrorCodeUnauthorized)
	json.NewEncoder(w).Encode(errorResp)
}
