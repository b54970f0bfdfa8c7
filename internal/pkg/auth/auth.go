package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pustakdhaan/internal/models"
)

// contextKey is a custom type used for storing values in a context without risking collisions.
type contextKey string

// ContextIdentity is the key used to store and retrieve the caller identity from the request context.
const ContextIdentity contextKey = "contextIdentity"

// CheckJWTMiddleware is an HTTP middleware function that validates the Authorization header of incoming requests.
// A missing credential is answered with 401; a credential that is present but cannot be
// verified (bad signature, expired, no identity) is answered with 403.
// On success the caller identity is stored in the request context.
func CheckJWTMiddleware() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeErrorResponse(w, "access denied: no token provided", http.StatusUnauthorized)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(token) == "" {
				writeErrorResponse(w, "access denied: no token provided", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(strings.TrimSpace(token))
			if err != nil {
				writeErrorResponse(w, "invalid token", http.StatusForbidden)
				return
			}

			ctx := WithIdentity(r.Context(), claims.Identity())
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, ContextIdentity, identity)
}

// IdentityFromContext returns the identity stored by CheckJWTMiddleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(ContextIdentity).(models.Identity)
	return identity, ok
}

// writeErrorResponse writes a JSON-formatted error response to the HTTP response writer.
func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
