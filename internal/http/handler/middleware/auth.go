package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const ClaimsKey ctxKey = "claims"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware is the only enforcement point for protected routes, the
// handlers behind it perform no further checks.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// RequireAuth extracts the bearer token from the Authorization header,
// validates it and attaches the decoded claims to the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId, _ := r.Context().Value(RequestIDKey).(string)

		token, ok := bearerToken(r)
		if !ok {
			m.reject(w, "authorization bearer token is required", requestId)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.logs.Errorw("token validation failed",
				"error", err,
				"request_id", requestId)
			m.reject(w, "invalid or expired token", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, detail string, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := map[string]string{
		"message": "Authentication failed",
		"error":   detail,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
