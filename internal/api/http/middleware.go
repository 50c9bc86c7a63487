package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/security"
)

// RequestIDMiddleware tags every request with an id for log correlation.
// An inbound X-Request-ID is honored so ids survive proxies.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		logger.Debug("request received",
			"request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware validates the bearer token and places the resolved
// principal in the request context. Handlers never see raw tokens.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, err)
				return
			}

			principal := security.Principal{
				UserID: claims.UserID,
				Role:   domain.UserType(claims.Role),
			}
			next.ServeHTTP(w, r.WithContext(security.ContextWithPrincipal(r.Context(), principal)))
		})
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", domain.ErrUnauthorized
	}
	if len(header) > 7 && strings.EqualFold(header[0:7], "Bearer ") {
		return header[7:], nil
	}
	return header, nil
}
