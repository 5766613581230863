package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"cardoctor/internal/metrics"
	"cardoctor/pkg/claims"
	"cardoctor/pkg/session"
)

const (
	msgNoToken      = "Unauthorized access"
	msgInvalidToken = "Unauthorized Access"
)

// CheckJWT is the session gate. It rejects requests without a valid token
// cookie and otherwise stores the verified claims in the request context.
func CheckJWT(verifier session.Verifier, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				m.Gate(metrics.OutcomeMissing)
				logger.Warn("authentication failed",
					"request_id", RequestIDFromContext(r.Context()),
					"reason", "missing token",
					"path", r.URL.Path,
				)
				writeMessage(w, logger, http.StatusUnauthorized, msgNoToken)
				return
			}

			c, err := verifier.Verify(r.Context(), token)
			if err != nil {
				m.Gate(metrics.OutcomeInvalid)
				reason := "invalid token"
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					reason = "request canceled"
				}
				logger.Warn("authentication failed",
					"request_id", RequestIDFromContext(r.Context()),
					"reason", reason,
					"token", redactToken(token),
					"error", err,
				)
				writeMessage(w, logger, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			m.Gate(metrics.OutcomeOK)
			logger.Debug("authentication succeeded",
				"request_id", RequestIDFromContext(r.Context()),
				"email", c.Email,
			)

			next.ServeHTTP(w, r.WithContext(claims.WithClaims(r.Context(), c)))
		})
	}
}

func redactToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}
