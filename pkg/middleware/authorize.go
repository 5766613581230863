package middleware

import (
	"log/slog"
	"net/http"

	"cardoctor/internal/metrics"
	"cardoctor/pkg/claims"
)

const msgForbidden = "Forbidden Access"

// Authorize compares the verified email with the query parameter param.
// It must run behind CheckJWT.
//
// A mismatch is rejected with 403. A match grants a Scope that handlers use
// as their filter. Without the parameter no Scope is set and the handler
// runs unfiltered for any valid token holder.
func Authorize(param string, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := claims.FromContext(r.Context())
			if !ok {
				m.Gate(metrics.OutcomeMissing)
				writeMessage(w, logger, http.StatusUnauthorized, msgNoToken)
				return
			}

			query := r.URL.Query()
			if !query.Has(param) {
				m.Authz(metrics.OutcomeUnscoped)
				next.ServeHTTP(w, r)
				return
			}

			requested := query.Get(param)
			if requested != c.Email {
				m.Authz(metrics.OutcomeForbidden)
				logger.Warn("authorization failed",
					"request_id", RequestIDFromContext(r.Context()),
					"token_owner", c.Email,
					"requested", requested,
				)
				writeMessage(w, logger, http.StatusForbidden, msgForbidden)
				return
			}

			m.Authz(metrics.OutcomeScoped)
			ctx := claims.WithScope(r.Context(), claims.Scope{Email: c.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
