package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"cardoctor/internal/metrics"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDContextKey contextKey = "request_id"
)

type contextKey string

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// Logger tags every request with an ID and logs it once it has been served.
func Logger(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, requestID)

			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			r = r.WithContext(ctx)

			snoop := httpsnoop.CaptureMetrics(next, w, r)

			route := routeTemplate(r)
			if m != nil {
				m.Requests.
					WithLabelValues(r.Method, route, strconv.Itoa(snoop.Code)).
					Observe(snoop.Duration.Seconds())
			}

			logger.Info("request",
				"request_id", requestID,
				"method", r.Method,
				"url", r.URL.RequestURI(),
				"status", snoop.Code,
				"bytes", snoop.Written,
				"latency", snoop.Duration,
			)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
