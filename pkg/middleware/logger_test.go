package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardoctor/internal/metrics"
	"cardoctor/pkg/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))
	m := metrics.New()

	var seenID string
	router := mux.NewRouter()
	router.Use(middleware.Logger(log, m))
	router.HandleFunc("/services/{id}", func(w http.ResponseWriter, r *http.Request) {
		seenID = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("generates request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/abc", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, buf.String(), "status=418")
		assert.Contains(t, buf.String(), "url=/services/abc")
		assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/services/abc", nil)
		r.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, "req-42", seenID)
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestPanic(t *testing.T) {
	h := middleware.Panic(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
