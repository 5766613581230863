package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cardoctor/internal/metrics"
	"cardoctor/pkg/claims"
	"cardoctor/pkg/middleware"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withOwner(r *http.Request, email string) *http.Request {
	c := &claims.Claims{Identity: claims.Identity{Email: email}}
	return r.WithContext(claims.WithClaims(r.Context(), c))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		status    int
		called    bool
		scope     string
		outcome   string
		forbidden bool
	}{
		{
			name:    "matching identity",
			url:     "/bookings?email=a@x.com",
			status:  http.StatusOK,
			called:  true,
			scope:   "a@x.com",
			outcome: metrics.OutcomeScoped,
		},
		{
			name:      "different identity",
			url:       "/bookings?email=b@x.com",
			status:    http.StatusForbidden,
			outcome:   metrics.OutcomeForbidden,
			forbidden: true,
		},
		{
			name:      "empty identity",
			url:       "/bookings?email=",
			status:    http.StatusForbidden,
			outcome:   metrics.OutcomeForbidden,
			forbidden: true,
		},
		{
			// any valid token may list everything when the parameter is left out
			name:    "no identity parameter",
			url:     "/bookings",
			status:  http.StatusOK,
			called:  true,
			outcome: metrics.OutcomeUnscoped,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := metrics.New()
			next := &recorder{}

			r := withOwner(httptest.NewRequest(http.MethodGet, test.url, nil), "a@x.com")
			w := httptest.NewRecorder()

			middleware.Authorize("email", logger, m)(next).ServeHTTP(w, r)

			assert.Equal(t, test.status, w.Code)
			assert.Equal(t, test.called, next.called)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthzOutcomes.WithLabelValues(test.outcome)))

			if test.forbidden {
				assert.JSONEq(t, `{"message":"Forbidden Access"}`, w.Body.String())
			}
			if test.scope != "" {
				require.NotNil(t, next.scope)
				assert.Equal(t, test.scope, next.scope.Email)
			} else {
				assert.Nil(t, next.scope)
			}
		})
	}
}

func TestAuthorizeWithoutClaims(t *testing.T) {
	next := &recorder{}
	r := httptest.NewRequest(http.MethodGet, "/bookings?email=a@x.com", nil)
	w := httptest.NewRecorder()

	middleware.Authorize("email", logger, nil)(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, next.called)
}
