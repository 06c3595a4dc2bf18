package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodtrace/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	l := controller.NewRateLimiter(1, 2, time.Minute)
	now := time.Now()

	require.True(t, l.Allow("1.1.1.1", now))
	require.True(t, l.Allow("1.1.1.1", now))
	require.False(t, l.Allow("1.1.1.1", now), "burst exhausted")
	require.True(t, l.Allow("2.2.2.2", now), "other clients have their own bucket")

	require.True(t, l.Allow("1.1.1.1", now.Add(time.Second)), "bucket refills")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	l := controller.NewRateLimiter(1, 1, time.Minute)
	now := time.Now()

	l.Allow("1.1.1.1", now)
	l.Allow("2.2.2.2", now)
	require.Equal(t, 2, l.Len())

	l.Allow("3.3.3.3", now.Add(2*time.Minute))
	require.Equal(t, 1, l.Len())
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := controller.NewRateLimiter(0.001, 1, time.Minute)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := l.Middleware(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/product/x", nil)
	req.RemoteAddr = "10.0.0.9:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))

	var body controller.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, controller.ErrorBody{Code: "RATE_LIMITED", Detail: "too many requests"}, body)
}
