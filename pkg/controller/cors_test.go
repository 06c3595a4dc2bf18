package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"foodtrace/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/products/add", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"http://localhost:3000"})(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "PUT")
}

func TestWithCORS_Origins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{name: "listed origin", allowed: []string{"http://a.test"}, origin: "http://a.test", want: "http://a.test"},
		{name: "unlisted origin", allowed: []string{"http://a.test"}, origin: "http://b.test", want: ""},
		{name: "wildcard", allowed: []string{"*"}, origin: "http://b.test", want: "http://b.test"},
		{name: "no origin header", allowed: []string{"*"}, origin: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/product/x", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			controller.WithCORS(tt.allowed)(next).ServeHTTP(rec, req)

			require.Equal(t, http.StatusTeapot, rec.Code)
			require.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
