package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests within the burst", func(t *testing.T) {
		handler := RateLimit(10, 2)(okHandler())

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/channels", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("request %d status = %d, want 200", i, rec.Code)
			}
		}
	})

	t.Run("rejects requests past the burst", func(t *testing.T) {
		handler := RateLimit(0.001, 1)(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/channels", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("first request status = %d, want 200", rec.Code)
		}

		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/channels", nil))
		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("second request status = %d, want 429", rec.Code)
		}
	})
}
