package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-service/internal/config"
)

func TestRateLimiterMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows requests under the rate limit", func(t *testing.T) {
		middleware := NewRateLimiterMiddleware(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2}, logger)
		handler := middleware.Middleware(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("blocks requests exceeding the rate limit", func(t *testing.T) {
		middleware := NewRateLimiterMiddleware(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}, logger)
		handler := middleware.Middleware(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:12345"

		rec1 := httptest.NewRecorder()
		handler.ServeHTTP(rec1, req)
		if rec1.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec1.Code)
		}

		rec2 := httptest.NewRecorder()
		handler.ServeHTTP(rec2, req)
		if rec2.Code != http.StatusTooManyRequests {
			t.Errorf("expected status %d, got %d", http.StatusTooManyRequests, rec2.Code)
		}

		var response map[string]interface{}
		if err := json.NewDecoder(rec2.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response["error"].(map[string]interface{})["message"] != "Rate limit exceeded" {
			t.Errorf("unexpected error message: %v", response)
		}
	})

	t.Run("disabled limiter passes everything through", func(t *testing.T) {
		middleware := NewRateLimiterMiddleware(config.RateLimitConfig{Enabled: false, RPS: 1, Burst: 1}, logger)
		handler := middleware.Middleware(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:12345"

		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("request %d: expected status %d, got %d", i, http.StatusOK, rec.Code)
			}
		}
	})

	t.Run("extractIP handles various headers", func(t *testing.T) {
		middleware := NewRateLimiterMiddleware(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}, logger)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1")
		if ip := middleware.extractIP(req); ip != "192.168.1.1" {
			t.Errorf("expected IP %s, got %s", "192.168.1.1", ip)
		}

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		if ip := middleware.extractIP(req); ip != "10.0.0.1" {
			t.Errorf("expected IP %s, got %s", "10.0.0.1", ip)
		}

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		if ip := middleware.extractIP(req); ip != "127.0.0.1" {
			t.Errorf("expected IP %s, got %s", "127.0.0.1", ip)
		}
	})
}
