package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info

	if info.Title != "Reading Display API" {
		t.Errorf("API title = %s, want Reading Display API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestNewAPI_ServesOpenAPISpec(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /openapi.json = %d, want 200", rec.Code)
	}
}

func TestNewAPIWithMiddleware_AppliesRateLimit(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("First request = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest("GET", "/openapi.json", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Second request = %d, want 429", rec.Code)
	}
}

func TestNewAPIWithMiddleware_SetsCORSHeaders(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{})

	req := httptest.NewRequest("OPTIONS", "/display-data", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("CORS headers not set on preflight response")
	}
}
