package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/domain/dto"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockRentalService{res: exampleResult()}
	r := NewRouter(NewHandler(svc), RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?start=2024-01-01&end=2024-02-15", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.SummaryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Summary == nil || out.Summary.Sum != 300 || len(out.Monthly) != 2 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockRentalService{res: exampleResult()}), RouterOptions{RateLimit: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockRentalService{}), RouterOptions{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/aggregate", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
