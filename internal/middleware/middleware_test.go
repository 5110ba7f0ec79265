package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/domain/dto"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		handler gin.HandlerFunc
		want    int
		wantMsg string
	}{
		{name: "plain error", handler: func(c *gin.Context) { _ = c.Error(assertErr{}) }, want: 500, wantMsg: "Internal server error"},
		{name: "dto error", handler: func(c *gin.Context) { _ = c.Error(dto.NewErrorResponse("custom", nil)) }, want: 500, wantMsg: "custom"},
		{name: "already written", handler: func(c *gin.Context) {
			_ = c.Error(assertErr{})
			c.String(http.StatusTeapot, "tea")
		}, want: http.StatusTeapot},
		{name: "no error", handler: func(c *gin.Context) { c.String(200, "ok") }, want: 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler)
			r.GET("/", tc.handler)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != tc.want {
				t.Fatalf("code=%d want %d", w.Code, tc.want)
			}
			if tc.wantMsg != "" {
				var body dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Message != tc.wantMsg {
					t.Fatalf("body=%s err=%v", w.Body.String(), err)
				}
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != 500 {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.ErrorDetails != "boom" {
		t.Fatalf("body=%s err=%v", w.Body.String(), err)
	}
}

func TestRateLimiter(t *testing.T) {
	cases := []struct {
		name   string
		reqs   int
		lim    int
		expect int
	}{
		{name: "within limit", reqs: 2, lim: 3, expect: http.StatusOK},
		{name: "at limit", reqs: 3, lim: 3, expect: http.StatusOK},
		{name: "exceed limit", reqs: 5, lim: 3, expect: http.StatusTooManyRequests},
		{name: "disabled", reqs: 50, lim: 0, expect: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(NewRateLimiter(tc.lim, time.Minute).Handler())
			r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
			var last int
			for i := 0; i < tc.reqs; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
				last = w.Code
			}
			if last != tc.expect {
				t.Fatalf("expected %d, got %d", tc.expect, last)
			}
		})
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	if !l.allow("1.2.3.4") || !l.allow("1.2.3.4") {
		t.Fatalf("burst up to the limit must pass")
	}
	if l.allow("1.2.3.4") {
		t.Fatalf("request beyond the burst must be rejected")
	}
	if !l.allow("5.6.7.8") {
		t.Fatalf("other clients are tracked separately")
	}

	// one token refills every window/limit (30s here)
	now = now.Add(31 * time.Second)
	if !l.allow("1.2.3.4") {
		t.Fatalf("refilled token must pass")
	}
	if l.allow("1.2.3.4") {
		t.Fatalf("only one token refilled after half a window")
	}

	now = now.Add(time.Minute)
	if !l.allow("1.2.3.4") || !l.allow("1.2.3.4") {
		t.Fatalf("full window refills the whole burst")
	}
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	for i := 0; i <= 1024; i++ {
		l.allow(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	now = now.Add(2 * time.Minute)
	l.allow("192.168.0.1")

	if n := len(l.visitors); n != 1 {
		t.Fatalf("expected idle visitors pruned, %d left", n)
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/err", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, "bad stuff", assertErr{})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Message != "bad stuff" || body.ErrorDetails != "boom" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
