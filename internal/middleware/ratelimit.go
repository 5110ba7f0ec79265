package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/domain/dto"
	"golang.org/x/time/rate"
)

// visitor is the token bucket of one client IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token-bucket limiter kept in memory.
// State is per process; a multi-instance deployment needs a shared store.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter allows bursts of limit requests per client IP, refilled
// at limit per window. A limit <= 0 disables limiting.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		window:   window,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// allow takes a token for ip and reports whether one was available.
// Idle visitors are pruned opportunistically so the map does not grow
// without bound.
func (l *RateLimiter) allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) > 1024 {
			for k, old := range l.visitors {
				if now.Sub(old.lastSeen) >= l.window {
					delete(l.visitors, k)
				}
			}
		}
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.window/time.Duration(l.limit)), l.limit)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Handler returns the Gin middleware.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"message": "rate limit exceeded", "timestamp": "..."}
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.limit > 0 && !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
