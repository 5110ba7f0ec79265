package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	RateLimit      int           // requests per minute per client IP, 0 disables
	RequestTimeout time.Duration // per-request context deadline, 0 means 10s
}

// NewRouter creates a Gin engine with middlewares and API v1 routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.NewRateLimiter(opts.RateLimit, time.Minute).Handler(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/summary", handler.GetSummary)
		v1.GET("/dataset", handler.GetDataset)
	}

	return router
}
