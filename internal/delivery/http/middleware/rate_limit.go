package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"go-careerhub-backend/internal/delivery/http/response"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// How long an idle limiter is kept before cleanup
	IdleExpiry time.Duration
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimit enforces a token-bucket limit per client key, entirely
// in-process. Single-instance deployment means no shared counter store
// is needed.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.IdleExpiry <= 0 {
		cfg.IdleExpiry = 10 * time.Minute
	}

	perSecond := rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds())

	var (
		mu       sync.Mutex
		limiters = make(map[string]*clientLimiter)
	)

	// Periodically drop idle entries so the map does not grow without
	// bound under churning client IPs.
	go func() {
		ticker := time.NewTicker(cfg.IdleExpiry)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			for key, cl := range limiters {
				if time.Since(cl.lastAccess) > cfg.IdleExpiry {
					delete(limiters, key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)

		mu.Lock()
		cl, ok := limiters[key]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(perSecond, cfg.Limit)}
			limiters[key] = cl
		}
		cl.lastAccess = time.Now()
		mu.Unlock()

		if !cl.limiter.Allow() {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
