package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitRule bounds request throughput per principal.
type RateLimitRule struct {
	Rate  rate.Limit
	Burst int
}

// RateLimiter keeps one token bucket per principal.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rule     RateLimitRule
}

// NewRateLimiter constructs a limiter with the given rule.
func NewRateLimiter(rule RateLimitRule) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rule:     rule,
	}
}

// Allow reports whether the principal may proceed.
func (l *RateLimiter) Allow(key string) bool {
	if l == nil || l.rule.Rate <= 0 || l.rule.Burst <= 0 {
		return true
	}
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rule.Rate, l.rule.Burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

// RateLimit rejects requests exceeding the per-client budget. The provider
// enforces its own limits too; this guard just keeps one client from burning
// the shared credential by hammering the endpoint.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := strings.TrimSpace(ClientIDFromContext(c))
		if principal == "" {
			principal = strings.TrimSpace(c.ClientIP())
		}
		if limiter.Allow(principal) {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "rate_limited",
		})
		c.Abort()
	}
}
