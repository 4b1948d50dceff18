package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jhoicas/armeria-api/internal/application/dto"
	"golang.org/x/time/rate"
)

// ipRateLimiter token bucket por IP; las IPs inactivas expiran del LRU.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(perMin int) *ipRateLimiter {
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}
	return &ipRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		limit:    rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *ipRateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit limita las peticiones por IP a perMin por minuto. perMin <= 0 lo desactiva.
func RateLimit(perMin int) fiber.Handler {
	if perMin <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	rl := newIPRateLimiter(perMin)
	retryAfter := strconv.Itoa(int((time.Minute / time.Duration(perMin)).Seconds()) + 1)
	return func(c *fiber.Ctx) error {
		if !rl.allow(c.IP()) {
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Error: "demasiadas peticiones"})
		}
		return c.Next()
	}
}
