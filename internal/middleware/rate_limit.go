package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/noah-isme/school-admin-api/internal/utils"
)

// RateLimitConfig bounds how often a single client may hit a route.
type RateLimitConfig struct {
	// Name namespaces the counters so several limiters can share one storage.
	Name   string
	Max    int
	Window time.Duration
	// Storage keeps counters; nil uses fiber's in-memory store.
	Storage fiber.Storage
}

// RateLimit throttles a route per client IP and answers 429 once the budget is spent.
func RateLimit(cfg RateLimitConfig) fiber.Handler {
	if cfg.Max <= 0 {
		cfg.Max = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	prefix := cfg.Name + ":"

	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		Storage:    cfg.Storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(cfg.Window.Seconds())))
			return utils.SendError(c, fiber.StatusTooManyRequests, "Too many requests")
		},
	})
}
