package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/observability"
)

// Observability measures every /api request: Prometheus counters and latency
// keyed by route template, plus one structured log line per request.
func Observability(logger zerolog.Logger) fiber.Handler {
	observability.RegisterMetrics()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			// Write the error response now so the final status can be observed.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		if !strings.HasPrefix(c.Path(), "/api/") {
			return nil
		}

		sample := apiSample{
			method:  c.Method(),
			route:   matchedRoute(c),
			status:  c.Response().StatusCode(),
			elapsed: time.Since(start),
		}
		sample.record()
		sample.log(logger, c)
		return nil
	}
}

type apiSample struct {
	method  string
	route   string
	status  int
	elapsed time.Duration
}

func (s apiSample) record() {
	status := strconv.Itoa(s.status)
	observability.APIRequests().WithLabelValues(s.method, s.route, status).Inc()
	observability.APILatency().WithLabelValues(s.method, s.route).Observe(s.elapsed.Seconds())
	if s.status >= fiber.StatusBadRequest {
		observability.APIErrors().WithLabelValues(s.method, s.route, status).Inc()
	}
}

func (s apiSample) log(logger zerolog.Logger, c *fiber.Ctx) {
	var event *zerolog.Event
	switch {
	case s.status >= fiber.StatusInternalServerError:
		event = logger.Error()
	case s.status >= fiber.StatusBadRequest:
		event = logger.Warn()
	default:
		event = logger.Debug()
	}

	event = event.
		Str("request_id", GetRequestID(c)).
		Str("method", s.method).
		Str("route", s.route).
		Int("status", s.status).
		Dur("latency", s.elapsed)
	if role, ok := c.Locals("user_role").(string); ok && role != "" {
		event = event.Str("user_role", role)
	}
	event.Msg("api request")
}

// matchedRoute keeps label cardinality bounded: /api/students/:id instead of the raw path.
func matchedRoute(c *fiber.Ctx) string {
	if route := c.Route(); route != nil && route.Path != "" && route.Path != "/" {
		return route.Path
	}
	return "unmatched"
}
