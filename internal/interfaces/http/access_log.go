package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/g-inventory/internal/infrastructure/metrics"
)

// AccessLog registra cada petición con zerolog y alimenta las métricas HTTP (m puede ser nil).
func AccessLog(log zerolog.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// el ErrorHandler escribe la respuesta; aquí solo se mide
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path

		if m != nil {
			m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("user_id", GetUserID(c)).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("http")
		return nil
	}
}
