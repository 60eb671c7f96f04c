package middleware

import (
	"time"

	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/NeuralTrust/ReelGate/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct {
	logger *logrus.Logger
}

// NewRequestIDMiddleware tags every request with an id, taken from the
// X-Request-Id header when the caller sent a usable one, and writes a debug
// access line once the response is ready.
func NewRequestIDMiddleware(logger *logrus.Logger) Middleware {
	return &requestIDMiddleware{logger: logger}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.Locals(common.LatencyContextKey, start)

		id := c.Get(common.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.New().String()
		}
		c.Locals(common.RequestIDContextKey, id)
		c.Set(common.RequestIDHeader, id)
		c.SetUserContext(utils.WithRequestID(c.UserContext(), id))

		err := c.Next()

		if m.logger.IsLevelEnabled(logrus.DebugLevel) {
			fields := logrus.Fields{
				"request_id": id,
				"method":     c.Method(),
				"path":       c.Path(),
				"status":     c.Response().StatusCode(),
				"latency_ms": time.Since(start).Milliseconds(),
			}
			if ua := utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent), c.Get(fiber.HeaderAcceptLanguage)); ua != nil {
				fields["device"] = ua.Device
				fields["os"] = ua.OS
				fields["browser"] = ua.Browser
				fields["locale"] = ua.Locale
			}
			m.logger.WithFields(fields).Debug("request served")
		}
		return err
	}
}
