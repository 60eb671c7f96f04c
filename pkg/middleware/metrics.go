package middleware

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/NeuralTrust/ReelGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger   *logrus.Logger
	taskChan chan func()
}

// NewMetricsMiddleware records request counts and latency per route. The
// prometheus updates run on a small worker pool off the request path.
func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	m := &metricsMiddleware{
		logger:   logger,
		taskChan: make(chan func(), 1000),
	}
	go m.startWorkers(2)
	return m
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime, ok := c.Locals(common.LatencyContextKey).(time.Time)
		if !ok {
			startTime = time.Now()
		}

		err := c.Next()

		elapsed := time.Since(startTime)
		route := c.Route().Path
		method := c.Method()
		status := statusClass(c.Response().StatusCode())

		m.enqueueTask(func() {
			prometheus.RequestTotal.WithLabelValues(route, method, status).Inc()
			if prometheus.Config.EnableLatency {
				prometheus.RequestLatency.WithLabelValues(route).Observe(float64(elapsed.Milliseconds()))
			}
		}, route)

		return err
	}
}

func (m *metricsMiddleware) startWorkers(n int) {
	for i := 0; i < n; i++ {
		go func() {
			for task := range m.taskChan {
				task()
			}
		}()
	}
}

func (m *metricsMiddleware) enqueueTask(task func(), route string) {
	select {
	case m.taskChan <- task:
	default:
		m.logger.WithField("route", route).Warn("taskChan is full, dropping metrics task")
	}
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
