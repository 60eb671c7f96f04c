package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/NeuralTrust/ReelGate/pkg/common"
	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/NeuralTrust/ReelGate/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

func (h *BaseHandler) HandleSuccessResponse(c *fiber.Ctx, status int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(body)
}

func (h *BaseHandler) HandleErrorResponse(c *fiber.Ctx, err error) error {
	status, body := ErrorResponse(err)
	return c.Status(status).JSON(body)
}

// respond writes the outcome of a movie route and logs one line describing
// the call.
func (h *BaseHandler) respond(c *fiber.Ctx, route string, fields logrus.Fields, body []byte, err error) error {
	var writeErr error
	if err != nil {
		writeErr = h.HandleErrorResponse(c, err)
	} else {
		writeErr = h.HandleSuccessResponse(c, fiber.StatusOK, body)
	}

	entry := h.logger.WithFields(fields).WithFields(logrus.Fields{
		"route":      route,
		"status":     c.Response().StatusCode(),
		"request_id": c.Locals(common.RequestIDContextKey),
	})
	switch {
	case err == nil:
		entry.Info("movie request served")
	case c.Response().StatusCode() >= fiber.StatusInternalServerError:
		entry.WithError(err).Error("movie request failed")
	default:
		entry.WithError(err).Warn("movie request rejected")
	}
	return writeErr
}

// ErrorResponse maps an error from the movie service onto the HTTP status
// and body returned to the caller.
func ErrorResponse(err error) (int, response.ErrorResponse) {
	var upErr *domain.UpstreamError
	switch {
	case domain.IsInvalidInput(err):
		return errorBody(http.StatusBadRequest, invalidInputMessage(err))
	case errors.Is(err, context.DeadlineExceeded):
		return errorBody(http.StatusGatewayTimeout, "upstream timeout")
	case errors.As(err, &upErr):
		status := http.StatusBadGateway
		if upErr.NotFound() {
			status = http.StatusNotFound
		}
		msg := upErr.Message
		if msg == "" {
			msg = http.StatusText(upErr.HTTPStatus)
		}
		code := upErr.StatusCode
		if code == 0 {
			code = status
		}
		return status, response.ErrorResponse{Error: msg, StatusCode: code}
	case errors.Is(err, domain.ErrNoResults):
		return errorBody(http.StatusNotFound, domain.ErrNoResults.Error())
	case errors.Is(err, domain.ErrMalformedResponse):
		return errorBody(http.StatusBadGateway, domain.ErrMalformedResponse.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return errorBody(http.StatusServiceUnavailable, domain.ErrUpstreamUnavailable.Error())
	default:
		return errorBody(http.StatusInternalServerError, "internal server error")
	}
}

func errorBody(status int, msg string) (int, response.ErrorResponse) {
	return status, response.ErrorResponse{Error: msg, StatusCode: status}
}

func invalidInputMessage(err error) string {
	for _, sentinel := range []error{domain.ErrInvalidLanguage, domain.ErrInvalidMovieID, domain.ErrMissingQuery} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
