package http

import (
	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type topRatedRecommendedHandler struct {
	*BaseHandler
	service movie.Service
}

func NewTopRatedRecommendedHandler(logger *logrus.Logger, service movie.Service) Handler {
	return &topRatedRecommendedHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Handle @Summary Recommend a top rated movie
// @Description Picks one movie at random from the first 20 top rated results
// @Tags Movies
// @Produce json
// @Param lang path string true "Language, e.g. en or pt-BR"
// @Success 200 {object} map[string]interface{} "A single TMDb movie"
// @Failure 400 {object} response.ErrorResponse "Invalid language"
// @Failure 404 {object} response.ErrorResponse "No results"
// @Failure 502 {object} response.ErrorResponse "Upstream error"
// @Failure 503 {object} response.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} response.ErrorResponse "Upstream timeout"
// @Router /api/{lang}/topRatedRecommended [get]
func (h *topRatedRecommendedHandler) Handle(c *fiber.Ctx) error {
	lang := c.Params("lang")
	body, err := h.service.TopRatedRecommendation(c.UserContext(), lang)
	return h.respond(c, common.RouteTopRatedRecommended, logrus.Fields{"lang": lang}, body, err)
}
