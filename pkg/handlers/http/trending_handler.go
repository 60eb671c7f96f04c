package http

import (
	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type trendingHandler struct {
	*BaseHandler
	service movie.Service
}

func NewTrendingHandler(logger *logrus.Logger, service movie.Service) Handler {
	return &trendingHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Handle @Summary Trending movies
// @Description Returns today's trending movies from TMDb in the requested language
// @Tags Movies
// @Produce json
// @Param lang path string true "Language, e.g. en or pt-BR"
// @Success 200 {object} map[string]interface{} "TMDb trending page"
// @Failure 400 {object} response.ErrorResponse "Invalid language"
// @Failure 502 {object} response.ErrorResponse "Upstream error"
// @Failure 503 {object} response.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} response.ErrorResponse "Upstream timeout"
// @Router /api/{lang}/trending [get]
func (h *trendingHandler) Handle(c *fiber.Ctx) error {
	lang := c.Params("lang")
	body, err := h.service.Trending(c.UserContext(), lang)
	return h.respond(c, common.RouteTrending, logrus.Fields{"lang": lang}, body, err)
}
