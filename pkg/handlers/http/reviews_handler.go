package http

import (
	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type reviewsHandler struct {
	*BaseHandler
	service movie.Service
}

func NewReviewsHandler(logger *logrus.Logger, service movie.Service) Handler {
	return &reviewsHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Handle @Summary Movie reviews
// @Description Returns the first page of user reviews for a movie
// @Tags Movies
// @Produce json
// @Param lang path string true "Language, e.g. en or pt-BR"
// @Param tmdbId path int true "TMDb movie id"
// @Success 200 {object} map[string]interface{} "TMDb reviews page"
// @Failure 400 {object} response.ErrorResponse "Invalid language or movie id"
// @Failure 404 {object} response.ErrorResponse "Movie not found"
// @Failure 502 {object} response.ErrorResponse "Upstream error"
// @Failure 503 {object} response.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} response.ErrorResponse "Upstream timeout"
// @Router /api/{lang}/reviews/{tmdbId} [get]
func (h *reviewsHandler) Handle(c *fiber.Ctx) error {
	lang := c.Params("lang")
	tmdbID := c.Params("tmdbId")
	body, err := h.service.Reviews(c.UserContext(), lang, tmdbID)
	return h.respond(c, common.RouteReviews, logrus.Fields{"lang": lang, "tmdb_id": tmdbID}, body, err)
}
