package http

import (
	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type movieDetailsHandler struct {
	*BaseHandler
	service movie.Service
}

func NewMovieDetailsHandler(logger *logrus.Logger, service movie.Service) Handler {
	return &movieDetailsHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Handle @Summary Movie details
// @Description Returns a movie with its videos and credits embedded
// @Tags Movies
// @Produce json
// @Param lang path string true "Language, e.g. en or pt-BR"
// @Param tmdbId path int true "TMDb movie id"
// @Success 200 {object} map[string]interface{} "TMDb movie details"
// @Failure 400 {object} response.ErrorResponse "Invalid language or movie id"
// @Failure 404 {object} response.ErrorResponse "Movie not found"
// @Failure 502 {object} response.ErrorResponse "Upstream error"
// @Failure 503 {object} response.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} response.ErrorResponse "Upstream timeout"
// @Router /api/{lang}/movieDetails/{tmdbId} [get]
func (h *movieDetailsHandler) Handle(c *fiber.Ctx) error {
	lang := c.Params("lang")
	tmdbID := c.Params("tmdbId")
	body, err := h.service.MovieDetails(c.UserContext(), lang, tmdbID)
	return h.respond(c, common.RouteMovieDetails, logrus.Fields{"lang": lang, "tmdb_id": tmdbID}, body, err)
}
