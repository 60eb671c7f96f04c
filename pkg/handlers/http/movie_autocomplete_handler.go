package http

import (
	"github.com/NeuralTrust/ReelGate/pkg/app/movie"
	"github.com/NeuralTrust/ReelGate/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type movieAutocompleteHandler struct {
	*BaseHandler
	service movie.Service
}

func NewMovieAutocompleteHandler(logger *logrus.Logger, service movie.Service) Handler {
	return &movieAutocompleteHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Handle @Summary Search movies
// @Description Searches TMDb movies by title for autocompletion
// @Tags Movies
// @Produce json
// @Param lang path string true "Language, e.g. en or pt-BR"
// @Param q query string true "Search term"
// @Success 200 {object} map[string]interface{} "TMDb search page"
// @Failure 400 {object} response.ErrorResponse "Invalid language or missing query"
// @Failure 502 {object} response.ErrorResponse "Upstream error"
// @Failure 503 {object} response.ErrorResponse "Upstream unavailable"
// @Failure 504 {object} response.ErrorResponse "Upstream timeout"
// @Router /api/{lang}/movieAutocomplete [get]
func (h *movieAutocompleteHandler) Handle(c *fiber.Ctx) error {
	lang := c.Params("lang")
	query := c.Query("q")
	body, err := h.service.Autocomplete(c.UserContext(), lang, query)
	return h.respond(c, common.RouteMovieAutocomplete, logrus.Fields{"lang": lang, "query": query}, body, err)
}
