package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Movies
	TrendingHandler            Handler
	TopRatedRecommendedHandler Handler
	MovieDetailsHandler        Handler
	MovieAutocompleteHandler   Handler
	ReviewsHandler             Handler

	// Info
	GetVersionHandler Handler
	HealthHandler     Handler
}
