package common

const (
	RequestIDHeader = "X-Request-Id"

	RouteTrending            = "trending"
	RouteTopRatedRecommended = "topRatedRecommended"
	RouteMovieDetails        = "movieDetails"
	RouteMovieAutocomplete   = "movieAutocomplete"
	RouteReviews             = "reviews"
)
