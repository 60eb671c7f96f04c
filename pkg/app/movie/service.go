package movie

import (
	"context"
	"math/rand"

	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/sirupsen/logrus"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

//go:generate mockery --name=Service --dir=. --output=./mocks --filename=service_mock.go --case=underscore --with-expecter
type Service interface {
	Trending(ctx context.Context, lang string) ([]byte, error)
	TopRatedRecommendation(ctx context.Context, lang string) ([]byte, error)
	MovieDetails(ctx context.Context, lang, tmdbID string) ([]byte, error)
	Autocomplete(ctx context.Context, lang, query string) ([]byte, error)
	Reviews(ctx context.Context, lang, tmdbID string) ([]byte, error)
}

type Option func(*service)

func WithPicker(pick Picker) Option {
	return func(s *service) {
		s.pick = pick
	}
}

func WithRegion(region string) Option {
	return func(s *service) {
		s.region = region
	}
}

type service struct {
	logger *logrus.Logger
	client domain.Client
	region string
	pick   Picker
}

func NewService(logger *logrus.Logger, client domain.Client, opts ...Option) Service {
	s := &service{
		logger: logger,
		client: client,
		region: DefaultRegion,
		pick:   rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Trending(ctx context.Context, lang string) ([]byte, error) {
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, domain.NewTrendingRequest(l))
}

func (s *service) MovieDetails(ctx context.Context, lang, tmdbID string) ([]byte, error) {
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseMovieID(tmdbID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, domain.NewMovieDetailsRequest(l, id))
}

func (s *service) Autocomplete(ctx context.Context, lang, query string) ([]byte, error) {
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	q, err := domain.ParseSearchQuery(query)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, domain.NewMovieSearchRequest(l, q))
}

func (s *service) Reviews(ctx context.Context, lang, tmdbID string) ([]byte, error) {
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	id, err := domain.ParseMovieID(tmdbID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, domain.NewMovieReviewsRequest(l, id))
}

func (s *service) fetch(ctx context.Context, req domain.Request) ([]byte, error) {
	res, err := s.client.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}
