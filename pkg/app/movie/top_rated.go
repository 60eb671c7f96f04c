package movie

import (
	"context"
	"fmt"

	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

const (
	DefaultRegion = "gb"

	// RecommendationPoolSize is how many of the top rated results are
	// eligible for a recommendation.
	RecommendationPoolSize = 20
)

// TopRatedRecommendation fetches the top rated page and returns a single
// movie picked uniformly from its first RecommendationPoolSize results.
func (s *service) TopRatedRecommendation(ctx context.Context, lang string) ([]byte, error) {
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	body, err := s.fetch(ctx, domain.NewTopRatedRequest(l, s.region))
	if err != nil {
		return nil, err
	}

	var p fastjson.Parser
	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("%w: top rated: %w", domain.ErrMalformedResponse, err)
	}
	results := v.Get("results")
	if results == nil {
		return nil, fmt.Errorf("%w: top rated: results field missing", domain.ErrMalformedResponse)
	}
	items, err := results.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: top rated: %w", domain.ErrMalformedResponse, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: top rated page is empty", domain.ErrNoResults)
	}

	pool := min(len(items), RecommendationPoolSize)
	i := s.pick(pool)
	if i < 0 || i >= pool {
		return nil, fmt.Errorf("picker returned %d outside [0,%d)", i, pool)
	}
	s.logger.WithFields(logrus.Fields{
		"lang":  l,
		"index": i,
		"pool":  pool,
	}).Debug("picked top rated recommendation")
	return items[i].MarshalTo(nil), nil
}
