package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	Initialize(MetricsConfig{EnableLatency: false, EnableUpstreamLatency: true})
	Initialize(MetricsConfig{EnableLatency: true, EnableUpstreamLatency: false})

	assert.True(t, Config.EnableLatency)
	assert.False(t, Config.EnableUpstreamLatency)

	UpstreamErrors.WithLabelValues("trending", "timeout").Inc()
	families, err := Gatherer().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["reelgate_upstream_errors_total"])
	assert.True(t, names["go_goroutines"])
}

func TestUpstreamErrorsCounter(t *testing.T) {
	c := UpstreamErrors.WithLabelValues("movie_details", "malformed")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
