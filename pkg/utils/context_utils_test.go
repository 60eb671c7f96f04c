package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserAgent(t *testing.T) {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"

	info := ParseUserAgent(ua, "pt-BR,pt;q=0.9,en;q=0.8")
	require.NotNil(t, info)
	assert.Equal(t, "Computer", info.Device)
	assert.Contains(t, info.OS, "OSMacOSX")
	assert.Contains(t, info.Browser, "BrowserSafari")
	assert.Equal(t, "pt-BR", info.Locale)
}

func TestParseUserAgent_Unknown(t *testing.T) {
	assert.Nil(t, ParseUserAgent("curl/8.4.0", ""))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
