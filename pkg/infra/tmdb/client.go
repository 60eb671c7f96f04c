package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domain "github.com/NeuralTrust/ReelGate/pkg/domain/tmdb"
	"github.com/NeuralTrust/ReelGate/pkg/infra/httpx"
	"github.com/NeuralTrust/ReelGate/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
	"golang.org/x/sync/singleflight"
	"moul.io/http2curl"
)

const redacted = "REDACTED"

type Config struct {
	BaseURL string
	// APIKey is either a v3 api key, sent as the api_key query parameter, or
	// a v4 read access token (a JWT), sent as a bearer token.
	APIKey  string
	Timeout time.Duration
}

type client struct {
	cfg     Config
	baseURL *url.URL
	http    httpx.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
	group   singleflight.Group
	parsers fastjson.ParserPool
}

func NewClient(
	cfg Config,
	httpClient httpx.Client,
	breaker httpx.CircuitBreaker,
	logger *logrus.Logger,
) (domain.Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tmdb base url %q: %w", cfg.BaseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid tmdb base url %q: scheme and host are required", cfg.BaseURL)
	}
	if breaker == nil {
		breaker = httpx.NewNoopCircuitBreaker()
	}
	return &client{
		cfg:     cfg,
		baseURL: baseURL,
		http:    httpClient,
		breaker: breaker,
		logger:  logger,
	}, nil
}

// Fetch runs one TMDb call for req. Callers holding identical requests at the
// same time share a single outbound call; each caller still stops waiting
// when its own context ends.
func (c *client) Fetch(ctx context.Context, req domain.Request) (*domain.Result, error) {
	ch := c.group.DoChan(req.Key(), func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
		defer cancel()
		return c.execute(callCtx, req)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			prometheus.UpstreamCoalesced.WithLabelValues(string(req.Endpoint())).Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		result, ok := res.Val.(*domain.Result)
		if !ok {
			return nil, fmt.Errorf("unexpected result type %T", res.Val)
		}
		return result, nil
	}
}

func (c *client) execute(ctx context.Context, req domain.Request) (*domain.Result, error) {
	httpReq, err := c.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logCurl(httpReq, req)

	start := time.Now()
	var result *domain.Result
	err = c.breaker.Execute(func() error {
		var callErr error
		result, callErr = c.roundTrip(httpReq, req.Endpoint())
		return callErr
	})
	c.observeLatency(req.Endpoint(), time.Since(start))

	if err != nil {
		if httpx.IsOpen(err) {
			err = fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, req.Endpoint(), err)
		}
		reason := FailureReason(err)
		prometheus.UpstreamErrors.WithLabelValues(string(req.Endpoint()), reason).Inc()
		c.logger.WithFields(logrus.Fields{
			"endpoint": req.Endpoint(),
			"path":     req.Path(),
			"reason":   reason,
		}).WithError(err).Error("tmdb call failed")
		return nil, err
	}
	return result, nil
}

func (c *client) newHTTPRequest(ctx context.Context, req domain.Request) (*http.Request, error) {
	u := c.baseURL.JoinPath(req.Path())
	query := req.Query()
	if c.cfg.APIKey != "" && !c.usesBearerToken() {
		query.Set("api_key", c.cfg.APIKey)
	}
	u.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", req.Endpoint(), err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.usesBearerToken() {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	return httpReq, nil
}

func (c *client) usesBearerToken() bool {
	return strings.HasPrefix(c.cfg.APIKey, "eyJ")
}

func (c *client) roundTrip(httpReq *http.Request, endpoint domain.Endpoint) (*domain.Result, error) {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("tmdb %s: %w", endpoint, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %w", domain.ErrUpstreamUnavailable, endpoint, err)
	}
	return c.parse(endpoint, resp.StatusCode, body)
}

// parse checks that body is a JSON document and that TMDb did not flag it as
// an error, either by HTTP status or by a status_code greater than 1.
func (c *client) parse(endpoint domain.Endpoint, status int, body []byte) (*domain.Result, error) {
	p := c.parsers.Get()
	defer c.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		if status >= http.StatusBadRequest {
			return nil, &domain.UpstreamError{HTTPStatus: status, Message: http.StatusText(status)}
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedResponse, endpoint, err)
	}

	code := v.GetInt("status_code")
	if status >= http.StatusBadRequest || code > 1 {
		return nil, &domain.UpstreamError{
			HTTPStatus: status,
			StatusCode: code,
			Message:    string(v.GetStringBytes("status_message")),
		}
	}

	return &domain.Result{Endpoint: endpoint, Body: body}, nil
}

func (c *client) observeLatency(endpoint domain.Endpoint, d time.Duration) {
	if !prometheus.Config.EnableUpstreamLatency {
		return
	}
	prometheus.UpstreamLatency.WithLabelValues(string(endpoint)).Observe(float64(d.Milliseconds()))
}

func (c *client) logCurl(httpReq *http.Request, req domain.Request) {
	if !c.logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	safe := httpReq.Clone(httpReq.Context())
	query := safe.URL.Query()
	if query.Has("api_key") {
		query.Set("api_key", redacted)
		safe.URL.RawQuery = query.Encode()
	}
	if safe.Header.Get("Authorization") != "" {
		safe.Header.Set("Authorization", "Bearer "+redacted)
	}
	command, err := http2curl.GetCurlCommand(safe)
	if err != nil {
		return
	}
	c.logger.WithField("endpoint", req.Endpoint()).Debug(command.String())
}
