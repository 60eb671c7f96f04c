package httpx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 512
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultReadBufferSize      = 8192
	DefaultWriteBufferSize     = 4096
	DefaultMaxResponseBodySize = 16 * 1024 * 1024
)

// FastHTTPClientOptions contains configuration for the FastHTTP client
type FastHTTPClientOptions struct {
	// Timeout bounds a request when its context carries no earlier deadline
	Timeout time.Duration

	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	ReadBufferSize      int
	WriteBufferSize     int
	MaxResponseBodySize int

	// UserAgent is sent when the request does not set one
	UserAgent string

	// DecodeResponses advertises AcceptEncoding and transparently decodes
	// compressed response bodies
	DecodeResponses bool
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

func WithMaxResponseBodySize(size int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxResponseBodySize = size
	}
}

func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.UserAgent = userAgent
	}
}

func WithResponseDecoding(enabled bool) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.DecodeResponses = enabled
	}
}

type FastHTTPClient struct {
	client          *fasthttp.Client
	timeout         time.Duration
	userAgent       string
	decodeResponses bool
}

// NewFastHTTPClient adapts a fasthttp.Client to the net/http shaped Client
// interface. If no options are provided, sensible defaults are used.
func NewFastHTTPClient(opts ...FastHTTPClientOption) Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		ReadBufferSize:      DefaultReadBufferSize,
		WriteBufferSize:     DefaultWriteBufferSize,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
		DecodeResponses:     true,
	}

	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		MaxConnsPerHost:          options.MaxConnsPerHost,
		MaxIdleConnDuration:      options.MaxIdleConnDuration,
		ReadBufferSize:           options.ReadBufferSize,
		WriteBufferSize:          options.WriteBufferSize,
		MaxResponseBodySize:      options.MaxResponseBodySize,
		NoDefaultUserAgentHeader: true,
	}
	if options.Timeout > 0 {
		client.ReadTimeout = options.Timeout
		client.WriteTimeout = options.Timeout
	}

	return &FastHTTPClient{
		client:          client,
		timeout:         options.Timeout,
		userAgent:       options.UserAgent,
		decodeResponses: options.DecodeResponses,
	}
}

func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	if req.URL != nil {
		fastReq.SetRequestURI(req.URL.String())
	}
	fastReq.Header.SetMethod(req.Method)

	if req.Host != "" {
		fastReq.Header.SetHost(req.Host)
	} else if req.URL != nil && req.URL.Host != "" {
		fastReq.Header.SetHost(req.URL.Host)
	}

	for key, values := range req.Header {
		for i, value := range values {
			if i == 0 {
				fastReq.Header.Set(key, value)
			} else {
				fastReq.Header.Add(key, value)
			}
		}
	}

	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		fastReq.Header.SetUserAgent(c.userAgent)
	}
	if c.decodeResponses && req.Header.Get("Accept-Encoding") == "" {
		fastReq.Header.Set("Accept-Encoding", AcceptEncoding)
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		fastReq.SetBodyRaw(body)
		_ = req.Body.Close()
	}

	if err := c.do(req, fastReq, fastResp); err != nil {
		return nil, err
	}

	// fastResp.Body() aliases a pooled buffer, copy before release
	body := append([]byte(nil), fastResp.Body()...)
	headers := make(http.Header)
	fastResp.Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	if c.decodeResponses {
		decoded, changed, err := DecodeChain(headers.Get("Content-Encoding"), body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode response body: %w", err)
		}
		if changed {
			body = decoded
			headers.Del("Content-Encoding")
			headers.Del("Content-Length")
		}
	}

	statusCode := fastResp.StatusCode()
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        headers,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// do runs the request, stopping at the earlier of the context deadline and
// the client timeout. Timeouts are reported as context.DeadlineExceeded.
func (c *FastHTTPClient) do(req *http.Request, fastReq *fasthttp.Request, fastResp *fasthttp.Response) error {
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline, hasDeadline := ctx.Deadline()
	if c.timeout > 0 {
		if byTimeout := time.Now().Add(c.timeout); !hasDeadline || byTimeout.Before(deadline) {
			deadline = byTimeout
			hasDeadline = true
		}
	}
	if !hasDeadline {
		return c.client.Do(fastReq, fastResp)
	}

	err := c.client.DoDeadline(fastReq, fastResp, deadline)
	if errors.Is(err, fasthttp.ErrTimeout) {
		return fmt.Errorf("%w: %w", context.DeadlineExceeded, err)
	}
	return err
}
