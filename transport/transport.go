// Package transport defines the narrow exchange interface the Stylora core
// client sends through, plus the default net/http implementation. The core
// depends only on the Transport interface; pooling, TLS and timeouts live
// behind it.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Request is a transport-ready descriptor: everything needed for one HTTP
// exchange, already encoded.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header http.Header
}

// Response is the raw outcome of a completed exchange. A non-2xx status is
// still a Response; Transport errors are reserved for exchanges that never
// completed.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a single HTTP exchange. Implementations must be safe
// for concurrent use.
type Transport interface {
	Send(ctx context.Context, req Request) (*Response, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// HTTPTransport is the default Transport over net/http.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *HTTPTransport {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTPTransport{
		baseURL: cfg.BaseURL,
		client:  client,
		logger:  logger,
	}
}

func (t *HTTPTransport) Send(ctx context.Context, req Request) (*Response, error) {
	u := t.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("exchange completed",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
