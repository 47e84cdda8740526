// Package mock provides a call-recording Transport for tests, both the
// SDK's own and those of applications built on it.
package mock

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/stylora/stylora-go/transport"
)

type Transport struct {
	StatusCode int
	Body       []byte
	Err        error
	Delay      time.Duration

	CallCount   int
	LastRequest transport.Request
	AllRequests []transport.Request

	mu sync.Mutex
}

func New() *Transport {
	return &Transport{StatusCode: http.StatusOK, Body: []byte("{}")}
}

func (t *Transport) WithResponse(statusCode int, body []byte) *Transport {
	t.StatusCode = statusCode
	t.Body = body
	return t
}

func (t *Transport) WithError(err error) *Transport {
	t.Err = err
	return t
}

func (t *Transport) WithDelay(delay time.Duration) *Transport {
	t.Delay = delay
	return t
}

func (t *Transport) Send(ctx context.Context, req transport.Request) (*transport.Response, error) {
	t.mu.Lock()
	t.CallCount++
	t.LastRequest = req
	t.AllRequests = append(t.AllRequests, req)
	delay := t.Delay
	err := t.Err
	statusCode := t.StatusCode
	body := t.Body
	t.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if err != nil {
		return nil, err
	}

	return &transport.Response{StatusCode: statusCode, Body: body}, nil
}

func (t *Transport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.CallCount = 0
	t.LastRequest = transport.Request{}
	t.AllRequests = nil
}
