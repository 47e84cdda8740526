// Package core implements the transport-agnostic client shared by the
// blocking and non-blocking facades: parameter encoding, response decoding
// and the total mapping of transport outcomes onto the error taxonomy.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/metrics"
	"github.com/stylora/stylora-go/transport"
)

// Core holds only immutable configuration and is safe for arbitrarily many
// concurrent calls. It performs exactly one transport attempt per operation;
// retry policy belongs to the caller.
type Core struct {
	transport transport.Transport
	apiKey    string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

func New(t transport.Transport, apiKey string, logger *zap.Logger, m *metrics.Metrics) *Core {
	return &Core{
		transport: t,
		apiKey:    apiKey,
		logger:    logger,
		metrics:   m,
	}
}

func (c *Core) Search(ctx context.Context, p SearchParams) (*catalog.SearchResponse, error) {
	req, err := encodeSearch(p)
	if err != nil {
		return nil, err
	}
	body, err := c.exchange(ctx, "search", req)
	if err != nil {
		return nil, err
	}
	resp, err := decodeSearchResponse(body)
	if err != nil {
		return nil, c.decodeFailure("search", err)
	}
	return resp, nil
}

func (c *Core) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	req, err := encodeProductGet(id)
	if err != nil {
		return nil, err
	}
	body, err := c.exchange(ctx, "get_product", req)
	if err != nil {
		return nil, err
	}
	product, err := decodeProduct(body)
	if err != nil {
		return nil, c.decodeFailure("get_product", err)
	}
	return product, nil
}

func (c *Core) GetBrands(ctx context.Context, p BrandListParams) (*catalog.BrandList, error) {
	req, err := encodeBrandList(p)
	if err != nil {
		return nil, err
	}
	body, err := c.exchange(ctx, "get_brands", req)
	if err != nil {
		return nil, err
	}
	list, err := decodeBrandList(body)
	if err != nil {
		return nil, c.decodeFailure("get_brands", err)
	}
	return list, nil
}

func (c *Core) GetBrand(ctx context.Context, id string) (*catalog.Brand, error) {
	req, err := encodeBrandGet(id)
	if err != nil {
		return nil, err
	}
	body, err := c.exchange(ctx, "get_brand", req)
	if err != nil {
		return nil, err
	}
	brand, err := decodeBrand(body)
	if err != nil {
		return nil, c.decodeFailure("get_brand", err)
	}
	return brand, nil
}

// exchange performs the single transport attempt for an operation and maps
// its outcome. A returned body always came with a 2xx status.
func (c *Core) exchange(ctx context.Context, operation string, req transport.Request) ([]byte, error) {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set("X-API-Key", c.apiKey)

	start := time.Now()
	resp, sendErr := c.transport.Send(ctx, req)
	duration := time.Since(start)

	if sendErr != nil {
		err := fmt.Errorf("%w: %v", catalog.ErrConnection, sendErr)
		c.observe(operation, err, duration)
		c.logger.Debug("transport attempt failed",
			zap.String("operation", operation),
			zap.Error(sendErr),
		)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := mapStatus(resp.StatusCode, resp.Body)
		c.observe(operation, err, duration)
		if errors.Is(err, catalog.ErrServer) {
			c.logger.Error("request rejected",
				zap.String("operation", operation),
				zap.Int("status", resp.StatusCode),
			)
		}
		return nil, err
	}

	c.observe(operation, nil, duration)
	return resp.Body, nil
}

type wireError struct {
	Detail string `json:"detail"`
}

// mapStatus is the total mapping of non-2xx statuses onto the taxonomy.
// Statuses without a dedicated variant resolve to ErrServer rather than
// surfacing raw codes as new error kinds.
func mapStatus(statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", catalog.ErrAuthentication, statusCode)
	case http.StatusNotFound:
		return catalog.ErrNotFound
	case http.StatusUnprocessableEntity:
		var wire wireError
		if err := json.Unmarshal(body, &wire); err == nil && wire.Detail != "" {
			return fmt.Errorf("%w: %s", catalog.ErrValidation, wire.Detail)
		}
		return fmt.Errorf("%w: request rejected by server", catalog.ErrValidation)
	default:
		return fmt.Errorf("%w: status %d", catalog.ErrServer, statusCode)
	}
}

// decodeFailure converts a 2xx body that fails decoding into ErrServer: the
// remote service broke its own contract, the caller's input was fine.
func (c *Core) decodeFailure(operation string, err error) error {
	c.logger.Error("response decoding failed",
		zap.String("operation", operation),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %v", catalog.ErrServer, err)
}

func (c *Core) observe(operation string, err error, duration time.Duration) {
	c.metrics.Observe(operation, outcomeLabel(err), duration)
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, catalog.ErrValidation):
		return "validation"
	case errors.Is(err, catalog.ErrAuthentication):
		return "authentication"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, catalog.ErrConnection):
		return "connection"
	default:
		return "server"
	}
}
