package stylora

import (
	"context"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/internal/core"
)

// AsyncClient is the non-blocking facade. Each call starts one goroutine,
// delivers exactly one result on a buffered channel and closes it; the
// caller never blocks while the exchange is outstanding. Results and errors
// are identical to the blocking facade for identical inputs.
type AsyncClient struct {
	core *core.Core
}

func NewAsync(cfg Config) (*AsyncClient, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{core: c}, nil
}

type SearchResult struct {
	Response *catalog.SearchResponse
	Err      error
}

type ProductResult struct {
	Product *catalog.Product
	Err     error
}

type BrandListResult struct {
	Brands *catalog.BrandList
	Err    error
}

type BrandResult struct {
	Brand *catalog.Brand
	Err   error
}

func (c *AsyncClient) Search(ctx context.Context, req SearchRequest) <-chan SearchResult {
	ch := make(chan SearchResult, 1)
	go func() {
		defer close(ch)
		resp, err := c.core.Search(ctx, searchParams(req))
		ch <- SearchResult{Response: resp, Err: err}
	}()
	return ch
}

func (c *AsyncClient) GetProduct(ctx context.Context, id string) <-chan ProductResult {
	ch := make(chan ProductResult, 1)
	go func() {
		defer close(ch)
		product, err := c.core.GetProduct(ctx, id)
		ch <- ProductResult{Product: product, Err: err}
	}()
	return ch
}

func (c *AsyncClient) GetBrands(ctx context.Context, req BrandListRequest) <-chan BrandListResult {
	ch := make(chan BrandListResult, 1)
	go func() {
		defer close(ch)
		brands, err := c.core.GetBrands(ctx, brandListParams(req))
		ch <- BrandListResult{Brands: brands, Err: err}
	}()
	return ch
}

func (c *AsyncClient) GetBrand(ctx context.Context, id string) <-chan BrandResult {
	ch := make(chan BrandResult, 1)
	go func() {
		defer close(ch)
		brand, err := c.core.GetBrand(ctx, id)
		ch <- BrandResult{Brand: brand, Err: err}
	}()
	return ch
}
