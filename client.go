package stylora

import (
	"context"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/internal/core"
)

// SearchRequest is one search call. Query may be combined with ImageURL or
// Base64Image for multimodal search; supplying both image sources is a
// validation error. Limit 0 defers to the server default.
type SearchRequest struct {
	Query       string
	ImageURL    string
	Base64Image string
	Filters     *catalog.SearchFilters
	Limit       int
}

// BrandListRequest is one brand listing call. Page 0 means page 1; Size 0
// defers to the server default.
type BrandListRequest struct {
	Query string
	Page  int
	Size  int
}

// Client is the blocking facade. Safe for concurrent use.
type Client struct {
	core *core.Core
}

func New(cfg Config) (*Client, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{core: c}, nil
}

// Search runs a text, image or multimodal product search.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*catalog.SearchResponse, error) {
	return c.core.Search(ctx, searchParams(req))
}

// GetProduct looks up one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	return c.core.GetProduct(ctx, id)
}

// GetBrands lists brands, optionally filtered by a free-text query.
func (c *Client) GetBrands(ctx context.Context, req BrandListRequest) (*catalog.BrandList, error) {
	return c.core.GetBrands(ctx, brandListParams(req))
}

// GetBrand looks up one brand by id.
func (c *Client) GetBrand(ctx context.Context, id string) (*catalog.Brand, error) {
	return c.core.GetBrand(ctx, id)
}

func searchParams(req SearchRequest) core.SearchParams {
	return core.SearchParams{
		Query:       req.Query,
		ImageURL:    req.ImageURL,
		Base64Image: req.Base64Image,
		Filters:     req.Filters,
		Limit:       req.Limit,
	}
}

func brandListParams(req BrandListRequest) core.BrandListParams {
	return core.BrandListParams{
		Query: req.Query,
		Page:  req.Page,
		Size:  req.Size,
	}
}
