package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/transport"
)

// SearchParams carries the inputs of one search call. At most one of
// ImageURL and Base64Image may be set; Query may be empty when an image
// input is given. Limit 0 leaves the result count to the server default.
type SearchParams struct {
	Query       string
	ImageURL    string
	Base64Image string
	Filters     *catalog.SearchFilters
	Limit       int
}

// BrandListParams carries the inputs of one brand listing call. Page 0
// means the first page; Size 0 leaves the page size to the server default.
type BrandListParams struct {
	Query string
	Page  int
	Size  int
}

type wireFilters struct {
	Brands       []string         `json:"brands,omitempty"`
	MinPrice     *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice     *decimal.Decimal `json:"max_price,omitempty"`
	Gender       string           `json:"gender,omitempty"`
	Availability []string         `json:"availability,omitempty"`
}

type wireSearchRequest struct {
	Query    string       `json:"query,omitempty"`
	ImageURL string       `json:"image_url,omitempty"`
	Limit    int          `json:"limit,omitempty"`
	Filters  *wireFilters `json:"filters,omitempty"`
}

func filtersToWire(f *catalog.SearchFilters) *wireFilters {
	if f == nil {
		return nil
	}
	w := &wireFilters{
		Brands:   f.Brands,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		Gender:   string(f.Gender),
	}
	for _, a := range f.Availability {
		w.Availability = append(w.Availability, string(a))
	}
	if w.Brands == nil && w.MinPrice == nil && w.MaxPrice == nil &&
		w.Gender == "" && w.Availability == nil {
		return nil
	}
	return w
}

func encodeSearch(p SearchParams) (transport.Request, error) {
	if p.ImageURL != "" && p.Base64Image != "" {
		return transport.Request{}, fmt.Errorf(
			"%w: at most one of image_url and base64_image may be set", catalog.ErrValidation)
	}
	if p.Query == "" && p.ImageURL == "" && p.Base64Image == "" {
		return transport.Request{}, fmt.Errorf(
			"%w: query or image input required", catalog.ErrValidation)
	}
	if p.Limit < 0 {
		return transport.Request{}, fmt.Errorf(
			"%w: limit must be positive", catalog.ErrValidation)
	}
	if err := p.Filters.Validate(); err != nil {
		return transport.Request{}, err
	}

	if p.Base64Image != "" {
		return encodeSearchMultipart(p)
	}

	body, err := json.Marshal(wireSearchRequest{
		Query:    p.Query,
		ImageURL: p.ImageURL,
		Limit:    p.Limit,
		Filters:  filtersToWire(p.Filters),
	})
	if err != nil {
		return transport.Request{}, fmt.Errorf("%w: marshal search request: %v", catalog.ErrValidation, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return transport.Request{
		Method: http.MethodPost,
		Path:   "/v1/search",
		Body:   body,
		Header: header,
	}, nil
}

// encodeSearchMultipart builds the multipart/form-data variant used when an
// inline base64 image must be transmitted. The filters object travels as one
// JSON-encoded field.
func encodeSearchMultipart(p SearchParams) (transport.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if p.Query != "" {
		if err := w.WriteField("query", p.Query); err != nil {
			return transport.Request{}, fmt.Errorf("write query field: %w", err)
		}
	}
	if err := w.WriteField("image", p.Base64Image); err != nil {
		return transport.Request{}, fmt.Errorf("write image field: %w", err)
	}
	if p.Limit > 0 {
		if err := w.WriteField("limit", strconv.Itoa(p.Limit)); err != nil {
			return transport.Request{}, fmt.Errorf("write limit field: %w", err)
		}
	}
	if filters := filtersToWire(p.Filters); filters != nil {
		encoded, err := json.Marshal(filters)
		if err != nil {
			return transport.Request{}, fmt.Errorf("marshal filters field: %w", err)
		}
		if err := w.WriteField("filters", string(encoded)); err != nil {
			return transport.Request{}, fmt.Errorf("write filters field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return transport.Request{}, fmt.Errorf("close multipart writer: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", w.FormDataContentType())

	return transport.Request{
		Method: http.MethodPost,
		Path:   "/v1/search",
		Body:   buf.Bytes(),
		Header: header,
	}, nil
}

func encodeProductGet(id string) (transport.Request, error) {
	if strings.TrimSpace(id) == "" {
		return transport.Request{}, fmt.Errorf("%w: product id required", catalog.ErrValidation)
	}
	return transport.Request{
		Method: http.MethodGet,
		Path:   "/v1/products/" + url.PathEscape(id),
	}, nil
}

func encodeBrandGet(id string) (transport.Request, error) {
	if strings.TrimSpace(id) == "" {
		return transport.Request{}, fmt.Errorf("%w: brand id required", catalog.ErrValidation)
	}
	return transport.Request{
		Method: http.MethodGet,
		Path:   "/v1/brands/" + url.PathEscape(id),
	}, nil
}

func encodeBrandList(p BrandListParams) (transport.Request, error) {
	if p.Page < 0 {
		return transport.Request{}, fmt.Errorf("%w: page must be positive", catalog.ErrValidation)
	}
	if p.Size < 0 {
		return transport.Request{}, fmt.Errorf("%w: size must be positive", catalog.ErrValidation)
	}

	page := p.Page
	if page == 0 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if p.Size > 0 {
		query.Set("size", strconv.Itoa(p.Size))
	}
	if p.Query != "" {
		query.Set("query", p.Query)
	}

	return transport.Request{
		Method: http.MethodGet,
		Path:   "/v1/brands",
		Query:  query,
	}, nil
}
