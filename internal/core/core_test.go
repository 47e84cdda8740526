package core

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stylora/stylora-go/catalog"
	"github.com/stylora/stylora-go/transport/mock"
)

const productBody = `{"id": "prod-1", "title": "Linen Shirt"}`

func newTestCore(t *mock.Transport) *Core {
	return New(t, "test-key", zap.NewNop(), nil)
}

func TestCore_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, `{}`, catalog.ErrAuthentication},
		{"forbidden", http.StatusForbidden, `{}`, catalog.ErrAuthentication},
		{"not found", http.StatusNotFound, `{}`, catalog.ErrNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, `{"detail": "bad filter"}`, catalog.ErrValidation},
		{"server error", http.StatusInternalServerError, `{}`, catalog.ErrServer},
		{"bad gateway", http.StatusBadGateway, `{}`, catalog.ErrServer},
		{"unmapped teapot", http.StatusTeapot, `{}`, catalog.ErrServer},
		{"unmapped bad request", http.StatusBadRequest, `{}`, catalog.ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mock.New().WithResponse(tt.statusCode, []byte(tt.body))
			core := newTestCore(tr)

			_, err := core.GetProduct(context.Background(), "prod-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GetProduct() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCore_ValidationDetailFromServer(t *testing.T) {
	tr := mock.New().WithResponse(http.StatusUnprocessableEntity, []byte(`{"detail": "limit too large"}`))
	core := newTestCore(tr)

	_, err := core.Search(context.Background(), SearchParams{Query: "shirt"})
	if !errors.Is(err, catalog.ErrValidation) {
		t.Fatalf("Search() error = %v, want ErrValidation", err)
	}
	if !strings.Contains(err.Error(), "limit too large") {
		t.Errorf("Search() error = %q, want server detail included", err)
	}
}

func TestCore_TransportFailure(t *testing.T) {
	tr := mock.New().WithError(errors.New("dial tcp: connection refused"))
	core := newTestCore(tr)

	_, err := core.Search(context.Background(), SearchParams{Query: "shirt"})
	if !errors.Is(err, catalog.ErrConnection) {
		t.Errorf("Search() error = %v, want ErrConnection", err)
	}
}

func TestCore_ContextCancellation(t *testing.T) {
	tr := mock.New().WithDelay(time.Second)
	core := newTestCore(tr)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := core.GetProduct(ctx, "prod-1")
	if !errors.Is(err, catalog.ErrConnection) {
		t.Errorf("GetProduct() error = %v, want ErrConnection", err)
	}
}

func TestCore_ValidationSkipsTransport(t *testing.T) {
	tr := mock.New()
	core := newTestCore(tr)

	_, err := core.Search(context.Background(), SearchParams{
		Query:       "shirt",
		ImageURL:    "https://example.com/a.jpg",
		Base64Image: "aGVsbG8=",
	})
	if !errors.Is(err, catalog.ErrValidation) {
		t.Fatalf("Search() error = %v, want ErrValidation", err)
	}

	_, err = core.GetProduct(context.Background(), "")
	if !errors.Is(err, catalog.ErrValidation) {
		t.Fatalf("GetProduct() error = %v, want ErrValidation", err)
	}

	if tr.CallCount != 0 {
		t.Errorf("transport called %d times, want 0", tr.CallCount)
	}
}

func TestCore_UndecodableSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing required id", `{"title": "no id"}`},
		{"malformed json", `{broken`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mock.New().WithResponse(http.StatusOK, []byte(tt.body))
			core := newTestCore(tr)

			_, err := core.GetProduct(context.Background(), "prod-1")
			if !errors.Is(err, catalog.ErrServer) {
				t.Errorf("GetProduct() error = %v, want ErrServer", err)
			}
		})
	}
}

func TestCore_APIKeyHeader(t *testing.T) {
	tr := mock.New().WithResponse(http.StatusOK, []byte(productBody))
	core := newTestCore(tr)

	_, err := core.GetProduct(context.Background(), "prod-1")
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got := tr.LastRequest.Header.Get("X-API-Key"); got != "test-key" {
		t.Errorf("X-API-Key = %q, want %q", got, "test-key")
	}
}

func TestCore_Success(t *testing.T) {
	tr := mock.New().WithResponse(http.StatusOK, []byte(productBody))
	core := newTestCore(tr)

	product, err := core.GetProduct(context.Background(), "prod-1")
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if product.ID != "prod-1" || product.Title != "Linen Shirt" {
		t.Errorf("GetProduct() = %+v, want prod-1/Linen Shirt", product)
	}
	if tr.CallCount != 1 {
		t.Errorf("transport called %d times, want 1", tr.CallCount)
	}
}

func TestCore_GetBrandsRequestShape(t *testing.T) {
	tr := mock.New().WithResponse(http.StatusOK, []byte(`{"brands": [], "page": 2, "size": 50, "total": 0}`))
	core := newTestCore(tr)

	_, err := core.GetBrands(context.Background(), BrandListParams{Page: 2, Size: 50})
	if err != nil {
		t.Fatalf("GetBrands() error = %v", err)
	}
	if got := tr.LastRequest.Query.Encode(); got != "page=2&size=50" {
		t.Errorf("query = %q, want %q", got, "page=2&size=50")
	}
	if tr.LastRequest.Path != "/v1/brands" {
		t.Errorf("path = %q, want /v1/brands", tr.LastRequest.Path)
	}
}
