package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stylora/stylora-go/catalog"
)

// errMissingField marks a payload that lacks an identity field the server is
// contractually required to provide. The core maps it to catalog.ErrServer.
var errMissingField = errors.New("required field missing")

type wireProduct struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	BrandName    string           `json:"brand_name"`
	Description  string           `json:"description"`
	Materials    []string         `json:"materials"`
	KeyFeatures  []string         `json:"key_features"`
	Gender       string           `json:"gender"`
	Price        *decimal.Decimal `json:"price"`
	Availability string           `json:"availability"`
	ImageURLs    []string         `json:"image_urls"`
	Score        float64          `json:"score"`
}

func (w *wireProduct) toDomain() (catalog.Product, error) {
	if w.ID == "" {
		return catalog.Product{}, fmt.Errorf("%w: product id", errMissingField)
	}
	if w.Title == "" {
		return catalog.Product{}, fmt.Errorf("%w: product title", errMissingField)
	}

	var availability catalog.Availability
	if w.Availability != "" {
		availability = catalog.ParseAvailability(w.Availability)
	}

	return catalog.Product{
		ID:           w.ID,
		Title:        w.Title,
		BrandName:    w.BrandName,
		Description:  w.Description,
		Materials:    w.Materials,
		KeyFeatures:  w.KeyFeatures,
		Gender:       catalog.Gender(w.Gender),
		Price:        w.Price,
		Availability: availability,
		ImageURLs:    w.ImageURLs,
		Score:        w.Score,
	}, nil
}

type wireBrand struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	LogoURL      string `json:"logo_url"`
	ProductCount int    `json:"product_count"`
}

func (w *wireBrand) toDomain() (catalog.Brand, error) {
	if w.ID == "" {
		return catalog.Brand{}, fmt.Errorf("%w: brand id", errMissingField)
	}
	if w.Name == "" {
		return catalog.Brand{}, fmt.Errorf("%w: brand name", errMissingField)
	}
	return catalog.Brand{
		ID:           w.ID,
		Name:         w.Name,
		Description:  w.Description,
		Website:      w.Website,
		LogoURL:      w.LogoURL,
		ProductCount: w.ProductCount,
	}, nil
}

type wireSearchResponse struct {
	Results []wireProduct `json:"results"`
	Total   int           `json:"total"`
}

type wireBrandList struct {
	Brands []wireBrand `json:"brands"`
	Page   int         `json:"page"`
	Size   int         `json:"size"`
	Total  int         `json:"total"`
}

func decodeSearchResponse(body []byte) (*catalog.SearchResponse, error) {
	var wire wireSearchResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("unmarshal search response: %w", err)
	}

	products := make([]catalog.Product, 0, len(wire.Results))
	for i := range wire.Results {
		product, err := wire.Results[i].toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return &catalog.SearchResponse{
		Products: products,
		Total:    wire.Total,
	}, nil
}

func decodeProduct(body []byte) (*catalog.Product, error) {
	var wire wireProduct
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	product, err := wire.toDomain()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func decodeBrandList(body []byte) (*catalog.BrandList, error) {
	var wire wireBrandList
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("unmarshal brand list: %w", err)
	}

	brands := make([]catalog.Brand, 0, len(wire.Brands))
	for i := range wire.Brands {
		brand, err := wire.Brands[i].toDomain()
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}

	return &catalog.BrandList{
		Brands: brands,
		Page:   wire.Page,
		Size:   wire.Size,
		Total:  wire.Total,
	}, nil
}

func decodeBrand(body []byte) (*catalog.Brand, error) {
	var wire wireBrand
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("unmarshal brand: %w", err)
	}
	brand, err := wire.toDomain()
	if err != nil {
		return nil, err
	}
	return &brand, nil
}
