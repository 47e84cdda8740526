// Package catalog holds the value objects returned by the Stylora API and
// the error taxonomy shared by both client facades. Everything here is plain
// data: constructed once from wire payloads or caller input, never mutated.
package catalog

import "github.com/shopspring/decimal"

// Gender is the target audience segment of a product.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
	GenderKids   Gender = "kids"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex, GenderKids:
		return true
	}
	return false
}

// Availability is the stock status of a product. The set is closed on the
// client side; wire values outside it parse to AvailabilityUnknown.
type Availability string

const (
	AvailabilityInStock      Availability = "InStock"
	AvailabilityOutOfStock   Availability = "OutOfStock"
	AvailabilityPreOrder     Availability = "PreOrder"
	AvailabilityLimited      Availability = "LimitedAvailability"
	AvailabilityBackOrder    Availability = "BackOrder"
	AvailabilityDiscontinued Availability = "Discontinued"
	AvailabilitySoldOut      Availability = "SoldOut"
	AvailabilityUnknown      Availability = "Unknown"
)

// ParseAvailability maps a wire value onto the closed set. Unmapped values
// become AvailabilityUnknown rather than an error so additive server-side
// states never break decoding.
func ParseAvailability(s string) Availability {
	switch Availability(s) {
	case AvailabilityInStock, AvailabilityOutOfStock, AvailabilityPreOrder,
		AvailabilityLimited, AvailabilityBackOrder, AvailabilityDiscontinued,
		AvailabilitySoldOut, AvailabilityUnknown:
		return Availability(s)
	}
	return AvailabilityUnknown
}

// Product is a single catalog entry. ID and Title are always present; every
// other field may be its zero value when the server omitted it. Score is
// populated only on search results, never on direct detail lookups.
type Product struct {
	ID           string
	Title        string
	BrandName    string
	Description  string
	Materials    []string
	KeyFeatures  []string
	Gender       Gender
	Price        *decimal.Decimal
	Availability Availability
	ImageURLs    []string
	Score        float64
}

// SearchResponse is the envelope of a search call. Products keep the
// server-provided ranking order.
type SearchResponse struct {
	Products []Product
	Total    int
}
