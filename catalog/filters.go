package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SearchFilters narrows a search call. A nil or zero-value filter set means
// "no filtering". The client never mutates a filter set it is handed.
type SearchFilters struct {
	Brands       []string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Gender       Gender
	Availability []Availability
}

// Validate reports whether the filter set is internally consistent. A nil
// receiver is a valid empty filter set.
func (f *SearchFilters) Validate() error {
	if f == nil {
		return nil
	}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return fmt.Errorf("%w: min_price must be non-negative", ErrValidation)
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return fmt.Errorf("%w: max_price must be non-negative", ErrValidation)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return fmt.Errorf("%w: min_price %s greater than max_price %s",
			ErrValidation, f.MinPrice, f.MaxPrice)
	}
	if f.Gender != "" && !f.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrValidation, f.Gender)
	}
	return nil
}
