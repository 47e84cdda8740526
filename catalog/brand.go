package catalog

// Brand is a brand record. ID and Name are always present; Description,
// Website and LogoURL are empty when the server omitted them.
type Brand struct {
	ID           string
	Name         string
	Description  string
	Website      string
	LogoURL      string
	ProductCount int
}

// BrandList is one page of the brand listing, in server order.
type BrandList struct {
	Brands []Brand
	Page   int
	Size   int
	Total  int
}
