package domain

import "github.com/shopspring/decimal"

type (
	Product struct {
		ID            string
		Slug          string
		Name          string
		Description   string
		Price         ProductPrice
		Media         ProductMedia
		InfoSections  []InfoSection
		ProductType   string
		StockQuantity int
	}

	ProductPrice struct {
		Base       decimal.Decimal
		Discounted *decimal.Decimal
	}

	ProductMedia struct {
		Main  ProductImage
		Items []ProductImage
	}

	ProductImage struct {
		URL string
	}

	InfoSection struct {
		Title       string
		Description string
	}
)

// Display returns the price shown to the client.
// A discounted amount is honored only when strictly below the base price.
func (p ProductPrice) Display() decimal.Decimal {
	if p.Discounted != nil && p.Discounted.LessThan(p.Base) {
		return *p.Discounted
	}
	return p.Base
}

type Slide struct {
	ID          int
	Title       string
	Description string
	Img         string
	URL         string
	Bg          string
}

// FilterCriteria narrows the catalog listing. All fields are optional and
// independently combinable. Category selects the page heading only and
// never participates in filtering.
type FilterCriteria struct {
	Name        string
	ProductType string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Page        int
	Category    string
}

type CatalogPage struct {
	Items       []Product
	CurrentPage int
	HasPrev     bool
	HasNext     bool
}
