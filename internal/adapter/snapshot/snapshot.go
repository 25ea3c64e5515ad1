// Package snapshot serves product details from the build-time catalog
// snapshot document, keyed by slug.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.SnapshotCatalog = Catalog{}

type (
	product struct {
		ID                     string        `json:"_id"`
		Slug                   string        `json:"slug"`
		Name                   string        `json:"name"`
		Description            string        `json:"description"`
		Price                  productPrice  `json:"price"`
		Media                  productMedia  `json:"media"`
		AdditionalInfoSections []infoSection `json:"additionalInfoSections"`
		ProductType            string        `json:"productType"`
		Stock                  *stock        `json:"stock"`
	}

	productPrice struct {
		Price           float64  `json:"price"`
		DiscountedPrice *float64 `json:"discountedPrice"`
	}

	productMedia struct {
		MainMedia mediaItem   `json:"mainMedia"`
		Items     []mediaItem `json:"items"`
	}

	mediaItem struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	}

	infoSection struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	stock struct {
		Quantity int `json:"quantity"`
	}

	document struct {
		Items []product `json:"items"`
	}
)

type Catalog struct {
	bySlug map[string]domain.Product
}

// Load reads the snapshot document once at startup.
func Load(path string) (Catalog, error) {
	const op = "snapshot.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	bySlug := make(map[string]domain.Product, len(doc.Items))
	for _, v := range doc.Items {
		p := toDomain(v)
		bySlug[p.Slug] = p
	}
	return Catalog{bySlug}, nil
}

func (c Catalog) ProductBySlug(slug string) (domain.Product, error) {
	const op = "Catalog.ProductBySlug"

	p, ok := c.bySlug[slug]
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: %q: %w", op, slug, domain.ErrNotFound,
		)
	}
	return p, nil
}

func (c Catalog) Len() int {
	return len(c.bySlug)
}

func toDomain(v product) domain.Product {
	dp := domain.Product{
		ID:          v.ID,
		Slug:        v.Slug,
		Name:        v.Name,
		Description: v.Description,
		ProductType: v.ProductType,
		Price: domain.ProductPrice{
			Base: decimal.NewFromFloat(v.Price.Price),
		},
	}

	if v.Price.DiscountedPrice != nil {
		d := decimal.NewFromFloat(*v.Price.DiscountedPrice)
		dp.Price.Discounted = &d
	}

	dp.Media.Main = domain.ProductImage{URL: v.Media.MainMedia.Image.URL}
	dp.Media.Items = make([]domain.ProductImage, len(v.Media.Items))
	for i := range v.Media.Items {
		dp.Media.Items[i].URL = v.Media.Items[i].Image.URL
	}

	for _, s := range v.AdditionalInfoSections {
		dp.InfoSections = append(dp.InfoSections, domain.InfoSection{
			Title:       s.Title,
			Description: s.Description,
		})
	}

	if v.Stock != nil {
		dp.StockQuantity = v.Stock.Quantity
	}
	return dp
}
