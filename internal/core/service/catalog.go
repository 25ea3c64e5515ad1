package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)
var _ port.SlidesBrowser = (*CatalogService)(nil)

// SelectPage filters the catalog by the criteria and slices out one page.
// Filters apply in order: name substring (case-insensitive), exact product
// type, base price within [min, max] inclusive. Input order is preserved.
func SelectPage(
	products []domain.Product, c domain.FilterCriteria, pageSize int,
) domain.CatalogPage {
	filtered := products

	if c.Name != "" {
		name := strings.ToLower(c.Name)
		filtered = keep(filtered, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), name)
		})
	}

	if c.ProductType != "" {
		filtered = keep(filtered, func(p domain.Product) bool {
			return p.ProductType == c.ProductType
		})
	}

	if c.MinPrice != nil || c.MaxPrice != nil {
		filtered = keep(filtered, func(p domain.Product) bool {
			if c.MinPrice != nil && p.Price.Base.LessThan(*c.MinPrice) {
				return false
			}
			if c.MaxPrice != nil && p.Price.Base.GreaterThan(*c.MaxPrice) {
				return false
			}
			return true
		})
	}

	// A negative page reads as the first page.
	current := max(c.Page, 0)
	start := current * pageSize
	end := min(start+pageSize, len(filtered))

	page := domain.CatalogPage{
		CurrentPage: current,
		HasPrev:     start > 0,
		HasNext:     start+pageSize < len(filtered),
	}
	if start < end {
		page.Items = filtered[start:end]
	}
	return page
}

func keep(
	ps []domain.Product, pred func(domain.Product) bool,
) (filtered []domain.Product) {
	for _, p := range ps {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CatalogService serves the product listing from the remote catalog and
// product details from the build-time snapshot.
type CatalogService struct {
	products port.ProductsProvider
	slides   port.SlidesProvider
	snapshot port.SnapshotCatalog
	events   port.ClientEventsProducer
	pageSize int
}

func NewCatalogService(
	products port.ProductsProvider,
	slides port.SlidesProvider,
	snapshot port.SnapshotCatalog,
	events port.ClientEventsProducer,
	pageSize int,
) CatalogService {
	return CatalogService{products, slides, snapshot, events, pageSize}
}

func (s CatalogService) BrowsePage(
	ctx context.Context, c domain.FilterCriteria,
) (domain.CatalogPage, error) {
	const op = "CatalogService.BrowsePage"

	if err := ctx.Err(); err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.products.FetchProducts(ctx)
	if err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%s: %w", op, err)
	}

	return SelectPage(products, c, s.pageSize), nil
}

func (s CatalogService) ProductBySlug(
	ctx context.Context, slug string,
) (domain.Product, error) {
	const op = "CatalogService.ProductBySlug"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.snapshot.ProductBySlug(slug)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.produceEvent(ctx, domain.ClientEvent{
		Type:       domain.EventProductViewed,
		SubjectID:  p.ID,
		Name:       p.Name,
		Amount:     p.Price.Display(),
		Quantity:   1,
		OccurredAt: time.Now(),
	})

	return p, nil
}

func (s CatalogService) Slides(ctx context.Context) ([]domain.Slide, error) {
	const op = "CatalogService.Slides"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slides, err := s.slides.FetchSlides(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return slides, nil
}

func (s CatalogService) produceEvent(ctx context.Context, evt domain.ClientEvent) {
	const op = "CatalogService.produceEvent"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce client event", "op", op, "err", err)
	}
}
