package httphandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

// GET /v1/products?name=&type=&minPrice=&maxPrice=&page=&category=
// GET /v1/products/{slug}
// GET /v1/slides

type CatalogHandler struct {
	catalog port.CatalogBrowser
	slides  port.SlidesBrowser
}

func RegisterCatalog(
	mux *http.ServeMux,
	catalog port.CatalogBrowser,
	slides port.SlidesBrowser,
) {
	h := CatalogHandler{catalog, slides}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{slug}", h.GetProduct)
	mux.HandleFunc("GET /v1/slides", h.GetSlides)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	criteria, err := parseFilterCriteria(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	page, err := h.catalog.BrowsePage(r.Context(), criteria)
	if err != nil {
		writeError(w, log, err)
		return
	}

	view := CatalogPageView{
		Items:       make([]ProductView, 0, len(page.Items)),
		CurrentPage: page.CurrentPage,
		HasPrev:     page.HasPrev,
		HasNext:     page.HasNext,
		Category:    criteria.Category,
	}
	for _, p := range page.Items {
		view.Items = append(view.Items, productToView(p))
	}

	writeJSON(w, log, http.StatusOK, view)
	log.Info("served catalog page", "page", page.CurrentPage, "nItems", len(page.Items))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	slug := r.PathValue("slug")

	p, err := h.catalog.ProductBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, productToView(p))
}

func (h CatalogHandler) GetSlides(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetSlides"
	log := slog.With("op", op)

	slides, err := h.slides.Slides(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	views := make([]SlideView, 0, len(slides))
	for _, s := range slides {
		views = append(views, SlideView{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Img:         s.Img,
			URL:         s.URL,
			Bg:          s.Bg,
		})
	}

	writeJSON(w, log, http.StatusOK, views)
}

func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()

	c := domain.FilterCriteria{
		Name:        q.Get("name"),
		ProductType: q.Get("type"),
		Category:    q.Get("category"),
	}

	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c, fmt.Errorf("minPrice: %w", domain.ErrValidation)
		}
		c.MinPrice = &d
	}

	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c, fmt.Errorf("maxPrice: %w", domain.ErrValidation)
		}
		c.MaxPrice = &d
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c, fmt.Errorf("page: %w", domain.ErrValidation)
		}
		c.Page = n
	}

	return c, nil
}
