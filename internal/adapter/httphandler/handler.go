package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	msgAuthRejected   = "Invalid email or password!"
	msgWentWrong      = "Something went wrong!"
	msgMissingFields  = "Please fill in all required fields!"
	msgNotFound       = "Not found"
	msgNotImplemented = "Not implemented"
)

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status, msg := errToStatus(err)
	log.Warn("request failed", "status", status, "err", err)
	writeJSON(w, log, status, ErrorResponse{Error: msg})
}

func errToStatus(err error) (int, string) {
	var remoteAuthErr *domain.RemoteAuthError
	switch {
	case errors.As(err, &remoteAuthErr):
		return http.StatusUnauthorized, remoteAuthErr.Message
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized, msgAuthRejected
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, msgMissingFields
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented, msgNotImplemented
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrRemote):
		return http.StatusBadGateway, msgWentWrong
	default:
		return http.StatusInternalServerError, msgWentWrong
	}
}

func productToView(p domain.Product) ProductView {
	v := ProductView{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.Display(),
		BasePrice:     p.Price.Base,
		Image:         p.Media.Main.URL,
		ProductType:   p.ProductType,
		StockQuantity: p.StockQuantity,
	}

	for _, img := range p.Media.Items {
		v.GalleryImages = append(v.GalleryImages, img.URL)
	}
	for _, s := range p.InfoSections {
		v.InfoSections = append(v.InfoSections, InfoSectionView{
			Title:       s.Title,
			Description: s.Description,
		})
	}
	return v
}

func cartToView(c domain.Cart) CartView {
	v := CartView{
		LineItems: make([]CartItemView, 0, len(c.LineItems)),
		Subtotal:  c.Subtotal,
	}
	for _, item := range c.LineItems {
		v.LineItems = append(v.LineItems, CartItemView{
			ID:           item.ID,
			ProductName:  item.ProductName,
			Price:        item.Price,
			Quantity:     item.Quantity,
			Total:        item.Total(),
			Image:        item.Image,
			Availability: item.Availability,
		})
	}
	return v
}
