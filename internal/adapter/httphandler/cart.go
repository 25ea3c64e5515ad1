package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/cart
// DELETE /v1/cart/items/{id}
// POST /v1/checkout

type CartPort interface {
	port.CartLoader
	port.CartItemRemover
	port.CheckoutStarter
}

type CartHandler struct {
	cart CartPort
}

func RegisterCart(mux *http.ServeMux, cart CartPort) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	cart, err := h.cart.Load(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, cartToView(cart))
	log.Info("served cart", "nItems", len(cart.LineItems))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	itemID := r.PathValue("id")

	cart := h.cart.RemoveItem(r.Context(), itemID)

	writeJSON(w, log, http.StatusOK, cartToView(cart))
	log.Info("removed cart item", "itemID", itemID)
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	session, err := h.cart.Checkout(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	view := CheckoutView{
		CheckoutID:  session.CheckoutID,
		RedirectURL: session.RedirectURL,
	}
	writeJSON(w, log, http.StatusOK, view)
	log.Info("checkout started", "checkoutID", session.CheckoutID)
}
