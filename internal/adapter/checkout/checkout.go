// Package checkout creates checkout sessions. The external session
// service is not wired yet; sessions carry a fixed redirect URL.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CheckoutCreator = SessionCreator{}

type SessionCreator struct {
	redirectURL string
}

func NewSessionCreator(redirectURL string) SessionCreator {
	return SessionCreator{redirectURL}
}

func (c SessionCreator) CreateCheckout(
	ctx context.Context, cart domain.Cart,
) (domain.CheckoutSession, error) {
	const op = "SessionCreator.CreateCheckout"

	if err := ctx.Err(); err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(cart.LineItems) == 0 {
		return domain.CheckoutSession{}, fmt.Errorf(
			"%s: empty cart: %w", op, domain.ErrValidation,
		)
	}

	return domain.CheckoutSession{
		CheckoutID:  uuid.New().String(),
		RedirectURL: c.redirectURL,
	}, nil
}
