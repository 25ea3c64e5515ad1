package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClientEventType string

const (
	EventProductViewed   ClientEventType = "product_viewed"
	EventCartItemRemoved ClientEventType = "cart_item_removed"
	EventCheckoutStarted ClientEventType = "checkout_started"
)

// ClientEvent is a storefront interaction emitted to the analytics pipeline.
type ClientEvent struct {
	Type       ClientEventType
	SubjectID  string
	Name       string
	Amount     decimal.Decimal
	Quantity   int
	OccurredAt time.Time
}
