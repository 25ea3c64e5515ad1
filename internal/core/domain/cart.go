package domain

import "github.com/shopspring/decimal"

type (
	CartLineItem struct {
		ID           string
		ProductName  string
		Price        decimal.Decimal
		Quantity     int
		Image        string
		Availability string
	}

	Cart struct {
		LineItems []CartLineItem
		Subtotal  decimal.Decimal
	}

	CheckoutSession struct {
		CheckoutID  string
		RedirectURL string
	}
)

// Total is the line item contribution to the cart subtotal.
func (i CartLineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
