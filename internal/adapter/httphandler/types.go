package httphandler

import "github.com/shopspring/decimal"

type (
	ProductView struct {
		ID            string            `json:"id"`
		Slug          string            `json:"slug"`
		Name          string            `json:"name"`
		Description   string            `json:"description,omitempty"`
		Price         decimal.Decimal   `json:"price"`
		BasePrice     decimal.Decimal   `json:"basePrice"`
		Image         string            `json:"image,omitempty"`
		GalleryImages []string          `json:"galleryImages,omitempty"`
		InfoSections  []InfoSectionView `json:"infoSections,omitempty"`
		ProductType   string            `json:"productType"`
		StockQuantity int               `json:"stockQuantity"`
	}

	InfoSectionView struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	CatalogPageView struct {
		Items       []ProductView `json:"items"`
		CurrentPage int           `json:"currentPage"`
		HasPrev     bool          `json:"hasPrev"`
		HasNext     bool          `json:"hasNext"`
		Category    string        `json:"category,omitempty"`
	}

	SlideView struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Img         string `json:"img"`
		URL         string `json:"url"`
		Bg          string `json:"bg"`
	}
)

type (
	CartItemView struct {
		ID           string          `json:"id"`
		ProductName  string          `json:"productName"`
		Price        decimal.Decimal `json:"price"`
		Quantity     int             `json:"quantity"`
		Total        decimal.Decimal `json:"total"`
		Image        string          `json:"image,omitempty"`
		Availability string          `json:"availability,omitempty"`
	}

	CartView struct {
		LineItems []CartItemView  `json:"lineItems"`
		Subtotal  decimal.Decimal `json:"subtotal"`
	}

	CheckoutView struct {
		CheckoutID  string `json:"checkoutId"`
		RedirectURL string `json:"redirectUrl"`
	}
)

type (
	AuthFormView struct {
		Mode        string   `json:"mode"`
		Title       string   `json:"title"`
		ButtonTitle string   `json:"buttonTitle"`
		Fields      []string `json:"fields"`
	}

	AuthRequest struct {
		Username         string `json:"username"`
		Email            string `json:"email"`
		Password         string `json:"password"`
		VerificationCode string `json:"verificationCode"`
	}

	AuthResultView struct {
		Message    string `json:"message"`
		RedirectTo string `json:"redirectTo,omitempty"`
		UserID     string `json:"userId,omitempty"`
	}
)

type ErrorResponse struct {
	Error string `json:"error"`
}
