package storeapi

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

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
)

type productsEnvelope struct {
	Items       []product `json:"items"`
	CurrentPage int       `json:"currentPage"`
	HasPrev     bool      `json:"hasPrev"`
	HasNext     bool      `json:"hasNext"`
}

type cartItem struct {
	ID          string `json:"_id"`
	ProductName struct {
		Original string `json:"original"`
	} `json:"productName"`
	Price struct {
		Amount float64 `json:"amount"`
	} `json:"price"`
	Quantity     int    `json:"quantity"`
	Image        string `json:"image"`
	Availability struct {
		Status string `json:"status"`
	} `json:"availability"`
}

type ordersResponse struct {
	LineItems []cartItem `json:"lineItems"`
}

type slide struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Img         string `json:"img"`
	URL         string `json:"url"`
	Bg          string `json:"bg"`
}

type verifyUserResponse struct {
	Success bool `json:"success"`
	Data    struct {
		UID string `json:"uid"`
	} `json:"data"`
	IDToken string `json:"idToken"`
}

type createUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type createUserResponse struct {
	Error   string `json:"error"`
	Results bool   `json:"results"`
	UserID  string `json:"userId"`
}

func productToDomain(v product) domain.Product {
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

func cartItemToDomain(v cartItem) domain.CartLineItem {
	return domain.CartLineItem{
		ID:           v.ID,
		ProductName:  v.ProductName.Original,
		Price:        decimal.NewFromFloat(v.Price.Amount),
		Quantity:     v.Quantity,
		Image:        v.Image,
		Availability: v.Availability.Status,
	}
}

func slideToDomain(v slide) domain.Slide {
	return domain.Slide{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Img:         v.Img,
		URL:         v.URL,
		Bg:          v.Bg,
	}
}
