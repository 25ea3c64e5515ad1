package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Outbound ports.

type ProductsProvider interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

type OrdersProvider interface {
	FetchOrders(context.Context) ([]domain.CartLineItem, error)
}

type SlidesProvider interface {
	FetchSlides(context.Context) ([]domain.Slide, error)
}

type UserVerifier interface {
	VerifyUser(ctx context.Context, idToken string) (domain.Session, error)
}

type UserCreator interface {
	CreateUser(
		ctx context.Context, u domain.NewUser, idToken string,
	) (domain.CreatedUser, error)
}

type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (domain.Credential, error)
	SignUp(ctx context.Context, email, password string) (domain.Credential, error)
}

type SnapshotCatalog interface {
	ProductBySlug(slug string) (domain.Product, error)
}

type CheckoutCreator interface {
	CreateCheckout(context.Context, domain.Cart) (domain.CheckoutSession, error)
}

type SessionStorage interface {
	StoreSession(context.Context, domain.Session) error
	ReadSession(ctx context.Context, userID string) (domain.Session, error)
}

type ClientEventsProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
}

// Inbound ports, implemented by the core services.

type CartViewer interface {
	Cart() domain.Cart
}

type CartLoader interface {
	Load(context.Context) (domain.Cart, error)
}

type CartItemRemover interface {
	RemoveItem(ctx context.Context, itemID string) domain.Cart
}

type CheckoutStarter interface {
	Checkout(context.Context) (domain.CheckoutSession, error)
}

type CartSubscriber interface {
	Subscribe() (updates <-chan domain.Cart, cancel func())
}

type CatalogBrowser interface {
	BrowsePage(context.Context, domain.FilterCriteria) (domain.CatalogPage, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
}

type SlidesBrowser interface {
	Slides(context.Context) ([]domain.Slide, error)
}

type AuthFlow interface {
	Fields(domain.AuthMode) []domain.AuthField
	Form(domain.AuthMode) domain.AuthFormMeta
	Submit(
		ctx context.Context, mode domain.AuthMode, form domain.AuthForm,
	) (domain.AuthResult, error)
}
