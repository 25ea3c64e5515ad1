package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrdersProvider struct {
	mock.Mock
}

func (m *MockOrdersProvider) FetchOrders(
	ctx context.Context,
) ([]domain.CartLineItem, error) {
	args := m.Called(ctx)
	if items := args.Get(0); items != nil {
		return items.([]domain.CartLineItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCheckoutCreator struct {
	mock.Mock
}

func (m *MockCheckoutCreator) CreateCheckout(
	ctx context.Context, cart domain.Cart,
) (domain.CheckoutSession, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(domain.CheckoutSession), args.Error(1)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func twoLineItems() []domain.CartLineItem {
	return []domain.CartLineItem{
		{
			ID:           "item1",
			ProductName:  "Product 1",
			Price:        decimal.NewFromInt(100),
			Quantity:     2,
			Availability: "In Stock",
		},
		{
			ID:           "item2",
			ProductName:  "Product 2",
			Price:        decimal.NewFromInt(50),
			Quantity:     1,
			Availability: "In Stock",
		},
	}
}

func requireSubtotal(t *testing.T, cart domain.Cart, want int64) {
	t.Helper()
	require.True(
		t, cart.Subtotal.Equal(decimal.NewFromInt(want)),
		"subtotal %s, want %d", cart.Subtotal, want,
	)
}

func TestCartServiceLoad(t *testing.T) {
	t.Run("ReplacesItemsAndRecomputesSubtotal", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		s := service.NewCartService(orders, nil, nil)
		cart, err := s.Load(t.Context())
		require.NoError(t, err)

		require.Len(t, cart.LineItems, 2)
		requireSubtotal(t, cart, 250)
	})

	t.Run("FailureLeavesStateUntouched", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).
			Return(twoLineItems(), nil).Once()
		orders.On("FetchOrders", mock.Anything).
			Return(nil, domain.ErrRemote).Once()

		s := service.NewCartService(orders, nil, nil)
		_, err := s.Load(t.Context())
		require.NoError(t, err)

		cart, err := s.Load(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRemote)

		require.Len(t, cart.LineItems, 2)
		requireSubtotal(t, cart, 250)
	})
}

func TestCartServiceRemoveItem(t *testing.T) {
	newLoadedCart := func(t *testing.T) *service.CartService {
		t.Helper()
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)
		s := service.NewCartService(orders, nil, nil)
		_, err := s.Load(t.Context())
		require.NoError(t, err)
		return s
	}

	t.Run("RemovesAndRecomputes", func(t *testing.T) {
		s := newLoadedCart(t)

		cart := s.RemoveItem(t.Context(), "item2")
		require.Len(t, cart.LineItems, 1)
		assert.Equal(t, "item1", cart.LineItems[0].ID)
		requireSubtotal(t, cart, 200)
	})

	t.Run("AbsentIDIsNoOp", func(t *testing.T) {
		s := newLoadedCart(t)

		cart := s.RemoveItem(t.Context(), "missing")
		require.Len(t, cart.LineItems, 2)
		requireSubtotal(t, cart, 250)
	})

	t.Run("RemoveAllLeavesZeroSubtotal", func(t *testing.T) {
		s := newLoadedCart(t)

		s.RemoveItem(t.Context(), "item1")
		cart := s.RemoveItem(t.Context(), "item2")
		assert.Empty(t, cart.LineItems)
		requireSubtotal(t, cart, 0)
	})

	t.Run("ProducesRemovalEvent", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		events := new(MockEventsProducer)
		events.On(
			"ProduceEvent", mock.Anything,
			mock.MatchedBy(func(evt domain.ClientEvent) bool {
				return evt.Type == domain.EventCartItemRemoved &&
					evt.SubjectID == "item2"
			}),
		).Return(nil).Once()

		s := service.NewCartService(orders, nil, events)
		_, err := s.Load(t.Context())
		require.NoError(t, err)

		s.RemoveItem(t.Context(), "item2")
		events.AssertExpectations(t)
	})
}

func TestCartServiceSubscribe(t *testing.T) {
	t.Run("ReceivesEveryUpdate", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		s := service.NewCartService(orders, nil, nil)
		updates, cancel := s.Subscribe()
		defer cancel()

		_, err := s.Load(t.Context())
		require.NoError(t, err)

		cart := <-updates
		requireSubtotal(t, cart, 250)

		s.RemoveItem(t.Context(), "item1")
		cart = <-updates
		requireSubtotal(t, cart, 50)
	})

	t.Run("SlowSubscriberKeepsLatestSnapshot", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		s := service.NewCartService(orders, nil, nil)
		updates, cancel := s.Subscribe()
		defer cancel()

		_, err := s.Load(t.Context())
		require.NoError(t, err)

		s.RemoveItem(t.Context(), "item1")

		cart := <-updates
		requireSubtotal(t, cart, 50)
		assert.Empty(t, updates)
	})
}

func TestCartServiceCheckout(t *testing.T) {
	t.Run("ReturnsRedirectSession", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		session := domain.CheckoutSession{
			CheckoutID:  "checkout123",
			RedirectURL: "https://example.com/checkout/redirect",
		}
		checkout := new(MockCheckoutCreator)
		checkout.On("CreateCheckout", mock.Anything, mock.Anything).
			Return(session, nil)

		s := service.NewCartService(orders, checkout, nil)
		_, err := s.Load(t.Context())
		require.NoError(t, err)

		got, err := s.Checkout(t.Context())
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("FailureNeverMutatesCart", func(t *testing.T) {
		orders := new(MockOrdersProvider)
		orders.On("FetchOrders", mock.Anything).Return(twoLineItems(), nil)

		checkout := new(MockCheckoutCreator)
		checkout.On("CreateCheckout", mock.Anything, mock.Anything).
			Return(domain.CheckoutSession{}, errors.New("session service down"))

		s := service.NewCartService(orders, checkout, nil)
		_, err := s.Load(t.Context())
		require.NoError(t, err)

		_, err = s.Checkout(t.Context())
		require.Error(t, err)

		cart := s.Cart()
		require.Len(t, cart.LineItems, 2)
		requireSubtotal(t, cart, 250)
	})
}
