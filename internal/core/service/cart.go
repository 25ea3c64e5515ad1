package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.CartViewer = (*CartService)(nil)
var _ port.CartLoader = (*CartService)(nil)
var _ port.CartItemRemover = (*CartService)(nil)
var _ port.CheckoutStarter = (*CartService)(nil)
var _ port.CartSubscriber = (*CartService)(nil)

// CartService is the single process-wide cart view state.
// Every consumer shares one instance, so two views can never disagree
// about the line items or the subtotal.
type CartService struct {
	orders   port.OrdersProvider
	checkout port.CheckoutCreator
	events   port.ClientEventsProducer

	mu      sync.Mutex
	cart    domain.Cart
	subs    map[int]chan domain.Cart
	nextSub int
}

func NewCartService(
	orders port.OrdersProvider,
	checkout port.CheckoutCreator,
	events port.ClientEventsProducer,
) *CartService {
	return &CartService{
		orders:   orders,
		checkout: checkout,
		events:   events,
		subs:     make(map[int]chan domain.Cart),
	}
}

// Cart returns a snapshot of the current cart state.
func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Load replaces the cart with the remote orders collection and recomputes
// the subtotal. On failure the prior state stays untouched.
func (s *CartService) Load(ctx context.Context) (domain.Cart, error) {
	const op = "CartService.Load"

	if err := ctx.Err(); err != nil {
		return s.Cart(), fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.orders.FetchOrders(ctx)
	if err != nil {
		return s.Cart(), fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.cart.LineItems = items
	s.recomputeSubtotal()
	cart := s.snapshot()
	s.notifyLocked(cart)
	s.mu.Unlock()

	return cart, nil
}

// RemoveItem deletes the line item with the given id. An absent id is a
// no-op, not an error. The subtotal is recomputed unconditionally.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) domain.Cart {
	s.mu.Lock()

	var removed *domain.CartLineItem
	kept := s.cart.LineItems[:0]
	for _, item := range s.cart.LineItems {
		if item.ID == itemID {
			it := item
			removed = &it
			continue
		}
		kept = append(kept, item)
	}
	s.cart.LineItems = kept
	s.recomputeSubtotal()
	cart := s.snapshot()
	s.notifyLocked(cart)
	s.mu.Unlock()

	if removed != nil {
		s.produceEvent(ctx, domain.ClientEvent{
			Type:       domain.EventCartItemRemoved,
			SubjectID:  removed.ID,
			Name:       removed.ProductName,
			Amount:     removed.Price,
			Quantity:   removed.Quantity,
			OccurredAt: time.Now(),
		})
	}

	return cart
}

// Checkout creates a checkout session for the current cart. Cart state is
// never mutated by checkout, success or failure.
func (s *CartService) Checkout(ctx context.Context) (domain.CheckoutSession, error) {
	const op = "CartService.Checkout"
	log := slog.With("op", op)

	cart := s.Cart()

	cs, err := s.checkout.CreateCheckout(ctx, cart)
	if err != nil {
		log.Error("failed to create checkout session", "err", err)
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, err)
	}

	s.produceEvent(ctx, domain.ClientEvent{
		Type:       domain.EventCheckoutStarted,
		SubjectID:  cs.CheckoutID,
		Amount:     cart.Subtotal,
		OccurredAt: time.Now(),
	})

	return cs, nil
}

// Subscribe registers a cart state listener. The returned cancel func
// releases the subscription and closes the channel.
func (s *CartService) Subscribe() (<-chan domain.Cart, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	c := make(chan domain.Cart, 1)
	s.subs[id] = c

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return c, cancel
}

// recomputeSubtotal must run under s.mu after every mutation.
func (s *CartService) recomputeSubtotal() {
	subtotal := decimal.Zero
	for _, item := range s.cart.LineItems {
		subtotal = subtotal.Add(item.Total())
	}
	s.cart.Subtotal = subtotal
}

func (s *CartService) snapshot() domain.Cart {
	return domain.Cart{
		LineItems: slices.Clone(s.cart.LineItems),
		Subtotal:  s.cart.Subtotal,
	}
}

// notifyLocked must run under s.mu so updates publish in mutation order.
// A subscriber that has not drained the previous snapshot keeps only the
// latest one: the stale value is evicted before the new send.
func (s *CartService) notifyLocked(cart domain.Cart) {
	for _, sub := range s.subs {
		select {
		case sub <- cart:
		default:
			select {
			case <-sub:
			default:
			}
			sub <- cart
		}
	}
}

func (s *CartService) produceEvent(ctx context.Context, evt domain.ClientEvent) {
	const op = "CartService.produceEvent"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce client event", "op", op, "err", err)
	}
}
