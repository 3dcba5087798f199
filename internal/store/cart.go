package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/model"
)

// CartAPI is the slice of the backend the cart store needs. Every call
// returns the entire updated cart.
type CartAPI interface {
	Cart(ctx context.Context) (*model.Cart, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) (*model.Cart, error)
	UpdateCartItem(ctx context.Context, cartItemID int64, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, cartItemID int64) (*model.Cart, error)
}

type CartState struct {
	Cart    *model.Cart
	Loading bool
	Err     string
}

// CartStore holds the user's single cart. Mutations replace the aggregate
// wholesale with the server's response, so totals never drift from the
// backend's.
type CartStore struct {
	mu  sync.RWMutex
	api CartAPI
	bus EventBus.Bus
	log *zap.Logger

	cart    *model.Cart
	loading bool
	err     string
}

func NewCartStore(cli CartAPI, bus EventBus.Bus, log *zap.Logger) *CartStore {
	return &CartStore{api: cli, bus: bus, log: log}
}

func (s *CartStore) State() CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := CartState{Loading: s.loading, Err: s.err}
	if s.cart != nil {
		c := *s.cart
		c.Items = append([]model.CartItem(nil), s.cart.Items...)
		state.Cart = &c
	}
	return state
}

func (s *CartStore) Fetch(ctx context.Context) (*model.Cart, error) {
	return s.mutate(ctx, "fetch", s.api.Cart)
}

func (s *CartStore) AddItem(ctx context.Context, productID int64, quantity int) (*model.Cart, error) {
	return s.mutate(ctx, "add item", func(ctx context.Context) (*model.Cart, error) {
		return s.api.AddCartItem(ctx, productID, quantity)
	})
}

// UpdateItemQuantity forwards quantity as-is, zero included; how the server
// treats it is its contract. Callers that mean "remove" call RemoveItem.
func (s *CartStore) UpdateItemQuantity(ctx context.Context, cartItemID int64, quantity int) (*model.Cart, error) {
	return s.mutate(ctx, "update item", func(ctx context.Context) (*model.Cart, error) {
		return s.api.UpdateCartItem(ctx, cartItemID, quantity)
	})
}

func (s *CartStore) RemoveItem(ctx context.Context, cartItemID int64) (*model.Cart, error) {
	return s.mutate(ctx, "remove item", func(ctx context.Context) (*model.Cart, error) {
		return s.api.RemoveCartItem(ctx, cartItemID)
	})
}

func (s *CartStore) ClearError() {
	s.mu.Lock()
	if s.err == "" {
		s.mu.Unlock()
		return
	}
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// mutate is the shared lifecycle: loading on, call, then either replace
// the cart wholesale or record the error and keep the stale cart.
func (s *CartStore) mutate(ctx context.Context, op string, call func(ctx context.Context) (*model.Cart, error)) (*model.Cart, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
	s.notify()

	cart, err := call(ctx)
	if err != nil {
		s.log.Error("cart operation failed", zap.String("op", op), zap.Error(err))
		s.mu.Lock()
		s.loading = false
		s.err = err.Error()
		s.mu.Unlock()
		s.notify()
		return nil, err
	}

	s.mu.Lock()
	s.loading = false
	s.cart = cart
	s.mu.Unlock()
	s.notify()
	return cart, nil
}

func (s *CartStore) notify() {
	if s.bus != nil {
		s.bus.Publish(TopicCart)
	}
}
