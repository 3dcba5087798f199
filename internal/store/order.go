package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
)

// OrderAPI is the slice of the backend the order store needs.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (*model.Order, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.Order, error)
	ConfirmPayment(ctx context.Context, req api.ConfirmPaymentRequest) (string, error)
}

type OrderState struct {
	Orders  []model.Order
	Current *model.Order
	Loading bool
	Err     string
}

// OrderStore holds the order history plus the order currently in focus
// (just placed, or opened from the history).
type OrderStore struct {
	mu  sync.RWMutex
	api OrderAPI
	bus EventBus.Bus
	log *zap.Logger

	orders  []model.Order
	current *model.Order
	loading bool
	err     string
}

func NewOrderStore(cli OrderAPI, bus EventBus.Bus, log *zap.Logger) *OrderStore {
	return &OrderStore{api: cli, bus: bus, log: log}
}

func (s *OrderStore) State() OrderState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := OrderState{
		Orders:  append([]model.Order(nil), s.orders...),
		Loading: s.loading,
		Err:     s.err,
	}
	if s.current != nil {
		o := *s.current
		o.Items = append([]model.OrderItem(nil), s.current.Items...)
		state.Current = &o
	}
	return state
}

// PlaceOrder prepends the new order, most-recent-first, and makes it
// current.
func (s *OrderStore) PlaceOrder(ctx context.Context, req api.PlaceOrderRequest) (*model.Order, error) {
	s.begin(true)
	order, err := s.api.PlaceOrder(ctx, req)
	if err != nil {
		s.fail("place", err)
		return nil, err
	}
	s.mu.Lock()
	s.loading = false
	s.current = order
	s.orders = append([]model.Order{*order}, s.orders...)
	s.mu.Unlock()
	s.notify()
	return order, nil
}

func (s *OrderStore) FetchMyOrders(ctx context.Context) ([]model.Order, error) {
	s.begin(false)
	orders, err := s.api.MyOrders(ctx)
	if err != nil {
		s.fail("fetch all", err)
		return nil, err
	}
	s.mu.Lock()
	s.loading = false
	s.orders = orders
	s.mu.Unlock()
	s.notify()
	return orders, nil
}

// FetchOrder loads one order into Current; the history list is untouched.
func (s *OrderStore) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.api.OrderByID(ctx, id)
	if err != nil {
		s.fail("fetch one", err)
		return nil, err
	}
	s.mu.Lock()
	s.current = order
	s.mu.Unlock()
	s.notify()
	return order, nil
}

// ConfirmPayment marks the order paid on success. The endpoint returns
// only an acknowledgement string, so the status fields are patched locally
// rather than replaced from a response aggregate; the patch covers both
// the current order and its entry in the history list.
func (s *OrderStore) ConfirmPayment(ctx context.Context, orderID int64, transactionID string) (string, error) {
	s.begin(true)
	ack, err := s.api.ConfirmPayment(ctx, api.ConfirmPaymentRequest{OrderID: orderID, TransactionID: transactionID})
	if err != nil {
		s.fail("confirm payment", err)
		return "", err
	}
	s.mu.Lock()
	s.loading = false
	if s.current != nil && s.current.OrderID == orderID {
		s.current.PaymentStatus = model.PaymentStatusCompleted
		s.current.Status = model.OrderConfirmed
	}
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i].PaymentStatus = model.PaymentStatusCompleted
			s.orders[i].Status = model.OrderConfirmed
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return ack, nil
}

func (s *OrderStore) ClearCurrentOrder() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) ClearError() {
	s.mu.Lock()
	if s.err == "" {
		s.mu.Unlock()
		return
	}
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) begin(clearErr bool) {
	s.mu.Lock()
	s.loading = true
	if clearErr {
		s.err = ""
	}
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) fail(op string, err error) {
	s.log.Error("order operation failed", zap.String("op", op), zap.Error(err))
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
	s.notify()
}

func (s *OrderStore) notify() {
	if s.bus != nil {
		s.bus.Publish(TopicOrder)
	}
}
