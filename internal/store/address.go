package store

import (
	"context"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
)

// AddressAPI is the slice of the backend the address store needs.
type AddressAPI interface {
	Addresses(ctx context.Context) ([]model.Address, error)
	AddAddress(ctx context.Context, in api.AddressInput) (*model.Address, error)
	UpdateAddress(ctx context.Context, id int64, in api.AddressInput) (*model.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
	SetDefaultAddress(ctx context.Context, id int64) (*model.Address, error)
}

// AddressStore is a plain resource store plus the set-default operation.
type AddressStore struct {
	*Resource[model.Address, api.AddressInput]
	api AddressAPI
}

func NewAddressStore(cli AddressAPI, bus EventBus.Bus, log *zap.Logger) *AddressStore {
	r := NewResource[model.Address, api.AddressInput](TopicAddress, Endpoints[model.Address, api.AddressInput]{
		FetchAll: cli.Addresses,
		Create:   cli.AddAddress,
		Update:   cli.UpdateAddress,
		Remove:   cli.DeleteAddress,
		ID:       func(a model.Address) int64 { return a.AddressID },
	}, bus, log)
	return &AddressStore{Resource: r, api: cli}
}

// SetDefault flips the default server-side, then refetches the list: the
// isDefault flags are server-owned (at most one default per user) and are
// never patched locally.
func (s *AddressStore) SetDefault(ctx context.Context, id int64) error {
	s.begin(true)
	if _, err := s.api.SetDefaultAddress(ctx, id); err != nil {
		s.fail("set default", err)
		return err
	}
	list, err := s.eps.FetchAll(ctx)
	if err != nil {
		s.fail("set default refetch", err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.list = list
	s.mu.Unlock()
	s.notify()
	return nil
}
