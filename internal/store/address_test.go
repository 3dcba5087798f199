package store

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
)

type fakeAddressAPI struct {
	addresses  []model.Address
	defaultErr error

	setDefaultCalls int
	fetchCalls      int
}

func (f *fakeAddressAPI) Addresses(ctx context.Context) ([]model.Address, error) {
	f.fetchCalls++
	return f.addresses, nil
}

func (f *fakeAddressAPI) AddAddress(ctx context.Context, in api.AddressInput) (*model.Address, error) {
	return &model.Address{AddressID: 99, City: in.City}, nil
}

func (f *fakeAddressAPI) UpdateAddress(ctx context.Context, id int64, in api.AddressInput) (*model.Address, error) {
	return &model.Address{AddressID: id, City: in.City}, nil
}

func (f *fakeAddressAPI) DeleteAddress(ctx context.Context, id int64) error { return nil }

func (f *fakeAddressAPI) SetDefaultAddress(ctx context.Context, id int64) (*model.Address, error) {
	f.setDefaultCalls++
	if f.defaultErr != nil {
		return nil, f.defaultErr
	}
	// Server flips the flags; the refetch below observes the result.
	for i := range f.addresses {
		f.addresses[i].IsDefault = f.addresses[i].AddressID == id
	}
	return &f.addresses[0], nil
}

func TestSetDefaultRefetchesList(t *testing.T) {
	f := &fakeAddressAPI{addresses: []model.Address{
		{AddressID: 1, City: "Pune", IsDefault: true},
		{AddressID: 2, City: "Mumbai"},
	}}
	s := NewAddressStore(f, nil, zap.NewNop())
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.SetDefault(context.Background(), 2))
	assert.Equal(t, 1, f.setDefaultCalls)
	assert.Equal(t, 2, f.fetchCalls) // initial fetch plus the refetch

	state := s.State()
	require.Len(t, state.List, 2)
	assert.False(t, state.List[0].IsDefault)
	assert.True(t, state.List[1].IsDefault)
	assert.False(t, state.Loading)
}

func TestSetDefaultFailureSkipsRefetch(t *testing.T) {
	f := &fakeAddressAPI{
		addresses:  []model.Address{{AddressID: 1, IsDefault: true}},
		defaultErr: errors.New("address not found"),
	}
	s := NewAddressStore(f, nil, zap.NewNop())
	_, err := s.FetchAll(context.Background())
	require.NoError(t, err)

	require.Error(t, s.SetDefault(context.Background(), 9))
	assert.Equal(t, 1, f.fetchCalls) // no refetch after the failure

	state := s.State()
	assert.Equal(t, "address not found", state.Err)
	assert.True(t, state.List[0].IsDefault) // flags untouched
}

func TestAddressStoreInheritsResourceLifecycle(t *testing.T) {
	f := &fakeAddressAPI{}
	s := NewAddressStore(f, nil, zap.NewNop())

	created, err := s.Create(context.Background(), api.AddressInput{City: "Pune"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.AddressID)

	state := s.State()
	require.Len(t, state.List, 1)
	assert.Equal(t, "Pune", state.List[0].City)
}
