package store

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
)

// fakeCategoryAPI counts calls and serves canned results per endpoint.
type fakeCategoryAPI struct {
	fetchCalls  int
	createCalls int
	uploadCalls int
	updateCalls int
	removeCalls int

	fetchResult []model.Category
	fetchErr    error
	createErr   error
	uploadErr   error
	removeErr   error

	nextID int64
}

func (f *fakeCategoryAPI) fetchAll(ctx context.Context) ([]model.Category, error) {
	f.fetchCalls++
	return f.fetchResult, f.fetchErr
}

func (f *fakeCategoryAPI) create(ctx context.Context, in api.CategoryInput) (*model.Category, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	return &model.Category{CategoryID: f.nextID, Name: in.Name, Description: in.Description}, nil
}

func (f *fakeCategoryAPI) upload(ctx context.Context, id int64, up api.Upload) (*model.Category, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	url := "https://cdn.example.com/" + up.FileName
	return &model.Category{CategoryID: id, Name: "with-image", ImageURL: &url}, nil
}

func (f *fakeCategoryAPI) update(ctx context.Context, id int64, in api.CategoryInput) (*model.Category, error) {
	f.updateCalls++
	return &model.Category{CategoryID: id, Name: in.Name, Description: in.Description}, nil
}

func (f *fakeCategoryAPI) remove(ctx context.Context, id int64) error {
	f.removeCalls++
	return f.removeErr
}

func newCategoryResource(f *fakeCategoryAPI, bus EventBus.Bus) *Resource[model.Category, api.CategoryInput] {
	return NewResource[model.Category, api.CategoryInput](TopicCategory, Endpoints[model.Category, api.CategoryInput]{
		FetchAll: f.fetchAll,
		Create:   f.create,
		Upload:   f.upload,
		Update:   f.update,
		Remove:   f.remove,
		ID:       func(c model.Category) int64 { return c.CategoryID },
	}, bus, zap.NewNop())
}

func TestResourceFetchAllReplacesList(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{
		{CategoryID: 1, Name: "Fruits"},
		{CategoryID: 2, Name: "Dairy"},
	}}
	r := newCategoryResource(f, nil)

	list, err := r.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	state := r.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
	assert.Equal(t, "Fruits", state.List[0].Name)
}

func TestResourceFetchFailureKeepsStaleList(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{{CategoryID: 1, Name: "Fruits"}}}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	f.fetchErr = errors.New("backend down")
	_, err = r.FetchAll(context.Background())
	require.Error(t, err)

	state := r.State()
	assert.Equal(t, "backend down", state.Err)
	assert.False(t, state.Loading)
	require.Len(t, state.List, 1)
	assert.Equal(t, "Fruits", state.List[0].Name)
}

func TestResourceCreatePrependsNewest(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{{CategoryID: 1, Name: "Fruits"}}}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	created, err := r.Create(context.Background(), api.CategoryInput{Name: "Bakery"}, nil)
	require.NoError(t, err)

	state := r.State()
	require.Len(t, state.List, 2)
	assert.Equal(t, created.CategoryID, state.List[0].CategoryID)
	assert.Equal(t, "Bakery", state.List[0].Name)
	assert.Equal(t, 1, f.createCalls)
	assert.Equal(t, 0, f.uploadCalls)
}

func TestResourceCreateWithUploadIsTwoCalls(t *testing.T) {
	f := &fakeCategoryAPI{}
	r := newCategoryResource(f, nil)

	created, err := r.Create(context.Background(), api.CategoryInput{Name: "Snacks"}, &api.Upload{
		FileName: "snacks.jpg",
		Data:     []byte("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.createCalls)
	assert.Equal(t, 1, f.uploadCalls)

	// The upload response, not the create response, lands in the list.
	require.NotNil(t, created.ImageURL)
	state := r.State()
	require.Len(t, state.List, 1)
	require.NotNil(t, state.List[0].ImageURL)
	assert.Equal(t, "https://cdn.example.com/snacks.jpg", *state.List[0].ImageURL)
}

func TestResourceUploadFailureReportsErrorAndSkipsList(t *testing.T) {
	f := &fakeCategoryAPI{uploadErr: errors.New("file too large")}
	r := newCategoryResource(f, nil)

	_, err := r.Create(context.Background(), api.CategoryInput{Name: "Snacks"}, &api.Upload{Data: []byte("img")})
	require.Error(t, err)
	assert.Equal(t, 1, f.createCalls)
	assert.Equal(t, 1, f.uploadCalls)

	// The record exists server-side without its image, but locally the
	// operation is a single failure: error set, nothing added.
	state := r.State()
	assert.Equal(t, "file too large", state.Err)
	assert.Empty(t, state.List)
}

func TestResourceUpdateReplacesInPlace(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{
		{CategoryID: 1, Name: "Fruits"},
		{CategoryID: 2, Name: "Dairy"},
		{CategoryID: 3, Name: "Bakery"},
	}}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	_, err = r.Update(context.Background(), 2, api.CategoryInput{Name: "Dairy & Eggs"})
	require.NoError(t, err)

	state := r.State()
	require.Len(t, state.List, 3)
	assert.Equal(t, "Dairy & Eggs", state.List[1].Name)
	assert.Equal(t, int64(2), state.List[1].CategoryID)
}

func TestResourceRemoveFiltersByIdentity(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{
		{CategoryID: 1, Name: "Fruits"},
		{CategoryID: 2, Name: "Dairy"},
	}}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, r.Remove(context.Background(), 1))
	state := r.State()
	require.Len(t, state.List, 1)
	assert.Equal(t, int64(2), state.List[0].CategoryID)
}

func TestResourceRemoveDoesNotClearPendingError(t *testing.T) {
	f := &fakeCategoryAPI{fetchErr: errors.New("backend down")}
	r := newCategoryResource(f, nil)
	_, _ = r.FetchAll(context.Background())
	require.Equal(t, "backend down", r.State().Err)

	// A delete starting while an error is on screen must not blank it.
	require.NoError(t, r.Remove(context.Background(), 1))
	assert.Equal(t, "backend down", r.State().Err)
}

func TestResourceRemoveFailureKeepsList(t *testing.T) {
	f := &fakeCategoryAPI{
		fetchResult: []model.Category{{CategoryID: 1, Name: "Fruits"}},
		removeErr:   errors.New("category has products"),
	}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	require.Error(t, r.Remove(context.Background(), 1))
	state := r.State()
	require.Len(t, state.List, 1)
	assert.Equal(t, "category has products", state.Err)
}

func TestResourceClearErrorIsIdempotent(t *testing.T) {
	f := &fakeCategoryAPI{fetchErr: errors.New("boom")}
	r := newCategoryResource(f, nil)
	_, _ = r.FetchAll(context.Background())

	r.ClearError()
	assert.Empty(t, r.State().Err)
	r.ClearError() // second call is a no-op
	assert.Empty(t, r.State().Err)
}

func TestResourcePublishesOnEveryTransition(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{{CategoryID: 1}}}
	bus := EventBus.New()
	r := newCategoryResource(f, bus)

	events := 0
	require.NoError(t, bus.Subscribe(TopicCategory, func() { events++ }))

	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	// One event for loading on, one for the completed fetch.
	assert.Equal(t, 2, events)
}

func TestResourceStateIsACopy(t *testing.T) {
	f := &fakeCategoryAPI{fetchResult: []model.Category{{CategoryID: 1, Name: "Fruits"}}}
	r := newCategoryResource(f, nil)
	_, err := r.FetchAll(context.Background())
	require.NoError(t, err)

	state := r.State()
	state.List[0].Name = "mutated"
	assert.Equal(t, "Fruits", r.State().List[0].Name)
}
