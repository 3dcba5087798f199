package store

import (
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
	"github.com/freshcart/freshcart-go/internal/model"
	"github.com/freshcart/freshcart-go/internal/tokenstore"
)

// Topics published on every state change, one per store. Subscribe with a
// no-argument handler and read the store's State() from it.
const (
	TopicAuth        = "store.auth"
	TopicCategory    = "store.category"
	TopicSubCategory = "store.subCategory"
	TopicProduct     = "store.product"
	TopicCart        = "store.cart"
	TopicOrder       = "store.order"
	TopicAddress     = "store.address"
)

// Store composes the seven domain stores over one event bus. Each store's
// fields are written only by its own operations, so operations on
// different stores can overlap freely.
type Store struct {
	bus EventBus.Bus

	Auth        *AuthStore
	Category    *Resource[model.Category, api.CategoryInput]
	SubCategory *Resource[model.SubCategory, api.SubCategoryInput]
	Product     *Resource[model.Product, api.ProductInput]
	Cart        *CartStore
	Order       *OrderStore
	Address     *AddressStore
}

// Snapshot is a full-tree read: every store's state copied at one point in
// time (per store, not atomically across stores).
type Snapshot struct {
	Auth        AuthState
	Category    ResourceState[model.Category]
	SubCategory ResourceState[model.SubCategory]
	Product     ResourceState[model.Product]
	Cart        CartState
	Order       OrderState
	Address     ResourceState[model.Address]
}

func New(cli api.API, holder *TokenHolder, tokens tokenstore.Store, log *zap.Logger) *Store {
	bus := EventBus.New()
	s := &Store{bus: bus}

	s.Auth = NewAuthStore(cli, holder, tokens, bus, log)

	s.Category = NewResource[model.Category, api.CategoryInput](TopicCategory, Endpoints[model.Category, api.CategoryInput]{
		FetchAll: cli.Categories,
		Create:   cli.AddCategory,
		Upload:   cli.UploadCategoryImage,
		Update:   cli.UpdateCategory,
		Remove:   cli.DeleteCategory,
		ID:       func(c model.Category) int64 { return c.CategoryID },
	}, bus, log)

	s.SubCategory = NewResource[model.SubCategory, api.SubCategoryInput](TopicSubCategory, Endpoints[model.SubCategory, api.SubCategoryInput]{
		FetchAll: cli.SubCategories,
		Create:   cli.AddSubCategory,
		Upload:   cli.UploadSubCategoryImage,
		Update:   cli.UpdateSubCategory,
		Remove:   cli.DeleteSubCategory,
		ID:       func(sc model.SubCategory) int64 { return sc.SubCategoryID },
	}, bus, log)

	s.Product = NewResource[model.Product, api.ProductInput](TopicProduct, Endpoints[model.Product, api.ProductInput]{
		FetchAll: cli.Products,
		Create:   cli.AddProduct,
		Upload:   cli.UploadProductImage,
		Update:   cli.UpdateProduct,
		Remove:   cli.DeleteProduct,
		ID:       func(p model.Product) int64 { return p.ProductID },
	}, bus, log)

	s.Cart = NewCartStore(cli, bus, log)
	s.Order = NewOrderStore(cli, bus, log)
	s.Address = NewAddressStore(cli, bus, log)

	return s
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:        s.Auth.State(),
		Category:    s.Category.State(),
		SubCategory: s.SubCategory.State(),
		Product:     s.Product.State(),
		Cart:        s.Cart.State(),
		Order:       s.Order.State(),
		Address:     s.Address.State(),
	}
}

// Subscribe registers fn for a topic; it runs on every state change of the
// matching store.
func (s *Store) Subscribe(topic string, fn func()) error {
	return s.bus.Subscribe(topic, fn)
}

func (s *Store) Unsubscribe(topic string, fn func()) error {
	return s.bus.Unsubscribe(topic, fn)
}
