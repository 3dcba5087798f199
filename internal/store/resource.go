package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/freshcart/freshcart-go/internal/api"
)

// ResourceState is a point-in-time copy of a resource store. The list is
// authoritative only immediately after a successful fetch or mutation; a
// failed operation leaves the previous (stale but valid) list in place.
type ResourceState[T any] struct {
	List    []T
	Loading bool
	Err     string // empty when no error is pending
}

// Endpoints binds a Resource to its backend operations. Upload and Update
// are optional; ID extracts the server-assigned identity used by Remove
// and Update.
type Endpoints[T any, C any] struct {
	FetchAll func(ctx context.Context) ([]T, error)
	Create   func(ctx context.Context, in C) (*T, error)
	Upload   func(ctx context.Context, id int64, up api.Upload) (*T, error)
	Update   func(ctx context.Context, id int64, in C) (*T, error)
	Remove   func(ctx context.Context, id int64) error
	ID       func(item T) int64
}

// Resource is the remote-resource lifecycle shared by the category,
// sub-category, product and address stores: a collection plus loading and
// error fields, mutated only by its own operations. Overlapping operations
// are not sequenced; the last completion wins on each field independently.
type Resource[T any, C any] struct {
	mu    sync.RWMutex
	topic string
	eps   Endpoints[T, C]
	bus   EventBus.Bus
	log   *zap.Logger

	list    []T
	loading bool
	err     string
}

func NewResource[T any, C any](topic string, eps Endpoints[T, C], bus EventBus.Bus, log *zap.Logger) *Resource[T, C] {
	return &Resource[T, C]{topic: topic, eps: eps, bus: bus, log: log}
}

func (r *Resource[T, C]) State() ResourceState[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ResourceState[T]{
		List:    append([]T(nil), r.list...),
		Loading: r.loading,
		Err:     r.err,
	}
}

// FetchAll replaces the collection with the server's. On failure the list
// is left unchanged.
func (r *Resource[T, C]) FetchAll(ctx context.Context) ([]T, error) {
	r.begin(true)
	list, err := r.eps.FetchAll(ctx)
	if err != nil {
		r.fail("fetch", err)
		return nil, err
	}
	r.mu.Lock()
	r.loading = false
	r.list = list
	r.mu.Unlock()
	r.notify()
	return list, nil
}

// Create writes the base record, then uploads the attachment against the
// new record's id when one is supplied. If the upload fails after the
// create succeeded, the record exists server-side without its image; that
// is reported as a single failure and not compensated. On success the new
// entity is prepended, most-recent-first.
func (r *Resource[T, C]) Create(ctx context.Context, in C, up *api.Upload) (*T, error) {
	r.begin(true)
	saved, err := r.eps.Create(ctx, in)
	if err != nil {
		r.fail("create", err)
		return nil, err
	}
	if up != nil && r.eps.Upload != nil {
		updated, err := r.eps.Upload(ctx, r.eps.ID(*saved), *up)
		if err != nil {
			r.fail("upload", err)
			return nil, err
		}
		saved = updated
	}
	r.mu.Lock()
	r.loading = false
	r.list = append([]T{*saved}, r.list...)
	r.mu.Unlock()
	r.notify()
	return saved, nil
}

// Update replaces the matching entity in place, keeping its position.
func (r *Resource[T, C]) Update(ctx context.Context, id int64, in C) (*T, error) {
	r.begin(true)
	updated, err := r.eps.Update(ctx, id, in)
	if err != nil {
		r.fail("update", err)
		return nil, err
	}
	r.mu.Lock()
	r.loading = false
	for i := range r.list {
		if r.eps.ID(r.list[i]) == id {
			r.list[i] = *updated
			break
		}
	}
	r.mu.Unlock()
	r.notify()
	return updated, nil
}

// Remove drops the entity by identity match only after the server
// confirmed the delete; there is no optimistic removal.
func (r *Resource[T, C]) Remove(ctx context.Context, id int64) error {
	r.begin(false)
	if err := r.eps.Remove(ctx, id); err != nil {
		r.fail("remove", err)
		return err
	}
	r.mu.Lock()
	r.loading = false
	next := make([]T, 0, len(r.list))
	for _, item := range r.list {
		if r.eps.ID(item) != id {
			next = append(next, item)
		}
	}
	r.list = next
	r.mu.Unlock()
	r.notify()
	return nil
}

// ClearError resets the pending error; a no-op when none is set.
func (r *Resource[T, C]) ClearError() {
	r.mu.Lock()
	if r.err == "" {
		r.mu.Unlock()
		return
	}
	r.err = ""
	r.mu.Unlock()
	r.notify()
}

func (r *Resource[T, C]) begin(clearErr bool) {
	r.mu.Lock()
	r.loading = true
	if clearErr {
		r.err = ""
	}
	r.mu.Unlock()
	r.notify()
}

func (r *Resource[T, C]) fail(op string, err error) {
	r.log.Error("operation failed",
		zap.String("store", r.topic),
		zap.String("op", op),
		zap.Error(err))
	r.mu.Lock()
	r.loading = false
	r.err = err.Error()
	r.mu.Unlock()
	r.notify()
}

func (r *Resource[T, C]) notify() {
	if r.bus != nil {
		r.bus.Publish(r.topic)
	}
}
