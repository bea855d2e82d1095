// Package assets holds runtime asset collections. An Assets[T] store owns its
// values; everything else refers to them through opaque handles that may stop
// resolving at any time (asset not added yet, or already removed). Callers
// treat a failed resolve as "try again next tick", never as an error.
package assets

// Handle refers to a value in an Assets[T] store. The zero Handle never
// resolves.
type Handle[T any] struct {
	id uint64
}

func (h Handle[T]) IsZero() bool { return h.id == 0 }

// Assets is an id-keyed store for one asset type.
type Assets[T any] struct {
	next  uint64
	items map[uint64]*T
}

func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{items: map[uint64]*T{}}
}

// Add stores v and returns its handle.
func (a *Assets[T]) Add(v T) Handle[T] {
	a.next++
	a.items[a.next] = &v
	return Handle[T]{id: a.next}
}

// Get resolves h to a mutable reference, or reports that it is absent.
func (a *Assets[T]) Get(h Handle[T]) (*T, bool) {
	p, ok := a.items[h.id]
	return p, ok
}

func (a *Assets[T]) Remove(h Handle[T]) {
	delete(a.items, h.id)
}

func (a *Assets[T]) Len() int { return len(a.items) }
