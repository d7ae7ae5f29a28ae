package world

import "github.com/andrescamacho/supplychain-go/internal/domain/shared"

// Named is satisfied by every registered entity
type Named interface {
	Name() string
}

// Registry holds one collection of uniquely named entities in insertion order.
// Names are compared exactly; "Acme" and "acme" are different entities.
// A Registry is not safe for concurrent use on its own; World serializes access.
type Registry[T Named] struct {
	collection string
	items      []T
	index      map[string]int
}

// NewRegistry creates an empty registry. collection names the entity kind in errors.
func NewRegistry[T Named](collection string) *Registry[T] {
	return &Registry[T]{
		collection: collection,
		index:      make(map[string]int),
	}
}

// Add appends an entity, rejecting a name already present
func (r *Registry[T]) Add(item T) error {
	name := item.Name()
	if _, exists := r.index[name]; exists {
		return shared.NewDuplicateNameError(r.collection, name)
	}
	r.index[name] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// Get finds an entity by exact name
func (r *Registry[T]) Get(name string) (T, error) {
	i, ok := r.index[name]
	if !ok {
		var zero T
		return zero, shared.NewNotFoundError(r.collection, name)
	}
	return r.items[i], nil
}

func (r *Registry[T]) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// List returns the entities in the order they were added
func (r *Registry[T]) List() []T {
	items := make([]T, len(r.items))
	copy(items, r.items)
	return items
}

func (r *Registry[T]) Len() int {
	return len(r.items)
}
