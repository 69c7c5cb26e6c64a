package business

import (
	"fmt"
	"reflect"
	"sync"
)

// PropertyInfo identifies a registered property of type T.
type PropertyInfo[T any] struct {
	name string
}

func (p PropertyInfo[T]) Name() string { return p.name }

// PropertyRegistry holds the properties of one business type in registration order.
type PropertyRegistry struct {
	mu    sync.RWMutex
	names []string
	types map[string]reflect.Type
}

func NewPropertyRegistry() *PropertyRegistry {
	return &PropertyRegistry{types: make(map[string]reflect.Type)}
}

// RegisterProperty adds a property of type T to r. Registering the same name
// twice panics; registration happens once per type at package initialisation.
func RegisterProperty[T any](r *PropertyRegistry, name string) PropertyInfo[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		panic(fmt.Sprintf("business: property %q registered twice", name))
	}
	r.names = append(r.names, name)
	r.types[name] = reflect.TypeOf((*T)(nil)).Elem()
	return PropertyInfo[T]{name: name}
}

// Names returns the property names in registration order.
func (r *PropertyRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *PropertyRegistry) Has(name string) bool {
	_, ok := r.Type(name)
	return ok
}

// Type returns the declared type of the named property.
func (r *PropertyRegistry) Type(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}
