package business

import (
	"fmt"
	"reflect"
	"sync"
)

// BusinessBase stores property values and checks every access against the
// type's authorization rules for the current principal.
type BusinessBase struct {
	properties *PropertyRegistry
	rules      *AuthorizationRules
	principal  *Principal

	mu     sync.RWMutex
	values map[string]any
	dirty  bool
}

// NewBusinessBase creates the shared state of a business object.
func NewBusinessBase(properties *PropertyRegistry, rules *AuthorizationRules, principal *Principal) *BusinessBase {
	if rules == nil {
		rules = NewAuthorizationRules()
	}
	return &BusinessBase{
		properties: properties,
		rules:      rules,
		principal:  principal,
		values:     make(map[string]any),
	}
}

func (b *BusinessBase) Principal() *Principal      { return b.principal }
func (b *BusinessBase) Rules() *AuthorizationRules { return b.rules }

// PropertyNames returns the registered property names in registration order.
func (b *BusinessBase) PropertyNames() []string { return b.properties.Names() }

// HasProperty reports whether name is a registered property.
func (b *BusinessBase) HasProperty(name string) bool { return b.properties.Has(name) }

// ReadProperty returns the named value if the principal may read it. Unset
// properties read as the zero value of their type.
func (b *BusinessBase) ReadProperty(name string) (any, error) {
	t, ok := b.properties.Type(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	if !b.rules.CanRead(b.principal, name) {
		return nil, fmt.Errorf("%w: read of %s", ErrNotAuthorized, name)
	}
	return b.load(name, t), nil
}

// WriteProperty stores value if the principal may write the property and the
// value fits its type.
func (b *BusinessBase) WriteProperty(name string, value any) error {
	t, ok := b.properties.Type(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	if !b.rules.CanWrite(b.principal, name) {
		return fmt.Errorf("%w: write of %s", ErrNotAuthorized, name)
	}
	return b.store(name, t, value)
}

// IsDirty reports whether a property was written since the last MarkClean.
func (b *BusinessBase) IsDirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

func (b *BusinessBase) MarkClean() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}

func (b *BusinessBase) CanCreate() bool { return b.rules.CanCreate(b.principal) }
func (b *BusinessBase) CanEdit() bool   { return b.rules.CanEdit(b.principal) }
func (b *BusinessBase) CanDelete() bool { return b.rules.CanDelete(b.principal) }

func (b *BusinessBase) load(name string, t reflect.Type) any {
	b.mu.RLock()
	v, ok := b.values[name]
	b.mu.RUnlock()
	if !ok {
		return reflect.Zero(t).Interface()
	}
	return v
}

func (b *BusinessBase) store(name string, t reflect.Type, value any) error {
	if value != nil && !reflect.TypeOf(value).AssignableTo(t) {
		return fmt.Errorf("%w: %s is %s, got %T", ErrTypeMismatch, name, t, value)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[name] = value
	b.dirty = true
	return nil
}

// GetProperty reads a typed property through the read rules.
func GetProperty[T any](b *BusinessBase, p PropertyInfo[T]) (T, error) {
	var zero T
	v, err := b.ReadProperty(p.Name())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, p.Name(), v)
	}
	return t, nil
}

// SetProperty writes a typed property through the write rules.
func SetProperty[T any](b *BusinessBase, p PropertyInfo[T], value T) error {
	return b.WriteProperty(p.Name(), value)
}

// LoadProperty sets a property without checking rules or marking the object
// dirty. It is meant for data access code populating a fetched object.
func LoadProperty[T any](b *BusinessBase, p PropertyInfo[T], value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[p.Name()] = value
}
