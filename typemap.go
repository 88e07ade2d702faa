package collect

import (
	"fmt"
	"reflect"
)

// Entry is a single (type, value) pair in a source mapping. The entry
// order doubles as declaration order for resolution tie-breaks.
type Entry[V any] struct {
	Key   reflect.Type
	Value V
}

type Options struct {
	// AutoExpand caches every ancestor match under the originally
	// requested type, turning repeat lookups for that type into exact
	// matches. The cache only ever grows and never changes the result
	// a lookup would produce without it.
	AutoExpand bool

	// DisableAutobox turns off the pointer/value equivalence applied
	// during resolution (a request for T may match an entry stored
	// under *T, and the other way around).
	DisableAutobox bool

	// Model overrides the default reflection-based type model.
	Model TypeModel
}

// TypeMap resolves a runtime type to the value associated with that
// type or its nearest ancestor. The map is frozen at construction:
// the mutating methods exist only to satisfy callers holding the
// container behind a generic map-shaped interface, and always panic
// with ErrImmutable.
type TypeMap[V any] interface {
	// Get returns the value the requested type resolves to. ok is
	// false when nothing in the map matches; a stored value can never
	// be nil, so there is no ambiguity between "absent" and "nil".
	Get(t reflect.Type) (V, bool)

	// Resolve additionally reports which stored type the request
	// matched, which may be an ancestor of the requested type.
	Resolve(t reflect.Type) (reflect.Type, V, bool)

	// Has reports whether Get would succeed.
	Has(t reflect.Type) bool

	Len() int
	Keys() []reflect.Type
	Values() []V
	ForEach(fn func(t reflect.Type, v V))

	// Put, Delete and Clear panic with ErrImmutable.
	Put(t reflect.Type, v V)
	Delete(t reflect.Type)
	Clear()
}

type typeMap[V any] struct {
	store  typeStore[V]
	opts   resolveOpts
	expand map[reflect.Type]V
}

// NewTypeMap builds the flat hash-backed variant from a source map.
// Nil keys and nil values are rejected. This is the only variant that
// recognizes the AnyNumeric and AnyNumericSlice marker keys.
func NewTypeMap[V any](src map[reflect.Type]V, options ...Options) (TypeMap[V], error) {
	return NewTypeMapOf(entriesOf(src), options...)
}

// NewTypeMapOf is NewTypeMap for an explicit entry list, which also
// pins declaration order and makes duplicate keys detectable: a
// duplicate fails construction instead of silently overwriting.
func NewTypeMapOf[V any](entries []Entry[V], options ...Options) (TypeMap[V], error) {
	opt := firstOption(options)

	store, err := newHashStore(entries, modelFor(entries, opt))
	if err != nil {
		return nil, err
	}

	return newFacade[V](store, opt, true), nil
}

// NewTypeGraphMap builds the variant backed by a precomputed graph of
// the subtype relationships among the keys, resolved by top-down
// descent. Has short-circuits on the shallowest match and is cheaper
// than Get, which must descend to the deepest one.
func NewTypeGraphMap[V any](src map[reflect.Type]V, options ...Options) (TypeMap[V], error) {
	opt := firstOption(options)
	entries := entriesOf(src)

	store, err := newGraphStore(entries, modelFor(entries, opt), true)
	if err != nil {
		return nil, err
	}

	return newFacade[V](store, opt, false), nil
}

// NewTypeLinkedGraphMap is NewTypeGraphMap with insertion-order
// siblings: entries added first are tried first during the descent, so
// frequently queried types can be listed first.
func NewTypeLinkedGraphMap[V any](entries []Entry[V], options ...Options) (TypeMap[V], error) {
	opt := firstOption(options)

	store, err := newGraphStore(entries, modelFor(entries, opt), false)
	if err != nil {
		return nil, err
	}

	return newFacade[V](store, opt, false), nil
}

// NewTypeTreeMap builds the variant whose key set is kept in a single
// least-abstract-first total order; Keys reflects that order.
func NewTypeTreeMap[V any](src map[reflect.Type]V, options ...Options) (TypeMap[V], error) {
	opt := firstOption(options)
	entries := entriesOf(src)

	store, err := newSortedStore(entries, modelFor(entries, opt))
	if err != nil {
		return nil, err
	}

	return newFacade[V](store, opt, false), nil
}

func firstOption(options []Options) Options {
	if len(options) > 0 {
		return options[0]
	}

	return Options{}
}

func newFacade[V any](store typeStore[V], opt Options, sentinels bool) *typeMap[V] {
	m := &typeMap[V]{
		store: store,
		opts: resolveOpts{
			autobox:   !opt.DisableAutobox,
			sentinels: sentinels,
		},
	}

	if opt.AutoExpand {
		m.expand = make(map[reflect.Type]V)
	}

	return m
}

func (m *typeMap[V]) Get(t reflect.Type) (V, bool) {
	_, v, ok := m.Resolve(t)

	return v, ok
}

func (m *typeMap[V]) Resolve(t reflect.Type) (reflect.Type, V, bool) {
	checkArg(t != nil, "nil type requested")

	if m.expand != nil {
		if v, ok := m.expand[t]; ok {
			return t, v, true
		}
	}

	r, ok := m.store.resolve(t, m.opts)
	if !ok {
		var zero V
		return nil, zero, false
	}

	if m.expand != nil && r.typ != t {
		m.expand[t] = r.val
	}

	return r.typ, r.val, true
}

func (m *typeMap[V]) Has(t reflect.Type) bool {
	checkArg(t != nil, "nil type requested")

	if m.expand != nil {
		if _, ok := m.expand[t]; ok {
			return true
		}
	}

	return m.store.has(t, m.opts)
}

func (m *typeMap[V]) Len() int {
	return m.store.size()
}

func (m *typeMap[V]) Keys() []reflect.Type {
	return m.store.typeKeys()
}

func (m *typeMap[V]) Values() []V {
	keys := m.store.typeKeys()
	values := make([]V, 0, len(keys))

	for _, t := range keys {
		v, _ := m.store.lookup(t)
		values = append(values, v)
	}

	return values
}

func (m *typeMap[V]) ForEach(fn func(t reflect.Type, v V)) {
	for _, t := range m.store.typeKeys() {
		v, _ := m.store.lookup(t)
		fn(t, v)
	}
}

func (m *typeMap[V]) Put(t reflect.Type, v V) {
	panic(fmt.Errorf("%w: Put", ErrImmutable))
}

func (m *typeMap[V]) Delete(t reflect.Type) {
	panic(fmt.Errorf("%w: Delete", ErrImmutable))
}

func (m *typeMap[V]) Clear() {
	panic(fmt.Errorf("%w: Clear", ErrImmutable))
}
