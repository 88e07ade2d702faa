package collect

import (
	"reflect"
	"sort"
)

// typeStore is the backing store contract shared by all TypeMap
// variants. Stores are frozen at construction; every variant must
// produce identical resolution results for the same source mapping.
type typeStore[V any] interface {
	// lookup probes for an exact hit, no hierarchy walk.
	lookup(t reflect.Type) (V, bool)

	// resolve finds the best-matching stored type per the resolution
	// engine's priority order.
	resolve(t reflect.Type, opts resolveOpts) (resolution[V], bool)

	// has reports whether resolve would succeed. Some variants can
	// answer this more cheaply than a full resolve.
	has(t reflect.Type, opts resolveOpts) bool

	size() int
	typeKeys() []reflect.Type
}

// hashStore is the flat hash-backed variant: every resolution re-walks
// the hierarchy above the requested type. has costs the same as a full
// resolve.
type hashStore[V any] struct {
	model   TypeModel
	entries map[reflect.Type]V
	order   []reflect.Type
}

func newHashStore[V any](entries []Entry[V], model TypeModel) (*hashStore[V], error) {
	s := &hashStore[V]{
		model:   model,
		entries: make(map[reflect.Type]V, len(entries)),
		order:   make([]reflect.Type, 0, len(entries)),
	}

	for _, e := range entries {
		if err := validateEntry(e.Key, e.Value); err != nil {
			return nil, err
		}

		if _, ok := s.entries[e.Key]; ok {
			return nil, &ErrDuplicateKey{typ: e.Key}
		}

		s.entries[e.Key] = e.Value
		s.order = append(s.order, e.Key)
	}

	return s, nil
}

func (s *hashStore[V]) lookup(t reflect.Type) (V, bool) {
	v, ok := s.entries[t]

	return v, ok
}

func (s *hashStore[V]) resolve(t reflect.Type, opts resolveOpts) (resolution[V], bool) {
	return resolveType(t, s.model, opts, s.lookup)
}

func (s *hashStore[V]) has(t reflect.Type, opts resolveOpts) bool {
	_, ok := s.resolve(t, opts)

	return ok
}

func (s *hashStore[V]) size() int {
	return len(s.entries)
}

func (s *hashStore[V]) typeKeys() []reflect.Type {
	keys := make([]reflect.Type, len(s.order))
	copy(keys, s.order)

	return keys
}

// validateEntry rejects nil keys and nil values. Null never means
// "stored nothing" in a TypeMap; absence is reported through the ok
// result instead.
func validateEntry[V any](t reflect.Type, v V) error {
	if t == nil {
		return ErrNilTypeKey
	}

	if isNilValue(any(v)) {
		return &ErrNilValue{typ: t}
	}

	return nil
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

// entriesOf converts a source map into an entry list with a
// deterministic order, so that interface registration order, and with
// it resolution tie-breaks, do not depend on map iteration order.
func entriesOf[V any](src map[reflect.Type]V) []Entry[V] {
	entries := make([]Entry[V], 0, len(src))

	for t, v := range src {
		entries = append(entries, Entry[V]{Key: t, Value: v})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Key, entries[j].Key
		if a == nil || b == nil {
			return b == nil && a != nil
		}

		return a.String() < b.String()
	})

	return entries
}

// modelFor derives the default type model from the interface-typed
// keys of the source mapping, in entry order. Interfaces buried inside
// slice, array and pointer keys count too, so an entry for []I makes I
// known to the model.
func modelFor[V any](entries []Entry[V], opts Options) TypeModel {
	if opts.Model != nil {
		return opts.Model
	}

	var ifaces []reflect.Type

	for _, e := range entries {
		t := e.Key

		for t != nil && (isArrayKind(t.Kind()) || t.Kind() == reflect.Pointer) {
			t = t.Elem()
		}

		if t != nil && t.Kind() == reflect.Interface {
			ifaces = append(ifaces, t)
		}
	}

	return NewTypeModel(ifaces...)
}
