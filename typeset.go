package collect

import "reflect"

// TypeSet is the set view of a TypeMap: membership is
// hierarchy-aware, so a set holding an ancestor type contains all of
// that type's subtypes. Like the map it is frozen at construction.
type TypeSet interface {
	// Contains reports whether t or one of its ancestors is in the set.
	Contains(t reflect.Type) bool

	// Has reports exact membership, no hierarchy walk.
	Has(t reflect.Type) bool

	Len() int
	Types() []reflect.Type
	ForEach(fn func(t reflect.Type))
}

type typeSet struct {
	backing TypeMap[struct{}]
	exact   map[reflect.Type]bool
}

// NewTypeSet builds a hash-backed TypeSet. Nil and duplicate types are
// rejected.
func NewTypeSet(types []reflect.Type, options ...Options) (TypeSet, error) {
	return newTypeSet(types, options, NewTypeMapOf[struct{}])
}

// NewTypeTreeSet builds a TypeSet whose Types are kept in the
// least-abstract-first total order of the tree-backed map.
func NewTypeTreeSet(types []reflect.Type, options ...Options) (TypeSet, error) {
	return newTypeSet(types, options, func(entries []Entry[struct{}], options ...Options) (TypeMap[struct{}], error) {
		src := make(map[reflect.Type]struct{}, len(entries))

		for _, e := range entries {
			if e.Key == nil {
				return nil, ErrNilTypeKey
			}

			if _, ok := src[e.Key]; ok {
				return nil, &ErrDuplicateKey{typ: e.Key}
			}

			src[e.Key] = struct{}{}
		}

		return NewTypeTreeMap(src, options...)
	})
}

func newTypeSet(
	types []reflect.Type,
	options []Options,
	build func(entries []Entry[struct{}], options ...Options) (TypeMap[struct{}], error),
) (TypeSet, error) {
	entries := make([]Entry[struct{}], 0, len(types))

	for _, t := range types {
		entries = append(entries, Entry[struct{}]{Key: t, Value: struct{}{}})
	}

	backing, err := build(entries, options...)
	if err != nil {
		return nil, err
	}

	exact := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		exact[t] = true
	}

	return &typeSet{backing: backing, exact: exact}, nil
}

func (s *typeSet) Contains(t reflect.Type) bool {
	return s.backing.Has(t)
}

func (s *typeSet) Has(t reflect.Type) bool {
	checkArg(t != nil, "nil type requested")

	return s.exact[t]
}

func (s *typeSet) Len() int {
	return s.backing.Len()
}

func (s *typeSet) Types() []reflect.Type {
	return s.backing.Keys()
}

func (s *typeSet) ForEach(fn func(t reflect.Type)) {
	for _, t := range s.backing.Keys() {
		fn(t)
	}
}
