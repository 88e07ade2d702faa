package collect

import (
	"reflect"
	"sort"
	"strings"
)

// sortedStore keeps its keys in a single total order that approximates
// "less abstract before more abstract": unnamed basic types, then named
// basic types, then concrete types ordered by supertype distance
// descending, then interfaces ordered by method count descending, then
// slices and arrays, then the universal root. Iterating the key set
// therefore runs from the most specific entry to the default entry.
// Resolution delegates to the shared climb, so results are identical
// to the other variants.
type sortedStore[V any] struct {
	model   TypeModel
	entries map[reflect.Type]V
	sorted  []reflect.Type
}

func newSortedStore[V any](entries []Entry[V], model TypeModel) (*sortedStore[V], error) {
	s := &sortedStore[V]{
		model:   model,
		entries: make(map[reflect.Type]V, len(entries)),
		sorted:  make([]reflect.Type, 0, len(entries)),
	}

	for _, e := range entries {
		if err := validateEntry(e.Key, e.Value); err != nil {
			return nil, err
		}

		if _, ok := s.entries[e.Key]; ok {
			return nil, &ErrDuplicateKey{typ: e.Key}
		}

		s.entries[e.Key] = e.Value
		s.sorted = append(s.sorted, e.Key)
	}

	sort.SliceStable(s.sorted, func(i, j int) bool {
		return compareTypes(s.sorted[i], s.sorted[j], s.model) < 0
	})

	return s, nil
}

func compareTypes(a, b reflect.Type, m TypeModel) int {
	ra, rb := abstractionRank(a), abstractionRank(b)
	if ra != rb {
		return ra - rb
	}

	switch ra {
	case rankConcrete:
		// Deeper in the hierarchy means less abstract.
		if da, db := superDepth(a, m), superDepth(b, m); da != db {
			return db - da
		}

	case rankInterface:
		// Method count stands in for the number of extended interfaces:
		// method sets only grow down an interface hierarchy, and unlike
		// the extension count they can be read straight off the type.
		if a.NumMethod() != b.NumMethod() {
			return b.NumMethod() - a.NumMethod()
		}
	}

	return strings.Compare(a.String(), b.String())
}

func superDepth(t reflect.Type, m TypeModel) int {
	depth := 0

	for s := m.Super(t); s != nil; s = m.Super(s) {
		depth++
	}

	return depth
}

func (s *sortedStore[V]) lookup(t reflect.Type) (V, bool) {
	v, ok := s.entries[t]

	return v, ok
}

func (s *sortedStore[V]) resolve(t reflect.Type, opts resolveOpts) (resolution[V], bool) {
	return resolveType(t, s.model, opts, s.lookup)
}

func (s *sortedStore[V]) has(t reflect.Type, opts resolveOpts) bool {
	_, ok := s.resolve(t, opts)

	return ok
}

func (s *sortedStore[V]) size() int {
	return len(s.entries)
}

func (s *sortedStore[V]) typeKeys() []reflect.Type {
	keys := make([]reflect.Type, len(s.sorted))
	copy(keys, s.sorted)

	return keys
}
