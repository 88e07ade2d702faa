package collect

import (
	"reflect"
	"sort"
)

// graphStore mirrors the subtype hierarchy of the source mapping: each
// node's children are the stored types that are subtypes of it, split
// into subclass and subinterface children, the whole forest rooted at
// the universal root. Resolution is a top-down descent instead of the
// hash store's bottom-up climb; both must produce identical results
// for the same source mapping.
//
// The two sibling policies differ only in ordering: the sorted policy
// keeps siblings in name order, the linked policy preserves insertion
// order, so types expected to be queried often can be added first to
// shorten the descent.
type graphStore[V any] struct {
	model TypeModel
	root  *graphNode[V]
	index map[reflect.Type]V
	order []reflect.Type
}

type graphNode[V any] struct {
	typ     reflect.Type
	val     V
	classes []*graphNode[V]
	ifaces  []*graphNode[V]
}

// graphBuilder assembles the mutable node graph. A newly inserted type
// may sit between two existing nodes, in which case the existing
// children that are subtypes of it are re-parented under it. The
// finished graph is handed to the store as-is and never mutated again.
type graphBuilder[V any] struct {
	model  TypeModel
	sorted bool
	root   *graphNode[V]
	index  map[reflect.Type]V
	order  []reflect.Type
}

func newGraphStore[V any](entries []Entry[V], model TypeModel, sorted bool) (*graphStore[V], error) {
	b := &graphBuilder[V]{
		model:  model,
		sorted: sorted,
		root:   &graphNode[V]{typ: anyType},
		index:  make(map[reflect.Type]V, len(entries)),
	}

	for _, e := range entries {
		if err := validateEntry(e.Key, e.Value); err != nil {
			return nil, err
		}

		if err := b.add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}

	return &graphStore[V]{
		model: b.model,
		root:  b.root,
		index: b.index,
		order: b.order,
	}, nil
}

func (b *graphBuilder[V]) add(t reflect.Type, v V) error {
	if _, ok := b.index[t]; ok {
		return &ErrDuplicateKey{typ: t}
	}

	b.index[t] = v
	b.order = append(b.order, t)

	if t == anyType {
		b.root.val = v
		return nil
	}

	b.insert(b.root, &graphNode[V]{typ: t, val: v})

	return nil
}

func (b *graphBuilder[V]) insert(parent *graphNode[V], n *graphNode[V]) {
	// Descend while an existing child is a supertype of the new node.
	for _, lists := range [][]*graphNode[V]{parent.classes, parent.ifaces} {
		for _, child := range lists {
			if b.model.IsSubtype(n.typ, child.typ) {
				b.insert(child, n)
				return
			}
		}
	}

	// The new node belongs at this level. Existing children that are
	// subtypes of it move underneath it.
	parent.classes = b.adopt(n, parent.classes)
	parent.ifaces = b.adopt(n, parent.ifaces)

	if n.typ.Kind() == reflect.Interface {
		parent.ifaces = b.attach(parent.ifaces, n)
	} else {
		parent.classes = b.attach(parent.classes, n)
	}
}

func (b *graphBuilder[V]) adopt(n *graphNode[V], siblings []*graphNode[V]) []*graphNode[V] {
	keep := siblings[:0]

	for _, child := range siblings {
		if b.model.IsSubtype(child.typ, n.typ) {
			if child.typ.Kind() == reflect.Interface {
				n.ifaces = b.attach(n.ifaces, child)
			} else {
				n.classes = b.attach(n.classes, child)
			}
		} else {
			keep = append(keep, child)
		}
	}

	return keep
}

func (b *graphBuilder[V]) attach(siblings []*graphNode[V], n *graphNode[V]) []*graphNode[V] {
	siblings = append(siblings, n)

	if b.sorted {
		sort.Slice(siblings, func(i, j int) bool {
			return siblings[i].typ.String() < siblings[j].typ.String()
		})
	}

	return siblings
}

func (s *graphStore[V]) lookup(t reflect.Type) (V, bool) {
	v, ok := s.index[t]

	return v, ok
}

func (s *graphStore[V]) resolve(t reflect.Type, opts resolveOpts) (resolution[V], bool) {
	if t == nil {
		return resolution[V]{}, false
	}

	if v, ok := s.index[t]; ok {
		return resolution[V]{typ: t, val: v}, true
	}

	if r, ok := s.descend(t); ok {
		return r, true
	}

	if opts.autobox {
		if c := boxCounterpart(t, s.model); c != nil {
			if v, ok := s.index[c]; ok {
				return resolution[V]{typ: c, val: v}, true
			}

			if r, ok := s.descend(c); ok {
				return r, true
			}
		}
	}

	if v, ok := s.index[anyType]; ok {
		return resolution[V]{typ: anyType, val: v}, true
	}

	return resolution[V]{}, false
}

// descend walks the region of the graph whose node types t matches,
// subclass children before subinterface children, and keeps the
// deepest match. A match on a concrete node always outranks a match on
// an interface node, mirroring the climb's supertype-before-interface
// priority; among equal-depth matches the first one encountered wins.
func (s *graphStore[V]) descend(t reflect.Type) (resolution[V], bool) {
	var (
		bestClass, bestIface           *graphNode[V]
		bestClassDepth, bestIfaceDepth int

		walk func(n *graphNode[V], depth int)
	)

	walk = func(n *graphNode[V], depth int) {
		for _, child := range n.classes {
			if s.model.IsSubtype(t, child.typ) {
				if depth+1 > bestClassDepth {
					bestClass, bestClassDepth = child, depth+1
				}

				walk(child, depth+1)
			}
		}

		for _, child := range n.ifaces {
			if s.model.IsSubtype(t, child.typ) {
				if depth+1 > bestIfaceDepth {
					bestIface, bestIfaceDepth = child, depth+1
				}

				walk(child, depth+1)
			}
		}
	}

	walk(s.root, 0)

	if bestClass != nil {
		return resolution[V]{typ: bestClass.typ, val: bestClass.val}, true
	}

	if bestIface != nil {
		return resolution[V]{typ: bestIface.typ, val: bestIface.val}, true
	}

	return resolution[V]{}, false
}

// has short-circuits on the first matching node found during the
// descent, which makes it considerably cheaper than resolve: resolve
// must keep descending to the deepest match, has may stop at the
// shallowest.
func (s *graphStore[V]) has(t reflect.Type, opts resolveOpts) bool {
	if t == nil {
		return false
	}

	if _, ok := s.index[t]; ok {
		return true
	}

	if _, ok := s.index[anyType]; ok {
		return true
	}

	if s.anyMatch(t) {
		return true
	}

	if opts.autobox {
		if c := boxCounterpart(t, s.model); c != nil {
			if _, ok := s.index[c]; ok {
				return true
			}

			return s.anyMatch(c)
		}
	}

	return false
}

// anyMatch only needs to look at the children of the root: every node
// in a subtree is a subtype of the subtree's top node, so a type that
// matches any node also matches one directly under the root.
func (s *graphStore[V]) anyMatch(t reflect.Type) bool {
	for _, lists := range [][]*graphNode[V]{s.root.classes, s.root.ifaces} {
		for _, child := range lists {
			if s.model.IsSubtype(t, child.typ) {
				return true
			}
		}
	}

	return false
}

func (s *graphStore[V]) size() int {
	return len(s.index)
}

func (s *graphStore[V]) typeKeys() []reflect.Type {
	keys := make([]reflect.Type, len(s.order))
	copy(keys, s.order)

	return keys
}
