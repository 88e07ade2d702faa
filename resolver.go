package collect

import "reflect"

// lookupFunc is an exact-match probe into a backing store.
type lookupFunc[V any] func(t reflect.Type) (V, bool)

// resolution is the result of a successful lookup: the stored type the
// request matched, which may be an ancestor of the requested type, and
// the value stored under it.
type resolution[V any] struct {
	typ reflect.Type
	val V
}

type resolveOpts struct {
	autobox   bool
	sentinels bool
}

// resolveType finds the best-matching stored type for t, in priority
// order:
//
//  1. an exact hit for t itself
//  2. for slice/array types, the same search applied to the component
//     type, re-wrapping every candidate as the corresponding
//     slice/array type before probing the store
//  3. for interface types, the super-interface hierarchy, nearest
//     level first
//  4. for concrete types, the supertype chain, nearest first; a
//     supertype hit at any distance outranks any interface hit
//  5. the interfaces of t and of each of its supertypes, nearest level
//     first
//  6. with autobox, the same search for the boxed or unboxed
//     counterpart of t
//  7. the numeric sentinel keys, when enabled and t is numeric
//  8. an entry under the universal root, as a last resort
func resolveType[V any](t reflect.Type, m TypeModel, opts resolveOpts, lookup lookupFunc[V]) (resolution[V], bool) {
	if t == nil {
		return resolution[V]{}, false
	}

	if v, ok := lookup(t); ok {
		return resolution[V]{typ: t, val: v}, true
	}

	if r, ok := climbFrom(t, m, lookup); ok {
		return r, true
	}

	if opts.autobox {
		if c := boxCounterpart(t, m); c != nil {
			if v, ok := lookup(c); ok {
				return resolution[V]{typ: c, val: v}, true
			}

			if r, ok := climbFrom(c, m, lookup); ok {
				return r, true
			}
		}
	}

	if opts.sentinels {
		if r, ok := sentinelMatch(t, opts.autobox, m, lookup); ok {
			return r, true
		}
	}

	if v, ok := lookup(anyType); ok {
		return resolution[V]{typ: anyType, val: v}, true
	}

	return resolution[V]{}, false
}

// climbFrom dispatches to the array-aware or plain ancestor climb.
func climbFrom[V any](t reflect.Type, m TypeModel, lookup lookupFunc[V]) (resolution[V], bool) {
	if isArrayKind(t.Kind()) {
		return climbArray(t, m, lookup)
	}

	return climb(t, m, lookup)
}

// climb walks the hierarchy above t looking for a stored entry. For
// interface types only the super-interface hierarchy applies. For
// concrete types the entire supertype chain is tried before any
// interface, so a supertype match takes priority over an interface
// match at the same or lesser distance.
func climb[V any](t reflect.Type, m TypeModel, lookup lookupFunc[V]) (resolution[V], bool) {
	if t.Kind() == reflect.Interface {
		return climbInterfaces(t, m, lookup)
	}

	for s := m.Super(t); s != nil; s = m.Super(s) {
		if v, ok := lookup(s); ok {
			return resolution[V]{typ: s, val: v}, true
		}
	}

	for a := t; a != nil; a = m.Super(a) {
		if r, ok := climbInterfaces(a, m, lookup); ok {
			return r, true
		}
	}

	return resolution[V]{}, false
}

// climbInterfaces searches the interfaces of t breadth-first by level,
// so more specific interfaces are tried before the ones they extend.
// Within a level, registration order decides.
func climbInterfaces[V any](t reflect.Type, m TypeModel, lookup lookupFunc[V]) (resolution[V], bool) {
	var (
		level = m.Interfaces(t)
		seen  = map[reflect.Type]bool{t: true}
	)

	for len(level) > 0 {
		var next []reflect.Type

		for _, it := range level {
			if seen[it] {
				continue
			}
			seen[it] = true

			if v, ok := lookup(it); ok {
				return resolution[V]{typ: it, val: v}, true
			}

			next = append(next, m.Interfaces(it)...)
		}

		level = next
	}

	return resolution[V]{}, false
}

// climbArray resolves a slice or array type through its component
// type: each candidate found while climbing from the component is
// re-wrapped as the corresponding slice/array type before probing the
// store, mirroring non-array resolution one dimension up.
func climbArray[V any](t reflect.Type, m TypeModel, lookup lookupFunc[V]) (resolution[V], bool) {
	wrap := func(c reflect.Type) reflect.Type {
		if t.Kind() == reflect.Array {
			return reflect.ArrayOf(t.Len(), c)
		}

		return reflect.SliceOf(c)
	}

	r, ok := climb(t.Elem(), m, func(c reflect.Type) (V, bool) {
		return lookup(wrap(c))
	})
	if !ok {
		return resolution[V]{}, false
	}

	return resolution[V]{typ: wrap(r.typ), val: r.val}, true
}

// sentinelMatch probes the numeric marker keys for numeric requests.
func sentinelMatch[V any](t reflect.Type, autobox bool, m TypeModel, lookup lookupFunc[V]) (resolution[V], bool) {
	numeric := func(t reflect.Type) bool {
		if numericKinds[t.Kind()] {
			return true
		}

		if autobox {
			if u := m.Unbox(t); u != nil && numericKinds[u.Kind()] {
				return true
			}
		}

		return false
	}

	if numeric(t) {
		if v, ok := lookup(AnyNumeric); ok {
			return resolution[V]{typ: AnyNumeric, val: v}, true
		}
	}

	if isArrayKind(t.Kind()) && numeric(t.Elem()) {
		if v, ok := lookup(AnyNumericSlice); ok {
			return resolution[V]{typ: AnyNumericSlice, val: v}, true
		}
	}

	return resolution[V]{}, false
}

func boxCounterpart(t reflect.Type, m TypeModel) reflect.Type {
	if u := m.Unbox(t); u != nil {
		return u
	}

	return m.Box(t)
}
