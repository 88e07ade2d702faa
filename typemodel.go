package collect

import "reflect"

// anyType is the universal root of the type hierarchy. Every type is a
// subtype of it, and an entry stored under it acts as a default value
// for any otherwise unmatched type.
var anyType = reflect.TypeOf((*any)(nil)).Elem()

type anyNumeric struct{}
type anyNumericSlice struct{}

// AnyNumeric and AnyNumericSlice are marker keys. An entry stored under
// AnyNumeric matches a request for any numeric type, and one stored
// under AnyNumericSlice matches any slice or array of a numeric type,
// without enumerating the numeric kinds one by one. They are consulted
// after ordinary resolution fails and before the universal-root
// fallback, and are recognized by the hash-backed TypeMap only.
var (
	AnyNumeric      = reflect.TypeOf(anyNumeric{})
	AnyNumericSlice = reflect.TypeOf(anyNumericSlice{})
)

// TypeModel answers hierarchy questions about runtime types. The
// resolution engine consumes it as a black box, so alternative
// hierarchies can be plugged in via Options.Model.
type TypeModel interface {
	// Super returns the direct supertype of t, or nil if t has none.
	Super(t reflect.Type) reflect.Type

	// Interfaces returns the known interfaces implemented by t with no
	// other known interface between them, in registration order.
	Interfaces(t reflect.Type) []reflect.Type

	// IsSubtype reports whether sub is a subtype of super, reflexively.
	IsSubtype(sub, super reflect.Type) bool

	// Box returns the boxed counterpart of t (its pointer type), or nil
	// if t cannot be boxed.
	Box(t reflect.Type) reflect.Type

	// Unbox returns the unboxed counterpart of t (its element type if t
	// is a pointer type), or nil.
	Unbox(t reflect.Type) reflect.Type
}

// reflectModel is the default TypeModel. Go has no class inheritance,
// so the hierarchy is derived from what the runtime does offer:
//
//   - the supertype of a named struct type is the type of its first
//     embedded struct field
//   - the supertype of a named type over a basic kind is the unnamed
//     basic type of that kind
//   - interface satisfaction is structural, so "implemented interfaces"
//     are computed against a registry of known interface types
//   - boxing is pointer indirection: the boxed form of T is *T
type reflectModel struct {
	ifaces []reflect.Type
}

// NewTypeModel returns the default reflection-based TypeModel with the
// given interface types registered. Registration order is the
// declaration order used to break ties between interface matches at
// the same hierarchy level. Non-interface types and the empty
// interface are ignored.
func NewTypeModel(ifaces ...reflect.Type) TypeModel {
	m := &reflectModel{}

	for _, it := range ifaces {
		m.register(it)
	}

	return m
}

func (m *reflectModel) register(t reflect.Type) {
	if t == nil || t.Kind() != reflect.Interface || t == anyType {
		return
	}

	for _, have := range m.ifaces {
		if have == t {
			return
		}
	}

	m.ifaces = append(m.ifaces, t)
}

func (m *reflectModel) Super(t reflect.Type) reflect.Type {
	if t == nil || t == anyType {
		return nil
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Anonymous && f.Type.Kind() == reflect.Struct {
				return f.Type
			}
		}

		return nil
	}

	if basic, ok := basicKindTypes[t.Kind()]; ok && basic != t {
		return basic
	}

	return nil
}

func (m *reflectModel) Interfaces(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}

	var all []reflect.Type

	for _, it := range m.ifaces {
		if it != t && t.Implements(it) {
			all = append(all, it)
		}
	}

	// Keep only the nearest level: an interface already implied by
	// another candidate is reachable through that candidate instead.
	var direct []reflect.Type

	for _, cand := range all {
		indirect := false

		for _, other := range all {
			if other != cand && other.Implements(cand) {
				indirect = true
				break
			}
		}

		if !indirect {
			direct = append(direct, cand)
		}
	}

	return direct
}

func (m *reflectModel) IsSubtype(sub, super reflect.Type) bool {
	if sub == nil || super == nil {
		return false
	}

	if sub == super || super == anyType {
		return true
	}

	if super.Kind() == reflect.Interface {
		return sub.Implements(super)
	}

	for s := m.Super(sub); s != nil; s = m.Super(s) {
		if s == super {
			return true
		}
	}

	// Component covariance: a []T is a subtype of []U when T is a
	// subtype of U, and likewise for equal-length arrays.
	if sub.Kind() == super.Kind() && isArrayKind(sub.Kind()) {
		if sub.Kind() == reflect.Array && sub.Len() != super.Len() {
			return false
		}

		return m.IsSubtype(sub.Elem(), super.Elem())
	}

	return false
}

func (m *reflectModel) Box(t reflect.Type) reflect.Type {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return nil
	}

	return reflect.PointerTo(t)
}

func (m *reflectModel) Unbox(t reflect.Type) reflect.Type {
	if t == nil || t.Kind() != reflect.Pointer {
		return nil
	}

	return t.Elem()
}
