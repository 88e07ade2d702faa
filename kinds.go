package collect

import "reflect"

var numericKinds = map[reflect.Kind]bool{
	reflect.Int:        true,
	reflect.Int8:       true,
	reflect.Int16:      true,
	reflect.Int32:      true,
	reflect.Int64:      true,
	reflect.Uint:       true,
	reflect.Uint8:      true,
	reflect.Uint16:     true,
	reflect.Uint32:     true,
	reflect.Uint64:     true,
	reflect.Uintptr:    true,
	reflect.Float32:    true,
	reflect.Float64:    true,
	reflect.Complex64:  true,
	reflect.Complex128: true,
}

// basicKindTypes maps each basic kind to its unnamed type, which acts
// as the supertype of every named type over that kind.
var basicKindTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:       reflect.TypeOf(false),
	reflect.Int:        reflect.TypeOf(int(0)),
	reflect.Int8:       reflect.TypeOf(int8(0)),
	reflect.Int16:      reflect.TypeOf(int16(0)),
	reflect.Int32:      reflect.TypeOf(int32(0)),
	reflect.Int64:      reflect.TypeOf(int64(0)),
	reflect.Uint:       reflect.TypeOf(uint(0)),
	reflect.Uint8:      reflect.TypeOf(uint8(0)),
	reflect.Uint16:     reflect.TypeOf(uint16(0)),
	reflect.Uint32:     reflect.TypeOf(uint32(0)),
	reflect.Uint64:     reflect.TypeOf(uint64(0)),
	reflect.Uintptr:    reflect.TypeOf(uintptr(0)),
	reflect.Float32:    reflect.TypeOf(float32(0)),
	reflect.Float64:    reflect.TypeOf(float64(0)),
	reflect.Complex64:  reflect.TypeOf(complex64(0)),
	reflect.Complex128: reflect.TypeOf(complex128(0)),
	reflect.String:     reflect.TypeOf(""),
}

func isArrayKind(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

// Abstraction ranks used by the tree map comparator: less abstract
// types sort before more abstract ones.
const (
	rankBasic = iota // unnamed basic types
	rankNamedBasic   // named types over a basic kind (enum-like)
	rankConcrete     // structs and remaining concrete types
	rankInterface
	rankArray
	rankRoot // the universal root (any)
)

func abstractionRank(t reflect.Type) int {
	switch {
	case t == anyType:
		return rankRoot
	case t.Kind() == reflect.Interface:
		return rankInterface
	case isArrayKind(t.Kind()):
		return rankArray
	case basicKindTypes[t.Kind()] == t:
		return rankBasic
	case basicKindTypes[t.Kind()] != nil:
		return rankNamedBasic
	default:
		return rankConcrete
	}
}
