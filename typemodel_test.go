package collect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelSuper(t *testing.T) {
	m := NewTypeModel()

	tests := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{name: "embedded struct", typ: typeOf[car](), want: typeOf[vehicle]()},
		{name: "embedded struct chain", typ: typeOf[vehicle](), want: typeOf[entity]()},
		{name: "top of chain", typ: typeOf[entity](), want: nil},
		{name: "named basic type", typ: typeOf[level](), want: typeOf[int]()},
		{name: "unnamed basic type", typ: typeOf[int](), want: nil},
		{name: "universal root", typ: anyType, want: nil},
		{name: "slice", typ: typeOf[[]car](), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Super(tt.typ))
		})
	}
}

func TestModelInterfaces(t *testing.T) {
	m := NewTypeModel(typeOf[wheeled](), typeOf[doored]())

	// car satisfies both, but wheeled is reachable through doored, so
	// only doored is direct.
	assert.Equal(t, []reflect.Type{typeOf[doored]()}, m.Interfaces(typeOf[car]()))

	// truck satisfies wheeled only.
	assert.Equal(t, []reflect.Type{typeOf[wheeled]()}, m.Interfaces(typeOf[truck]()))

	// doored's own super-interface level.
	assert.Equal(t, []reflect.Type{typeOf[wheeled]()}, m.Interfaces(typeOf[doored]()))

	assert.Empty(t, m.Interfaces(typeOf[entity]()))
	assert.Empty(t, m.Interfaces(typeOf[string]()))
}

func TestModelIsSubtype(t *testing.T) {
	m := NewTypeModel()

	tests := []struct {
		name       string
		sub, super reflect.Type
		want       bool
	}{
		{name: "reflexive", sub: typeOf[car](), super: typeOf[car](), want: true},
		{name: "direct super", sub: typeOf[car](), super: typeOf[vehicle](), want: true},
		{name: "transitive super", sub: typeOf[car](), super: typeOf[entity](), want: true},
		{name: "not a super", sub: typeOf[vehicle](), super: typeOf[car](), want: false},
		{name: "siblings", sub: typeOf[car](), super: typeOf[truck](), want: false},
		{name: "interface", sub: typeOf[truck](), super: typeOf[wheeled](), want: true},
		{name: "interface not satisfied", sub: typeOf[truck](), super: typeOf[doored](), want: false},
		{name: "interface extends interface", sub: typeOf[doored](), super: typeOf[wheeled](), want: true},
		{name: "universal root", sub: typeOf[string](), super: anyType, want: true},
		{name: "named basic", sub: typeOf[level](), super: typeOf[int](), want: true},
		{name: "slice covariance", sub: typeOf[[]car](), super: typeOf[[]vehicle](), want: true},
		{name: "slice contravariant", sub: typeOf[[]vehicle](), super: typeOf[[]car](), want: false},
		{name: "array length mismatch", sub: typeOf[[2]car](), super: typeOf[[3]vehicle](), want: false},
		{name: "array covariance", sub: typeOf[[2]car](), super: typeOf[[2]vehicle](), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.IsSubtype(tt.sub, tt.super))
		})
	}
}

func TestModelBoxUnbox(t *testing.T) {
	m := NewTypeModel()

	require.Equal(t, typeOf[*car](), m.Box(typeOf[car]()))
	require.Equal(t, typeOf[car](), m.Unbox(typeOf[*car]()))

	assert.Nil(t, m.Box(typeOf[*car]()), "pointer types cannot be boxed again")
	assert.Nil(t, m.Box(typeOf[wheeled]()))
	assert.Nil(t, m.Unbox(typeOf[car]()))
}
