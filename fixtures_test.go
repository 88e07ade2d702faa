package collect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test hierarchy. Embedding stands in for subclassing, so the chain is
// car -> vehicle -> entity and truck -> vehicle -> entity. The Wheels
// method on vehicle promotes to car and truck, making both satisfy
// wheeled; car additionally satisfies doored, which extends wheeled.
type entity struct {
	id int
}

type vehicle struct {
	entity
}

func (vehicle) Wheels() int { return 4 }

type car struct {
	vehicle
}

func (car) Doors() int { return 4 }

type truck struct {
	vehicle
}

type wheeled interface {
	Wheels() int
}

type doored interface {
	Wheels() int
	Doors() int
}

// level is an enum-like named basic type; its supertype is int.
type level int

func typeOf[X any]() reflect.Type {
	return reflect.TypeOf((*X)(nil)).Elem()
}

func requirePanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "expected panic value to be an error, got %v", r)
		require.ErrorIs(t, err, want)
	}()

	fn()
}
