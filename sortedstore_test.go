package collect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeMapKeyOrder(t *testing.T) {
	m, err := NewTypeTreeMap(map[reflect.Type]string{
		anyType:           "anything",
		typeOf[wheeled](): "wheeled",
		typeOf[doored]():  "doored",
		typeOf[entity]():  "entity",
		typeOf[vehicle](): "vehicle",
		typeOf[car]():     "car",
		typeOf[level]():   "level",
		typeOf[int]():     "int",
		typeOf[[]car]():   "cars",
	})
	require.NoError(t, err)

	// Least abstract first: the unnamed basic type, then the enum-like
	// named basic type, then concrete types deepest-first, then
	// interfaces widest-first, then slices, then the root.
	assert.Equal(t, []reflect.Type{
		typeOf[int](),
		typeOf[level](),
		typeOf[car](),
		typeOf[vehicle](),
		typeOf[entity](),
		typeOf[doored](),
		typeOf[wheeled](),
		typeOf[[]car](),
		anyType,
	}, m.Keys())
}

func TestTreeMapResolves(t *testing.T) {
	m, err := NewTypeTreeMap(map[reflect.Type]string{
		typeOf[vehicle](): "vehicle",
	})
	require.NoError(t, err)

	got, ok := m.Get(typeOf[car]())
	require.True(t, ok)
	assert.Equal(t, "vehicle", got)

	_, ok = m.Get(typeOf[string]())
	assert.False(t, ok)
}

func TestTreeMapDuplicateAndNil(t *testing.T) {
	_, err := NewTypeTreeMap(map[reflect.Type]*car{typeOf[car](): nil})

	var nilVal *ErrNilValue
	assert.ErrorAs(t, err, &nilVal)
}

func TestCompareTypesTieBreak(t *testing.T) {
	m := NewTypeModel()

	// Equal rank and depth fall back to name order so the total order
	// is deterministic.
	assert.Negative(t, compareTypes(typeOf[car](), typeOf[truck](), m))
	assert.Positive(t, compareTypes(typeOf[truck](), typeOf[car](), m))
	assert.Zero(t, compareTypes(typeOf[car](), typeOf[car](), m))
}
