package collect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSet(t *testing.T) {
	s, err := NewTypeSet([]reflect.Type{typeOf[vehicle](), typeOf[wheeled]()})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())

	// Contains is hierarchy-aware, Has is exact.
	assert.True(t, s.Contains(typeOf[vehicle]()))
	assert.True(t, s.Contains(typeOf[car]()))
	assert.True(t, s.Contains(typeOf[truck]()))
	assert.False(t, s.Contains(typeOf[string]()))

	assert.True(t, s.Has(typeOf[vehicle]()))
	assert.False(t, s.Has(typeOf[car]()))
}

func TestTypeSetDuplicate(t *testing.T) {
	_, err := NewTypeSet([]reflect.Type{typeOf[car](), typeOf[car]()})

	var dup *ErrDuplicateKey
	assert.ErrorAs(t, err, &dup)
}

func TestTypeTreeSetOrder(t *testing.T) {
	s, err := NewTypeTreeSet([]reflect.Type{
		typeOf[wheeled](),
		typeOf[entity](),
		typeOf[car](),
		typeOf[int](),
	})
	require.NoError(t, err)

	assert.Equal(t, []reflect.Type{
		typeOf[int](),
		typeOf[car](),
		typeOf[entity](),
		typeOf[wheeled](),
	}, s.Types())

	var seen []reflect.Type
	s.ForEach(func(t reflect.Type) { seen = append(seen, t) })
	assert.Len(t, seen, 4)
}
