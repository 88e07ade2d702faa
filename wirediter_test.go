package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiredIterator(t *testing.T) {
	l := NewWiredList(1, 2, 3)
	it := l.Iterator()

	var seen []int
	for it.HasNext() {
		seen = append(seen, it.Next())
	}

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.False(t, it.HasNext())
}

func TestWiredIteratorPeek(t *testing.T) {
	l := NewWiredList("a", "b")
	it := l.Iterator()

	assert.Equal(t, "a", it.Peek())
	assert.Equal(t, "a", it.Peek(), "peek does not advance")
	assert.Equal(t, "a", it.Next())
	assert.Equal(t, "b", it.Peek())
}

func TestWiredIteratorSet(t *testing.T) {
	l := NewWiredList(1, 2, 3)
	it := l.Iterator()

	it.Next()
	it.Next()
	it.Set(20)

	assert.Equal(t, []int{1, 20, 3}, l.Values())
}

func TestWiredIteratorRemove(t *testing.T) {
	l := NewWiredList(1, 2, 3, 4)
	it := l.Iterator()

	for it.HasNext() {
		if it.Next()%2 == 0 {
			it.Remove()
		}
	}

	assert.Equal(t, []int{1, 3}, l.Values())
	assert.Equal(t, 2, l.Len())
}

func TestWiredIteratorReverse(t *testing.T) {
	l := NewWiredList(1, 2, 3)
	it := l.ReverseIterator()

	var seen []int
	for it.HasNext() {
		seen = append(seen, it.Next())
	}

	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestWiredIteratorTurn(t *testing.T) {
	l := NewWiredList(1, 2, 3, 4)
	it := l.Iterator()

	it.Next()
	it.Next()
	it.Next() // now at 3

	back := it.Turn()

	// The first Next after a turn revisits the element the original
	// iterator returned last, then walks the other way.
	require.True(t, back.HasNext())
	assert.Equal(t, 3, back.Next())
	assert.Equal(t, 2, back.Next())
	assert.Equal(t, 1, back.Next())
	assert.False(t, back.HasNext())
}

func TestWiredIteratorTurnTwice(t *testing.T) {
	l := NewWiredList(1, 2, 3)
	it := l.Iterator()

	it.Next()
	it.Next()

	back := it.Turn()
	back.Next() // 2 again

	fwd := back.Turn()
	assert.Equal(t, 2, fwd.Next())
	assert.Equal(t, 3, fwd.Next())
}

func TestWiredIteratorIllegalStates(t *testing.T) {
	l := NewWiredList(1)
	it := l.Iterator()

	requirePanicsWith(t, ErrIllegalState, func() { it.Set(0) })
	requirePanicsWith(t, ErrIllegalState, func() { it.Remove() })
	requirePanicsWith(t, ErrIllegalState, func() { it.Turn() })

	it.Next()

	requirePanicsWith(t, ErrIllegalState, func() { it.Next() })
	requirePanicsWith(t, ErrIllegalState, func() { it.Peek() })

	it.Remove()
	requirePanicsWith(t, ErrIllegalState, func() { it.Remove() })
}

func TestWiredIteratorEmptyList(t *testing.T) {
	it := NewWiredList[int]().Iterator()

	assert.False(t, it.HasNext())
	requirePanicsWith(t, ErrIllegalState, func() { it.Next() })
}
