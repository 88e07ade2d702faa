package collect

// WiredIterator is a one-directional iterator over a WiredList. It
// supports lookahead and in-place mutation of the element most
// recently returned by Next. Iterators are not safe under concurrent
// structural modification of the list; detection of such modification
// is best-effort only.
type WiredIterator[T any] interface {
	HasNext() bool

	// Next returns the next element and advances. It panics with
	// ErrIllegalState when the iterator is exhausted.
	Next() T

	// Peek returns the element Next would return, without advancing.
	Peek() T

	// Set replaces the element most recently returned by Next. It
	// panics with ErrIllegalState before the first call to Next.
	Set(value T)

	// Remove unlinks the element most recently returned by Next. It
	// panics with ErrIllegalState before the first call to Next or
	// when called twice without an intervening Next.
	Remove()

	// Turn returns an iterator traveling in the opposite direction,
	// positioned so that its first Next revisits the element most
	// recently returned by this one. It panics with ErrIllegalState
	// before the first call to Next.
	Turn() WiredIterator[T]
}

type wiredIterator[T any] struct {
	list    *WiredList[T]
	next    *wiredNode[T]
	last    *wiredNode[T]
	forward bool
}

// Iterator returns a forward WiredIterator positioned before the
// first element.
func (l *WiredList[T]) Iterator() WiredIterator[T] {
	return &wiredIterator[T]{list: l, next: l.head, forward: true}
}

// ReverseIterator returns a backward WiredIterator positioned before
// the last element.
func (l *WiredList[T]) ReverseIterator() WiredIterator[T] {
	return &wiredIterator[T]{list: l, next: l.tail}
}

func (it *wiredIterator[T]) HasNext() bool {
	return it.next != nil
}

func (it *wiredIterator[T]) Next() T {
	checkState(it.next != nil, "no next element")

	it.last = it.next
	it.next = it.step(it.next)

	return it.last.val
}

func (it *wiredIterator[T]) Peek() T {
	checkState(it.next != nil, "no next element")

	return it.next.val
}

func (it *wiredIterator[T]) Set(value T) {
	checkState(it.last != nil, "Set called before Next")

	it.last.val = value
}

func (it *wiredIterator[T]) Remove() {
	checkState(it.last != nil, "Remove called before Next")

	it.list.unlink(it.last)
	scrub(it.last)
	it.last = nil
}

func (it *wiredIterator[T]) Turn() WiredIterator[T] {
	checkState(it.last != nil, "Turn called before Next")

	return &wiredIterator[T]{
		list:    it.list,
		next:    it.last,
		forward: !it.forward,
	}
}

func (it *wiredIterator[T]) step(n *wiredNode[T]) *wiredNode[T] {
	if it.forward {
		return n.next
	}

	return n.prev
}
