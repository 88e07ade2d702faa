package collect

// WiredList is a doubly-linked list built for cheap structural
// surgery: once the target position is located, inserting or removing
// a whole segment is a constant number of pointer reassignments, so
// bulk operations like Move, Stitch and Excise never copy values.
//
// The zero value is an empty list ready for use. A WiredList is not
// safe for concurrent use; wrap it in a SyncList when multiple
// goroutines touch it.
type WiredList[T any] struct {
	head, tail *wiredNode[T]
	size       int
}

type wiredNode[T any] struct {
	val  T
	prev *wiredNode[T]
	next *wiredNode[T]
}

// chain is a detached run of nodes (head, tail, length) not attached
// to any list. It mirrors the list invariant internally and is either
// spliced into a list or discarded.
type chain[T any] struct {
	head, tail *wiredNode[T]
	length     int
}

func makeChain[T any](values []T) chain[T] {
	var c chain[T]

	for _, v := range values {
		n := &wiredNode[T]{val: v}

		if c.tail == nil {
			c.head, c.tail = n, n
		} else {
			n.prev = c.tail
			c.tail.next = n
			c.tail = n
		}

		c.length++
	}

	return c
}

func NewWiredList[T any](values ...T) *WiredList[T] {
	l := &WiredList[T]{}

	if len(values) > 0 {
		l.insertChain(0, makeChain(values))
	}

	return l
}

func listOf[T any](c chain[T]) *WiredList[T] {
	return &WiredList[T]{head: c.head, tail: c.tail, size: c.length}
}

func (l *WiredList[T]) Len() int {
	return l.size
}

func (l *WiredList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *WiredList[T]) First() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.val, true
}

func (l *WiredList[T]) Last() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	return l.tail.val, true
}

func (l *WiredList[T]) Get(index int) T {
	checkIndex(index, l.size)

	return l.nodeAt(index).val
}

// Set replaces the element at index and returns the previous value.
func (l *WiredList[T]) Set(index int, value T) T {
	checkIndex(index, l.size)

	n := l.nodeAt(index)
	old := n.val
	n.val = value

	return old
}

func (l *WiredList[T]) Append(value T) *WiredList[T] {
	l.insertChain(l.size, makeChain([]T{value}))

	return l
}

func (l *WiredList[T]) AppendAll(values ...T) *WiredList[T] {
	if len(values) > 0 {
		l.insertChain(l.size, makeChain(values))
	}

	return l
}

func (l *WiredList[T]) Prepend(value T) *WiredList[T] {
	l.insertChain(0, makeChain([]T{value}))

	return l
}

func (l *WiredList[T]) Insert(index int, value T) *WiredList[T] {
	checkInsertIndex(index, l.size)
	l.insertChain(index, makeChain([]T{value}))

	return l
}

func (l *WiredList[T]) InsertAll(index int, values ...T) *WiredList[T] {
	checkInsertIndex(index, l.size)

	if len(values) > 0 {
		l.insertChain(index, makeChain(values))
	}

	return l
}

// Remove unlinks the element at index and returns its value. The
// node's value and links are cleared so it does not retain stale
// references.
func (l *WiredList[T]) Remove(index int) T {
	checkIndex(index, l.size)

	n := l.nodeAt(index)
	l.unlink(n)

	return scrub(n)
}

func (l *WiredList[T]) RemoveFirst() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	n := l.head
	l.unlink(n)

	return scrub(n), true
}

func (l *WiredList[T]) RemoveLast() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}

	n := l.tail
	l.unlink(n)

	return scrub(n), true
}

// RemoveIf unlinks every element satisfying pred and returns how many
// were removed.
func (l *WiredList[T]) RemoveIf(pred func(T) bool) int {
	removed := 0

	for n := l.head; n != nil; {
		next := n.next

		if pred(n.val) {
			l.unlink(n)
			scrub(n)
			removed++
		}

		n = next
	}

	return removed
}

func (l *WiredList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		scrub(n)
		n = next
	}

	l.head, l.tail, l.size = nil, nil, 0
}

// Cut removes the segment [from, to) and returns it as a new list.
func (l *WiredList[T]) Cut(from, to int) *WiredList[T] {
	checkRange(from, to, l.size)

	if from == to {
		return NewWiredList[T]()
	}

	return listOf(l.cutChain(from, to))
}

// Move relocates the segment [fromIndex, toIndex) so that it sits
// before the element that newFromIndex pointed at in the list as it
// was before the move. The segment must be non-empty; moving it to its
// own start index is a no-op. Values are never copied, only pointers
// change. For a left move newFromIndex must lie in [0, fromIndex], for
// a right move in [toIndex, size]. A newFromIndex outside [0, size]
// panics with ErrIndexOutOfBounds; one landing inside the moved
// segment panics with ErrIllegalArgument.
func (l *WiredList[T]) Move(fromIndex, toIndex, newFromIndex int) {
	checkRange(fromIndex, toIndex, l.size)
	checkArg(fromIndex != toIndex, "zero-length segment [%d, %d)", fromIndex, toIndex)
	checkInsertIndex(newFromIndex, l.size)

	if newFromIndex == fromIndex {
		return
	}

	insertAt := newFromIndex
	if newFromIndex > fromIndex {
		checkArg(newFromIndex >= toIndex,
			"newFromIndex %d inside moved segment [%d, %d)", newFromIndex, fromIndex, toIndex)
		insertAt = newFromIndex - (toIndex - fromIndex)
	}

	c := l.cutChain(fromIndex, toIndex)
	l.insertChain(insertAt, c)
}

// Embed splices every node of other into this list at index. Node
// ownership transfers wholesale, so other is empty afterwards. This is
// a deliberate trade-off against the O(n) copy that AppendAll-style
// operations pay; use InsertAll(index, other.Values()...) to keep the
// source intact.
func (l *WiredList[T]) Embed(index int, other *WiredList[T]) *WiredList[T] {
	checkInsertIndex(index, l.size)
	checkSelfEmbed(other == l)

	if other.size == 0 {
		return l
	}

	c := chain[T]{head: other.head, tail: other.tail, length: other.size}
	other.head, other.tail, other.size = nil, nil, 0

	l.insertChain(index, c)

	return l
}

// Stitch appends every node of other to this list. Like Embed it
// drains the source list.
func (l *WiredList[T]) Stitch(other *WiredList[T]) *WiredList[T] {
	return l.Embed(l.size, other)
}

// CopyAppendAll appends the values of other, leaving it intact, at the
// cost of copying every value. The non-draining counterpart of Stitch.
// Appending a list to itself doubles it.
func (l *WiredList[T]) CopyAppendAll(other *WiredList[T]) *WiredList[T] {
	return l.AppendAll(other.Values()...)
}

// Equal reports whether both lists hold equal values in the same
// order, compared pairwise with eq.
func (l *WiredList[T]) Equal(other *WiredList[T], eq func(a, b T) bool) bool {
	if l.size != other.size {
		return false
	}

	a, b := l.head, other.head
	for a != nil {
		if !eq(a.val, b.val) {
			return false
		}

		a, b = a.next, b.next
	}

	return true
}

// Excise removes the segment [itsFrom, itsTo) from other and splices
// it into this list at index. Only the removed segment is taken from
// the source; the rest of it is untouched.
func (l *WiredList[T]) Excise(index int, other *WiredList[T], itsFrom, itsTo int) *WiredList[T] {
	checkInsertIndex(index, l.size)
	checkSelfEmbed(other == l)
	checkRange(itsFrom, itsTo, other.size)

	if itsFrom == itsTo {
		return l
	}

	l.insertChain(index, other.cutChain(itsFrom, itsTo))

	return l
}

// Reverse reverses the list in place by swapping every node's links.
func (l *WiredList[T]) Reverse() *WiredList[T] {
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}

	l.head, l.tail = l.tail, l.head

	return l
}

// Defragment stably reorders the list so that elements satisfying the
// first criterion come first, in their original relative order, then
// elements satisfying the second, and so on, with elements satisfying
// none at the end. Each element counts only towards the first
// criterion it satisfies.
func (l *WiredList[T]) Defragment(criteria ...func(T) bool) *WiredList[T] {
	buckets := l.buckets(criteria)

	l.head, l.tail, l.size = nil, nil, 0

	for _, b := range buckets {
		if b.length > 0 {
			l.insertChain(l.size, b)
		}
	}

	return l
}

// Group destructively carves the list into one list per criterion:
// each element moves to the list of the first criterion it satisfies.
// Elements satisfying none remain in this list, which is returned as
// the final chunk.
func (l *WiredList[T]) Group(criteria ...func(T) bool) []*WiredList[T] {
	buckets := l.buckets(criteria)

	out := make([]*WiredList[T], 0, len(criteria)+1)
	for _, b := range buckets[:len(criteria)] {
		out = append(out, listOf(b))
	}

	rest := buckets[len(criteria)]
	l.head, l.tail, l.size = rest.head, rest.tail, rest.length

	return append(out, l)
}

// buckets unlinks every node into one chain per criterion plus a
// final catch-all chain, preserving relative order.
func (l *WiredList[T]) buckets(criteria []func(T) bool) []chain[T] {
	buckets := make([]chain[T], len(criteria)+1)

	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil

		idx := len(criteria)
		for i, crit := range criteria {
			if crit(n.val) {
				idx = i
				break
			}
		}

		b := &buckets[idx]
		if b.tail == nil {
			b.head, b.tail = n, n
		} else {
			n.prev = b.tail
			b.tail.next = n
			b.tail = n
		}
		b.length++

		n = next
	}

	return buckets
}

// Partition destructively carves the list into chunks of chunkSize
// elements. The list itself becomes the final chunk, holding the
// remaining at most chunkSize elements.
func (l *WiredList[T]) Partition(chunkSize int) []*WiredList[T] {
	checkArg(chunkSize > 0, "chunk size %d", chunkSize)

	var out []*WiredList[T]

	for l.size > chunkSize {
		out = append(out, listOf(l.cutChain(0, chunkSize)))
	}

	return append(out, l)
}

// Split destructively divides the list into count chunks of roughly
// equal size. The list itself becomes the final chunk.
func (l *WiredList[T]) Split(count int) []*WiredList[T] {
	checkArg(count > 0, "chunk count %d", count)

	var (
		base = l.size / count
		rem  = l.size % count
		out  = make([]*WiredList[T], 0, count)
	)

	for i := 0; i < count-1; i++ {
		n := base
		if i < rem {
			n++
		}

		if n == 0 {
			out = append(out, NewWiredList[T]())
			continue
		}

		out = append(out, listOf(l.cutChain(0, n)))
	}

	return append(out, l)
}

// LTrim removes and returns the longest prefix whose elements all
// satisfy pred. When the predicate never holds at the head the result
// is a new empty list; when it holds for every element the list itself
// is returned, unchanged, so callers can cheaply detect that the whole
// list was consumed.
func (l *WiredList[T]) LTrim(pred func(T) bool) *WiredList[T] {
	count := 0
	for n := l.head; n != nil && pred(n.val); n = n.next {
		count++
	}

	return l.trim(count)
}

// RTrim is LTrim for the longest matching suffix.
func (l *WiredList[T]) RTrim(pred func(T) bool) *WiredList[T] {
	count := 0
	for n := l.tail; n != nil && pred(n.val); n = n.prev {
		count++
	}

	if count == l.size {
		return l
	}

	if count == 0 {
		return NewWiredList[T]()
	}

	return listOf(l.cutChain(l.size-count, l.size))
}

func (l *WiredList[T]) trim(count int) *WiredList[T] {
	if count == l.size {
		return l
	}

	if count == 0 {
		return NewWiredList[T]()
	}

	return listOf(l.cutChain(0, count))
}

func (l *WiredList[T]) Values() []T {
	out := make([]T, 0, l.size)

	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}

	return out
}

func (l *WiredList[T]) ForEach(fn func(T)) {
	for n := l.head; n != nil; n = n.next {
		fn(n.val)
	}
}

// nodeAt walks from whichever end is closer to index, halving the
// average traversal cost.
func (l *WiredList[T]) nodeAt(index int) *wiredNode[T] {
	if index < l.size>>1 {
		n := l.head

		for i := 0; i < index; i++ {
			n = advance(n.next)
		}

		return n
	}

	n := l.tail

	for i := l.size - 1; i > index; i-- {
		n = advance(n.prev)
	}

	return n
}

// nodeAfter resumes traversal from an already-held node instead of
// starting over at an end. start must sit at startIndex and index must
// not precede it.
func (l *WiredList[T]) nodeAfter(start *wiredNode[T], startIndex, index int) *wiredNode[T] {
	if index-startIndex <= l.size-1-index {
		n := start

		for i := startIndex; i < index; i++ {
			n = advance(n.next)
		}

		return n
	}

	n := l.tail

	for i := l.size - 1; i > index; i-- {
		n = advance(n.prev)
	}

	return n
}

// advance guards every traversal step: a nil link where the size
// counter says a node must exist means the structure was mutated out
// from under us.
func advance[T any](n *wiredNode[T]) *wiredNode[T] {
	if n == nil {
		panic(ErrConcurrentModification)
	}

	return n
}

// insertChain splices a detached chain in before position index. At
// most four pointers change; locating the position is the only O(n)
// part.
func (l *WiredList[T]) insertChain(index int, c chain[T]) {
	switch {
	case l.size == 0:
		l.head, l.tail = c.head, c.tail

	case index == 0:
		c.tail.next = l.head
		l.head.prev = c.tail
		l.head = c.head

	case index == l.size:
		c.head.prev = l.tail
		l.tail.next = c.head
		l.tail = c.tail

	default:
		next := l.nodeAt(index)
		prev := advance(next.prev)

		prev.next = c.head
		c.head.prev = prev
		c.tail.next = next
		next.prev = c.tail
	}

	l.size += c.length
}

// cutChain detaches the non-empty segment [from, to) and returns it
// as a chain.
func (l *WiredList[T]) cutChain(from, to int) chain[T] {
	var (
		first = l.nodeAt(from)
		last  = l.nodeAfter(first, from, to-1)

		prev = first.prev
		next = last.next
	)

	first.prev, last.next = nil, nil

	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}

	if next == nil {
		l.tail = prev
	} else {
		next.prev = prev
	}

	l.size -= to - from

	return chain[T]{head: first, tail: last, length: to - from}
}

func (l *WiredList[T]) unlink(n *wiredNode[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	l.size--
}

// scrub clears an unlinked node and returns its value.
func scrub[T any](n *wiredNode[T]) T {
	v := n.val

	var zero T
	n.val = zero
	n.prev, n.next = nil, nil

	return v
}
