package collect

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// LockMode selects the locking discipline of a SyncList at
// construction time.
type LockMode int

const (
	// Exclusive serializes readers and writers behind a single mutex.
	// Suited to write-heavy workloads, where a reader/writer split
	// buys nothing.
	Exclusive LockMode = iota

	// ReadWrite lets readers run concurrently and gives writers
	// exclusive access. Suited to read-heavy workloads on large lists.
	ReadWrite
)

type listLock interface {
	lock()
	unlock()
	rlock()
	runlock()
}

type mutexLock struct {
	mu sync.Mutex
}

func (l *mutexLock) lock()    { l.mu.Lock() }
func (l *mutexLock) unlock()  { l.mu.Unlock() }
func (l *mutexLock) rlock()   { l.mu.Lock() }
func (l *mutexLock) runlock() { l.mu.Unlock() }

type rwLock struct {
	mu sync.RWMutex
}

func (l *rwLock) lock()    { l.mu.Lock() }
func (l *rwLock) unlock()  { l.mu.Unlock() }
func (l *rwLock) rlock()   { l.mu.RLock() }
func (l *rwLock) runlock() { l.mu.RUnlock() }

var syncListSeq uint64

// SyncList wraps a WiredList behind a lock chosen at construction.
// Every method acquires the appropriate lock for its duration and
// releases it on every exit path, panics included. Two-list operations
// acquire both locks in a fixed global order (construction sequence),
// so concurrent splices in opposite directions cannot deadlock.
type SyncList[T any] struct {
	seq  uint64
	lk   listLock
	list *WiredList[T]
}

func NewSyncList[T any](mode LockMode, values ...T) *SyncList[T] {
	var lk listLock

	if mode == ReadWrite {
		lk = &rwLock{}
	} else {
		lk = &mutexLock{}
	}

	return &SyncList[T]{
		seq:  atomic.AddUint64(&syncListSeq, 1),
		lk:   lk,
		list: NewWiredList(values...),
	}
}

func (s *SyncList[T]) Len() int {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.Len()
}

func (s *SyncList[T]) IsEmpty() bool {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.IsEmpty()
}

func (s *SyncList[T]) Get(index int) T {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.Get(index)
}

func (s *SyncList[T]) First() (T, bool) {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.First()
}

func (s *SyncList[T]) Last() (T, bool) {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.Last()
}

func (s *SyncList[T]) Values() []T {
	s.lk.rlock()
	defer s.lk.runlock()

	return s.list.Values()
}

func (s *SyncList[T]) ForEach(fn func(T)) {
	s.lk.rlock()
	defer s.lk.runlock()

	s.list.ForEach(fn)
}

func (s *SyncList[T]) Set(index int, value T) T {
	s.lk.lock()
	defer s.lk.unlock()

	return s.list.Set(index, value)
}

func (s *SyncList[T]) Append(value T) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Append(value)

	return s
}

func (s *SyncList[T]) AppendAll(values ...T) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.AppendAll(values...)

	return s
}

func (s *SyncList[T]) Prepend(value T) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Prepend(value)

	return s
}

func (s *SyncList[T]) Insert(index int, value T) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Insert(index, value)

	return s
}

func (s *SyncList[T]) InsertAll(index int, values ...T) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.InsertAll(index, values...)

	return s
}

func (s *SyncList[T]) Remove(index int) T {
	s.lk.lock()
	defer s.lk.unlock()

	return s.list.Remove(index)
}

func (s *SyncList[T]) RemoveFirst() (T, bool) {
	s.lk.lock()
	defer s.lk.unlock()

	return s.list.RemoveFirst()
}

func (s *SyncList[T]) RemoveLast() (T, bool) {
	s.lk.lock()
	defer s.lk.unlock()

	return s.list.RemoveLast()
}

func (s *SyncList[T]) RemoveIf(pred func(T) bool) int {
	s.lk.lock()
	defer s.lk.unlock()

	return s.list.RemoveIf(pred)
}

func (s *SyncList[T]) Clear() {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Clear()
}

func (s *SyncList[T]) Move(fromIndex, toIndex, newFromIndex int) {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Move(fromIndex, toIndex, newFromIndex)
}

func (s *SyncList[T]) Reverse() *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Reverse()

	return s
}

func (s *SyncList[T]) Defragment(criteria ...func(T) bool) *SyncList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	s.list.Defragment(criteria...)

	return s
}

// LTrim removes and returns the longest matching prefix as a plain,
// unsynchronized WiredList. The whole-list special case returns the
// inner list itself, leaving this wrapper empty.
func (s *SyncList[T]) LTrim(pred func(T) bool) *WiredList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	out := s.list.LTrim(pred)
	if out == s.list {
		s.list = NewWiredList[T]()
	}

	return out
}

func (s *SyncList[T]) RTrim(pred func(T) bool) *WiredList[T] {
	s.lk.lock()
	defer s.lk.unlock()

	out := s.list.RTrim(pred)
	if out == s.list {
		s.list = NewWiredList[T]()
	}

	return out
}

// Stitch drains other into this list. Both locks are held for the
// duration so no intermediate state is observable.
func (s *SyncList[T]) Stitch(other *SyncList[T]) *SyncList[T] {
	return s.embed(-1, other)
}

// Embed splices other into this list at index, draining it.
func (s *SyncList[T]) Embed(index int, other *SyncList[T]) *SyncList[T] {
	return s.embed(index, other)
}

func (s *SyncList[T]) embed(index int, other *SyncList[T]) *SyncList[T] {
	checkSelfEmbed(other == s)

	defer s.lockBoth(other)()

	if index < 0 {
		index = s.list.Len()
	}

	s.list.Embed(index, other.list)

	return s
}

// Excise removes [itsFrom, itsTo) from other and splices it in at
// index.
func (s *SyncList[T]) Excise(index int, other *SyncList[T], itsFrom, itsTo int) *SyncList[T] {
	checkSelfEmbed(other == s)

	defer s.lockBoth(other)()

	s.list.Excise(index, other.list, itsFrom, itsTo)

	return s
}

// lockBoth acquires both lists' locks in construction-sequence order
// and returns the matching release function.
func (s *SyncList[T]) lockBoth(other *SyncList[T]) func() {
	first, second := s, other
	if other.seq < s.seq {
		first, second = other, s
	}

	first.lk.lock()
	second.lk.lock()

	return func() {
		second.lk.unlock()
		first.lk.unlock()
	}
}

// LockedIterator is a WiredIterator that holds its list's write lock
// from creation until Close. Close must be called (typically with
// defer); as a last-resort safety net the lock is also released when
// an unclosed iterator becomes unreachable, but relying on the garbage
// collector to release a lock is strongly discouraged.
type LockedIterator[T any] struct {
	it      WiredIterator[T]
	release func()
	closed  bool
}

// Iterator locks the list and returns an iterator over it. The lock is
// the write lock even in ReadWrite mode, since the iterator can mutate
// the list.
func (s *SyncList[T]) Iterator() *LockedIterator[T] {
	s.lk.lock()

	li := &LockedIterator[T]{
		it:      s.list.Iterator(),
		release: s.lk.unlock,
	}

	runtime.SetFinalizer(li, (*LockedIterator[T]).Close)

	return li
}

// Close releases the list lock. It is idempotent.
func (li *LockedIterator[T]) Close() {
	if li.closed {
		return
	}

	li.closed = true
	runtime.SetFinalizer(li, nil)
	li.release()
}

func (li *LockedIterator[T]) HasNext() bool {
	li.check()

	return li.it.HasNext()
}

func (li *LockedIterator[T]) Next() T {
	li.check()

	return li.it.Next()
}

func (li *LockedIterator[T]) Peek() T {
	li.check()

	return li.it.Peek()
}

func (li *LockedIterator[T]) Set(value T) {
	li.check()

	li.it.Set(value)
}

func (li *LockedIterator[T]) Remove() {
	li.check()

	li.it.Remove()
}

func (li *LockedIterator[T]) check() {
	if li.closed {
		panic(ErrIteratorClosed)
	}
}
