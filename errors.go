package collect

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIndexOutOfBounds       = errors.New("index out of bounds")
	ErrIllegalArgument        = errors.New("illegal argument")
	ErrIllegalState           = errors.New("illegal state")
	ErrImmutable              = errors.New("attempt to modify an immutable container")
	ErrConcurrentModification = errors.New("list structure changed during traversal")
	ErrNilTypeKey             = errors.New("nil reflect.Type used as key")
	ErrSelfEmbed              = errors.New("source and target list must not be the same list")
)

var ErrIteratorClosed = fmt.Errorf("%w: iterator used after Close", ErrIllegalState)

type ErrNilValue struct {
	typ reflect.Type
}

func (e *ErrNilValue) Error() string {
	if e.typ == nil {
		return "nil value in source mapping"
	}

	return fmt.Sprintf("nil value for type %q in source mapping", e.typ.String())
}

type ErrDuplicateKey struct {
	typ reflect.Type
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("duplicate type key: %q", e.typ.String())
}
