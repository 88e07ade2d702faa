package collect

import "fmt"

// Precondition helpers. Usage errors are programmer errors, so they
// surface as panics carrying the matching sentinel error; construction
// errors are returned as ordinary errors instead.

// checkIndex validates an element index in [0, size).
func checkIndex(index, size int) int {
	if index < 0 || index >= size {
		panic(fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, size))
	}

	return index
}

// checkInsertIndex validates an insertion point in [0, size].
func checkInsertIndex(index, size int) int {
	if index < 0 || index > size {
		panic(fmt.Errorf("%w: insertion point %d, size %d", ErrIndexOutOfBounds, index, size))
	}

	return index
}

// checkRange validates a half-open segment [from, to) within [0, size].
func checkRange(from, to, size int) {
	if from < 0 || to > size || from > to {
		panic(fmt.Errorf("%w: segment [%d, %d), size %d", ErrIndexOutOfBounds, from, to, size))
	}
}

// checkSelfEmbed rejects splices whose source and target are the same
// list. The panic wraps both ErrIllegalArgument and ErrSelfEmbed so
// either sentinel matches under errors.Is.
func checkSelfEmbed(same bool) {
	if same {
		panic(fmt.Errorf("%w: %w", ErrIllegalArgument, ErrSelfEmbed))
	}
}

func checkArg(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrIllegalArgument, fmt.Sprintf(format, args...)))
	}
}

func checkState(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...)))
	}
}
