package owning

import "errors"

// CopyUnique returns a new allocation holding a deep copy of *src, or nil if
// src is nil. src is only read.
//
// The copy is made with the strategy StrategyOf reports for T. Element types
// that cannot be deep copied fail with an error matching ErrUnsupported. A
// strategy error, or a result that is nil or src itself, yields an *OpError
// matching ErrClone.
func CopyUnique[T any](src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}

	r := resolve[T]()
	if r.err != nil {
		emitCloneFailed(r.typeName, r.strategy, r.err)
		return nil, r.err
	}

	dst, err := r.fn(src)
	if err == nil {
		err = checkClone(src, dst)
	}
	if err != nil {
		err = newOpError(ErrClone, "clone", r.typeName, err)
		emitCloneFailed(r.typeName, r.strategy, err)
		return nil, err
	}
	if zeroSized[T]() {
		box := alloc[T]()
		*box = *dst
		dst = box
	}
	return dst, nil
}

// checkClone rejects results that would leave two owners of one allocation
// or turn a value into nothing.
func checkClone[T any](src, dst *T) error {
	switch {
	case dst == nil:
		return errors.New("clone returned a nil pointer")
	case dst == src && !zeroSized[T]():
		return errors.New("clone returned its receiver")
	}
	return nil
}
