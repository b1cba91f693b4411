package owning

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNullDereference indicates an empty Ptr was dereferenced.
	ErrNullDereference = errors.New("null dereference")

	// ErrUnsupported indicates the element type cannot be deep copied.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrClone indicates a clone strategy failed.
	ErrClone = errors.New("clone failed")

	// ErrConstruct indicates a Make initializer failed.
	ErrConstruct = errors.New("construct failed")

	// ErrDecode indicates an encoded value could not be decoded into a Ptr.
	ErrDecode = errors.New("decode failed")
)

// DerefError is returned when dereferencing a Ptr that owns nothing.
type DerefError struct {
	Type string // Element type of the Ptr
}

func (e *DerefError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: Ptr[%s] owns nothing", ErrNullDereference.Error(), e.Type)
	}
	return ErrNullDereference.Error()
}

func (e *DerefError) Unwrap() error {
	return ErrNullDereference
}

// OpError represents a failed operation on an element type.
// It wraps a sentinel error with the operation, type, and underlying cause.
type OpError struct {
	Err   error  // Underlying sentinel error (ErrClone, ErrUnsupported, etc.)
	Op    string // Operation that failed (clone, construct, decode)
	Type  string // Element type name
	Cause error  // Original error, if any
}

func (e *OpError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Type, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Type, e.Err.Error())
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// newOpError creates an OpError for a failed operation.
func newOpError(sentinel error, op, typeName string, cause error) error {
	return &OpError{
		Err:   sentinel,
		Op:    op,
		Type:  typeName,
		Cause: cause,
	}
}
