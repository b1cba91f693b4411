package owning

import (
	"fmt"
	"reflect"
	"unsafe"
)

// noCopy makes go vet's copylocks check report plain assignments of a Ptr.
// A Ptr must be copied with Clone or CopyFrom and moved with Take or MoveFrom.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ptr exclusively owns zero or one heap-allocated T.
//
// The zero value owns nothing. Copying a Ptr deep copies its value (Clone,
// CopyFrom); moving transfers the allocation and empties the source (Take,
// MoveFrom). Comparisons and hashing use the identity of the allocation, not
// its value: a clone is never Equal to its source.
//
// A Ptr is not safe for concurrent mutation.
type Ptr[T any] struct {
	_ noCopy
	p *T
}

// New returns a Ptr owning a fresh allocation holding v.
func New[T any](v T) Ptr[T] {
	p := alloc[T]()
	*p = v
	return Ptr[T]{p: p}
}

// From returns a Ptr that takes ownership of p. The caller must not use p
// to manage the value's lifetime afterwards. From(nil) owns nothing.
//
// Go may hand out one address for every zero-size allocation, so Ptrs built
// with From over zero-size values can compare Equal. New, Make and Clone
// always own distinct addresses.
func From[T any](p *T) Ptr[T] {
	return Ptr[T]{p: p}
}

// Make allocates a zero T, runs init on it, and returns a Ptr owning the
// result. If init fails the allocation is discarded without being dropped and
// the error is returned as an *OpError matching ErrConstruct.
func Make[T any](init func(*T) error) (Ptr[T], error) {
	v := alloc[T]()
	if init != nil {
		if err := init(v); err != nil {
			name := resolve[T]().typeName
			err = newOpError(ErrConstruct, "construct", name, err)
			emitConstructFailed(name, err)
			return Ptr[T]{}, err
		}
	}
	return Ptr[T]{p: v}, nil
}

// Get returns the owned pointer without affecting ownership, or nil.
func (p *Ptr[T]) Get() *T {
	if p == nil {
		return nil
	}
	return p.p
}

// Valid reports whether p owns an allocation.
func (p *Ptr[T]) Valid() bool {
	return p.Get() != nil
}

// Deref returns the owned value's address. Dereferencing a Ptr that owns
// nothing returns a *DerefError matching ErrNullDereference.
func (p *Ptr[T]) Deref() (*T, error) {
	if v := p.Get(); v != nil {
		return v, nil
	}
	name := resolve[T]().typeName
	emitNullDereference(name)
	return nil, &DerefError{Type: name}
}

// MustDeref is like Deref but panics if p owns nothing.
func (p *Ptr[T]) MustDeref() *T {
	v, err := p.Deref()
	if err != nil {
		panic(err)
	}
	return v
}

// Clone returns a Ptr owning a deep copy of p's value. Cloning an empty Ptr
// returns an empty Ptr.
func (p *Ptr[T]) Clone() (Ptr[T], error) {
	dst, err := CopyUnique(p.Get())
	if err != nil {
		return Ptr[T]{}, err
	}
	return Ptr[T]{p: dst}, nil
}

// CopyFrom replaces p's value with a deep copy of src's. The copy is made
// before p changes, so on error p is left as it was. Copying p onto itself
// leaves it untouched.
func (p *Ptr[T]) CopyFrom(src *Ptr[T]) error {
	if p == src {
		return nil
	}
	dst, err := CopyUnique(src.Get())
	if err != nil {
		return err
	}
	p.replace(dst)
	return nil
}

// Take moves p's allocation into the returned Ptr and leaves p empty.
func (p *Ptr[T]) Take() Ptr[T] {
	return Ptr[T]{p: p.Release()}
}

// MoveFrom drops p's value and takes ownership of src's allocation, leaving
// src empty. Moving p onto itself leaves it untouched.
func (p *Ptr[T]) MoveFrom(src *Ptr[T]) {
	if p == src {
		return
	}
	p.replace(src.Release())
}

// Clear drops the owned value, if any, and leaves p empty.
func (p *Ptr[T]) Clear() {
	p.replace(nil)
}

// Release relinquishes ownership without dropping the value and returns it.
// The caller becomes responsible for the value. p is left empty.
func (p *Ptr[T]) Release() *T {
	if p == nil {
		return nil
	}
	v := p.p
	p.p = nil
	return v
}

// Reset drops the owned value and takes ownership of v. Reset(nil) is Clear.
// Resetting to the pointer p already owns does nothing.
func (p *Ptr[T]) Reset(v *T) {
	p.replace(v)
}

// Swap exchanges the allocations owned by p and other.
// Neither p nor other may be nil.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.p, other.p = other.p, p.p
}

// String formats p as its element type and allocation address.
func (p *Ptr[T]) String() string {
	name := reflect.TypeFor[T]().String()
	if v := p.Get(); v != nil {
		return fmt.Sprintf("owning.Ptr[%s](%p)", name, v)
	}
	return fmt.Sprintf("owning.Ptr[%s](nil)", name)
}

// alloc returns a new zero T. Zero-size types are padded so that every
// allocation has its own address.
func alloc[T any]() *T {
	if !zeroSized[T]() {
		return new(T)
	}
	b := new(struct {
		v T
		_ byte
	})
	return &b.v
}

func zeroSized[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// replace installs v, then drops the previous value.
func (p *Ptr[T]) replace(v *T) {
	old := p.p
	if old == v {
		return
	}
	p.p = v
	drop(old)
}
