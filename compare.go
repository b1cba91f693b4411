package owning

import (
	"cmp"
	"hash/maphash"
	"unsafe"
)

// Handle is anything whose allocation identity can be compared: a *Ptr[T]
// of any element type, or Nil.
type Handle interface {
	addr() uintptr
}

// addr returns the owned allocation's address, or 0 when p owns nothing.
func (p *Ptr[T]) addr() uintptr {
	return uintptr(unsafe.Pointer(p.Get()))
}

type nilHandle struct{}

func (nilHandle) addr() uintptr { return 0 }

// Nil is the "no value" sentinel. It is Equal to every empty Ptr and orders
// before every non-empty one.
var Nil Handle = nilHandle{}

// hashSeed is fixed for the life of the process.
var hashSeed = maphash.MakeSeed()

// Compare orders x and y by allocation address and returns -1, 0, or +1.
// The order across element types is consistent but otherwise unspecified;
// Nil and empty Ptrs sort first.
func Compare(x, y Handle) int {
	return cmp.Compare(addrOf(x), addrOf(y))
}

// Equal reports whether x and y own the same allocation, or both own nothing.
// Values are never compared: two clones holding equal values are not Equal.
func Equal(x, y Handle) bool {
	return addrOf(x) == addrOf(y)
}

// NotEqual is !Equal(x, y).
func NotEqual(x, y Handle) bool {
	return !Equal(x, y)
}

// Less reports whether x orders before y.
func Less(x, y Handle) bool {
	return Compare(x, y) < 0
}

// LessEqual reports whether x does not order after y.
func LessEqual(x, y Handle) bool {
	return !Less(y, x)
}

// Greater reports whether x orders after y.
func Greater(x, y Handle) bool {
	return Less(y, x)
}

// GreaterEqual reports whether x does not order before y.
func GreaterEqual(x, y Handle) bool {
	return !Less(x, y)
}

// HashOf hashes the allocation identity of h. Handles that are Equal hash
// equal; clones generally do not.
func HashOf(h Handle) uint64 {
	return maphash.Comparable(hashSeed, addrOf(h))
}

// Hash hashes the identity of p's allocation. See HashOf.
func (p *Ptr[T]) Hash() uint64 {
	return HashOf(p)
}

// addrOf treats a nil Handle as Nil.
func addrOf(h Handle) uintptr {
	if h == nil {
		return 0
	}
	return h.addr()
}
