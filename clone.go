package owning

// Cloner allows types to provide deep copy logic.
// A Ptr[T] uses it whenever T (or *T) implements Cloner[T].
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. For types containing pointers, slices, or maps,
// ensure these are also copied to achieve true isolation.
//
// For simple value types with no pointers, slices, or maps, Clone can simply return
// the receiver value:
//
//	func (u User) Clone() User { return u }
//
// For types with reference fields, ensure deep copying:
//
//	func (o Order) Clone() Order {
//	    items := make([]Item, len(o.Items))
//	    copy(items, o.Items)
//	    return Order{ID: o.ID, Items: items}
//	}
type Cloner[T any] interface {
	Clone() T
}

// Dropper is implemented by element types that hold resources which must be
// released when their owning Ptr lets go of them.
//
// A Ptr calls Drop at most once per allocation, when it lets go of the value
// through Clear, Reset to a different value, CopyFrom, MoveFrom, or decoding.
// Go has no destructors: a Ptr that simply becomes unreachable never calls
// Drop, and neither does a value handed out by Release. Owners that need the
// hook to run must Clear the Ptr when they are done with it.
type Dropper interface {
	Drop()
}

// drop runs the Dropper hook on v if it has one.
func drop[T any](v *T) {
	if v == nil {
		return
	}
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}
