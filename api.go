// Package owning provides an exclusive-ownership pointer with value semantics.
//
// A Ptr[T] owns zero or one heap-allocated T. Unlike a plain *T, copying a Ptr
// never aliases: Clone and CopyFrom allocate a new T holding a deep copy of the
// value. Take and MoveFrom transfer the allocation and leave the source empty.
//
// # Basic Usage
//
//	type Config struct {
//	    Name  string
//	    Hosts []string
//	}
//
//	func (c Config) Clone() Config {
//	    return Config{Name: c.Name, Hosts: slices.Clone(c.Hosts)}
//	}
//
//	a := owning.New(Config{Name: "primary", Hosts: []string{"a", "b"}})
//	b, _ := a.Clone()         // independent copy
//	b.MustDeref().Name = "replica"
//
//	c := a.Take()             // a is now empty
//	_ = owning.Equal(&a, owning.Nil) // true
//
// # Copy Strategies
//
// How a T is deep copied is resolved once per type, in order:
//
//   - Register: a clone function registered for T
//   - RegisterCodec: a marshal/unmarshal round-trip through a Codec
//   - Cloner[T]: a Clone() T method on T or *T
//   - Cloner[*T]: a Clone() *T method on *T
//   - reflection: a reflective deep copy of the value
//
// Element types holding channels or unsafe pointers cannot be copied
// reflectively; their clones fail with ErrUnsupported unless a Cloner or a
// registered strategy is available. StrategyOf reports the resolved strategy.
//
// # Identity Comparison
//
// Equal, Compare, Less and the other comparison functions, and Hash, use the
// address of the owned allocation, never the value. A clone holds an equal
// value at a different address, so it is not Equal to its source. Nil is the
// "no value" sentinel: it is Equal to every empty Ptr and orders first.
//
//	byIdentity := map[*Config]string{c.Get(): "primary"}
//	seen := map[uint64]bool{c.Hash(): true}
//
// # Dropping
//
// Element types implementing Dropper are notified once when a Ptr lets go of
// them through Clear, Reset, CopyFrom, MoveFrom, or decoding. Release hands the
// value to the caller without dropping it. A Ptr that is simply garbage
// collected never calls Drop; Clear it when the value's resources must go.
//
// # Encoding
//
// *Ptr[T] implements the JSON, XML, YAML (gopkg.in/yaml.v3) and MessagePack
// (github.com/vmihailenco/msgpack/v5) marshaling interfaces, encoding the owned
// value or null.
//
// # Codec Providers
//
// The following codec implementations are available as submodules for use
// with RegisterCodec:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package owning
