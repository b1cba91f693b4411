package owning

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	clone "github.com/huandu/go-clone"
	"github.com/zoobzio/sentinel"
)

// Strategy identifies how values of an element type are deep copied.
type Strategy int

const (
	// StrategyUnsupported means the type cannot be deep copied; clones fail with ErrUnsupported.
	StrategyUnsupported Strategy = iota

	// StrategyFunc uses a function registered with Register.
	StrategyFunc

	// StrategyCodec round-trips through a codec registered with RegisterCodec.
	StrategyCodec

	// StrategyCloner calls Clone() T on the value.
	StrategyCloner

	// StrategyPointerCloner calls Clone() *T on the value's address.
	StrategyPointerCloner

	// StrategyReflect walks the value with a reflective deep copier.
	StrategyReflect
)

func (s Strategy) String() string {
	switch s {
	case StrategyFunc:
		return "func"
	case StrategyCodec:
		return "codec"
	case StrategyCloner:
		return "cloner"
	case StrategyPointerCloner:
		return "pointer-cloner"
	case StrategyReflect:
		return "reflect"
	default:
		return "unsupported"
	}
}

// cloneFunc produces a fresh allocation holding a deep copy of *src.
// src is never nil.
type cloneFunc[T any] func(src *T) (*T, error)

// resolution is the cached clone plan for one element type.
type resolution[T any] struct {
	strategy Strategy
	typeName string
	fn       cloneFunc[T]
	err      error // set when strategy is StrategyUnsupported
}

var (
	registered = make(map[reflect.Type]any) // cloneFunc[T] or Codec
	resolved   = make(map[reflect.Type]any) // *resolution[T]
	registryMu sync.RWMutex
)

// Register installs fn as the clone function for T, taking precedence over
// every other strategy. fn must return a new allocation that shares no mutable
// state with src; src is never nil.
func Register[T any](fn func(src *T) (*T, error)) {
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	registered[typ] = cloneFunc[T](fn)
	delete(resolved, typ)
}

// RegisterCodec makes T clone by marshaling with c and unmarshaling into a
// fresh value. Fields the codec does not carry are lost in the copy.
func RegisterCodec[T any](c Codec) {
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	registered[typ] = c
	delete(resolved, typ)
}

// ResetRegistry clears registered strategies and the resolution cache.
// This is primarily useful for test isolation.
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = make(map[reflect.Type]any)
	resolved = make(map[reflect.Type]any)
}

// StrategyOf reports the strategy used to deep copy values of T.
func StrategyOf[T any]() Strategy {
	return resolve[T]().strategy
}

// resolve returns the cached clone plan for T, building it on first use.
func resolve[T any]() *resolution[T] {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := resolved[typ]; ok {
		registryMu.RUnlock()
		return cached.(*resolution[T])
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	// Double-check pattern
	if cached, ok := resolved[typ]; ok {
		registryMu.Unlock()
		return cached.(*resolution[T])
	}
	r := buildResolution[T](typ, registered[typ])
	resolved[typ] = r
	registryMu.Unlock()

	emitStrategyResolved(r.typeName, r.strategy)
	return r
}

// buildResolution picks the first applicable strategy for T.
func buildResolution[T any](typ reflect.Type, reg any) *resolution[T] {
	r := &resolution[T]{typeName: typeNameOf[T](typ)}

	switch v := reg.(type) {
	case cloneFunc[T]:
		r.strategy, r.fn = StrategyFunc, v
		return r
	case Codec:
		r.strategy, r.fn = StrategyCodec, codecClone[T](v)
		return r
	}

	ptr := reflect.PointerTo(typ)
	switch {
	case typ.Implements(reflect.TypeFor[Cloner[T]]()):
		r.strategy, r.fn = StrategyCloner, valueClone[T]
	case ptr.Implements(reflect.TypeFor[Cloner[T]]()):
		r.strategy, r.fn = StrategyCloner, addrClone[T]
	case ptr.Implements(reflect.TypeFor[Cloner[*T]]()):
		r.strategy, r.fn = StrategyPointerCloner, pointerClone[T]
	default:
		if reason := sharedIdentity(typ, make(map[reflect.Type]bool)); reason != "" {
			r.strategy = StrategyUnsupported
			r.err = newOpError(ErrUnsupported, "clone", r.typeName, errors.New(reason))
			return r
		}
		r.strategy, r.fn = StrategyReflect, reflectClone[T]
	}
	return r
}

// typeNameOf names T for errors and events. Scanning a named struct also
// caches its field metadata, and that of related types, for sharedIdentity.
func typeNameOf[T any](typ reflect.Type) string {
	if typ.Kind() == reflect.Struct && typ.Name() != "" {
		return sentinel.Scan[T]().TypeName
	}
	return typ.String()
}

// sharedIdentity reports why a reflective copy of t would alias state with
// its source, or "" if it would not.
func sharedIdentity(t reflect.Type, seen map[reflect.Type]bool) string {
	if seen[t] {
		return ""
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%s cannot be deep copied", t)
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return sharedIdentity(t.Elem(), seen)
	case reflect.Map:
		if reason := sharedIdentity(t.Key(), seen); reason != "" {
			return reason
		}
		return sharedIdentity(t.Elem(), seen)
	case reflect.Struct:
		for _, f := range structMetadata(t).Fields {
			if reason := fieldSharedIdentity(f, seen); reason != "" {
				return fmt.Sprintf("field %s: %s", f.Name, reason)
			}
		}
		// sentinel skips unexported fields
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.IsExported() {
				continue
			}
			if reason := sharedIdentity(sf.Type, seen); reason != "" {
				return fmt.Sprintf("field %s: %s", sf.Name, reason)
			}
		}
	}
	return ""
}

func fieldSharedIdentity(f sentinel.FieldMetadata, seen map[reflect.Type]bool) string {
	switch f.Kind {
	case sentinel.KindInterface:
		// Dynamic values are only known at copy time.
		return ""
	case sentinel.KindScalar:
		switch f.ReflectType.Kind() {
		case reflect.Chan, reflect.UnsafePointer:
			return fmt.Sprintf("%s cannot be deep copied", f.ReflectType)
		}
		return ""
	default:
		return sharedIdentity(f.ReflectType, seen)
	}
}

// structMetadata returns sentinel metadata for the exported fields of rt.
// Cached metadata is keyed by bare type name, so an entry that describes a
// different type of the same name is rebuilt from rt.
func structMetadata(rt reflect.Type) sentinel.Metadata {
	if rt.Name() != "" {
		if md, ok := sentinel.Lookup(rt.Name()); ok && describes(md, rt) {
			return md
		}
	}

	md := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		md.Fields = append(md.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Kind:        fieldKind(sf.Type),
		})
	}
	return md
}

// describes reports whether md lists exactly the exported fields of rt.
func describes(md sentinel.Metadata, rt reflect.Type) bool {
	if md.PackageName != rt.PkgPath() {
		return false
	}
	exported := 0
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			exported++
		}
	}
	if len(md.Fields) != exported {
		return false
	}
	for _, f := range md.Fields {
		if len(f.Index) != 1 || f.Index[0] >= rt.NumField() || rt.Field(f.Index[0]).Type != f.ReflectType {
			return false
		}
	}
	return true
}

func fieldKind(t reflect.Type) sentinel.FieldKind {
	switch t.Kind() {
	case reflect.Struct:
		return sentinel.KindStruct
	case reflect.Pointer:
		return sentinel.KindPointer
	case reflect.Slice, reflect.Array:
		return sentinel.KindSlice
	case reflect.Map:
		return sentinel.KindMap
	case reflect.Interface:
		return sentinel.KindInterface
	default:
		return sentinel.KindScalar
	}
}

func valueClone[T any](src *T) (*T, error) {
	c, ok := any(*src).(Cloner[T])
	if !ok {
		// nil interface value
		return new(T), nil
	}
	v := c.Clone()
	return &v, nil
}

func addrClone[T any](src *T) (*T, error) {
	v := any(src).(Cloner[T]).Clone()
	return &v, nil
}

func pointerClone[T any](src *T) (*T, error) {
	return any(src).(Cloner[*T]).Clone(), nil
}

func reflectClone[T any](src *T) (*T, error) {
	return clone.Clone(src).(*T), nil
}

// codecClone deep copies by round-tripping through c.
func codecClone[T any](c Codec) cloneFunc[T] {
	return func(src *T) (*T, error) {
		data, err := c.Marshal(src)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", c.ContentType(), err)
		}
		dst := alloc[T]()
		if err := c.Unmarshal(data, dst); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", c.ContentType(), err)
		}
		return dst, nil
	}
}
