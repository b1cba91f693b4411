package owning

import (
	"bytes"
	"encoding/json"
	"encoding/xml"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/yaml.v3"
)

// A Ptr encodes as its value, or as null (absent for XML) when empty.
// Decoding always installs a fresh allocation and drops the previous value.

var jsonNull = []byte("null")

// MarshalJSON encodes the owned value, or null.
func (p *Ptr[T]) MarshalJSON() ([]byte, error) {
	if v := p.Get(); v != nil {
		return json.Marshal(v)
	}
	return jsonNull, nil
}

// UnmarshalJSON decodes into a fresh value; null clears p.
func (p *Ptr[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		p.Clear()
		return nil
	}
	v := alloc[T]()
	if err := json.Unmarshal(data, v); err != nil {
		return p.decodeError(err)
	}
	p.replace(v)
	return nil
}

// MarshalXML encodes the owned value as start; an empty Ptr encodes nothing.
func (p *Ptr[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	v := p.Get()
	if v == nil {
		return nil
	}
	return e.EncodeElement(v, start)
}

// UnmarshalXML decodes the element into a fresh value.
func (p *Ptr[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	v := alloc[T]()
	if err := d.DecodeElement(v, &start); err != nil {
		return p.decodeError(err)
	}
	p.replace(v)
	return nil
}

// MarshalYAML returns the owned value, or nil. yaml.v3 only finds marshalers
// in a value's own method set, so a Ptr held in a struct field needs a value
// receiver here.
func (p Ptr[T]) MarshalYAML() (any, error) { //nolint:govet // copylocks: read-only view of p.p
	if p.p != nil {
		return p.p, nil
	}
	return nil, nil
}

// UnmarshalYAML decodes into a fresh value; a null node clears p.
func (p *Ptr[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		p.Clear()
		return nil
	}
	v := alloc[T]()
	if err := node.Decode(v); err != nil {
		return p.decodeError(err)
	}
	p.replace(v)
	return nil
}

// EncodeMsgpack encodes the owned value, or nil.
func (p *Ptr[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if v := p.Get(); v != nil {
		return enc.Encode(v)
	}
	return enc.EncodeNil()
}

// DecodeMsgpack decodes into a fresh value; nil clears p.
func (p *Ptr[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return p.decodeError(err)
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return p.decodeError(err)
		}
		p.Clear()
		return nil
	}
	v := alloc[T]()
	if err := dec.Decode(v); err != nil {
		return p.decodeError(err)
	}
	p.replace(v)
	return nil
}

func (p *Ptr[T]) decodeError(cause error) error {
	return newOpError(ErrDecode, "decode", resolve[T]().typeName, cause)
}
