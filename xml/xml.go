// Package xml provides an XML codec for owning.RegisterCodec.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/owning"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/xml"

// xmlCodec implements owning.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() owning.Codec {
	return &xmlCodec{}
}

// Register makes values of T clone by an XML round-trip.
// T must be a struct type; maps do not survive the copy.
func Register[T any]() {
	owning.RegisterCodec[T](New())
}

func (c *xmlCodec) ContentType() string {
	return ContentType
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
