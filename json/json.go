// Package json provides a JSON codec for owning.RegisterCodec.
package json

import (
	"encoding/json"

	"github.com/zoobzio/owning"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/json"

// jsonCodec implements owning.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() owning.Codec {
	return &jsonCodec{}
}

// Register makes values of T clone by a JSON round-trip.
// Only exported, JSON-visible fields survive the copy.
func Register[T any]() {
	owning.RegisterCodec[T](New())
}

func (c *jsonCodec) ContentType() string {
	return ContentType
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
