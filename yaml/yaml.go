// Package yaml provides a YAML codec for owning.RegisterCodec.
package yaml

import (
	"github.com/zoobzio/owning"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/yaml"

// yamlCodec implements owning.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() owning.Codec {
	return &yamlCodec{}
}

// Register makes values of T clone by a YAML round-trip.
func Register[T any]() {
	owning.RegisterCodec[T](New())
}

func (c *yamlCodec) ContentType() string {
	return ContentType
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
