// Package msgpack provides a MessagePack codec for owning.RegisterCodec.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/owning"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/msgpack"

// msgpackCodec implements owning.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() owning.Codec {
	return &msgpackCodec{}
}

// Register makes values of T clone by a MessagePack round-trip.
// This is usually the cheapest codec strategy.
func Register[T any]() {
	owning.RegisterCodec[T](New())
}

func (c *msgpackCodec) ContentType() string {
	return ContentType
}

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
