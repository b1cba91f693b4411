// Package bson provides a BSON codec for owning.RegisterCodec.
package bson

import (
	"github.com/zoobzio/owning"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentType is the MIME type reported by the codec.
const ContentType = "application/bson"

// bsonCodec implements owning.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() owning.Codec {
	return &bsonCodec{}
}

// Register makes values of T clone by a BSON round-trip.
// T must encode as a BSON document (a struct or map).
func Register[T any]() {
	owning.RegisterCodec[T](New())
}

func (c *bsonCodec) ContentType() string {
	return ContentType
}

func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
