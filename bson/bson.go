// Package bson provides a BSON codec implementation.
package bson

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// Codec implements serde.Codec for BSON.
// Struct fields without a bson tag fall back to their json tag.
type Codec struct {
	registry *bsoncodec.Registry
}

// New returns a BSON codec.
func New() *Codec {
	return &Codec{registry: newRegistry()}
}

// newRegistry builds the default registry with a json-aware struct codec.
func newRegistry() *bsoncodec.Registry {
	structCodec, err := bsoncodec.NewStructCodec(bsoncodec.JSONFallbackStructTagParser)
	if err != nil {
		// Only a nil tag parser makes this fail.
		panic(err)
	}
	reg := bson.NewRegistry()
	reg.RegisterKindEncoder(reflect.Struct, structCodec)
	reg.RegisterKindDecoder(reflect.Struct, structCodec)
	return reg
}

// ContentType returns the MIME type for BSON.
func (c *Codec) ContentType() string {
	return "application/x-bson"
}

// Marshal encodes v as a BSON document. v must be a struct, map or bson.D.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return bson.MarshalWithRegistry(c.registry, v)
}

// Unmarshal decodes a BSON document into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return bson.UnmarshalWithRegistry(c.registry, data, v)
}
