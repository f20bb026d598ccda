// Package cbor provides a CBOR codec implementation.
package cbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Codec implements serde.Codec for CBOR.
// Encoding is deterministic (canonical map key order); struct fields use
// the cbor tag and fall back to the json tag.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New returns a CBOR codec.
func New() *Codec {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		// Static options; only a library bug makes this fail.
		panic(err)
	}
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return &Codec{enc: em, dec: dm}
}

// ContentType returns the MIME type for CBOR.
func (c *Codec) ContentType() string {
	return "application/x-cbor"
}

// Marshal encodes v as CBOR.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}
