// Package json5 provides a JSON5 codec implementation.
//
// Marshal emits strict JSON, which is valid JSON5. Unmarshal accepts the
// JSON5 grammar: comments, unquoted keys, single-quoted and multi-line
// strings, trailing commas, hexadecimal numbers, leading and trailing
// decimal points, explicit plus signs, Infinity and NaN.
package json5

import (
	"github.com/titanous/json5"
	yjson5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

// Codec implements serde.Codec for JSON5.
type Codec struct{}

// New returns a JSON5 codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for JSON5.
func (c *Codec) ContentType() string {
	return "application/json5"
}

// Marshal encodes v as JSON5.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return yjson5.Marshal(v)
}

// Unmarshal decodes JSON5 data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return json5.Unmarshal(data, v)
}
