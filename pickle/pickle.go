// Package pickle provides a Python pickle codec implementation.
//
// Structs are pickled as dicts keyed by field name, or by the pickle tag
// when present. Integers come back as int64 when decoded into interfaces.
package pickle

import (
	"bytes"

	"github.com/hydrogen18/stalecucumber"
)

// Codec implements serde.Codec for pickle.
type Codec struct{}

// New returns a pickle codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for pickle.
func (c *Codec) ContentType() string {
	return "application/x-pickle"
}

// Marshal encodes v as a pickle stream.
func (c *Codec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := stalecucumber.NewPickler(&buf).Pickle(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a pickle stream into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return stalecucumber.UnpackInto(v).From(stalecucumber.Unpickle(bytes.NewReader(data)))
}
