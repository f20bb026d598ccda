// Package json provides a JSON codec implementation backed by sonic.
package json

import (
	"github.com/bytedance/sonic"
)

// Codec implements serde.Codec for JSON.
type Codec struct {
	api    sonic.API
	indent string
}

// Option configures a JSON codec.
type Option func(*Codec)

// WithIndent makes Marshal pretty-print with the given indent.
func WithIndent(indent string) Option {
	return func(c *Codec) {
		c.indent = indent
	}
}

// New returns a JSON codec.
// It uses sonic's encoding/json compatible configuration, so map keys are
// sorted and output matches the standard library byte for byte.
func New(opts ...Option) *Codec {
	c := &Codec{api: sonic.ConfigStd}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *Codec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *Codec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return c.api.MarshalIndent(v, "", c.indent)
	}
	return c.api.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
