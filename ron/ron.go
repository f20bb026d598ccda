// Package ron provides a Rusty Object Notation codec.
//
// Structs are written as anonymous named-field tuples, (field:value,...),
// sequences as [a,b], maps as {key:value} and nil as None. Byte slices are
// written as base64 strings. Field names come from the json tag.
package ron

import (
	"github.com/zoobzio/serde/internal/tree"
)

// Codec implements serde.Codec for RON.
type Codec struct {
	pretty bool
	indent string
}

// Option configures a RON codec.
type Option func(*Codec)

// WithPretty makes Marshal write one field or element per line.
func WithPretty(indent string) Option {
	return func(c *Codec) {
		c.pretty = true
		c.indent = indent
	}
}

// New returns a RON codec writing the compact form.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for RON.
func (c *Codec) ContentType() string {
	return "application/ron"
}

// Marshal encodes v as RON.
func (c *Codec) Marshal(v any) ([]byte, error) {
	t, err := tree.From(v)
	if err != nil {
		return nil, err
	}
	p := &printer{pretty: c.pretty, indent: c.indent}
	if err := p.value(t); err != nil {
		return nil, err
	}
	return p.buf.Bytes(), nil
}

// Unmarshal decodes RON data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	return tree.Assign(parsed, v)
}
