// Package yaml provides a YAML codec implementation.
package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// documentStart opens every encoded document.
const documentStart = "---\n"

// Codec implements serde.Codec for YAML.
type Codec struct {
	indent int
}

// Option configures a YAML codec.
type Option func(*Codec)

// WithIndent sets the number of spaces used for nesting. Default 2.
func WithIndent(spaces int) Option {
	return func(c *Codec) {
		c.indent = spaces
	}
}

// New returns a YAML codec.
func New(opts ...Option) *Codec {
	c := &Codec{indent: 2}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *Codec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as a single YAML document with an explicit "---" start marker.
func (c *Codec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(documentStart)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
