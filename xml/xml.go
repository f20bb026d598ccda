// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"
)

// Codec implements serde.Codec for XML.
type Codec struct {
	header bool
}

// Option configures an XML codec.
type Option func(*Codec)

// WithHeader prefixes marshaled output with the standard XML declaration.
func WithHeader() Option {
	return func(c *Codec) {
		c.header = true
	}
}

// New returns an XML codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for XML.
func (c *Codec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	if c.header && len(data) > 0 {
		return append([]byte(xml.Header), data...), nil
	}
	return data, nil
}

// Unmarshal decodes XML data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
