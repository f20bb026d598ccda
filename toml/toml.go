// Package toml provides a TOML codec implementation.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
)

// Codec implements serde.Codec for TOML.
// The top-level value must be a struct or a map.
type Codec struct {
	indent string
}

// Option configures a TOML codec.
type Option func(*Codec)

// WithIndent sets the indent used for nested tables. Default two spaces.
func WithIndent(indent string) Option {
	return func(c *Codec) {
		c.indent = indent
	}
}

// New returns a TOML codec.
func New(opts ...Option) *Codec {
	c := &Codec{indent: "  "}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for TOML.
func (c *Codec) ContentType() string {
	return "application/toml"
}

// ErrNotTable is returned when the top-level value is not a struct or a map.
var ErrNotTable = errors.New("toml: top-level value must be a struct or a map")

// Marshal encodes v as TOML.
func (c *Codec) Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}
	if k := rv.Kind(); k != reflect.Struct && k != reflect.Map {
		return nil, fmt.Errorf("%w, got %T", ErrNotTable, v)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = c.indent
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes TOML data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
