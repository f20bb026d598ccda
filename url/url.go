// Package url provides an application/x-www-form-urlencoded codec.
//
// Nested values use bracket notation (items[0]=a, user[name]=b). Keys are
// emitted in sorted order. Sequences of two or more scalars are written with
// indexed keys; a one-element sequence is written as a plain key.
package url

import (
	"net/url"
	"strconv"

	"github.com/go-playground/form/v4"
)

// Codec implements serde.Codec for form-url-encoding.
type Codec struct {
	enc *form.Encoder
	dec *form.Decoder
}

// Option configures a form-url codec.
type Option func(*Codec)

// WithTag sets the struct tag read for field names. Default "form".
func WithTag(tag string) Option {
	return func(c *Codec) {
		c.enc.SetTagName(tag)
		c.dec.SetTagName(tag)
	}
}

// New returns a form-url codec.
func New(opts ...Option) *Codec {
	c := &Codec{
		enc: form.NewEncoder(),
		dec: form.NewDecoder(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for form-url-encoding.
func (c *Codec) ContentType() string {
	return "application/x-url"
}

// Marshal encodes v as a query string. v must be a struct or a map.
func (c *Codec) Marshal(v any) ([]byte, error) {
	values, err := c.enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(indexed(values).Encode()), nil
}

// indexed rewrites repeated keys (a=x&a=y) as a[0]=x&a[1]=y.
func indexed(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vals := range values {
		if len(vals) < 2 {
			out[key] = vals
			continue
		}
		for i, v := range vals {
			out[key+"["+strconv.Itoa(i)+"]"] = []string{v}
		}
	}
	return out
}

// Unmarshal decodes a query string into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}
	return c.dec.Decode(v, values)
}
