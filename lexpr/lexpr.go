// Package lexpr provides an S-expression codec.
//
// Structs and maps are written as association lists:
//
//	((name . "Ada") (age . 36) (tags "a" "b"))
//
// Sequences are plain lists, nil is #nil, booleans are #t and #f and byte
// slices are #u8(...) vectors. Field names come from the json tag.
package lexpr

import (
	"github.com/zoobzio/serde/internal/tree"
)

// Codec implements serde.Codec for S-expressions.
type Codec struct{}

// New returns an S-expression codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for S-expressions.
func (c *Codec) ContentType() string {
	return "application/x-lexpr"
}

// Marshal encodes v as an S-expression.
func (c *Codec) Marshal(v any) ([]byte, error) {
	t, err := tree.From(v)
	if err != nil {
		return nil, err
	}
	var p printer
	if err := p.value(t); err != nil {
		return nil, err
	}
	return p.buf.Bytes(), nil
}

// Unmarshal decodes S-expression data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	return tree.Assign(parsed, v)
}
