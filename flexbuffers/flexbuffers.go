// Package flexbuffers provides a FlexBuffers codec.
//
// Structs and string-keyed maps become FlexBuffers maps with sorted keys,
// sequences become untyped vectors and byte slices become blobs. The
// builder writes every scalar and offset at 64-bit width; the reader
// accepts any width. Field names come from the json tag.
package flexbuffers

import (
	"github.com/zoobzio/serde/internal/tree"
)

// Codec implements serde.Codec for FlexBuffers.
type Codec struct{}

// New returns a FlexBuffers codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for FlexBuffers.
func (c *Codec) ContentType() string {
	return "application/x-flexbuffers"
}

// Marshal encodes v as a FlexBuffers buffer.
func (c *Codec) Marshal(v any) ([]byte, error) {
	t, err := tree.From(v)
	if err != nil {
		return nil, err
	}
	return Build(t)
}

// Unmarshal decodes a FlexBuffers buffer into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	root, err := Parse(data)
	if err != nil {
		return err
	}
	return tree.Assign(root, v)
}
