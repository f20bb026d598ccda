// Package postcard provides a Postcard codec.
//
// Postcard is not self-describing: values are written positionally and can
// only be read back into the same Go type. Integers wider than a byte are
// LEB128 varints (zigzag for signed), floats are little-endian, strings,
// byte slices, slices and maps carry a varint length and pointers are
// options with a 0/1 tag. Struct fields are written in declaration order.
package postcard

import (
	"errors"
)

var (
	// ErrUnexpectedEnd indicates the input ended inside a value.
	ErrUnexpectedEnd = errors.New("postcard: unexpected end of input")

	// ErrTrailingBytes indicates input remained after the value was read.
	ErrTrailingBytes = errors.New("postcard: trailing bytes after value")

	// ErrVarintOverflow indicates a varint longer than 64 bits.
	ErrVarintOverflow = errors.New("postcard: varint overflows 64 bits")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("postcard: invalid utf-8 in string")

	// ErrInvalidTag indicates a bool or option tag other than 0 or 1.
	ErrInvalidTag = errors.New("postcard: invalid bool or option tag")

	// ErrIntOverflow indicates a decoded integer does not fit the target.
	ErrIntOverflow = errors.New("postcard: integer overflows target type")

	// ErrInvalidTarget indicates Unmarshal was not given a non-nil pointer.
	ErrInvalidTarget = errors.New("postcard: target must be a non-nil pointer")

	// ErrLengthLimit indicates a sequence of zero-size elements longer than maxEmptyElements.
	ErrLengthLimit = errors.New("postcard: sequence length exceeds limit")
)

// maxEmptyElements caps sequences whose elements encode to no bytes.
const maxEmptyElements = 1 << 20

// Codec implements serde.Codec for Postcard.
type Codec struct{}

// New returns a Postcard codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for Postcard.
func (c *Codec) ContentType() string {
	return "application/x-postcard"
}

// Marshal encodes v as Postcard.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return Marshal(v)
}

// Unmarshal decodes Postcard data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return Unmarshal(data, v)
}
