package serde

import (
	"bytes"
	"io"
)

// Encoded owns the bytes produced by Encode.
// The zero value is an empty buffer.
type Encoded struct {
	data []byte
}

// Bytes returns the encoded buffer. The caller owns it.
func (e Encoded) Bytes() []byte {
	return e.data
}

// Len returns the number of encoded bytes.
func (e Encoded) Len() int {
	return len(e.data)
}

// Text interprets the buffer as UTF-8 text.
// Binary formats usually fail here with ErrUTF8Conversion.
func (e Encoded) Text() (string, error) {
	if err := checkUTF8(e.data); err != nil {
		return "", newUTF8Error(0, err)
	}
	return string(e.data), nil
}

// EqualString reports whether the buffer is valid UTF-8 text equal to s.
func (e Encoded) EqualString(s string) bool {
	text, err := e.Text()
	if err != nil {
		return false
	}
	return text == s
}

// Equal reports whether two buffers hold the same bytes.
func (e Encoded) Equal(other Encoded) bool {
	return bytes.Equal(e.data, other.data)
}

// WriteTo writes the buffer to w.
func (e Encoded) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.data)
	return int64(n), err
}
