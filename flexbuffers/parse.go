package flexbuffers

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// maxDepth bounds nesting so crafted offsets cannot recurse forever.
const maxDepth = 512

// maxExpansion bounds the string and blob bytes a buffer may decode to,
// as a multiple of its own length.
const maxExpansion = 64

// FormatError reports a malformed FlexBuffers buffer.
type FormatError struct {
	Msg    string
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("flexbuffers: %s at offset %d", e.Msg, e.Offset)
}

// Parse reads the root of a FlexBuffers buffer into generic Go values.
//
// Maps become map[string]any, vectors of every kind []any, blobs []byte,
// signed integers int64, unsigned integers uint64 and floats float64.
func Parse(data []byte) (any, error) {
	if len(data) < 3 {
		return nil, &FormatError{Msg: "buffer too short", Offset: 0}
	}
	width := int(data[len(data)-1])
	if !validWidth(width) {
		return nil, &FormatError{Msg: fmt.Sprintf("invalid root width %d", width), Offset: len(data) - 1}
	}
	packed := data[len(data)-2]
	pos := len(data) - 2 - width
	if pos < 0 {
		return nil, &FormatError{Msg: "buffer too short for root", Offset: 0}
	}
	r := &reader{buf: data}
	return r.read(pos, width, packed)
}

// reader walks a buffer. Every value occupies a distinct slot of at least
// one byte, so a buffer needs at most len(buf) reads; more means offsets are
// shared to fan out, and decoding stops.
type reader struct {
	buf    []byte
	depth  int
	reads  int
	copied int
}

func (r *reader) charge(pos, n int) error {
	r.copied += n
	if r.copied > maxExpansion*len(r.buf) {
		return r.errorf(pos, "decoded size exceeds %d times the buffer", maxExpansion)
	}
	return nil
}

func (r *reader) errorf(pos int, format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...), Offset: pos}
}

// read decodes the value stored at pos. Inline scalars use the parent's
// slot width; referenced data uses the width in the packed type.
func (r *reader) read(pos, parentWidth int, packed byte) (any, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > maxDepth {
		return nil, r.errorf(pos, "nesting exceeds %d levels", maxDepth)
	}
	r.reads++
	if r.reads > len(r.buf) {
		return nil, r.errorf(pos, "more values than buffer bytes")
	}

	typ := packed >> 2
	width := 1 << (packed & 3)

	switch typ {
	case typeNull:
		return nil, nil
	case typeInt:
		return scalar(r.int(pos, parentWidth))
	case typeUint:
		return scalar(r.uint(pos, parentWidth))
	case typeFloat:
		return scalar(r.float(pos, parentWidth))
	case typeBool:
		u, err := r.uint(pos, parentWidth)
		if err != nil {
			return nil, err
		}
		return u != 0, nil
	}

	target, err := r.indirect(pos, parentWidth)
	if err != nil {
		return nil, err
	}

	switch typ {
	case typeIndirectInt:
		return scalar(r.int(target, width))
	case typeIndirectUint:
		return scalar(r.uint(target, width))
	case typeIndirectFloat:
		return scalar(r.float(target, width))
	case typeKey:
		return r.key(target)
	case typeString:
		data, err := r.sized(target, width)
		return string(data), err
	case typeBlob:
		data, err := r.sized(target, width)
		if err != nil {
			return nil, err
		}
		return append([]byte{}, data...), nil
	case typeVector:
		return r.vector(target, width)
	case typeMap:
		return r.mapping(target, width)
	}

	elem, fixed, ok := typedElement(typ)
	if !ok {
		return nil, r.errorf(pos, "unknown value type %d", typ)
	}
	n := fixed
	if n == 0 {
		size, err := r.size(target, width)
		if err != nil {
			return nil, err
		}
		n = size
	}
	if err := r.span(target, n*width); err != nil {
		return nil, err
	}
	items := make([]any, n)
	for i := range items {
		v, err := r.read(target+i*width, width, packType(elem, packed&3))
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

func (r *reader) vector(target, width int) (any, error) {
	n, err := r.size(target, width)
	if err != nil {
		return nil, err
	}
	if err := r.span(target, n*width+n); err != nil {
		return nil, err
	}
	types := target + n*width
	items := make([]any, n)
	for i := range items {
		v, err := r.read(target+i*width, width, r.buf[types+i])
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return items, nil
}

func (r *reader) mapping(target, width int) (any, error) {
	values, err := r.vector(target, width)
	if err != nil {
		return nil, err
	}
	items := values.([]any)

	if target-3*width < 0 {
		return nil, r.errorf(target, "map prefix out of range")
	}
	keysVec, err := r.indirect(target-3*width, width)
	if err != nil {
		return nil, err
	}
	kw, err := r.uint(target-2*width, width)
	if err != nil {
		return nil, err
	}
	keysWidth := int(kw)
	if !validWidth(keysWidth) {
		return nil, r.errorf(target-2*width, "invalid keys width %d", keysWidth)
	}
	if err := r.span(keysVec, len(items)*keysWidth); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(items))
	for i, v := range items {
		keyPos, err := r.indirect(keysVec+i*keysWidth, keysWidth)
		if err != nil {
			return nil, err
		}
		k, err := r.key(keyPos)
		if err != nil {
			return nil, err
		}
		out[k.(string)] = v
	}
	return out, nil
}

// indirect resolves the offset stored at pos to an absolute position.
func (r *reader) indirect(pos, width int) (int, error) {
	off, err := r.uint(pos, width)
	if err != nil {
		return 0, err
	}
	if off > uint64(pos) {
		return 0, r.errorf(pos, "offset %d points before start of buffer", off)
	}
	return pos - int(off), nil
}

// size reads the length prefix stored just before target.
func (r *reader) size(target, width int) (int, error) {
	if target-width < 0 {
		return 0, r.errorf(target, "size prefix out of range")
	}
	n, err := r.uint(target-width, width)
	if err != nil {
		return 0, err
	}
	if n > uint64(len(r.buf)) {
		return 0, r.errorf(target, "size %d exceeds buffer", n)
	}
	return int(n), nil
}

func (r *reader) sized(target, width int) ([]byte, error) {
	n, err := r.size(target, width)
	if err != nil {
		return nil, err
	}
	if err := r.span(target, n); err != nil {
		return nil, err
	}
	if err := r.charge(target, n); err != nil {
		return nil, err
	}
	return r.buf[target : target+n], nil
}

func (r *reader) key(target int) (any, error) {
	if err := r.span(target, 0); err != nil {
		return nil, err
	}
	end := bytes.IndexByte(r.buf[target:], 0)
	if end < 0 {
		return nil, r.errorf(target, "unterminated key")
	}
	return string(r.buf[target : target+end]), nil
}

func (r *reader) span(pos, n int) error {
	if pos < 0 || n < 0 || pos+n > len(r.buf) {
		return r.errorf(pos, "%d bytes out of range", n)
	}
	return nil
}

func (r *reader) uint(pos, width int) (uint64, error) {
	if err := r.span(pos, width); err != nil {
		return 0, err
	}
	b := r.buf[pos : pos+width]
	switch width {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return binary.LittleEndian.Uint64(b), nil
	}
	return 0, r.errorf(pos, "invalid width %d", width)
}

func (r *reader) int(pos, width int) (int64, error) {
	if err := r.span(pos, width); err != nil {
		return 0, err
	}
	b := r.buf[pos : pos+width]
	switch width {
	case 1:
		return int64(int8(b[0])), nil
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b))), nil
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b))), nil
	case 8:
		return int64(binary.LittleEndian.Uint64(b)), nil
	}
	return 0, r.errorf(pos, "invalid width %d", width)
}

func (r *reader) float(pos, width int) (float64, error) {
	if err := r.span(pos, width); err != nil {
		return 0, err
	}
	b := r.buf[pos : pos+width]
	switch width {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
	}
	return 0, r.errorf(pos, "unsupported float width %d", width)
}

func validWidth(w int) bool {
	return w == 1 || w == 2 || w == 4 || w == 8
}

// scalar adapts a typed read to the generic return of read.
func scalar[T int64 | uint64 | float64](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
