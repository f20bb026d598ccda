package postcard

import (
	"encoding"
	"encoding/binary"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/zoobzio/serde/internal/tree"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// Unmarshal decodes Postcard data into the value pointed to by v.
// The whole input must be consumed.
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}
	d := &decoder{data: data}
	if err := d.value(rv.Elem()); err != nil {
		return err
	}
	if d.pos != len(d.data) {
		return ErrTrailingBytes
	}
	return nil
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) value(rv reflect.Value) error {
	if rv.Kind() != reflect.Pointer && rv.CanAddr() && rv.Addr().Type().Implements(textUnmarshalerType) {
		text, err := d.bytes()
		if err != nil {
			return err
		}
		return rv.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText(text)
	}

	switch rv.Kind() {
	case reflect.Bool:
		b, err := d.byte()
		if err != nil {
			return err
		}
		if b > 1 {
			return ErrInvalidTag
		}
		rv.SetBool(b == 1)
	case reflect.Int8:
		b, err := d.byte()
		if err != nil {
			return err
		}
		rv.SetInt(int64(int8(b)))
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		u, err := d.uvarint()
		if err != nil {
			return err
		}
		n := unzigzag(u)
		if rv.OverflowInt(n) {
			return ErrIntOverflow
		}
		rv.SetInt(n)
	case reflect.Uint8:
		b, err := d.byte()
		if err != nil {
			return err
		}
		rv.SetUint(uint64(b))
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := d.uvarint()
		if err != nil {
			return err
		}
		if rv.OverflowUint(u) {
			return ErrIntOverflow
		}
		rv.SetUint(u)
	case reflect.Float32:
		b, err := d.take(4)
		if err != nil {
			return err
		}
		rv.SetFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case reflect.Float64:
		b, err := d.take(8)
		if err != nil {
			return err
		}
		rv.SetFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	case reflect.String:
		b, err := d.bytes()
		if err != nil {
			return err
		}
		if !utf8.Valid(b) {
			return ErrInvalidUTF8
		}
		rv.SetString(string(b))
	case reflect.Slice:
		return d.slice(rv)
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := d.value(rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		return d.mapping(rv)
	case reflect.Pointer:
		tag, err := d.byte()
		if err != nil {
			return err
		}
		switch tag {
		case 0:
			rv.SetZero()
		case 1:
			elem := reflect.New(rv.Type().Elem())
			if err := d.value(elem.Elem()); err != nil {
				return err
			}
			rv.Set(elem)
		default:
			return ErrInvalidTag
		}
	case reflect.Struct:
		for _, f := range tree.Fields(rv.Type()) {
			if err := d.value(rv.FieldByIndex(f.Index)); err != nil {
				return err
			}
		}
	default:
		return &tree.UnsupportedTypeError{Type: rv.Type()}
	}
	return nil
}

// slice reads a length-prefixed sequence. A zero length leaves a nil slice.
func (d *decoder) slice(rv reflect.Value) error {
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b, err := d.bytes()
		if err != nil {
			return err
		}
		if len(b) == 0 {
			rv.SetZero()
			return nil
		}
		rv.SetBytes(append([]byte{}, b...))
		return nil
	}

	n, err := d.count(empty(rv.Type().Elem()))
	if err != nil {
		return err
	}
	if n == 0 {
		rv.SetZero()
		return nil
	}
	s := reflect.MakeSlice(rv.Type(), n, n)
	for i := 0; i < n; i++ {
		if err := d.value(s.Index(i)); err != nil {
			return err
		}
	}
	rv.Set(s)
	return nil
}

func (d *decoder) mapping(rv reflect.Value) error {
	n, err := d.count(empty(rv.Type().Key()) && empty(rv.Type().Elem()))
	if err != nil {
		return err
	}
	m := reflect.MakeMapWithSize(rv.Type(), n)
	for i := 0; i < n; i++ {
		k := reflect.New(rv.Type().Key()).Elem()
		if err := d.value(k); err != nil {
			return err
		}
		v := reflect.New(rv.Type().Elem()).Elem()
		if err := d.value(v); err != nil {
			return err
		}
		m.SetMapIndex(k, v)
	}
	rv.Set(m)
	return nil
}

func (d *decoder) byte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, ErrUnexpectedEnd
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || len(d.data)-d.pos < n {
		return nil, ErrUnexpectedEnd
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) uvarint() (uint64, error) {
	u, n := binary.Uvarint(d.data[d.pos:])
	switch {
	case n == 0:
		return 0, ErrUnexpectedEnd
	case n < 0:
		return 0, ErrVarintOverflow
	}
	d.pos += n
	return u, nil
}

// length reads a varint element count, bounded by the remaining input
// since every element occupies at least one byte.
func (d *decoder) length() (int, error) {
	u, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if u > uint64(len(d.data)-d.pos) {
		return 0, ErrUnexpectedEnd
	}
	return int(u), nil
}

// count reads a sequence length. Elements that encode to no bytes cannot
// be bounded by the remaining input, so they get a fixed cap instead.
func (d *decoder) count(elementsEmpty bool) (int, error) {
	if !elementsEmpty {
		return d.length()
	}
	u, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if u > maxEmptyElements {
		return 0, ErrLengthLimit
	}
	return int(u), nil
}

// empty reports whether every value of t encodes to zero bytes.
func empty(t reflect.Type) bool {
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() == 0 || empty(t.Elem())
	case reflect.Struct:
		for _, f := range tree.Fields(t) {
			if !empty(t.FieldByIndex(f.Index).Type) {
				return false
			}
		}
		return true
	}
	return false
}

func (d *decoder) bytes() ([]byte, error) {
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	return d.take(n)
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
