package postcard

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"math"
	"reflect"
	"sort"

	"github.com/zoobzio/serde/internal/tree"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// Marshal encodes v as Postcard.
func Marshal(v any) ([]byte, error) {
	var buf []byte
	return appendValue(buf, reflect.ValueOf(v))
}

func appendValue(buf []byte, rv reflect.Value) ([]byte, error) {
	if !rv.IsValid() {
		return nil, &tree.UnsupportedTypeError{Type: reflect.TypeOf(nil)}
	}
	if rv.Kind() != reflect.Pointer && rv.Type().Implements(textMarshalerType) && rv.CanInterface() {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return appendBytes(buf, text), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case reflect.Int8:
		return append(buf, byte(int8(rv.Int()))), nil
	case reflect.Int, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.AppendUvarint(buf, zigzag(rv.Int())), nil
	case reflect.Uint8:
		return append(buf, byte(rv.Uint())), nil
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.AppendUvarint(buf, rv.Uint()), nil
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(rv.Float()))), nil
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(rv.Float())), nil
	case reflect.String:
		return appendBytes(buf, []byte(rv.String())), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return appendBytes(buf, rv.Bytes()), nil
		}
		buf = binary.AppendUvarint(buf, uint64(rv.Len()))
		return appendElements(buf, rv)
	case reflect.Array:
		return appendElements(buf, rv)
	case reflect.Map:
		return appendMap(buf, rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return append(buf, 0), nil
		}
		return appendValue(append(buf, 1), rv.Elem())
	case reflect.Struct:
		for _, f := range tree.Fields(rv.Type()) {
			var err error
			if buf, err = appendValue(buf, rv.FieldByIndex(f.Index)); err != nil {
				return nil, err
			}
		}
		return buf, nil
	}
	return nil, &tree.UnsupportedTypeError{Type: rv.Type()}
}

func appendBytes(buf, data []byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(data)))
	return append(buf, data...)
}

func appendElements(buf []byte, rv reflect.Value) ([]byte, error) {
	for i := 0; i < rv.Len(); i++ {
		var err error
		if buf, err = appendValue(buf, rv.Index(i)); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// appendMap writes entries ordered by their encoded keys so output is
// deterministic.
func appendMap(buf []byte, rv reflect.Value) ([]byte, error) {
	type pair struct{ key, value []byte }
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := appendValue(nil, iter.Key())
		if err != nil {
			return nil, err
		}
		v, err := appendValue(nil, iter.Value())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].key, pairs[j].key) < 0
	})

	buf = binary.AppendUvarint(buf, uint64(len(pairs)))
	for _, p := range pairs {
		buf = append(buf, p.key...)
		buf = append(buf, p.value...)
	}
	return buf, nil
}

func zigzag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}
