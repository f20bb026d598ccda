// Package tree converts Go values to and from a small, ordered,
// format-neutral value model shared by the in-module codecs.
//
// From produces:
//
//	nil, bool, int64, uint64, float64, string, []byte, []any, Map, Struct
//
// Parsers hand Assign the generic shapes they naturally produce
// (map[string]any, map[any]any, []any and the scalars above) and
// Assign maps them onto the caller's target.
package tree

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Field is one named member of a Struct.
type Field struct {
	Name  string
	Value any
}

// Struct is a struct value with fields in declaration order.
type Struct struct {
	Name   string
	Fields []Field
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   any
	Value any
}

// Map is a mapping with entries sorted by the text form of their keys.
type Map []Entry

// UnsupportedTypeError reports a Go type with no representation in the model.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %s", e.Type)
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// From converts v into the value model.
func From(v any) (any, error) {
	return from(reflect.ValueOf(v))
}

func from(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, nil
	}
	if rv.Type().Implements(textMarshalerType) && rv.CanInterface() {
		text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, err
		}
		return string(text), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return from(rv.Elem())
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte{}, rv.Bytes()...), nil
		}
		return fromSeq(rv)
	case reflect.Array:
		return fromSeq(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	default:
		return nil, &UnsupportedTypeError{Type: rv.Type()}
	}
}

func fromSeq(rv reflect.Value) (any, error) {
	items := make([]any, rv.Len())
	for i := range items {
		item, err := from(rv.Index(i))
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func fromMap(rv reflect.Value) (any, error) {
	m := make(Map, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := from(iter.Key())
		if err != nil {
			return nil, err
		}
		v, err := from(iter.Value())
		if err != nil {
			return nil, err
		}
		m = append(m, Entry{Key: k, Value: v})
	}
	sort.SliceStable(m, func(i, j int) bool {
		return fmt.Sprint(m[i].Key) < fmt.Sprint(m[j].Key)
	})
	return m, nil
}

func fromStruct(rv reflect.Value) (any, error) {
	fields := Fields(rv.Type())
	s := Struct{Name: rv.Type().Name(), Fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		fv := rv.FieldByIndex(f.Index)
		if f.OmitEmpty && fv.IsZero() {
			continue
		}
		v, err := from(fv)
		if err != nil {
			return nil, err
		}
		s.Fields = append(s.Fields, Field{Name: f.Name, Value: v})
	}
	return s, nil
}

// FieldInfo describes one serialized struct field.
type FieldInfo struct {
	Name      string // key from the json tag, or the Go field name
	Index     []int  // reflect.Value.FieldByIndex access path
	OmitEmpty bool   // json ",omitempty"
}

// Fields lists the serialized fields of struct type t in declaration order.
// Exported fields are named by their json tag; "-" skips a field and
// untagged embedded structs are flattened.
func Fields(t reflect.Type) []FieldInfo {
	var out []FieldInfo
	seen := make(map[string]bool)
	collectFields(t, nil, seen, &out)
	return out
}

func collectFields(t reflect.Type, parent []int, seen map[string]bool, out *[]FieldInfo) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		index := append(append([]int{}, parent...), i)

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, index, seen, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		*out = append(*out, FieldInfo{
			Name:      name,
			Index:     index,
			OmitEmpty: strings.Contains(","+opts+",", ",omitempty,"),
		})
	}
}

// FormatFloat renders f the way the text formats expect: shortest
// round-tripping decimal, never exponent notation, and always with a
// fractional part so it reads back as a float.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
