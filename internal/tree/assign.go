package tree

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var bytesType = reflect.TypeOf([]byte(nil))

// Assign stores a parsed generic value into target, which must be a non-nil pointer.
//
// Struct fields are matched by json tag, then case-insensitively by name.
// Integers and floats convert into each other's kinds when the value fits
// the target exactly: an integer that overflows its target or a float with a
// fractional part going into an integer kind is an error. Strings decode into
// []byte as standard base64; an empty sequence decodes into an empty struct or map.
func Assign(src, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			emptySeqToMapHook,
			base64BytesHook,
			numericRangeHook,
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

// emptySeqToMapHook lets "()" and "[]" stand for an empty struct or map.
func emptySeqToMapHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || (to.Kind() != reflect.Struct && to.Kind() != reflect.Map) {
		return data, nil
	}
	if reflect.ValueOf(data).Len() != 0 {
		return data, nil
	}
	return map[string]any{}, nil
}

// base64BytesHook decodes base64 text into byte slices.
func base64BytesHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != bytesType {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(reflect.ValueOf(data).String())
}

// numericRangeHook rejects numbers that the target kind cannot hold exactly.
func numericRangeHook(from, to reflect.Type, data any) (any, error) {
	src := reflect.ValueOf(data)
	dst := reflect.New(to).Elem()

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if dst.OverflowInt(src.Int()) {
				return nil, overflowError(data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if src.Uint() > math.MaxInt64 || dst.OverflowInt(int64(src.Uint())) {
				return nil, overflowError(data, to)
			}
		case reflect.Float32, reflect.Float64:
			f := src.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || dst.OverflowInt(int64(f)) {
				return nil, overflowError(data, to)
			}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if src.Int() < 0 || dst.OverflowUint(uint64(src.Int())) {
				return nil, overflowError(data, to)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if dst.OverflowUint(src.Uint()) {
				return nil, overflowError(data, to)
			}
		case reflect.Float32, reflect.Float64:
			f := src.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || dst.OverflowUint(uint64(f)) {
				return nil, overflowError(data, to)
			}
		}
	case reflect.Float32:
		if from.Kind() == reflect.Float64 {
			f := src.Float()
			if !math.IsInf(f, 0) && !math.IsNaN(f) && dst.OverflowFloat(f) {
				return nil, overflowError(data, to)
			}
		}
	}
	return data, nil
}

func overflowError(data any, to reflect.Type) error {
	return fmt.Errorf("cannot assign %v to %s without loss", data, to)
}
