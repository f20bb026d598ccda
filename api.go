// Package serde provides a single encode/decode entry point over many wire formats.
//
// Callers name the format at the call site, either as a Format constant or
// as a free-form identifier string, and get back the same result and error
// types regardless of which codec did the work.
//
// # Formats
//
// Each format accepts three case-insensitive identifiers: the bare name,
// "application/{name}" and "application/x-{name}".
//
//   - bson - BSON documents (go.mongodb.org/mongo-driver)
//   - cbor - CBOR (fxamacker/cbor)
//   - flexbuffers - FlexBuffers
//   - json - JSON (bytedance/sonic)
//   - json5 - JSON5 (yosuke-furukawa/json5)
//   - lexpr - S-expressions
//   - messagepack - MessagePack (vmihailenco/msgpack)
//   - pickle - Python pickle (hydrogen18/stalecucumber)
//   - postcard - Postcard
//   - ron - Rusty Object Notation
//   - toml - TOML (BurntSushi/toml)
//   - url - form-url-encoding (go-playground/form)
//   - yaml - YAML (gopkg.in/yaml.v3)
//   - xml - XML (encoding/xml), omitted when built with the serde_noxml tag
//
// # Basic Usage
//
//	type Foo struct {
//	    Bar string `json:"bar" yaml:"bar"`
//	}
//
//	enc, err := serde.Encode(Foo{Bar: "foobar"}, "yaml")
//	// enc.Bytes() == []byte("---\nbar: foobar\n")
//
//	dec, err := serde.Decode[Foo](enc.Bytes(), serde.YAML)
//	foo := dec.Into()
//
// # Errors
//
// Every failure is an *Error wrapping one sentinel from a closed set
// (ErrUnknownFormat, ErrUTF8Conversion, ErrJSON, ErrBSONDeserialize, ...)
// and retaining the codec's original error:
//
//	if errors.Is(err, serde.ErrUnknownFormat) { ... }
//	var syntax *yaml.TypeError
//	if errors.As(err, &syntax) { ... }
//
// # Struct Tags
//
// Codecs read the tag their library defines (yaml, toml, xml, form, pickle).
// BSON, CBOR, MessagePack, JSON, JSON5 and the in-module formats
// (flexbuffers, lexpr, postcard, ron) read the json tag.
package serde

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"
	"unicode/utf8"
)

// Input is raw data presented for decoding. Strings are treated as their UTF-8 bytes.
type Input interface {
	~[]byte | ~string
}

// Encode serializes v in the named format.
func Encode[F FormatToken](v any, format F) (Encoded, error) {
	return EncodeContext(context.Background(), v, format)
}

// EncodeContext is Encode with a context for signal emission.
func EncodeContext[F FormatToken](ctx context.Context, v any, format F) (Encoded, error) {
	f, err := Resolve(format)
	if err != nil {
		emitResolveFailed(ctx, err)
		return Encoded{}, err
	}

	typeName := typeNameOf(v)
	start := time.Now()
	emitEncodeStart(ctx, f, typeName)

	data, err := encode(f, v)
	emitEncodeComplete(ctx, f, typeName, len(data), time.Since(start), err)
	if err != nil {
		return Encoded{}, err
	}
	return Encoded{data: data}, nil
}

// Decode parses in, encoded in the named format, into a new T.
//
//	dec, err := serde.Decode[User](body, "application/json")
func Decode[T any, I Input, F FormatToken](in I, format F) (Decoded[T], error) {
	return DecodeContext[T](context.Background(), in, format)
}

// DecodeContext is Decode with a context for signal emission.
func DecodeContext[T any, I Input, F FormatToken](ctx context.Context, in I, format F) (Decoded[T], error) {
	f, err := Resolve(format)
	if err != nil {
		emitResolveFailed(ctx, err)
		return Decoded[T]{}, err
	}

	data := []byte(in)
	typeName := reflect.TypeFor[T]().String()
	start := time.Now()
	emitDecodeStart(ctx, f, typeName)

	var out T
	err = decode(f, data, &out)
	emitDecodeComplete(ctx, f, typeName, len(data), time.Since(start), err)
	if err != nil {
		return Decoded[T]{}, err
	}
	return Decoded[T]{value: out}, nil
}

// encode runs the single codec registered for f and normalizes its failure.
func encode(f Format, v any) ([]byte, error) {
	e := lookup(f)

	var data []byte
	var err error
	if m, ok := v.(Marshaler); ok {
		data, err = m.MarshalFormat(f)
	} else {
		data, err = e.codec.Marshal(v)
	}
	if err != nil {
		return nil, newCodecError(variantFor(e.encodeErr, err), f, err)
	}
	return data, nil
}

// decode runs the single codec registered for f into target and normalizes its failure.
func decode(f Format, data []byte, target any) error {
	e := lookup(f)

	if e.textOnly {
		if err := checkUTF8(data); err != nil {
			return newUTF8Error(f, err)
		}
	}

	var err error
	if u, ok := target.(Unmarshaler); ok {
		err = u.UnmarshalFormat(f, data)
	} else {
		err = e.codec.Unmarshal(data, target)
	}
	if err != nil {
		return newCodecError(variantFor(e.decodeErr, err), f, err)
	}
	return nil
}

// variantFor keeps an explicit ErrUnsupportedForFormat from an override
// and otherwise uses the format's own sentinel.
func variantFor(sentinel, cause error) error {
	if errors.Is(cause, ErrUnsupportedForFormat) {
		return ErrUnsupportedForFormat
	}
	return sentinel
}

// checkUTF8 reports the offset of the first invalid UTF-8 sequence.
func checkUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("invalid utf-8 sequence of 1 bytes from index %d", i)
		}
		i += size
	}
	return fmt.Errorf("invalid utf-8 sequence")
}

// typeNameOf renders the dynamic type of v for signals.
func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
