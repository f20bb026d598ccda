package serde

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Every error returned by this package wraps exactly one of them;
// use errors.Is() to check which.
var (
	// ErrUnknownFormat indicates a format identifier matched no known format.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUTF8Conversion indicates raw input was not valid UTF-8 for a text-only format.
	ErrUTF8Conversion = errors.New("utf-8 conversion failed")

	// ErrUnsupportedForFormat indicates a format cannot perform the requested operation.
	ErrUnsupportedForFormat = errors.New("operation not supported for format")

	// ErrBSONSerialize indicates the BSON encoder failed.
	ErrBSONSerialize = errors.New("bson serialization failed")

	// ErrBSONDeserialize indicates the BSON decoder failed.
	ErrBSONDeserialize = errors.New("bson deserialization failed")

	// ErrCBOR indicates the CBOR encoder or decoder failed.
	ErrCBOR = errors.New("cbor failed")

	// ErrFlexBuffersSerialize indicates the FlexBuffers builder failed.
	ErrFlexBuffersSerialize = errors.New("flexbuffers serialization failed")

	// ErrFlexBuffersDeserialize indicates the FlexBuffers reader failed.
	ErrFlexBuffersDeserialize = errors.New("flexbuffers deserialization failed")

	// ErrJSON indicates the JSON encoder or decoder failed.
	ErrJSON = errors.New("json failed")

	// ErrJSON5 indicates the JSON5 encoder or decoder failed.
	ErrJSON5 = errors.New("json5 failed")

	// ErrLexpr indicates the S-expression printer or parser failed.
	ErrLexpr = errors.New("lexpr failed")

	// ErrMessagePackEncode indicates the MessagePack encoder failed.
	ErrMessagePackEncode = errors.New("messagepack encode failed")

	// ErrMessagePackDecode indicates the MessagePack decoder failed.
	ErrMessagePackDecode = errors.New("messagepack decode failed")

	// ErrPickle indicates the pickle encoder or decoder failed.
	ErrPickle = errors.New("pickle failed")

	// ErrPostcard indicates the Postcard encoder or decoder failed.
	ErrPostcard = errors.New("postcard failed")

	// ErrRON indicates the RON printer or parser failed.
	ErrRON = errors.New("ron failed")

	// ErrTOMLSerialize indicates the TOML encoder failed.
	ErrTOMLSerialize = errors.New("toml serialization failed")

	// ErrTOMLDeserialize indicates the TOML decoder failed.
	ErrTOMLDeserialize = errors.New("toml deserialization failed")

	// ErrURL indicates the form-url encoder or decoder failed.
	ErrURL = errors.New("url encoding failed")

	// ErrYAML indicates the YAML encoder or decoder failed.
	ErrYAML = errors.New("yaml failed")

	// ErrXML indicates the XML encoder or decoder failed.
	ErrXML = errors.New("xml failed")

	// ErrInvalidHeaderValue indicates a format could not be rendered as a header value.
	ErrInvalidHeaderValue = errors.New("invalid header value")

	// ErrHeaderToFormat indicates a header value could not be read as a format identifier.
	ErrHeaderToFormat = errors.New("header value to format conversion failed")

	// ErrReadBody indicates a request body could not be read in full.
	ErrReadBody = errors.New("request body read failed")
)

// kinds lists the closed taxonomy in a fixed order.
var kinds = []error{
	ErrUnknownFormat,
	ErrUTF8Conversion,
	ErrUnsupportedForFormat,
	ErrBSONSerialize,
	ErrBSONDeserialize,
	ErrCBOR,
	ErrFlexBuffersSerialize,
	ErrFlexBuffersDeserialize,
	ErrJSON,
	ErrJSON5,
	ErrLexpr,
	ErrMessagePackEncode,
	ErrMessagePackDecode,
	ErrPickle,
	ErrPostcard,
	ErrRON,
	ErrTOMLSerialize,
	ErrTOMLDeserialize,
	ErrURL,
	ErrYAML,
	ErrXML,
	ErrInvalidHeaderValue,
	ErrHeaderToFormat,
	ErrReadBody,
}

// Error is the single error type returned by serde operations.
// Err names the variant, Cause retains the original failure untouched.
type Error struct {
	Err    error  // Sentinel identifying the variant (ErrJSON, ErrUnknownFormat, ...)
	Format Format // Resolved format, zero when resolution itself failed
	Input  string // Unresolved identifier, set for ErrUnknownFormat and header errors
	Cause  error  // Original error from the codec or conversion
}

func (e *Error) Error() string {
	if e.Input != "" || e.Err == ErrUnknownFormat {
		if e.Cause != nil {
			return fmt.Sprintf("%s %q: %v", e.Err.Error(), e.Input, e.Cause)
		}
		return fmt.Sprintf("%s: %q", e.Err.Error(), e.Input)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	if e.Format != 0 {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Format)
	}
	return e.Err.Error()
}

// Unwrap exposes both the variant sentinel and the original cause, so
// errors.Is matches the variant and errors.As reaches codec error types.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Equal reports whether other is a serde error of the same variant with
// the same display text. Causes rarely support structural equality, so
// the rendered message stands in for it.
func (e *Error) Equal(other error) bool {
	var o *Error
	if !errors.As(other, &o) {
		return false
	}
	return e.Err == o.Err && e.Error() == o.Error()
}

// Kind returns the variant sentinel of a serde error, or nil if err is not one.
func Kind(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	for _, k := range kinds {
		if e.Err == k {
			return k
		}
	}
	return nil
}

// newUnknownFormatError creates an Error for an identifier that resolved to nothing.
func newUnknownFormatError(input string) error {
	return &Error{
		Err:   ErrUnknownFormat,
		Input: input,
	}
}

// newUTF8Error creates an Error for text-only input that failed UTF-8 validation.
func newUTF8Error(format Format, cause error) error {
	return &Error{
		Err:    ErrUTF8Conversion,
		Format: format,
		Cause:  cause,
	}
}

// newCodecError creates an Error for an encode/decode failure.
func newCodecError(sentinel error, format Format, cause error) error {
	return &Error{
		Err:    sentinel,
		Format: format,
		Cause:  cause,
	}
}
