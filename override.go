package serde

// Override interfaces allow types to bypass the registered codec.
// When a value implements one of these interfaces, Encode or Decode calls
// the interface method instead of the format's codec. Failures are still
// reported under the format's own error variant.
//
// These interfaces are designed for codegen: a generator can emit
// format-specific encoders for hot types without touching call sites.

// Marshaler bypasses the codec on Encode.
type Marshaler interface {
	// MarshalFormat encodes the receiver in the given format.
	// Return an error wrapping ErrUnsupportedForFormat to decline a format.
	MarshalFormat(format Format) ([]byte, error)
}

// Unmarshaler bypasses the codec on Decode.
// Implement it on the pointer receiver of the decode target.
type Unmarshaler interface {
	// UnmarshalFormat decodes data, encoded in the given format, into the receiver.
	UnmarshalFormat(format Format, data []byte) error
}
