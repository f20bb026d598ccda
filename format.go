package serde

import (
	"fmt"
	"strings"
)

// Format identifies a supported serialization format.
// The set is closed: every value below has exactly one registered codec.
type Format uint8

const (
	// BSON is MongoDB's binary document format.
	BSON Format = iota + 1

	// CBOR is the Concise Binary Object Representation (RFC 8949).
	CBOR

	// FlexBuffers is the schemaless companion format of FlatBuffers.
	FlexBuffers

	// JSON is plain RFC 8259 JSON.
	JSON

	// JSON5 is the relaxed JSON dialect (comments, unquoted keys, trailing commas).
	JSON5

	// Lexpr is the Lisp-style S-expression text format.
	Lexpr

	// MessagePack is the MessagePack binary format.
	MessagePack

	// Pickle is the Python pickle protocol.
	Pickle

	// Postcard is the compact, non-self-describing varint format.
	Postcard

	// RON is Rusty Object Notation.
	RON

	// TOML is Tom's Obvious Minimal Language.
	TOML

	// URL is application/x-www-form-urlencoded query encoding.
	URL

	// YAML is YAML 1.2.
	YAML

	// XML is XML. Available unless built with the serde_noxml tag.
	XML

	formatEnd
)

// formatInfo holds the canonical name and content type of a format.
type formatInfo struct {
	name        string
	contentType string
}

var formatInfos = [formatEnd]formatInfo{
	BSON:        {"bson", "application/x-bson"},
	CBOR:        {"cbor", "application/x-cbor"},
	FlexBuffers: {"flexbuffers", "application/x-flexbuffers"},
	JSON:        {"json", "application/json"},
	JSON5:       {"json5", "application/json5"},
	Lexpr:       {"lexpr", "application/x-lexpr"},
	MessagePack: {"messagepack", "application/x-messagepack"},
	Pickle:      {"pickle", "application/x-pickle"},
	Postcard:    {"postcard", "application/x-postcard"},
	RON:         {"ron", "application/ron"},
	TOML:        {"toml", "application/toml"},
	URL:         {"url", "application/x-url"},
	YAML:        {"yaml", "application/yaml"},
	XML:         {"xml", "application/xml"},
}

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	if f > 0 && f < formatEnd {
		return formatInfos[f].name
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ContentType returns the canonical MIME type used on the wire for the format.
// Invalid formats return an empty string.
func (f Format) ContentType() string {
	if f > 0 && f < formatEnd {
		return formatInfos[f].contentType
	}
	return ""
}

// enabled reports whether f is a member of the closed set and its
// optional capability, if any, is compiled in.
func (f Format) enabled() bool {
	if f == 0 || f >= formatEnd {
		return false
	}
	if f == XML {
		return xmlEnabled
	}
	return true
}

// IsValidFormat returns true if f is a known, enabled format.
func IsValidFormat(f Format) bool {
	return f.enabled()
}

// Formats returns every enabled format in declaration order.
func Formats() []Format {
	formats := make([]Format, 0, formatEnd-1)
	for f := BSON; f < formatEnd; f++ {
		if f.enabled() {
			formats = append(formats, f)
		}
	}
	return formats
}

// FormatToken is anything that names a format at a call site: either an
// already-resolved Format or a free-form identifier string.
type FormatToken interface {
	Format | string
}

// ParseFormat resolves an identifier to a Format.
//
// Matching is case-insensitive against three aliases per format: the bare
// name ("json"), "application/json" and "application/x-json". The input is
// not trimmed. An unmatched identifier yields an *Error wrapping
// ErrUnknownFormat that carries s exactly as given.
func ParseFormat(s string) (Format, error) {
	lower := strings.ToLower(s)
	for _, f := range Formats() {
		name := formatInfos[f].name
		if lower == name || lower == "application/"+name || lower == "application/x-"+name {
			return f, nil
		}
	}
	return 0, newUnknownFormatError(s)
}

// Resolve turns a FormatToken into a Format.
// Formats pass through after a membership check; strings go through ParseFormat.
func Resolve[F FormatToken](token F) (Format, error) {
	if s, ok := any(token).(string); ok {
		return ParseFormat(s)
	}
	f := any(token).(Format)
	if !f.enabled() {
		return 0, newUnknownFormatError(f.String())
	}
	return f, nil
}
