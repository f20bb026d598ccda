// Package header converts serde formats to and from HTTP header values.
//
// Each format has one canonical MIME string (Format.ContentType). Reading
// accepts every identifier serde.ParseFormat accepts, with media-type
// parameters such as "; charset=utf-8" ignored.
package header

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/zoobzio/serde"
	"golang.org/x/net/http/httpguts"
)

// ContentTypeKey is the header carrying a payload's format.
const ContentTypeKey = "Content-Type"

// AcceptKey is the header listing the formats a client accepts.
const AcceptKey = "Accept"

var (
	errInvalidFieldValue = errors.New("not a valid header field value")
	errNoAcceptable      = errors.New("no acceptable format")
	errMissing           = errors.New("no Content-Type header")
	errTooLarge          = errors.New("body exceeds size limit")
)

// DefaultMaxBodyBytes bounds the request body Read accepts.
const DefaultMaxBodyBytes = 10 << 20

// ContentType returns the canonical MIME string of f, or "" if f is not
// an enabled format.
func ContentType(f serde.Format) string {
	if !serde.IsValidFormat(f) {
		return ""
	}
	return f.ContentType()
}

// Value renders f as a header value.
func Value(f serde.Format) (string, error) {
	ct := ContentType(f)
	if ct == "" || !httpguts.ValidHeaderFieldValue(ct) {
		return "", &serde.Error{Err: serde.ErrInvalidHeaderValue, Format: f}
	}
	return ct, nil
}

// Set writes the canonical MIME string of f under Content-Type.
func Set(h http.Header, f serde.Format) error {
	v, err := Value(f)
	if err != nil {
		return err
	}
	h.Set(ContentTypeKey, v)
	return nil
}

// Parse resolves a header value such as "application/json; charset=utf-8".
func Parse(value string) (serde.Format, error) {
	if !httpguts.ValidHeaderFieldValue(value) {
		return 0, &serde.Error{Err: serde.ErrHeaderToFormat, Input: value, Cause: errInvalidFieldValue}
	}
	media, _, _ := strings.Cut(value, ";")
	f, err := serde.ParseFormat(strings.TrimSpace(media))
	if err != nil {
		return 0, &serde.Error{Err: serde.ErrHeaderToFormat, Input: value, Cause: err}
	}
	return f, nil
}

// FromHeader resolves the Content-Type of h.
func FromHeader(h http.Header) (serde.Format, error) {
	v := h.Get(ContentTypeKey)
	if v == "" {
		return 0, &serde.Error{Err: serde.ErrHeaderToFormat, Cause: errMissing}
	}
	return Parse(v)
}

// Negotiate picks the most preferred format listed in the Accept header
// of h. Entries are ordered by q value, ties keep their listed order and
// q=0 entries are refused. A missing Accept header or a wildcard entry
// selects JSON.
func Negotiate(h http.Header) (serde.Format, error) {
	accept := strings.Join(h.Values(AcceptKey), ",")
	if strings.TrimSpace(accept) == "" {
		return serde.JSON, nil
	}

	type candidate struct {
		media string
		q     float64
	}
	var candidates []candidate
	for _, part := range strings.Split(accept, ",") {
		media, params, _ := strings.Cut(part, ";")
		media = strings.TrimSpace(media)
		if media == "" {
			continue
		}
		q := 1.0
		for _, p := range strings.Split(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if ok && strings.EqualFold(k, "q") {
				if parsed, err := strconv.ParseFloat(v, 64); err == nil {
					q = parsed
				}
			}
		}
		if q > 0 {
			candidates = append(candidates, candidate{media: media, q: q})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].q > candidates[j].q
	})

	for _, c := range candidates {
		if c.media == "*/*" || c.media == "application/*" {
			return serde.JSON, nil
		}
		if f, err := serde.ParseFormat(c.media); err == nil {
			return f, nil
		}
	}
	return 0, &serde.Error{Err: serde.ErrHeaderToFormat, Input: accept, Cause: errNoAcceptable}
}

// Write encodes v as f and writes it with the matching Content-Type.
// Nothing is written if encoding fails.
func Write(w http.ResponseWriter, status int, v any, f serde.Format) error {
	enc, err := serde.Encode(v, f)
	if err != nil {
		return err
	}
	if err := Set(w.Header(), f); err != nil {
		return err
	}
	w.Header().Set("Content-Length", strconv.Itoa(enc.Len()))
	w.WriteHeader(status)
	_, err = enc.WriteTo(w)
	return err
}

// Read decodes the body of r into a T using the request's Content-Type.
// Bodies larger than DefaultMaxBodyBytes are refused.
func Read[T any](r *http.Request) (serde.Decoded[T], error) {
	return ReadLimit[T](r, DefaultMaxBodyBytes)
}

// ReadLimit is Read with a caller-chosen body size limit in bytes.
func ReadLimit[T any](r *http.Request, limit int64) (serde.Decoded[T], error) {
	f, err := FromHeader(r.Header)
	if err != nil {
		return serde.Decoded[T]{}, err
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return serde.Decoded[T]{}, &serde.Error{Err: serde.ErrReadBody, Format: f, Cause: err}
	}
	if int64(len(body)) > limit {
		return serde.Decoded[T]{}, &serde.Error{Err: serde.ErrReadBody, Format: f, Cause: errTooLarge}
	}
	return serde.DecodeContext[T](r.Context(), body, f)
}
