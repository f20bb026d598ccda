// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Codec implements serde.Codec for MessagePack.
type Codec struct {
	tag string
}

// Option configures a MessagePack codec.
type Option func(*Codec)

// WithTag sets the struct tag consulted when a field has no msgpack tag.
// Default "json".
func WithTag(tag string) Option {
	return func(c *Codec) {
		c.tag = tag
	}
}

// New returns a MessagePack codec.
func New(opts ...Option) *Codec {
	c := &Codec{tag: "json"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for MessagePack.
func (c *Codec) ContentType() string {
	return "application/x-messagepack"
}

// Marshal encodes v as MessagePack.
//
// Output is canonical: the entries of every map, struct maps included, are
// ordered by key. String keys sort lexically, other keys by their encoding.
func (c *Codec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(c.tag)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(buf.Len())
	if err := canonical(msgpack.NewDecoder(&buf), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(c.tag)
	return dec.Decode(v)
}

// canonical copies one encoded value from dec to out, reordering map entries.
func canonical(dec *msgpack.Decoder, out *bytes.Buffer) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return err
		}
		entries := make([]mapEntry, n)
		for i := range entries {
			var k, v bytes.Buffer
			if err := canonical(dec, &k); err != nil {
				return err
			}
			if err := canonical(dec, &v); err != nil {
				return err
			}
			entries[i] = newMapEntry(k.Bytes(), v.Bytes())
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].less(entries[j])
		})
		if err := msgpack.NewEncoder(out).EncodeMapLen(n); err != nil {
			return err
		}
		for _, e := range entries {
			out.Write(e.key)
			out.Write(e.value)
		}
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		if err := msgpack.NewEncoder(out).EncodeArrayLen(n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := canonical(dec, out); err != nil {
				return err
			}
		}
	default:
		raw, err := dec.DecodeRaw()
		if err != nil {
			return err
		}
		out.Write(raw)
	}
	return nil
}

type mapEntry struct {
	key   []byte
	value []byte
	name  string
	named bool
}

func newMapEntry(key, value []byte) mapEntry {
	e := mapEntry{key: key, value: value}
	if len(key) > 0 && isString(key[0]) {
		e.named = msgpack.Unmarshal(key, &e.name) == nil
	}
	return e
}

func (e mapEntry) less(other mapEntry) bool {
	if e.named && other.named {
		return e.name < other.name
	}
	if e.named != other.named {
		return e.named
	}
	return bytes.Compare(e.key, other.key) < 0
}

func isString(c byte) bool {
	return msgpcode.IsFixedString(c) || c == msgpcode.Str8 || c == msgpcode.Str16 || c == msgpcode.Str32
}
