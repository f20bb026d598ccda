package flexbuffers

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zoobzio/serde/internal/tree"
)

var (
	errNonStringKey = errors.New("flexbuffers: map keys must be strings")
	errKeyNUL       = errors.New("flexbuffers: map key contains a NUL byte")
)

// slot is a value ready to be stored in a parent: either an inline
// scalar or the absolute position of data already written.
type slot struct {
	typ  byte
	bits uint64
	off  int
}

type builder struct {
	buf []byte
}

// Build serializes a value from the tree model into a FlexBuffers buffer.
func Build(v any) ([]byte, error) {
	b := &builder{}
	root, err := b.write(v)
	if err != nil {
		return nil, err
	}
	b.align()
	b.putSlot(root)
	b.buf = append(b.buf, packType(root.typ, width64), 8)
	return b.buf, nil
}

func (b *builder) write(v any) (slot, error) {
	switch x := v.(type) {
	case nil:
		return slot{typ: typeNull}, nil
	case bool:
		s := slot{typ: typeBool}
		if x {
			s.bits = 1
		}
		return s, nil
	case int64:
		return slot{typ: typeInt, bits: uint64(x)}, nil
	case uint64:
		return slot{typ: typeUint, bits: x}, nil
	case float64:
		return slot{typ: typeFloat, bits: math.Float64bits(x)}, nil
	case string:
		return b.sized(typeString, []byte(x), true), nil
	case []byte:
		return b.sized(typeBlob, x, false), nil
	case []any:
		slots := make([]slot, len(x))
		for i, item := range x {
			s, err := b.write(item)
			if err != nil {
				return slot{}, err
			}
			slots[i] = s
		}
		b.align()
		return slot{typ: typeVector, off: b.vector(slots, true)}, nil
	case tree.Map:
		entries := make([]tree.Field, len(x))
		for i, e := range x {
			k, ok := e.Key.(string)
			if !ok {
				return slot{}, errNonStringKey
			}
			entries[i] = tree.Field{Name: k, Value: e.Value}
		}
		return b.mapping(entries)
	case tree.Struct:
		return b.mapping(append([]tree.Field(nil), x.Fields...))
	}
	return slot{}, fmt.Errorf("flexbuffers: cannot encode %T", v)
}

// sized writes a length-prefixed string or blob.
func (b *builder) sized(typ byte, data []byte, terminate bool) slot {
	b.align()
	b.put64(uint64(len(data)))
	off := len(b.buf)
	b.buf = append(b.buf, data...)
	if terminate {
		b.buf = append(b.buf, 0)
	}
	return slot{typ: typ, off: off}
}

// mapping writes keys, values, the sorted keys vector and the map itself.
func (b *builder) mapping(entries []tree.Field) (slot, error) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	keys := make([]slot, len(entries))
	for i, e := range entries {
		if strings.IndexByte(e.Name, 0) >= 0 {
			return slot{}, errKeyNUL
		}
		keys[i] = slot{typ: typeKey, off: len(b.buf)}
		b.buf = append(b.buf, e.Name...)
		b.buf = append(b.buf, 0)
	}

	values := make([]slot, len(entries))
	for i, e := range entries {
		s, err := b.write(e.Value)
		if err != nil {
			return slot{}, err
		}
		values[i] = s
	}

	b.align()
	keysOff := b.vector(keys, false)

	b.put64(uint64(len(b.buf) - keysOff))
	b.put64(8)
	return slot{typ: typeMap, off: b.vector(values, true)}, nil
}

// vector writes the size prefix, the slots and, for untyped vectors, the
// trailing type bytes. It returns the position of the first slot.
func (b *builder) vector(slots []slot, withTypes bool) int {
	b.put64(uint64(len(slots)))
	off := len(b.buf)
	for _, s := range slots {
		b.putSlot(s)
	}
	if withTypes {
		for _, s := range slots {
			b.buf = append(b.buf, packType(s.typ, width64))
		}
	}
	return off
}

func (b *builder) putSlot(s slot) {
	if isInline(s.typ) {
		b.put64(s.bits)
		return
	}
	b.put64(uint64(len(b.buf) - s.off))
}

func (b *builder) put64(v uint64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
}

func (b *builder) align() {
	for len(b.buf)%8 != 0 {
		b.buf = append(b.buf, 0)
	}
}
