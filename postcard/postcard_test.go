package postcard

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/zoobzio/serde/internal/tree"
	serdetest "github.com/zoobzio/serde/testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/x-postcard" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/x-postcard")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := serdetest.NewExample()

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored serdetest.Example
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !restored.Equal(original) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalReference(t *testing.T) {
	data, err := Marshal(serdetest.NewExample())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if !bytes.Equal(data, serdetest.Postcard) {
		t.Errorf("Marshal() = %v, want %v", data, serdetest.Postcard)
	}
}

func TestUnmarshalReference(t *testing.T) {
	var got serdetest.Example
	if err := Unmarshal(serdetest.Postcard, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if want := serdetest.NewExample(); !got.Equal(want) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, want)
	}
}

func TestMarshalLayout(t *testing.T) {
	one := int32(1)

	type pair struct {
		A uint8 `json:"a"`
		B bool  `json:"-"`
		C int64 `json:"c"`
	}

	tests := []struct {
		name  string
		value any
		want  []byte
	}{
		{"true", true, []byte{1}},
		{"int8", int8(-1), []byte{0xff}},
		{"int16 zigzag", int16(-1), []byte{1}},
		{"int32 varint", int32(300), []byte{0xd8, 0x04}},
		{"uint8", uint8(255), []byte{0xff}},
		{"uint32 varint", uint32(300), []byte{0xac, 0x02}},
		{"float32", float32(1.5), []byte{0, 0, 0xc0, 0x3f}},
		{"float64", 1.5, []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}},
		{"string", "hi", []byte{2, 'h', 'i'}},
		{"bytes", []byte{7}, []byte{1, 7}},
		{"slice", []uint16{1, 2}, []byte{2, 1, 2}},
		{"array", [2]uint16{1, 2}, []byte{1, 2}},
		{"none", (*int32)(nil), []byte{0}},
		{"some", &one, []byte{1, 2}},
		{"map", map[string]uint16{"b": 2, "a": 1}, []byte{2, 1, 'a', 1, 1, 'b', 2}},
		{"struct", pair{A: 1, B: true, C: -2}, []byte{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Marshal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarshalUnmarshalNested(t *testing.T) {
	type leaf struct {
		Name  string  `json:"name"`
		Score float32 `json:"score"`
	}
	type root struct {
		ID     uint64           `json:"id"`
		Delta  int64            `json:"delta"`
		Leaf   *leaf            `json:"leaf"`
		Empty  *leaf            `json:"empty"`
		Pair   [2]int8          `json:"pair"`
		Counts map[string]int32 `json:"counts"`
		Blob   []byte           `json:"blob"`
		At     time.Time        `json:"at"`
	}

	original := root{
		ID:     math.MaxUint64,
		Delta:  math.MinInt64,
		Leaf:   &leaf{Name: "x", Score: 0.5},
		Pair:   [2]int8{-1, 1},
		Counts: map[string]int32{"a": 1, "b": -1},
		Blob:   []byte{0, 1},
		At:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored root
	if err := Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !restored.At.Equal(original.At) {
		t.Errorf("At = %v, want %v", restored.At, original.At)
	}
	restored.At = original.At
	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalEmptySlice(t *testing.T) {
	data, err := Marshal([]string{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got := []string{"stale"}
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got != nil {
		t.Errorf("Unmarshal() = %#v, want nil", got)
	}
}

func TestMarshalUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"interface field", struct{ V any }{V: 1}},
		{"channel", make(chan int)},
		{"func", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.value)
			var ute *tree.UnsupportedTypeError
			if !errors.As(err, &ute) {
				t.Errorf("Marshal() error = %v, want *tree.UnsupportedTypeError", err)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		target any
		want   error
	}{
		{"bool tag", []byte{2}, new(bool), ErrInvalidTag},
		{"option tag", []byte{2}, new(*int32), ErrInvalidTag},
		{"empty input", nil, new(int32), ErrUnexpectedEnd},
		{"short float", []byte{0, 0}, new(float64), ErrUnexpectedEnd},
		{"long string", []byte{5, 'a'}, new(string), ErrUnexpectedEnd},
		{"varint overflow", bytes.Repeat([]byte{0xff}, 11), new(uint64), ErrVarintOverflow},
		{"int overflow", []byte{0xf0, 0xa2, 0x04}, new(uint16), ErrIntOverflow},
		{"invalid utf-8", []byte{1, 0xff}, new(string), ErrInvalidUTF8},
		{"trailing bytes", []byte{1, 2}, new(uint8), ErrTrailingBytes},
		{"not a pointer", []byte{1}, int32(0), ErrInvalidTarget},
		{"nil pointer", []byte{1}, (*int32)(nil), ErrInvalidTarget},
		{"long empty-element slice", []byte{0x80, 0x80, 0x80, 0x01}, new([]struct{}), ErrLengthLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(tt.input, tt.target)
			if !errors.Is(err, tt.want) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshalUnmarshalEmptyElements(t *testing.T) {
	type unit struct{}
	type hidden struct {
		Skip string `json:"-"`
	}
	type holder struct {
		Units  []unit        `json:"units"`
		Hidden []hidden      `json:"hidden"`
		Arrays [][0]int      `json:"arrays"`
		Set    map[unit]unit `json:"set"`
		After  int32         `json:"after"`
	}

	value := holder{
		Units:  []unit{{}, {}, {}},
		Hidden: []hidden{{}, {}},
		Arrays: [][0]int{{}},
		Set:    map[unit]unit{{}: {}},
		After:  7,
	}

	data, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := []byte{3, 2, 1, 1, 14}; !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %v, want %v", data, want)
	}

	var restored holder
	if err := Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(restored, value) {
		t.Errorf("Unmarshal() = %+v, want %+v", restored, value)
	}
}
