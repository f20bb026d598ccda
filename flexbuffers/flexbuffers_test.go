package flexbuffers

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"

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
	if c.ContentType() != "application/x-flexbuffers" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/x-flexbuffers")
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

func TestUnmarshalReference(t *testing.T) {
	c := New()

	// The reference buffer mixes 1, 2, 4 and 8 byte widths.
	var got serdetest.Example
	if err := c.Unmarshal(serdetest.FlexBuffers, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if want := serdetest.NewExample(); !got.Equal(want) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, want)
	}
}

func TestBuildLayout(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []byte
	}{
		{
			name:  "int",
			value: int64(1),
			want:  []byte{1, 0, 0, 0, 0, 0, 0, 0, typeInt<<2 | width64, 8},
		},
		{
			name:  "bool",
			value: true,
			want:  []byte{1, 0, 0, 0, 0, 0, 0, 0, typeBool<<2 | width64, 8},
		},
		{
			name:  "string",
			value: "a",
			want: []byte{
				1, 0, 0, 0, 0, 0, 0, 0, // size
				'a', 0, 0, 0, 0, 0, 0, 0, // data, terminator, padding
				8, 0, 0, 0, 0, 0, 0, 0, // root offset
				typeString<<2 | width64, 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.value)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Build() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildParse(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"nil", nil, nil},
		{"false", false, false},
		{"negative", int64(-5), int64(-5)},
		{"max unsigned", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"float", 1.5, 1.5},
		{"string", "hello", "hello"},
		{"empty string", "", ""},
		{"blob", []byte{0, 1, 2}, []byte{0, 1, 2}},
		{"empty vector", []any{}, []any{}},
		{"vector", []any{int64(1), "a", nil}, []any{int64(1), "a", nil}},
		{
			"map",
			tree.Map{{Key: "b", Value: int64(2)}, {Key: "a", Value: []any{true}}},
			map[string]any{"a": []any{true}, "b": int64(2)},
		},
		{
			"struct",
			tree.Struct{Fields: []tree.Field{{Name: "z", Value: "last"}, {Name: "m", Value: tree.Struct{}}}},
			map[string]any{"z": "last", "m": map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Build(tt.value)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			got, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseNarrowWidths(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  any
	}{
		{"int8", []byte{0xfb, typeInt << 2, 1}, int64(-5)},
		{"uint16", []byte{0x34, 0x12, typeUint<<2 | 1, 2}, uint64(0x1234)},
		{"float32", []byte{0, 0, 0xc0, 0x3f, typeFloat<<2 | 2, 4}, 1.5},
		{"bool", []byte{1, typeBool << 2, 1}, true},
		{
			"indirect int",
			[]byte{42, 1, typeIndirectInt << 2, 1},
			int64(42),
		},
		{
			"typed vector",
			[]byte{3, 1, 2, 3, 3, typeVectorInt << 2, 1},
			[]any{int64(1), int64(2), int64(3)},
		},
		{
			"fixed typed vector",
			[]byte{1, 2, 2, typeVectorInt2 << 2, 1},
			[]any{int64(1), int64(2)},
		},
		{
			"bool vector",
			[]byte{2, 1, 0, 2, typeVectorBool << 2, 1},
			[]any{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  error
	}{
		{"int keys", map[int]string{1: "a"}, errNonStringKey},
		{"nul key", map[string]int{"a\x00b": 1}, errKeyNUL},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Marshal(tt.value)
			if !errors.Is(err, tt.want) {
				t.Errorf("Marshal() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"too short", []byte{0}},
		{"bad root width", []byte{0, 0, 3}},
		{"root past start", []byte{0, typeInt << 2, 8}},
		{"offset before start", []byte{9, typeString << 2, 1}},
		{"unknown type", []byte{0, 0, 40 << 2, 1}},
		{"size past end", []byte{200, 'a', 1, typeString << 2, 1}},
		{"float width", []byte{0, typeFloat << 2, 1}},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			err := c.Unmarshal(tt.input, &v)
			if err == nil {
				t.Fatal("Unmarshal(invalid) should return error")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Errorf("error = %T, want *FormatError", err)
			}
		})
	}
}

func TestUnmarshalNarrowing(t *testing.T) {
	type narrow struct {
		X int8 `json:"x"`
		I int  `json:"i"`
	}

	tests := []struct {
		name  string
		value map[string]any
	}{
		{"int overflow", map[string]any{"x": 300, "i": 1}},
		{"fractional float", map[string]any{"x": 1, "i": 1.9}},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			var got narrow
			if err := c.Unmarshal(data, &got); err == nil {
				t.Errorf("Unmarshal() = %+v, want error", got)
			}
		})
	}

	data, err := c.Marshal(map[string]any{"x": -5, "i": 2.0})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var got narrow
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.X != -5 || got.I != 2 {
		t.Errorf("Unmarshal() = %+v, want {X:-5 I:2}", got)
	}
}

// sharedVectors builds k untyped vectors where each holds two offsets to
// the one before it, so a naive walk visits 2^k leaves.
func sharedVectors(k int) []byte {
	buf := []byte{2, 0, 0, byte(typeInt << 2), byte(typeInt << 2)}
	target := 1
	for i := 0; i < k; i++ {
		next := len(buf) + 1
		buf = append(buf, 2,
			byte(next-target), byte(next+1-target),
			byte(typeVector<<2), byte(typeVector<<2))
		target = next
	}
	root := len(buf)
	return append(buf, byte(root-target), byte(typeVector<<2), 1)
}

func TestParseSharedOffsets(t *testing.T) {
	small, err := Parse(sharedVectors(2))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	leaf := []any{int64(0), int64(0)}
	want := []any{[]any{leaf, leaf}, []any{leaf, leaf}}
	if !reflect.DeepEqual(small, want) {
		t.Errorf("Parse() = %v, want %v", small, want)
	}

	_, err = Parse(sharedVectors(40))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FormatError", err)
	}
}
