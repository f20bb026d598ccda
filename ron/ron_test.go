package ron

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

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
	if c.ContentType() != "application/ron" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/ron")
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
	c := New()

	data, err := c.Marshal(serdetest.NewExample())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if string(data) != serdetest.RON {
		t.Errorf("Marshal() = %q, want %q", data, serdetest.RON)
	}
}

func TestUnmarshalReference(t *testing.T) {
	c := New()
	want := serdetest.NewExample()

	for name, input := range map[string]string{
		"compact": serdetest.RON,
		"pretty":  serdetest.RONPretty,
	} {
		t.Run(name, func(t *testing.T) {
			var got serdetest.Example
			if err := c.Unmarshal([]byte(input), &got); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMarshalValues(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y,omitempty"`
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "None"},
		{"nil pointer", (*point)(nil), "None"},
		{"bool", true, "true"},
		{"negative", -5, "-5"},
		{"unsigned", uint64(math.MaxUint64), "18446744073709551615"},
		{"float", 1.5, "1.5"},
		{"integral float", 2.0, "2.0"},
		{"nan", math.NaN(), "NaN"},
		{"negative inf", math.Inf(-1), "-inf"},
		{"escapes", "a\"b\\c\td\x01", `"a\"b\\c\td\u{1}"`},
		{"bytes", []byte{1, 2}, `"AQI="`},
		{"empty list", []int{}, "[]"},
		{"list", []string{"a", "b"}, `["a","b"]`},
		{"map", map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"struct", point{X: 1}, "(x:1)"},
		{"pointer", &point{X: 1, Y: 2}, "(x:1,y:2)"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestWithPretty(t *testing.T) {
	c := New(WithPretty("  "))

	data, err := c.Marshal(map[string]any{"a": 1, "b": []int{1, 2}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2,\n  ],\n}"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}

	var restored map[string]any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal(pretty) error: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"unit", "()", nil},
		{"none", "None", nil},
		{"some", "Some(5)", int64(5)},
		{"hex", "0x1F", int64(31)},
		{"binary", "0b101", int64(5)},
		{"octal", "0o17", int64(15)},
		{"negative hex", "-0x10", int64(-16)},
		{"underscores", "1_000", int64(1000)},
		{"plus sign", "+7", int64(7)},
		{"large unsigned", "18446744073709551615", uint64(math.MaxUint64)},
		{"float", "1.25", 1.25},
		{"exponent", "1e3", 1000.0},
		{"leading dot", ".5", 0.5},
		{"char", "'c'", "c"},
		{"escaped char", `'\''`, "'"},
		{"unicode escape", `"\u{48}i"`, "Hi"},
		{"raw string", `r#"raw "q""#`, `raw "q"`},
		{"byte string", `b"ab"`, []byte("ab")},
		{"unit variant", "Red", "Red"},
		{"tuple", "(1, 2)", []any{int64(1), int64(2)}},
		{"named tuple", "Pair(1, 2)", []any{int64(1), int64(2)}},
		{"named struct", "Point(x: 1, y: 2)", map[string]any{"x": int64(1), "y": int64(2)}},
		{"trailing comma", "[1, 2,]", []any{int64(1), int64(2)}},
		{"string keys", `{"a": true}`, map[string]any{"a": true}},
		{"int keys", `{1: "a"}`, map[any]any{int64(1): "a"}},
		{"line comment", "// note\n5", int64(5)},
		{"nested comment", "/* a /* b */ c */ 5", int64(5)},
		{"attribute", "#![enable(implicit_some)]\n5", int64(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSpecialFloats(t *testing.T) {
	for input, check := range map[string]func(float64) bool{
		"inf":  func(f float64) bool { return math.IsInf(f, 1) },
		"-inf": func(f float64) bool { return math.IsInf(f, -1) },
		"NaN":  math.IsNaN,
	} {
		got, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		if f, ok := got.(float64); !ok || !check(f) {
			t.Errorf("Parse(%q) = %v", input, got)
		}
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed struct", "(foo:"},
		{"unclosed list", "[1, 2"},
		{"trailing value", "1 2"},
		{"unterminated string", `"abc`},
		{"bad escape", `"\q"`},
		{"unclosed comment", "/* 1"},
		{"unexpected character", "@"},
		{"missing colon", `{"a" 1}`},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v any
			err := c.Unmarshal([]byte(tt.input), &v)
			if err == nil {
				t.Fatalf("Unmarshal(%q) should return error", tt.input)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("error = %T, want *SyntaxError", err)
			}
		})
	}
}

func TestSyntaxErrorOffset(t *testing.T) {
	_, err := Parse([]byte("[1, @]"))

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SyntaxError", err)
	}
	if se.Offset != 4 {
		t.Errorf("Offset = %d, want 4", se.Offset)
	}
}

func TestParseNesting(t *testing.T) {
	within := strings.Repeat("[", maxDepth) + strings.Repeat("]", maxDepth)
	if _, err := Parse([]byte(within)); err != nil {
		t.Errorf("Parse(%d levels) error: %v", maxDepth, err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"lists", strings.Repeat("[", 100000)},
		{"tuples", strings.Repeat("(", 100000)},
		{"maps", strings.Repeat("{1:", 100000)},
		{"named", strings.Repeat("Some(", 100000)},
		{"one past limit", strings.Repeat("[", maxDepth+1) + strings.Repeat("]", maxDepth+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *SyntaxError", err)
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
		input string
	}{
		{"int overflow", "(x: 300, i: 1)"},
		{"fractional float", "(x: 1, i: 1.9)"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got narrow
			if err := c.Unmarshal([]byte(tt.input), &got); err == nil {
				t.Errorf("Unmarshal(%q) = %+v, want error", tt.input, got)
			}
		})
	}

	var got narrow
	if err := c.Unmarshal([]byte("(x: -5, i: 2.0)"), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.X != -5 || got.I != 2 {
		t.Errorf("Unmarshal() = %+v, want {X:-5 I:2}", got)
	}
}
