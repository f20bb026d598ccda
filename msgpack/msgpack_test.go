package msgpack

import (
	"bytes"
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
	if c.ContentType() != "application/x-messagepack" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/x-messagepack")
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

func TestMarshalSortedKeys(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]int{"b": 2, "a": 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// fixmap(2) "a" 1 "b" 2
	want := []byte{0x82, 0xa1, 'a', 0x01, 0xa1, 'b', 0x02}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	type holder struct {
		Zeta  map[string]int       `json:"zeta"`
		Alpha []map[string]float64 `json:"alpha"`
		Keys  map[int]string       `json:"keys"`
	}

	tests := []struct {
		name  string
		value any
	}{
		{"string keys", map[string]int{"d": 4, "b": 2, "a": 1, "c": 3, "e": 5}},
		{"int keys", map[int]bool{3: true, 1: false, 2: true, 9: false}},
		{"nested", holder{
			Zeta:  map[string]int{"y": 1, "x": 2, "w": 3},
			Alpha: []map[string]float64{{"q": 1, "p": 2, "o": 3}},
			Keys:  map[int]string{5: "e", 4: "d", 6: "f"},
		}},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := c.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			for i := 0; i < 50; i++ {
				again, err := c.Marshal(tt.value)
				if err != nil {
					t.Fatalf("Marshal() error: %v", err)
				}
				if !bytes.Equal(again, first) {
					t.Fatalf("Marshal() = %x, want %x", again, first)
				}
			}
		})
	}
}

func TestMarshalStructFieldOrder(t *testing.T) {
	c := New()

	type pair struct {
		B int `json:"b"`
		A int `json:"a"`
	}

	data, err := c.Marshal(pair{B: 2, A: 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := []byte{0x82, 0xa1, 'a', 0x01, 0xa1, 'b', 0x02}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}

	var restored pair
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != (pair{B: 2, A: 1}) {
		t.Errorf("Unmarshal() = %+v, want {B:2 A:1}", restored)
	}
}

func TestWithTag(t *testing.T) {
	c := New(WithTag("form"))

	type tagged struct {
		Name string `form:"n"`
	}

	data, err := c.Marshal(tagged{Name: "x"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var m map[string]string
	if err := c.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if m["n"] != "x" {
		t.Errorf("field key = %v, want n", m)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v map[string]any
	err := c.Unmarshal([]byte{0xc1}, &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshalReference(t *testing.T) {
	c := New()

	// The reference encodes the struct positionally as an array.
	var got serdetest.Example
	if err := c.Unmarshal(serdetest.MessagePack, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if want := serdetest.NewExample(); !got.Equal(want) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, want)
	}
}
