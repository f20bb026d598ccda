package cbor

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
	if c.ContentType() != "application/x-cbor" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/x-cbor")
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

	var got serdetest.Example
	if err := c.Unmarshal(serdetest.CBOR, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if want := serdetest.NewExample(); !got.Equal(want) {
		t.Errorf("Unmarshal() = %+v, want %+v", got, want)
	}
}

func TestMarshalCanonical(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]int{"bb": 2, "a": 1})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// map(2) "a" 1 "bb" 2: shorter keys first
	want := []byte{0xa2, 0x61, 'a', 0x01, 0x62, 'b', 'b', 0x02}
	if !bytes.Equal(data, want) {
		t.Errorf("Marshal() = %x, want %x", data, want)
	}
}

func TestUnmarshalGenericMap(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]any{"a": "b"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var v any
	if err := c.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if _, ok := v.(map[string]any); !ok {
		t.Errorf("Unmarshal() into any = %T, want map[string]any", v)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v map[string]any
	err := c.Unmarshal([]byte{0xbf}, &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
