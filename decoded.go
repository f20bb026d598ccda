package serde

// Decoded owns the value produced by Decode.
type Decoded[T any] struct {
	value T
}

// Ref returns a pointer to the decoded value.
func (d *Decoded[T]) Ref() *T {
	return &d.value
}

// Into returns the decoded value.
func (d Decoded[T]) Into() T {
	return d.value
}
