package validation

import (
	"encoding/json"
	"reflect"
)

// Nullable is a partial-update field that may be cleared. Set reports that
// the key was present in the body, Null that it was present as null.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

func (n Nullable[T]) present() (any, bool) {
	v := n.Value
	return &v, n.Set && !n.Null
}

// NotNull is a partial-update field that may be omitted but never cleared:
// an explicit null fails decoding.
type NotNull[T any] struct {
	Value T
	Set   bool
}

func (n *NotNull[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeFor[T]()}
	}
	n.Set = true
	return json.Unmarshal(b, &n.Value)
}

func (n NotNull[T]) present() (any, bool) {
	v := n.Value
	return &v, n.Set
}

type partial interface {
	present() (any, bool)
}

// partialValue exposes the wrapped value to validator tags as a pointer, so
// a present zero value such as "" is still checked under `omitempty`.
// Omitted and null fields yield nil, which `omitempty` skips.
func partialValue(f reflect.Value) any {
	p, ok := f.Interface().(partial)
	if !ok {
		return nil
	}
	v, ok := p.present()
	if !ok {
		return nil
	}
	return v
}
