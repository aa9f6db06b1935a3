package models

// Optional distinguishes "field not provided" from "field provided but empty".
// A write payload built from an Absent optional omits the field on create and
// removes it on update, so clearing a soft link like houseId deletes the key
// instead of storing an empty string.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Present() bool { return o.present }

func (o Optional[T]) Value() (T, bool) { return o.value, o.present }

// OrZero returns the contained value or the zero value when absent.
func (o Optional[T]) OrZero() T { return o.value }

// SomeIfNotEmpty wraps a trimmed-nonempty string, otherwise Absent.
func SomeIfNotEmpty(s string) Optional[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}
