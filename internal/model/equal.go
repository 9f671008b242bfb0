package model

import (
	"bytes"
	"time"
)

// Equaler is implemented by value types. Implementations must accept nil
// receivers and arguments.
type Equaler[T any] interface {
	Equal(T) bool
}

// EqualPtr compares two optional comparable values
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// EqualTime compares two optional instants
func EqualTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// EqualBytes compares two optional byte sequences
func EqualBytes(a, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return bytes.Equal(a, b)
}

// EqualSlice compares two optional sequences of comparable items in order
func EqualSlice[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualValues compares two optional sequences of value types in order
func EqualValues[T Equaler[T]](a, b []T) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// EqualMap compares two optional mappings
func EqualMap[K, V comparable](a, b map[K]V) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av != bv {
			return false
		}
	}
	return true
}
