package model

// ClonePtr returns a pointer to a copy of *p, or nil
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneBytes copies b, keeping nil and empty distinct
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// CloneSlice copies s, keeping nil and empty distinct. Elements are copied
// shallowly; value-type elements are immutable so sharing them is safe.
func CloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// CloneMap copies m, keeping nil and empty distinct
func CloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Get reads an optional field; ok is false when it is absent
func Get[T any](p *T) (v T, ok bool) {
	if p == nil {
		return v, false
	}
	return *p, true
}

// Deref returns *p, or the zero value when p is nil
func Deref[T any](p *T) T {
	v, _ := Get(p)
	return v
}
