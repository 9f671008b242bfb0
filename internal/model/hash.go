package model

import (
	"encoding/binary"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by value types. Hash must be consistent with
// Equal and must accept a nil receiver.
type Hashable interface {
	Hash() uint64
}

// Hasher accumulates fields into an xxhash digest. Fields must be written in
// a fixed order per type; every write records presence so an absent field
// and a zero value hash differently.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher seeds a hasher with the type name so different types with the
// same field values rarely collide
func NewHasher(typeName string) *Hasher {
	h := &Hasher{d: xxhash.New()}
	h.writeString(typeName)
	return h
}

// Sum64 returns the hash
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

func (h *Hasher) presence(present bool) bool {
	if present {
		_, _ = h.d.Write([]byte{1})
	} else {
		_, _ = h.d.Write([]byte{0})
	}
	return present
}

func (h *Hasher) writeUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *Hasher) writeString(s string) {
	h.writeUint64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
}

// String writes an optional string
func (h *Hasher) String(v *string) *Hasher {
	if h.presence(v != nil) {
		h.writeString(*v)
	}
	return h
}

// Int64 writes an optional int64
func (h *Hasher) Int64(v *int64) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(*v))
	}
	return h
}

// Int32 writes an optional int32
func (h *Hasher) Int32(v *int32) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(*v))
	}
	return h
}

// Bool writes an optional bool
func (h *Hasher) Bool(v *bool) *Hasher {
	if h.presence(v != nil) {
		if *v {
			h.writeUint64(1)
		} else {
			h.writeUint64(0)
		}
	}
	return h
}

// Time writes an optional instant. Instants equal under time.Equal hash equally.
func (h *Hasher) Time(v *time.Time) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(v.UnixNano()))
	}
	return h
}

// Bytes writes an optional byte sequence
func (h *Hasher) Bytes(v []byte) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(len(v)))
		_, _ = h.d.Write(v)
	}
	return h
}

// Strings writes an optional ordered sequence of strings
func (h *Hasher) Strings(v []string) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(len(v)))
		for _, s := range v {
			h.writeString(s)
		}
	}
	return h
}

// StringMap writes an optional mapping; key order does not matter
func (h *Hasher) StringMap(m map[string]string) *Hasher {
	if h.presence(m != nil) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		h.writeUint64(uint64(len(keys)))
		for _, k := range keys {
			h.writeString(k)
			h.writeString(m[k])
		}
	}
	return h
}

// Value writes a nested value type
func (h *Hasher) Value(v Hashable) *Hasher {
	h.writeUint64(v.Hash())
	return h
}

// HashEnum writes an optional enumeration symbol
func HashEnum[S ~int](h *Hasher, v *S) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(*v))
	}
	return h
}

// HashValues writes an optional ordered sequence of value types
func HashValues[T Hashable](h *Hasher, v []T) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(len(v)))
		for _, item := range v {
			h.writeUint64(item.Hash())
		}
	}
	return h
}

// HashEnums writes an optional ordered sequence of enumeration symbols
func HashEnums[S ~int](h *Hasher, v []S) *Hasher {
	if h.presence(v != nil) {
		h.writeUint64(uint64(len(v)))
		for _, sym := range v {
			h.writeUint64(uint64(sym))
		}
	}
	return h
}
