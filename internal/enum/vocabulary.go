// Package enum provides the forward-compatible vocabulary kernel shared by
// every enumeration in the model.
//
// A vocabulary is closed for code compiled against it and open for the
// service: any wire string the vocabulary does not know decodes to the
// reserved unknown symbol instead of failing. Matching code must keep a
// default arm for that symbol.
package enum

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/KirkDiggler/s3-model/internal/errors"
)

// UnrecognizedHook observes wire strings that decoded to the unknown symbol
type UnrecognizedHook func(vocabulary, value string)

var unrecognizedHook atomic.Pointer[UnrecognizedHook]

// SetUnrecognizedHook installs h for every vocabulary. A nil h removes it.
func SetUnrecognizedHook(h UnrecognizedHook) {
	if h == nil {
		unrecognizedHook.Store(nil)
		return
	}
	unrecognizedHook.Store(&h)
}

func notifyUnrecognized(vocabulary, value string) {
	if h := unrecognizedHook.Load(); h != nil {
		(*h)(vocabulary, value)
	}
}

// Descriptor is the type-erased view of a vocabulary used by registries
type Descriptor interface {
	Name() string
	KnownWireStrings() []string
	// Describe returns the symbol name a wire string decodes to and
	// whether it is known.
	Describe(wire string) (symbol string, known bool)
}

// Vocabulary maps between symbols of type S and their wire strings.
// It is immutable after New and safe for concurrent use.
type Vocabulary[S comparable] struct {
	name    string
	unknown S
	byWire  map[string]S
	toWire  map[S]string
	ordered []S
}

// New builds a vocabulary. pairs maps each known symbol to its wire string.
// It panics when the unknown symbol appears in pairs or two symbols share a
// wire string; vocabularies are package-level values, so this fails at init.
func New[S comparable](name string, unknown S, pairs map[S]string) *Vocabulary[S] {
	v := &Vocabulary[S]{
		name:    name,
		unknown: unknown,
		byWire:  make(map[string]S, len(pairs)),
		toWire:  make(map[S]string, len(pairs)),
		ordered: make([]S, 0, len(pairs)),
	}

	for sym, wire := range pairs {
		if sym == unknown {
			panic(fmt.Sprintf("enum %s: unknown symbol must not have a wire string", name))
		}
		if prev, dup := v.byWire[wire]; dup {
			panic(fmt.Sprintf("enum %s: wire string %q mapped twice (%v, %v)", name, wire, prev, sym))
		}
		v.byWire[wire] = sym
		v.toWire[sym] = wire
		v.ordered = append(v.ordered, sym)
	}

	sort.Slice(v.ordered, func(i, j int) bool {
		return v.toWire[v.ordered[i]] < v.toWire[v.ordered[j]]
	})

	return v
}

// Name returns the vocabulary name
func (v *Vocabulary[S]) Name() string {
	return v.name
}

// Unknown returns the reserved symbol
func (v *Vocabulary[S]) Unknown() S {
	return v.unknown
}

// FromWireString decodes an optional wire string. A nil s is absence and
// yields nil; an unmapped s yields the unknown symbol.
func (v *Vocabulary[S]) FromWireString(s *string) *S {
	if s == nil {
		return nil
	}
	sym := v.Parse(*s)
	return &sym
}

// Parse decodes a present wire string
func (v *Vocabulary[S]) Parse(s string) S {
	if sym, ok := v.byWire[s]; ok {
		return sym
	}
	notifyUnrecognized(v.name, s)
	return v.unknown
}

// WireString returns the wire form of sym. The unknown symbol, and any
// value outside the vocabulary, has none.
func (v *Vocabulary[S]) WireString(sym S) (string, bool) {
	wire, ok := v.toWire[sym]
	return wire, ok
}

// Encode returns the outbound wire form of sym or an InvalidArgument error
// for a symbol that must not be transmitted.
func (v *Vocabulary[S]) Encode(sym S) (string, error) {
	wire, ok := v.toWire[sym]
	if !ok {
		return "", errors.InvalidArgumentf("%s: %v has no wire form", v.name, sym).
			WithMeta("vocabulary", v.name)
	}
	return wire, nil
}

// IsKnown reports whether sym has a wire form
func (v *Vocabulary[S]) IsKnown(sym S) bool {
	_, ok := v.toWire[sym]
	return ok
}

// KnownValues returns every symbol except the unknown one, ordered by wire string
func (v *Vocabulary[S]) KnownValues() []S {
	out := make([]S, len(v.ordered))
	copy(out, v.ordered)
	return out
}

// KnownWireStrings returns the wire strings of KnownValues, in the same order
func (v *Vocabulary[S]) KnownWireStrings() []string {
	out := make([]string, len(v.ordered))
	for i, sym := range v.ordered {
		out[i] = v.toWire[sym]
	}
	return out
}

// Describe implements Descriptor
func (v *Vocabulary[S]) Describe(wire string) (string, bool) {
	sym, ok := v.byWire[wire]
	if !ok {
		return fmt.Sprint(v.unknown), false
	}
	return fmt.Sprint(sym), true
}
