// Package model holds the helpers every value type in the model is built on:
// defensive copies for builders, field-wise equality, hashing consistent with
// that equality, and a redacting string form.
//
// Optional fields are pointers (nil is absent). Sequences and mappings keep
// the difference between absent (nil) and present-but-empty (non-nil, zero
// length) through every helper here.
package model
