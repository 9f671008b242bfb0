// Package idgen generates the identifiers a service attaches to responses
// and errors, and that tag log entries
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates identifiers
type Generator interface {
	Generate() string
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return b
}

// RequestIDGenerator produces 16 upper-case hex characters, the shape of
// x-amz-request-id
type RequestIDGenerator struct{}

// Generate returns a new request id
func (g *RequestIDGenerator) Generate() string {
	return strings.ToUpper(hex.EncodeToString(randomBytes(8)))
}

// HostIDGenerator produces base64 tokens shaped like x-amz-id-2
type HostIDGenerator struct{}

// Generate returns a new host id
func (g *HostIDGenerator) Generate() string {
	return base64.StdEncoding.EncodeToString(randomBytes(48))
}

// VersionIDGenerator produces opaque object version ids from UUIDs
type VersionIDGenerator struct{}

// Generate returns a new version id
func (g *VersionIDGenerator) Generate() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// SequentialGenerator generates predictable ids for tests
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next id
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s-%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
