// Package id provides centralized ID generation for the backend.
//
// Two generators live here because two different guarantees are needed:
//
//   - ULID-based ids (requests, workspace snapshots): lexicographically
//     sortable, prefixed for readable logs, safe across services.
//   - Sequence-based ids (windows): issued from a process-local monotonic
//     counter that is never reused, even after the window closes. Window
//     identity and z-order both depend on strict monotonicity, which ULIDs
//     sharing a millisecond cannot promise.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// WindowID identifies a window instance
type WindowID string

// RequestID identifies an API request
type RequestID string

// SnapshotID identifies a saved workspace snapshot
type SnapshotID string

const (
	WindowPrefix   = "win"
	RequestPrefix  = "req"
	SnapshotPrefix = "ws"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewSnapshotID generates a new workspace snapshot ID
func NewSnapshotID() SnapshotID {
	return SnapshotID(Default().GenerateWithPrefix(SnapshotPrefix))
}

func (id WindowID) String() string   { return string(id) }
func (id RequestID) String() string  { return string(id) }
func (id SnapshotID) String() string { return string(id) }

// Sequence issues prefixed ids from an atomic counter. Values are strictly
// increasing for the lifetime of the sequence and never reused.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence creates a sequence with the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() string {
	return s.prefix + "_" + strconv.FormatUint(s.n.Add(1), 10)
}

// NewWindowSequence creates the id sequence used for window instances.
func NewWindowSequence() *Sequence {
	return NewSequence(WindowPrefix)
}
