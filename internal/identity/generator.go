// Package identity issues the unique, monotonically increasing IDs
// used by every aggregate. One process-wide generator replaces the
// scattered per-type counters of the original system.
package identity

import (
	"fmt"
	"sync/atomic"
)

// Kind selects the ID namespace.
type Kind string

const (
	KindUser        Kind = "USR"
	KindItem        Kind = "ITM"
	KindTransaction Kind = "TXN"
	KindReview      Kind = "REV"
)

// Generator issues IDs like "ITM-000042". Each kind counts
// independently and never repeats within a process.
type Generator struct {
	users        atomic.Uint64
	items        atomic.Uint64
	transactions atomic.Uint64
	reviews      atomic.Uint64
}

// NewGenerator creates a generator with all counters at zero.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next ID for the given kind.
func (g *Generator) Next(kind Kind) string {
	var n uint64
	switch kind {
	case KindUser:
		n = g.users.Add(1)
	case KindItem:
		n = g.items.Add(1)
	case KindTransaction:
		n = g.transactions.Add(1)
	case KindReview:
		n = g.reviews.Add(1)
	default:
		panic(fmt.Sprintf("identity: unknown kind %q", kind))
	}
	return fmt.Sprintf("%s-%06d", kind, n)
}
