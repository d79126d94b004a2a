// Package idgen mints record identifiers for the in-memory registries
package idgen

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Strategy names accepted by FromStrategy
const (
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
)

// Generator is the interface that wraps the NewID method.
//
// Every call must return an identifier that was never returned before,
// regardless of how many records were added or removed in between.
type Generator interface {
	NewID() string
}

// Sequence is a monotonically increasing decimal counter
type Sequence struct {
	last atomic.Int64
}

// NewSequence creates a sequence whose first identifier is start+1
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// NewID returns the next number of the sequence
func (s *Sequence) NewID() string {
	return strconv.FormatInt(s.last.Add(1), 10)
}

// UUIDGenerator produces random version 4 UUIDs
type UUIDGenerator struct{}

// NewUUID creates a UUID based generator
func NewUUID() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// FromStrategy returns the generator configured by name.
// "start" is only used by the sequence strategy.
func FromStrategy(strategy string, start int64) (Generator, error) {
	switch strategy {
	case "", StrategySequence:
		return NewSequence(start), nil
	case StrategyUUID:
		return NewUUID(), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s, must be '%s' or '%s'", strategy, StrategySequence, StrategyUUID)
	}
}

// MaxNumeric returns the largest decimal identifier among ids, or 0 if none is numeric.
// It is used to start a sequence after seeded records.
func MaxNumeric(ids ...string) int64 {
	var highest int64
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}
