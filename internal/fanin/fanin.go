// Package fanin collects formatted chunks from a fixed pool of producer
// goroutines into a single, ordered result.
//
// This package offers two implementations of the Sink interface:
//   - ChannelSink: Standard library approach using a buffered channel,
//     with a yield loop while the buffer is full
//   - RingSink: Sharded lock-free MPSC ring (go-lock-free-ring), one shard
//     per producer, retrying through the library's Writer strategies
//
// # Ordering
//
// Sinks deliver parts in arrival order, which is unspecified when several
// producers run at once. Every Part carries the index of the chunk it was
// built from; Gather uses it to restore input order.
//
// Correct usage:
//   - Each producer goroutine obtains its own Producer and only uses that
//   - Exactly ONE goroutine calls TakeBatch (or Gather)
package fanin

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnknownKind is returned by ParseKind and New for unsupported sink names.
var ErrUnknownKind = errors.New("fanin: unknown sink kind")

// Part is one formatted chunk of the output.
type Part struct {
	// Index is the chunk's position in the input, starting at 0.
	Index int
	Text  string
}

// Producer hands parts to a Sink on behalf of one goroutine.
type Producer interface {
	// Send blocks until the sink has accepted p.
	Send(p Part)
}

// Sink is a multi-producer single-consumer hand-off for Parts.
type Sink interface {
	// Producer returns the sending side for producer id.
	// A Producer must not be shared between goroutines.
	Producer(id int) Producer

	// TakeBatch resets buf to length 0 and appends up to limit parts that are
	// ready now. It never blocks; an empty result means nothing was ready.
	TakeBatch(buf []Part, limit int) []Part
}

// Kind names a Sink implementation.
type Kind string

const (
	KindChannel Kind = "channel"
	KindRing    Kind = "ring"
)

// DefaultKind is the sink used when none is configured.
const DefaultKind = KindRing

// ParseKind converts a flag value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindChannel, KindRing:
		return Kind(s), nil
	case "":
		return DefaultKind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New creates a sink of the given kind sized for producers goroutines and
// at least capacity buffered parts.
func New(kind Kind, producers, capacity int) (Sink, error) {
	switch kind {
	case KindChannel:
		return NewChannel(capacity), nil
	case KindRing, "":
		return NewRing(producers, capacity)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Gather takes exactly n parts from s and returns their texts ordered by
// Part.Index. Indexes must be unique and in [0, n).
//
// Gather blocks (yielding) until all n parts have arrived.
func Gather(s Sink, n int) []string {
	out := make([]string, n)
	batch := make([]Part, 0, n)
	for received := 0; received < n; {
		batch = s.TakeBatch(batch, n-received)
		if len(batch) == 0 {
			runtime.Gosched()
			continue
		}
		for _, p := range batch {
			out[p.Index] = p.Text
		}
		received += len(batch)
	}
	return out
}

// nextPow2 rounds n up to a power of 2 (minimum 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
