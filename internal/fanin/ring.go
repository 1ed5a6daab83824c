package fanin

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// minShardCapacity is the smallest per-shard capacity NewRing will create.
const minShardCapacity = 8

// RingSink is a Sink backed by go-lock-free-ring's sharded MPSC ring.
//
// Each producer id maps to its own shard, so producers never contend
// with each other; only the single consumer walks all shards.
type RingSink struct {
	r      *ring.ShardedRing
	config ring.WriteConfig

	// scratch is reused by TakeBatch; only the consumer touches it.
	scratch []any
}

// NewRing creates a RingSink with one shard per producer.
// Shard count and capacity are rounded up to powers of 2, and every
// shard holds at least max(capacity/shards, 8) parts.
//
// Producers retry full shards with ring.LowLatencyConfig (spin, then yield).
func NewRing(producers, capacity int) (*RingSink, error) {
	shards := nextPow2(producers)
	total := nextPow2(capacity)
	if total < shards*minShardCapacity {
		total = shards * minShardCapacity
	}

	r, err := ring.NewShardedRing(uint64(total), uint64(shards))
	if err != nil {
		return nil, fmt.Errorf("fanin: sharded ring (capacity=%d, shards=%d): %w", total, shards, err)
	}
	return &RingSink{r: r, config: ring.LowLatencyConfig()}, nil
}

type ringProducer struct {
	w *ring.Writer
}

// Producer returns a sender bound to the shard for id. Each call creates
// a fresh ring.Writer, whose retry state belongs to the calling goroutine.
func (s *RingSink) Producer(id int) Producer {
	return ringProducer{w: ring.NewWriter(s.r, uint64(id), s.config)}
}

func (p ringProducer) Send(part Part) {
	// LowLatencyConfig has no backoff limit, so Write only returns once
	// the part is in the ring.
	if !p.w.Write(part) {
		panic("fanin: ring writer gave up")
	}
}

// TakeBatch reads up to limit parts across all shards with ReadBatchInto.
func (s *RingSink) TakeBatch(buf []Part, limit int) []Part {
	buf = buf[:0]
	s.scratch = s.r.ReadBatchInto(s.scratch, limit)
	for _, v := range s.scratch {
		buf = append(buf, v.(Part))
	}
	clear(s.scratch)
	return buf
}
