package fanin

import "runtime"

// ChannelSink wraps a buffered channel as a Sink.
//
// This is the standard library baseline the ring is measured against.
// Sends retry a non-blocking select and yield the processor while the
// buffer is full; producer ids are ignored.
type ChannelSink struct {
	ch chan Part
}

// NewChannel creates a ChannelSink with the specified buffer size.
func NewChannel(size int) *ChannelSink {
	if size < 1 {
		size = 1
	}
	return &ChannelSink{
		ch: make(chan Part, size),
	}
}

type channelProducer struct {
	ch chan Part
}

// Producer returns a sender for the shared channel.
func (c *ChannelSink) Producer(int) Producer {
	return channelProducer{ch: c.ch}
}

func (p channelProducer) Send(part Part) {
	for {
		select {
		case p.ch <- part:
			return
		default:
			runtime.Gosched()
		}
	}
}

// TakeBatch drains up to limit buffered parts without blocking.
func (c *ChannelSink) TakeBatch(buf []Part, limit int) []Part {
	buf = buf[:0]
	for len(buf) < limit {
		select {
		case p := <-c.ch:
			buf = append(buf, p)
		default:
			return buf
		}
	}
	return buf
}
