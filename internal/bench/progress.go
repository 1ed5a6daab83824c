package bench

import (
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// progress rate-limits OnProgress callbacks for a single run. It is owned
// by the goroutine executing Run and needs no synchronization.
type progress struct {
	name   string
	every  int64 // nanoseconds
	next   int64 // nanotime deadline of the next report
	report func(name string, done int)
}

// newProgress returns nil when reporting is disabled; a nil *progress
// ignores updates.
func newProgress(name string, every time.Duration, report func(string, int)) *progress {
	if every <= 0 || report == nil {
		return nil
	}
	return &progress{
		name:   name,
		every:  int64(every),
		next:   nanotime() + int64(every),
		report: report,
	}
}

// update reports done iterations if the interval has elapsed since the
// last report.
func (p *progress) update(done int) {
	if p == nil {
		return
	}
	if now := nanotime(); now >= p.next {
		p.next = now + p.every
		p.report(p.name, done)
	}
}
