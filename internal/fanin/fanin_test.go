package fanin_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/randomizedcoder/string-combine-benchmarks/internal/fanin"
)

func testSink(t *testing.T, s fanin.Sink, name string) {
	t.Helper()

	// Empty sink returns nothing
	if got := s.TakeBatch(nil, 4); len(got) != 0 {
		t.Errorf("%s: expected empty batch on empty sink, got %d parts", name, len(got))
	}

	want := fanin.Part{Index: 3, Text: "<p>x</p>\n"}
	s.Producer(0).Send(want)

	got := s.TakeBatch(nil, 4)
	if len(got) != 1 {
		t.Fatalf("%s: expected 1 part after Send(), got %d", name, len(got))
	}
	if got[0] != want {
		t.Errorf("%s: expected %+v, got %+v", name, want, got[0])
	}

	// Sink is empty again
	if got := s.TakeBatch(got, 4); len(got) != 0 {
		t.Errorf("%s: expected empty batch after draining, got %d parts", name, len(got))
	}
}

func newRing(t *testing.T, producers, capacity int) *fanin.RingSink {
	t.Helper()
	s, err := fanin.NewRing(producers, capacity)
	if err != nil {
		t.Fatalf("NewRing(%d, %d): %v", producers, capacity, err)
	}
	return s
}

func TestChannelSink(t *testing.T) {
	testSink(t, fanin.NewChannel(8), "ChannelSink")
}

func TestRingSink(t *testing.T) {
	testSink(t, newRing(t, 1, 8), "RingSink")
}

func testTakeBatchLimit(t *testing.T, s fanin.Sink, name string) {
	t.Helper()
	p := s.Producer(0)
	for i := 0; i < 5; i++ {
		p.Send(fanin.Part{Index: i})
	}

	first := s.TakeBatch(nil, 3)
	if len(first) != 3 {
		t.Fatalf("%s: expected batch of 3, got %d", name, len(first))
	}
	rest := s.TakeBatch(nil, 10)
	if len(rest) != 2 {
		t.Fatalf("%s: expected remaining 2, got %d", name, len(rest))
	}
}

func TestTakeBatch_Limit(t *testing.T) {
	testTakeBatchLimit(t, fanin.NewChannel(8), "ChannelSink")
	testTakeBatchLimit(t, newRing(t, 1, 8), "RingSink")
}

// A producer blocked on a full sink must resume once the consumer drains.
func testSendWhenFull(t *testing.T, s fanin.Sink, capacity int, name string) {
	t.Helper()
	total := capacity * 4
	done := make(chan struct{})

	go func() {
		defer close(done)
		p := s.Producer(0)
		for i := 0; i < total; i++ {
			p.Send(fanin.Part{Index: i, Text: fmt.Sprint(i)})
		}
	}()

	got := fanin.Gather(s, total)
	<-done

	for i, text := range got {
		if text != fmt.Sprint(i) {
			t.Fatalf("%s: position %d: expected %q, got %q", name, i, fmt.Sprint(i), text)
		}
	}
}

func TestChannelSink_SendWhenFull(t *testing.T) {
	testSendWhenFull(t, fanin.NewChannel(2), 2, "ChannelSink")
}

func TestRingSink_SendWhenFull(t *testing.T) {
	// One shard of the minimum size (8) fills long before 32 parts are sent
	testSendWhenFull(t, newRing(t, 1, 1), 8, "RingSink")
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in   string
		want fanin.Kind
	}{
		{"", fanin.DefaultKind},
		{"ring", fanin.KindRing},
		{"channel", fanin.KindChannel},
	}

	for _, tc := range testCases {
		got, err := fanin.ParseKind(tc.in)
		if err != nil {
			t.Errorf("ParseKind(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := fanin.ParseKind("mpmc"); !errors.Is(err, fanin.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []fanin.Kind{fanin.KindChannel, fanin.KindRing} {
		s, err := fanin.New(kind, 4, 16)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		testSink(t, s, string(kind))
	}

	// Odd producer counts and tiny capacities are rounded, not rejected
	for _, producers := range []int{1, 3, 5, 64} {
		if _, err := fanin.NewRing(producers, 1); err != nil {
			t.Errorf("NewRing(%d, 1): %v", producers, err)
		}
	}

	if _, err := fanin.New("bogus", 4, 16); !errors.Is(err, fanin.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestGather_OrdersByIndex(t *testing.T) {
	s := fanin.NewChannel(8)
	p := s.Producer(0)
	for _, i := range []int{2, 0, 3, 1} {
		p.Send(fanin.Part{Index: i, Text: fmt.Sprint(i)})
	}

	got := fanin.Gather(s, 4)
	for i, text := range got {
		if text != fmt.Sprint(i) {
			t.Errorf("position %d: expected %q, got %q", i, fmt.Sprint(i), text)
		}
	}
}

func TestGather_Zero(t *testing.T) {
	if got := fanin.Gather(fanin.NewChannel(1), 0); len(got) != 0 {
		t.Errorf("expected no parts, got %d", len(got))
	}
}
