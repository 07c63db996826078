package diag

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newCaptured() (*Aggregator, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewAggregator(zerolog.New(&buf)), &buf
}

func TestFlushSingleOccurrence(t *testing.T) {
	a, buf := newCaptured()

	a.Warnf("component %q not found", "tab1")

	lines := a.Flush()
	if len(lines) != 1 {
		t.Fatalf("flushed %d lines, want 1", len(lines))
	}
	if lines[0] != `component "tab1" not found` {
		t.Errorf("line = %q", lines[0])
	}
	if strings.Contains(lines[0], "x ") {
		t.Errorf("single occurrence carries a count marker: %q", lines[0])
	}
	if !strings.Contains(buf.String(), `component \"tab1\" not found`) {
		t.Errorf("warning not emitted through logger: %s", buf.String())
	}
}

func TestFlushGroupsDuplicates(t *testing.T) {
	a, _ := newCaptured()

	a.Warnf("duplicate message")
	a.Warnf("duplicate message")
	a.Warnf("other message")

	lines := a.Flush()
	if len(lines) != 2 {
		t.Fatalf("flushed %d lines, want 2", len(lines))
	}
	if lines[0] != "2x duplicate message" {
		t.Errorf("lines[0] = %q, want \"2x duplicate message\"", lines[0])
	}
	if lines[1] != "other message" {
		t.Errorf("lines[1] = %q, want \"other message\"", lines[1])
	}
}

func TestFlushFirstInsertionOrder(t *testing.T) {
	a, _ := newCaptured()

	a.Warnf("first")
	a.Warnf("second")
	a.Warnf("first")
	a.Warnf("third")

	lines := a.Flush()
	want := []string{"2x first", "second", "third"}
	if len(lines) != len(want) {
		t.Fatalf("flushed %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFlushClears(t *testing.T) {
	a, _ := newCaptured()

	a.Warnf("message")
	a.Flush()

	if a.Len() != 0 {
		t.Errorf("Len() = %d after flush, want 0", a.Len())
	}
	if lines := a.Flush(); lines != nil {
		t.Errorf("second flush emitted %d lines", len(lines))
	}
}

func TestTimings(t *testing.T) {
	tm := NewTimings()

	if tm.Total() != 0 || tm.Count() != 0 {
		t.Error("fresh collector not empty")
	}

	tm.Record(3 * time.Millisecond)
	tm.Record(7 * time.Millisecond)

	if got := tm.Total(); got != 10*time.Millisecond {
		t.Errorf("Total() = %s, want 10ms", got)
	}
	if got := tm.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}
