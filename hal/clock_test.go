package hal

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestClockMillisMonotonic(t *testing.T) {
	c := NewClock()
	a := c.Millis()
	b := c.Millis()
	if a < 0 {
		t.Fatalf("Millis went negative: %d", a)
	}
	if b < a {
		t.Fatalf("Millis went backwards: %d then %d", a, b)
	}
}

func TestClockDelayNeverBlocks(t *testing.T) {
	c := NewClock()
	start := time.Now()
	c.Delay(10_000)
	c.Delay(60_000)
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("Delay actually blocked for %v", elapsed)
	}
	if diff := cmp.Diff([]int{10_000, 60_000}, c.Delays()); diff != "" {
		t.Fatalf("delay log mismatch (-want +got):\n%s", diff)
	}
}

func TestClockResetRebases(t *testing.T) {
	c := NewClock()
	c.Delay(500)
	time.Sleep(5 * time.Millisecond)
	before := c.Millis()
	if before < 5 {
		t.Fatalf("expected at least 5ms elapsed, got %d", before)
	}

	c.Reset()
	if got := c.Millis(); got > before {
		t.Fatalf("Millis after reset = %d, want fresh zero point (was %d)", got, before)
	}
	if n := len(c.Delays()); n != 0 {
		t.Fatalf("delay log after reset has %d entries", n)
	}
}
