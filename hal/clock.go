// hal/clock.go
package hal

import "time"

// Clock is the virtual monotonic time source. Elapsed time is measured
// against a real monotonic reference so durations stay representative, but
// the zero point is rebased on every reset, giving each test a fresh start.
// Delay never sleeps: it only records the requested milliseconds, which is
// the contract firmware can rely on in tests ("a delay was requested for N
// ms", not "N ms actually elapsed").
type Clock struct {
	epoch  time.Time
	delays []int
}

func NewClock() *Clock {
	return &Clock{epoch: time.Now()}
}

// Millis returns milliseconds elapsed since the last reset instant.
func (c *Clock) Millis() int64 {
	return time.Since(c.epoch).Milliseconds()
}

// Delay records a delay request without blocking.
func (c *Clock) Delay(ms int) {
	c.delays = append(c.delays, ms)
}

// Delays returns a copy of the delay-request log since the last reset.
func (c *Clock) Delays() []int {
	return append([]int(nil), c.delays...)
}

// Reset rebases the zero point to now and clears the delay log.
func (c *Clock) Reset() {
	c.epoch = time.Now()
	c.delays = nil
}

var _ Ticker = (*Clock)(nil)
