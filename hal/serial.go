// hal/serial.go
package hal

import (
	"fmt"

	"boardsim-go/text"
	"boardsim-go/x/conv"
)

// Console models the serial console. Every print is recorded twice: as one
// fragment in a per-call log (for "was this exact line printed" assertions)
// and appended to a single running transcript (for "does the full output
// contain X" assertions). Println adds the line terminator to the transcript
// only, never to the logged fragment.
type Console struct {
	baud       int
	beginCount int
	prints     []string
	printlns   []string
	out        []byte
}

func NewConsole() *Console {
	return &Console{}
}

// Begin records the configured baud rate. Calling it again is fine; every
// call is counted.
func (c *Console) Begin(baud int) {
	c.baud = baud
	c.beginCount++
}

// Print renders v and records it as one fragment.
func (c *Console) Print(v any) {
	s := render(v)
	c.prints = append(c.prints, s)
	c.out = append(c.out, s...)
}

// Println renders v, records it as one fragment, and terminates the line in
// the transcript.
func (c *Console) Println(v any) {
	s := render(v)
	c.printlns = append(c.printlns, s)
	c.out = append(c.out, s...)
	c.out = append(c.out, '\n')
}

// render accepts the value forms the platform print API takes: text values,
// strings, raw bytes, a single character, and integers.
func render(v any) string {
	switch x := v.(type) {
	case text.Value:
		return x.String()
	case string:
		return x
	case []byte:
		return string(x)
	case byte:
		return string([]byte{x})
	case int:
		return conv.ItoaString(int64(x))
	case int64:
		return conv.ItoaString(x)
	case uint32:
		return conv.ItoaString(int64(x))
	default:
		return fmt.Sprint(v)
	}
}

// PresetBaud sets the baud without counting a Begin call. Test-side only.
func (c *Console) PresetBaud(baud int) {
	c.baud = baud
}

// Baud returns the most recently configured baud rate.
func (c *Console) Baud() int { return c.baud }

// BeginCount returns how many times Begin was called since the last reset.
func (c *Console) BeginCount() int { return c.beginCount }

// PrintCalls returns a copy of the Print fragment log.
func (c *Console) PrintCalls() []string {
	return append([]string(nil), c.prints...)
}

// PrintlnCalls returns a copy of the Println fragment log.
func (c *Console) PrintlnCalls() []string {
	return append([]string(nil), c.printlns...)
}

// Output returns the full transcript since the last reset.
func (c *Console) Output() string { return string(c.out) }

// Reset zeroes the counters and clears both logs and the transcript.
func (c *Console) Reset() {
	c.baud = 0
	c.beginCount = 0
	c.prints = nil
	c.printlns = nil
	c.out = nil
}

var _ Printer = (*Console)(nil)
