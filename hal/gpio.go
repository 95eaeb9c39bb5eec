// hal/gpio.go
package hal

// WriteCall is one recorded digital write, in call order.
type WriteCall struct {
	Pin   int
	Level int
}

// ModeCall is one recorded pin-mode change, in call order.
type ModeCall struct {
	Pin  int
	Mode int
}

// Pins models the digital I/O bank: a last-written-level table plus ordered
// call logs for writes and mode changes. Reads of never-written pins return
// Low. Mode changes are log-only; the model does not gate reads or writes on
// the configured mode.
type Pins struct {
	levels map[int]int
	writes []WriteCall
	modes  []ModeCall
}

func NewPins() *Pins {
	return &Pins{levels: make(map[int]int)}
}

// PinMode records the mode change. It is otherwise a no-op.
func (p *Pins) PinMode(pin, mode int) {
	p.modes = append(p.modes, ModeCall{Pin: pin, Mode: mode})
}

// Write records the call and updates the level table.
func (p *Pins) Write(pin, level int) {
	p.writes = append(p.writes, WriteCall{Pin: pin, Level: level})
	p.levels[pin] = level
}

// Read returns the most recently written level, or Low when the pin was
// never written since the last reset.
func (p *Pins) Read(pin int) int {
	return p.levels[pin]
}

// Preset sets a pin level without logging a write. Test-side only: it shapes
// what firmware will observe before it runs.
func (p *Pins) Preset(pin, level int) {
	p.levels[pin] = level
}

// Writes returns a copy of the write log since the last reset.
func (p *Pins) Writes() []WriteCall {
	return append([]WriteCall(nil), p.writes...)
}

// Modes returns a copy of the mode-change log since the last reset.
func (p *Pins) Modes() []ModeCall {
	return append([]ModeCall(nil), p.modes...)
}

// Reset clears the level table and both logs.
func (p *Pins) Reset() {
	p.levels = make(map[int]int)
	p.writes = nil
	p.modes = nil
}

var _ DigitalIO = (*Pins)(nil)
