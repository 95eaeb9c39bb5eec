// hal/hal.go
//
// Package hal is an in-memory stand-in for a microcontroller platform API.
// Firmware-style logic calls the same surface it would on hardware (pin
// writes, millis/delay, serial prints, HTTP fetches, flash file reads) while
// every model records its calls and lets a test inject the values it returns.
//
// Each model is observable, controllable, and resettable. The models are
// single-threaded by design: nothing here blocks, sleeps, or spawns a
// goroutine, and exactly one test is assumed to execute at a time. The one
// discipline callers must keep is resetting state before each test body —
// wire Board.Reset (or hal.ResetAll) as the runner's before-each hook.
package hal

import "boardsim-go/text"

// Logical pin levels and modes, matching the platform constants firmware
// code is written against.
const (
	Low  = 0
	High = 1

	ModeInput       = 0
	ModeOutput      = 1
	ModeInputPullup = 2
)

// DigitalIO is the capability handle for pin access. Firmware that takes a
// DigitalIO instead of calling the ambient functions can be tested against
// any model instance.
type DigitalIO interface {
	PinMode(pin, mode int)
	Write(pin, level int)
	Read(pin int) int
}

// Ticker is the capability handle for elapsed time and delay requests.
type Ticker interface {
	Millis() int64
	Delay(ms int)
}

// Printer is the capability handle for console output.
type Printer interface {
	Begin(baud int)
	Print(v any)
	Println(v any)
}

// WebClient is the capability handle for the single-request HTTP surface.
type WebClient interface {
	Begin(url text.Value)
	SetTimeout(ms int)
	Get() int
	GetString() text.Value
	End()
}

// FileSystem is the capability handle for the flash filesystem surface.
type FileSystem interface {
	Mount(format bool) bool
	Open(path, mode string) *File
}

// Board bundles one instance of every simulated peripheral. Models never own
// each other; Reset fans out to all of them so no state leaks between tests.
type Board struct {
	Pins   *Pins
	Clock  *Clock
	Serial *Console
	HTTP   *Client
	Flash  *FlashFS
	Wire   *I2CBus
}

// NewBoard creates a board with every model in its default state.
func NewBoard() *Board {
	return &Board{
		Pins:   NewPins(),
		Clock:  NewClock(),
		Serial: NewConsole(),
		HTTP:   NewClient(),
		Flash:  NewFlashFS(),
		Wire:   NewI2CBus(),
	}
}

// Reset restores every model to a clean state and rebases the clock.
func (b *Board) Reset() {
	b.Pins.Reset()
	b.Clock.Reset()
	b.Serial.Reset()
	b.HTTP.Reset()
	b.Flash.Reset()
	b.Wire.Reset()
}

// Default is the ambient board the package-level platform functions bind to.
// Production-style firmware calls hal.DigitalWrite and friends; tests reach
// into Default's models for injection and assertions, or construct their own
// Board and pass capability handles explicitly.
var Default = NewBoard()

// ResetAll resets the ambient board.
func ResetAll() { Default.Reset() }

// Ambient platform API, delegating to Default.

func PinMode(pin, mode int)   { Default.Pins.PinMode(pin, mode) }
func DigitalWrite(pin, l int) { Default.Pins.Write(pin, l) }
func DigitalRead(pin int) int { return Default.Pins.Read(pin) }
func Millis() int64           { return Default.Clock.Millis() }
func Delay(ms int)            { Default.Clock.Delay(ms) }
