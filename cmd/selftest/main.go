// cmd/selftest/main.go
//
// Host self-test: runs firmware-style routines against the ambient board and
// checks what the models recorded. The process exits with the number of
// failed checks, so a zero status means the simulation layer held every
// contract the routines relied on.
package main

import (
	"os"

	"boardsim-go/hal"
	"boardsim-go/harness"
	"boardsim-go/text"
)

// --- firmware-style routines driven by the checks -----------------------------

// pulse drives a pin high for ms milliseconds, the way a status LED or a
// relay coil would be exercised.
func pulse(io hal.DigitalIO, clk hal.Ticker, pin, ms int) {
	io.PinMode(pin, hal.ModeOutput)
	io.Write(pin, hal.High)
	clk.Delay(ms)
	io.Write(pin, hal.Low)
}

// announce prints a boot banner the way setup() would.
func announce(con hal.Printer, version int) {
	con.Begin(115200)
	con.Print("boot v")
	con.Println(version)
}

// fetchStatus issues the one HTTP request device code makes and reports the
// outcome on the console.
func fetchStatus(web hal.WebClient, con hal.Printer, url string) int {
	web.Begin(text.New(url))
	web.SetTimeout(3000)
	code := web.Get()
	if code == 200 {
		con.Println(web.GetString())
	} else {
		con.Print("http error ")
		con.Println(code)
	}
	web.End()
	return code
}

// readConfigLine mounts flash and reads one terminated line from a file.
func readConfigLine(fs hal.FileSystem) text.Value {
	if !fs.Mount(false) {
		return text.Value{}
	}
	f := fs.Open("/config.txt", "r")
	defer f.Close()
	return f.ReadStringUntil('\n')
}

// --- checks -------------------------------------------------------------------

func registerAll() {
	b := hal.Default

	harness.Register("gpio.pulse", func(t *harness.T) {
		pulse(b.Pins, b.Clock, 13, 250)

		harness.Equal(t, b.Pins.Writes(), []hal.WriteCall{
			{Pin: 13, Level: hal.High},
			{Pin: 13, Level: hal.Low},
		})
		harness.Equal(t, b.Pins.Read(13), hal.Low)
		harness.Equal(t, b.Clock.Delays(), []int{250})
	})

	harness.Register("gpio.unwritten_reads_low", func(t *harness.T) {
		harness.Equal(t, b.Pins.Read(7), hal.Low)
	})

	harness.Register("clock.never_sleeps", func(t *harness.T) {
		before := b.Clock.Millis()
		b.Clock.Delay(60_000)
		harness.Less(t, b.Clock.Millis()-before, int64(1000))
	})

	harness.Register("serial.banner", func(t *harness.T) {
		announce(b.Serial, 3)

		harness.Equal(t, b.Serial.Baud(), 115200)
		harness.Equal(t, b.Serial.BeginCount(), 1)
		harness.Equal(t, b.Serial.Output(), "boot v3\n")
	})

	harness.Register("http.ok_path", func(t *harness.T) {
		b.HTTP.SetResponseBody("all good")

		code := fetchStatus(b.HTTP, b.Serial, "http://sensor.local/status")
		harness.Equal(t, code, 200)
		harness.True(t, b.HTTP.LastURL().EqualString("http://sensor.local/status"))
		harness.Equal(t, b.Serial.Output(), "all good\n")
	})

	harness.Register("http.error_path", func(t *harness.T) {
		b.HTTP.SetResponseCode(404)
		b.HTTP.SetResponseBody("not found")

		code := fetchStatus(b.HTTP, b.Serial, "http://sensor.local/status")
		harness.Equal(t, code, 404)
		harness.Equal(t, b.Serial.Output(), "http error 404\n")
	})

	harness.Register("flash.config_line", func(t *harness.T) {
		b.Flash.SetStreamLen(4)
		b.Flash.SetFiller('k')

		line := readConfigLine(b.Flash)
		harness.True(t, line.EqualString("kkkk"))
		harness.Equal(t, b.Flash.MountCount(), 1)
	})

	harness.Register("text.parse_roundtrip", func(t *harness.T) {
		v := text.New("temp=21;hum=40")
		i := v.IndexOf("hum=")
		harness.GreaterOrEqual(t, i, 0)
		harness.Equal(t, v.Substring(i+4, text.End).ToInt(), 40)
	})

	// The reset fixture proves teardown discipline: whatever a check does to
	// the board, the next one starts clean (BeforeEach) and the fixture's
	// teardown always runs.
	harness.RegisterFixture("board.reset_between_checks", boardFixture{}, func(t *harness.T) {
		harness.Less(t, hal.Millis(), int64(1000))
		harness.Equal(t, len(hal.Default.Pins.Writes()), 0)
	})
}

type boardFixture struct{}

func (boardFixture) SetUp()    { hal.ResetAll() }
func (boardFixture) TearDown() { hal.ResetAll() }

func main() {
	registerAll()
	r := harness.NewRunner(harness.Config{BeforeEach: hal.ResetAll})
	os.Exit(r.RunAll())
}
