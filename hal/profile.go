// hal/profile.go
package hal

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Profile is a small JSON board description a test rig can apply before
// running firmware logic: the console baud it should see configured, the
// flash stream shape, and preset pin levels.
//
// Example:
//
//	{"baud": 115200, "flash_stream_len": 4, "flash_filler": "x",
//	 "pins": {"13": 1, "2": 0}}
type Profile struct {
	Baud           int            `json:"baud"`
	FlashStreamLen int            `json:"flash_stream_len"`
	FlashFiller    string         `json:"flash_filler"`
	Pins           map[string]int `json:"pins"`
}

// LoadProfile parses a JSON board profile.
func LoadProfile(raw []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse board profile: %w", err)
	}
	if len(p.FlashFiller) > 1 {
		return Profile{}, fmt.Errorf("parse board profile: filler %q is not a single byte", p.FlashFiller)
	}
	for k := range p.Pins {
		if _, err := strconv.Atoi(k); err != nil {
			return Profile{}, fmt.Errorf("parse board profile: pin key %q: %w", k, err)
		}
	}
	return p, nil
}

// Apply presets the board from the profile. Pin levels are applied with
// Preset, so they shape what firmware reads without appearing in the write
// log. Zero-valued fields leave the corresponding model untouched.
func (p Profile) Apply(b *Board) {
	if p.Baud > 0 {
		b.Serial.PresetBaud(p.Baud)
	}
	if p.FlashStreamLen > 0 {
		b.Flash.SetStreamLen(p.FlashStreamLen)
	}
	if p.FlashFiller != "" {
		b.Flash.SetFiller(p.FlashFiller[0])
	}
	for k, level := range p.Pins {
		pin, _ := strconv.Atoi(k) // validated in LoadProfile
		b.Pins.Preset(pin, level)
	}
}
