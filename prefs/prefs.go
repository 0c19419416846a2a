// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/userinput"
)

// Sentinal error patterns.
const (
	FileError    = "prefs: %v"
	InvalidValue = "prefs: invalid value for %s (%v)"
)

// DefaultFilename is the name of the preferences file in the resource
// directory.
const DefaultFilename = "prefs.toml"

// DefaultPath returns the path to the default preferences file.
func DefaultPath() string {
	return paths.ResourcePath(DefaultFilename)
}

// Colour is an RGB colour. In the preferences file a colour is written as a
// string of the form "#rrggbb".
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Colour) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 {
		return fmt.Errorf("colour must be of the form #rrggbb (%s)", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("colour must be of the form #rrggbb (%s)", text)
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return nil
}

// RGBA returns the colour as an opaque color.RGBA value.
func (c Colour) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Display preferences.
type Display struct {
	// the size of each CHIP-8 pixel in host pixels
	Scale int `toml:"scale"`

	Foreground Colour `toml:"foreground"`
	Background Colour `toml:"background"`
}

// Audio preferences.
type Audio struct {
	// frequency of the tone in Hz
	Tone float64 `toml:"tone"`

	// volume in the range 0.0 to 1.0
	Volume float64 `toml:"volume"`
}

// Preferences for the application.
type Preferences struct {
	Display Display           `toml:"display"`
	Audio   Audio             `toml:"audio"`
	Keypad  map[string]string `toml:"keypad"`

	// the file the preferences were loaded from. empty if the preferences
	// are the defaults
	Path string `toml:"-"`
}

// Limits of preference values.
const (
	MinScale  = 1
	MaxScale  = 64
	MinTone   = 20.0
	MaxTone   = 20000.0
	MinVolume = 0.0
	MaxVolume = 1.0
)

// Defaults returns the default preferences.
func Defaults() *Preferences {
	return &Preferences{
		Display: Display{
			Scale:      16,
			Foreground: Colour{R: 100, G: 254, B: 100},
			Background: Colour{R: 0, G: 0, B: 0},
		},
		Audio: Audio{
			Tone:   440.0,
			Volume: 0.25,
		},
	}
}

// Load preferences from the named file. Values missing from the file keep
// their default value. A file that does not exist results in the default
// preferences and no error.
func Load(path string) (*Preferences, error) {
	p := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "prefs", "no preferences file (%s). using defaults", path)
			return p, nil
		}
		return nil, curated.Errorf(FileError, err)
	}

	md, err := toml.Decode(string(data), p)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	for _, k := range md.Undecoded() {
		logger.Logf(logger.Allow, "prefs", "unrecognised key: %s", k)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.Path = path
	logger.Logf(logger.Allow, "prefs", "loaded %s", path)

	return p, nil
}

// Validate checks that all values are within their limits.
func (p *Preferences) Validate() error {
	if p.Display.Scale < MinScale || p.Display.Scale > MaxScale {
		return curated.Errorf(InvalidValue, "display.scale", p.Display.Scale)
	}
	if p.Audio.Tone < MinTone || p.Audio.Tone > MaxTone {
		return curated.Errorf(InvalidValue, "audio.tone", p.Audio.Tone)
	}
	if p.Audio.Volume < MinVolume || p.Audio.Volume > MaxVolume {
		return curated.Errorf(InvalidValue, "audio.volume", p.Audio.Volume)
	}
	if _, err := p.Keymap(); err != nil {
		return curated.Errorf(InvalidValue, "keypad", err)
	}
	return nil
}

// Keymap returns the keymap described by the keypad section. The default
// keymap is returned if there is no keypad section.
func (p *Preferences) Keymap() (userinput.Keymap, error) {
	if len(p.Keypad) == 0 {
		return userinput.DefaultKeymap(), nil
	}
	return userinput.NewKeymap(p.Keypad)
}

// Save the preferences to the named file.
func (p *Preferences) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

func (p *Preferences) String() string {
	return fmt.Sprintf("scale=%d fg=%s bg=%s tone=%.1fHz volume=%.2f",
		p.Display.Scale, p.Display.Foreground, p.Display.Background, p.Audio.Tone, p.Audio.Volume)
}
