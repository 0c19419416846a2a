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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func writePrefs(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s), 0o600))
	return fn
}

func TestMissingFile(t *testing.T) {
	p, err := prefs.Load(filepath.Join(t.TempDir(), "missing.toml"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Display.Scale, 16)
	test.ExpectEquality(t, p.Display.Foreground, prefs.Colour{R: 100, G: 254, B: 100})
	test.ExpectEquality(t, p.Audio.Tone, 440.0)
	test.ExpectEquality(t, p.Audio.Volume, 0.25)
	test.ExpectEquality(t, p.Path, "")

	km, err := p.Keymap()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(km), 16)
}

func TestLoad(t *testing.T) {
	fn := writePrefs(t, `
[display]
scale = 8
background = "#102030"

[audio]
volume = 0.5

[keypad]
Up = "2"
Down = "8"
`)

	p, err := prefs.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Display.Scale, 8)
	test.ExpectEquality(t, p.Display.Background, prefs.Colour{R: 0x10, G: 0x20, B: 0x30})
	test.ExpectEquality(t, p.Display.Foreground.String(), "#64fe64")
	test.ExpectEquality(t, p.Audio.Volume, 0.5)
	test.ExpectEquality(t, p.Audio.Tone, 440.0)
	test.ExpectEquality(t, p.Path, fn)

	km, err := p.Keymap()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(km), 2)
	k, ok := km.Lookup("up")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 2)
}

func TestMalformed(t *testing.T) {
	_, err := prefs.Load(writePrefs(t, "[display\nscale = 8"))
	test.ExpectSuccess(t, curated.Is(err, prefs.FileError))

	_, err = prefs.Load(writePrefs(t, "[display]\nforeground = \"green\""))
	test.ExpectSuccess(t, curated.Is(err, prefs.FileError))
}

func TestInvalidValues(t *testing.T) {
	for _, s := range []string{
		"[display]\nscale = 0",
		"[display]\nscale = 65",
		"[audio]\ntone = 5.0",
		"[audio]\nvolume = 1.5",
		"[keypad]\nP = \"10\"",
	} {
		_, err := prefs.Load(writePrefs(t, s))
		test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue), s)
	}
}

func TestSave(t *testing.T) {
	p := prefs.Defaults()
	p.Display.Scale = 4
	p.Audio.Tone = 880.0
	p.Keypad = map[string]string{"SPACE": "5"}

	fn := filepath.Join(t.TempDir(), "prefs.toml")
	test.DemandSuccess(t, p.Save(fn))

	l, err := prefs.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.Display.Scale, 4)
	test.ExpectEquality(t, l.Audio.Tone, 880.0)
	test.ExpectEquality(t, l.Display.Foreground, p.Display.Foreground)
	test.ExpectEquality(t, l.Keypad["SPACE"], "5")
}

func TestColourRGBA(t *testing.T) {
	var c prefs.Colour
	test.DemandSuccess(t, c.UnmarshalText([]byte("#102030")))
	rgba := c.RGBA()
	test.ExpectEquality(t, rgba.R, uint8(0x10))
	test.ExpectEquality(t, rgba.G, uint8(0x20))
	test.ExpectEquality(t, rgba.B, uint8(0x30))
	test.ExpectEquality(t, rgba.A, uint8(0xff))
}
