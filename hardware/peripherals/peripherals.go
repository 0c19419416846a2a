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

// Package peripherals defines the capabilities the CPU requires of the
// display, keyboard and sound devices. The CPU is given implementations of
// these interfaces on creation and never deals with the real devices
// directly.
package peripherals

import "github.com/jetsetilly/gopher8/userinput"

// Display is the capability to change and show the 64x32 monochrome screen.
type Display interface {
	// Clear unsets every pixel.
	Clear()

	// SetPixel toggles the pixel at x, y. Coordinates outside of the screen
	// are wrapped. Returns true if the pixel was previously set (ie. the
	// pixel is now unset).
	SetPixel(x, y int) bool

	// Render flushes the current state of the screen to the output surface.
	Render() error
}

// Keyboard is the capability to read the state of the sixteen key keypad.
type Keyboard interface {
	// HandleEvent updates the state of the keyboard from user input.
	HandleEvent(ev userinput.Event) error

	// IsPressed returns true if the key (0 to 15) is currently down.
	IsPressed(key uint8) bool

	// TakeLastPressedKey returns the most recently pressed key since the
	// previous call. The second return value is false if no key has been
	// pressed.
	TakeLastPressedKey() (uint8, bool)
}

// Sound is the capability to turn the tone generator on and off.
type Sound interface {
	TurnOn() error
	TurnOff() error
}

// FrameEnder is an optional interface for peripherals that need to know when
// a frame has been completed.
type FrameEnder interface {
	EndFrame() error
}
