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

// Package keypad implements the sixteen key hexadecimal keypad. The Keypad
// type satisfies the peripherals.Keyboard interface and so can be given to the
// CPU.
//
// Host key events are translated into keypad keys with a userinput.Keymap.
// Events for host keys that are not in the keymap are ignored.
package keypad

import (
	"github.com/jetsetilly/gopher8/userinput"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad implements the peripherals.Keyboard interface.
type Keypad struct {
	keymap userinput.Keymap

	pressed [NumKeys]bool

	// the most recent key press. cleared by TakeLastPressedKey()
	last    uint8
	hasLast bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type. If
// the keymap is nil then the default keymap is used.
func NewKeypad(keymap userinput.Keymap) *Keypad {
	if keymap == nil {
		keymap = userinput.DefaultKeymap()
	}
	return &Keypad{
		keymap: keymap,
	}
}

// Reset releases all keys and forgets the last key pressed.
func (kp *Keypad) Reset() {
	kp.pressed = [NumKeys]bool{}
	kp.hasLast = false
}

// HandleEvent implements the peripherals.Keyboard interface.
func (kp *Keypad) HandleEvent(ev userinput.Event) error {
	switch ev := ev.(type) {
	case userinput.EventKeyboard:
		key, ok := kp.keymap.Lookup(ev.Key)
		if !ok {
			return nil
		}
		kp.pressed[key] = ev.Down
		if ev.Down {
			kp.last = key
			kp.hasLast = true
		}
	}
	return nil
}

// IsPressed implements the peripherals.Keyboard interface.
func (kp *Keypad) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return kp.pressed[key]
}

// TakeLastPressedKey implements the peripherals.Keyboard interface.
func (kp *Keypad) TakeLastPressedKey() (uint8, bool) {
	if !kp.hasLast {
		return 0, false
	}
	kp.hasLast = false
	return kp.last, true
}
