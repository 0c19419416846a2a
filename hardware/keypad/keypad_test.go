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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypad(t *testing.T) {
	kp := keypad.NewKeypad(nil)

	_, ok := kp.TakeLastPressedKey()
	test.ExpectFailure(t, ok)

	// W is key 5 in the default keymap
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "w", Down: true}))
	test.ExpectSuccess(t, kp.IsPressed(5))
	test.ExpectFailure(t, kp.IsPressed(6))

	key, ok := kp.TakeLastPressedKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 5)

	// last pressed key is cleared once taken
	_, ok = kp.TakeLastPressedKey()
	test.ExpectFailure(t, ok)

	// key remains down until released
	test.ExpectSuccess(t, kp.IsPressed(5))
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "W", Down: false}))
	test.ExpectFailure(t, kp.IsPressed(5))

	// releasing a key does not count as a key press
	_, ok = kp.TakeLastPressedKey()
	test.ExpectFailure(t, ok)
}

func TestMostRecentKey(t *testing.T) {
	kp := keypad.NewKeypad(nil)
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "1", Down: true}))
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "V", Down: true}))

	key, ok := kp.TakeLastPressedKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, key, 0x0f)
	test.ExpectSuccess(t, kp.IsPressed(0x01))
	test.ExpectSuccess(t, kp.IsPressed(0x0f))
}

func TestIgnoredEvents(t *testing.T) {
	kp := keypad.NewKeypad(nil)
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "P", Down: true}))
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventQuit{}))
	_, ok := kp.TakeLastPressedKey()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, kp.IsPressed(0xff))
}

func TestCustomKeymap(t *testing.T) {
	km, err := userinput.NewKeymap(map[string]string{"Up": "2", "Down": "0x8"})
	test.DemandSuccess(t, err)

	kp := keypad.NewKeypad(km)
	test.ExpectSuccess(t, kp.HandleEvent(userinput.EventKeyboard{Key: "down", Down: true}))
	test.ExpectSuccess(t, kp.IsPressed(8))

	kp.Reset()
	test.ExpectFailure(t, kp.IsPressed(8))
	_, ok := kp.TakeLastPressedKey()
	test.ExpectFailure(t, ok)
}
