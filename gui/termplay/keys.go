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

package termplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/userinput"
)

// control bytes with special meaning
const (
	ctrlC  = 0x03
	escape = 0x1b
)

// the number of frames after which a key is released if it has not been seen
// again. this should be longer than the gap between auto-repeated key presses
const releaseFrames = 15

// keys that are currently considered to be held down. the value is the number
// of frames remaining before the key is released
type held map[string]int

// translate bytes read from the terminal into events. keys already held down
// have their release counter restarted and do not produce another event
func (h held) translate(data []byte) []userinput.Event {
	var events []userinput.Event

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch {
		case c == ctrlC:
			return append(events, userinput.EventQuit{})

		case c == escape:
			// a lone escape is a quit request. an escape followed by
			// anything else is the start of a control sequence (eg. cursor
			// keys) which is discarded along with the rest of the data
			if i+1 >= len(data) {
				return append(events, userinput.EventQuit{})
			}
			return events

		case c == ' ':
			events = h.press(events, "Space")

		case c > ' ' && c < 0x7f:
			events = h.press(events, strings.ToUpper(string(rune(c))))
		}
	}

	return events
}

func (h held) press(events []userinput.Event, key string) []userinput.Event {
	if _, ok := h[key]; !ok {
		events = append(events, userinput.EventKeyboard{Key: key, Down: true})
	}
	h[key] = releaseFrames
	return events
}

// advance the release counters by one frame. keys that have reached the end of
// their count are released
func (h held) tick() []userinput.Event {
	var events []userinput.Event
	for k, n := range h {
		n--
		if n <= 0 {
			delete(h, k)
			events = append(events, userinput.EventKeyboard{Key: k, Down: false})
		} else {
			h[k] = n
		}
	}
	return events
}
