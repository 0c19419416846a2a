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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service retrieves every outstanding SDL event and translates it into a
// userinput event. Translated events are queued until they are polled.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.events.Push(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			// key repeats are of no interest. the keypad remembers which keys
			// are held down
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Keysym.Sym == sdl.K_ESCAPE {
					scr.events.Push(userinput.EventQuit{})
					continue
				}
				scr.events.Push(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true})
			case sdl.KEYUP:
				scr.events.Push(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false})
			}
		}
	}
}

// PollEvent implements the userinput.Source interface. SDL is serviced before
// the oldest outstanding event is returned.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) PollEvent() (userinput.Event, bool) {
	scr.Service()
	return scr.events.PollEvent()
}
