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

// Package sdlplay is a simple SDL front end for the emulation. It opens a
// window showing the display and translates SDL keyboard events into
// userinput events.
//
// The SdlPlay type implements the display.PixelRenderer interface and the
// userinput.Source interface. The Beeper type implements the
// sound.AudioMixer interface and plays a square wave through the SDL audio
// queue.
//
// SDL must only be used from the main thread. The caller should lock the
// main goroutine to the OS thread before calling NewSdlPlay() and should
// drive the emulation from that goroutine.
package sdlplay
