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

// Package termplay is a front end for the emulation that runs in a terminal.
// The display is drawn with ANSI half-block characters so that each character
// cell shows two pixels, one above the other. The terminal must be at least
// 64 columns wide and 17 rows high.
//
// The terminal is put into raw mode and bytes read from it are translated into
// userinput events. Terminals do not report key releases so a key is released
// automatically a short time after it was last seen. Keys that auto-repeat
// when held down will stay pressed.
//
// Ctrl-C and Escape produce a userinput.EventQuit.
package termplay
