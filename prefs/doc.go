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

// Package prefs loads the user preferences from a TOML file. The default
// location of the file is given by DefaultPath(). A missing file is not an
// error and results in the default preferences.
//
// An example preferences file, with the default values:
//
//	[display]
//	scale = 16
//	foreground = "#64fe64"
//	background = "#000000"
//
//	[audio]
//	tone = 440.0
//	volume = 0.25
//
//	[keypad]
//	1 = "1"
//	2 = "2"
//	3 = "3"
//	4 = "C"
//	Q = "4"
//	...
//
// The keypad section maps host key names to keypad keys. If the section is
// present it replaces the default keymap entirely.
package prefs
