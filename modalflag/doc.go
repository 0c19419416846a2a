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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then processed with
// Parse(). Calling Parse() with no modes defined is similar to the Parse()
// function of the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags and arguments. Modes
// are listed with AddSubModes(). The first mode in the list is the default:
//
//	md.AddSubModes("run", "perform")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 16, "pixel scaling")
//		_, _ = md.Parse()
//		...
//	}
//
// Mode comparisons are case insensitive. Mode() always returns the mode name in
// upper case.
//
// If the first argument is not a listed mode then the default mode is selected
// and the argument is left for the next call to Parse(). This means the default
// mode can be used without naming it:
//
//	gopher8 rom.ch8
//	gopher8 run rom.ch8
package modalflag
