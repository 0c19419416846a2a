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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// Packages that create curated errors should export the patterns they use as
// string constants. The pattern then acts as a sentinel that callers can test
// for with the Is() and Has() functions. For example, the cpu package exports
// the UnsupportedOpcode pattern:
//
//	const UnsupportedOpcode = "cpu: unsupported opcode (%04X) at (%#04x)"
//
//	err := curated.Errorf(UnsupportedOpcode, op, pc)
//
//	if curated.Is(err, cpu.UnsupportedOpcode) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("chip8: %v", err)
//
//	if curated.Has(f, cpu.UnsupportedOpcode) {
//		fmt.Println("true")
//	}
//
// In this example a call to Is() would fail because f was created with the
// pattern "chip8: %v".
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': '. For
// example:
//
//	part 1: part 2: part 3
//
// A chain of "romloader: romloader: file not found" will be printed as
// "romloader: file not found".
//
// Curated errors that wrap another error (any error value in the list of
// placeholder values) also implement Unwrap(), meaning that the errors.Is()
// and errors.As() functions in the standard library work as expected on
// errors from the os package and the like.
package curated
