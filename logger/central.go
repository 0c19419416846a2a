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

package logger

import "io"

// the number of entries kept by the central logger. more than enough to
// cover the start up of the emulation and the final moments before a halt
const maxCentral = 256

// the process-wide logger used by the package level functions
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, pattern string, args ...any) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear removes every entry from the central logger.
func Clear() {
	central.Clear()
}

// Write every entry in the central logger to output.
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the most recent entries in the central logger to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries to output as they are added to the central
// logger. A nil value stops the echo.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
