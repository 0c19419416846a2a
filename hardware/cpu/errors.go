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

package cpu

// Sentinal error patterns.
const (
	UnsupportedOpcode = "cpu: unsupported opcode (%s at %#04x)"
	StackOverflow     = "cpu: stack overflow (call at %#04x)"
	StackUnderflow    = "cpu: stack underflow (return at %#04x)"

	// memory errors are wrapped with MemoryFault. use curated.Has() to test
	// for the underlying memory error
	MemoryFault = "cpu: %v"
)
