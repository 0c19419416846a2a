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

import "fmt"

// Opcode is a single 16 bit instruction word. The fields of the opcode are
// derived on demand and never stored.
//
//	 15   12 11    8 7     4 3     0
//	+-------+-------+-------+-------+
//	| group |   X   |   Y   |   N   |
//	+-------+-------+-------+-------+
//	                |      NN       |
//	        +-------+---------------+
//	        |         NNN           |
//	        +-----------------------+
type Opcode uint16

// Group is the top nibble of the opcode. It selects the instruction family.
func (op Opcode) Group() uint8 {
	return uint8(op >> 12)
}

// X is the second nibble. Usually a register index.
func (op Opcode) X() uint8 {
	return uint8(op>>8) & 0x0f
}

// Y is the third nibble. Usually a register index.
func (op Opcode) Y() uint8 {
	return uint8(op>>4) & 0x0f
}

// N is the lowest nibble.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0f
}

// NN is the lowest byte.
func (op Opcode) NN() uint8 {
	return uint8(op)
}

// NNN is the lowest twelve bits. Always an address.
func (op Opcode) NNN() uint16 {
	return uint16(op) & 0x0fff
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04X", uint16(op))
}
