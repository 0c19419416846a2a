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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Memory map.
const (
	// Size of the address space in bytes.
	Size = 0x1000

	// Memtop is the highest valid address.
	Memtop = Size - 1

	// GlyphOrigin is the address of the first glyph in the glyph table.
	GlyphOrigin = 0x000

	// ProgramOrigin is the address at which ROMs are loaded and the initial
	// value of the program counter.
	ProgramOrigin = 0x200

	// ProgramSize is the maximum size of a ROM.
	ProgramSize = Size - ProgramOrigin
)

// Sentinal error patterns.
const (
	AddressOutOfRange = "memory: address out of range (%#04x)"
	ROMTooLarge       = "memory: rom too large (%d bytes, maximum is %d)"
)

// Memory is the entire address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The glyph table is installed but the program region is empty.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears the entire address space and reinstalls the glyph table.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = 0
	}
	copy(mem.data[GlyphOrigin:], glyphs[:])
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > Memtop {
		return 0, curated.Errorf(AddressOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write data to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > Memtop {
		return curated.Errorf(AddressOutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// ReadWord reads the big-endian 16 bit value at address. Both bytes must be
// inside the address space.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	hi, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Load resets memory and copies the rom data into the program region, byte
// for byte, starting with the first byte of the rom.
//
// An error is returned if the rom is larger than the program region, in which
// case the existing contents of memory are not changed.
func (mem *Memory) Load(rom []uint8) error {
	if len(rom) > ProgramSize {
		return curated.Errorf(ROMTooLarge, len(rom), ProgramSize)
	}
	mem.Reset()
	copy(mem.data[ProgramOrigin:], rom)
	return nil
}
