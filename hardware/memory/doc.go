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

// Package memory implements the 4096 byte address space of the CHIP-8
// interpreter.
//
// The address space is flat and contains no memory mapped devices. It is
// divided into two regions:
//
//	0x000 - 0x1ff	reserved. the built-in glyphs are stored at the start of this region
//	0x200 - 0xfff	program region. ROMs are loaded at the start of this region
//
// The glyph table contains sixteen glyphs, one for each hexadecimal digit.
// Each glyph is five bytes long, one byte for each row of the glyph. Only the
// upper four bits of each byte are used. The address of the glyph for digit n
// is n * GlyphSize.
//
// Memory is accessed through the Read() and Write() functions. Addresses
// outside of the address space result in an error.
package memory
