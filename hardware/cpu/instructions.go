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

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// the dispatch table is indexed by the top nibble of the opcode. groups 0x0,
// 0x8, 0xe and 0xf have a secondary selector that is decoded by the group
// function
var dispatch = [16]func(mc *CPU, op Opcode) error{
	(*CPU).system,
	(*CPU).jump,
	(*CPU).call,
	(*CPU).skipEqualImmediate,
	(*CPU).skipNotEqualImmediate,
	(*CPU).skipEqualRegister,
	(*CPU).loadImmediate,
	(*CPU).addImmediate,
	(*CPU).arithmetic,
	(*CPU).skipNotEqualRegister,
	(*CPU).loadIndex,
	(*CPU).jumpOffset,
	(*CPU).random,
	(*CPU).draw,
	(*CPU).skipKey,
	(*CPU).misc,
}

func (mc *CPU) unsupported(op Opcode) error {
	return curated.Errorf(UnsupportedOpcode, op, mc.LastResult.Address)
}

// skip the next instruction. the program counter has already been advanced
// past the current instruction
func (mc *CPU) skip() {
	mc.PC += 2
}

// 00E0 and 00EE
func (mc *CPU) system(op Opcode) error {
	switch op {
	case 0x00e0:
		mc.display.Clear()
	case 0x00ee:
		address, ok := mc.Stack.Pop()
		if !ok {
			return curated.Errorf(StackUnderflow, mc.LastResult.Address)
		}
		mc.PC = address
	default:
		// 0NNN machine code routines are not supported
		return mc.unsupported(op)
	}
	return nil
}

// 1NNN
func (mc *CPU) jump(op Opcode) error {
	mc.PC = op.NNN()
	return nil
}

// 2NNN. the return address is the address of the instruction following the
// call
func (mc *CPU) call(op Opcode) error {
	if !mc.Stack.Push(mc.PC) {
		return curated.Errorf(StackOverflow, mc.LastResult.Address)
	}
	mc.PC = op.NNN()
	return nil
}

// 3XNN
func (mc *CPU) skipEqualImmediate(op Opcode) error {
	if mc.V[op.X()] == op.NN() {
		mc.skip()
	}
	return nil
}

// 4XNN
func (mc *CPU) skipNotEqualImmediate(op Opcode) error {
	if mc.V[op.X()] != op.NN() {
		mc.skip()
	}
	return nil
}

// 5XY0. the lowest nibble is ignored
func (mc *CPU) skipEqualRegister(op Opcode) error {
	if mc.V[op.X()] == mc.V[op.Y()] {
		mc.skip()
	}
	return nil
}

// 6XNN
func (mc *CPU) loadImmediate(op Opcode) error {
	mc.V[op.X()] = op.NN()
	return nil
}

// 7XNN. the flag register is not affected
func (mc *CPU) addImmediate(op Opcode) error {
	mc.V[op.X()] += op.NN()
	return nil
}

// 8XYN. the flag register is written after the result so that when X is VF
// the flag value is the one that survives
func (mc *CPU) arithmetic(op Opcode) error {
	x := op.X()
	vx := mc.V[x]
	vy := mc.V[op.Y()]

	switch op.N() {
	case 0x0:
		mc.V[x] = vy
	case 0x1:
		mc.V[x] = vx | vy
	case 0x2:
		mc.V[x] = vx & vy
	case 0x3:
		mc.V[x] = vx ^ vy
	case 0x4:
		mc.V[x] = vx + vy
		mc.V[VF] = flag(uint16(vx)+uint16(vy) > 0xff)
	case 0x5:
		// VF is set when there is no borrow
		mc.V[x] = vx - vy
		mc.V[VF] = flag(vx >= vy)
	case 0x6:
		mc.V[x] = vx >> 1
		mc.V[VF] = vx & 0x01
	case 0x7:
		mc.V[x] = vy - vx
		mc.V[VF] = flag(vy >= vx)
	case 0xe:
		mc.V[x] = vx << 1
		mc.V[VF] = vx >> 7
	default:
		return mc.unsupported(op)
	}

	return nil
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// 9XY0. the lowest nibble is ignored
func (mc *CPU) skipNotEqualRegister(op Opcode) error {
	if mc.V[op.X()] != mc.V[op.Y()] {
		mc.skip()
	}
	return nil
}

// ANNN
func (mc *CPU) loadIndex(op Opcode) error {
	mc.I = op.NNN()
	return nil
}

// BNNN. the result may be outside of the address space, in which case the
// next fetch will fail
func (mc *CPU) jumpOffset(op Opcode) error {
	mc.PC = op.NNN() + uint16(mc.V[0])
	return nil
}

// CXNN
func (mc *CPU) random(op Opcode) error {
	mc.V[op.X()] = mc.rnd.Byte() & op.NN()
	return nil
}

// DXYN. sprites are always eight pixels wide. each row of the sprite is one
// byte with the most significant bit being the leftmost pixel
func (mc *CPU) draw(op Opcode) error {
	x := int(mc.V[op.X()])
	y := int(mc.V[op.Y()])

	mc.V[VF] = 0

	for row := 0; row < int(op.N()); row++ {
		data, err := mc.mem.Read(mc.I + uint16(row))
		if err != nil {
			return curated.Errorf(MemoryFault, err)
		}

		for col := 0; col < 8; col++ {
			if data&(0x80>>col) == 0 {
				continue
			}
			if mc.display.SetPixel(x+col, y+row) {
				mc.V[VF] = 1
			}
		}
	}

	return nil
}

// EX9E and EXA1
func (mc *CPU) skipKey(op Opcode) error {
	key := mc.V[op.X()]

	switch op.NN() {
	case 0x9e:
		if mc.keyboard.IsPressed(key) {
			mc.skip()
		}
	case 0xa1:
		if !mc.keyboard.IsPressed(key) {
			mc.skip()
		}
	default:
		return mc.unsupported(op)
	}

	return nil
}

// FXNN
func (mc *CPU) misc(op Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07:
		mc.V[x] = mc.DT

	case 0x0a:
		// the key code is delivered by Resume()
		mc.state = WaitingForKey
		mc.waitRegister = x
		logger.Logf(logger.Allow, "cpu", "waiting for key (V%X) at %#04x", x, mc.LastResult.Address)

	case 0x15:
		mc.DT = mc.V[x]

	case 0x18:
		mc.ST = mc.V[x]

	case 0x1e:
		mc.I += uint16(mc.V[x])

	case 0x29:
		mc.I = memory.GlyphAddress(mc.V[x])

	case 0x33:
		v := mc.V[x]
		digits := [3]uint8{v / 100, (v / 10) % 10, v % 10}
		for i, d := range digits {
			if err := mc.mem.Write(mc.I+uint16(i), d); err != nil {
				return curated.Errorf(MemoryFault, err)
			}
		}

	case 0x55:
		// I is left pointing at the byte after the last register stored
		for i := uint8(0); i <= x; i++ {
			if err := mc.mem.Write(mc.I, mc.V[i]); err != nil {
				return curated.Errorf(MemoryFault, err)
			}
			mc.I++
		}

	case 0x65:
		for i := uint8(0); i <= x; i++ {
			v, err := mc.mem.Read(mc.I)
			if err != nil {
				return curated.Errorf(MemoryFault, err)
			}
			mc.V[i] = v
			mc.I++
		}

	default:
		return mc.unsupported(op)
	}

	return nil
}
