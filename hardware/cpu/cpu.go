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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/logger"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flag register.
const VF = 0x0f

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadWord(address uint16) (uint16, error)
}

// Random defines the source of random numbers required by the CPU.
type Random interface {
	Byte() uint8
}

// CPU implements the CHIP-8 interpreter core.
type CPU struct {
	// general purpose registers V0 to VF
	V [NumRegisters]uint8

	// index register. used only as a memory pointer. the value is never
	// clamped to the address space
	I uint16

	PC uint16

	// delay timer and sound timer
	DT uint8
	ST uint8

	Stack Stack

	// LastResult is updated by every call to Step() that executes an
	// instruction
	LastResult Result

	state State

	// the register that will receive the key code when the CPU is resumed
	// from the WaitingForKey state
	waitRegister uint8

	// the error that caused the CPU to halt
	haltErr error

	// whether the sound peripheral has been turned on by the sound timer
	soundOn bool

	mem      Memory
	display  peripherals.Display
	keyboard peripherals.Keyboard
	sound    peripherals.Sound
	rnd      Random
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// peripherals are used by the CPU for the lifetime of the instance.
func NewCPU(mem Memory, display peripherals.Display, keyboard peripherals.Keyboard,
	sound peripherals.Sound, rnd Random) *CPU {

	mc := &CPU{
		mem:      mem,
		display:  display,
		keyboard: keyboard,
		sound:    sound,
		rnd:      rnd,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%#04x I=%#04x DT=%d ST=%d V=% 02x SP=%d (%s)",
		mc.PC, mc.I, mc.DT, mc.ST, mc.V[:], mc.Stack.Depth(), mc.state)
}

// Reset reinitialises all registers and returns the CPU to the Running state.
// The program counter is set to the start of the program region.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.DT = 0
	mc.ST = 0
	mc.Stack.Reset()
	mc.LastResult = Result{}
	mc.state = Running
	mc.waitRegister = 0
	mc.haltErr = nil
	mc.soundOn = false
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// HaltError returns the error that halted the CPU. Returns nil if the CPU has
// not halted.
func (mc *CPU) HaltError() error {
	return mc.haltErr
}

// WaitRegister returns the index of the register that will receive the next
// key press. Only meaningful in the WaitingForKey state.
func (mc *CPU) WaitRegister() uint8 {
	return mc.waitRegister
}

// halt the CPU with the specified error. the error will be returned by all
// future calls to Step()
func (mc *CPU) halt(err error) (Outcome, error) {
	mc.state = Halted
	mc.haltErr = err
	mc.LastResult.Outcome = OutcomeHalted
	logger.Log(logger.Allow, "cpu", err)
	return OutcomeHalted, err
}

// Step fetches, decodes and executes a single instruction.
//
// If the CPU is waiting for a key press then no instruction is executed and
// OutcomeSuspended is returned. If the CPU has halted then no instruction is
// executed and the error that caused the halt is returned.
//
// The program counter is advanced past the instruction before the instruction
// is executed.
func (mc *CPU) Step() (Outcome, error) {
	switch mc.state {
	case Halted:
		return OutcomeHalted, mc.haltErr
	case WaitingForKey:
		return OutcomeSuspended, nil
	}

	address := mc.PC
	w, err := mc.mem.ReadWord(address)
	if err != nil {
		return mc.halt(curated.Errorf(MemoryFault, err))
	}

	op := Opcode(w)
	mc.PC += 2

	mc.LastResult = Result{
		Address: address,
		Opcode:  op,
		Count:   mc.LastResult.Count + 1,
	}

	err = dispatch[op.Group()](mc, op)
	if err != nil {
		return mc.halt(err)
	}

	mc.LastResult.Outcome = OutcomeExecuted
	return OutcomeExecuted, nil
}

// Resume the CPU if it is waiting for a key press. The keyboard is asked for
// the last key pressed since the previous request. If there is such a key then
// the key code is written to the register named by the FX0A instruction and
// the CPU returns to the Running state.
//
// Returns true if the CPU is Running after the call. No instruction is fetched
// by Resume().
func (mc *CPU) Resume() bool {
	switch mc.state {
	case Running:
		return true
	case Halted:
		return false
	}

	key, ok := mc.keyboard.TakeLastPressedKey()
	if !ok {
		return false
	}

	mc.V[mc.waitRegister] = key
	mc.state = Running
	logger.Logf(logger.Allow, "cpu", "resumed with key %X in V%X", key, mc.waitRegister)

	return true
}

// TickTimers decrements the delay and sound timers. It should be called once
// per frame regardless of how many instructions have been executed.
//
// The sound peripheral is turned on while the sound timer is counting down and
// turned off when the sound timer reaches zero. The two timers are independent
// of one another.
func (mc *CPU) TickTimers() error {
	if mc.DT > 0 {
		mc.DT--
	}

	if mc.ST > 0 {
		if !mc.soundOn {
			if err := mc.sound.TurnOn(); err != nil {
				return err
			}
			mc.soundOn = true
		}
		mc.ST--
	}

	if mc.ST == 0 && mc.soundOn {
		if err := mc.sound.TurnOff(); err != nil {
			return err
		}
		mc.soundOn = false
	}

	return nil
}
