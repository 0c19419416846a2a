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

// Package cpu emulates the CHIP-8 interpreter core. It owns the register file,
// the call stack, the index register, the program counter and the two timers.
//
// The CPU is created with NewCPU() and is given access to memory and to the
// three peripherals (display, keyboard and sound) through interfaces. The CPU
// knows nothing about how the peripherals are implemented.
//
// Instructions are executed one at a time with the Step() function. The
// Outcome returned by Step() says whether an instruction was executed, whether
// the CPU is waiting for a key press, or whether the CPU has halted.
//
// The CPU can be in one of three states:
//
//	Running		instructions are fetched and executed by Step()
//	WaitingForKey	the FX0A instruction is waiting for a key press. Step() does nothing
//	Halted		an error has occurred. the CPU will not execute any more instructions
//
// A CPU in the WaitingForKey state is returned to the Running state by a
// successful call to Resume(). The frame scheduler in the hardware package
// calls Resume() once per frame while the CPU is waiting.
//
// Any error encountered during execution halts the CPU. The error is returned
// by Step() and by every subsequent call to Step(). Only Reset() will return
// the CPU to the Running state.
//
// The timers are not decremented by Step(). TickTimers() should be called once
// per frame.
package cpu
