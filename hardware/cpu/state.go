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

// State of the CPU.
type State int

// List of valid CPU states.
const (
	Running State = iota
	WaitingForKey
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	}
	return "unknown state"
}

// Outcome is returned by the Step() function.
type Outcome int

// List of valid outcomes.
const (
	// an instruction was executed. the CPU may have entered the WaitingForKey
	// state as a result of the instruction
	OutcomeExecuted Outcome = iota

	// no instruction was executed because the CPU is waiting for a key press
	OutcomeSuspended

	// no instruction was executed, or the instruction could not be completed,
	// because the CPU has halted. Step() will return a non-nil error
	OutcomeHalted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExecuted:
		return "executed"
	case OutcomeSuspended:
		return "suspended"
	case OutcomeHalted:
		return "halted"
	}
	return "unknown outcome"
}

// Result records the last instruction executed by the CPU.
type Result struct {
	// address of the instruction
	Address uint16

	Opcode  Opcode
	Outcome Outcome

	// the number of instructions executed since the last reset
	Count int
}
