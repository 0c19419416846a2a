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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chip8 type is the root of the emulation and contains external references
// to all the sub-components.
//
//	              +----------+
//	              |  Chip8   |
//	              +----------+
//	                   |
//	     +------+------+------+--------+
//	     |      |      |      |        |
//	   CPU   Memory Display Keypad   Sound
//
// The CPU only sees the peripherals through the interfaces defined in the
// peripherals package.
//
// The emulation is driven one frame at a time by the Tick() function. A frame
// consists of the following:
//
//  1. at most one user input event is forwarded to the keypad
//  2. if the CPU is waiting for a key press then an attempt is made to resume
//     the CPU. otherwise a batch of up to BatchSize instructions is executed
//  3. the delay and sound timers are decremented
//  4. the display is rendered and EndFrame() is called on any peripheral that
//     needs it
//  5. the remainder of the frame time is spent sleeping
//
// If a frame takes longer than FrameDuration then the next frame starts
// immediately. No attempt is made to make up the lost time.
//
// The Run() function calls Tick() repeatedly until the continue check function
// says otherwise, a quit event is received or an error occurs.
//
// The Chip8 type must only be used from a single goroutine. The first
// goroutine to call Tick() claims the emulation and calls from other
// goroutines will result in an error.
package hardware
