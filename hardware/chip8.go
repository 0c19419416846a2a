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

package hardware

import (
	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/peripherals"
	"github.com/jetsetilly/gopher8/hardware/sound"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
)

// BatchSize is the maximum number of instructions executed in a single frame.
const BatchSize = 16

// Chip8 is the root of the emulation.
type Chip8 struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *keypad.Keypad
	Sound   *sound.Sound
	Random  *random.Random

	// the number of frames since the last reset
	frameNum int

	lmtr limiter

	// peripherals that implement the FrameEnder interface
	enders []peripherals.FrameEnder

	// the emulation must only be driven from a single goroutine
	goroutine assert.SingleGoroutine
}

// NewChip8 creates a new Chip8 and everything associated with the hardware. If
// the keymap is nil then the default keymap is used.
//
// No ROM is loaded. Use AttachROM() or Load().
func NewChip8(keymap userinput.Keymap) *Chip8 {
	c8 := &Chip8{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  keypad.NewKeypad(keymap),
		Sound:   sound.NewSound(),
	}
	c8.Random = random.NewRandom(c8)
	c8.CPU = cpu.NewCPU(c8.Mem, c8.Display, c8.Keypad, c8.Sound, c8.Random)
	c8.enders = c8.frameEnders()
	c8.lmtr.init(systemClock{})
	return c8
}

// GetCoords implements the random.CoordsSource interface.
func (c8 *Chip8) GetCoords() random.Coords {
	return random.Coords{
		Frame:       c8.frameNum,
		Instruction: c8.CPU.LastResult.Count,
	}
}

// AttachROM loads the ROM specified by the loader and resets the emulation.
func (c8 *Chip8) AttachROM(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := c8.Load(ld.Data); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "chip8", "attached %s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)
	return nil
}

// Load the ROM data into memory and reset the emulation. If the ROM cannot be
// loaded then the emulation is not reset.
func (c8 *Chip8) Load(rom []uint8) error {
	if err := c8.Mem.Load(rom); err != nil {
		return err
	}
	c8.Reset()
	return nil
}

// Reset the emulation without changing the contents of memory.
func (c8 *Chip8) Reset() {
	c8.CPU.Reset()
	c8.Display.Clear()
	c8.Keypad.Reset()
	c8.Sound.Reset()
	c8.frameNum = 0
}

// SetFrameCap sets whether the emulation should wait for the remainder of the
// frame time at the end of every frame. An uncapped emulation runs as quickly
// as possible.
func (c8 *Chip8) SetFrameCap(active bool) {
	c8.lmtr.active = active
}

// SetClock changes the clock used to pace frames. A nil value restores the
// system clock.
func (c8 *Chip8) SetClock(clock Clock) {
	if clock == nil {
		clock = systemClock{}
	}
	active := c8.lmtr.active
	c8.lmtr.init(clock)
	c8.lmtr.active = active
}

// ActualFPS returns the most recent measurement of the number of frames per
// second.
func (c8 *Chip8) ActualFPS() float32 {
	return c8.lmtr.actual.Load().(float32)
}

// FrameNum returns the number of frames since the last reset.
func (c8 *Chip8) FrameNum() int {
	return c8.frameNum
}

// the peripherals that might need to know about the end of a frame
func (c8 *Chip8) frameEnders() []peripherals.FrameEnder {
	var fe []peripherals.FrameEnder
	for _, p := range []any{c8.Display, c8.Keypad, c8.Sound} {
		if e, ok := p.(peripherals.FrameEnder); ok {
			fe = append(fe, e)
		}
	}
	return fe
}

// End the emulation. All mixers attached to the sound and then all renderers
// attached to the display are ended.
func (c8 *Chip8) End() error {
	errSnd := c8.Sound.End()
	errDsp := c8.Display.End()
	if errSnd != nil {
		return errSnd
	}
	return errDsp
}
