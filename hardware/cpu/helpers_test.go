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

package cpu_test

import (
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/userinput"
)

// mockDisplay records the pixels that are set
type mockDisplay struct {
	pixels  [64][32]bool
	cleared int
	renders int
}

func (d *mockDisplay) Clear() {
	d.pixels = [64][32]bool{}
	d.cleared++
}

func (d *mockDisplay) SetPixel(x, y int) bool {
	x %= 64
	y %= 32
	collision := d.pixels[x][y]
	d.pixels[x][y] = !d.pixels[x][y]
	return collision
}

func (d *mockDisplay) Render() error {
	d.renders++
	return nil
}

func (d *mockDisplay) count() int {
	n := 0
	for x := range d.pixels {
		for y := range d.pixels[x] {
			if d.pixels[x][y] {
				n++
			}
		}
	}
	return n
}

// mockKeyboard with keys that can be pressed directly by the test
type mockKeyboard struct {
	pressed [16]bool
	last    *uint8
}

func (k *mockKeyboard) HandleEvent(_ userinput.Event) error {
	return nil
}

func (k *mockKeyboard) IsPressed(key uint8) bool {
	return key < 16 && k.pressed[key]
}

func (k *mockKeyboard) TakeLastPressedKey() (uint8, bool) {
	if k.last == nil {
		return 0, false
	}
	key := *k.last
	k.last = nil
	return key, true
}

func (k *mockKeyboard) press(key uint8) {
	k.pressed[key] = true
	k.last = &key
}

// mockSound records every call to TurnOn() and TurnOff()
type mockSound struct {
	calls []string
}

func (s *mockSound) TurnOn() error {
	s.calls = append(s.calls, "on")
	return nil
}

func (s *mockSound) TurnOff() error {
	s.calls = append(s.calls, "off")
	return nil
}

// mockRandom always returns the same value
type mockRandom struct {
	value uint8
}

func (r *mockRandom) Byte() uint8 {
	return r.value
}

type machine struct {
	mem      *memory.Memory
	display  *mockDisplay
	keyboard *mockKeyboard
	sound    *mockSound
	rnd      *mockRandom
	mc       *cpu.CPU
}

// newMachine creates a CPU with the opcodes loaded into memory at the start of
// the program region
func newMachine(opcodes ...uint16) *machine {
	m := &machine{
		mem:      memory.NewMemory(),
		display:  &mockDisplay{},
		keyboard: &mockKeyboard{},
		sound:    &mockSound{},
		rnd:      &mockRandom{value: 0xff},
	}

	rom := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		rom = append(rom, uint8(op>>8), uint8(op))
	}
	if err := m.mem.Load(rom); err != nil {
		panic(err)
	}

	m.mc = cpu.NewCPU(m.mem, m.display, m.keyboard, m.sound, m.rnd)
	return m
}
