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

package hardware_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// fakeClock advances by step every time Now() is called and by the requested
// duration every time Sleep() is called
type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

type renderer struct {
	frames int
	last   string
}

func (r *renderer) Render(fb *display.FrameBuffer) error {
	r.frames++
	r.last = fb.String()
	return nil
}

func (r *renderer) EndRendering() error {
	return nil
}

type mixer struct {
	frames []bool
}

func (m *mixer) SetAudio(active bool) error {
	m.frames = append(m.frames, active)
	return nil
}

func (m *mixer) EndMixing() error {
	return nil
}

func newChip8(t *testing.T, rom ...uint16) (*hardware.Chip8, *fakeClock) {
	t.Helper()

	c8 := hardware.NewChip8(nil)
	clk := &fakeClock{now: time.Unix(0, 0)}
	c8.SetClock(clk)

	data := make([]uint8, 0, len(rom)*2)
	for _, op := range rom {
		data = append(data, uint8(op>>8), uint8(op))
	}
	test.DemandSuccess(t, c8.Load(data))

	return c8, clk
}

func TestEndToEnd(t *testing.T) {
	c8, _ := newChip8(t, 0x6a02, 0x00e0, 0x1200)
	r := &renderer{}
	c8.Display.AddPixelRenderer(r)

	// leave something on the screen from before the ROM starts
	c8.Display.SetPixel(5, 5)

	state, err := c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state, govern.Running)

	test.ExpectEquality(t, c8.CPU.V[0xa], 2)
	test.ExpectEquality(t, c8.Display.FrameBuffer().Count(), 0)
	test.ExpectEquality(t, c8.CPU.LastResult.Count, hardware.BatchSize)
	test.ExpectEquality(t, r.frames, 1)
	test.ExpectEquality(t, c8.FrameNum(), 1)

	// the program cycles through the three instructions forever
	for i := 0; i < 10; i++ {
		_, err = c8.Tick(nil)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, c8.CPU.LastResult.Count, hardware.BatchSize*(i+2))
		test.ExpectSuccess(t, c8.CPU.PC >= memory.ProgramOrigin && c8.CPU.PC <= memory.ProgramOrigin+4, i)
		test.ExpectEquality(t, c8.CPU.V[0xa], 2)
		test.ExpectEquality(t, c8.Display.FrameBuffer().Count(), 0)
	}
	test.ExpectEquality(t, c8.CPU.Stack.Depth(), 0)
}

func TestWaitForKey(t *testing.T) {
	// key 7 is the A key in the default keymap
	c8, _ := newChip8(t, 0xfa0a, 0x6b01, 0x1204)
	q := &userinput.Queue{}

	_, err := c8.Tick(q)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c8.CPU.State(), cpu.WaitingForKey)
	test.ExpectEquality(t, c8.CPU.LastResult.Count, 1)
	test.ExpectEquality(t, c8.CPU.PC, memory.ProgramOrigin+2)

	// nothing happens while there is no key press
	for i := 0; i < 5; i++ {
		_, err = c8.Tick(q)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, c8.CPU.State(), cpu.WaitingForKey)
	test.ExpectEquality(t, c8.CPU.LastResult.Count, 1)

	q.Push(userinput.EventKeyboard{Key: "A", Down: true})
	_, err = c8.Tick(q)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c8.CPU.State(), cpu.Running)
	test.ExpectEquality(t, c8.CPU.V[0xa], 7)

	// no instruction was fetched by the frame that resumed the CPU
	test.ExpectEquality(t, c8.CPU.LastResult.Count, 1)
	test.ExpectEquality(t, c8.CPU.PC, memory.ProgramOrigin+2)

	_, err = c8.Tick(q)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c8.CPU.V[0xb], 1)
}

func TestOneEventPerFrame(t *testing.T) {
	c8, _ := newChip8(t, 0x1200)
	q := &userinput.Queue{}
	q.Push(userinput.EventKeyboard{Key: "1", Down: true}, userinput.EventKeyboard{Key: "2", Down: true})

	_, err := c8.Tick(q)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Len(), 1)
	test.ExpectSuccess(t, c8.Keypad.IsPressed(1))
	test.ExpectFailure(t, c8.Keypad.IsPressed(2))
}

func TestQuit(t *testing.T) {
	c8, _ := newChip8(t, 0x1200)
	q := &userinput.Queue{}
	q.Push(userinput.EventQuit{})

	state, err := c8.Tick(q)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, state, govern.Ending)

	// Run() returns without error on a quit event
	q.Push(userinput.EventKeyboard{Key: "1", Down: true}, userinput.EventQuit{})
	test.ExpectSuccess(t, c8.Run(q, nil))
	test.ExpectEquality(t, q.Len(), 0)
}

func TestHalt(t *testing.T) {
	c8, _ := newChip8(t, 0x6001, 0x0123)
	_, err := c8.Tick(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedOpcode))
	test.ExpectEquality(t, c8.CPU.State(), cpu.Halted)
	test.ExpectEquality(t, c8.CPU.LastResult.Count, 2)

	// Run() returns the error
	err = c8.Run(nil, nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedOpcode))
}

func TestEmptyROM(t *testing.T) {
	c8, _ := newChip8(t)
	_, err := c8.Tick(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnsupportedOpcode))
}

func TestTimersPerFrame(t *testing.T) {
	// V0 = 10; DT = V0; ST = V0; loop
	c8, _ := newChip8(t, 0x600a, 0xf015, 0xf018, 0x1206)
	m := &mixer{}
	c8.Sound.AddAudioMixer(m)

	// the timers are decremented once in the first frame
	_, err := c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c8.CPU.DT, 9)
	test.ExpectEquality(t, c8.CPU.ST, 9)

	test.ExpectSuccess(t, c8.RunForFrameCount(20, nil, nil))
	test.ExpectEquality(t, c8.CPU.DT, 0)
	test.ExpectEquality(t, c8.CPU.ST, 0)
	test.ExpectEquality(t, c8.FrameNum(), 21)

	// the sound was heard for ten frames
	test.DemandEquality(t, len(m.frames), 21)
	heard := 0
	for _, v := range m.frames {
		if v {
			heard++
		}
	}
	test.ExpectEquality(t, heard, 10)
	test.ExpectFailure(t, c8.Sound.IsOn())
}

func TestFramePacing(t *testing.T) {
	c8, clk := newChip8(t, 0x1200)

	// a frame that takes no time sleeps for the whole of the frame
	_, err := c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(clk.sleeps), 1)
	test.ExpectEquality(t, clk.sleeps[0], hardware.FrameDuration)

	// a frame that overruns does not sleep and the lost time is not
	// recovered in later frames
	clk.step = hardware.FrameDuration * 2
	_, err = c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(clk.sleeps), 1)

	clk.step = 0
	_, err = c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(clk.sleeps), 2)
	test.ExpectEquality(t, clk.sleeps[1], hardware.FrameDuration)

	// uncapped frames never sleep
	c8.SetFrameCap(false)
	_, err = c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(clk.sleeps), 2)
}

func TestRunContinueCheck(t *testing.T) {
	c8, _ := newChip8(t, 0x7001, 0x1200)
	c8.SetFrameCap(false)

	frames := 0
	err := c8.Run(nil, func() (govern.State, error) {
		frames++
		switch {
		case frames < 3:
			return govern.Running, nil
		case frames < 6:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c8.FrameNum(), 6)

	// the CPU ran for three frames. each frame is eight iterations of the
	// two instruction loop
	test.ExpectEquality(t, c8.CPU.V[0], 3*hardware.BatchSize/2)
}

func TestWrongGoroutine(t *testing.T) {
	c8, _ := newChip8(t, 0x1200)
	_, err := c8.Tick(nil)
	test.DemandSuccess(t, err)

	ch := make(chan error)
	go func() {
		_, err := c8.Tick(nil)
		ch <- err
	}()
	test.ExpectFailure(t, <-ch)
}

func TestLoadTooLarge(t *testing.T) {
	c8, _ := newChip8(t, 0x6a02, 0x1202)
	_, err := c8.Tick(nil)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c8.CPU.V[0xa], 2)

	v := c8.CPU.V
	pc := c8.CPU.PC
	count := c8.CPU.LastResult.Count
	state := c8.CPU.State()

	err = c8.Load(make([]uint8, memory.ProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ROMTooLarge))

	// emulation is not reset by a failed load
	test.ExpectEquality(t, c8.FrameNum(), 1)
	test.ExpectEquality(t, c8.CPU.V, v)
	test.ExpectEquality(t, c8.CPU.PC, pc)
	test.ExpectEquality(t, c8.CPU.LastResult.Count, count)
	test.ExpectEquality(t, c8.CPU.State(), state)

	// the program is still in memory
	for i, b := range []uint8{0x6a, 0x02, 0x12, 0x02} {
		d, err := c8.Mem.Read(memory.ProgramOrigin + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, b, i)
	}

	// and the emulation continues
	_, err = c8.Tick(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c8.FrameNum(), 2)
}

func TestResetSilencesTone(t *testing.T) {
	c8, _ := newChip8(t, 0x1200)
	test.DemandSuccess(t, c8.Sound.TurnOn())
	c8.Reset()
	test.ExpectFailure(t, c8.Sound.IsOn())
	test.ExpectEquality(t, c8.FrameNum(), 0)
}
