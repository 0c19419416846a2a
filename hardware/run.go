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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// Tick runs the emulation for exactly one frame. The source of user input can
// be nil.
//
// The returned state is govern.Ending if a quit event was received from the
// user input source. Otherwise the state is govern.Running. An error is
// returned if the CPU halts or a peripheral fails.
func (c8 *Chip8) Tick(src userinput.Source) (govern.State, error) {
	return c8.tick(src, false)
}

func (c8 *Chip8) tick(src userinput.Source, paused bool) (govern.State, error) {
	if err := c8.goroutine.Check(); err != nil {
		return govern.Ending, err
	}

	c8.lmtr.startFrame()

	// at most one event per frame
	if src != nil {
		if ev, ok := src.PollEvent(); ok {
			if _, ok := ev.(userinput.EventQuit); ok {
				return govern.Ending, nil
			}
			if err := c8.Keypad.HandleEvent(ev); err != nil {
				return govern.Ending, err
			}
		}
	}

	if !paused {
		if c8.CPU.State() == cpu.WaitingForKey {
			c8.CPU.Resume()
		} else {
			for i := 0; i < BatchSize; i++ {
				if _, err := c8.CPU.Step(); err != nil {
					return govern.Ending, err
				}
				if c8.CPU.State() != cpu.Running {
					break
				}
			}
		}

		if err := c8.CPU.TickTimers(); err != nil {
			return govern.Ending, err
		}
	}

	if err := c8.Display.Render(); err != nil {
		return govern.Ending, err
	}

	for _, e := range c8.enders {
		if err := e.EndFrame(); err != nil {
			return govern.Ending, err
		}
	}

	c8.frameNum++
	c8.lmtr.endFrame()

	return govern.Running, nil
}

// Run sets the emulation running until the continue check function returns
// govern.Ending, a quit event is received from the user input source, or an
// error occurs. The continue check function is called at the end of every
// frame and can be nil.
//
// When the continue check function returns govern.Paused the emulation
// continues to render frames and handle user input but the CPU and timers are
// not advanced.
func (c8 *Chip8) Run(src userinput.Source, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	logger.Log(logger.Allow, "chip8", "running")
	defer func() {
		logger.Logf(logger.Allow, "chip8", "stopped after %d frames", c8.frameNum)
	}()

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		var s govern.State

		switch state {
		case govern.Running:
			s, err = c8.tick(src, false)
		case govern.Paused:
			s, err = c8.tick(src, true)
		default:
			return curated.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		if err != nil {
			return err
		}
		if s == govern.Ending {
			return nil
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. The continue check function is called at the end of every frame and
// can be nil.
func (c8 *Chip8) RunForFrameCount(numFrames int, src userinput.Source, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := c8.frameNum + numFrames

	state := govern.Running
	for c8.frameNum != targetFrame && state != govern.Ending {
		s, err := c8.Tick(src)
		if err != nil {
			return err
		}
		if s == govern.Ending {
			return nil
		}

		state, err = continueCheck(c8.frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
