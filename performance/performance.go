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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/romloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the period of time allowed for the frame rate to settle down before
// measurement begins
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile (or both) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, ld romloader.Loader, uncapped bool, duration string) error {
	return check(output, hardware.NewChip8(nil), profile, ld, uncapped, duration)
}

// check is the body of Check() with the emulation supplied by the caller. the
// emulation is ended before returning
func check(output io.Writer, c8 *hardware.Chip8, profile Profile, ld romloader.Loader, uncapped bool, duration string) (rerr error) {
	defer func() {
		if err := c8.End(); err != nil && rerr == nil {
			rerr = curated.Errorf("performance: %v", err)
		}
	}()

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// set fps cap
	c8.SetFrameCap(!uncapped)

	err = c8.AttachROM(ld)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := c8.FrameNum()
	startInstruction := c8.CPU.LastResult.Count
	var endFrame int
	var endInstruction int

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		//
		// the channel is buffered so that the timers never block if the
		// emulation has stopped for another reason
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// run until specified time elapses
		err := c8.Run(nil, func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}

				// leadtime has concluded. record the start of the
				// measurement period
				startFrame = c8.FrameNum()
				startInstruction = c8.CPU.LastResult.Count
			default:
			}
			return govern.Running, nil
		})

		endFrame = c8.FrameNum()
		endInstruction = c8.CPU.LastResult.Count

		return err
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// calculate performance
	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	ips := CalcIPS(endInstruction-startInstruction, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)
	fmt.Fprintf(output, "%.0f instructions per second\n", ips)

	return nil
}
