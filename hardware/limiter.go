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
	"sync/atomic"
	"time"
)

// FrameRate is the number of frames per second.
const FrameRate = 60

// FrameDuration is the time allowed for a single frame.
const FrameDuration = time.Second / FrameRate

// Clock is used to measure and wait for the passage of time. The limiter uses
// the real system clock unless an alternative is supplied with SetClock().
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

type limiter struct {
	clock Clock

	// whether to wait for the remainder of the frame
	active bool

	// the time the current frame started
	frameStart time.Time

	// the actual number of frames per second
	actual atomic.Value // float32

	// measurement
	measureCt   int
	measureTime time.Time
}

func (lmtr *limiter) init(clock Clock) {
	lmtr.clock = clock
	lmtr.active = true
	lmtr.actual.Store(float32(0))
	lmtr.measureCt = 0
	lmtr.measureTime = clock.Now()
}

// startFrame should be called at the start of every frame.
func (lmtr *limiter) startFrame() {
	lmtr.frameStart = lmtr.clock.Now()
}

// endFrame should be called at the end of every frame. it sleeps for whatever
// is left of the frame time
func (lmtr *limiter) endFrame() {
	lmtr.measureCt++

	now := lmtr.clock.Now()
	if lmtr.active {
		if rem := FrameDuration - now.Sub(lmtr.frameStart); rem > 0 {
			lmtr.clock.Sleep(rem)
			now = now.Add(rem)
		}
	}

	lmtr.measureActual(now)
}

// measures frame rate about once every second
func (lmtr *limiter) measureActual(now time.Time) {
	d := now.Sub(lmtr.measureTime)
	if d < time.Second {
		return
	}

	lmtr.actual.Store(float32(lmtr.measureCt) / float32(d.Seconds()))

	// reset time and count ready for next measurement
	lmtr.measureTime = now
	lmtr.measureCt = 0
}
