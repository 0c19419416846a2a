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

package display_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

type renderer struct {
	frames []string
	ended  bool
}

func (r *renderer) Render(fb *display.FrameBuffer) error {
	r.frames = append(r.frames, fb.String())
	return nil
}

func (r *renderer) EndRendering() error {
	r.ended = true
	return nil
}

func TestSetPixel(t *testing.T) {
	dsp := display.NewDisplay()

	test.ExpectFailure(t, dsp.SetPixel(3, 4))
	test.ExpectSuccess(t, dsp.FrameBuffer().Pixel(3, 4))

	// toggling an already set pixel is a collision
	test.ExpectSuccess(t, dsp.SetPixel(3, 4))
	test.ExpectFailure(t, dsp.FrameBuffer().Pixel(3, 4))
	test.ExpectEquality(t, dsp.FrameBuffer().Count(), 0)
}

func TestWrap(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.SetPixel(display.Width+1, display.Height+2)
	test.ExpectSuccess(t, dsp.FrameBuffer().Pixel(1, 2))

	test.ExpectSuccess(t, dsp.SetPixel(1, 2))
	dsp.SetPixel(-1, -1)
	test.ExpectSuccess(t, dsp.FrameBuffer().Pixel(display.Width-1, display.Height-1))
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()
	for i := 0; i < 10; i++ {
		dsp.SetPixel(i, i)
	}
	test.ExpectEquality(t, dsp.FrameBuffer().Count(), 10)
	dsp.Clear()
	test.ExpectEquality(t, dsp.FrameBuffer().Count(), 0)
}

func TestRenderers(t *testing.T) {
	dsp := display.NewDisplay()
	a := &renderer{}
	b := &renderer{}
	dsp.AddPixelRenderer(a)
	dsp.AddPixelRenderer(b)

	// adding a renderer twice has no effect
	dsp.AddPixelRenderer(a)

	dsp.SetPixel(0, 0)
	test.ExpectSuccess(t, dsp.Render())
	test.ExpectSuccess(t, dsp.Render())

	test.ExpectEquality(t, len(a.frames), 2)
	test.ExpectEquality(t, len(b.frames), 2)
	test.ExpectEquality(t, dsp.FrameNum(), 2)

	lines := strings.Split(strings.TrimSpace(a.frames[0]), "\n")
	test.DemandEquality(t, len(lines), display.Height)
	test.ExpectEquality(t, lines[0], "#"+strings.Repeat(".", display.Width-1))

	test.ExpectSuccess(t, dsp.End())
	test.ExpectSuccess(t, a.ended)
	test.ExpectSuccess(t, b.ended)
}

func TestRGBA(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.SetPixel(1, 0)
	dsp.SetPixel(0, 1)

	on := color.RGBA{R: 0x64, G: 0xfe, B: 0x64, A: 0xff}
	off := color.RGBA{A: 0xff}

	buf := make([]byte, display.RGBASize)
	dsp.FrameBuffer().RGBA(buf, on, off)

	test.ExpectEquality(t, buf[0], uint8(0x00))
	test.ExpectEquality(t, buf[3], uint8(0xff))
	test.ExpectEquality(t, buf[4], uint8(0x64))
	test.ExpectEquality(t, buf[5], uint8(0xfe))
	test.ExpectEquality(t, buf[6], uint8(0x64))

	// first pixel of second row
	i := display.Width * 4
	test.ExpectEquality(t, buf[i+1], uint8(0xfe))
	test.ExpectEquality(t, buf[i+5], uint8(0x00))

	// a short buffer is filled as far as possible
	short := make([]byte, 6)
	dsp.FrameBuffer().RGBA(short, on, off)
	test.ExpectEquality(t, short[3], uint8(0xff))
	test.ExpectEquality(t, short[4], uint8(0x00))
}
