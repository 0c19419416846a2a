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

// Package display implements the 64x32 monochrome screen. The Display type
// satisfies the peripherals.Display interface and so can be given to the CPU.
//
// The Display does not show anything by itself. The frame buffer is sent to
// every PixelRenderer that has been attached with AddPixelRenderer() whenever
// Render() is called. Renderers can be added and removed at any time.
package display

import (
	"image/color"
	"strings"

	"github.com/jetsetilly/gopher8/logger"
)

// Dimensions of the screen in pixels.
const (
	Width  = 64
	Height = 32
)

// FrameBuffer is the state of every pixel on the screen.
type FrameBuffer struct {
	pixels [Height][Width]bool
}

// Pixel returns true if the pixel at x, y is set. Coordinates are wrapped.
func (fb *FrameBuffer) Pixel(x, y int) bool {
	x, y = wrap(x, y)
	return fb.pixels[y][x]
}

// Count returns the number of pixels that are set.
func (fb *FrameBuffer) Count() int {
	n := 0
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			if fb.pixels[y][x] {
				n++
			}
		}
	}
	return n
}

// String returns the frame buffer as rows of text. Set pixels are shown with
// the '#' character.
func (fb *FrameBuffer) String() string {
	b := strings.Builder{}
	b.Grow((Width + 1) * Height)
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			if fb.pixels[y][x] {
				b.WriteRune('#')
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// RGBASize is the number of bytes required by RGBA().
const RGBASize = Width * Height * 4

// RGBA writes the frame buffer to dst as packed RGBA values, one row after
// another. Set pixels use the on colour and clear pixels use the off colour.
// The dst slice should be at least RGBASize bytes long.
func (fb *FrameBuffer) RGBA(dst []byte, on color.RGBA, off color.RGBA) {
	i := 0
	for y := range fb.pixels {
		for x := range fb.pixels[y] {
			if i+4 > len(dst) {
				return
			}
			c := off
			if fb.pixels[y][x] {
				c = on
			}
			dst[i] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += 4
		}
	}
}

// wrap coordinates so that they always lie on the screen. negative values are
// wrapped too
func wrap(x, y int) (int, int) {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return x, y
}

// PixelRenderer implementations display, or otherwise work with, the frame
// buffer.
type PixelRenderer interface {
	// Render is called once per frame. The frame buffer should not be
	// retained by the renderer after the function has returned.
	Render(fb *FrameBuffer) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the renderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// Display implements the peripherals.Display interface.
type Display struct {
	fb FrameBuffer

	// the number of calls to Render()
	frameNum int

	renderers []PixelRenderer
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// AddPixelRenderer registers an implementation of PixelRenderer. Multiple
// implementations can be added.
func (dsp *Display) AddPixelRenderer(r PixelRenderer) {
	for i := range dsp.renderers {
		if dsp.renderers[i] == r {
			return
		}
	}
	dsp.renderers = append(dsp.renderers, r)
	logger.Logf(logger.Allow, "display", "added renderer %T", r)
}

// Clear implements the peripherals.Display interface.
func (dsp *Display) Clear() {
	dsp.fb = FrameBuffer{}
}

// SetPixel implements the peripherals.Display interface.
func (dsp *Display) SetPixel(x, y int) bool {
	x, y = wrap(x, y)
	collision := dsp.fb.pixels[y][x]
	dsp.fb.pixels[y][x] = !collision
	return collision
}

// Render implements the peripherals.Display interface.
func (dsp *Display) Render() error {
	dsp.frameNum++
	for _, r := range dsp.renderers {
		if err := r.Render(&dsp.fb); err != nil {
			return err
		}
	}
	return nil
}

// FrameBuffer returns the current frame buffer. The frame buffer will change
// as the CPU executes instructions.
func (dsp *Display) FrameBuffer() *FrameBuffer {
	return &dsp.fb
}

// FrameNum returns the number of frames that have been rendered.
func (dsp *Display) FrameNum() int {
	return dsp.frameNum
}

// End the display and all attached renderers.
func (dsp *Display) End() error {
	var err error
	for _, r := range dsp.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	dsp.renderers = dsp.renderers[:0]
	return err
}
