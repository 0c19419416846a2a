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

package termplay

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// half-block characters. each character cell represents two pixels
const (
	blockFull  = "█"
	blockUpper = "▀"
	blockLower = "▄"
	blockEmpty = " "
)

// ANSI control sequences
const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiReset      = "\x1b[0m"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// the number of terminal rows required to show the display
const requiredRows = (display.Height + 1) / 2

// the number of terminal columns required to show the display
const requiredCols = display.Width

// writes the frame buffer to the buffer as lines of half-block characters.
// the cursor is moved to the top-left of the terminal first
func renderFrame(b *bytes.Buffer, fb *display.FrameBuffer, fg color.RGBA, bg color.RGBA) {
	b.WriteString(ansiHome)
	for y := 0; y < display.Height; y += 2 {
		fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
		for x := 0; x < display.Width; x++ {
			upper := fb.Pixel(x, y)
			lower := y+1 < display.Height && fb.Pixel(x, y+1)
			switch {
			case upper && lower:
				b.WriteString(blockFull)
			case upper:
				b.WriteString(blockUpper)
			case lower:
				b.WriteString(blockLower)
			default:
				b.WriteString(blockEmpty)
			}
		}

		// raw mode requires an explicit carriage return
		b.WriteString(ansiReset)
		b.WriteString("\r\n")
	}
}
