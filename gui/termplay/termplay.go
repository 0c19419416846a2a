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
	"errors"
	"image/color"
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	TerminalError    = "termplay: %v"
	TerminalTooSmall = "termplay: terminal too small (%dx%d, minimum is %dx%d)"
)

// the terminal device used for input and output
const device = "/dev/tty"

// TermPlay implements the display.PixelRenderer and userinput.Source
// interfaces for a terminal.
type TermPlay struct {
	tty *term.Term

	fg color.RGBA
	bg color.RGBA

	// output is built in this buffer and written in a single call
	buf bytes.Buffer

	// input is read into this slice
	in []byte

	keys   held
	events userinput.Queue
}

// NewTermPlay is the preferred method of initialisation for TermPlay. The
// terminal is put into raw mode until EndRendering() is called.
func NewTermPlay(p prefs.Display) (*TermPlay, error) {
	if err := checkSize(); err != nil {
		return nil, err
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	// reads return immediately even if there is no data
	err = tty.SetReadTimeout(0)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	trm := &TermPlay{
		tty:  tty,
		fg:   p.Foreground.RGBA(),
		bg:   p.Background.RGBA(),
		in:   make([]byte, 64),
		keys: make(held),
	}

	_, err = io.WriteString(trm.tty, ansiClear+ansiHideCursor)
	if err != nil {
		_ = trm.restore()
		return nil, curated.Errorf(TerminalError, err)
	}

	logger.Logf(logger.Allow, "termplay", "terminal opened (%s)", device)

	return trm, nil
}

// checks that the terminal attached to stdout is large enough for the display
func checkSize() error {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	if int(ws.Col) < requiredCols || int(ws.Row) < requiredRows {
		return curated.Errorf(TerminalTooSmall, ws.Col, ws.Row, requiredCols, requiredRows)
	}
	return nil
}

// Render implements the display.PixelRenderer interface.
func (trm *TermPlay) Render(fb *display.FrameBuffer) error {
	trm.buf.Reset()
	renderFrame(&trm.buf, fb, trm.fg, trm.bg)
	_, err := trm.tty.Write(trm.buf.Bytes())
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// EndRendering implements the display.PixelRenderer interface. The terminal
// is returned to the mode it was in before NewTermPlay() was called.
func (trm *TermPlay) EndRendering() error {
	if err := trm.restore(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	logger.Log(logger.Allow, "termplay", "terminal restored")
	return nil
}

func (trm *TermPlay) restore() error {
	_, _ = io.WriteString(trm.tty, ansiReset+ansiClear+ansiHome+ansiShowCursor)
	if err := trm.tty.Restore(); err != nil {
		return err
	}
	return trm.tty.Close()
}

// PollEvent implements the userinput.Source interface. It should be called
// once per frame because the automatic release of keys is measured in calls to
// PollEvent().
func (trm *TermPlay) PollEvent() (userinput.Event, bool) {
	n, err := trm.tty.Read(trm.in)
	if err != nil && !errors.Is(err, io.EOF) {
		logger.Logf(logger.Allow, "termplay", "read error: %v", err)
	}
	if n > 0 {
		trm.events.Push(trm.keys.translate(trm.in[:n])...)
	}
	trm.events.Push(trm.keys.tick()...)

	return trm.events.PollEvent()
}
