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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// argument errors are reported with a different exit value to errors that
// occur while a mode is running.
const argumentError = "arguments: %v"

// exit values
const (
	exitArguments = 10
	exitMode      = 20
)

// SDL requires that the window and all events are handled by the main thread.
// the emulation is driven entirely from the main goroutine so locking it to
// the main thread is sufficient.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. the return value is
// the value to use with os.Exit()
func launch(args []string, output io.Writer, errOutput io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		if curated.Is(err, argumentError) {
			fmt.Fprintf(errOutput, "* error: %v\n", err)
			return exitArguments
		}
		fmt.Fprintf(errOutput, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return 0
}

// parse the flags of the current mode and check that there is exactly one
// argument remaining. the returned bool is false if the mode should not
// continue
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(argumentError, err)
	}

	err = md.RequireArgs(1)
	if err != nil {
		return false, curated.Errorf(argumentError, err)
	}

	return true, nil
}

func setLogEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	displayType := md.AddString("display", "SDL", "display type: SDL, TERM")
	scale := md.AddInt("scale", 0, "display scaling (overrides preferences file)")
	wav := md.AddString("wav", "", "record audio to wav file (AUTO for a generated filename)")
	prefsFile := md.AddString("prefs", prefs.DefaultPath(), "preferences file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	fpsCap := md.AddBool("fpscap", true, "cap fps to 60Hz")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp("The keypad is mapped to the keys 1234/QWER/ASDF/ZXCV by default.\nThe mapping can be changed in the [keypad] section of the preferences file.")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	dt := strings.ToUpper(*displayType)
	if dt != "SDL" && dt != "TERM" {
		return curated.Errorf(argumentError, fmt.Errorf("unknown display type (%s)", *displayType))
	}

	setLogEcho(*log, output)
	logger.Log(logger.Allow, "gopher8", version.Title())

	pr, err := prefs.Load(*prefsFile)
	if err != nil {
		return err
	}

	if *scale > 0 {
		pr.Display.Scale = *scale
		err = pr.Validate()
		if err != nil {
			return err
		}
	}

	keymap, err := pr.Keymap()
	if err != nil {
		return err
	}

	c8 := hardware.NewChip8(keymap)
	defer func() {
		if err := c8.End(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	c8.SetFrameCap(*fpsCap)

	// the ROM is loaded before the front end is opened so that a problem with
	// the ROM is reported even on a host with no display
	ld := romloader.NewLoader(md.GetArg(0))
	err = c8.AttachROM(ld)
	if err != nil {
		return err
	}

	var src userinput.Source

	switch dt {
	case "SDL":
		scr, err := sdlplay.NewSdlPlay(pr.Display)
		if err != nil {
			return err
		}
		c8.Display.AddPixelRenderer(scr)
		src = scr

		// the emulation can continue without audio
		bpr, err := sdlplay.NewBeeper(pr.Audio.Tone, pr.Audio.Volume)
		if err != nil {
			logger.Log(logger.Allow, "gopher8", err)
		} else {
			c8.Sound.AddAudioMixer(bpr)
		}

	case "TERM":
		trm, err := termplay.NewTermPlay(pr.Display)
		if err != nil {
			return err
		}
		c8.Display.AddPixelRenderer(trm)
		src = trm
	}

	// add wavwriter mixer if wav argument has been specified
	if *wav != "" {
		fn := wavFilename(*wav, ld)
		aw, err := wavwriter.New(fn, pr.Audio.Tone, pr.Audio.Volume)
		if err != nil {
			return err
		}
		c8.Sound.AddAudioMixer(aw)
		logger.Logf(logger.Allow, "gopher8", "recording audio to %s", fn)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	// #ctrlc ends the emulation
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	return c8.Run(src, func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})
}

// wavFilename returns the filename to use for the wav argument. the special
// value AUTO generates a unique filename from the ROM name
func wavFilename(arg string, ld romloader.Loader) string {
	if strings.ToUpper(arg) == "AUTO" {
		return fmt.Sprintf("%s.wav", paths.UniqueFilename("audio", ld.ShortName()))
	}
	return arg
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	fpsCap := md.AddBool("fpscap", false, "cap fps to 60Hz")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "produce profiling reports: CPU, MEM, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	ok, err := parseMode(md)
	if !ok {
		return err
	}

	setLogEcho(*log, output)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argumentError, err)
	}

	return performance.Check(output, prf, romloader.NewLoader(md.GetArg(0)), !*fpsCap, *duration)
}
