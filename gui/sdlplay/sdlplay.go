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

package sdlplay

import (
	"image/color"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is returned when SDL fails.
const SDLError = "sdl: %v"

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the display.PixelRenderer
// interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying to
	// the renderer
	pixels []byte

	fg color.RGBA
	bg color.RGBA

	// events that have been retrieved from SDL but not yet polled
	events userinput.Queue
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(p prefs.Display) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels: make([]byte, display.RGBASize),
		fg:     p.Foreground.RGBA(),
		bg:     p.Background.RGBA(),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	w := int32(display.Width * p.Scale)
	h := int32(display.Height * p.Scale)

	scr.window, err = sdl.CreateWindow(version.Title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		_ = scr.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = scr.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// the renderer scales the texture to fill the window
	err = scr.renderer.SetLogicalSize(display.Width, display.Height)
	if err != nil {
		_ = scr.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// texture is the same size as the display. it is updated every Render()
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		_ = scr.destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	setupService()

	logger.Logf(logger.Allow, "sdlplay", "window opened (%dx%d)", w, h)

	return scr, nil
}

// Render implements the display.PixelRenderer interface.
func (scr *SdlPlay) Render(fb *display.FrameBuffer) error {
	fb.RGBA(scr.pixels, scr.fg, scr.bg)

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	for y := 0; y < display.Height; y++ {
		copy(pixels[y*pitch:], scr.pixels[y*display.Width*pixelDepth:(y+1)*display.Width*pixelDepth])
	}
	scr.texture.Unlock()

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.renderer.Present()

	return nil
}

// EndRendering implements the display.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	err := scr.destroy()
	logger.Log(logger.Allow, "sdlplay", "window closed")
	return err
}

// destroy whatever SDL resources have been created and quit SDL. safe to call
// on a partially initialised SdlPlay. the first error is returned but all
// resources are destroyed regardless
func (scr *SdlPlay) destroy() error {
	var err error

	if scr.texture != nil {
		if e := scr.texture.Destroy(); e != nil && err == nil {
			err = curated.Errorf(SDLError, e)
		}
		scr.texture = nil
	}
	if scr.renderer != nil {
		if e := scr.renderer.Destroy(); e != nil && err == nil {
			err = curated.Errorf(SDLError, e)
		}
		scr.renderer = nil
	}
	if scr.window != nil {
		if e := scr.window.Destroy(); e != nil && err == nil {
			err = curated.Errorf(SDLError, e)
		}
		scr.window = nil
	}

	sdl.Quit()

	return err
}
