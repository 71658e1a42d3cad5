// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is an SDL implementation of the frame synchroniser
// used by the play mode of the emulator. Once per frame, on vertical
// blank entry, it renders the PPU state into an SDL texture and polls
// for keyboard input.
//
// SDL requires that all of this happens on the main OS thread.
package sdlplay

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel error messages.
const (
	SDL = "sdlplay: %v"
)

const (
	horizPixels      = 256
	visibleScanlines = 240
	pixelDepth       = 4
)

// keys mapped to the first joypad.
var keymap = map[sdl.Keycode]controllers.Button{
	sdl.K_UP:     controllers.ButtonUp,
	sdl.K_DOWN:   controllers.ButtonDown,
	sdl.K_LEFT:   controllers.ButtonLeft,
	sdl.K_RIGHT:  controllers.ButtonRight,
	sdl.K_SPACE:  controllers.ButtonSelect,
	sdl.K_RETURN: controllers.ButtonStart,
	sdl.K_a:      controllers.ButtonB,
	sdl.K_s:      controllers.ButtonA,
}

// SdlPlay is the television end of the console. It satisfies the
// memory.FrameSync interface.
type SdlPlay struct {
	ppu    *ppu.PPU
	joypad *controllers.Joypad

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before
	// applying it to the renderer. it is horizPixels * visibleScanlines *
	// pixelDepth in size
	pixels []byte

	// whether the background pixel is non-transparent, for sprite
	// priority
	bgOpaque [horizPixels * visibleScanlines]bool

	// limit screen updates to a fixed fps
	lmtr   *limiter.FpsLimiter
	fpsCap bool

	// set when the user closes the window or presses escape
	quit bool
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(p *ppu.PPU, joypad *controllers.Joypad, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		ppu:    p,
		joypad: joypad,
		fpsCap: true,
	}

	var err error

	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow("Gophernes",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		horizPixels, visibleScanlines)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.pixels = make([]byte, horizPixels*visibleScanlines*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	if err = scr.SetScale(scale); err != nil {
		return nil, err
	}

	scr.lmtr, err = limiter.NewFPSLimiter(60)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// MOUSEMOTION events fill up the event queue for no good reason
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.window.Show()

	return scr, nil
}

// SetScale sets the window size as a multiple of the 256x240 frame.
func (scr *SdlPlay) SetScale(scale float32) error {
	if scale <= 0 {
		scale = 1
	}

	w := int32(float32(horizPixels) * scale)
	h := int32(float32(visibleScanlines) * scale)
	scr.window.SetSize(w, h)

	if err := scr.renderer.SetScale(scale, scale); err != nil {
		return curated.Errorf(SDL, err)
	}

	return nil
}

// SetFPSCap turns the frame rate limiter on or off.
func (scr *SdlPlay) SetFPSCap(limit bool) {
	scr.fpsCap = limit
}

// NewFrame implements the memory.FrameSync interface. Called by the
// console once per frame, on entry to the vertical blank period.
func (scr *SdlPlay) NewFrame() error {
	scr.render()

	err := scr.texture.Update(nil, scr.pixels, horizPixels*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	if err = scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	if scr.fpsCap {
		scr.lmtr.Wait()
	}

	scr.service()

	return nil
}

// service the SDL event queue. one visit per frame is enough for
// keyboard input.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit = true

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					scr.quit = true
				}
				continue
			}

			if button, ok := keymap[ev.Keysym.Sym]; ok {
				scr.joypad.SetButton(button, ev.Type == sdl.KEYDOWN)
			}
		}
	}
}

// HasQuit returns true once the user has asked for the window to close.
func (scr *SdlPlay) HasQuit() bool {
	return scr.quit
}

// Destroy frees the SDL resources.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy() {
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
