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

// Package sdlplay is an SDL window implementation of the
// television.PixelRenderer interface, with the keyboard standing in for
// the first joypad.
package sdlplay

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/television"
)

const pixelDepth = 4

// SdlPlay is the play window. It implements the television.PixelRenderer
// interface; frame delivery is also when the SDL event queue is serviced,
// which keeps all SDL activity on the one goroutine.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// user requests are forwarded to the play loop on this channel
	events chan<- emulation.Event

	// the keyboard drives the first joypad
	joypad *controllers.Joypad
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. It initialises SDL itself, so it must be created before any
// sdlaudio device.
func NewSdlPlay(scale int, events chan<- emulation.Event, joypad *controllers.Joypad) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		events: events,
		joypad: joypad,
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("Gophernes",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(television.HorizPixels*scale), int32(television.VertPixels*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the texture is the size of the frame; the renderer scales it to the
	// window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		television.HorizPixels, television.VertPixels)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	return scr, nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(_ int, pixels []uint8) error {
	if err := scr.texture.Update(nil, pixels, television.HorizPixels*pixelDepth); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlplay: %w", err)
	}
	scr.renderer.Present()

	scr.service()

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
	return nil
}
