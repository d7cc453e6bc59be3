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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/hardware/controllers"
)

// keyboard mapping for the first joypad
var joypadKeys = map[sdl.Keycode]controllers.Button{
	sdl.K_UP:     controllers.Up,
	sdl.K_DOWN:   controllers.Down,
	sdl.K_LEFT:   controllers.Left,
	sdl.K_RIGHT:  controllers.Right,
	sdl.K_z:      controllers.B,
	sdl.K_x:      controllers.A,
	sdl.K_RETURN: controllers.Start,
	sdl.K_RSHIFT: controllers.Select,
}

// service the SDL event queue. called every frame from NewFrame.
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.request(emulation.EventQuit)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if button, ok := joypadKeys[ev.Keysym.Sym]; ok {
				scr.joypad.Set(button, ev.Type == sdl.KEYDOWN)
				continue
			}

			if ev.Type != sdl.KEYDOWN {
				continue
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				scr.request(emulation.EventQuit)
			case sdl.K_p:
				scr.request(emulation.EventPause)
			}
		}
	}
}

// request forwards an event to the play loop without blocking. a request
// that cannot be delivered is dropped; the user can press the key again.
func (scr *SdlPlay) request(ev emulation.Event) {
	select {
	case scr.events <- ev:
	default:
	}
}
