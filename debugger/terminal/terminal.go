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

// Package terminal puts the controlling terminal into cbreak mode and
// turns single keypresses into emulation events: pause, step instruction,
// step frame and quit. There is no command language; it is the smallest
// debugging surface that is still useful during play.
package terminal

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gophernes/emulation"
)

// Terminal reads keypresses from an os.File, usually os.Stdin.
type Terminal struct {
	input *os.File

	// terminal attributes on entry, restored by Restore()
	canAttr unix.Termios

	events chan<- emulation.Event
}

// NewTerminal puts input into cbreak mode and begins forwarding keypress
// events. Restore() must be called before the program exits or the user's
// terminal is left in a broken state.
//
// Keys: space or p pause, s steps an instruction, f steps a frame, q or
// ctrl-c quits.
func NewTerminal(input *os.File, events chan<- emulation.Event) (*Terminal, error) {
	term := &Terminal{
		input:  input,
		events: events,
	}

	if err := termios.Tcgetattr(input.Fd(), &term.canAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	cbreakAttr := term.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	go term.readLoop()

	return term, nil
}

// Restore the terminal attributes from before NewTerminal.
func (term *Terminal) Restore() error {
	if err := termios.Tcsetattr(term.input.Fd(), termios.TCIFLUSH, &term.canAttr); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

func (term *Terminal) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := term.input.Read(buf)
		if err != nil || n != 1 {
			return
		}

		switch buf[0] {
		case ' ', 'p':
			term.events <- emulation.EventPause
		case 's':
			term.events <- emulation.EventStepInstruction
		case 'f':
			term.events <- emulation.EventStepFrame
		case 'q', 0x03:
			term.events <- emulation.EventQuit
			return
		}
	}
}
