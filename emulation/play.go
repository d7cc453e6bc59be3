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

package emulation

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
)

// Playmode runs the console at the television frame rate without any
// debugging features.
type Playmode struct {
	console *hardware.NES
	state   State

	// events from the input surface. may be nil, in which case the loop
	// runs until the frame limit (or forever)
	events <-chan Event

	// stop after this many frames. zero or negative means no limit
	frameLimit int

	framesRun int
}

// NewPlaymode is the preferred method of initialisation for the Playmode
// type.
func NewPlaymode(console *hardware.NES, events <-chan Event, frameLimit int) *Playmode {
	return &Playmode{
		console:    console,
		state:      Initialising,
		events:     events,
		frameLimit: frameLimit,
	}
}

// State returns the current run state.
func (pl *Playmode) State() State {
	return pl.state
}

// Run the play loop until a quit event or the frame limit. Frames are paced
// to the television frame rate; if the host cannot keep up the emulation
// simply runs slow, there is no frame dropping.
func (pl *Playmode) Run() error {
	pacer := time.NewTicker(time.Second / television.FramesPerSecond)
	defer pacer.Stop()

	pl.state = Running

	for pl.state != Ending {
		switch pl.state {
		case Running:
			select {
			case ev, ok := <-pl.events:
				if !ok {
					pl.state = Ending
					continue
				}
				pl.service(ev)
			case <-pacer.C:
				if err := pl.frame(); err != nil {
					return err
				}
			}

		case Paused:
			// blocking receive. nothing to do until the user says so
			ev, ok := <-pl.events
			if !ok {
				pl.state = Ending
				continue
			}
			pl.service(ev)

		default:
			return fmt.Errorf("emulation: unserviceable state (%s)", pl.state)
		}
	}

	return pl.console.End()
}

func (pl *Playmode) service(ev Event) {
	switch ev {
	case EventQuit:
		pl.state = Ending

	case EventPause:
		if pl.state == Paused {
			pl.state = Running
			logger.Log(logger.Allow, "emulation", "running")
		} else {
			pl.state = Paused
			logger.Log(logger.Allow, "emulation", "paused")
		}

	case EventStepInstruction:
		if pl.state != Paused {
			return
		}
		pl.state = Stepping
		if r, err := pl.console.Step(); err != nil {
			logger.Logf(logger.Allow, "emulation", "step: %v", err)
		} else {
			logger.Log(logger.Allow, "emulation", r.String())
		}
		pl.state = Paused

	case EventStepFrame:
		if pl.state != Paused {
			return
		}
		pl.state = Stepping
		if err := pl.frame(); err != nil {
			logger.Logf(logger.Allow, "emulation", "step frame: %v", err)
		}
		pl.state = Paused
	}
}

func (pl *Playmode) frame() error {
	if err := pl.console.Frame(); err != nil {
		return fmt.Errorf("emulation: %w", err)
	}
	pl.framesRun++
	if pl.frameLimit > 0 && pl.framesRun >= pl.frameLimit {
		pl.state = Ending
	}
	return nil
}
