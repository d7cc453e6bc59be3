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

// Package emulation drives the console. It owns the run-state machine and
// the loops that tick the hardware package: the paced play loop and the
// nestest trace loop.
package emulation

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Values are ordered so that order comparisons are meaningful. For example,
// Running is "greater than" Stepping, Paused, etc.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Initialising:
		return "initialising"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}

// Event is a request sent to the play loop from whatever input surface is
// attached, the raw-mode terminal or an SDL window.
type Event int

// List of defined events.
const (
	EventPause Event = iota
	EventStepInstruction
	EventStepFrame
	EventQuit
)
