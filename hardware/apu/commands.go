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

package apu

// ChannelID identifies one of the four synthesised channels.
type ChannelID int

// List of valid ChannelID values.
const (
	ChanPulse1 ChannelID = iota
	ChanPulse2
	ChanTriangle
	ChanNoise
	NumChannels
)

func (id ChannelID) String() string {
	switch id {
	case ChanPulse1:
		return "pulse 1"
	case ChanPulse2:
		return "pulse 2"
	case ChanTriangle:
		return "triangle"
	case ChanNoise:
		return "noise"
	}
	return "unknown"
}

// Command is an instruction to the oscillator bank. it is a closed set:
// the concrete types are SetFrequency, SetAmplitude, SetDutyCycle and
// SetEnabled.
type Command interface {
	Channel() ChannelID

	// sealing method. commands are only created by this package.
	command()
}

// SetFrequency retunes a channel's oscillator.
type SetFrequency struct {
	ID ChannelID
	Hz float32
}

// SetAmplitude changes a channel's volume. zero silences the channel.
type SetAmplitude struct {
	ID    ChannelID
	Level float32
}

// SetDutyCycle changes the fraction of each cycle a pulse oscillator
// spends high.
type SetDutyCycle struct {
	ID   ChannelID
	Duty float32
}

// SetEnabled switches a channel's oscillator on or off.
type SetEnabled struct {
	ID      ChannelID
	Enabled bool
}

// Channel implements the Command interface.
func (c SetFrequency) Channel() ChannelID { return c.ID }

// Channel implements the Command interface.
func (c SetAmplitude) Channel() ChannelID { return c.ID }

// Channel implements the Command interface.
func (c SetDutyCycle) Channel() ChannelID { return c.ID }

// Channel implements the Command interface.
func (c SetEnabled) Channel() ChannelID { return c.ID }

func (c SetFrequency) command() {}
func (c SetAmplitude) command() {}
func (c SetDutyCycle) command() {}
func (c SetEnabled) command()   {}

// channelState is the synthesis-relevant summary of one channel. the APU
// captures a state after every register write and sequencer step and emits
// commands for whatever changed.
type channelState struct {
	frequency float32
	amplitude float32
	duty      float32
	enabled   bool
}

type apuState [NumChannels]channelState

func (a *APU) capture() apuState {
	var s apuState

	s[ChanPulse1] = channelState{
		frequency: pulseFrequency(a.pulse1.timer),
		amplitude: a.pulse1.amplitude(),
		duty:      dutyFraction[a.pulse1.duty],
		enabled:   a.pulse1.enabled,
	}
	s[ChanPulse2] = channelState{
		frequency: pulseFrequency(a.pulse2.timer),
		amplitude: a.pulse2.amplitude(),
		duty:      dutyFraction[a.pulse2.duty],
		enabled:   a.pulse2.enabled,
	}
	s[ChanTriangle] = channelState{
		frequency: pulseFrequency(a.triangle.timer) / 2,
		amplitude: a.triangle.amplitude(),
		enabled:   a.triangle.enabled,
	}
	s[ChanNoise] = channelState{
		frequency: NTSCClockRate / float32(a.noise.period),
		amplitude: a.noise.amplitude(),
		enabled:   a.noise.enabled,
	}

	return s
}

// diff appends a command for every field that differs between the two
// states.
func diff(before, after apuState, commands []Command) []Command {
	for id := ChannelID(0); id < NumChannels; id++ {
		b := before[id]
		f := after[id]

		if b.duty != f.duty {
			commands = append(commands, SetDutyCycle{ID: id, Duty: f.duty})
		}
		if b.amplitude != f.amplitude {
			commands = append(commands, SetAmplitude{ID: id, Level: f.amplitude})
		}
		if b.frequency != f.frequency {
			commands = append(commands, SetFrequency{ID: id, Hz: f.frequency})
		}
		if b.enabled != f.enabled {
			commands = append(commands, SetEnabled{ID: id, Enabled: f.enabled})
		}
	}
	return commands
}
