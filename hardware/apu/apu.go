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

import (
	"github.com/jetsetilly/gophernes/hardware/television"
)

// APU register addresses as seen by the CPU.
const (
	regPulse1Control uint16 = 0x4000
	regPulse1Sweep   uint16 = 0x4001
	regPulse1TimerLo uint16 = 0x4002
	regPulse1TimerHi uint16 = 0x4003
	regPulse2Control uint16 = 0x4004
	regPulse2Sweep   uint16 = 0x4005
	regPulse2TimerLo uint16 = 0x4006
	regPulse2TimerHi uint16 = 0x4007
	regTriControl    uint16 = 0x4008
	regTriTimerLo    uint16 = 0x400a
	regTriTimerHi    uint16 = 0x400b
	regNoiseControl  uint16 = 0x400c
	regNoisePeriod   uint16 = 0x400e
	regNoiseLength   uint16 = 0x400f
	regStatus        uint16 = 0x4015
	regFrameCounter  uint16 = 0x4017
)

// frame sequencer step positions in APU cycles.
const (
	seqQuarter1    = 3729
	seqHalf1       = 7457
	seqQuarter3    = 11186
	seqFourStepEnd = 14916
	seqFiveStepEnd = 18641
)

// APU is the 2A03's audio half: four channels sequenced by a frame counter
// and exposed to the CPU through registers 0x4000 to 0x4017.
//
// The APU does not produce samples directly. It reduces every register
// write and sequencer step to the stream of Commands needed to keep an
// oscillator bank in step with the channel state, and the oscillator bank
// renders the sound at whatever rate the mixer wants. See Synth.
type APU struct {
	pulse1   *pulseChannel
	pulse2   *pulseChannel
	triangle *triangleChannel
	noise    *noiseChannel

	// frame sequencer
	fiveStep   bool
	inhibitIRQ bool
	frameIRQ   bool

	// Cycles counts calls to Tick(). the frame sequencer counter resets
	// at the end of every sequence.
	Cycles      uint64
	frameCycles uint64

	prev     apuState
	commands []Command

	synth *Synth
	mixer television.AudioMixer
}

// NewAPU is the preferred method of initialisation of the APU type.
func NewAPU() *APU {
	a := &APU{
		pulse1:   newPulseChannel(true),
		pulse2:   newPulseChannel(false),
		triangle: &triangleChannel{},
		noise:    newNoiseChannel(),
		synth:    NewSynth(),
	}
	a.prev = a.capture()
	return a
}

// Reset the APU to its power-on state.
func (a *APU) Reset() {
	mixer := a.mixer
	*a = *NewAPU()
	a.mixer = mixer
}

// PlugMixer attaches the AudioMixer that receives the rendered samples at
// every frame boundary. A nil mixer is allowed; commands are still consumed
// by the oscillator bank so that a mixer attached later hears the right
// thing.
func (a *APU) PlugMixer(mixer television.AudioMixer) {
	a.mixer = mixer
}

// Tick the APU one cycle. The console calls this every sixth master tick,
// which is every other CPU cycle.
func (a *APU) Tick() {
	a.Cycles++
	a.frameCycles++

	var quarter, half bool

	switch a.frameCycles {
	case seqQuarter1:
		quarter = true
	case seqHalf1:
		quarter = true
		half = true
	case seqQuarter3:
		quarter = true
	case seqFourStepEnd:
		if !a.fiveStep {
			quarter = true
			half = true
			a.frameCycles = 0
			if !a.inhibitIRQ {
				a.frameIRQ = true
			}
		}
	case seqFiveStepEnd:
		quarter = true
		half = true
		a.frameCycles = 0
	}

	if quarter {
		a.pulse1.env.tick()
		a.pulse2.env.tick()
		a.noise.env.tick()
		a.triangle.linear.tick()
	}

	if half {
		a.pulse1.length.tick()
		a.pulse2.length.tick()
		a.triangle.length.tick()
		a.noise.length.tick()
		a.pulse1.swp.tick(&a.pulse1.timer)
		a.pulse2.swp.tick(&a.pulse2.timer)
	}

	rotate := func(s uint32) uint32 {
		return ((s & 0x0001) << 7) | ((s & 0x00fe) >> 1)
	}
	a.pulse1.seq.tick(a.pulse1.enabled, rotate)
	a.pulse2.seq.tick(a.pulse2.enabled, rotate)

	if quarter || half {
		a.observe()
	}
}

// observe diffs the current channel state against the last observation and
// queues commands for whatever changed.
func (a *APU) observe() {
	state := a.capture()
	a.commands = diff(a.prev, state, a.commands)
	a.prev = state
}

// ReadCommands returns the commands queued since the last call and empties
// the queue.
func (a *APU) ReadCommands() []Command {
	c := a.commands
	a.commands = nil
	return c
}

// EndFrame feeds the queued commands to the oscillator bank, renders a
// frame's worth of samples and hands them to the attached mixer.
func (a *APU) EndFrame() error {
	a.synth.Apply(a.ReadCommands())
	samples := a.synth.Render(television.SamplesPerFrame)
	if a.mixer == nil {
		return nil
	}
	return a.mixer.SetAudio(samples)
}

// EndMixing tells the attached mixer that no more samples are coming.
func (a *APU) EndMixing() error {
	if a.mixer == nil {
		return nil
	}
	return a.mixer.EndMixing()
}

// IRQLine returns the state of the frame counter's interrupt line. the
// line stays raised until the status register is read or the interrupt is
// inhibited.
func (a *APU) IRQLine() bool {
	return a.frameIRQ
}

// ReadReadonly implements the memory.Bus interface. only the status
// register is readable.
func (a *APU) ReadReadonly(address uint16) (uint8, bool) {
	if address != regStatus {
		return 0, false
	}

	var v uint8
	if a.pulse1.length.counter > 0 {
		v |= 0x01
	}
	if a.pulse2.length.counter > 0 {
		v |= 0x02
	}
	if a.triangle.length.counter > 0 {
		v |= 0x04
	}
	if a.noise.length.counter > 0 {
		v |= 0x08
	}
	if a.frameIRQ {
		v |= 0x40
	}
	return v, true
}

// ReadSideEffects implements the memory.Bus interface. reading the status
// register acknowledges the frame interrupt.
func (a *APU) ReadSideEffects(address uint16) {
	if address == regStatus {
		a.frameIRQ = false
	}
}

// Write implements the memory.Bus interface.
func (a *APU) Write(address uint16, value uint8) {
	switch address {
	case regPulse1Control:
		a.pulse1.writeControl(value)
	case regPulse1Sweep:
		a.pulse1.writeSweep(value)
	case regPulse1TimerLo:
		a.pulse1.writeTimerLow(value)
	case regPulse1TimerHi:
		a.pulse1.writeTimerHigh(value)
	case regPulse2Control:
		a.pulse2.writeControl(value)
	case regPulse2Sweep:
		a.pulse2.writeSweep(value)
	case regPulse2TimerLo:
		a.pulse2.writeTimerLow(value)
	case regPulse2TimerHi:
		a.pulse2.writeTimerHigh(value)
	case regTriControl:
		a.triangle.writeControl(value)
	case regTriTimerLo:
		a.triangle.writeTimerLow(value)
	case regTriTimerHi:
		a.triangle.writeTimerHigh(value)
	case regNoiseControl:
		a.noise.writeControl(value)
	case regNoisePeriod:
		a.noise.writeModePeriod(value)
	case regNoiseLength:
		a.noise.writeLength(value)
	case regStatus:
		a.writeStatus(value)
	case regFrameCounter:
		a.writeFrameCounter(value)
	default:
		return
	}

	a.observe()
}

func (a *APU) writeStatus(value uint8) {
	a.pulse1.enabled = value&0x01 == 0x01
	a.pulse2.enabled = value&0x02 == 0x02
	a.triangle.enabled = value&0x04 == 0x04
	a.noise.enabled = value&0x08 == 0x08

	a.pulse1.length.enabled = a.pulse1.enabled
	a.pulse2.length.enabled = a.pulse2.enabled
	a.triangle.length.enabled = a.triangle.enabled
	a.noise.length.enabled = a.noise.enabled

	// disabling a channel zeroes its length counter immediately
	if !a.pulse1.enabled {
		a.pulse1.length.counter = 0
	}
	if !a.pulse2.enabled {
		a.pulse2.length.counter = 0
	}
	if !a.triangle.enabled {
		a.triangle.length.counter = 0
	}
	if !a.noise.enabled {
		a.noise.length.counter = 0
	}
}

func (a *APU) writeFrameCounter(value uint8) {
	a.fiveStep = value&0x80 == 0x80
	a.inhibitIRQ = value&0x40 == 0x40
	if a.inhibitIRQ {
		a.frameIRQ = false
	}
	a.frameCycles = 0
}
