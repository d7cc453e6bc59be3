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

const (
	// NTSCClockRate is the CPU clock in Hz.
	NTSCClockRate = 1789773.0

	// maxPulseFrequency caps the frequency derived from a pulse timer.
	// small timer values produce frequencies far beyond anything the
	// oscillators can usefully render.
	maxPulseFrequency = 13000.0
)

// the four pulse duty settings as sequencer bit patterns and as the
// fraction of the cycle spent high.
var dutySequence = [4]uint32{0b00000001, 0b00000011, 0b00001111, 0b11111100}
var dutyFraction = [4]float32{0.125, 0.25, 0.50, 0.75}

// noisePeriodTable is indexed by the low four bits of the noise channel's
// mode/period register. values are CPU cycles per shift of the feedback
// register.
var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160,
	202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// pulseFrequency converts an 11-bit timer period to Hz.
func pulseFrequency(timer uint16) float32 {
	f := NTSCClockRate / ((float32(timer) + 1) * 16)
	if f > maxPulseFrequency {
		f = maxPulseFrequency
	}
	return f
}

type pulseChannel struct {
	seq    sequencer
	env    envelope
	swp    sweep
	length lengthCounter
	timer  uint16
	duty   uint8

	enabled bool
}

func newPulseChannel(onesComplement bool) *pulseChannel {
	ch := &pulseChannel{}
	ch.swp.onesComplement = onesComplement
	return ch
}

// register 0x4000 / 0x4004
func (ch *pulseChannel) writeControl(value uint8) {
	ch.duty = value >> 6
	ch.seq.sequence = dutySequence[ch.duty]
	ch.length.halt = value&0x20 == 0x20
	ch.env.loop = value&0x20 == 0x20
	ch.env.enabled = value&0x10 == 0x00
	ch.env.volume = value & 0x0f
}

// register 0x4001 / 0x4005
func (ch *pulseChannel) writeSweep(value uint8) {
	ch.swp.enabled = value&0x80 == 0x80
	ch.swp.period = (value >> 4) & 0x07
	ch.swp.negate = value&0x08 == 0x08
	ch.swp.shift = value & 0x07
	ch.swp.reload = true
}

// register 0x4002 / 0x4006
func (ch *pulseChannel) writeTimerLow(value uint8) {
	ch.timer = (ch.timer & 0x0700) | uint16(value)
	ch.seq.reload = ch.timer
}

// register 0x4003 / 0x4007
func (ch *pulseChannel) writeTimerHigh(value uint8) {
	ch.timer = (ch.timer & 0x00ff) | (uint16(value&0x07) << 8)
	ch.seq.reload = ch.timer
	ch.length.load(value >> 3)
	ch.env.start = true
}

// amplitude is zero when the length counter has expired, when the sweep
// unit is muting the channel, or when the envelope output is too low to
// hear.
func (ch *pulseChannel) amplitude() float32 {
	_, mute := ch.swp.target(ch.timer)
	if ch.length.counter > 0 && !mute && ch.env.output > 2 {
		return float32(ch.env.output-1) / 16
	}
	return 0
}

type triangleChannel struct {
	linear linearCounter
	length lengthCounter
	timer  uint16

	enabled bool
}

// register 0x4008
func (ch *triangleChannel) writeControl(value uint8) {
	ch.linear.control = value&0x80 == 0x80
	ch.length.halt = value&0x80 == 0x80
	ch.linear.reloadValue = value & 0x7f
}

// register 0x400a
func (ch *triangleChannel) writeTimerLow(value uint8) {
	ch.timer = (ch.timer & 0x0700) | uint16(value)
}

// register 0x400b
func (ch *triangleChannel) writeTimerHigh(value uint8) {
	ch.timer = (ch.timer & 0x00ff) | (uint16(value&0x07) << 8)
	ch.length.load(value >> 3)
	ch.linear.reload = true
}

func (ch *triangleChannel) amplitude() float32 {
	if ch.length.counter > 0 && ch.linear.counter > 0 {
		return 1
	}
	return 0
}

type noiseChannel struct {
	env    envelope
	length lengthCounter
	period uint16
	mode   bool

	enabled bool
}

func newNoiseChannel() *noiseChannel {
	return &noiseChannel{period: noisePeriodTable[0]}
}

// register 0x400c
func (ch *noiseChannel) writeControl(value uint8) {
	ch.length.halt = value&0x20 == 0x20
	ch.env.loop = value&0x20 == 0x20
	ch.env.enabled = value&0x10 == 0x00
	ch.env.volume = value & 0x0f
}

// register 0x400e
func (ch *noiseChannel) writeModePeriod(value uint8) {
	ch.mode = value&0x80 == 0x80
	ch.period = noisePeriodTable[value&0x0f]
}

// register 0x400f
func (ch *noiseChannel) writeLength(value uint8) {
	ch.length.load(value >> 3)
	ch.env.start = true
}

func (ch *noiseChannel) amplitude() float32 {
	if ch.length.counter > 0 && ch.env.output > 0 {
		return float32(ch.env.output-1) / 16
	}
	return 0
}
