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
	"math"

	"github.com/jetsetilly/gophernes/hardware/television"
)

// number of sine harmonics summed per oscillator. enough to sound square
// without audible ringing.
const harmonics = 20

// scale applied to each channel before summing into an int16 sample.
const channelGain = 0.25 * 32767

type waveform int

const (
	waveformSquare waveform = iota
	waveformTriangle
	waveformNoise
)

// oscillator renders one channel. square and triangle waves are built
// additively from sine harmonics, which keeps the edges band-limited at
// the cost of a little softness. noise replays the hardware's 15-bit
// feedback register at the commanded rate.
type oscillator struct {
	waveform    waveform
	sampleIndex float32
	frequency   float32
	amplitude   float32
	duty        float32
	enabled     bool

	// noise state
	shift uint16
	mode  bool
	phase float32
}

func (o *oscillator) sample(sampleRate float32) float32 {
	o.sampleIndex = float32(math.Mod(float64(o.sampleIndex+1), float64(sampleRate)))

	if !o.enabled || o.amplitude == 0 {
		return 0
	}

	switch o.waveform {
	case waveformSquare:
		return o.squareSample(sampleRate)
	case waveformTriangle:
		return o.triangleSample(sampleRate)
	case waveformNoise:
		return o.noiseSample(sampleRate)
	}
	return 0
}

func (o *oscillator) squareSample(sampleRate float32) float32 {
	const twoPi = 2 * math.Pi

	p := float64(o.duty) * twoPi
	var wave1, wave2 float64

	for n := 1; n <= harmonics; n++ {
		fn := float64(n)
		r := (fn * float64(o.frequency) * twoPi * float64(o.sampleIndex)) / float64(sampleRate)
		wave1 += -math.Sin(r) / fn
		wave2 += -math.Sin(r-p*fn) / fn
	}

	return float32((2 * float64(o.amplitude) / math.Pi) * (wave1 - wave2))
}

func (o *oscillator) triangleSample(sampleRate float32) float32 {
	const twoPi = 2 * math.Pi

	var output float64

	// odd harmonics only
	for i := 0; i < harmonics; i++ {
		fn := float64(i*2 + 1)
		r := (fn * float64(o.frequency) * twoPi * float64(o.sampleIndex)) / float64(sampleRate)
		output += -math.Sin(r) / fn
	}

	return float32((2 / math.Pi) * output * float64(o.amplitude))
}

func (o *oscillator) noiseSample(sampleRate float32) float32 {
	// step the feedback register as many times as the commanded rate
	// requires for one output sample
	o.phase += o.frequency / sampleRate
	for o.phase >= 1 {
		o.phase--

		feedbackBit := uint16(1)
		if o.mode {
			feedbackBit = 6
		}
		feedback := (o.shift & 0x01) ^ ((o.shift >> feedbackBit) & 0x01)
		o.shift = (o.shift >> 1) | (feedback << 14)
	}

	return float32(o.shift&0x01) * o.amplitude
}

// Synth is the oscillator bank that turns the APU's command stream into
// PCM samples.
type Synth struct {
	oscillators [NumChannels]*oscillator
	samples     []int16
}

// NewSynth is the preferred method of initialisation of the Synth type.
func NewSynth() *Synth {
	s := &Synth{}
	s.oscillators[ChanPulse1] = &oscillator{waveform: waveformSquare, frequency: 440, duty: 0.125}
	s.oscillators[ChanPulse2] = &oscillator{waveform: waveformSquare, frequency: 440, duty: 0.125}
	s.oscillators[ChanTriangle] = &oscillator{waveform: waveformTriangle, frequency: 440}
	s.oscillators[ChanNoise] = &oscillator{waveform: waveformNoise, frequency: 440, shift: 1}
	return s
}

// Apply a batch of commands to the bank.
func (s *Synth) Apply(commands []Command) {
	for _, c := range commands {
		osc := s.oscillators[c.Channel()]
		switch c := c.(type) {
		case SetFrequency:
			osc.frequency = c.Hz
		case SetAmplitude:
			osc.amplitude = c.Level
		case SetDutyCycle:
			osc.duty = c.Duty
		case SetEnabled:
			osc.enabled = c.Enabled
		}
	}
}

// Render n samples at the television sample rate, mixing all four
// channels. the returned slice is reused by the next call to Render.
func (s *Synth) Render(n int) []int16 {
	if cap(s.samples) < n {
		s.samples = make([]int16, n)
	}
	s.samples = s.samples[:n]

	for i := range s.samples {
		var v float32
		for _, osc := range s.oscillators {
			v += osc.sample(television.SampleRate)
		}
		f := v * channelGain
		if f > 32767 {
			f = 32767
		} else if f < -32768 {
			f = -32768
		}
		s.samples[i] = int16(f)
	}

	return s.samples
}
