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

package apu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/test"
)

func tick(a *apu.APU, n int) {
	for i := 0; i < n; i++ {
		a.Tick()
	}
}

func containsCommand(commands []apu.Command, want apu.Command) bool {
	for _, c := range commands {
		if c == want {
			return true
		}
	}
	return false
}

// frequency of an 11-bit pulse timer, mirroring the derivation the APU
// uses when it emits SetFrequency commands
func pulseHz(timer int) float32 {
	return float32(1789773.0) / ((float32(timer) + 1) * 16)
}

func TestStatusLengthBits(t *testing.T) {
	a := apu.NewAPU()

	// length counters load only while the channel is enabled
	a.Write(0x4003, 0x08)
	test.Equate(t, memory.ReadReadonly(a, 0x4015)&0x01, 0x00)

	a.Write(0x4015, 0x01)
	a.Write(0x4003, 0x08)
	test.Equate(t, memory.ReadReadonly(a, 0x4015)&0x01, 0x01)

	// disabling the channel zeroes the counter immediately
	a.Write(0x4015, 0x00)
	test.Equate(t, memory.ReadReadonly(a, 0x4015)&0x01, 0x00)
}

func TestLengthCounterCountdown(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4015, 0x01)

	// length index 3 loads the shortest entry in the table (2)
	a.Write(0x4003, 0x18)

	tick(a, 7457)
	test.Equate(t, memory.ReadReadonly(a, 0x4015)&0x01, 0x01)

	tick(a, 14916-7457)
	test.Equate(t, memory.ReadReadonly(a, 0x4015)&0x01, 0x00)
}

func TestFrameIRQ(t *testing.T) {
	a := apu.NewAPU()

	tick(a, 14915)
	test.Equate(t, a.IRQLine(), false)
	tick(a, 1)
	test.Equate(t, a.IRQLine(), true)

	// reading the status register acknowledges the interrupt
	v := memory.Read(a, 0x4015)
	test.Equate(t, v&0x40, 0x40)
	test.Equate(t, a.IRQLine(), false)
}

func TestFrameIRQInhibit(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4017, 0x40)
	tick(a, 14916)
	test.Equate(t, a.IRQLine(), false)
}

func TestFiveStepNoIRQ(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4017, 0x80)
	tick(a, 14916)
	test.Equate(t, a.IRQLine(), false)
	tick(a, 18641-14916)
	test.Equate(t, a.IRQLine(), false)
}

func TestCommands(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4015, 0x01)
	commands := a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetEnabled{ID: apu.ChanPulse1, Enabled: true}), true)

	a.Write(0x4002, 0xfd)
	commands = a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetFrequency{ID: apu.ChanPulse1, Hz: pulseHz(0xfd)}), true)

	a.Write(0x4000, 0x80)
	commands = a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetDutyCycle{ID: apu.ChanPulse1, Duty: 0.5}), true)

	// nothing changed; no commands
	test.Equate(t, len(a.ReadCommands()), 0)
}

func TestSweep(t *testing.T) {
	a := apu.NewAPU()

	// pulse 1 negates with ones complement, pulse 2 with twos complement
	a.Write(0x4001, 0x89)
	a.Write(0x4002, 0x00)
	a.Write(0x4003, 0x02)
	a.Write(0x4005, 0x89)
	a.Write(0x4006, 0x00)
	a.Write(0x4007, 0x02)
	a.ReadCommands()

	// first half frame applies the sweep: 0x200 >> 1 negated
	tick(a, 7457)
	commands := a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetFrequency{ID: apu.ChanPulse1, Hz: pulseHz(0x200 - 0x100 - 1)}), true)
	test.Equate(t, containsCommand(commands, apu.SetFrequency{ID: apu.ChanPulse2, Hz: pulseHz(0x200 - 0x100)}), true)
}

func TestTriangleLinearCounter(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4015, 0x04)
	a.Write(0x4008, 0x05)
	a.Write(0x400b, 0x08)
	a.ReadCommands()

	// the first quarter frame reloads the linear counter and the channel
	// becomes audible
	tick(a, 3729)
	commands := a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetAmplitude{ID: apu.ChanTriangle, Level: 1}), true)

	// five more quarter frames count the reload value of 5 down to zero
	tick(a, 14916-3729)
	tick(a, 7457)
	commands = a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetAmplitude{ID: apu.ChanTriangle, Level: 0}), true)
}

func TestEnvelopeDecay(t *testing.T) {
	a := apu.NewAPU()

	a.Write(0x4015, 0x01)

	// envelope mode with a divider period of zero decays by one step per
	// quarter frame, starting from 15. the timer must be high enough that
	// the sweep unit is not muting the channel
	a.Write(0x4000, 0x00)
	a.Write(0x4002, 0xfd)
	a.Write(0x4003, 0x08)
	a.ReadCommands()

	tick(a, 3729)
	commands := a.ReadCommands()
	test.Equate(t, containsCommand(commands, apu.SetAmplitude{ID: apu.ChanPulse1, Level: 0.875}), true)
}

func TestSynthRender(t *testing.T) {
	s := apu.NewSynth()

	samples := s.Render(100)
	test.Equate(t, len(samples), 100)

	silent := true
	for _, v := range samples {
		if v != 0 {
			silent = false
		}
	}
	test.Equate(t, silent, true)

	s.Apply([]apu.Command{
		apu.SetEnabled{ID: apu.ChanPulse1, Enabled: true},
		apu.SetFrequency{ID: apu.ChanPulse1, Hz: 440},
		apu.SetAmplitude{ID: apu.ChanPulse1, Level: 0.5},
	})

	audible := false
	for _, v := range s.Render(100) {
		if v != 0 {
			audible = true
		}
	}
	test.Equate(t, audible, true)
}
