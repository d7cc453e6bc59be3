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

// lengthTable is indexed by the five length-load bits of the channel's
// high timer register.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6,
	160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22,
	192, 24, 72, 26, 16, 28, 32, 30,
}

// sequencer is the shared countdown-and-rotate unit behind the pulse duty
// cycles. the timer counts down in APU cycles and the sequence is advanced
// by the supplied function whenever it expires.
type sequencer struct {
	sequence uint32
	timer    uint16
	reload   uint16
	output   uint8
}

func (s *sequencer) tick(enabled bool, advance func(uint32) uint32) uint8 {
	if enabled {
		s.timer--
		if s.timer == 0xffff {
			s.timer = s.reload + 1
			s.sequence = advance(s.sequence)
			s.output = uint8(s.sequence & 0x01)
		}
	}
	return s.output
}

// envelope is the volume decay unit shared by the pulse and noise channels.
// when disabled the output is the constant volume setting.
type envelope struct {
	start   bool
	loop    bool
	enabled bool
	divider uint8
	decay   uint8
	volume  uint8
	output  uint8
}

// tick is called on every quarter frame.
func (e *envelope) tick() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.volume
	} else if e.divider == 0 {
		e.divider = e.volume
		if e.decay == 0 {
			if e.loop {
				e.decay = 15
			}
		} else {
			e.decay--
		}
	} else {
		e.divider--
	}

	if e.enabled {
		e.output = e.decay
	} else {
		e.output = e.volume
	}
}

// lengthCounter silences a channel after a loaded duration. disabling the
// channel through the status register zeroes the counter immediately.
type lengthCounter struct {
	counter uint8
	enabled bool
	halt    bool
}

// tick is called on every half frame.
func (lc *lengthCounter) tick() {
	if !lc.enabled {
		lc.counter = 0
		return
	}
	if lc.counter > 0 && !lc.halt {
		lc.counter--
	}
}

func (lc *lengthCounter) load(index uint8) {
	if lc.enabled {
		lc.counter = lengthTable[index&0x1f]
	}
}

// linearCounter is the triangle channel's fine-grained duration unit. it is
// reloaded by a write to the channel's high timer register and counts down
// on quarter frames.
type linearCounter struct {
	counter     uint8
	reload      bool
	reloadValue uint8
	control     bool
}

// tick is called on every quarter frame.
func (lc *linearCounter) tick() {
	if lc.reload {
		lc.counter = lc.reloadValue
	} else if lc.counter > 0 {
		lc.counter--
	}
	if !lc.control {
		lc.reload = false
	}
}

// sweep periodically retunes a pulse channel's timer. pulse 1 negates with
// ones complement, pulse 2 with twos complement.
type sweep struct {
	enabled        bool
	shift          uint8
	negate         bool
	onesComplement bool
	period         uint8
	divider        uint8
	reload         bool
}

// target returns the period the sweep is moving towards and whether the
// channel is muted. muting applies when the current period is below 8 or
// the target is above 0x7ff, whether or not the sweep is enabled.
func (s *sweep) target(timer uint16) (int, bool) {
	change := int(timer >> s.shift)
	if s.negate {
		change = -change
		if s.onesComplement {
			change--
		}
	}
	target := int(timer) + change
	mute := timer < 8 || target > 0x7ff
	return target, mute
}

// tick is called on every half frame. the channel's timer is adjusted in
// place.
func (s *sweep) tick(timer *uint16) {
	target, mute := s.target(*timer)

	if s.divider == 0 && s.enabled && s.shift > 0 && !mute {
		if target < 0 {
			target = 0
		}
		*timer = uint16(target) & 0x07ff
	}

	if s.divider == 0 || s.reload {
		s.divider = s.period
		s.reload = false
	} else {
		s.divider--
	}
}
