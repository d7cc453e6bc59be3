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

// Package controllers implements the standard joypad. The joypad is a
// parallel-in serial-out shift register: any write to 0x4016 latches the
// live button state into both joypads and every read of 0x4016 or 0x4017
// returns one bit and shifts the register along.
package controllers

// Button identifies one of the eight joypad buttons.
type Button int

// List of valid Button values. The order matches the bit order of the
// latched shift register, least significant bit first.
const (
	Right Button = iota
	Left
	Down
	Up
	Start
	Select
	B
	A
)

func (b Button) String() string {
	switch b {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	case Start:
		return "start"
	case Select:
		return "select"
	case B:
		return "B"
	case A:
		return "A"
	}
	return "unknown"
}

// Joypad is one standard controller.
type Joypad struct {
	// live button state, latched into the shift register on any write to
	// the controller's register
	state uint8

	shiftRegister uint8
}

// NewJoypad is the preferred method of initialisation of the Joypad type.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Set the live state of a button. The console will not see the change
// until it latches the joypad.
func (j *Joypad) Set(button Button, pressed bool) {
	mask := uint8(1) << uint(button)
	if pressed {
		j.state |= mask
	} else {
		j.state &^= mask
	}
}

// IsPressed returns the live state of a button.
func (j *Joypad) IsPressed(button Button) bool {
	return j.state&(uint8(1)<<uint(button)) != 0
}

// ReadReadonly implements the memory.Bus interface. The joypad claims a
// single address so the address argument is ignored. The returned value
// is the top bit of the shift register.
func (j *Joypad) ReadReadonly(_ uint16) (uint8, bool) {
	if j.shiftRegister&0x80 == 0x80 {
		return 1, true
	}
	return 0, true
}

// ReadSideEffects implements the memory.Bus interface. A read shifts the
// register along one place.
func (j *Joypad) ReadSideEffects(_ uint16) {
	j.shiftRegister <<= 1
}

// Write implements the memory.Bus interface. It does not matter what is
// written; any write latches the live button state.
func (j *Joypad) Write(_ uint16, _ uint8) {
	j.shiftRegister = j.state
}

// Latch the live button state into the shift register. Equivalent to a
// write.
func (j *Joypad) Latch() {
	j.Write(0, 0)
}
