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

package memory

import "github.com/jetsetilly/gophernes/hardware/memory/memorymap"

// RAM is the 2k of work RAM wired to the bottom of the CPU address space.
// The same physical memory appears four times up to 0x1fff.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type
func NewRAM() *RAM {
	return &RAM{
		data: make([]uint8, memorymap.MaskRAM+1),
	}
}

// Snapshot creates a copy of RAM in its current state
func (r *RAM) Snapshot() *RAM {
	n := *r
	n.data = make([]uint8, len(r.data))
	copy(n.data, r.data)
	return &n
}

// Reset fills RAM with zeros
func (r *RAM) Reset() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// ReadReadonly implements the Bus interface
func (r *RAM) ReadReadonly(address uint16) (uint8, bool) {
	return r.data[address&memorymap.MaskRAM], true
}

// ReadSideEffects implements the Bus interface. RAM reads have no side
// effects.
func (r *RAM) ReadSideEffects(_ uint16) {
}

// Write implements the Bus interface
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address&memorymap.MaskRAM] = value
}
