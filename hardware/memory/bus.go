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

// Package memory defines the bus contract shared by every addressable unit
// in the console; and the work RAM which is the simplest implementation of
// that contract.
//
// The contract splits a read into two halves. ReadReadonly() returns the
// value at an address with no other consequence, which is what debuggers and
// disassemblers want. ReadSideEffects() applies whatever consequences a real
// read has (clearing a status flag, bumping an internal address, etc). The
// Read() function composes the two halves, observing the value before the
// side effects run. Hardware reads always go through Read() so the value
// returned is always the value a debugger would have seen immediately before
// the read happened.
//
// Units that claim a subset of another bus's addresses (cartridge mappers
// most obviously) are written as decorators: the outer bus handles the
// addresses it knows about and forwards everything else to the inner bus.
package memory

// Bus is implemented by every addressable unit in the console.
type Bus interface {
	// ReadReadonly returns the value at the address without triggering any
	// side effects. The second return value is false if the address is not
	// mapped to anything.
	ReadReadonly(address uint16) (uint8, bool)

	// ReadSideEffects applies the consequences of a read of the address
	// without returning a value.
	ReadSideEffects(address uint16)

	// Write the value to the address.
	Write(address uint16, value uint8)
}

// Read performs a full read of the address: the value is observed before any
// side effects are applied. Reads of unmapped addresses return zero.
func Read(bus Bus, address uint16) uint8 {
	v, ok := bus.ReadReadonly(address)
	if !ok {
		v = 0
	}
	bus.ReadSideEffects(address)
	return v
}

// Readreadonly is a convenience for the many callers that want the readonly
// value and are happy with zero for unmapped addresses.
func ReadReadonly(bus Bus, address uint16) uint8 {
	v, ok := bus.ReadReadonly(address)
	if !ok {
		return 0
	}
	return v
}
