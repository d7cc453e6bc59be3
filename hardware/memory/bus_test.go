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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/test"
)

// a bus with one mapped address whose read side effect destroys the value.
// a full read must return the value from before the side effect ran.
type destructiveBus struct {
	value uint8
}

func (b *destructiveBus) ReadReadonly(address uint16) (uint8, bool) {
	if address == 0x0001 {
		return b.value, true
	}
	return 0, false
}

func (b *destructiveBus) ReadSideEffects(address uint16) {
	if address == 0x0001 {
		b.value = 0
	}
}

func (b *destructiveBus) Write(address uint16, value uint8) {
	if address == 0x0001 {
		b.value = value
	}
}

func TestReadObservesValueBeforeSideEffects(t *testing.T) {
	bus := &destructiveBus{}
	bus.Write(0x0001, 0xab)

	ro, ok := bus.ReadReadonly(0x0001)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, memory.Read(bus, 0x0001), ro)

	// the side effect has run and the value is gone
	test.Equate(t, memory.ReadReadonly(bus, 0x0001), 0x00)
}

func TestUnmappedReadsReturnZero(t *testing.T) {
	bus := &destructiveBus{}
	bus.Write(0x0001, 0xff)

	_, ok := bus.ReadReadonly(0x2000)
	test.ExpectedFailure(t, ok)
	test.Equate(t, memory.Read(bus, 0x2000), 0x00)
}

func TestRAMMirroring(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x0173, 0x64)
	test.Equate(t, memory.Read(ram, 0x0173), 0x64)
	test.Equate(t, memory.Read(ram, 0x0973), 0x64)
	test.Equate(t, memory.Read(ram, 0x1973), 0x64)

	ram.Write(0x1173, 0x65)
	test.Equate(t, memory.Read(ram, 0x0173), 0x65)
}
