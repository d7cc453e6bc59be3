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

package dma_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/dma"
	"github.com/jetsetilly/gophernes/test"
)

// mockBus records everything written to the OAMDATA register
type mockBus struct {
	internal [0x10000]uint8
	oam      []uint8
}

func (m *mockBus) ReadReadonly(address uint16) (uint8, bool) {
	return m.internal[address], true
}

func (m *mockBus) ReadSideEffects(_ uint16) {
}

func (m *mockBus) Write(address uint16, value uint8) {
	if address == 0x2004 {
		m.oam = append(m.oam, value)
		return
	}
	m.internal[address] = value
}

func TestTransfer(t *testing.T) {
	mem := &mockBus{}
	for i := 0; i < 256; i++ {
		mem.internal[0x0300+i] = uint8(i)
	}

	d := dma.NewDMA()
	test.Equate(t, d.Active(), false)

	d.Start(0x03)
	test.Equate(t, d.Active(), true)

	// the console ticks the DMA unit on every third master cycle so the
	// parity seen by successive ticks alternates
	cycle := uint64(0)
	for d.Active() {
		d.Tick(cycle, mem)
		cycle += 3
	}

	test.Equate(t, len(mem.oam), 256)
	for i, v := range mem.oam {
		if v != uint8(i) {
			t.Fatalf("OAM byte %d is %#02x", i, v)
		}
	}
}

func TestDummyAlignment(t *testing.T) {
	mem := &mockBus{}
	d := dma.NewDMA()
	d.Start(0x02)

	// even cycles do not end the dummy wait
	d.Tick(0, mem)
	d.Tick(2, mem)
	test.Equate(t, len(mem.oam), 0)

	// an odd cycle aligns the unit; the next even/odd pair moves a byte
	d.Tick(3, mem)
	d.Tick(4, mem)
	d.Tick(5, mem)
	test.Equate(t, len(mem.oam), 1)
}

func TestReset(t *testing.T) {
	mem := &mockBus{}
	d := dma.NewDMA()
	d.Start(0x07)
	d.Tick(1, mem)
	d.Reset()
	test.Equate(t, d.Active(), false)
}
