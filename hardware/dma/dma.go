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

// Package dma implements the 2A03's sprite DMA unit. A write to register
// 0x4014 suspends the CPU and copies a 256 byte page of CPU-visible memory
// into the PPU's object attribute memory, one byte every two CPU cycles.
package dma

import (
	"github.com/jetsetilly/gophernes/hardware/memory"
)

// the OAMDATA register. transferred bytes are pushed through the same port
// the CPU would use, so the PPU's OAM address increments as it would for a
// manual copy.
const regOAMData = 0x2004

// DMA is the sprite DMA unit. While a transfer is active the unit takes
// the CPU's place on the bus: the console ticks the DMA instead of the CPU
// until the transfer has finished.
type DMA struct {
	page uint8
	addr uint8
	data uint8

	transfer bool

	// a transfer cannot begin until the unit has synchronised with the
	// master clock. the dummy cycle waits for odd alignment so that reads
	// land on even cycles and writes on odd cycles.
	dummy bool
}

// NewDMA is the preferred method of initialisation of the DMA type.
func NewDMA() *DMA {
	return &DMA{dummy: true}
}

// Reset the DMA unit, abandoning any transfer in progress.
func (d *DMA) Reset() {
	d.page = 0
	d.addr = 0
	d.data = 0
	d.transfer = false
	d.dummy = true
}

// Start a transfer from the named page. Called on a write to 0x4014.
func (d *DMA) Start(page uint8) {
	d.page = page
	d.addr = 0
	d.transfer = true
}

// Active is true while a transfer is in progress. The console must not
// tick the CPU while the DMA unit is active.
func (d *DMA) Active() bool {
	return d.transfer
}

// Tick performs one step of the transfer. masterCycle decides the phase:
// the unit reads from the source page on even cycles and writes to OAM on
// odd cycles. bus is the CPU's view of memory.
func (d *DMA) Tick(masterCycle uint64, bus memory.Bus) {
	if !d.transfer {
		return
	}

	if d.dummy {
		if masterCycle%2 == 1 {
			d.dummy = false
		}
		return
	}

	if masterCycle%2 == 0 {
		d.data = memory.Read(bus, (uint16(d.page)<<8)|uint16(d.addr))
	} else {
		bus.Write(regOAMData, d.data)
		d.addr++
		if d.addr == 0 {
			d.transfer = false
			d.dummy = true
		}
	}
}
