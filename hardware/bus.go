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

package hardware

import (
	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/dma"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"
)

// CPUBus is the CPU's view of the console: work RAM, the PPU registers,
// the IO area and the cartridge, routed by memorymap area.
type CPUBus struct {
	ram     *memory.RAM
	ppu     *ppu.PPU
	apu     *apu.APU
	dma     *dma.DMA
	cart    *cartridge.Cartridge
	joypads [2]*controllers.Joypad
}

// ReadReadonly implements the memory.Bus interface.
func (b *CPUBus) ReadReadonly(address uint16) (uint8, bool) {
	_, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return b.ram.ReadReadonly(address)
	case memorymap.PPU:
		return b.ppu.ReadReadonly(address)
	case memorymap.IO:
		switch {
		case address == memorymap.AddressOAMDMA:
			return 0, false
		case address < memorymap.AddressController1:
			return b.apu.ReadReadonly(address)
		case address <= memorymap.AddressController2:
			return b.joypads[address-memorymap.AddressController1].ReadReadonly(address)
		}
		return 0, false
	case memorymap.Cartridge:
		return b.cart.ReadReadonly(address)
	}

	return 0, false
}

// ReadSideEffects implements the memory.Bus interface.
func (b *CPUBus) ReadSideEffects(address uint16) {
	_, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.PPU:
		b.ppu.ReadSideEffects(address)
	case memorymap.IO:
		switch {
		case address == memorymap.AddressOAMDMA:
		case address < memorymap.AddressController1:
			b.apu.ReadSideEffects(address)
		case address <= memorymap.AddressController2:
			b.joypads[address-memorymap.AddressController1].ReadSideEffects(address)
		}
	case memorymap.Cartridge:
		b.cart.ReadSideEffects(address)
	}
}

// Write implements the memory.Bus interface.
func (b *CPUBus) Write(address uint16, value uint8) {
	_, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		b.ram.Write(address, value)
	case memorymap.PPU:
		b.ppu.Write(address, value)
	case memorymap.IO:
		switch {
		case address == memorymap.AddressOAMDMA:
			b.dma.Start(value)
		case address < memorymap.AddressController1:
			b.apu.Write(address, value)
		case address == memorymap.AddressController1:
			// any write to the controller area latches both joypads
			b.joypads[0].Write(address, value)
			b.joypads[1].Write(address, value)
		case address == memorymap.AddressController2:
			// the frame counter register shares its address with the
			// second controller
			b.apu.Write(address, value)
			b.joypads[0].Write(address, value)
			b.joypads[1].Write(address, value)
		default:
			logger.Logf(logger.Allow, "bus", "write to unmapped address (%#04x)", address)
		}
	case memorymap.Cartridge:
		b.cart.Write(address, value)
	}
}
