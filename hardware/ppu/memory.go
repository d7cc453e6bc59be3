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

package ppu

import (
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

// vram is the PPU's own address space: pattern tables through the cartridge
// CHR bus, four nametables folded by the cartridge's current mirroring, and
// palette RAM with its mirror entries.
type vram struct {
	cart *cartridge.Cartridge
	chr  memory.Bus

	nametables [4][0x0400]uint8
	palette    [32]uint8

	// palette reads are masked when the grayscale bit of PPUMASK is set.
	// updated by the PPU on writes to the mask register
	grayscale bool
}

func newVRAM(cart *cartridge.Cartridge) *vram {
	return &vram{
		cart: cart,
		chr:  cart.CHR(),
	}
}

// nametable index for the address, according to the cartridge's current
// mirroring. address has already been folded into 0x0000 to 0x0fff.
func (v *vram) nametableIndex(address uint16) int {
	table := int(address >> 10)

	switch v.cart.Mirroring() {
	case cartridge.MirrorHorizontal:
		return table >> 1
	case cartridge.MirrorVertical:
		return table & 0x01
	case cartridge.MirrorFourScreen:
		return table
	}

	// single screen
	return 0
}

// palette addresses 0x10/0x14/0x18/0x1c mirror their background entries
func paletteIndex(address uint16) int {
	address &= 0x001f
	switch address {
	case 0x0010, 0x0014, 0x0018, 0x001c:
		address -= 0x0010
	}
	return int(address)
}

// ReadReadonly implements the memory.Bus interface.
func (v *vram) ReadReadonly(address uint16) (uint8, bool) {
	address &= 0x3fff

	if address < 0x2000 {
		return v.chr.ReadReadonly(address)
	}

	if address < 0x3f00 {
		address &= 0x0fff
		return v.nametables[v.nametableIndex(address)][address&0x03ff], true
	}

	value := v.palette[paletteIndex(address)]
	if v.grayscale {
		value &= 0x30
	} else {
		value &= 0x3f
	}
	return value, true
}

// ReadSideEffects implements the memory.Bus interface.
func (v *vram) ReadSideEffects(_ uint16) {
}

// Write implements the memory.Bus interface.
func (v *vram) Write(address uint16, value uint8) {
	address &= 0x3fff

	if address < 0x2000 {
		v.chr.Write(address, value)
		return
	}

	if address < 0x3f00 {
		address &= 0x0fff
		v.nametables[v.nametableIndex(address)][address&0x03ff] = value
		return
	}

	v.palette[paletteIndex(address)] = value
}
