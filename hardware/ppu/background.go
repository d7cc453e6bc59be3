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
)

func (p *PPU) incrementScrollX() {
	if !p.Mask.Rendering() {
		return
	}

	if p.VRAMAddr.CoarseX == 31 {
		p.VRAMAddr.CoarseX = 0
		p.VRAMAddr.NametableX = !p.VRAMAddr.NametableX
	} else {
		p.VRAMAddr.CoarseX++
	}
}

func (p *PPU) incrementScrollY() {
	if !p.Mask.Rendering() {
		return
	}

	if p.VRAMAddr.FineY < 7 {
		p.VRAMAddr.FineY++
		return
	}
	p.VRAMAddr.FineY = 0

	// coarse Y 29 is the last row of tiles. a coarse Y of 30 or 31 is in
	// the attribute table area, which some software deliberately scrolls
	// into; it wraps without switching nametable
	switch p.VRAMAddr.CoarseY {
	case 29:
		p.VRAMAddr.CoarseY = 0
		p.VRAMAddr.NametableY = !p.VRAMAddr.NametableY
	case 31:
		p.VRAMAddr.CoarseY = 0
	default:
		p.VRAMAddr.CoarseY++
	}
}

func (p *PPU) transferAddressX() {
	if !p.Mask.Rendering() {
		return
	}
	p.VRAMAddr.NametableX = p.TRAMAddr.NametableX
	p.VRAMAddr.CoarseX = p.TRAMAddr.CoarseX
}

func (p *PPU) transferAddressY() {
	if !p.Mask.Rendering() {
		return
	}
	p.VRAMAddr.FineY = p.TRAMAddr.FineY
	p.VRAMAddr.NametableY = p.TRAMAddr.NametableY
	p.VRAMAddr.CoarseY = p.TRAMAddr.CoarseY
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShifterPatternLow = (p.bgShifterPatternLow & 0xff00) | uint16(p.bgNextTileLow)
	p.bgShifterPatternHigh = (p.bgShifterPatternHigh & 0xff00) | uint16(p.bgNextTileHigh)

	p.bgShifterAttribLow &= 0xff00
	if p.bgNextTileAttrib&0x01 == 0x01 {
		p.bgShifterAttribLow |= 0x00ff
	}
	p.bgShifterAttribHigh &= 0xff00
	if p.bgNextTileAttrib&0x02 == 0x02 {
		p.bgShifterAttribHigh |= 0x00ff
	}
}

func (p *PPU) updateShifters() {
	if p.Mask.RenderBackground {
		p.bgShifterPatternLow <<= 1
		p.bgShifterPatternHigh <<= 1
		p.bgShifterAttribLow <<= 1
		p.bgShifterAttribHigh <<= 1
	}

	if p.Mask.RenderSprites && p.Dot >= 1 && p.Dot < 258 {
		for i := 0; i < p.spriteCount; i++ {
			// each sprite idles until its X counter runs down, then shifts
			// out a pixel per dot
			if p.sprites[i].x > 0 {
				p.sprites[i].x--
			} else {
				p.spriteShifterLow[i] <<= 1
				p.spriteShifterHigh[i] <<= 1
			}
		}
	}
}

// fetchBackground is the eight dot fetch cycle for the next background
// tile: nametable byte, attribute byte, pattern low plane, pattern high
// plane, then the coarse X increment.
func (p *PPU) fetchBackground() {
	switch (p.Dot - 1) % 8 {
	case 0:
		p.loadBackgroundShifters()
		p.bgNextTileID = memory.Read(p.mem, 0x2000|(p.VRAMAddr.Value()&0x0fff))

	case 2:
		address := uint16(0x23c0)
		if p.VRAMAddr.NametableY {
			address |= 1 << 11
		}
		if p.VRAMAddr.NametableX {
			address |= 1 << 10
		}
		address |= (uint16(p.VRAMAddr.CoarseY) >> 2) << 3
		address |= uint16(p.VRAMAddr.CoarseX) >> 2

		p.bgNextTileAttrib = memory.Read(p.mem, address)

		// pick the quadrant of the attribute byte for this tile
		if p.VRAMAddr.CoarseY&0x02 == 0x02 {
			p.bgNextTileAttrib >>= 4
		}
		if p.VRAMAddr.CoarseX&0x02 == 0x02 {
			p.bgNextTileAttrib >>= 2
		}
		p.bgNextTileAttrib &= 0x03

	case 4:
		p.bgNextTileLow = memory.Read(p.mem, p.backgroundPatternAddress())

	case 6:
		p.bgNextTileHigh = memory.Read(p.mem, p.backgroundPatternAddress()+8)

	case 7:
		p.incrementScrollX()
	}
}

func (p *PPU) backgroundPatternAddress() uint16 {
	address := (uint16(p.bgNextTileID) << 4) + uint16(p.VRAMAddr.FineY)
	if p.Control.PatternBackground {
		address += 1 << 12
	}
	return address
}
