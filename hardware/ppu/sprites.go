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

// OAM attribute byte flags
const (
	oamAttrPalette      = 0x03
	oamAttrPriority     = 0x20
	oamFlipHorizontally = 0x40
	oamFlipVertically   = 0x80
)

// activeSprite is a sprite selected during evaluation for the next
// scanline. the x counter is decremented during rendering so this is a
// working copy, not a reference into OAM.
type activeSprite struct {
	y        uint8
	tileID   uint8
	attrib   uint8
	x        uint8
	oamIndex int
}

// https://stackoverflow.com/a/2602885
func flipByte(b uint8) uint8 {
	b = ((b & 0xf0) >> 4) | ((b & 0x0f) << 4)
	b = ((b & 0xcc) >> 2) | ((b & 0x33) << 2)
	b = ((b & 0xaa) >> 1) | ((b & 0x55) << 1)
	return b
}

// evaluateSprites selects up to eight sprites from OAM that land on the
// scanline being prepared. a ninth in-range sprite sets the overflow flag.
func (p *PPU) evaluateSprites() {
	p.spriteCount = 0
	p.Status.SpriteOverflow = false

	for i := 0; i < len(p.OAM)/4; i++ {
		y := p.OAM[i*4]
		diff := p.Scanline - int(y)
		if diff < 0 || diff >= p.Control.SpriteHeight() {
			continue
		}

		if p.spriteCount == 8 {
			p.Status.SpriteOverflow = true
			break
		}

		p.sprites[p.spriteCount] = activeSprite{
			y:        y,
			tileID:   p.OAM[i*4+1],
			attrib:   p.OAM[i*4+2],
			x:        p.OAM[i*4+3],
			oamIndex: i,
		}
		p.spriteCount++
	}
}

// pattern table address of the low plane of the sprite's row for the
// scanline being prepared
func (p *PPU) spritePatternAddress(sprite activeSprite) uint16 {
	row := uint16(p.Scanline - int(sprite.y))
	flipV := sprite.attrib&oamFlipVertically == oamFlipVertically

	if !p.Control.SpriteSize {
		// 8x8: pattern table from PPUCTRL
		address := uint16(sprite.tileID) << 4
		if p.Control.PatternSprite {
			address |= 1 << 12
		}
		if flipV {
			return address | (7 - row)
		}
		return address | row
	}

	// 8x16: pattern table from bit 0 of the tile id, top and bottom halves
	// are consecutive tiles
	address := (uint16(sprite.tileID) & 0x01) << 12
	tile := uint16(sprite.tileID) & 0xfe

	topHalf := row < 8
	if flipV == topHalf {
		tile++
	}
	if flipV {
		return address | (tile << 4) | ((7 - row) & 0x07)
	}
	return address | (tile << 4) | (row & 0x07)
}

// fetchSpritePatterns loads the pattern shifters for one selected sprite.
func (p *PPU) fetchSpritePatterns(index int) {
	sprite := p.sprites[index]

	address := p.spritePatternAddress(sprite)
	low := memory.Read(p.mem, address)
	high := memory.Read(p.mem, address+8)

	if sprite.attrib&oamFlipHorizontally == oamFlipHorizontally {
		low = flipByte(low)
		high = flipByte(high)
	}

	p.spriteShifterLow[index] = low
	p.spriteShifterHigh[index] = high
}

// spritePixel returns the foreground pixel for the current dot: the two bit
// pattern value, the palette, whether the sprite sits behind the
// background, and whether the pixel belongs to sprite zero.
func (p *PPU) spritePixel() (uint8, uint8, bool, bool) {
	for i := 0; i < p.spriteCount; i++ {
		if p.sprites[i].x != 0 {
			continue
		}

		var pixel uint8
		if p.spriteShifterLow[i]&0x80 == 0x80 {
			pixel |= 0x01
		}
		if p.spriteShifterHigh[i]&0x80 == 0x80 {
			pixel |= 0x02
		}

		if pixel != 0 {
			palette := (p.sprites[i].attrib & oamAttrPalette) + 4
			behind := p.sprites[i].attrib&oamAttrPriority == oamAttrPriority
			return pixel, palette, behind, p.sprites[i].oamIndex == 0
		}
	}

	return 0, 0, true, false
}
