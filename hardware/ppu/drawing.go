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

// backgroundPixel returns the two bit pattern value and the palette for the
// current dot, selected from the shifters by fine X.
func (p *PPU) backgroundPixel() (uint8, uint8) {
	mux := uint16(0x8000) >> p.FineX

	var pixel uint8
	if p.bgShifterPatternLow&mux != 0 {
		pixel |= 0x01
	}
	if p.bgShifterPatternHigh&mux != 0 {
		pixel |= 0x02
	}

	var palette uint8
	if p.bgShifterAttribLow&mux != 0 {
		palette |= 0x01
	}
	if p.bgShifterAttribHigh&mux != 0 {
		palette |= 0x02
	}

	return pixel, palette
}

// drawDot composites the background and sprite pixels for the current dot
// and writes the result into the pixel buffer. Sprite zero hit detection
// happens here: it requires an opaque pixel from both pipelines.
func (p *PPU) drawDot() {
	var bgPixel, bgPalette uint8
	if p.Mask.RenderBackground {
		bgPixel, bgPalette = p.backgroundPixel()
	}

	var fgPixel, fgPalette uint8
	behind := true
	sprite0 := false
	if p.Mask.RenderSprites {
		fgPixel, fgPalette, behind, sprite0 = p.spritePixel()
	}

	var pixel, palette uint8
	switch {
	case bgPixel == 0 && fgPixel == 0:
		// both transparent. the backdrop colour at 0x3f00

	case bgPixel == 0:
		pixel, palette = fgPixel, fgPalette

	case fgPixel == 0:
		pixel, palette = bgPixel, bgPalette

	default:
		if sprite0 && p.Mask.RenderBackground && p.Mask.RenderSprites {
			if !(p.Mask.RenderBackgroundLeft || p.Mask.RenderSpritesLeft) {
				if p.Dot >= 9 && p.Dot < 258 {
					p.Status.SpriteZeroHit = true
				}
			} else if p.Dot >= 1 && p.Dot < 258 {
				p.Status.SpriteZeroHit = true
			}
		}

		if behind {
			pixel, palette = bgPixel, bgPalette
		} else {
			pixel, palette = fgPixel, fgPalette
		}
	}

	x := p.Dot - 1
	y := p.Scanline
	if x < 0 || y < 0 || x >= HorizPixels || y >= VertPixels {
		return
	}

	entry := memory.ReadReadonly(p.mem, 0x3f00+uint16(palette)*4+uint16(pixel))
	colour := palette2RGB(entry)

	offset := (y*HorizPixels + x) * pixelDepth
	p.pixels[offset] = uint8(colour >> 16)
	p.pixels[offset+1] = uint8(colour >> 8)
	p.pixels[offset+2] = uint8(colour)
	p.pixels[offset+3] = 255
}

func palette2RGB(entry uint8) uint32 {
	return palette[entry&0x3f]
}
