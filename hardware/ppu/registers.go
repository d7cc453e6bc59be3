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

// ControlRegister is PPUCTRL (0x2000)
type ControlRegister struct {
	NametableX        bool
	NametableY        bool
	IncrementMode     bool
	PatternSprite     bool
	PatternBackground bool
	SpriteSize        bool
	SlaveMode         bool
	EnableNMI         bool
}

// FromValue sets the register fields from a bus value.
func (r *ControlRegister) FromValue(v uint8) {
	r.NametableX = v&0x01 == 0x01
	r.NametableY = v&0x02 == 0x02
	r.IncrementMode = v&0x04 == 0x04
	r.PatternSprite = v&0x08 == 0x08
	r.PatternBackground = v&0x10 == 0x10
	r.SpriteSize = v&0x20 == 0x20
	r.SlaveMode = v&0x40 == 0x40
	r.EnableNMI = v&0x80 == 0x80
}

// SpriteHeight in pixels, decided by the sprite size flag.
func (r ControlRegister) SpriteHeight() int {
	if r.SpriteSize {
		return 16
	}
	return 8
}

// VRAMIncrement is the amount PPUDATA access adds to the VRAM address.
func (r ControlRegister) VRAMIncrement() uint16 {
	if r.IncrementMode {
		return 32
	}
	return 1
}

// MaskRegister is PPUMASK (0x2001)
type MaskRegister struct {
	Grayscale            bool
	RenderBackgroundLeft bool
	RenderSpritesLeft    bool
	RenderBackground     bool
	RenderSprites        bool
	EnhanceRed           bool
	EnhanceGreen         bool
	EnhanceBlue          bool
}

// FromValue sets the register fields from a bus value.
func (r *MaskRegister) FromValue(v uint8) {
	r.Grayscale = v&0x01 == 0x01
	r.RenderBackgroundLeft = v&0x02 == 0x02
	r.RenderSpritesLeft = v&0x04 == 0x04
	r.RenderBackground = v&0x08 == 0x08
	r.RenderSprites = v&0x10 == 0x10
	r.EnhanceRed = v&0x20 == 0x20
	r.EnhanceGreen = v&0x40 == 0x40
	r.EnhanceBlue = v&0x80 == 0x80
}

// Rendering is true if either background or sprite rendering is on. Most of
// the scrolling machinery is conditional on this.
func (r MaskRegister) Rendering() bool {
	return r.RenderBackground || r.RenderSprites
}

// StatusRegister is PPUSTATUS (0x2002). Only the top three bits exist; the
// rest of a read comes from bus decay, approximated with the data buffer.
type StatusRegister struct {
	SpriteOverflow bool
	SpriteZeroHit  bool
	VerticalBlank  bool
}

// Value of the register's three live bits.
func (r StatusRegister) Value() uint8 {
	var v uint8
	if r.SpriteOverflow {
		v |= 0x20
	}
	if r.SpriteZeroHit {
		v |= 0x40
	}
	if r.VerticalBlank {
		v |= 0x80
	}
	return v
}

// LoopyRegister is the v/t register pair layout first documented by loopy:
// five bits of coarse X, five of coarse Y, the two nametable selects and
// three bits of fine Y.
type LoopyRegister struct {
	CoarseX    uint8
	CoarseY    uint8
	NametableX bool
	NametableY bool
	FineY      uint8
}

// Value packs the fields into the 15 bit VRAM address form.
func (r LoopyRegister) Value() uint16 {
	v := uint16(r.CoarseX&0x1f) | (uint16(r.CoarseY&0x1f) << 5) | (uint16(r.FineY&0x07) << 12)
	if r.NametableX {
		v |= 0x0400
	}
	if r.NametableY {
		v |= 0x0800
	}
	return v
}

// FromValue unpacks the 15 bit VRAM address form.
func (r *LoopyRegister) FromValue(v uint16) {
	r.CoarseX = uint8(v & 0x1f)
	r.CoarseY = uint8((v >> 5) & 0x1f)
	r.NametableX = v&0x0400 == 0x0400
	r.NametableY = v&0x0800 == 0x0800
	r.FineY = uint8((v >> 12) & 0x07)
}

// Add a delta to the register in its packed form.
func (r *LoopyRegister) Add(delta uint16) {
	r.FromValue(r.Value() + delta)
}
