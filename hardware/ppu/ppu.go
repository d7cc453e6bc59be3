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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

// dimensions of the pixel output
const (
	ClksScanline = 341
	ScanlinesTotal = 262

	HorizPixels = 256
	VertPixels  = 240

	// pixels are RGBA
	pixelDepth = 4
)

// the scanline on which vertical blank begins
const scanlineVBlank = 241

// PPU implements the 2C02 picture processing unit. It is ticked once per
// master clock triplet: one tick is one dot. The visible 256x240 area is
// written into an RGBA pixel buffer as it is drawn.
type PPU struct {
	mem *vram

	// Scanline runs from -1 (the pre-render line) to 260. Dot from 0 to 340
	Scanline int
	Dot      int
	Frame    uint64

	Control ControlRegister
	Mask    MaskRegister
	Status  StatusRegister

	// the loopy v/t pair. VRAMAddr is the live address, TRAMAddr the
	// staging register written through PPUSCROLL/PPUADDR
	VRAMAddr LoopyRegister
	TRAMAddr LoopyRegister
	FineX    uint8

	// the shared first/second write latch for PPUSCROLL and PPUADDR. false
	// means the next write is the first of the pair
	writeLatch bool

	// PPUDATA reads are buffered by one access
	dataBuffer uint8

	OAM     [256]uint8
	OAMAddr uint8

	// sprites selected for the scanline being prepared
	sprites     [8]activeSprite
	spriteCount int

	spriteShifterLow  [8]uint8
	spriteShifterHigh [8]uint8

	// background pipeline
	bgNextTileID     uint8
	bgNextTileAttrib uint8
	bgNextTileLow    uint8
	bgNextTileHigh   uint8

	bgShifterPatternLow  uint16
	bgShifterPatternHigh uint16
	bgShifterAttribLow   uint16
	bgShifterAttribHigh  uint16

	// reading PPUSTATUS near the start of vertical blank races the setting
	// of the vblank flag and the NMI decision. the PPU records status reads
	// for the current and previous dot to resolve the race the way the
	// silicon does
	statusReadThisTick bool
	statusReadLastTick bool

	pixels []uint8
}

// NewPPU is the preferred method of initialisation for the PPU. The
// cartridge supplies the CHR bus and the nametable mirroring.
func NewPPU(cart *cartridge.Cartridge) *PPU {
	p := &PPU{
		mem:    newVRAM(cart),
		pixels: make([]uint8, HorizPixels*VertPixels*pixelDepth),
	}
	p.Reset()
	return p
}

func (p *PPU) String() string {
	return fmt.Sprintf("SL=%d DOT=%d FRAME=%d", p.Scanline, p.Dot, p.Frame)
}

// Reset the PPU to its power-on state. The contents of OAM and VRAM are
// left alone, as on the real machine.
func (p *PPU) Reset() {
	p.Scanline = -1
	p.Dot = 0
	p.Frame = 0
	p.Control = ControlRegister{}
	p.Mask = MaskRegister{}
	p.Status = StatusRegister{}
	p.VRAMAddr = LoopyRegister{}
	p.TRAMAddr = LoopyRegister{}
	p.FineX = 0
	p.writeLatch = false
	p.dataBuffer = 0
	p.mem.grayscale = false
}

// Pixels returns the RGBA pixel buffer. The slice is reused from frame to
// frame; renderers should copy what they need.
func (p *PPU) Pixels() []uint8 {
	return p.pixels
}

// EndOfFrame is true on the tick after the last dot of the frame has been
// drawn and the pre-render line is starting over.
func (p *PPU) EndOfFrame() bool {
	return p.Scanline == -1 && p.Dot == 1
}

func (p *PPU) startFrame() {
	p.Status.VerticalBlank = false
	p.Status.SpriteZeroHit = false
	p.Status.SpriteOverflow = false

	for i := range p.spriteShifterLow {
		p.spriteShifterLow[i] = 0
		p.spriteShifterHigh[i] = 0
	}
}

func (p *PPU) renderableScanline() {
	if (p.Dot >= 1 && p.Dot < 258) || (p.Dot >= 321 && p.Dot < 338) {
		p.updateShifters()
		p.fetchBackground()
	}

	if p.Dot == 256 {
		p.incrementScrollY()
	}

	if p.Dot == 257 {
		p.loadBackgroundShifters()
		p.transferAddressX()
	}

	// superfluous nametable fetches at the end of the scanline. they matter
	// to mappers that watch the PPU bus
	if p.Dot == 338 || p.Dot == 340 {
		p.bgNextTileID = memory.Read(p.mem, 0x2000|(p.VRAMAddr.Value()&0x0fff))
	}

	if p.Scanline == -1 && p.Dot >= 280 && p.Dot < 305 {
		p.transferAddressY()
	}

	if p.Dot == 257 && p.Scanline >= 0 {
		p.evaluateSprites()
	}

	if p.Dot == 340 {
		for i := 0; i < p.spriteCount; i++ {
			p.fetchSpritePatterns(i)
		}
	}
}

func (p *PPU) incrementDotAndScanline() {
	p.Dot++

	if p.Dot >= ClksScanline {
		p.Dot = 0
		p.Scanline++

		if p.Scanline >= ScanlinesTotal-1 {
			p.Scanline = -1
			p.Frame++
		}
	}
}

// Tick runs the PPU for one dot. The return value is true if an NMI should
// be raised in the CPU.
func (p *PPU) Tick() bool {
	nmi := false

	p.statusReadLastTick = p.statusReadThisTick
	p.statusReadThisTick = false

	if p.Scanline >= -1 && p.Scanline < VertPixels {
		// odd frames are one dot shorter, but only while rendering is on
		if p.Scanline == 0 && p.Dot == 0 && p.Frame%2 == 1 && p.Mask.Rendering() {
			p.Dot = 1
		}

		if p.Scanline == -1 && p.Dot == 1 {
			p.startFrame()
		}

		p.renderableScanline()
	}

	if p.Scanline == scanlineVBlank && p.Dot == 1 {
		// a status read on the previous dot stops the vblank flag from
		// being set at all and a read on this very dot eats the NMI
		if !p.statusReadLastTick {
			p.Status.VerticalBlank = true
		}
		if p.Control.EnableNMI && !p.statusReadThisTick {
			nmi = true
		}
	}

	p.drawDot()
	p.incrementDotAndScanline()

	return nmi
}

// register addresses within the 0x2000 to 0x3fff window, after mirroring
const (
	regPPUCTRL = iota
	regPPUMASK
	regPPUSTATUS
	regOAMADDR
	regOAMDATA
	regPPUSCROLL
	regPPUADDR
	regPPUDATA
)

// ReadReadonly implements the memory.Bus interface for the CPU-visible
// register window.
func (p *PPU) ReadReadonly(address uint16) (uint8, bool) {
	switch address & 0x0007 {
	case regPPUSTATUS:
		// the low five bits of a status read come from the data buffer
		return (p.Status.Value() & 0xe0) | (p.dataBuffer & 0x1f), true

	case regOAMDATA:
		return p.OAM[p.OAMAddr], true

	case regPPUDATA:
		if p.VRAMAddr.Value() > 0x3f00 {
			// palette reads skip the buffer
			return memory.ReadReadonly(p.mem, p.VRAMAddr.Value()), true
		}
		return p.dataBuffer, true
	}

	return 0, false
}

// ReadSideEffects implements the memory.Bus interface for the CPU-visible
// register window.
func (p *PPU) ReadSideEffects(address uint16) {
	switch address & 0x0007 {
	case regPPUSTATUS:
		p.Status.VerticalBlank = false
		p.writeLatch = false
		p.statusReadThisTick = true

	case regPPUDATA:
		p.dataBuffer = memory.Read(p.mem, p.VRAMAddr.Value())
		p.VRAMAddr.Add(p.Control.VRAMIncrement())
	}
}

// Write implements the memory.Bus interface for the CPU-visible register
// window.
func (p *PPU) Write(address uint16, value uint8) {
	switch address & 0x0007 {
	case regPPUCTRL:
		p.Control.FromValue(value)
		p.TRAMAddr.NametableX = p.Control.NametableX
		p.TRAMAddr.NametableY = p.Control.NametableY

	case regPPUMASK:
		p.Mask.FromValue(value)
		p.mem.grayscale = p.Mask.Grayscale

	case regOAMADDR:
		p.OAMAddr = value

	case regOAMDATA:
		p.OAM[p.OAMAddr] = value
		p.OAMAddr++

	case regPPUSCROLL:
		if !p.writeLatch {
			p.FineX = value & 0x07
			p.TRAMAddr.CoarseX = value >> 3
			p.writeLatch = true
		} else {
			p.TRAMAddr.FineY = value & 0x07
			p.TRAMAddr.CoarseY = value >> 3
			p.writeLatch = false
		}

	case regPPUADDR:
		if !p.writeLatch {
			p.TRAMAddr.FromValue(((uint16(value) & 0x003f) << 8) | (p.TRAMAddr.Value() & 0x00ff))
			p.writeLatch = true
		} else {
			p.TRAMAddr.FromValue((p.TRAMAddr.Value() & 0xff00) | uint16(value))
			p.VRAMAddr = p.TRAMAddr
			p.writeLatch = false
		}

	case regPPUDATA:
		p.mem.Write(p.VRAMAddr.Value(), value)
		p.VRAMAddr.Add(p.Control.VRAMIncrement())
	}
}
