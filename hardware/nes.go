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

// Package hardware assembles the units of the console and clocks them
// against one another. The master clock is the PPU clock: the PPU ticks on
// every master cycle, the CPU (or the DMA unit, when a sprite transfer is
// in flight) on every third, the APU on every sixth.
package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/apu"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/dma"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/television"
)

// NES is the console itself.
type NES struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	APU  *apu.APU
	DMA  *dma.DMA
	RAM  *memory.RAM
	Cart *cartridge.Cartridge

	// the two joypad ports
	Joypads [2]*controllers.Joypad

	// Mem is the console as the CPU sees it
	Mem *CPUBus

	renderer television.PixelRenderer

	masterCycles uint64
	frameNum     int
}

// NewNES creates a console and attaches the cartridge in the loader.
func NewNES(cartload cartridgeloader.Loader) (*NES, error) {
	n := &NES{
		RAM:  memory.NewRAM(),
		APU:  apu.NewAPU(),
		DMA:  dma.NewDMA(),
		Cart: cartridge.NewCartridge(),
	}
	n.Joypads[0] = controllers.NewJoypad()
	n.Joypads[1] = controllers.NewJoypad()

	if err := n.Cart.Attach(cartload); err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}

	n.PPU = ppu.NewPPU(n.Cart)

	n.Mem = &CPUBus{
		ram:     n.RAM,
		ppu:     n.PPU,
		apu:     n.APU,
		dma:     n.DMA,
		cart:    n.Cart,
		joypads: n.Joypads,
	}
	n.CPU = cpu.NewCPU(n.Mem)

	n.Reset()

	return n, nil
}

// AttachRenderer registers the PixelRenderer that receives the completed
// frame at every frame boundary.
func (n *NES) AttachRenderer(renderer television.PixelRenderer) {
	n.renderer = renderer
}

// PlugMixer registers the AudioMixer that receives the console's sound.
func (n *NES) PlugMixer(mixer television.AudioMixer) {
	n.APU.PlugMixer(mixer)
}

// Reset the console. Equivalent to pressing the reset switch: work RAM is
// cleared, which the real switch does not do, but no cartridge in the
// supported set minds.
func (n *NES) Reset() {
	n.RAM.Reset()
	n.PPU.Reset()
	n.APU.Reset()
	n.DMA.Reset()
	n.CPU.Reset()
	n.masterCycles = 0
}

// Tick advances the console one master cycle. Most callers want Step or
// Frame; the tracing loop wants this, so that it can sample the PPU
// position immediately before the CPU fetches.
func (n *NES) Tick() (*cpu.Result, error) {
	var result *cpu.Result

	if n.masterCycles%3 == 0 {
		if n.DMA.Active() {
			n.DMA.Tick(n.masterCycles, n.Mem)
		} else {
			var err error
			result, err = n.CPU.Tick()
			if err != nil {
				return nil, err
			}
		}
	}

	if n.PPU.Tick() {
		n.CPU.RaiseNMI()
	}

	// approximate the MMC3's A12-edge counter with a once-per-scanline
	// notification towards the end of the rendered line
	if n.PPU.Dot == 260 && n.PPU.Scanline < ppu.VertPixels && n.PPU.Mask.Rendering() {
		n.Cart.EndScanline()
	}

	if n.masterCycles%6 == 0 {
		n.APU.Tick()
	}

	if n.APU.IRQLine() || n.Cart.PollIRQ() {
		n.CPU.SetIRQLine(true)
	}

	n.masterCycles++

	return result, nil
}

// endOfFrame delivers the completed frame to the renderer and the frame's
// audio to the mixer.
func (n *NES) endOfFrame() error {
	n.frameNum++

	if n.renderer != nil {
		if err := n.renderer.NewFrame(n.frameNum, n.PPU.Pixels()); err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}

	if err := n.APU.EndFrame(); err != nil {
		return fmt.Errorf("nes: %w", err)
	}

	return nil
}

// End tells the attached renderer and mixer that the emulation is over.
func (n *NES) End() error {
	if n.renderer != nil {
		if err := n.renderer.EndRendering(); err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}
	if err := n.APU.EndMixing(); err != nil {
		return fmt.Errorf("nes: %w", err)
	}
	return nil
}

// Step runs the console to the completion of the next CPU instruction.
// The returned Result describes the instruction that was executed. Frame
// boundaries crossed during the instruction are honoured.
func (n *NES) Step() (*cpu.Result, error) {
	for {
		result, err := n.Tick()
		if err != nil {
			return nil, err
		}

		if n.PPU.EndOfFrame() {
			if err := n.endOfFrame(); err != nil {
				return nil, err
			}
		}

		if result != nil {
			return result, nil
		}
	}
}

// Frame runs the console to the next frame boundary.
func (n *NES) Frame() error {
	for {
		if _, err := n.Tick(); err != nil {
			return err
		}

		if n.PPU.EndOfFrame() {
			return n.endOfFrame()
		}
	}
}
