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

// Package cartridge fully implements the cartridge side of the console. The
// iNES container is decoded and the appropriate mapper created on Attach().
//
// A cartridge is visible on two buses at once. The CPU sees it in the
// cartridge area of the main address space (PRG ROM, PRG RAM and the mapper
// registers). The PPU sees it at the bottom of its own address space (the
// pattern tables, through whatever banking the mapper provides). The
// Cartridge type itself implements the CPU side of that arrangement; the
// CHR() function returns the PPU side.
//
// Mappers are decorators. They claim the addresses they understand and leave
// everything else unclaimed, meaning the console glue decides what an
// unclaimed address does (usually nothing).
package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/logger"
)

// Mirroring describes how the two physical nametables are arranged in the
// four logical nametable slots.
type Mirroring int

// The different mirroring arrangements. Which arrangement is in effect is
// decided by the mapper and can change at runtime (MMC1, MMC3).
const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleScreen
	MirrorFourScreen
)

func (m Mirroring) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorSingleScreen:
		return "single screen"
	case MirrorFourScreen:
		return "four screen"
	}
	return "undefined"
}

// mapper is the interface implemented by every supported cartridge type.
// chrWrite returns false when the mapper does not claim the address.
type mapper interface {
	id() string

	// the CPU facing side of the mapper
	prgReadReadonly(address uint16) (uint8, bool)
	prgWrite(address uint16, value uint8) bool

	// the PPU facing side of the mapper
	chrReadReadonly(address uint16) (uint8, bool)
	chrWrite(address uint16, value uint8) bool

	mirroring() Mirroring
}

// scanlineTicker is implemented by mappers that count scanlines for their
// IRQ generation (MMC3).
type scanlineTicker interface {
	endScanline()
	pollIRQ() bool
}

// Cartridge defines the cartridge mechanism. It implements memory.Bus for
// the CPU side of the mapper.
type Cartridge struct {
	Filename  string
	Hash      string
	ShortName string

	mapper mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	return &Cartridge{mapper: newEjected()}
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s]", cart.ShortName, cart.mapper.id())
}

// MapperID returns the ID of the the currently attached mapper.
func (cart *Cartridge) MapperID() string {
	return cart.mapper.id()
}

// Eject removes memory from cartridge space and unlike the real hardware,
// attaches a bank of empty memory.
func (cart *Cartridge) Eject() {
	cart.Filename = "ejected"
	cart.ShortName = "ejected"
	cart.Hash = ""
	cart.mapper = newEjected()
}

// Attach decodes the data in the loader and inserts the resulting mapper.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.ShortName = cartload.ShortName()
	cart.Hash = cartload.Hash

	ines, err := decodeINES(cartload.Data)
	if err != nil {
		return fmt.Errorf("cartridge: %w", err)
	}

	switch ines.mapperNum {
	case 0:
		cart.mapper = newNROM(ines)
	case 1:
		cart.mapper = newMMC1(ines)
	case 2:
		cart.mapper = newUxROM(ines)
	case 3:
		cart.mapper = newCNROM(ines)
	case 4:
		cart.mapper = newMMC3(ines)
	default:
		cart.Eject()
		return fmt.Errorf("cartridge: unsupported mapper (%d)", ines.mapperNum)
	}

	logger.Logf(logger.Allow, "cartridge", "%s attached (mapper %s)", cart.ShortName, cart.mapper.id())

	return nil
}

// ReadReadonly implements the memory.Bus interface (the CPU side of the
// mapper)
func (cart *Cartridge) ReadReadonly(address uint16) (uint8, bool) {
	return cart.mapper.prgReadReadonly(address)
}

// ReadSideEffects implements the memory.Bus interface. No mapper in the
// supported set has read side effects on the CPU bus.
func (cart *Cartridge) ReadSideEffects(_ uint16) {
}

// Write implements the memory.Bus interface
func (cart *Cartridge) Write(address uint16, value uint8) {
	cart.mapper.prgWrite(address, value)
}

// CHR returns the PPU facing side of the mapper.
func (cart *Cartridge) CHR() memory.Bus {
	return &chrBus{cart: cart}
}

// Mirroring returns the nametable arrangement currently asserted by the
// mapper.
func (cart *Cartridge) Mirroring() Mirroring {
	return cart.mapper.mirroring()
}

// EndScanline tells the mapper that the PPU has finished a scanline. Only
// meaningful for mappers with a scanline counter.
func (cart *Cartridge) EndScanline() {
	if m, ok := cart.mapper.(scanlineTicker); ok {
		m.endScanline()
	}
}

// PollIRQ returns true if the mapper is asserting its IRQ line. The
// assertion is cleared by the poll.
func (cart *Cartridge) PollIRQ() bool {
	if m, ok := cart.mapper.(scanlineTicker); ok {
		return m.pollIRQ()
	}
	return false
}

// chrBus exposes the PPU facing side of the mapper as a memory.Bus
type chrBus struct {
	cart *Cartridge
}

func (c *chrBus) ReadReadonly(address uint16) (uint8, bool) {
	return c.cart.mapper.chrReadReadonly(address)
}

func (c *chrBus) ReadSideEffects(_ uint16) {
}

func (c *chrBus) Write(address uint16, value uint8) {
	c.cart.mapper.chrWrite(address, value)
}

// ejected is the mapper attached when there is no cartridge in the console.
type ejected struct {
}

func newEjected() *ejected {
	return &ejected{}
}

func (m *ejected) id() string {
	return "-"
}

func (m *ejected) prgReadReadonly(_ uint16) (uint8, bool) {
	return 0, false
}

func (m *ejected) prgWrite(_ uint16, _ uint8) bool {
	return false
}

func (m *ejected) chrReadReadonly(_ uint16) (uint8, bool) {
	return 0, false
}

func (m *ejected) chrWrite(_ uint16, _ uint8) bool {
	return false
}

func (m *ejected) mirroring() Mirroring {
	return MirrorHorizontal
}
