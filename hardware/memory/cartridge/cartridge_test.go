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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/test"
)

// assemble an iNES image in memory. each PRG bank is filled with its bank
// number, as is each CHR bank, making bank switches easy to observe.
func makeINES(mapperNum int, numPRG int, numCHR int, flags uint8) []byte {
	img := make([]byte, 0, 16+numPRG*16384+numCHR*8192)
	img = append(img, 'N', 'E', 'S', 0x1a)
	img = append(img, uint8(numPRG), uint8(numCHR))
	img = append(img, uint8(mapperNum&0x0f)<<4|flags, uint8(mapperNum&0xf0))
	img = append(img, make([]byte, 8)...)

	for b := 0; b < numPRG; b++ {
		bank := make([]byte, 16384)
		for i := range bank {
			bank[i] = uint8(b)
		}
		img = append(img, bank...)
	}
	for b := 0; b < numCHR; b++ {
		bank := make([]byte, 8192)
		for i := range bank {
			bank[i] = uint8(b)
		}
		img = append(img, bank...)
	}

	return img
}

func attach(t *testing.T, img []byte) *cartridge.Cartridge {
	t.Helper()
	cart := cartridge.NewCartridge()
	err := cart.Attach(cartridgeloader.Loader{Filename: "test.nes", Data: img})
	test.ExpectedSuccess(t, err)
	return cart
}

func TestAttachErrors(t *testing.T) {
	cart := cartridge.NewCartridge()

	// not an iNES file at all
	err := cart.Attach(cartridgeloader.Loader{Filename: "test.nes", Data: []byte{0x00, 0x01}})
	test.ExpectedFailure(t, err)

	// unsupported mapper number
	err = cart.Attach(cartridgeloader.Loader{Filename: "test.nes", Data: makeINES(7, 1, 1, 0)})
	test.ExpectedFailure(t, err)

	// an error leaves the console with the ejected mapper, and the
	// ejected mapper maps nothing
	test.Equate(t, cart.MapperID(), "-")
	_, ok := cart.ReadReadonly(0x8000)
	test.ExpectedFailure(t, ok)
}

func TestNROM(t *testing.T) {
	cart := attach(t, makeINES(0, 1, 1, 0x01))
	test.Equate(t, cart.MapperID(), "NROM")
	test.Equate(t, cart.Mirroring() == cartridge.MirrorVertical, true)

	// a single PRG bank appears in both halves of the window
	test.Equate(t, memory.Read(cart, 0x8000), 0x00)
	test.Equate(t, memory.Read(cart, 0xc000), 0x00)

	// the area below PRG RAM is unclaimed
	_, ok := cart.ReadReadonly(0x4020)
	test.ExpectedFailure(t, ok)

	// PRG RAM at 0x6000
	cart.Write(0x6123, 0xde)
	test.Equate(t, memory.Read(cart, 0x6123), 0xde)

	// writes to the ROM window have no effect
	cart.Write(0x8000, 0xff)
	test.Equate(t, memory.Read(cart, 0x8000), 0x00)
}

func TestCNROMBankSelect(t *testing.T) {
	cart := attach(t, makeINES(3, 2, 4, 0))
	test.Equate(t, cart.MapperID(), "CNROM")

	chr := cart.CHR()
	test.Equate(t, memory.Read(chr, 0x0000), 0x00)

	// any write to the ROM window selects a CHR bank
	cart.Write(0x8000, 0x02)
	test.Equate(t, memory.Read(chr, 0x0000), 0x02)

	// only the bottom two bits take part
	cart.Write(0xffff, 0x07)
	test.Equate(t, memory.Read(chr, 0x1fff), 0x03)
}

func TestUxROMBankSelect(t *testing.T) {
	cart := attach(t, makeINES(2, 4, 0, 0))
	test.Equate(t, cart.MapperID(), "UxROM")

	// low window starts at bank 0; high window is fixed to the last bank
	test.Equate(t, memory.Read(cart, 0x8000), 0x00)
	test.Equate(t, memory.Read(cart, 0xc000), 0x03)

	cart.Write(0x8000, 0x02)
	test.Equate(t, memory.Read(cart, 0x8000), 0x02)
	test.Equate(t, memory.Read(cart, 0xc000), 0x03)

	// CHR size of zero means CHR RAM
	chr := cart.CHR()
	chr.Write(0x0100, 0x99)
	test.Equate(t, memory.Read(chr, 0x0100), 0x99)
}

// serially load an MMC1 register with five writes
func mmc1Load(cart *cartridge.Cartridge, address uint16, value uint8) {
	for i := 0; i < 5; i++ {
		cart.Write(address, value>>i)
	}
}

func TestMMC1(t *testing.T) {
	cart := attach(t, makeINES(1, 4, 0, 0))
	test.Equate(t, cart.MapperID(), "MMC1")

	// power up state fixes the last bank into the high window
	test.Equate(t, memory.Read(cart, 0xc000), 0x03)
	test.Equate(t, memory.Read(cart, 0x8000), 0x00)

	// select bank 2 into the low window
	mmc1Load(cart, 0xe000, 0x02)
	test.Equate(t, memory.Read(cart, 0x8000), 0x02)
	test.Equate(t, memory.Read(cart, 0xc000), 0x03)

	// control register sets mirroring
	mmc1Load(cart, 0x8000, 0x0e)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorVertical, true)
	mmc1Load(cart, 0x8000, 0x0f)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorHorizontal, true)

	// a write with bit 7 set resets the serial load mid-sequence
	cart.Write(0xe000, 0x01)
	cart.Write(0xe000, 0x80)
	mmc1Load(cart, 0xe000, 0x01)
	test.Equate(t, memory.Read(cart, 0x8000), 0x01)
}

func TestMMC3PRGBanking(t *testing.T) {
	cart := attach(t, makeINES(4, 4, 0, 0))
	test.Equate(t, cart.MapperID(), "MMC3")

	// 8k banks: four 16k iNES banks give eight 8k banks, each 8k pair
	// carrying the same fill byte. the last bank is always fixed at 0xe000
	test.Equate(t, memory.Read(cart, 0xe000), 0x03)

	// select 8k bank 5 (fill byte 0x02) into the low window
	cart.Write(0x8000, 0x06)
	cart.Write(0x8001, 0x05)
	test.Equate(t, memory.Read(cart, 0x8000), 0x02)

	// bank mode bit swaps the low window with the fixed second-to-last bank
	cart.Write(0x8000, 0x46)
	test.Equate(t, memory.Read(cart, 0x8000), 0x03)
	test.Equate(t, memory.Read(cart, 0xc000), 0x02)

	// mirroring register
	cart.Write(0xa000, 0x00)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorVertical, true)
	cart.Write(0xa000, 0x01)
	test.Equate(t, cart.Mirroring() == cartridge.MirrorHorizontal, true)
}

func TestMMC3IRQCounter(t *testing.T) {
	cart := attach(t, makeINES(4, 2, 0, 0))

	// reload with 3 and enable
	cart.Write(0xc000, 0x03)
	cart.Write(0xc001, 0x00)
	cart.Write(0xe001, 0x00)

	// first scanline loads the counter; the interrupt arrives when the
	// counter reaches zero
	cart.EndScanline()
	test.ExpectedFailure(t, cart.PollIRQ())
	cart.EndScanline()
	cart.EndScanline()
	test.ExpectedFailure(t, cart.PollIRQ())
	cart.EndScanline()
	test.ExpectedSuccess(t, cart.PollIRQ())

	// the poll cleared the assertion
	test.ExpectedFailure(t, cart.PollIRQ())

	// disabling acknowledges any pending interrupt
	cart.EndScanline()
	cart.EndScanline()
	cart.EndScanline()
	cart.EndScanline()
	test.ExpectedSuccess(t, cart.PollIRQ())
	cart.Write(0xe000, 0x00)
	test.ExpectedFailure(t, cart.PollIRQ())
}
