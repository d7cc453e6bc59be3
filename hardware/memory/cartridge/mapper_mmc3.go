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

package cartridge

// size of the CHR RAM fitted when the file has no CHR data
const mmc3CHRRAMSize = 256 * 1024

const (
	mmc3PRGBankSize = 8 * 1024
	mmc3CHRBankSize = 1024
)

// mmc3 is mapper 4. Eight bank registers are written through a select/data
// register pair. PRG is windowed as four 8k banks with one switchable pair
// and the layout controlled by an inversion bit; CHR is windowed as two 2k
// and four 1k banks, also invertible. The scanline counter raises an IRQ
// toward the CPU when it decrements to zero while enabled.
type mmc3 struct {
	prg    []uint8
	chr    []uint8
	prgRAM [8 * 1024]uint8

	// which of the eight bank registers the next write to the data port
	// lands in. values 0 to 5 are CHR banks, 6 and 7 are PRG banks
	bankSelect uint8

	chrBank [6]uint8
	prgBank [2]uint8

	// prgFixLow swaps the switchable and fixed halves of the lower PRG
	// window. chrInvert swaps the 2k and 1k CHR windows
	prgFixLow bool
	chrInvert bool

	fourScreen bool
	mirror     Mirroring

	irqEnabled       bool
	irqReload        uint8
	irqCounter       uint8
	irqPending       bool
	irqReloadPending bool
}

func newMMC3(ines inesFile) *mmc3 {
	m := &mmc3{
		prg:        ines.prg,
		fourScreen: ines.fourScreen,
		mirror:     ines.mirror,
	}

	if ines.chrIsRAM {
		m.chr = make([]uint8, mmc3CHRRAMSize)
	} else {
		m.chr = ines.chr
	}

	return m
}

func (m *mmc3) id() string {
	return "MMC3"
}

// the number of the last and second to last PRG banks
func (m *mmc3) lastPRGBank() int {
	return len(m.prg)/mmc3PRGBankSize - 1
}

func (m *mmc3) readPRGBank(bank int, offset uint16) uint8 {
	return m.prg[(bank*mmc3PRGBankSize+int(offset))%len(m.prg)]
}

func (m *mmc3) prgReadReadonly(address uint16) (uint8, bool) {
	switch {
	case address < 0x6000:
		return 0, false

	case address < 0x8000:
		return m.prgRAM[address&0x1fff], true

	case address < 0xa000:
		if m.prgFixLow {
			return m.readPRGBank(m.lastPRGBank()-1, address-0x8000), true
		}
		return m.readPRGBank(int(m.prgBank[0]), address-0x8000), true

	case address < 0xc000:
		return m.readPRGBank(int(m.prgBank[1]), address-0xa000), true

	case address < 0xe000:
		if m.prgFixLow {
			return m.readPRGBank(int(m.prgBank[0]), address-0xc000), true
		}
		return m.readPRGBank(m.lastPRGBank()-1, address-0xc000), true
	}

	return m.readPRGBank(m.lastPRGBank(), address-0xe000), true
}

func (m *mmc3) prgWrite(address uint16, value uint8) bool {
	switch {
	case address < 0x6000:
		return false

	case address < 0x8000:
		m.prgRAM[address&0x1fff] = value

	case address < 0xa000:
		if address&0x01 == 0x00 {
			m.bankSelect = value & 0x07
			m.prgFixLow = value&0x40 == 0x40
			m.chrInvert = value&0x80 == 0x80
		} else {
			switch m.bankSelect {
			case 0, 1:
				// the 2k banks ignore the bottom bit
				m.chrBank[m.bankSelect] = value & 0xfe
			case 2, 3, 4, 5:
				m.chrBank[m.bankSelect] = value
			case 6, 7:
				m.prgBank[m.bankSelect-6] = value
			}
		}

	case address < 0xc000:
		if address&0x01 == 0x00 {
			// mirroring is hardwired on four screen boards
			if !m.fourScreen {
				if value&0x01 == 0x00 {
					m.mirror = MirrorVertical
				} else {
					m.mirror = MirrorHorizontal
				}
			}
		}
		// odd addresses are PRG RAM protection, which we deliberately
		// leave out

	case address < 0xe000:
		if address&0x01 == 0x00 {
			m.irqReload = value
		} else {
			m.irqReloadPending = true
			m.irqCounter = 0
		}

	default:
		if address&0x01 == 0x00 {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}

	return true
}

func (m *mmc3) chrIndex(address uint16) int {
	// the bank layout with the inversion bit clear. the inversion bit moves
	// the 2k banks to the top half of the pattern space
	a := address
	if m.chrInvert {
		a ^= 0x1000
	}

	var bank int
	var offset uint16
	switch {
	case a < 0x0800:
		bank = int(m.chrBank[0])
		offset = a
	case a < 0x1000:
		bank = int(m.chrBank[1])
		offset = a - 0x0800
	case a < 0x1400:
		bank = int(m.chrBank[2])
		offset = a - 0x1000
	case a < 0x1800:
		bank = int(m.chrBank[3])
		offset = a - 0x1400
	case a < 0x1c00:
		bank = int(m.chrBank[4])
		offset = a - 0x1800
	default:
		bank = int(m.chrBank[5])
		offset = a - 0x1c00
	}

	return (bank*mmc3CHRBankSize + int(offset)) % len(m.chr)
}

func (m *mmc3) chrReadReadonly(address uint16) (uint8, bool) {
	if address < 0x2000 {
		return m.chr[m.chrIndex(address)], true
	}
	return 0, false
}

func (m *mmc3) chrWrite(address uint16, value uint8) bool {
	if address < 0x2000 {
		m.chr[m.chrIndex(address)] = value
		return true
	}
	return false
}

func (m *mmc3) mirroring() Mirroring {
	return m.mirror
}

// endScanline implements the scanlineTicker interface
func (m *mmc3) endScanline() {
	if m.irqCounter == 0 || m.irqReloadPending {
		m.irqCounter = m.irqReload
		m.irqReloadPending = false
	} else {
		m.irqCounter--
	}

	if m.irqEnabled && m.irqCounter == 0 {
		m.irqPending = true
	}
}

// pollIRQ implements the scanlineTicker interface
func (m *mmc3) pollIRQ() bool {
	pending := m.irqPending
	m.irqPending = false
	return pending
}
