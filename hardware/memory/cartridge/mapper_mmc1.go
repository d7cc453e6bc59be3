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
const mmc1CHRRAMSize = 128 * 1024

// the mmc1 prg banking modes, the value of the two mode bits in the control
// register
const (
	mmc1PRG32kA = iota
	mmc1PRG32kB
	mmc1PRGFixFirst
	mmc1PRGFixLast
)

// mmc1 is mapper 1. All registers are loaded serially: five writes to the
// ROM window shift bit 0 into an internal shift register and the fifth
// write commits the accumulated value to the register selected by the
// address of that fifth write. A write with bit 7 set resets the shift
// register and forces the fix-last PRG mode.
type mmc1 struct {
	prg    []uint8
	chr    []uint8
	prgRAM [8 * 1024]uint8

	// the shift register is primed with a marker bit. when the marker
	// reaches bit 0 the next write is the committing write
	shift uint8

	control       uint8
	chrBankLow    uint8
	chrBankHigh   uint8
	prgBankSelect uint8
}

const mmc1ShiftReset = 0b10000

func newMMC1(ines inesFile) *mmc1 {
	m := &mmc1{
		prg:   ines.prg,
		shift: mmc1ShiftReset,

		// fix-last prg mode at power up
		control: mmc1PRGFixLast << 2,
	}

	if ines.chrIsRAM {
		m.chr = make([]uint8, mmc1CHRRAMSize)
	} else {
		m.chr = ines.chr
	}

	return m
}

func (m *mmc1) id() string {
	return "MMC1"
}

func (m *mmc1) prgMode() int {
	return int(m.control>>2) & 0x03
}

func (m *mmc1) chrSplit() bool {
	return m.control&0x10 == 0x10
}

func (m *mmc1) prgReadReadonly(address uint16) (uint8, bool) {
	switch {
	case address < 0x6000:
		return 0, false

	case address < 0x8000:
		return m.prgRAM[address&0x1fff], true

	case address < 0xc000:
		offset := int(address - 0x8000)
		var idx int
		switch m.prgMode() {
		case mmc1PRG32kA, mmc1PRG32kB:
			idx = 0x8000*int(m.prgBankSelect) + offset
		case mmc1PRGFixFirst:
			idx = offset
		case mmc1PRGFixLast:
			idx = prgBankSize*int(m.prgBankSelect) + offset
		}
		return m.prg[idx%len(m.prg)], true
	}

	offset := int(address - 0xc000)
	var idx int
	switch m.prgMode() {
	case mmc1PRG32kA, mmc1PRG32kB:
		idx = 0x8000*int(m.prgBankSelect) + offset + 0x2000
	case mmc1PRGFixFirst:
		idx = prgBankSize*int(m.prgBankSelect) + offset
	case mmc1PRGFixLast:
		idx = len(m.prg) - prgBankSize + offset
	}
	return m.prg[idx%len(m.prg)], true
}

func (m *mmc1) prgWrite(address uint16, value uint8) bool {
	switch {
	case address < 0x6000:
		return false

	case address < 0x8000:
		m.prgRAM[address&0x1fff] = value
		return true
	}

	if value&0x80 == 0x80 {
		m.shift = mmc1ShiftReset
		m.control |= mmc1PRGFixLast << 2
		return true
	}

	commit := m.shift&0x01 == 0x01
	m.shift = (m.shift >> 1) | ((value & 0x01) << 4)

	if commit {
		data := m.shift
		m.shift = mmc1ShiftReset

		switch {
		case address < 0xa000:
			m.control = data
		case address < 0xc000:
			m.chrBankLow = data
		case address < 0xe000:
			m.chrBankHigh = data
		default:
			m.prgBankSelect = data & 0x0f
		}
	}

	return true
}

func (m *mmc1) chrIndex(address uint16) int {
	var idx int
	if address < 0x1000 {
		if m.chrSplit() {
			idx = 0x1000*int(m.chrBankLow) + int(address)
		} else {
			idx = chrBankSize*int(m.chrBankLow) + int(address)
		}
	} else {
		offset := int(address - 0x1000)
		if m.chrSplit() {
			idx = 0x1000*int(m.chrBankHigh) + offset
		} else {
			// high bank select is ignored in 8k mode
			idx = chrBankSize*int(m.chrBankLow) + offset + 0x1000
		}
	}
	return idx % len(m.chr)
}

func (m *mmc1) chrReadReadonly(address uint16) (uint8, bool) {
	if address < 0x2000 {
		return m.chr[m.chrIndex(address)], true
	}
	return 0, false
}

func (m *mmc1) chrWrite(address uint16, value uint8) bool {
	if address < 0x2000 {
		m.chr[m.chrIndex(address)] = value
		return true
	}
	return false
}

func (m *mmc1) mirroring() Mirroring {
	switch m.control & 0x03 {
	case 0, 1:
		return MirrorSingleScreen
	case 2:
		return MirrorVertical
	}
	return MirrorHorizontal
}
