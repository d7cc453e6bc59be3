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

// nrom is mapper 0. There is no banking at all: a 16k or 32k PRG ROM fills
// the 32k window (16k images appear twice) and a single 8k CHR bank fills
// the pattern table space. 8k of PRG RAM is provided at 0x6000, which is
// more generous than most NROM boards but is what the common test ROMs
// expect.
type nrom struct {
	prg    [32 * 1024]uint8
	chr    [8 * 1024]uint8
	prgRAM [8 * 1024]uint8

	chrIsRAM bool
	mirror   Mirroring
}

func newNROM(ines inesFile) *nrom {
	m := &nrom{
		chrIsRAM: ines.chrIsRAM,
		mirror:   ines.mirror,
	}
	mirrorFill(m.prg[:], ines.prg)
	mirrorFill(m.chr[:], ines.chr)
	return m
}

func (m *nrom) id() string {
	return "NROM"
}

func (m *nrom) prgReadReadonly(address uint16) (uint8, bool) {
	switch {
	case address < 0x6000:
		return 0, false
	case address < 0x8000:
		return m.prgRAM[address&0x1fff], true
	}
	return m.prg[address-0x8000], true
}

func (m *nrom) prgWrite(address uint16, value uint8) bool {
	switch {
	case address < 0x6000:
		return false
	case address < 0x8000:
		m.prgRAM[address&0x1fff] = value
	}
	// writes to the ROM window are claimed but have no effect
	return true
}

func (m *nrom) chrReadReadonly(address uint16) (uint8, bool) {
	if address < 0x2000 {
		return m.chr[address], true
	}
	return 0, false
}

func (m *nrom) chrWrite(address uint16, value uint8) bool {
	if address < 0x2000 {
		m.chr[address] = value
		return true
	}
	return false
}

func (m *nrom) mirroring() Mirroring {
	return m.mirror
}
