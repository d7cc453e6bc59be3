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

// uxrom is mapper 2. The lower half of the ROM window is a switchable 16k
// bank; the upper half is fixed to the last bank in the file. The bank
// register is written through any address in the ROM window. CHR is a
// single unbanked 8k, almost always RAM on real UxROM boards.
type uxrom struct {
	prg []uint8
	chr [8 * 1024]uint8

	bankSelect uint8
	mirror     Mirroring
}

func newUxROM(ines inesFile) *uxrom {
	m := &uxrom{
		prg:    ines.prg,
		mirror: ines.mirror,
	}
	mirrorFill(m.chr[:], ines.chr)
	return m
}

func (m *uxrom) id() string {
	return "UxROM"
}

func (m *uxrom) prgReadReadonly(address uint16) (uint8, bool) {
	switch {
	case address < 0x8000:
		return 0, false
	case address < 0xc000:
		idx := (int(m.bankSelect)*prgBankSize + int(address-0x8000)) % len(m.prg)
		return m.prg[idx], true
	}
	return m.prg[len(m.prg)-prgBankSize+int(address-0xc000)], true
}

func (m *uxrom) prgWrite(address uint16, value uint8) bool {
	if address < 0x8000 {
		return false
	}
	m.bankSelect = value
	return true
}

func (m *uxrom) chrReadReadonly(address uint16) (uint8, bool) {
	if address < 0x2000 {
		return m.chr[address], true
	}
	return 0, false
}

func (m *uxrom) chrWrite(address uint16, value uint8) bool {
	if address < 0x2000 {
		m.chr[address] = value
		return true
	}
	return false
}

func (m *uxrom) mirroring() Mirroring {
	return m.mirror
}
