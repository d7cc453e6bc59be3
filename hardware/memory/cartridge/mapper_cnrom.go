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

// cnrom is mapper 3. PRG is fixed, as NROM. The single register selects one
// of up to four 8k CHR banks and is written through any address in the ROM
// window.
type cnrom struct {
	prg [32 * 1024]uint8
	chr [4 * 8 * 1024]uint8

	bankSelect uint8
	mirror     Mirroring
}

func newCNROM(ines inesFile) *cnrom {
	m := &cnrom{
		mirror: ines.mirror,
	}
	mirrorFill(m.prg[:], ines.prg)
	mirrorFill(m.chr[:], ines.chr)
	return m
}

func (m *cnrom) id() string {
	return "CNROM"
}

func (m *cnrom) prgReadReadonly(address uint16) (uint8, bool) {
	if address < 0x8000 {
		return 0, false
	}
	return m.prg[address-0x8000], true
}

func (m *cnrom) prgWrite(address uint16, value uint8) bool {
	if address < 0x8000 {
		return false
	}
	m.bankSelect = value & 0x03
	return true
}

func (m *cnrom) chrReadReadonly(address uint16) (uint8, bool) {
	if address < 0x2000 {
		return m.chr[int(m.bankSelect)*chrBankSize+int(address)], true
	}
	return 0, false
}

func (m *cnrom) chrWrite(address uint16, value uint8) bool {
	if address < 0x2000 {
		m.chr[int(m.bankSelect)*chrBankSize+int(address)] = value
		return true
	}
	return false
}

func (m *cnrom) mirroring() Mirroring {
	return m.mirror
}
