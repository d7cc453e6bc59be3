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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/test"
)

func TestMapAddress(t *testing.T) {
	var ma uint16
	var area memorymap.Area

	// the four RAM mirrors fold onto the same address
	for _, a := range []uint16{0x0173, 0x0973, 0x1173, 0x1973} {
		ma, area = memorymap.MapAddress(a)
		test.Equate(t, ma, 0x0173)
		test.Equate(t, area == memorymap.RAM, true)
	}

	// PPU registers repeat every eight bytes up to the top of the area
	ma, area = memorymap.MapAddress(0x3ffa)
	test.Equate(t, ma, 0x2002)
	test.Equate(t, area == memorymap.PPU, true)

	ma, area = memorymap.MapAddress(0x2008)
	test.Equate(t, ma, 0x2000)
	test.Equate(t, area == memorymap.PPU, true)

	// IO registers are not mirrored
	ma, area = memorymap.MapAddress(memorymap.AddressOAMDMA)
	test.Equate(t, ma, 0x4014)
	test.Equate(t, area == memorymap.IO, true)

	// cartridge addresses are returned unchanged
	ma, area = memorymap.MapAddress(0x8000)
	test.Equate(t, ma, 0x8000)
	test.Equate(t, area == memorymap.Cartridge, true)

	ma, area = memorymap.MapAddress(0x4020)
	test.Equate(t, ma, 0x4020)
	test.Equate(t, area == memorymap.Cartridge, true)
}
