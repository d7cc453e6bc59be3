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

// Package memorymap describes the CPU side address space of the NES. The
// address space is divided into areas. At the coarsest level:
//
//	0x0000 to 0x1fff    work RAM (2k, mirrored four times)
//	0x2000 to 0x3fff    PPU registers (8 registers, mirrored throughout)
//	0x4000 to 0x401f    APU and IO registers
//	0x4020 to 0xffff    cartridge space
//
// The MapAddress() function folds a bus address down to its canonical
// address and also returns the area the address is in. For example, the
// following will return 0x2002 and the PPU area:
//
//	ma, area := memorymap.MapAddress(0x3ffa)
//
// Addresses in the cartridge area are returned unchanged. What a cartridge
// address means is entirely up to the inserted mapper.
package memorymap

// Area represents the different areas of the CPU address space
type Area int

// The different area values
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The origin and memtop of each memory area
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginIO        = uint16(0x4000)
	MemtopIO        = uint16(0x401f)
	OriginCart      = uint16(0x4020)
	MemtopCart      = uint16(0xffff)
)

// The extent of the unmirrored portion of each hardware area
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Notable individual registers in the IO area
const (
	AddressOAMDMA      = uint16(0x4014)
	AddressAPUStatus   = uint16(0x4015)
	AddressController1 = uint16(0x4016)
	AddressController2 = uint16(0x4017)
)

// The CPU vectors at the top of the cartridge space
const (
	AddressNMI   = uint16(0xfffa)
	AddressReset = uint16(0xfffc)
	AddressIRQ   = uint16(0xfffe)
)

// MapAddress folds an address onto its canonical value and identifies the
// area of the address space it falls in. Addresses in the RAM and PPU areas
// are demirrored. Addresses in the IO and Cartridge areas are returned
// unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopIO:
		return address, IO
	}

	return address, Cartridge
}
