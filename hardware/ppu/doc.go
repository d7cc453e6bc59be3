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

// Package ppu emulates the 2C02 picture processing unit, dot by dot. The
// CPU-visible registers (0x2000 to 0x2007 and their mirrors) are exposed as
// an implementation of the memory.Bus interface; the PPU's own address
// space (pattern tables, nametables, palette RAM) is internal, with pattern
// data supplied by the cartridge's CHR bus.
//
// Timing quirks that software relies on are reproduced: the odd-frame dot
// skip, the PPUSTATUS/vblank read race and its NMI suppression, the
// one-access delay on buffered PPUDATA reads and the immediate read of
// palette addresses, and sprite zero hit with the left-edge masking rules.
package ppu
