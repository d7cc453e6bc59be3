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

// Package cpu emulates the 6502 microprocessor. Or more accurately, the
// Ricoh 2A03 variant: the decimal flag can be set and cleared but decimal
// arithmetic is absent.
//
// The CPU is driven one cycle at a time with the Tick() function. The
// instruction set, including the undocumented instructions, is defined in
// the instructions package and register behaviour lives in the registers
// package.
//
// Tracing support produces output in the format popularised by the nestest
// ROM's reference log, which is also the format the regression tests
// compare against.
package cpu
