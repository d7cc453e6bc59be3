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

package emulation

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/hardware"
)

// NestestCycles is the CPU cycle on which the automated portion of the
// nestest ROM ends.
const NestestCycles = 26554

// Nestest runs the automated portion of the nestest ROM and writes one
// trace line per instruction to output, in the format of the reference
// log. The console must have been created with the nestest cartridge
// attached.
//
// The automation entry point is 0xc000 rather than the reset vector, and
// the reference log prints the status register as 0x24 from the first
// line, so both are forced here.
func Nestest(console *hardware.NES, output io.Writer) error {
	console.CPU.Trace = true
	console.CPU.PC.Load(0xc000)
	console.CPU.Status.FromValue(0x24)

	var lastAddress uint16

	for console.CPU.Cycles < NestestCycles {
		// the reference log shows the PPU position from before the fetch.
		// the scanline is printed counting from the top of the frame
		// rather than from the pre-render line
		scanline := console.PPU.Scanline
		dot := console.PPU.Dot

		result, err := console.Tick()
		if err != nil {
			return fmt.Errorf("emulation: %w", err)
		}
		if result == nil {
			continue
		}

		if _, err := fmt.Fprintln(output, result.TraceLine(scanline+1, dot)); err != nil {
			return fmt.Errorf("emulation: %w", err)
		}

		// a jump-to-self means the test has trapped
		if result.Address == lastAddress {
			return fmt.Errorf("emulation: nestest trapped at %#04x", result.Address)
		}
		lastAddress = result.Address
	}

	return nil
}
