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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Result summarises an executed instruction. Register values are those from
// immediately before execution, which is what a trace wants to show.
type Result struct {
	// address of the opcode
	Address uint16

	Defn *instructions.Definition

	// the raw bytes of the instruction. ByteCount says how many of the
	// array are valid
	Bytes     [3]uint8
	ByteCount int

	// mnemonic and operand in the style of the nestest reference log. only
	// valid if tracing was enabled on the CPU at the time of execution
	Disassembly string

	// register values before execution
	A, X, Y, SP, P uint8

	// the CPU cycle count at the instruction boundary
	Cycles uint64
}

func (r Result) String() string {
	if r.Disassembly != "" {
		return fmt.Sprintf("%04X %s", r.Address, r.Disassembly)
	}
	return fmt.Sprintf("%04X %s", r.Address, r.Defn.Mnemonic)
}

// TraceLine formats the result as one line of a nestest style trace. The
// scanline and dot values are printed as given; the caller supplies them
// in whatever convention the log it is comparing against uses.
func (r Result) TraceLine(scanline int, dot int) string {
	s := strings.Builder{}
	for i := 1; i < r.ByteCount; i++ {
		if i > 1 {
			s.WriteRune(' ')
		}
		fmt.Fprintf(&s, "%02X", r.Bytes[i])
	}

	marker := " "
	if r.Defn.Undocumented {
		marker = "*"
	}

	return fmt.Sprintf("%04X  %02X %-6s%s%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		r.Address, r.Bytes[0], s.String(), marker, r.Disassembly,
		r.A, r.X, r.Y, r.P, r.SP, scanline, dot, r.Cycles)
}
