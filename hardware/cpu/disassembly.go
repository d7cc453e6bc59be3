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

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory"
)

// disassembleOperand renders the mnemonic and operand in the style of the
// nestest reference log: memory operands are followed by the value they
// resolve to, read through the readonly side of the bus. It must be called
// after the operand has been fetched (the PC has moved past the
// instruction) and before the instruction executes.
func (mc *CPU) disassembleOperand(defn *instructions.Definition, operand uint16, addr uint16) string {
	// the log suppresses operand evaluation for JSR and for JMP absolute.
	// JMP indirect still shows the resolved target
	eval := true
	if defn.Effect == instructions.Subroutine {
		eval = false
	}
	if defn.Effect == instructions.Flow && defn.AddressingMode == instructions.Absolute {
		eval = false
	}

	var op string

	switch defn.AddressingMode {
	case instructions.Implied:
		return defn.Mnemonic

	case instructions.Accumulator:
		op = "A"

	case instructions.Immediate:
		op = fmt.Sprintf("#$%02X", uint8(operand))

	case instructions.Relative:
		op = fmt.Sprintf("$%04X", mc.PC.Address()+uint16(int8(uint8(operand))))

	case instructions.ZeroPage:
		op = fmt.Sprintf("$%02X", uint8(operand))
		if eval {
			op = fmt.Sprintf("%s = %02X", op, memory.ReadReadonly(mc.mem, addr))
		}

	case instructions.ZeroPageIndexedX:
		op = fmt.Sprintf("$%02X,X @ %02X = %02X", uint8(operand), uint8(addr), memory.ReadReadonly(mc.mem, addr))

	case instructions.ZeroPageIndexedY:
		op = fmt.Sprintf("$%02X,Y @ %02X = %02X", uint8(operand), uint8(addr), memory.ReadReadonly(mc.mem, addr))

	case instructions.Absolute:
		op = fmt.Sprintf("$%04X", operand)
		if eval {
			op = fmt.Sprintf("%s = %02X", op, memory.ReadReadonly(mc.mem, addr))
		}

	case instructions.AbsoluteIndexedX:
		op = fmt.Sprintf("$%04X,X @ %04X = %02X", operand, addr, memory.ReadReadonly(mc.mem, addr))

	case instructions.AbsoluteIndexedY:
		op = fmt.Sprintf("$%04X,Y @ %04X = %02X", operand, addr, memory.ReadReadonly(mc.mem, addr))

	case instructions.Indirect:
		op = fmt.Sprintf("($%04X) = %04X", operand, addr)

	case instructions.IndexedIndirect:
		op = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X",
			uint8(operand), uint8(operand)+mc.X.Value(), addr, memory.ReadReadonly(mc.mem, addr))

	case instructions.IndirectIndexed:
		base := addr - mc.Y.Address()
		op = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X",
			uint8(operand), base, addr, memory.ReadReadonly(mc.mem, addr))
	}

	return fmt.Sprintf("%s %s", defn.Mnemonic, op)
}
