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

package instructions

// entry is the compact form of a Definition used to declare the table. the
// byte count is derived from the addressing mode.
type entry struct {
	opcode        uint8
	mnemonic      string
	cycles        int
	mode          AddressingMode
	pageSensitive bool
	effect        EffectCategory
	undocumented  bool
}

var table = []entry{
	{0x69, "ADC", 2, Immediate, false, Read, false},
	{0x65, "ADC", 3, ZeroPage, false, Read, false},
	{0x75, "ADC", 4, ZeroPageIndexedX, false, Read, false},
	{0x6d, "ADC", 4, Absolute, false, Read, false},
	{0x7d, "ADC", 4, AbsoluteIndexedX, true, Read, false},
	{0x79, "ADC", 4, AbsoluteIndexedY, true, Read, false},
	{0x61, "ADC", 6, IndexedIndirect, false, Read, false},
	{0x71, "ADC", 5, IndirectIndexed, true, Read, false},

	{0x29, "AND", 2, Immediate, false, Read, false},
	{0x25, "AND", 3, ZeroPage, false, Read, false},
	{0x35, "AND", 4, ZeroPageIndexedX, false, Read, false},
	{0x2d, "AND", 4, Absolute, false, Read, false},
	{0x3d, "AND", 4, AbsoluteIndexedX, true, Read, false},
	{0x39, "AND", 4, AbsoluteIndexedY, true, Read, false},
	{0x21, "AND", 6, IndexedIndirect, false, Read, false},
	{0x31, "AND", 5, IndirectIndexed, true, Read, false},

	{0x0a, "ASL", 2, Accumulator, false, RMW, false},
	{0x06, "ASL", 5, ZeroPage, false, RMW, false},
	{0x16, "ASL", 6, ZeroPageIndexedX, false, RMW, false},
	{0x0e, "ASL", 6, Absolute, false, RMW, false},
	{0x1e, "ASL", 7, AbsoluteIndexedX, false, RMW, false},

	{0x90, "BCC", 2, Relative, false, Flow, false},
	{0xb0, "BCS", 2, Relative, false, Flow, false},
	{0xf0, "BEQ", 2, Relative, false, Flow, false},
	{0x30, "BMI", 2, Relative, false, Flow, false},
	{0xd0, "BNE", 2, Relative, false, Flow, false},
	{0x10, "BPL", 2, Relative, false, Flow, false},
	{0x50, "BVC", 2, Relative, false, Flow, false},
	{0x70, "BVS", 2, Relative, false, Flow, false},

	{0x24, "BIT", 3, ZeroPage, false, Read, false},
	{0x2c, "BIT", 4, Absolute, false, Read, false},

	{0x00, "BRK", 7, Implied, false, Interrupt, false},

	{0x18, "CLC", 2, Implied, false, Read, false},
	{0xd8, "CLD", 2, Implied, false, Read, false},
	{0x58, "CLI", 2, Implied, false, Read, false},
	{0xb8, "CLV", 2, Implied, false, Read, false},

	{0xc9, "CMP", 2, Immediate, false, Read, false},
	{0xc5, "CMP", 3, ZeroPage, false, Read, false},
	{0xd5, "CMP", 4, ZeroPageIndexedX, false, Read, false},
	{0xcd, "CMP", 4, Absolute, false, Read, false},
	{0xdd, "CMP", 4, AbsoluteIndexedX, true, Read, false},
	{0xd9, "CMP", 4, AbsoluteIndexedY, true, Read, false},
	{0xc1, "CMP", 6, IndexedIndirect, false, Read, false},
	{0xd1, "CMP", 5, IndirectIndexed, true, Read, false},

	{0xe0, "CPX", 2, Immediate, false, Read, false},
	{0xe4, "CPX", 3, ZeroPage, false, Read, false},
	{0xec, "CPX", 4, Absolute, false, Read, false},

	{0xc0, "CPY", 2, Immediate, false, Read, false},
	{0xc4, "CPY", 3, ZeroPage, false, Read, false},
	{0xcc, "CPY", 4, Absolute, false, Read, false},

	{0xc6, "DEC", 5, ZeroPage, false, RMW, false},
	{0xd6, "DEC", 6, ZeroPageIndexedX, false, RMW, false},
	{0xce, "DEC", 6, Absolute, false, RMW, false},
	{0xde, "DEC", 7, AbsoluteIndexedX, false, RMW, false},

	{0xca, "DEX", 2, Implied, false, Read, false},
	{0x88, "DEY", 2, Implied, false, Read, false},

	{0x49, "EOR", 2, Immediate, false, Read, false},
	{0x45, "EOR", 3, ZeroPage, false, Read, false},
	{0x55, "EOR", 4, ZeroPageIndexedX, false, Read, false},
	{0x4d, "EOR", 4, Absolute, false, Read, false},
	{0x5d, "EOR", 4, AbsoluteIndexedX, true, Read, false},
	{0x59, "EOR", 4, AbsoluteIndexedY, true, Read, false},
	{0x41, "EOR", 6, IndexedIndirect, false, Read, false},
	{0x51, "EOR", 5, IndirectIndexed, true, Read, false},

	{0xe6, "INC", 5, ZeroPage, false, RMW, false},
	{0xf6, "INC", 6, ZeroPageIndexedX, false, RMW, false},
	{0xee, "INC", 6, Absolute, false, RMW, false},
	{0xfe, "INC", 7, AbsoluteIndexedX, false, RMW, false},

	{0xe8, "INX", 2, Implied, false, Read, false},
	{0xc8, "INY", 2, Implied, false, Read, false},

	{0x4c, "JMP", 3, Absolute, false, Flow, false},
	{0x6c, "JMP", 5, Indirect, false, Flow, false},
	{0x20, "JSR", 6, Absolute, false, Subroutine, false},

	{0xa9, "LDA", 2, Immediate, false, Read, false},
	{0xa5, "LDA", 3, ZeroPage, false, Read, false},
	{0xb5, "LDA", 4, ZeroPageIndexedX, false, Read, false},
	{0xad, "LDA", 4, Absolute, false, Read, false},
	{0xbd, "LDA", 4, AbsoluteIndexedX, true, Read, false},
	{0xb9, "LDA", 4, AbsoluteIndexedY, true, Read, false},
	{0xa1, "LDA", 6, IndexedIndirect, false, Read, false},
	{0xb1, "LDA", 5, IndirectIndexed, true, Read, false},

	{0xa2, "LDX", 2, Immediate, false, Read, false},
	{0xa6, "LDX", 3, ZeroPage, false, Read, false},
	{0xb6, "LDX", 4, ZeroPageIndexedY, false, Read, false},
	{0xae, "LDX", 4, Absolute, false, Read, false},
	{0xbe, "LDX", 4, AbsoluteIndexedY, true, Read, false},

	{0xa0, "LDY", 2, Immediate, false, Read, false},
	{0xa4, "LDY", 3, ZeroPage, false, Read, false},
	{0xb4, "LDY", 4, ZeroPageIndexedX, false, Read, false},
	{0xac, "LDY", 4, Absolute, false, Read, false},
	{0xbc, "LDY", 4, AbsoluteIndexedX, true, Read, false},

	{0x4a, "LSR", 2, Accumulator, false, RMW, false},
	{0x46, "LSR", 5, ZeroPage, false, RMW, false},
	{0x56, "LSR", 6, ZeroPageIndexedX, false, RMW, false},
	{0x4e, "LSR", 6, Absolute, false, RMW, false},
	{0x5e, "LSR", 7, AbsoluteIndexedX, false, RMW, false},

	{0xea, "NOP", 2, Implied, false, Read, false},

	{0x09, "ORA", 2, Immediate, false, Read, false},
	{0x05, "ORA", 3, ZeroPage, false, Read, false},
	{0x15, "ORA", 4, ZeroPageIndexedX, false, Read, false},
	{0x0d, "ORA", 4, Absolute, false, Read, false},
	{0x1d, "ORA", 4, AbsoluteIndexedX, true, Read, false},
	{0x19, "ORA", 4, AbsoluteIndexedY, true, Read, false},
	{0x01, "ORA", 6, IndexedIndirect, false, Read, false},
	{0x11, "ORA", 5, IndirectIndexed, true, Read, false},

	{0x48, "PHA", 3, Implied, false, Read, false},
	{0x08, "PHP", 3, Implied, false, Read, false},
	{0x68, "PLA", 4, Implied, false, Read, false},
	{0x28, "PLP", 4, Implied, false, Read, false},

	{0x2a, "ROL", 2, Accumulator, false, RMW, false},
	{0x26, "ROL", 5, ZeroPage, false, RMW, false},
	{0x36, "ROL", 6, ZeroPageIndexedX, false, RMW, false},
	{0x2e, "ROL", 6, Absolute, false, RMW, false},
	{0x3e, "ROL", 7, AbsoluteIndexedX, false, RMW, false},

	{0x6a, "ROR", 2, Accumulator, false, RMW, false},
	{0x66, "ROR", 5, ZeroPage, false, RMW, false},
	{0x76, "ROR", 6, ZeroPageIndexedX, false, RMW, false},
	{0x6e, "ROR", 6, Absolute, false, RMW, false},
	{0x7e, "ROR", 7, AbsoluteIndexedX, false, RMW, false},

	{0x40, "RTI", 6, Implied, false, Interrupt, false},
	{0x60, "RTS", 6, Implied, false, Subroutine, false},

	{0xe9, "SBC", 2, Immediate, false, Read, false},
	{0xe5, "SBC", 3, ZeroPage, false, Read, false},
	{0xf5, "SBC", 4, ZeroPageIndexedX, false, Read, false},
	{0xed, "SBC", 4, Absolute, false, Read, false},
	{0xfd, "SBC", 4, AbsoluteIndexedX, true, Read, false},
	{0xf9, "SBC", 4, AbsoluteIndexedY, true, Read, false},
	{0xe1, "SBC", 6, IndexedIndirect, false, Read, false},
	{0xf1, "SBC", 5, IndirectIndexed, true, Read, false},

	{0x38, "SEC", 2, Implied, false, Read, false},
	{0xf8, "SED", 2, Implied, false, Read, false},
	{0x78, "SEI", 2, Implied, false, Read, false},

	{0x85, "STA", 3, ZeroPage, false, Write, false},
	{0x95, "STA", 4, ZeroPageIndexedX, false, Write, false},
	{0x8d, "STA", 4, Absolute, false, Write, false},
	{0x9d, "STA", 5, AbsoluteIndexedX, false, Write, false},
	{0x99, "STA", 5, AbsoluteIndexedY, false, Write, false},
	{0x81, "STA", 6, IndexedIndirect, false, Write, false},
	{0x91, "STA", 6, IndirectIndexed, false, Write, false},

	{0x86, "STX", 3, ZeroPage, false, Write, false},
	{0x96, "STX", 4, ZeroPageIndexedY, false, Write, false},
	{0x8e, "STX", 4, Absolute, false, Write, false},

	{0x84, "STY", 3, ZeroPage, false, Write, false},
	{0x94, "STY", 4, ZeroPageIndexedX, false, Write, false},
	{0x8c, "STY", 4, Absolute, false, Write, false},

	{0xaa, "TAX", 2, Implied, false, Read, false},
	{0xa8, "TAY", 2, Implied, false, Read, false},
	{0xba, "TSX", 2, Implied, false, Read, false},
	{0x8a, "TXA", 2, Implied, false, Read, false},
	{0x9a, "TXS", 2, Implied, false, Read, false},
	{0x98, "TYA", 2, Implied, false, Read, false},

	// undocumented instructions from here. the NOP forms first
	{0x1a, "NOP", 2, Implied, false, Read, true},
	{0x3a, "NOP", 2, Implied, false, Read, true},
	{0x5a, "NOP", 2, Implied, false, Read, true},
	{0x7a, "NOP", 2, Implied, false, Read, true},
	{0xda, "NOP", 2, Implied, false, Read, true},
	{0xfa, "NOP", 2, Implied, false, Read, true},

	{0x80, "NOP", 2, Immediate, false, Read, true},
	{0x82, "NOP", 2, Immediate, false, Read, true},
	{0x89, "NOP", 2, Immediate, false, Read, true},
	{0xc2, "NOP", 2, Immediate, false, Read, true},
	{0xe2, "NOP", 2, Immediate, false, Read, true},

	{0x04, "NOP", 3, ZeroPage, false, Read, true},
	{0x44, "NOP", 3, ZeroPage, false, Read, true},
	{0x64, "NOP", 3, ZeroPage, false, Read, true},

	{0x14, "NOP", 4, ZeroPageIndexedX, false, Read, true},
	{0x34, "NOP", 4, ZeroPageIndexedX, false, Read, true},
	{0x54, "NOP", 4, ZeroPageIndexedX, false, Read, true},
	{0x74, "NOP", 4, ZeroPageIndexedX, false, Read, true},
	{0xd4, "NOP", 4, ZeroPageIndexedX, false, Read, true},
	{0xf4, "NOP", 4, ZeroPageIndexedX, false, Read, true},

	{0x0c, "NOP", 4, Absolute, false, Read, true},

	{0x1c, "NOP", 4, AbsoluteIndexedX, true, Read, true},
	{0x3c, "NOP", 4, AbsoluteIndexedX, true, Read, true},
	{0x5c, "NOP", 4, AbsoluteIndexedX, true, Read, true},
	{0x7c, "NOP", 4, AbsoluteIndexedX, true, Read, true},
	{0xdc, "NOP", 4, AbsoluteIndexedX, true, Read, true},
	{0xfc, "NOP", 4, AbsoluteIndexedX, true, Read, true},

	{0xa7, "LAX", 3, ZeroPage, false, Read, true},
	{0xb7, "LAX", 4, ZeroPageIndexedY, false, Read, true},
	{0xaf, "LAX", 4, Absolute, false, Read, true},
	{0xbf, "LAX", 4, AbsoluteIndexedY, true, Read, true},
	{0xa3, "LAX", 6, IndexedIndirect, false, Read, true},
	{0xb3, "LAX", 5, IndirectIndexed, true, Read, true},

	{0x87, "SAX", 3, ZeroPage, false, Write, true},
	{0x97, "SAX", 4, ZeroPageIndexedY, false, Write, true},
	{0x83, "SAX", 6, IndexedIndirect, false, Write, true},
	{0x8f, "SAX", 4, Absolute, false, Write, true},

	{0xeb, "SBC", 2, Immediate, false, Read, true},

	{0xc7, "DCP", 5, ZeroPage, false, RMW, true},
	{0xd7, "DCP", 6, ZeroPageIndexedX, false, RMW, true},
	{0xcf, "DCP", 6, Absolute, false, RMW, true},
	{0xdf, "DCP", 7, AbsoluteIndexedX, false, RMW, true},
	{0xdb, "DCP", 7, AbsoluteIndexedY, false, RMW, true},
	{0xc3, "DCP", 8, IndexedIndirect, false, RMW, true},
	{0xd3, "DCP", 8, IndirectIndexed, false, RMW, true},

	{0xe7, "ISB", 5, ZeroPage, false, RMW, true},
	{0xf7, "ISB", 6, ZeroPageIndexedX, false, RMW, true},
	{0xef, "ISB", 6, Absolute, false, RMW, true},
	{0xff, "ISB", 7, AbsoluteIndexedX, false, RMW, true},
	{0xfb, "ISB", 7, AbsoluteIndexedY, false, RMW, true},
	{0xe3, "ISB", 8, IndexedIndirect, false, RMW, true},
	{0xf3, "ISB", 8, IndirectIndexed, false, RMW, true},

	{0x07, "SLO", 5, ZeroPage, false, RMW, true},
	{0x17, "SLO", 6, ZeroPageIndexedX, false, RMW, true},
	{0x0f, "SLO", 6, Absolute, false, RMW, true},
	{0x1f, "SLO", 7, AbsoluteIndexedX, false, RMW, true},
	{0x1b, "SLO", 7, AbsoluteIndexedY, false, RMW, true},
	{0x03, "SLO", 8, IndexedIndirect, false, RMW, true},
	{0x13, "SLO", 8, IndirectIndexed, false, RMW, true},

	{0x27, "RLA", 5, ZeroPage, false, RMW, true},
	{0x37, "RLA", 6, ZeroPageIndexedX, false, RMW, true},
	{0x2f, "RLA", 6, Absolute, false, RMW, true},
	{0x3f, "RLA", 7, AbsoluteIndexedX, false, RMW, true},
	{0x3b, "RLA", 7, AbsoluteIndexedY, false, RMW, true},
	{0x23, "RLA", 8, IndexedIndirect, false, RMW, true},
	{0x33, "RLA", 8, IndirectIndexed, false, RMW, true},

	{0x47, "SRE", 5, ZeroPage, false, RMW, true},
	{0x57, "SRE", 6, ZeroPageIndexedX, false, RMW, true},
	{0x4f, "SRE", 6, Absolute, false, RMW, true},
	{0x5f, "SRE", 7, AbsoluteIndexedX, false, RMW, true},
	{0x5b, "SRE", 7, AbsoluteIndexedY, false, RMW, true},
	{0x43, "SRE", 8, IndexedIndirect, false, RMW, true},
	{0x53, "SRE", 8, IndirectIndexed, false, RMW, true},

	{0x67, "RRA", 5, ZeroPage, false, RMW, true},
	{0x77, "RRA", 6, ZeroPageIndexedX, false, RMW, true},
	{0x6f, "RRA", 6, Absolute, false, RMW, true},
	{0x7f, "RRA", 7, AbsoluteIndexedX, false, RMW, true},
	{0x7b, "RRA", 7, AbsoluteIndexedY, false, RMW, true},
	{0x63, "RRA", 8, IndexedIndirect, false, RMW, true},
	{0x73, "RRA", 8, IndirectIndexed, false, RMW, true},
}

func bytesForMode(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 3
	}
	return 2
}

// Definitions is the table of instruction definitions, indexed by opcode.
// Undefined opcodes have a nil entry.
var Definitions [256]*Definition

func init() {
	for _, e := range table {
		Definitions[e.opcode] = &Definition{
			OpCode:         e.opcode,
			Mnemonic:       e.mnemonic,
			Bytes:          bytesForMode(e.mode),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.pageSensitive,
			Effect:         e.effect,
			Undocumented:   e.undocumented,
		}
	}
}
