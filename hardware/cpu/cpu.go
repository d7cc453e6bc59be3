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
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// CPU implements the 6502 found in the console. The CPU is ticked once per
// CPU cycle but instructions take effect all at once: the tick that fetches
// an opcode also executes it, and the remaining cycles of the instruction
// are counted down as wait cycles during which nothing happens. Bus traffic
// is therefore not cycle-accurate within an instruction but instruction
// boundaries land on the correct cycle.
type CPU struct {
	PC     *registers.ProgramCounter
	A      *registers.Register
	X      *registers.Register
	Y      *registers.Register
	SP     *registers.Register
	Status registers.StatusRegister

	// number of cycles ticked since reset. the trace output wants the count
	// as it was at the instruction boundary, which is kept in Result
	Cycles uint64

	mem memory.Bus

	// cycles remaining before the next instruction boundary
	waitCycles int

	// nmi is edge triggered and latched until serviced. irq is the level of
	// the shared interrupt line, sampled at every instruction boundary
	nmi bool
	irq bool

	// when true a disassembly of each instruction is built as it executes.
	// tracing is off by default, the string formatting is too expensive to
	// leave on
	Trace bool
}

// stack is page one of RAM
const stackOrigin = uint16(0x0100)

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem memory.Bus) *CPU {
	return &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0),
		X:      registers.NewRegister(0),
		Y:      registers.NewRegister(0),
		SP:     registers.NewRegister(0xfd),
		Status: registers.NewStatusRegister(),
		mem:    mem,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset puts the CPU into the state it is in after the console's reset
// signal has been released. The reset vector is read through the bus so a
// cartridge must be attached before calling.
func (mc *CPU) Reset() {
	lo := memory.Read(mc.mem, memorymap.AddressReset)
	hi := memory.Read(mc.mem, memorymap.AddressReset+1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	mc.Cycles = 0
	mc.waitCycles = 7
	mc.nmi = false
	mc.irq = false
}

// RaiseNMI latches a pending NMI. The interrupt is serviced at the next
// instruction boundary and cannot be masked.
func (mc *CPU) RaiseNMI() {
	mc.nmi = true
}

// SetIRQLine sets the level of the IRQ line. The line is shared by the APU
// frame counter and by cartridge mappers; the console ORs the sources
// together before calling this.
func (mc *CPU) SetIRQLine(level bool) {
	mc.irq = level
}

// InstructionBoundary returns true if the next call to Tick() will fetch an
// instruction (or service an interrupt) rather than burn a wait cycle.
func (mc *CPU) InstructionBoundary() bool {
	return mc.waitCycles == 0
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(stackOrigin|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return memory.Read(mc.mem, stackOrigin|mc.SP.Address())
}

// read the byte at the PC and advance
func (mc *CPU) fetch() uint8 {
	v := memory.Read(mc.mem, mc.PC.Address())
	mc.PC.Add(1)
	return v
}

func (mc *CPU) readVector(address uint16) uint16 {
	lo := memory.Read(mc.mem, address)
	hi := memory.Read(mc.mem, address+1)
	return (uint16(hi) << 8) | uint16(lo)
}

// service an NMI or IRQ. the two differ only in the vector and in whether
// the status register is adjusted before or after it is pushed
func (mc *CPU) interrupt(vector uint16, adjustBeforePush bool) {
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address() & 0xff))

	if adjustBeforePush {
		mc.Status.Break = false
		mc.Status.InterruptDisable = true
		mc.push(mc.Status.Value())
	} else {
		mc.push(mc.Status.Value())
		mc.Status.Break = false
		mc.Status.InterruptDisable = true
	}

	mc.PC.Load(mc.readVector(vector))
	mc.waitCycles = 6
}

// Tick runs the CPU for one cycle. The result is nil except on the cycle
// that fetches and executes an instruction. An error is returned if the
// fetched opcode is not in the definitions table, which for the software
// this console runs means the program has jumped somewhere wild.
func (mc *CPU) Tick() (*Result, error) {
	cycles := mc.Cycles
	mc.Cycles++

	// a pending NMI cuts in even while an instruction is completing. this
	// matches the hardware closely enough: the NMI poll happens in the
	// final cycles of the preceding instruction
	if mc.nmi {
		mc.nmi = false
		mc.interrupt(memorymap.AddressNMI, true)
		return nil, nil
	}

	if mc.waitCycles > 0 {
		mc.waitCycles--
		return nil, nil
	}

	if mc.irq && !mc.Status.InterruptDisable {
		// servicing drops the line. level sources re-assert it on the next
		// console tick
		mc.irq = false
		mc.interrupt(memorymap.AddressIRQ, false)
		return nil, nil
	}

	result := &Result{
		Address: mc.PC.Address(),
		A:       mc.A.Value(),
		X:       mc.X.Value(),
		Y:       mc.Y.Value(),
		SP:      mc.SP.Value(),
		P:       mc.Status.Value(),
		Cycles:  cycles,
	}

	opcode := mc.fetch()
	defn := instructions.Definitions[opcode]
	if defn == nil {
		return nil, fmt.Errorf("cpu: undefined opcode (%#02x) at %#04x", opcode, result.Address)
	}
	result.Defn = defn
	result.Bytes[0] = opcode
	result.ByteCount = defn.Bytes

	mc.waitCycles = defn.Cycles - 1

	// operand bytes
	var operand uint16
	switch defn.Bytes {
	case 2:
		result.Bytes[1] = mc.fetch()
		operand = uint16(result.Bytes[1])
	case 3:
		result.Bytes[1] = mc.fetch()
		result.Bytes[2] = mc.fetch()
		operand = (uint16(result.Bytes[2]) << 8) | uint16(result.Bytes[1])
	}

	addr, pageCross := mc.resolve(defn.AddressingMode, operand)
	if pageCross && defn.PageSensitive {
		mc.waitCycles++
	}

	if mc.Trace {
		result.Disassembly = mc.disassembleOperand(defn, operand, addr)
	}

	if err := mc.execute(defn, operand, addr); err != nil {
		return nil, err
	}

	return result, nil
}

// resolve the effective address of the instruction. the bool return value
// indicates that indexing stepped over a page boundary. addressing modes
// that don't yield an address (implied, accumulator, immediate, relative)
// resolve to zero.
func (mc *CPU) resolve(mode instructions.AddressingMode, operand uint16) (uint16, bool) {
	switch mode {
	case instructions.Absolute:
		return operand, false

	case instructions.ZeroPage:
		return operand, false

	case instructions.ZeroPageIndexedX:
		// zero page indexing never leaves the zero page
		return uint16(uint8(operand) + mc.X.Value()), false

	case instructions.ZeroPageIndexedY:
		return uint16(uint8(operand) + mc.Y.Value()), false

	case instructions.AbsoluteIndexedX:
		addr := operand + mc.X.Address()
		return addr, addr&0xff00 != operand&0xff00

	case instructions.AbsoluteIndexedY:
		addr := operand + mc.Y.Address()
		return addr, addr&0xff00 != operand&0xff00

	case instructions.Indirect:
		// the 6502 JMP bug: the pointer's high byte is read from the start
		// of the page when the pointer sits at the end of one
		lo := memory.Read(mc.mem, operand)
		hi := memory.Read(mc.mem, (operand&0xff00)|uint16(uint8(operand)+1))
		return (uint16(hi) << 8) | uint16(lo), false

	case instructions.IndexedIndirect:
		ptr := uint8(operand) + mc.X.Value()
		lo := memory.Read(mc.mem, uint16(ptr))
		hi := memory.Read(mc.mem, uint16(ptr+1))
		return (uint16(hi) << 8) | uint16(lo), false

	case instructions.IndirectIndexed:
		lo := memory.Read(mc.mem, uint16(uint8(operand)))
		hi := memory.Read(mc.mem, uint16(uint8(operand)+1))
		base := (uint16(hi) << 8) | uint16(lo)
		addr := base + mc.Y.Address()
		return addr, addr&0xff00 != base&0xff00
	}

	return 0, false
}

// load the value the instruction operates on
func (mc *CPU) loadOperand(defn *instructions.Definition, operand uint16, addr uint16) uint8 {
	switch defn.AddressingMode {
	case instructions.Immediate:
		return uint8(operand)
	case instructions.Accumulator:
		return mc.A.Value()
	}
	return memory.Read(mc.mem, addr)
}

// store the result of a read-modify-write instruction
func (mc *CPU) storeOperand(defn *instructions.Definition, addr uint16, value uint8) {
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(value)
		return
	}
	mc.mem.Write(addr, value)
}

func (mc *CPU) setZN(value uint8) {
	mc.Status.Zero = value == 0
	mc.Status.Sign = value&0x80 == 0x80
}

// branch on condition. one extra cycle if the branch is taken and another
// if the target is on a different page to the instruction that follows the
// branch
func (mc *CPU) branch(condition bool, operand uint16) {
	if !condition {
		return
	}
	mc.waitCycles++

	target := mc.PC.Address() + uint16(int8(uint8(operand)))
	if target&0xff00 != mc.PC.Address()&0xff00 {
		mc.waitCycles++
	}
	mc.PC.Load(target)
}

func (mc *CPU) adc(value uint8) {
	carry, overflow := mc.A.Add(value, mc.Status.Carry)
	mc.Status.Carry = carry
	mc.Status.Overflow = overflow
	mc.setZN(mc.A.Value())
}

func (mc *CPU) compare(register uint8, value uint8) {
	mc.Status.Carry = register >= value
	mc.Status.Zero = register == value
	mc.Status.Sign = (register-value)&0x80 == 0x80
}

func (mc *CPU) execute(defn *instructions.Definition, operand uint16, addr uint16) error {
	switch defn.Mnemonic {
	case "ADC":
		mc.adc(mc.loadOperand(defn, operand, addr))

	case "AND":
		mc.A.AND(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.A.Value())

	case "ASL":
		value := mc.loadOperand(defn, operand, addr)
		result := value << 1
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x80 == 0x80
		mc.setZN(result)

	case "BCC":
		mc.branch(!mc.Status.Carry, operand)
	case "BCS":
		mc.branch(mc.Status.Carry, operand)
	case "BEQ":
		mc.branch(mc.Status.Zero, operand)
	case "BMI":
		mc.branch(mc.Status.Sign, operand)
	case "BNE":
		mc.branch(!mc.Status.Zero, operand)
	case "BPL":
		mc.branch(!mc.Status.Sign, operand)
	case "BVC":
		mc.branch(!mc.Status.Overflow, operand)
	case "BVS":
		mc.branch(mc.Status.Overflow, operand)

	case "BIT":
		value := mc.loadOperand(defn, operand, addr)
		mc.Status.Zero = value&mc.A.Value() == 0
		mc.Status.Overflow = value&0x40 == 0x40
		mc.Status.Sign = value&0x80 == 0x80

	case "BRK":
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address() & 0xff))
		mc.Status.Break = true
		mc.push(mc.Status.Value())
		mc.PC.Load(mc.readVector(memorymap.AddressIRQ))
		mc.waitCycles = 6

	case "CLC":
		mc.Status.Carry = false
	case "CLD":
		mc.Status.DecimalMode = false
	case "CLI":
		mc.Status.InterruptDisable = false
	case "CLV":
		mc.Status.Overflow = false

	case "CMP":
		mc.compare(mc.A.Value(), mc.loadOperand(defn, operand, addr))
	case "CPX":
		mc.compare(mc.X.Value(), mc.loadOperand(defn, operand, addr))
	case "CPY":
		mc.compare(mc.Y.Value(), mc.loadOperand(defn, operand, addr))

	case "DEC":
		value := mc.loadOperand(defn, operand, addr) - 1
		mc.storeOperand(defn, addr, value)
		mc.setZN(value)

	case "DEX":
		mc.X.Load(mc.X.Value() - 1)
		mc.setZN(mc.X.Value())
	case "DEY":
		mc.Y.Load(mc.Y.Value() - 1)
		mc.setZN(mc.Y.Value())

	case "EOR":
		mc.A.EOR(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.A.Value())

	case "INC":
		value := mc.loadOperand(defn, operand, addr) + 1
		mc.storeOperand(defn, addr, value)
		mc.setZN(value)

	case "INX":
		mc.X.Load(mc.X.Value() + 1)
		mc.setZN(mc.X.Value())
	case "INY":
		mc.Y.Load(mc.Y.Value() + 1)
		mc.setZN(mc.Y.Value())

	case "JMP":
		mc.PC.Load(addr)

	case "JSR":
		// the return address pushed is one short of the next instruction.
		// RTS corrects for it
		ret := mc.PC.Address() - 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret & 0xff))
		mc.PC.Load(addr)

	case "LDA":
		mc.A.Load(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.A.Value())
	case "LDX":
		mc.X.Load(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.X.Value())
	case "LDY":
		mc.Y.Load(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.Y.Value())

	case "LSR":
		value := mc.loadOperand(defn, operand, addr)
		result := value >> 1
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x01 == 0x01
		mc.setZN(result)

	case "NOP":
		// multi-byte NOPs have already done their work: the operand fetch
		// and the page cross penalty

	case "ORA":
		mc.A.ORA(mc.loadOperand(defn, operand, addr))
		mc.setZN(mc.A.Value())

	case "PHA":
		mc.push(mc.A.Value())

	case "PHP":
		// the break flag only exists in the pushed copy
		b := mc.Status.Break
		mc.Status.Break = true
		mc.push(mc.Status.Value())
		mc.Status.Break = b

	case "PLA":
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())

	case "PLP":
		b := mc.Status.Break
		mc.Status.FromValue(mc.pull())
		mc.Status.Break = b

	case "ROL":
		value := mc.loadOperand(defn, operand, addr)
		result := value << 1
		if mc.Status.Carry {
			result |= 0x01
		}
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x80 == 0x80
		mc.Status.Sign = result&0x80 == 0x80
		mc.Status.Zero = mc.A.IsZero()

	case "ROR":
		value := mc.loadOperand(defn, operand, addr)
		result := value >> 1
		if mc.Status.Carry {
			result |= 0x80
		}
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x01 == 0x01
		mc.Status.Sign = result&0x80 == 0x80
		mc.Status.Zero = mc.A.IsZero()

	case "RTI":
		mc.Status.FromValue(mc.pull())
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case "RTS":
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(((uint16(hi) << 8) | uint16(lo)) + 1)

	case "SBC":
		mc.adc(mc.loadOperand(defn, operand, addr) ^ 0xff)

	case "SEC":
		mc.Status.Carry = true
	case "SED":
		mc.Status.DecimalMode = true
	case "SEI":
		mc.Status.InterruptDisable = true

	case "STA":
		mc.mem.Write(addr, mc.A.Value())
	case "STX":
		mc.mem.Write(addr, mc.X.Value())
	case "STY":
		mc.mem.Write(addr, mc.Y.Value())

	case "TAX":
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())
	case "TAY":
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())
	case "TSX":
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())
	case "TXA":
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())
	case "TXS":
		mc.SP.Load(mc.X.Value())
	case "TYA":
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	// the undocumented instructions are compositions of official ones. the
	// cycle count in the definitions table already covers the whole
	// composition so the parts never charge page cross penalties of their
	// own

	case "LAX":
		mc.A.Load(mc.loadOperand(defn, operand, addr))
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case "SAX":
		mc.mem.Write(addr, mc.A.Value()&mc.X.Value())

	case "DCP": // DEC then CMP
		value := mc.loadOperand(defn, operand, addr) - 1
		mc.storeOperand(defn, addr, value)
		mc.setZN(value)
		mc.compare(mc.A.Value(), value)

	case "ISB": // INC then SBC
		value := mc.loadOperand(defn, operand, addr) + 1
		mc.storeOperand(defn, addr, value)
		mc.setZN(value)
		mc.adc(value ^ 0xff)

	case "SLO": // ASL then ORA
		value := mc.loadOperand(defn, operand, addr)
		result := value << 1
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x80 == 0x80
		mc.A.ORA(result)
		mc.setZN(mc.A.Value())

	case "RLA": // ROL then AND
		value := mc.loadOperand(defn, operand, addr)
		result := value << 1
		if mc.Status.Carry {
			result |= 0x01
		}
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x80 == 0x80
		mc.A.AND(result)
		mc.setZN(mc.A.Value())

	case "SRE": // LSR then EOR
		value := mc.loadOperand(defn, operand, addr)
		result := value >> 1
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x01 == 0x01
		mc.A.EOR(result)
		mc.setZN(mc.A.Value())

	case "RRA": // ROR then ADC
		value := mc.loadOperand(defn, operand, addr)
		result := value >> 1
		if mc.Status.Carry {
			result |= 0x80
		}
		mc.storeOperand(defn, addr, result)
		mc.Status.Carry = value&0x01 == 0x01
		mc.adc(result)

	default:
		return fmt.Errorf("cpu: no implementation for instruction (%s)", defn.Mnemonic)
	}

	return nil
}
