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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/test"
)

// mockMem is a flat 64KB of memory with no side effects anywhere
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem mockMem) ReadReadonly(address uint16) (uint8, bool) {
	return mem.internal[address], true
}

func (mem mockMem) ReadSideEffects(address uint16) {
}

func (mem *mockMem) Write(address uint16, value uint8) {
	mem.internal[address] = value
}

// put sequence of bytes in mockMem return address of next byte
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

const testOrigin = uint16(0x1000)

// startup creates a CPU over a mockMem, with the reset vector pointing at
// testOrigin, and runs the reset sequence
func startup(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.putInstructions(0xfffc, uint8(testOrigin&0xff), uint8(testOrigin>>8))
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step ticks the CPU until an instruction executes
func step(t *testing.T, mc *cpu.CPU) *cpu.Result {
	t.Helper()
	for i := 0; i < 10; i++ {
		r, err := mc.Tick()
		if err != nil {
			t.Fatal(err)
		}
		if r != nil {
			return r
		}
	}
	t.Fatal("no instruction boundary after 10 cycles")
	return nil
}

func TestResetState(t *testing.T) {
	mc, mem := startup(t)
	test.Equate(t, mc.PC.Address(), int(testOrigin))
	test.Equate(t, mc.SP.Value(), 0xfd)
	test.Equate(t, mc.Status.InterruptDisable, true)
	test.Equate(t, mc.Status.Value(), 0x24)

	// reset takes seven cycles before the first fetch
	mem.putInstructions(testOrigin, 0xea)
	r := step(t, mc)
	test.Equate(t, r.Cycles, 7)
}

func TestLoadStore(t *testing.T) {
	mc, mem := startup(t)

	// LDA #$FF; STA $0700; LDX #$00; LDY #$80
	origin := mem.putInstructions(testOrigin, 0xa9, 0xff)
	origin = mem.putInstructions(origin, 0x8d, 0x00, 0x07)
	origin = mem.putInstructions(origin, 0xa2, 0x00)
	mem.putInstructions(origin, 0xa0, 0x80)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.Equate(t, mc.Status.Sign, true)
	test.Equate(t, mc.Status.Zero, false)

	step(t, mc)
	test.Equate(t, mem.internal[0x0700], 0xff)

	step(t, mc)
	test.Equate(t, mc.X.IsZero(), true)
	test.Equate(t, mc.Status.Zero, true)

	step(t, mc)
	test.Equate(t, mc.Y.Value(), 0x80)
	test.Equate(t, mc.Status.Sign, true)
}

func TestADCOverflow(t *testing.T) {
	mc, mem := startup(t)

	// LDA #$50; ADC #$50 -> 0xa0, overflow, no carry
	origin := mem.putInstructions(testOrigin, 0xa9, 0x50)
	origin = mem.putInstructions(origin, 0x69, 0x50)

	// LDA #$D0; ADC #$90 -> 0x61 (carry still set from before? no: 0xd0+0x90
	// = 0x160 so result 0x60 with carry out and overflow)
	origin = mem.putInstructions(origin, 0x18) // CLC
	origin = mem.putInstructions(origin, 0xa9, 0xd0)
	mem.putInstructions(origin, 0x69, 0x90)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xa0)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x60)
	test.Equate(t, mc.Status.Overflow, true)
	test.Equate(t, mc.Status.Carry, true)
}

func TestSBC(t *testing.T) {
	mc, mem := startup(t)

	// LDA #$00; SEC; SBC #$01 -> 0xff, borrow (carry clear)
	origin := mem.putInstructions(testOrigin, 0xa9, 0x00)
	origin = mem.putInstructions(origin, 0x38)
	mem.putInstructions(origin, 0xe9, 0x01)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.Equate(t, mc.Status.Carry, false)
	test.Equate(t, mc.Status.Sign, true)
}

// cycle length of an instruction is the difference between the cycle counts
// of consecutive results
func cycleLength(t *testing.T, mc *cpu.CPU) uint64 {
	t.Helper()
	a := step(t, mc)
	b := step(t, mc)
	return b.Cycles - a.Cycles
}

func TestBranchCycles(t *testing.T) {
	// not taken: 2 cycles
	mc, mem := startup(t)
	origin := mem.putInstructions(testOrigin, 0xa9, 0x00) // LDA #$00, sets Z
	origin = mem.putInstructions(origin, 0xd0, 0x10)      // BNE +16, not taken
	mem.putInstructions(origin, 0xea)                     // NOP
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 2)

	// taken, same page: 3 cycles
	mc, mem = startup(t)
	origin = mem.putInstructions(testOrigin, 0xa9, 0x01) // LDA #$01, clears Z
	origin = mem.putInstructions(origin, 0xd0, 0x10)     // BNE +16, taken
	mem.putInstructions(origin+0x10, 0xea)
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 3)

	// taken, page crossed: 4 cycles
	mc, mem = startup(t)
	origin = mem.putInstructions(testOrigin, 0xa9, 0x01)
	mem.putInstructions(0x10f0, 0xd0, 0x70) // BNE +0x70 from 0x10f2 -> 0x1162
	mem.putInstructions(0x1162, 0xea)
	origin = mem.putInstructions(origin, 0x4c, 0xf0, 0x10) // JMP $10F0
	step(t, mc)
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 4)
}

func TestPageCrossCycles(t *testing.T) {
	// LDA $02F0,X with X=0x01: no cross, 4 cycles
	mc, mem := startup(t)
	origin := mem.putInstructions(testOrigin, 0xa2, 0x01) // LDX #$01
	origin = mem.putInstructions(origin, 0xbd, 0xf0, 0x02)
	mem.putInstructions(origin, 0xea)
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 4)

	// LDA $02F0,X with X=0x20: cross, 5 cycles
	mc, mem = startup(t)
	origin = mem.putInstructions(testOrigin, 0xa2, 0x20) // LDX #$20
	origin = mem.putInstructions(origin, 0xbd, 0xf0, 0x02)
	mem.putInstructions(origin, 0xea)
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 5)

	// STA $02F0,X never charges the cross penalty: always 5 cycles
	mc, mem = startup(t)
	origin = mem.putInstructions(testOrigin, 0xa2, 0x20)
	origin = mem.putInstructions(origin, 0x9d, 0xf0, 0x02)
	mem.putInstructions(origin, 0xea)
	step(t, mc)
	test.Equate(t, cycleLength(t, mc), 5)
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := startup(t)

	// LDX #$05; LDA $FF,X reads from 0x04 not 0x104
	mem.putInstructions(0x0004, 0x99)
	mem.putInstructions(0x0104, 0x55)
	origin := mem.putInstructions(testOrigin, 0xa2, 0x05)
	mem.putInstructions(origin, 0xb5, 0xff)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x99)
}

func TestJMPIndirectBug(t *testing.T) {
	mc, mem := startup(t)

	// pointer at 0x02FF: high byte comes from 0x0200 not 0x0300
	mem.putInstructions(0x02ff, 0x80)
	mem.putInstructions(0x0200, 0x03)
	mem.putInstructions(0x0300, 0x05)
	mem.putInstructions(testOrigin, 0x6c, 0xff, 0x02)

	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x0380)
}

func TestIndirectIndexedWrap(t *testing.T) {
	mc, mem := startup(t)

	// pointer at 0xFF wraps: high byte from 0x00
	mem.putInstructions(0x00ff, 0x46)
	mem.putInstructions(0x0000, 0x07)
	mem.putInstructions(0x0747, 0xbb)
	origin := mem.putInstructions(testOrigin, 0xa0, 0x01) // LDY #$01
	mem.putInstructions(origin, 0xb1, 0xff)               // LDA ($FF),Y

	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xbb)
}

func TestStack(t *testing.T) {
	mc, mem := startup(t)

	// JSR $2000; (at $2000) RTS; then NOP
	origin := mem.putInstructions(testOrigin, 0x20, 0x00, 0x20)
	mem.putInstructions(origin, 0xea)
	mem.putInstructions(0x2000, 0x60)

	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x2000)
	test.Equate(t, mc.SP.Value(), 0xfb)

	// the pushed return address is one byte short of the next instruction
	test.Equate(t, mem.internal[0x01fd], 0x10)
	test.Equate(t, mem.internal[0x01fc], 0x02)

	step(t, mc)
	test.Equate(t, mc.PC.Address(), int(testOrigin)+3)
	test.Equate(t, mc.SP.Value(), 0xfd)
}

func TestPHPBreakFlag(t *testing.T) {
	mc, mem := startup(t)

	// PHP pushes the status with the break bit set but doesn't change the
	// register itself
	mem.putInstructions(testOrigin, 0x08)

	step(t, mc)
	test.Equate(t, mem.internal[0x01fd], 0x34)
	test.Equate(t, mc.Status.Break, false)
}

func TestNMI(t *testing.T) {
	mc, mem := startup(t)
	mem.putInstructions(0xfffa, 0x00, 0x30) // NMI vector -> 0x3000
	mem.putInstructions(testOrigin, 0xea)
	mem.putInstructions(0x3000, 0xea)

	step(t, mc)
	mc.RaiseNMI()

	// the next boundary services the interrupt, the one after that fetches
	// from the vector
	r := step(t, mc)
	test.Equate(t, r.Address, 0x3000)
	test.Equate(t, mc.Status.InterruptDisable, true)
	test.Equate(t, mc.SP.Value(), 0xfa)

	// pushed status has the break bit clear and bit 5 set
	test.Equate(t, mem.internal[0x01fb]&0x30, 0x20)
}

func TestIRQMasked(t *testing.T) {
	mc, mem := startup(t)
	mem.putInstructions(0xfffe, 0x00, 0x40) // IRQ vector -> 0x4000
	origin := mem.putInstructions(testOrigin, 0xea)
	origin = mem.putInstructions(origin, 0x58) // CLI
	mem.putInstructions(origin, 0xea)
	mem.putInstructions(0x4000, 0xea)

	// interrupt disable is set after reset so the IRQ is held off
	mc.SetIRQLine(true)
	r := step(t, mc)
	test.Equate(t, r.Address, int(testOrigin))

	// CLI lets it through at the following boundary
	step(t, mc)
	r = step(t, mc)
	test.Equate(t, r.Address, 0x4000)
}

func TestIllegalInstructions(t *testing.T) {
	mc, mem := startup(t)

	// LAX $0200 loads both A and X
	mem.putInstructions(0x0200, 0xc3)
	origin := mem.putInstructions(testOrigin, 0xaf, 0x00, 0x02)

	// DCP $0200: decrement then compare
	origin = mem.putInstructions(origin, 0xa9, 0xc2) // LDA #$C2
	mem.putInstructions(origin, 0xcf, 0x00, 0x02)

	r := step(t, mc)
	test.Equate(t, r.Defn.Undocumented, true)
	test.Equate(t, mc.A.Value(), 0xc3)
	test.Equate(t, mc.X.Value(), 0xc3)
	test.Equate(t, mc.Status.Sign, true)

	step(t, mc)
	step(t, mc)
	test.Equate(t, mem.internal[0x0200], 0xc2)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)
}

func TestUndefinedOpcode(t *testing.T) {
	mc, mem := startup(t)
	mem.putInstructions(testOrigin, 0x02)

	for i := 0; i < 10; i++ {
		r, err := mc.Tick()
		if r != nil {
			t.Fatal("result from undefined opcode")
		}
		if err != nil {
			return
		}
	}
	t.Fatal("no error from undefined opcode")
}

func TestTraceLine(t *testing.T) {
	mem := newMockMem()

	// the first line of the nestest reference log
	mem.putInstructions(0xfffc, 0x00, 0xc0)
	mem.putInstructions(0xc000, 0x4c, 0xf5, 0xc5)

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.Trace = true

	r := step(t, mc)
	test.Equate(t, r.TraceLine(0, 21),
		"C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7")
}
