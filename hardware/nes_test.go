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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/test"
)

// an NROM console whose PRG starts with the supplied program at 0x8000
func testConsole(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()

	data := make([]byte, 16+16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 1 // one PRG bank
	data[5] = 0 // no CHR banks means CHR RAM

	copy(data[16:], program)

	// reset vector
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80

	n, err := hardware.NewNES(cartridgeloader.Loader{Filename: "test.nes", Data: data})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// spin is an infinite loop the test programs end on
var spin = []uint8{0x4c, 0x00, 0x80} // JMP $8000

func TestClockRatios(t *testing.T) {
	n := testConsole(t, spin...)

	// the console powers on one dot short of the frame boundary so the
	// first frame is trivially short
	if err := n.Frame(); err != nil {
		t.Fatal(err)
	}

	cyclesBefore := n.CPU.Cycles

	if err := n.Frame(); err != nil {
		t.Fatal(err)
	}

	// a full frame is 341*262 master cycles; the CPU runs on every third
	elapsed := int(n.CPU.Cycles - cyclesBefore)
	if elapsed < 341*262/3-1 || elapsed > 341*262/3+1 {
		t.Fatalf("CPU ran %d cycles over one frame", elapsed)
	}

	test.Equate(t, int(n.PPU.Frame), 1)
}

func TestStep(t *testing.T) {
	// LDA #$42; STA $0200; JMP $8005
	n := testConsole(t, 0xa9, 0x42, 0x8d, 0x00, 0x02, 0x4c, 0x05, 0x80)

	r, err := n.Step()
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, r.Defn.Mnemonic, "LDA")

	r, err = n.Step()
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, r.Defn.Mnemonic, "STA")

	v, _ := n.Mem.ReadReadonly(0x0200)
	test.Equate(t, v, 0x42)
}

func TestOAMDMA(t *testing.T) {
	// LDA #$02; STA $4014; JMP $8005
	n := testConsole(t, 0xa9, 0x02, 0x8d, 0x14, 0x40, 0x4c, 0x05, 0x80)

	for i := 0; i < 256; i++ {
		n.Mem.Write(uint16(0x0200+i), uint8(255-i))
	}

	// run until the transfer has started and finished
	started := false
	for i := 0; i < 10000; i++ {
		if _, err := n.Tick(); err != nil {
			t.Fatal(err)
		}
		if n.DMA.Active() {
			started = true
		} else if started {
			break
		}
	}
	test.Equate(t, started, true)
	test.Equate(t, n.DMA.Active(), false)

	for i := 0; i < 256; i++ {
		if n.PPU.OAM[i] != uint8(255-i) {
			t.Fatalf("OAM byte %d is %#02x", i, n.PPU.OAM[i])
		}
	}
}

// test ROMs in the blargg style report through cartridge RAM: a status
// byte at 0x6000 (0x80 while running, the result code once done) and a
// zero-terminated message at 0x6004.
func blarggStatus(n *hardware.NES) uint8 {
	v, _ := n.Mem.ReadReadonly(0x6000)
	return v
}

func blarggText(n *hardware.NES) string {
	var s []byte
	for addr := uint16(0x6004); ; addr++ {
		v, _ := n.Mem.ReadReadonly(addr)
		if v == 0 {
			break
		}
		s = append(s, v)
	}
	return string(s)
}

func TestStatusPolling(t *testing.T) {
	// writes 0x80 to 0x6000, the text "OK" to 0x6004, then a zero result
	// code to 0x6000
	n := testConsole(t,
		0xa9, 0x80, 0x8d, 0x00, 0x60,
		0xa9, 0x4f, 0x8d, 0x04, 0x60,
		0xa9, 0x4b, 0x8d, 0x05, 0x60,
		0xa9, 0x00, 0x8d, 0x06, 0x60,
		0x8d, 0x00, 0x60,
		0x4c, 0x17, 0x80, // spin at 0x8017
	)

	running := false
	for i := 0; i < 20; i++ {
		if _, err := n.Step(); err != nil {
			t.Fatal(err)
		}
		if blarggStatus(n) == 0x80 {
			running = true
		} else if running {
			break
		}
	}

	test.Equate(t, running, true)
	test.Equate(t, blarggStatus(n), 0x00)
	test.Equate(t, blarggText(n), "OK")
}

func TestControllerPort(t *testing.T) {
	// latch the joypads then read 0x4016 eight times into RAM at 0x00.
	//   LDA #$01; STA $4016; LDA #$00; STA $4016
	//   LDX #$00
	// loop:
	//   LDA $4016; STA $00,X; INX; CPX #$08; BNE loop
	//   JMP done (spin)
	n := testConsole(t,
		0xa9, 0x01, 0x8d, 0x16, 0x40,
		0xa9, 0x00, 0x8d, 0x16, 0x40,
		0xa2, 0x00,
		0xad, 0x16, 0x40, // loop
		0x95, 0x00,
		0xe8,
		0xe0, 0x08,
		0xd0, 0xf6,
		0x4c, 0x16, 0x80, // spin at 0x8016
	)

	n.Joypads[0].Set(controllers.Right, true) // bit 0, read last

	for i := 0; i < 50; i++ {
		if _, err := n.Step(); err != nil {
			t.Fatal(err)
		}
	}

	// the eighth read returns the right button
	v, _ := n.Mem.ReadReadonly(0x0007)
	test.Equate(t, v, 0x01)
	v, _ = n.Mem.ReadReadonly(0x0000)
	test.Equate(t, v, 0x00)
}
