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

package emulation_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/test"
)

func testConsole(t *testing.T) *hardware.NES {
	t.Helper()

	data := make([]byte, 16+16384)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 1
	data[5] = 0

	copy(data[16:], []byte{0x4c, 0x00, 0x80}) // JMP $8000
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80

	n, err := hardware.NewNES(cartridgeloader.Loader{Filename: "test.nes", Data: data})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFrameLimit(t *testing.T) {
	n := testConsole(t)

	pl := emulation.NewPlaymode(n, nil, 3)
	if err := pl.Run(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, pl.State() == emulation.Ending, true)

	// the power-on frame is trivially short so three Frame calls advance
	// the frame counter twice
	test.Equate(t, int(n.PPU.Frame), 2)
}

func TestQuit(t *testing.T) {
	n := testConsole(t)

	events := make(chan emulation.Event, 1)
	events <- emulation.EventQuit

	pl := emulation.NewPlaymode(n, events, 0)
	if err := pl.Run(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, pl.State() == emulation.Ending, true)
}

func TestPauseAndStep(t *testing.T) {
	n := testConsole(t)

	events := make(chan emulation.Event, 4)
	events <- emulation.EventPause
	events <- emulation.EventStepFrame
	events <- emulation.EventQuit

	pl := emulation.NewPlaymode(n, events, 0)
	if err := pl.Run(); err != nil {
		t.Fatal(err)
	}

	// at least the stepped frame ran
	test.Equate(t, n.PPU.Frame >= 1 || n.CPU.Cycles > 0, true)
}
