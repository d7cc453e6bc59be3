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

package controllers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/test"
)

func TestShiftRegister(t *testing.T) {
	j := controllers.NewJoypad()

	j.Set(controllers.A, true)
	j.Set(controllers.Right, true)
	test.Equate(t, j.IsPressed(controllers.A), true)

	// nothing to read until the state is latched
	test.Equate(t, memory.Read(j, 0x4016), 0x00)

	j.Latch()

	// A is bit 7 of the latched register and is read first; right is bit
	// 0 and is read last
	expected := []uint8{1, 0, 0, 0, 0, 0, 0, 1}
	for i, e := range expected {
		v := memory.Read(j, 0x4016)
		if v != e {
			t.Fatalf("read %d is %d, expected %d", i, v, e)
		}
	}

	// the register is exhausted
	test.Equate(t, memory.Read(j, 0x4016), 0x00)
}

func TestLatchTiming(t *testing.T) {
	j := controllers.NewJoypad()

	j.Latch()
	j.Set(controllers.Start, true)

	// the press arrived after the latch
	for i := 0; i < 8; i++ {
		test.Equate(t, memory.Read(j, 0x4016), 0x00)
	}

	j.Latch()

	// start is bit 4; three reads precede it
	memory.Read(j, 0x4016)
	memory.Read(j, 0x4016)
	memory.Read(j, 0x4016)
	test.Equate(t, memory.Read(j, 0x4016), 0x01)
}
