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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/test"
)

// a console running an infinite loop is enough to produce frames and sound
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

// identical consoles must produce identical digests. this is the property
// the regression workflow leans on.
func TestDeterminism(t *testing.T) {
	hashes := make([]string, 2)
	audioHashes := make([]string, 2)

	for i := range hashes {
		n := testConsole(t)

		vid := digest.NewVideo()
		aud := digest.NewAudio()
		n.AttachRenderer(vid)
		n.PlugMixer(aud)

		for f := 0; f < 5; f++ {
			if err := n.Frame(); err != nil {
				t.Fatal(err)
			}
		}

		hashes[i] = vid.Hash()
		audioHashes[i] = aud.Hash()
	}

	test.Equate(t, hashes[0], hashes[1])
	test.Equate(t, audioHashes[0], audioHashes[1])
}

func TestResetDigest(t *testing.T) {
	n := testConsole(t)

	vid := digest.NewVideo()
	n.AttachRenderer(vid)

	if err := n.Frame(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, vid.Hash() == "0000000000000000000000000000000000000000", false)

	vid.ResetDigest()
	test.Equate(t, vid.Hash(), "0000000000000000000000000000000000000000")
}
