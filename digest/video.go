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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/television"
)

// Video is an implementation of the television.PixelRenderer interface. It
// hashes every frame it is sent and keeps nothing else. Hashes are chained
// so the final value fingerprints the whole sequence of frames, not just
// the last one.
type Video struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}
	dig.buffer = make([]byte, sha1.Size+television.HorizPixels*television.VertPixels*4)
	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// NewFrame implements the television.PixelRenderer interface.
func (dig *Video) NewFrame(frameNum int, pixels []uint8) error {
	// chain fingerprints by prefixing the pixel data with the previous
	// digest value
	copy(dig.buffer, dig.digest[:])
	n := copy(dig.buffer[sha1.Size:], pixels)
	if n != len(dig.buffer)-sha1.Size {
		return fmt.Errorf("digest: unexpected frame size (%d bytes)", len(pixels))
	}
	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum = frameNum
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
