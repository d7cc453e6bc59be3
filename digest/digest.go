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

// Package digest contains implementations of the television output
// interfaces, PixelRenderer and AudioMixer, that reduce their stream to a
// cryptographic hash. If a hash differs from a previously recorded value
// then the output has changed. Regression tests are built on this.
package digest

// Digest implementations produce a hash of everything they have been sent
// since creation or the last reset.
//
// SHA-1 is fine for this. It is not a cryptographic task.
type Digest interface {
	Hash() string
	ResetDigest()
}
