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

// Package cartridgeloader is used to load cartridge files from the
// filesystem ready for attachment to the console. Decoding of the iNES
// container and mapper selection happens in the cartridge package; the
// loader deals only with getting the bytes and identifying them.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader is used to specify the cartridge file to use when Attach()ing to
// the NES.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) (Loader, error) {
	ext := strings.ToUpper(filepath.Ext(filename))
	if ext != ".NES" {
		return Loader{}, fmt.Errorf("cartridgeloader: unrecognised file extension (%s)", ext)
	}

	return Loader{Filename: filename}, nil
}

// Load the cartridge data and verify the hash.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	f, err := os.Open(cl.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	// get file info. not using Stat() on the file handle because the
	// windows version (when running under wine) does not handle that
	cfi, err := os.Stat(cl.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	size := cfi.Size()

	cl.Data = make([]byte, size)
	_, err = f.Read(cl.Data)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	// generate hash and check for consistency
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: %s: %s", cl.Filename, "unexpected hash value")
	}
	cl.Hash = hash

	return nil
}

// ShortName returns the filename without path or extension.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}
