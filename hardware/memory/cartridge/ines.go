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

package cartridge

import (
	"bytes"
	"fmt"
)

// the size of the iNES header and of the optional trainer block that can
// preceed the PRG data
const (
	inesHeaderSize  = 16
	inesTrainerSize = 512
)

const (
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024
)

// inesFile is the result of decoding an iNES container. the prg and chr
// fields are copies of the data in the file, not slices into it.
type inesFile struct {
	mapperNum int

	prg []uint8
	chr []uint8

	// a chr size of zero in the header indicates that the cartridge has 8k
	// of CHR RAM rather than ROM. the chr field will have been sized
	// appropriately for the mapper
	chrIsRAM bool

	battery    bool
	mirror     Mirroring
	fourScreen bool
}

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

func decodeINES(data []uint8) (inesFile, error) {
	var ines inesFile

	if len(data) < inesHeaderSize || !bytes.Equal(data[:4], inesMagic) {
		return ines, fmt.Errorf("ines: not an iNES file")
	}

	prgSize := int(data[4]) * prgBankSize
	chrSize := int(data[5]) * chrBankSize

	flags6 := data[6]
	flags7 := data[7]

	ines.mapperNum = int(flags6>>4) | int(flags7&0xf0)
	ines.battery = flags6&0x02 == 0x02
	ines.fourScreen = flags6&0x08 == 0x08

	if flags6&0x01 == 0x01 {
		ines.mirror = MirrorVertical
	} else {
		ines.mirror = MirrorHorizontal
	}
	if ines.fourScreen {
		ines.mirror = MirrorFourScreen
	}

	offset := inesHeaderSize
	if flags6&0x04 == 0x04 {
		// trainer data is of no use to us
		offset += inesTrainerSize
	}

	if len(data) < offset+prgSize+chrSize {
		return ines, fmt.Errorf("ines: file is smaller than the header claims")
	}

	ines.prg = make([]uint8, prgSize)
	copy(ines.prg, data[offset:offset+prgSize])

	if chrSize == 0 {
		ines.chrIsRAM = true
	} else {
		ines.chr = make([]uint8, chrSize)
		copy(ines.chr, data[offset+prgSize:offset+prgSize+chrSize])
	}

	return ines, nil
}

// mirrorFill copies the source data into the destination repeatedly until
// the destination is full. used by mappers with fixed size address windows
// that are larger than the data in the file (a 16k NROM appearing twice in
// the 32k window, most obviously).
func mirrorFill(dst []uint8, src []uint8) {
	if len(src) == 0 {
		return
	}
	for i := 0; i < len(dst); i += len(src) {
		copy(dst[i:], src)
	}
}
