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

// Package cartridge decodes the iNES file format and presents the
// program and character memory of the cartridge to the rest of the
// console. Only the NROM board (mapper 0) is emulated; files that name a
// different mapper are loaded as though they were NROM, which works for
// a surprising number of them and fails visibly for the rest.
package cartridge

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
)

// Error messages returned by the Attach function.
const (
	NotAnINESFile    = "cartridge: not an iNES file"
	NES2NotSupported = "cartridge: NES 2.0 format not supported"
	TruncatedFile    = "cartridge: file shorter than the header claims"
	NoPRGData        = "cartridge: file contains no program data"
)

// Mirroring describes the nametable mirroring arrangement of the
// cartridge. The PPU needs to know this to fold the four logical
// nametables onto its 2KB of VRAM.
type Mirroring int

// List of mirroring arrangements.
const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four screen"
	}
	return "undefined"
}

// sizes implied by the iNES header fields
const (
	headerLen  = 16
	trainerLen = 512
	prgBankLen = 0x4000
	chrBankLen = 0x2000
)

// Cartridge is the program and character memory supplied by an iNES file.
type Cartridge struct {
	PRG []uint8
	CHR []uint8

	Mapper    int
	Mirroring Mirroring

	// character memory is RAM when the file supplies no CHR data
	chrRAM bool
}

// Fingerprint for the iNES format. The fourth byte is an EOF character,
// a leftover from the days when cartridge dumps were shown off by typing
// them on MS-DOS.
var inesMagic = [4]uint8{0x4e, 0x45, 0x53, 0x1a}

// NewCartridge decodes the data from an iNES file.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data) < headerLen {
		return nil, curated.Errorf(NotAnINESFile)
	}

	for i, m := range inesMagic {
		if data[i] != m {
			return nil, curated.Errorf(NotAnINESFile)
		}
	}

	if (data[7]>>2)&0x03 != 0 {
		return nil, curated.Errorf(NES2NotSupported)
	}

	cart := &Cartridge{}
	cart.Mapper = int(data[7]&0xf0) | int(data[6]>>4)

	switch {
	case data[6]&0x08 == 0x08:
		cart.Mirroring = FourScreen
	case data[6]&0x01 == 0x01:
		cart.Mirroring = Vertical
	default:
		cart.Mirroring = Horizontal
	}

	prgLen := int(data[4]) * prgBankLen
	chrLen := int(data[5]) * chrBankLen

	// a cartridge with no program memory cannot even supply a reset
	// vector
	if prgLen == 0 {
		return nil, curated.Errorf(NoPRGData)
	}

	prgStart := headerLen
	if data[6]&0x04 == 0x04 {
		// trainer data is of no use to us
		prgStart += trainerLen
	}
	chrStart := prgStart + prgLen

	if len(data) < chrStart+chrLen {
		return nil, curated.Errorf(TruncatedFile)
	}

	cart.PRG = data[prgStart : prgStart+prgLen]
	cart.CHR = data[chrStart : chrStart+chrLen]

	if chrLen == 0 {
		cart.CHR = make([]uint8, chrBankLen)
		cart.chrRAM = true
	}

	if cart.Mapper != 0 {
		logger.Logf("cartridge", "mapper %d requested. attaching as NROM", cart.Mapper)
	}

	logger.Logf("cartridge", "PRG %dk, CHR %dk, %s mirroring",
		prgLen/1024, len(cart.CHR)/1024, cart.Mirroring)

	return cart, nil
}

// Read a byte from program memory. The address is the full CPU bus
// address. A 16KB cartridge appears twice in the 32KB window.
func (cart *Cartridge) Read(address uint16) uint8 {
	address -= 0x8000
	if len(cart.PRG) == prgBankLen {
		address &= 0x3fff
	}
	return cart.PRG[address]
}

// ReadCHR reads a byte from character memory. The address is a PPU
// address in the pattern table range (0x0000 to 0x1fff).
func (cart *Cartridge) ReadCHR(address uint16) uint8 {
	return cart.CHR[address]
}

// WriteCHR writes to character memory. Writes to cartridges with CHR ROM
// rather than CHR RAM are dropped and logged.
func (cart *Cartridge) WriteCHR(address uint16, data uint8) {
	if !cart.chrRAM {
		logger.Logf("cartridge", "dropped write to CHR ROM (%#04x)", address)
		return
	}
	cart.CHR[address] = data
}
