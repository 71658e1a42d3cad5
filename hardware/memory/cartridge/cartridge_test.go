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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/test"
)

// makeINES builds a minimal iNES image for testing. flags6 and flags7 are
// the raw header bytes of the same name.
func makeINES(prgBanks int, chrBanks int, flags6 uint8, flags7 uint8) []uint8 {
	data := make([]uint8, 16+prgBanks*0x4000+chrBanks*0x2000)
	copy(data, []uint8{0x4e, 0x45, 0x53, 0x1a})
	data[4] = uint8(prgBanks)
	data[5] = uint8(chrBanks)
	data[6] = flags6
	data[7] = flags7
	return data
}

func TestNewCartridge(t *testing.T) {
	data := makeINES(2, 1, 0x01, 0x00)
	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cart.PRG), 0x8000)
	test.Equate(t, len(cart.CHR), 0x2000)
	test.Equate(t, cart.Mapper, 0)
	test.Equate(t, int(cart.Mirroring), int(cartridge.Vertical))
}

func TestBadMagic(t *testing.T) {
	data := makeINES(1, 1, 0x00, 0x00)
	data[0] = 0x00

	_, err := cartridge.NewCartridge(data)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAnINESFile))
}

func TestNES2Rejected(t *testing.T) {
	data := makeINES(1, 1, 0x00, 0x08)

	_, err := cartridge.NewCartridge(data)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NES2NotSupported))
}

func TestMapperNumber(t *testing.T) {
	// mapper number is split over the top nibbles of flags 6 and 7
	data := makeINES(1, 1, 0x30, 0x20)
	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.Mapper, 0x23)
}

func TestMirroring(t *testing.T) {
	data := makeINES(1, 1, 0x00, 0x00)
	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(cart.Mirroring), int(cartridge.Horizontal))

	data = makeINES(1, 1, 0x08, 0x00)
	cart, err = cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(cart.Mirroring), int(cartridge.FourScreen))
}

func TestTrainerSkipped(t *testing.T) {
	data := makeINES(1, 1, 0x04, 0x00)
	data = append(data, make([]uint8, 512)...)

	// place a marker at the true start of program memory
	data[16+512] = 0xea

	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.PRG[0], 0xea)
}

func TestMirroredPRG(t *testing.T) {
	data := makeINES(1, 1, 0x00, 0x00)
	data[16] = 0x42 // first byte of PRG

	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)

	// a 16KB cartridge appears at both 0x8000 and 0xc000
	test.Equate(t, cart.Read(0x8000), 0x42)
	test.Equate(t, cart.Read(0xc000), 0x42)
}

func TestCHRRAM(t *testing.T) {
	data := makeINES(1, 0, 0x00, 0x00)
	cart, err := cartridge.NewCartridge(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cart.CHR), 0x2000)

	cart.WriteCHR(0x0100, 0x55)
	test.Equate(t, cart.ReadCHR(0x0100), 0x55)
}

func TestNoPRG(t *testing.T) {
	data := makeINES(0, 1, 0x00, 0x00)

	_, err := cartridge.NewCartridge(data)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NoPRGData))
}

func TestTruncated(t *testing.T) {
	data := makeINES(2, 1, 0x00, 0x00)
	data = data[:len(data)-1]

	_, err := cartridge.NewCartridge(data)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.TruncatedFile))
}
