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

package ppu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/test"
)

func makeTestPPU(t *testing.T, mirroring cartridge.Mirroring) *ppu.PPU {
	t.Helper()

	cart := &cartridge.Cartridge{
		CHR:       make([]uint8, 0x2000),
		Mirroring: mirroring,
	}

	p, err := ppu.NewPPU(cart)
	test.ExpectedSuccess(t, err)
	return p
}

// setAddress writes the two halves of the VRAM pointer, high byte first.
func setAddress(t *testing.T, p *ppu.PPU, address uint16) {
	t.Helper()
	test.ExpectedSuccess(t, p.WriteRegister(0x2006, uint8(address>>8)))
	test.ExpectedSuccess(t, p.WriteRegister(0x2006, uint8(address)))
}

func TestVRAMWrite(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	setAddress(t, p, 0x2305)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))

	test.Equate(t, p.PeekVRAM(0x2305), 0x66)
}

func TestVRAMBufferedRead(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	setAddress(t, p, 0x2305)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))

	setAddress(t, p, 0x2305)

	// the first read through the data register returns the stale buffer
	_, err := p.ReadRegister(0x2007)
	test.ExpectedSuccess(t, err)

	v, err := p.ReadRegister(0x2007)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x66)
}

func TestVRAMIncrement32(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	// step down a column rather than across a row
	test.ExpectedSuccess(t, p.WriteRegister(0x2000, 0x04))

	setAddress(t, p, 0x21ff)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x77))
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x88))

	test.Equate(t, p.PeekVRAM(0x21ff), 0x77)
	test.Equate(t, p.PeekVRAM(0x221f), 0x88)
}

func TestPaletteReadIsImmediate(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	setAddress(t, p, 0x3f00)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x21))

	setAddress(t, p, 0x3f00)
	v, err := p.ReadRegister(0x2007)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x21)
}

func TestHorizontalMirroring(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	// nametables 0 and 1 share physical memory; 2 and 3 likewise
	setAddress(t, p, 0x2005)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))

	setAddress(t, p, 0x2c05)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x77))

	test.Equate(t, p.PeekVRAM(0x2405), 0x66)
	test.Equate(t, p.PeekVRAM(0x2805), 0x77)
}

func TestVerticalMirroring(t *testing.T) {
	p := makeTestPPU(t, cartridge.Vertical)

	// nametables 0 and 2 share physical memory; 1 and 3 likewise
	setAddress(t, p, 0x2005)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))

	setAddress(t, p, 0x2405)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x77))

	test.Equate(t, p.PeekVRAM(0x2805), 0x66)
	test.Equate(t, p.PeekVRAM(0x2c05), 0x77)
}

func TestNametableTopMirror(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	// 0x3000 to 0x3eff mirrors the nametable range
	setAddress(t, p, 0x3305)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))

	test.Equate(t, p.PeekVRAM(0x2305), 0x66)
}

func TestFourScreenFatal(t *testing.T) {
	cart := &cartridge.Cartridge{
		CHR:       make([]uint8, 0x2000),
		Mirroring: cartridge.FourScreen,
	}

	_, err := ppu.NewPPU(cart)
	test.ExpectedFailure(t, err)
}

func TestStatusReadSideEffects(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	// half a write leaves the address latch in the low-byte-next state.
	// reading the status register resets it
	test.ExpectedSuccess(t, p.WriteRegister(0x2006, 0x21))
	_, err := p.ReadRegister(0x2002)
	test.ExpectedSuccess(t, err)

	setAddress(t, p, 0x2305)
	test.ExpectedSuccess(t, p.WriteRegister(0x2007, 0x66))
	test.Equate(t, p.PeekVRAM(0x2305), 0x66)
}

func TestStatusReadClearsVBlank(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	p.Status.VBlank = true
	v, err := p.ReadRegister(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x80)

	v, err = p.ReadRegister(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x00)
}

func TestOAM(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	test.ExpectedSuccess(t, p.WriteRegister(0x2003, 0x10))
	test.ExpectedSuccess(t, p.WriteRegister(0x2004, 0x66))
	test.ExpectedSuccess(t, p.WriteRegister(0x2004, 0x77))

	// reads do not advance the cursor
	test.ExpectedSuccess(t, p.WriteRegister(0x2003, 0x10))
	v, err := p.ReadRegister(0x2004)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x66)
	v, err = p.ReadRegister(0x2004)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x66)
}

func TestOAMDMA(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	data := make([]uint8, 256)
	for i := range data {
		data[i] = uint8(i)
	}

	// the copy starts at the current cursor and wraps
	test.ExpectedSuccess(t, p.WriteRegister(0x2003, 0x10))
	p.WriteDMA(data)

	test.Equate(t, p.PeekOAM(0x10), 0x00)
	test.Equate(t, p.PeekOAM(0xff), 0xef)
	test.Equate(t, p.PeekOAM(0x0f), 0xff)
}

func TestRegisterAccessRules(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	_, err := p.ReadRegister(0x2000)
	test.ExpectedFailure(t, err)

	_, err = p.ReadRegister(0x2005)
	test.ExpectedFailure(t, err)

	test.ExpectedFailure(t, p.WriteRegister(0x2002, 0x00))
}

func TestVBlankTiming(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)
	test.ExpectedSuccess(t, p.WriteRegister(0x2000, 0x80)) // NMI enable

	// just short of the vblank scanline
	entered := p.Tick(341 * 241)
	test.ExpectedSuccess(t, entered)
	test.ExpectedSuccess(t, p.Status.VBlank)
	test.ExpectedSuccess(t, p.NMI())

	// the edge is consumed exactly once
	test.ExpectedFailure(t, p.NMI())

	// run to the end of the frame
	entered = p.Tick(341 * 21)
	test.ExpectedFailure(t, entered)
	test.ExpectedFailure(t, p.Status.VBlank)
	test.Equate(t, p.Scanline, 0)
	test.Equate(t, int(p.Frame), 1)
}

func TestNMIDisabled(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	entered := p.Tick(341 * 241)
	test.ExpectedSuccess(t, entered)
	test.ExpectedSuccess(t, p.Status.VBlank)

	// vblank happened but no interrupt was raised
	test.ExpectedFailure(t, p.NMI())
}

func TestNMIOnLateEnable(t *testing.T) {
	p := makeTestPPU(t, cartridge.Horizontal)

	p.Tick(341 * 241)
	test.ExpectedFailure(t, p.NMI())

	// enabling the NMI during vblank raises the interrupt immediately
	test.ExpectedSuccess(t, p.WriteRegister(0x2000, 0x80))
	test.ExpectedSuccess(t, p.NMI())
}
