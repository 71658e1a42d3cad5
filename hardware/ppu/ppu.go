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

// Package ppu emulates the register and video memory model of the NES
// picture processing unit. Pixel-level rendering is not emulated; the
// PPU tracks scanline position only as far as is needed to time the
// vertical blank and the NMI it raises. Renderers work from the PPU
// state exposed by the Peek functions once per frame.
package ppu

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

// Error messages raised by PPU register access.
const (
	ReadFromWriteOnly      = "ppu: read from write-only register %#04x"
	WriteToReadOnly        = "ppu: write to read-only register %#04x"
	FourScreenNotSupported = "ppu: four screen mirroring not supported"
)

// Timing constants. The PPU runs at three times the CPU clock; a frame
// is 262 scanlines of 341 PPU cycles. The vertical blank period starts
// at scanline 241.
const (
	cyclesPerScanline = 341
	vblankScanline    = 241
	scanlinesPerFrame = 262
)

// PPU is the register and memory model of the picture processing unit.
type PPU struct {
	cart *cartridge.Cartridge

	// 2KB of VRAM holding two physical nametables. the four logical
	// nametables are folded onto it according to the cartridge mirroring
	vram    [0x0800]uint8
	palette [0x20]uint8
	oam     [0x100]uint8

	Control ControlRegister
	Mask    MaskRegister
	Status  StatusRegister
	Scroll  ScrollRegister
	Address AddressRegister

	oamAddr uint8

	// reads through the data register lag one access behind, except for
	// the palette which is connected directly
	readBuffer uint8

	// position of the beam. cycle counts PPU cycles within the scanline
	cycle    int
	Scanline int
	Frame    uint64

	// interrupt edge raised at vblank entry, consumed by NMI()
	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU. The
// cartridge supplies character memory and the mirroring arrangement.
func NewPPU(cart *cartridge.Cartridge) (*PPU, error) {
	if cart.Mirroring == cartridge.FourScreen {
		return nil, curated.Errorf(FourScreenNotSupported)
	}
	return &PPU{cart: cart}, nil
}

func (p *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d ctrl=%02x mask=%02x status=%02x",
		p.Frame, p.Scanline, p.Control.Value(), p.Mask.Value(), p.Status.Value())
}

// mirrorVRAM folds a nametable address onto the 2KB of physical VRAM.
func (p *PPU) mirrorVRAM(address uint16) uint16 {
	// 0x3000 to 0x3eff mirrors 0x2000 to 0x2eff
	address &= 0x2fff

	if p.cart.Mirroring == cartridge.Vertical {
		// nametables 0 and 2 share memory, as do 1 and 3
		if address < 0x2400 || (address >= 0x2800 && address < 0x2c00) {
			return address & 0x03ff
		}
		return (address & 0x03ff) + 0x0400
	}

	// horizontal. nametables 0 and 1 share memory, as do 2 and 3
	if address < 0x2800 {
		return address & 0x03ff
	}
	return (address & 0x03ff) + 0x0400
}

// paletteIndex maps a palette address onto the 32 bytes of palette
// memory. The entries at 0x3f10/14/18/1c are mirrors of the background
// colours at 0x3f00/04/08/0c.
func paletteIndex(address uint16) uint16 {
	idx := address & 0x1f
	switch idx {
	case 0x10, 0x14, 0x18, 0x1c:
		idx -= 0x10
	}
	return idx
}

// readVRAM reads a byte of PPU address space without going through the
// data register buffer.
func (p *PPU) readVRAM(address uint16) uint8 {
	address &= 0x3fff

	switch {
	case address < 0x2000:
		return p.cart.ReadCHR(address)
	case address < 0x3f00:
		return p.vram[p.mirrorVRAM(address)]
	}
	return p.palette[paletteIndex(address)]
}

func (p *PPU) writeVRAM(address uint16, data uint8) {
	address &= 0x3fff

	switch {
	case address < 0x2000:
		p.cart.WriteCHR(address, data)
	case address < 0x3f00:
		p.vram[p.mirrorVRAM(address)] = data
	default:
		p.palette[paletteIndex(address)] = data
	}
}

// ReadRegister reads one of the eight PPU registers. The register
// argument is the primary address of the register (0x2000 to 0x2007).
// Reads have side effects; use PeekRegister to observe without
// disturbing anything.
func (p *PPU) ReadRegister(register uint16) (uint8, error) {
	switch register {
	case 0x2002:
		v := p.Status.Value()

		// reading the status register clears the vblank flag and resets
		// the two write latches
		p.Status.VBlank = false
		p.Scroll.ResetLatch()
		p.Address.ResetLatch()

		return v, nil

	case 0x2004:
		// no cursor advance on read
		return p.oam[p.oamAddr], nil

	case 0x2007:
		addr := p.Address.Address()
		p.Address.Increment(p.Control.VRAMIncrement())

		// palette reads bypass the buffer
		if addr&0x3fff >= 0x3f00 {
			return p.readVRAM(addr), nil
		}

		v := p.readBuffer
		p.readBuffer = p.readVRAM(addr)
		return v, nil
	}

	return 0, curated.Errorf(ReadFromWriteOnly, register)
}

// WriteRegister writes to one of the eight PPU registers. The register
// argument is the primary address of the register (0x2000 to 0x2007).
func (p *PPU) WriteRegister(register uint16, data uint8) error {
	switch register {
	case 0x2000:
		wasEnabled := p.Control.NMIEnabled()
		p.Control.Write(data)

		// enabling the NMI while already in vblank raises the interrupt
		// immediately
		if !wasEnabled && p.Control.NMIEnabled() && p.Status.VBlank {
			p.nmi = true
		}

	case 0x2001:
		p.Mask.Write(data)

	case 0x2002:
		return curated.Errorf(WriteToReadOnly, register)

	case 0x2003:
		p.oamAddr = data

	case 0x2004:
		p.oam[p.oamAddr] = data
		p.oamAddr++

	case 0x2005:
		p.Scroll.Write(data)

	case 0x2006:
		p.Address.Write(data)

	case 0x2007:
		p.writeVRAM(p.Address.Address(), data)
		p.Address.Increment(p.Control.VRAMIncrement())
	}

	return nil
}

// WriteDMA copies 256 bytes into OAM, starting at the current OAM cursor
// and wrapping. Called by the memory bus when the CPU writes to the DMA
// register.
func (p *PPU) WriteDMA(data []uint8) {
	for _, v := range data {
		p.oam[p.oamAddr] = v
		p.oamAddr++
	}
}

// Tick advances the PPU clock. Returns true if this advancement entered
// the vertical blank period; the console uses this to synchronise the
// renderer. The NMI edge, which additionally requires the control
// register's NMI-enable bit, is collected separately with NMI().
func (p *PPU) Tick(ppuCycles int) bool {
	entered := false

	p.cycle += ppuCycles
	for p.cycle >= cyclesPerScanline {
		p.cycle -= cyclesPerScanline
		p.Scanline++

		if p.Scanline == vblankScanline {
			p.Status.VBlank = true
			p.Status.Sprite0Hit = false
			entered = true
			if p.Control.NMIEnabled() {
				p.nmi = true
			}
		}

		if p.Scanline >= scanlinesPerFrame {
			p.Scanline = 0
			p.Frame++
			p.Status.VBlank = false
			p.Status.Sprite0Hit = false
			p.nmi = false
		}
	}

	return entered
}

// NMI returns and clears the interrupt edge. Fires at most once per
// vblank entry.
func (p *PPU) NMI() bool {
	v := p.nmi
	p.nmi = false
	return v
}

// PeekRegister reads a PPU register without any of the side effects of
// ReadRegister. Write-only registers return their stored values.
func (p *PPU) PeekRegister(register uint16) uint8 {
	switch register {
	case 0x2000:
		return p.Control.Value()
	case 0x2001:
		return p.Mask.Value()
	case 0x2002:
		return p.Status.Value()
	case 0x2003:
		return p.oamAddr
	case 0x2004:
		return p.oam[p.oamAddr]
	case 0x2007:
		return p.readBuffer
	}
	return 0
}

// PeekVRAM reads a byte of PPU address space (pattern tables, nametables
// or palette) without disturbing the data register buffer. Used by
// renderers and the debugger.
func (p *PPU) PeekVRAM(address uint16) uint8 {
	return p.readVRAM(address)
}

// PeekOAM reads a byte of object attribute memory.
func (p *PPU) PeekOAM(address uint8) uint8 {
	return p.oam[address]
}
