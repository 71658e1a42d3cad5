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

// Package memory is the complete memory system of the NES as seen by the
// CPU. Every CPU read and write lands here and is routed, according to
// the memorymap package, to work RAM, the PPU registers, the joypad, the
// OAM DMA port or cartridge program memory.
//
// The memory system also carries the console clock: Tick() advances the
// PPU by three cycles for every CPU cycle and tells the frame syncer
// when a vertical blank has begun.
package memory

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/logger"
)

// Error messages raised by the memory system.
const (
	WriteToPRG        = "memory: write to cartridge program memory (%#04x)"
	UnpeekableAddress = "memory: cannot peek address (%#04x)"
	UnpokeableAddress = "memory: cannot poke address (%#04x)"
)

// FrameSync is notified exactly once per vertical blank entry, whether
// or not the running program has asked for the NMI. Renderers implement
// this interface to draw frames at the right moment.
type FrameSync interface {
	NewFrame() error
}

// Memory is the memory system of the NES. It implements both bus.CPUBus
// and bus.DebugBus.
type Memory struct {
	RAM    [0x0800]uint8
	PPU    *ppu.PPU
	Joypad *controllers.Joypad
	Cart   *cartridge.Cartridge

	// in permissive mode the accesses that are normally fatal (writes to
	// program memory, reads of write-only PPU registers, etc.) are logged
	// and ignored instead
	Permissive bool

	sync FrameSync
}

// NewMemory is the preferred method of initialisation for the memory
// system.
func NewMemory(cart *cartridge.Cartridge) (*Memory, error) {
	p, err := ppu.NewPPU(cart)
	if err != nil {
		return nil, err
	}

	return &Memory{
		PPU:    p,
		Joypad: controllers.NewJoypad(),
		Cart:   cart,
	}, nil
}

// SetFrameSync attaches the renderer notified at every vblank entry.
func (mem *Memory) SetFrameSync(sync FrameSync) {
	mem.sync = sync
}

// permit downgrades an error to a log entry in permissive mode.
func (mem *Memory) permit(err error) error {
	if err == nil || !mem.Permissive {
		return err
	}
	logger.Logf("memory", "%v", err)
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[ma], nil

	case memorymap.PPU:
		v, err := mem.PPU.ReadRegister(ma)
		return v, mem.permit(err)

	case memorymap.APU:
		return 0, nil

	case memorymap.DMA:
		// the DMA port is write-only
		return 0, mem.permit(curated.Errorf(UnpeekableAddress, address))

	case memorymap.Joypad1:
		return mem.Joypad.Read(), nil

	case memorymap.Joypad2:
		// second controller not attached
		return 0, nil

	case memorymap.Cartridge:
		return mem.Cart.Read(ma), nil
	}

	logger.Logf("memory", "read of unmapped address (%#04x)", address)
	return 0, nil
}

// Write implements the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
		return nil

	case memorymap.PPU:
		return mem.permit(mem.PPU.WriteRegister(ma, data))

	case memorymap.APU:
		return nil

	case memorymap.DMA:
		return mem.writeDMA(data)

	case memorymap.Joypad1:
		mem.Joypad.Write(data)
		return nil

	case memorymap.Joypad2:
		return nil

	case memorymap.Cartridge:
		return mem.permit(curated.Errorf(WriteToPRG, address))
	}

	logger.Logf("memory", "write to unmapped address (%#04x)", address)
	return nil
}

// writeDMA copies a 256 byte page into OAM. The page is read through the
// bus so RAM mirrors and cartridge memory are all legitimate sources.
func (mem *Memory) writeDMA(page uint8) error {
	var data [256]uint8

	origin := uint16(page) << 8
	for i := 0; i < 256; i++ {
		v, err := mem.Read(origin + uint16(i))
		if err != nil {
			return err
		}
		data[i] = v
	}

	mem.PPU.WriteDMA(data[:])
	return nil
}

// Tick advances the console clock by the given number of CPU cycles. The
// PPU runs at three times the CPU rate. When the PPU enters the vertical
// blank the frame syncer, if one is attached, is told.
func (mem *Memory) Tick(cpuCycles int) error {
	if mem.PPU.Tick(cpuCycles * 3) {
		if mem.sync != nil {
			return mem.sync.NewFrame()
		}
	}
	return nil
}

// NMI returns and clears the interrupt edge raised by the PPU.
func (mem *Memory) NMI() bool {
	return mem.PPU.NMI()
}

// Peek implements the bus.DebugBus interface. Unlike Read it never has
// side effects on the device at the address.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[ma], nil

	case memorymap.PPU:
		return mem.PPU.PeekRegister(ma), nil

	case memorymap.Joypad1:
		return mem.Joypad.Peek(), nil

	case memorymap.Cartridge:
		return mem.Cart.Read(ma), nil

	case memorymap.APU, memorymap.DMA, memorymap.Joypad2:
		return 0, nil
	}

	return 0, curated.Errorf(UnpeekableAddress, address)
}

// Poke implements the bus.DebugBus interface. Program memory is
// writeable through Poke; the debugger uses this to patch running
// programs.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
		return nil

	case memorymap.Cartridge:
		ma -= memorymap.OriginCart
		if len(mem.Cart.PRG) == 0x4000 {
			ma &= 0x3fff
		}
		mem.Cart.PRG[ma] = data
		return nil
	}

	return curated.Errorf(UnpokeableAddress, address)
}
