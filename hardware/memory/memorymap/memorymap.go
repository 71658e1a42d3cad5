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

// Package memorymap describes the address space of the NES as seen from
// the CPU. The MapAddress() function folds the many mirrors of the
// address space down to a primary address and says which device the
// address belongs to.
package memorymap

// Area represents the different areas of the CPU address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case DMA:
		return "DMA"
	case Joypad1:
		return "Joypad1"
	case Joypad2:
		return "Joypad2"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different areas of the CPU address space.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	DMA
	Joypad1
	Joypad2
	Cartridge
)

// The origin and memory top for each area of memory, along with the masks
// that fold the mirrors of an area onto the primary addresses.
//
// The 2KB of work RAM is mirrored four times over the first 8KB of the
// address space. The eight PPU registers are mirrored every eight bytes
// up to 0x3fff.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x1fff)
	MaskRAM   = uint16(0x07ff)

	OriginPPU = uint16(0x2000)
	MemtopPPU = uint16(0x3fff)
	MaskPPU   = uint16(0x0007)

	OriginAPU = uint16(0x4000)
	MemtopAPU = uint16(0x4015)

	AddressDMA     = uint16(0x4014)
	AddressJoypad1 = uint16(0x4016)
	AddressJoypad2 = uint16(0x4017)

	OriginCart = uint16(0x8000)
	MemtopCart = uint16(0xffff)
)

// MapAddress translates the address argument from mirror space to primary
// space. An address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAM {
		return address & MaskRAM, RAM
	}

	if address <= MemtopPPU {
		return OriginPPU | (address & MaskPPU), PPU
	}

	switch address {
	case AddressDMA:
		return address, DMA
	case AddressJoypad1:
		return address, Joypad1
	case AddressJoypad2:
		return address, Joypad2
	}

	if address <= MemtopAPU {
		return address, APU
	}

	if address >= OriginCart {
		return address, Cartridge
	}

	// expansion and cartridge save RAM space. nothing up there in the
	// cartridges we support
	return address, Undefined
}
