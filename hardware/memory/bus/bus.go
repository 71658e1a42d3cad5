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

// Package bus defines the memory bus interfaces. The CPU is written
// against the CPUBus interface and does not care what is on the other
// side; the full console memory implements it, as do the flat memory
// types used by the unit tests.
package bus

// CPUBus defines the memory operations available to the CPU. A read or a
// write through this interface can have side effects on the device mapped
// at the address.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the side-effect-free memory operations used by the
// debugger, the disassembler and the tracer. Peek never disturbs device
// state; reading a PPU register through Peek, for example, does not clear
// any flag or advance any latch.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}
