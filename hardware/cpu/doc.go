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

// Package cpu emulates the 6502 found in the NES. The CPU accesses memory
// exclusively through the bus.CPUBus interface; it knows nothing about
// what is on the other side of the bus.
//
// The emulation is instruction stepped rather than cycle stepped. Each
// call to ExecuteInstruction() runs one complete instruction and records
// the details, including the cycle count with any page crossing penalty,
// in the LastResult field. The console keeps the rest of the hardware in
// step by feeding the cycle count to the memory clock after every
// instruction.
//
// The CPU implements the quirks of the original hardware that software
// depends on: the JMP indirect page boundary bug, zero page address
// wrapping in the indexed and indirect addressing modes, and the settled
// subset of the undocumented opcodes.
package cpu
