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

// Package instructions defines the table of 6502 instructions. The table
// includes the undocumented opcodes found in real NES software. The CPU,
// the disassembly package and the tracer all work from the same table,
// acquired with GetDefinitions().
//
// Opcodes with no settled behaviour (the so-called KIL opcodes among them)
// have a nil entry in the table. Attempting to execute one is an error
// caught by the CPU at decode time.
package instructions
