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

// Package registers implements the registers of the 6502 found in the NES.
// The 8 bit registers (A, X, Y and SP) share the Register type, which
// provides the arithmetic and logical operations the CPU needs; the status
// register and the program counter get their own types.
//
// The status register is represented in "normal form", one bool per flag,
// and is flattened into a uint8 only when it meets the stack (Value() and
// FromValue()).
package registers
