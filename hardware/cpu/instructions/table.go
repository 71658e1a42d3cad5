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

package instructions

// the instruction table is built exactly once, at program startup, and is
// shared by reference between every user (CPU, disassembly, tracer).
var definitions []*Definition

// GetDefinitions returns the instruction table, indexed by opcode value. An
// entry of nil means the opcode value has no settled meaning and execution
// of it is an error.
func GetDefinitions() []*Definition {
	return definitions
}

func init() {
	definitions = make([]*Definition, 256)

	add := func(opcode uint8, mnemonic string, bytes int, cycles int, mode AddressingMode) {
		definitions[opcode] = &Definition{
			OpCode:         opcode,
			Mnemonic:       mnemonic,
			Bytes:          bytes,
			Cycles:         cycles,
			AddressingMode: mode,
		}
	}

	undoc := func(opcode uint8, mnemonic string, bytes int, cycles int, mode AddressingMode) {
		add(opcode, mnemonic, bytes, cycles, mode)
		definitions[opcode].Undocumented = true
	}

	// cycle counts are the base counts. the additional cycle consumed by
	// some instructions when an index crosses a page boundary is not
	// represented in the table

	add(0x69, "ADC", 2, 2, Immediate)
	add(0x65, "ADC", 2, 3, ZeroPage)
	add(0x75, "ADC", 2, 4, ZeroPageX)
	add(0x6d, "ADC", 3, 4, Absolute)
	add(0x7d, "ADC", 3, 4, AbsoluteX)
	add(0x79, "ADC", 3, 4, AbsoluteY)
	add(0x61, "ADC", 2, 6, IndirectX)
	add(0x71, "ADC", 2, 5, IndirectY)

	add(0x29, "AND", 2, 2, Immediate)
	add(0x25, "AND", 2, 3, ZeroPage)
	add(0x35, "AND", 2, 4, ZeroPageX)
	add(0x2d, "AND", 3, 4, Absolute)
	add(0x3d, "AND", 3, 4, AbsoluteX)
	add(0x39, "AND", 3, 4, AbsoluteY)
	add(0x21, "AND", 2, 6, IndirectX)
	add(0x31, "AND", 2, 5, IndirectY)

	add(0x0a, "ASL", 1, 2, Implied)
	add(0x06, "ASL", 2, 5, ZeroPage)
	add(0x16, "ASL", 2, 6, ZeroPageX)
	add(0x0e, "ASL", 3, 6, Absolute)
	add(0x1e, "ASL", 3, 7, AbsoluteX)

	add(0x90, "BCC", 2, 2, Relative)
	add(0xb0, "BCS", 2, 2, Relative)
	add(0xf0, "BEQ", 2, 2, Relative)
	add(0x30, "BMI", 2, 2, Relative)
	add(0xd0, "BNE", 2, 2, Relative)
	add(0x10, "BPL", 2, 2, Relative)
	add(0x50, "BVC", 2, 2, Relative)
	add(0x70, "BVS", 2, 2, Relative)

	add(0x24, "BIT", 2, 3, ZeroPage)
	add(0x2c, "BIT", 3, 4, Absolute)

	add(0x00, "BRK", 1, 7, Implied)

	add(0x18, "CLC", 1, 2, Implied)
	add(0xd8, "CLD", 1, 2, Implied)
	add(0x58, "CLI", 1, 2, Implied)
	add(0xb8, "CLV", 1, 2, Implied)

	add(0xc9, "CMP", 2, 2, Immediate)
	add(0xc5, "CMP", 2, 3, ZeroPage)
	add(0xd5, "CMP", 2, 4, ZeroPageX)
	add(0xcd, "CMP", 3, 4, Absolute)
	add(0xdd, "CMP", 3, 4, AbsoluteX)
	add(0xd9, "CMP", 3, 4, AbsoluteY)
	add(0xc1, "CMP", 2, 6, IndirectX)
	add(0xd1, "CMP", 2, 5, IndirectY)

	add(0xe0, "CPX", 2, 2, Immediate)
	add(0xe4, "CPX", 2, 3, ZeroPage)
	add(0xec, "CPX", 3, 4, Absolute)

	add(0xc0, "CPY", 2, 2, Immediate)
	add(0xc4, "CPY", 2, 3, ZeroPage)
	add(0xcc, "CPY", 3, 4, Absolute)

	add(0xc6, "DEC", 2, 5, ZeroPage)
	add(0xd6, "DEC", 2, 6, ZeroPageX)
	add(0xce, "DEC", 3, 6, Absolute)
	add(0xde, "DEC", 3, 7, AbsoluteX)

	add(0xca, "DEX", 1, 2, Implied)
	add(0x88, "DEY", 1, 2, Implied)

	add(0x49, "EOR", 2, 2, Immediate)
	add(0x45, "EOR", 2, 3, ZeroPage)
	add(0x55, "EOR", 2, 4, ZeroPageX)
	add(0x4d, "EOR", 3, 4, Absolute)
	add(0x5d, "EOR", 3, 4, AbsoluteX)
	add(0x59, "EOR", 3, 4, AbsoluteY)
	add(0x41, "EOR", 2, 6, IndirectX)
	add(0x51, "EOR", 2, 5, IndirectY)

	add(0xe6, "INC", 2, 5, ZeroPage)
	add(0xf6, "INC", 2, 6, ZeroPageX)
	add(0xee, "INC", 3, 6, Absolute)
	add(0xfe, "INC", 3, 7, AbsoluteX)

	add(0xe8, "INX", 1, 2, Implied)
	add(0xc8, "INY", 1, 2, Implied)

	add(0x4c, "JMP", 3, 3, Absolute)
	add(0x6c, "JMP", 3, 5, Indirect)
	add(0x20, "JSR", 3, 6, Absolute)

	add(0xa9, "LDA", 2, 2, Immediate)
	add(0xa5, "LDA", 2, 3, ZeroPage)
	add(0xb5, "LDA", 2, 4, ZeroPageX)
	add(0xad, "LDA", 3, 4, Absolute)
	add(0xbd, "LDA", 3, 4, AbsoluteX)
	add(0xb9, "LDA", 3, 4, AbsoluteY)
	add(0xa1, "LDA", 2, 6, IndirectX)
	add(0xb1, "LDA", 2, 5, IndirectY)

	add(0xa2, "LDX", 2, 2, Immediate)
	add(0xa6, "LDX", 2, 3, ZeroPage)
	add(0xb6, "LDX", 2, 4, ZeroPageY)
	add(0xae, "LDX", 3, 4, Absolute)
	add(0xbe, "LDX", 3, 4, AbsoluteY)

	add(0xa0, "LDY", 2, 2, Immediate)
	add(0xa4, "LDY", 2, 3, ZeroPage)
	add(0xb4, "LDY", 2, 4, ZeroPageX)
	add(0xac, "LDY", 3, 4, Absolute)
	add(0xbc, "LDY", 3, 4, AbsoluteX)

	add(0x4a, "LSR", 1, 2, Implied)
	add(0x46, "LSR", 2, 5, ZeroPage)
	add(0x56, "LSR", 2, 6, ZeroPageX)
	add(0x4e, "LSR", 3, 6, Absolute)
	add(0x5e, "LSR", 3, 7, AbsoluteX)

	add(0xea, "NOP", 1, 2, Implied)

	add(0x09, "ORA", 2, 2, Immediate)
	add(0x05, "ORA", 2, 3, ZeroPage)
	add(0x15, "ORA", 2, 4, ZeroPageX)
	add(0x0d, "ORA", 3, 4, Absolute)
	add(0x1d, "ORA", 3, 4, AbsoluteX)
	add(0x19, "ORA", 3, 4, AbsoluteY)
	add(0x01, "ORA", 2, 6, IndirectX)
	add(0x11, "ORA", 2, 5, IndirectY)

	add(0x48, "PHA", 1, 3, Implied)
	add(0x08, "PHP", 1, 3, Implied)
	add(0x68, "PLA", 1, 4, Implied)
	add(0x28, "PLP", 1, 4, Implied)

	add(0x2a, "ROL", 1, 2, Implied)
	add(0x26, "ROL", 2, 5, ZeroPage)
	add(0x36, "ROL", 2, 6, ZeroPageX)
	add(0x2e, "ROL", 3, 6, Absolute)
	add(0x3e, "ROL", 3, 7, AbsoluteX)

	add(0x6a, "ROR", 1, 2, Implied)
	add(0x66, "ROR", 2, 5, ZeroPage)
	add(0x76, "ROR", 2, 6, ZeroPageX)
	add(0x6e, "ROR", 3, 6, Absolute)
	add(0x7e, "ROR", 3, 7, AbsoluteX)

	add(0x40, "RTI", 1, 6, Implied)
	add(0x60, "RTS", 1, 6, Implied)

	add(0xe9, "SBC", 2, 2, Immediate)
	add(0xe5, "SBC", 2, 3, ZeroPage)
	add(0xf5, "SBC", 2, 4, ZeroPageX)
	add(0xed, "SBC", 3, 4, Absolute)
	add(0xfd, "SBC", 3, 4, AbsoluteX)
	add(0xf9, "SBC", 3, 4, AbsoluteY)
	add(0xe1, "SBC", 2, 6, IndirectX)
	add(0xf1, "SBC", 2, 5, IndirectY)

	add(0x38, "SEC", 1, 2, Implied)
	add(0xf8, "SED", 1, 2, Implied)
	add(0x78, "SEI", 1, 2, Implied)

	add(0x85, "STA", 2, 3, ZeroPage)
	add(0x95, "STA", 2, 4, ZeroPageX)
	add(0x8d, "STA", 3, 4, Absolute)
	add(0x9d, "STA", 3, 5, AbsoluteX)
	add(0x99, "STA", 3, 5, AbsoluteY)
	add(0x81, "STA", 2, 6, IndirectX)
	add(0x91, "STA", 2, 6, IndirectY)

	add(0x86, "STX", 2, 3, ZeroPage)
	add(0x96, "STX", 2, 4, ZeroPageY)
	add(0x8e, "STX", 3, 4, Absolute)

	add(0x84, "STY", 2, 3, ZeroPage)
	add(0x94, "STY", 2, 4, ZeroPageX)
	add(0x8c, "STY", 3, 4, Absolute)

	add(0xaa, "TAX", 1, 2, Implied)
	add(0xa8, "TAY", 1, 2, Implied)
	add(0xba, "TSX", 1, 2, Implied)
	add(0x8a, "TXA", 1, 2, Implied)
	add(0x9a, "TXS", 1, 2, Implied)
	add(0x98, "TYA", 1, 2, Implied)

	// undocumented opcodes from here on

	for _, v := range []uint8{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		undoc(v, "NOP", 1, 2, Implied)
	}
	for _, v := range []uint8{0x80, 0x82, 0x89, 0xc2, 0xe2} {
		undoc(v, "NOP", 2, 2, Immediate)
	}
	for _, v := range []uint8{0x04, 0x44, 0x64} {
		undoc(v, "NOP", 2, 3, ZeroPage)
	}
	for _, v := range []uint8{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		undoc(v, "NOP", 2, 4, ZeroPageX)
	}
	undoc(0x0c, "NOP", 3, 4, Absolute)
	for _, v := range []uint8{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		undoc(v, "NOP", 3, 4, AbsoluteX)
	}

	undoc(0xa7, "LAX", 2, 3, ZeroPage)
	undoc(0xb7, "LAX", 2, 4, ZeroPageY)
	undoc(0xaf, "LAX", 3, 4, Absolute)
	undoc(0xbf, "LAX", 3, 4, AbsoluteY)
	undoc(0xa3, "LAX", 2, 6, IndirectX)
	undoc(0xb3, "LAX", 2, 5, IndirectY)

	undoc(0x87, "SAX", 2, 3, ZeroPage)
	undoc(0x97, "SAX", 2, 4, ZeroPageY)
	undoc(0x8f, "SAX", 3, 4, Absolute)
	undoc(0x83, "SAX", 2, 6, IndirectX)

	undoc(0xeb, "SBC", 2, 2, Immediate)

	undoc(0xc7, "DCP", 2, 5, ZeroPage)
	undoc(0xd7, "DCP", 2, 6, ZeroPageX)
	undoc(0xcf, "DCP", 3, 6, Absolute)
	undoc(0xdf, "DCP", 3, 7, AbsoluteX)
	undoc(0xdb, "DCP", 3, 7, AbsoluteY)
	undoc(0xc3, "DCP", 2, 8, IndirectX)
	undoc(0xd3, "DCP", 2, 8, IndirectY)

	undoc(0xe7, "ISB", 2, 5, ZeroPage)
	undoc(0xf7, "ISB", 2, 6, ZeroPageX)
	undoc(0xef, "ISB", 3, 6, Absolute)
	undoc(0xff, "ISB", 3, 7, AbsoluteX)
	undoc(0xfb, "ISB", 3, 7, AbsoluteY)
	undoc(0xe3, "ISB", 2, 8, IndirectX)
	undoc(0xf3, "ISB", 2, 8, IndirectY)

	undoc(0x07, "SLO", 2, 5, ZeroPage)
	undoc(0x17, "SLO", 2, 6, ZeroPageX)
	undoc(0x0f, "SLO", 3, 6, Absolute)
	undoc(0x1f, "SLO", 3, 7, AbsoluteX)
	undoc(0x1b, "SLO", 3, 7, AbsoluteY)
	undoc(0x03, "SLO", 2, 8, IndirectX)
	undoc(0x13, "SLO", 2, 8, IndirectY)

	undoc(0x27, "RLA", 2, 5, ZeroPage)
	undoc(0x37, "RLA", 2, 6, ZeroPageX)
	undoc(0x2f, "RLA", 3, 6, Absolute)
	undoc(0x3f, "RLA", 3, 7, AbsoluteX)
	undoc(0x3b, "RLA", 3, 7, AbsoluteY)
	undoc(0x23, "RLA", 2, 8, IndirectX)
	undoc(0x33, "RLA", 2, 8, IndirectY)

	undoc(0x47, "SRE", 2, 5, ZeroPage)
	undoc(0x57, "SRE", 2, 6, ZeroPageX)
	undoc(0x4f, "SRE", 3, 6, Absolute)
	undoc(0x5f, "SRE", 3, 7, AbsoluteX)
	undoc(0x5b, "SRE", 3, 7, AbsoluteY)
	undoc(0x43, "SRE", 2, 8, IndirectX)
	undoc(0x53, "SRE", 2, 8, IndirectY)

	undoc(0x67, "RRA", 2, 5, ZeroPage)
	undoc(0x77, "RRA", 2, 6, ZeroPageX)
	undoc(0x6f, "RRA", 3, 6, Absolute)
	undoc(0x7f, "RRA", 3, 7, AbsoluteX)
	undoc(0x7b, "RRA", 3, 7, AbsoluteY)
	undoc(0x63, "RRA", 2, 8, IndirectX)
	undoc(0x73, "RRA", 2, 8, IndirectY)
}
