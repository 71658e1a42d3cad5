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

// Package tracer produces one line of execution trace per instruction,
// in the format popularised by the nestest ROM log. A trace line shows
// the instruction about to be executed and the register state before
// execution:
//
//	C72E  A2 01     LDX #$01                        A:00 X:00 Y:00 P:24 SP:FD
//
// Lines produced by Trace() can be diffed directly against a known-good
// log. All memory access goes through the Peek interface so tracing
// never disturbs the emulation.
package tracer

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Trace returns the trace line for the instruction the CPU is about to
// execute. Intended to be called from a step observer.
func Trace(nes *hardware.NES) (string, error) {
	mc := nes.CPU

	pc := mc.PC.Address()
	opcode, err := nes.Mem.Peek(pc)
	if err != nil {
		return "", err
	}

	defn := instructions.GetDefinitions()[opcode]
	if defn == nil {
		return fmt.Sprintf("%04X  %02X        ???", pc, opcode), nil
	}

	peek := func(address uint16) uint8 {
		v, _ := nes.Mem.Peek(address)
		return v
	}

	// raw instruction bytes
	dump := make([]string, defn.Bytes)
	for i := range dump {
		dump[i] = fmt.Sprintf("%02X", peek(pc+uint16(i)))
	}

	operand, err := formatOperand(nes, defn, pc)
	if err != nil {
		return "", err
	}

	mnemonic := defn.Mnemonic
	if defn.Undocumented {
		mnemonic = "*" + mnemonic
	}

	asm := strings.TrimRight(fmt.Sprintf("%04X  %-8s %4s %s",
		pc, strings.Join(dump, " "), mnemonic, operand), " ")

	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		asm, mc.A.Value(), mc.X.Value(), mc.Y.Value(),
		mc.Status.Value(), mc.SP.Value()), nil
}

// formatOperand renders the operand field, including the values behind
// any indirection, the way the nestest log does.
func formatOperand(nes *hardware.NES, defn *instructions.Definition, pc uint16) (string, error) {
	mc := nes.CPU

	peek := func(address uint16) uint8 {
		v, _ := nes.Mem.Peek(address)
		return v
	}
	peek16 := func(address uint16) uint16 {
		return uint16(peek(address+1))<<8 | uint16(peek(address))
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		return "", nil

	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", peek(pc+1)), nil

	case instructions.Relative:
		offset := peek(pc + 1)
		target := pc + 2 + uint16(int8(offset))
		return fmt.Sprintf("$%04X", target), nil

	case instructions.ZeroPage:
		addr := uint16(peek(pc + 1))
		return fmt.Sprintf("$%02X = %02X", addr, peek(addr)), nil

	case instructions.ZeroPageX:
		base := peek(pc + 1)
		addr := uint16(base + mc.X.Value())
		return fmt.Sprintf("$%02X,X @ %02X = %02X", base, addr, peek(addr)), nil

	case instructions.ZeroPageY:
		base := peek(pc + 1)
		addr := uint16(base + mc.Y.Value())
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", base, addr, peek(addr)), nil

	case instructions.Absolute:
		addr := peek16(pc + 1)
		if defn.Mnemonic == "JMP" || defn.Mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr), nil
		}
		return fmt.Sprintf("$%04X = %02X", addr, peek(addr)), nil

	case instructions.AbsoluteX:
		base := peek16(pc + 1)
		addr := base + mc.X.Address()
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, addr, peek(addr)), nil

	case instructions.AbsoluteY:
		base := peek16(pc + 1)
		addr := base + mc.Y.Address()
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, addr, peek(addr)), nil

	case instructions.Indirect:
		ptr := peek16(pc + 1)

		// reproduce the page boundary bug for the target display
		var addr uint16
		if ptr&0x00ff == 0x00ff {
			addr = uint16(peek(ptr&0xff00))<<8 | uint16(peek(ptr))
		} else {
			addr = peek16(ptr)
		}
		return fmt.Sprintf("($%04X) = %04X", ptr, addr), nil

	case instructions.IndirectX:
		base := peek(pc + 1)
		ptr := base + mc.X.Value()
		addr := uint16(peek(uint16(ptr+1)))<<8 | uint16(peek(uint16(ptr)))
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", base, ptr, addr, peek(addr)), nil

	case instructions.IndirectY:
		base := peek(pc + 1)
		deref := uint16(peek(uint16(base+1)))<<8 | uint16(peek(uint16(base)))
		addr := deref + mc.Y.Address()
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", base, deref, addr, peek(addr)), nil
	}

	return "", nil
}
