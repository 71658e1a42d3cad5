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

// Package disassembly performs a static disassembly of cartridge program
// memory. The walk is linear, from the bottom of the program space; data
// embedded in the instruction stream will disassemble to nonsense or to
// raw byte directives, as it does in any static disassembler.
package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Entry is one disassembled instruction or byte directive.
type Entry struct {
	Address uint16
	Bytes   []uint8

	Mnemonic string
	Operand  string
}

func (e Entry) String() string {
	s := ""
	for _, b := range e.Bytes {
		s += fmt.Sprintf("%02X ", b)
	}
	return fmt.Sprintf("$%04X  %-9s %4s %s", e.Address, s, e.Mnemonic, e.Operand)
}

// Disassembly of an entire cartridge.
type Disassembly struct {
	Entries []Entry
}

// FromCartridge disassembles the program memory of the cartridge
// identified by the loader.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	data, err := cartload.Load()
	if err != nil {
		return nil, err
	}

	cart, err := cartridge.NewCartridge(data)
	if err != nil {
		return nil, err
	}

	return FromPRG(cart.PRG), nil
}

// FromPRG disassembles a block of program memory. The block is assumed
// to be loaded at the top of the address space, the way NROM banks are.
func FromPRG(prg []uint8) *Disassembly {
	dsm := &Disassembly{}
	defns := instructions.GetDefinitions()

	origin := memorymap.OriginCart
	if len(prg) == 0x4000 {
		// a single bank sits in the upper half of the window, where the
		// interrupt vectors are
		origin = 0xc000
	}

	i := 0
	for i < len(prg) {
		address := origin + uint16(i)
		opcode := prg[i]
		defn := defns[opcode]

		if defn == nil || i+defn.Bytes > len(prg) {
			dsm.Entries = append(dsm.Entries, Entry{
				Address:  address,
				Bytes:    []uint8{opcode},
				Mnemonic: ".byte",
				Operand:  fmt.Sprintf("$%02X", opcode),
			})
			i++
			continue
		}

		e := Entry{
			Address:  address,
			Bytes:    prg[i : i+defn.Bytes],
			Mnemonic: defn.Mnemonic,
		}
		if defn.Undocumented {
			e.Mnemonic = "*" + e.Mnemonic
		}

		var operand uint16
		switch defn.Bytes {
		case 2:
			operand = uint16(prg[i+1])
		case 3:
			operand = uint16(prg[i+2])<<8 | uint16(prg[i+1])
		}

		e.Operand = formatOperand(defn, operand, address)
		dsm.Entries = append(dsm.Entries, e)
		i += defn.Bytes
	}

	return dsm
}

func formatOperand(defn *instructions.Definition, operand uint16, address uint16) string {
	switch defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", operand)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", address+2+uint16(int8(operand)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", operand)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02X,X", operand)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", operand)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04X,X", operand)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", operand)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", operand)
	case instructions.IndirectX:
		return fmt.Sprintf("($%02X,X)", operand)
	case instructions.IndirectY:
		return fmt.Sprintf("($%02X),Y", operand)
	}
	return ""
}

// Write the disassembly to the io.Writer, one entry per line.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
