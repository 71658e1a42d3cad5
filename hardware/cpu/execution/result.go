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

// Package execution records the result of a single CPU instruction. The
// Result type is filled in by the CPU as the instruction executes and is
// what the tracer and the debugger see when they observe a step.
package execution

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Result records the execution details of a single instruction.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// the table entry for the opcode. never nil in a finalised Result
	Defn *instructions.Definition

	// the operand bytes that followed the opcode, widened to uint16. for a
	// one byte instruction the field is zero and meaningless; for a two
	// byte instruction only the low byte is used
	InstructionData uint16

	// number of cycles the instruction consumed, including any page
	// crossing or branch penalty
	Cycles int
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x: not yet decoded", r.Address)
	}

	switch r.Defn.Bytes {
	case 2:
		return fmt.Sprintf("%04x: %s %02x", r.Address, r.Defn.Mnemonic, r.InstructionData&0x00ff)
	case 3:
		return fmt.Sprintf("%04x: %s %04x", r.Address, r.Defn.Mnemonic, r.InstructionData)
	}
	return fmt.Sprintf("%04x: %s", r.Address, r.Defn.Mnemonic)
}
