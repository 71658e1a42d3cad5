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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/test"
)

func TestFromPRG(t *testing.T) {
	prg := make([]uint8, 0x8000)
	copy(prg, []uint8{
		0xa2, 0x01, // LDX #$01
		0x8d, 0x00, 0x02, // STA $0200
		0xd0, 0xf9, // BNE $8000
		0x02, // KIL, disassembles to a byte directive
	})

	dsm := disassembly.FromPRG(prg)

	test.Equate(t, dsm.Entries[0].Address, 0x8000)
	test.Equate(t, dsm.Entries[0].Mnemonic, "LDX")
	test.Equate(t, dsm.Entries[0].Operand, "#$01")

	test.Equate(t, dsm.Entries[1].Mnemonic, "STA")
	test.Equate(t, dsm.Entries[1].Operand, "$0200")

	// branch target resolved relative to the following instruction
	test.Equate(t, dsm.Entries[2].Mnemonic, "BNE")
	test.Equate(t, dsm.Entries[2].Operand, "$8000")

	test.Equate(t, dsm.Entries[3].Mnemonic, ".byte")
	test.Equate(t, dsm.Entries[3].Operand, "$02")
}

func TestSingleBankOrigin(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0xea

	// a 16KB bank disassembles against the upper mirror so that the
	// interrupt vectors land at the right addresses
	dsm := disassembly.FromPRG(prg)
	test.Equate(t, dsm.Entries[0].Address, 0xc000)
}

func TestWrite(t *testing.T) {
	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{0xa9, 0x42}) // LDA #$42

	dsm := disassembly.FromPRG(prg)

	s := &strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(s))
	test.ExpectedSuccess(t, strings.HasPrefix(s.String(), "$C000  A9 42      LDA #$42"))
}
