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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestRegisterArithmetic(t *testing.T) {
	a := registers.NewRegister(0, "A")

	// addition without carry
	a.Load(0x10)
	carry, overflow := a.Add(0x01, false)
	test.ExpectedFailure(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, a.Value(), 0x11)

	// addition with carry
	carry, overflow = a.Add(0x01, true)
	test.ExpectedFailure(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, a.Value(), 0x13)

	// addition that carries out
	a.Load(0xff)
	carry, overflow = a.Add(0x01, false)
	test.ExpectedSuccess(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, a.Value(), 0x00)
	test.ExpectedSuccess(t, a.IsZero())

	// signed overflow. 0x7f + 0x01 = 0x80 which is -128 in two's complement
	a.Load(0x7f)
	carry, overflow = a.Add(0x01, false)
	test.ExpectedFailure(t, carry)
	test.ExpectedSuccess(t, overflow)
	test.ExpectedSuccess(t, a.IsNegative())
}

func TestRegisterSubtract(t *testing.T) {
	a := registers.NewRegister(0, "A")

	// 0x05 - 0x03 with no borrow (carry set)
	a.Load(0x05)
	carry, overflow := a.Subtract(0x03, true)
	test.ExpectedSuccess(t, carry)
	test.ExpectedFailure(t, overflow)
	test.Equate(t, a.Value(), 0x02)

	// subtraction that borrows
	a.Load(0x03)
	carry, _ = a.Subtract(0x05, true)
	test.ExpectedFailure(t, carry)
	test.Equate(t, a.Value(), 0xfe)
	test.ExpectedSuccess(t, a.IsNegative())
}

func TestRegisterShifts(t *testing.T) {
	a := registers.NewRegister(0, "A")

	a.Load(0x81)
	carry := a.ASL()
	test.ExpectedSuccess(t, carry)
	test.Equate(t, a.Value(), 0x02)

	carry = a.LSR()
	test.ExpectedFailure(t, carry)
	test.Equate(t, a.Value(), 0x01)

	// rotation through the carry flag
	carry = a.ROR(true)
	test.ExpectedSuccess(t, carry)
	test.Equate(t, a.Value(), 0x80)

	carry = a.ROL(true)
	test.ExpectedSuccess(t, carry)
	test.Equate(t, a.Value(), 0x01)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x8000)
	test.Equate(t, pc.Address(), 0x8000)

	pc.Add(0x02)
	test.Equate(t, pc.Address(), 0x8002)

	// wrap at the top of the address space
	pc.Load(0xffff)
	pc.Add(0x01)
	test.Equate(t, pc.Address(), 0x0000)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.Reset()

	test.ExpectedSuccess(t, sr.InterruptDisable)
	test.ExpectedFailure(t, sr.Zero)

	// unused bit is always set in the flattened form
	test.Equate(t, sr.Value(), 0x24)

	sr.FromValue(0xff)
	test.ExpectedSuccess(t, sr.Sign)
	test.ExpectedSuccess(t, sr.Overflow)
	test.ExpectedSuccess(t, sr.Break)
	test.ExpectedSuccess(t, sr.Carry)
	test.Equate(t, sr.String(), "SV-BDIZC")

	sr.FromValue(0x00)
	test.Equate(t, sr.String(), "sv-bdizc")
	test.Equate(t, sr.Value(), 0x20)
}
