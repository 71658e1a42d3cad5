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

package controllers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/test"
)

func TestStrobeHoldsButtonA(t *testing.T) {
	j := controllers.NewJoypad()
	j.Write(0x01)
	j.SetButton(controllers.ButtonA, true)

	// with the strobe set every read reports button A
	for i := 0; i < 10; i++ {
		test.Equate(t, j.Read(), 0x01)
	}

	j.SetButton(controllers.ButtonA, false)
	test.Equate(t, j.Read(), 0x00)
}

func TestShiftRegister(t *testing.T) {
	j := controllers.NewJoypad()

	j.Write(0x01)
	j.SetButton(controllers.ButtonB, true)
	j.SetButton(controllers.ButtonStart, true)
	j.Write(0x00)

	// report order is A, B, Select, Start, Up, Down, Left, Right
	want := []uint8{0, 1, 0, 1, 0, 0, 0, 0}
	for _, w := range want {
		test.Equate(t, j.Read(), w)
	}

	// every read beyond the eighth returns 1
	test.Equate(t, j.Read(), 0x01)
	test.Equate(t, j.Read(), 0x01)
}

func TestStrobeRestartsReport(t *testing.T) {
	j := controllers.NewJoypad()

	j.SetButton(controllers.ButtonA, true)
	j.Write(0x00)

	test.Equate(t, j.Read(), 0x01)
	test.Equate(t, j.Read(), 0x00)

	// strobing resets the cursor to button A
	j.Write(0x01)
	j.Write(0x00)
	test.Equate(t, j.Read(), 0x01)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	j := controllers.NewJoypad()

	j.SetButton(controllers.ButtonA, true)
	j.Write(0x00)

	test.Equate(t, j.Peek(), 0x01)
	test.Equate(t, j.Peek(), 0x01)
	test.Equate(t, j.Read(), 0x01)
	test.Equate(t, j.Peek(), 0x00)
}
