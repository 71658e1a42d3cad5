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

package tracer_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/tracer"
)

func makeNES(t *testing.T, program ...uint8) *hardware.NES {
	t.Helper()

	data := make([]uint8, 16+0x4000+0x2000)
	copy(data, []uint8{0x4e, 0x45, 0x53, 0x1a})
	data[4] = 1
	data[5] = 1
	copy(data[16:], program)
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0x80

	nes, err := hardware.NewNES(cartridgeloader.Loader{Filename: "test.nes", Data: data})
	test.ExpectedSuccess(t, err)
	return nes
}

func TestTraceFormat(t *testing.T) {
	nes := makeNES(t,
		0xa2, 0x01, // LDX #$01
		0xca, // DEX
	)

	s, err := tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "8000  A2 01     LDX #$01                        A:00 X:00 Y:00 P:24 SP:FD")

	test.ExpectedSuccess(t, nes.Step(nil))

	s, err = tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "8002  CA        DEX                             A:00 X:01 Y:00 P:24 SP:FD")
}

func TestTraceAbsolute(t *testing.T) {
	nes := makeNES(t,
		0x4c, 0x05, 0x80, // JMP $8005
	)

	s, err := tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "8000  4C 05 80  JMP $8005                       A:00 X:00 Y:00 P:24 SP:FD")
}

func TestTraceZeroPage(t *testing.T) {
	nes := makeNES(t,
		0xa5, 0x10, // LDA $10
	)
	test.ExpectedSuccess(t, nes.Mem.Poke(0x0010, 0x42))

	s, err := tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "8000  A5 10     LDA $10 = 42                    A:00 X:00 Y:00 P:24 SP:FD")
}

func TestTraceUndocumented(t *testing.T) {
	nes := makeNES(t,
		0xa7, 0x10, // LAX $10
	)

	s, err := tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.Equate(t, s, "8000  A7 10    *LAX $10 = 00                    A:00 X:00 Y:00 P:24 SP:FD")
}

func TestTraceDoesNotDisturb(t *testing.T) {
	nes := makeNES(t,
		0xad, 0x02, 0x20, // LDA $2002
	)

	nes.Mem.PPU.Status.VBlank = true

	// tracing an instruction that reads the PPU status register must not
	// clear the vblank flag
	_, err := tracer.Trace(nes)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nes.Mem.PPU.Status.VBlank)
}
