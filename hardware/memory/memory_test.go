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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/controllers"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/test"
)

func makeTestMemory(t *testing.T) *memory.Memory {
	t.Helper()

	cart := &cartridge.Cartridge{
		PRG: make([]uint8, 0x4000),
		CHR: make([]uint8, 0x2000),
	}

	mem, err := memory.NewMemory(cart)
	test.ExpectedSuccess(t, err)
	return mem
}

func TestRAMMirrors(t *testing.T) {
	mem := makeTestMemory(t)

	test.ExpectedSuccess(t, mem.Write(0x0123, 0x66))

	for _, address := range []uint16{0x0123, 0x0923, 0x1123, 0x1923} {
		v, err := mem.Read(address)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, 0x66)
	}
}

func TestPPURegisterRouting(t *testing.T) {
	mem := makeTestMemory(t)

	mem.PPU.Status.VBlank = true

	// 0x3ffa is a mirror of the status register at 0x2002
	v, err := mem.Read(0x3ffa)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x80)

	// the read cleared the flag
	v, err = mem.Read(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x00)
}

func TestPRGWriteFatal(t *testing.T) {
	mem := makeTestMemory(t)

	err := mem.Write(0x8000, 0x66)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.WriteToPRG))

	// permissive mode downgrades the error to a log entry
	mem.Permissive = true
	test.ExpectedSuccess(t, mem.Write(0x8000, 0x66))
}

func TestMirroredPRGRead(t *testing.T) {
	mem := makeTestMemory(t)
	mem.Cart.PRG[0x0123] = 0x42

	v, err := mem.Read(0x8123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x42)

	// 16KB cartridges appear twice in the 32KB window
	v, err = mem.Read(0xc123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x42)
}

func TestOAMDMARouting(t *testing.T) {
	mem := makeTestMemory(t)

	// stage a page of data in RAM
	for i := 0; i < 256; i++ {
		test.ExpectedSuccess(t, mem.Write(uint16(0x0200+i), uint8(i)))
	}

	test.ExpectedSuccess(t, mem.Write(0x4014, 0x02))

	test.Equate(t, mem.PPU.PeekOAM(0x00), 0x00)
	test.Equate(t, mem.PPU.PeekOAM(0x80), 0x80)
	test.Equate(t, mem.PPU.PeekOAM(0xff), 0xff)
}

func TestJoypadRouting(t *testing.T) {
	mem := makeTestMemory(t)

	mem.Joypad.SetButton(controllers.ButtonA, true)

	test.ExpectedSuccess(t, mem.Write(0x4016, 0x01))
	test.ExpectedSuccess(t, mem.Write(0x4016, 0x00))

	v, err := mem.Read(0x4016)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x01)

	// second controller reads as disconnected
	v, err = mem.Read(0x4017)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}

func TestAPUStub(t *testing.T) {
	mem := makeTestMemory(t)

	test.ExpectedSuccess(t, mem.Write(0x4000, 0xff))
	v, err := mem.Read(0x4015)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}

type frameCounter struct {
	frames int
}

func (f *frameCounter) NewFrame() error {
	f.frames++
	return nil
}

func TestFrameSync(t *testing.T) {
	mem := makeTestMemory(t)

	sync := &frameCounter{}
	mem.SetFrameSync(sync)

	// a whole frame of CPU cycles. the syncer is told exactly once, at
	// vblank entry, regardless of the NMI enable bit
	test.ExpectedSuccess(t, mem.Tick(341*262/3))
	test.Equate(t, sync.frames, 1)
	test.ExpectedFailure(t, mem.NMI())
}

func TestPeekHasNoSideEffects(t *testing.T) {
	mem := makeTestMemory(t)

	mem.PPU.Status.VBlank = true

	v, err := mem.Peek(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x80)

	// still set
	v, err = mem.Peek(0x2002)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v&0x80, 0x80)
}

func TestPoke(t *testing.T) {
	mem := makeTestMemory(t)

	test.ExpectedSuccess(t, mem.Poke(0x8000, 0xea))
	test.Equate(t, mem.Cart.PRG[0], 0xea)

	test.ExpectedSuccess(t, mem.Poke(0x0000, 0x01))
	test.Equate(t, mem.RAM[0], 0x01)

	err := mem.Poke(0x2000, 0x00)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnpokeableAddress))
}
