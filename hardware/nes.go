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

// Package hardware is the top of the hardware tree. The NES type ties
// the CPU to the memory system and provides the stepping functions used
// by both the playmode and debugger packages.
package hardware

import (
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/logger"
)

// NES is the main container for the emulated components of the console.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// StepObserver is invoked by Step() before the instruction fetch. The
// observer may read and mutate console state but must not reenter the
// stepping functions.
type StepObserver func() error

// NewNES creates a new console around the cartridge supplied by the
// loader and resets it, ready for the first call to Step() or Run().
func NewNES(cartload cartridgeloader.Loader) (*NES, error) {
	data, err := cartload.Load()
	if err != nil {
		return nil, err
	}

	cart, err := cartridge.NewCartridge(data)
	if err != nil {
		return nil, err
	}

	mem, err := memory.NewMemory(cart)
	if err != nil {
		return nil, err
	}

	nes := &NES{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}

	logger.Logf("nes", "cartridge attached: %s", cartload.ShortName())

	if err := nes.Reset(); err != nil {
		return nil, err
	}

	return nes, nil
}

// Reset emulates the console reset switch.
func (nes *NES) Reset() error {
	return nes.CPU.Reset()
}

// Step the emulation by one CPU instruction, servicing any pending
// interrupt first. The observer, if not nil, is invoked before the
// instruction fetch; putting this function in a loop with a suitable
// observer is an effective debugging loop.
func (nes *NES) Step(observer StepObserver) error {
	if nes.Mem.NMI() {
		cycles, err := nes.CPU.ServiceNMI()
		if err != nil {
			return err
		}
		if err := nes.Mem.Tick(cycles); err != nil {
			return err
		}
	}

	if observer != nil {
		if err := observer(); err != nil {
			return err
		}
	}

	if err := nes.CPU.ExecuteInstruction(); err != nil {
		return err
	}

	// the rest of the console catches up at the end of every instruction
	return nes.Mem.Tick(nes.CPU.LastResult.Cycles)
}

// Run the emulation until the continueCheck function says otherwise.
// continueCheck is consulted at every instruction boundary.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := nes.Step(nil); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForCycles runs the emulation for at least the given number of CPU
// cycles. The budget is checked at instruction boundaries so the actual
// number of cycles consumed can overshoot by one instruction.
func (nes *NES) RunForCycles(budget int, observer StepObserver) error {
	for budget > 0 {
		if err := nes.Step(observer); err != nil {
			return err
		}
		budget -= nes.CPU.LastResult.Cycles
	}
	return nil
}
