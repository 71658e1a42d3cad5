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

// Package playmode runs the emulation for playing, without any debugging
// features. The console free-runs with an SDL window attached as the
// frame synchroniser.
package playmode

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/tracer"
)

// Sentinel error messages.
const (
	PlayError = "playmode: %v"
)

// Play sets the emulation running.
//
// MUST ONLY be called from the main thread, a requirement inherited from
// SDL.
func Play(cartload cartridgeloader.Loader, scale float32, permissive bool, fpsCap bool, trace bool) error {
	nes, err := hardware.NewNES(cartload)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	nes.Mem.Permissive = permissive

	scr, err := sdlplay.NewSdlPlay(nes.Mem.PPU, nes.Mem.Joypad, scale)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	scr.SetFPSCap(fpsCap)

	// the screen redraws and polls for input once per frame, on vblank
	// entry
	nes.Mem.SetFrameSync(scr)

	// ctrl-c in the launching terminal ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var observer hardware.StepObserver
	if trace {
		observer = func() error {
			s, err := tracer.Trace(nes)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		}
	}

	for {
		if err := nes.Step(observer); err != nil {
			return curated.Errorf(PlayError, err)
		}

		if scr.HasQuit() {
			return nil
		}

		select {
		case <-intChan:
			return nil
		default:
		}
	}
}
