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

// Package performance contains helper functions relating to performance.
// The Check function runs the emulation headless for a period of time and
// reports the frame rate against the 60 frames per second the real
// console generates.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware"
)

// Error messages raised by the performance package.
const (
	PerformanceError = "performance: %v"
)

// the expected frame rate of the console
const framesPerSecond = 60.0

// checking the timer channel on every instruction is relatively
// expensive. only check every so many instructions
const performanceBrake = 100

// Check the performance of the emulator using the supplied cartridge.
// The cartridge is run for the specified duration with no frame
// synchroniser attached, so the emulation runs as fast as it can.
func Check(output io.Writer, cartload cartridgeloader.Loader, profile bool, duration string) error {
	nes, err := hardware.NewNES(cartload)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	startFrame := nes.Mem.PPU.Frame

	runner := func() error {
		timerChan := make(chan bool)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		brake := 0

		return nes.Run(func() (bool, error) {
			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timerChan:
					return false, nil
				default:
				}
			}
			return true, nil
		})
	}

	err = cpuProfile(profile, "cpu.profile", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	frames := nes.Mem.PPU.Frame - startFrame
	fps := float64(frames) / dur.Seconds()
	fmt.Fprintf(output, "%.2f fps (%d frames in %s) %.1f%%\n",
		fps, frames, dur, 100*fps/framesPerSecond)

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	return nil
}
