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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// wraps the termios attribute juggling in functions with friendlier
// names. Usually embedded in another type rather than used directly.
package easyterm

import (
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	Input  *os.File
	Output *os.File

	// terminal attributes for the modes we switch between. canAttr is
	// the state of the terminal when we found it
	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the terminal, remembering the attributes to restore on
// CleanUp().
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil || output == nil {
		return curated.Errorf("easyterm: terminal requires input and output files")
	}

	pt.Input = input
	pt.Output = output

	if err := termios.Tcgetattr(pt.Input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	// raw mode normally turns off output post-processing too but we still
	// want newlines to behave
	pt.rawAttr.Oflag |= unix.OPOST

	return nil
}

// CleanUp restores the terminal to the state it was found in.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
}

// RawMode puts the terminal into raw mode. Input is available byte by
// byte and nothing is echoed.
func (pt *Terminal) RawMode() error {
	if err := termios.Tcsetattr(pt.Input.Fd(), termios.TCIFLUSH, &pt.rawAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// CanonicalMode puts the terminal back into the mode it started in.
func (pt *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(pt.Input.Fd(), termios.TCIFLUSH, &pt.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
