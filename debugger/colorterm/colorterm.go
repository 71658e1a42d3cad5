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

// Package colorterm implements the debugger terminal with a basic ANSI
// terminal. Input is read in raw mode, one byte at a time, so the
// debugger sees ctrl-c immediately rather than at the end of a line.
package colorterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/colorterm/easyterm"
)

// Sentinel errors returned by TermRead.
const (
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)

// ColorTerminal implements the debugger's terminal interface for an
// ANSI terminal.
type ColorTerminal struct {
	easyterm.Terminal
}

// Initialise the terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.Terminal.Initialise(os.Stdin, os.Stdout)
}

// CleanUp restores the terminal to its original state.
func (ct *ColorTerminal) CleanUp() {
	ct.Printf(StyleFeedback, "\r")
	ct.Terminal.CleanUp()
}

// Printf writes formatted output in the given style. A newline is not
// implied.
func (ct *ColorTerminal) Printf(style Style, format string, a ...interface{}) {
	fmt.Fprintf(ct.Output, "%s%s%s", pens[style], fmt.Sprintf(format, a...), ansiOff)
}

// Printlnf writes formatted output in the given style, with a newline.
func (ct *ColorTerminal) Printlnf(style Style, format string, a ...interface{}) {
	ct.Printf(style, format, a...)
	fmt.Fprintln(ct.Output)
}

// TermRead reads a line of input, showing the prompt. It returns
// UserInterrupt on ctrl-c and UserQuit on ctrl-d at an empty line.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	ct.Printf(StylePrompt, "%s", prompt)

	input := make([]byte, 0, 64)
	b := make([]byte, 1)

	for {
		if _, err := ct.Input.Read(b); err != nil {
			return "", curated.Errorf("colorterm: %v", err)
		}

		switch b[0] {
		case 0x03: // ctrl-c
			fmt.Fprintln(ct.Output)
			return "", curated.Errorf(UserInterrupt)

		case 0x04: // ctrl-d
			if len(input) == 0 {
				fmt.Fprintln(ct.Output)
				return "", curated.Errorf(UserQuit)
			}

		case '\r', '\n':
			fmt.Fprintln(ct.Output)
			return string(input), nil

		case 0x08, 0x7f: // backspace and delete
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Fprint(ct.Output, "\b \b")
			}

		default:
			if b[0] >= 0x20 && b[0] < 0x7f {
				input = append(input, b[0])
				fmt.Fprintf(ct.Output, "%c", b[0])
			}
		}
	}
}
