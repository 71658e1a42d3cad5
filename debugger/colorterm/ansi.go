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

package colorterm

// Style is used to control the color of terminal output.
type Style int

// List of terminal styles.
const (
	StyleFeedback Style = iota
	StyleCPU
	StyleError
	StyleLog
	StyleHelp
	StylePrompt
)

// ansi pens for each style
var pens = map[Style]string{
	StyleFeedback: "",
	StyleCPU:      "\033[1;33m",
	StyleError:    "\033[1;31m",
	StyleLog:      "\033[2m",
	StyleHelp:     "\033[36m",
	StylePrompt:   "\033[1;36m",
}

const ansiOff = "\033[0m"
