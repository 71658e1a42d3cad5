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

// Package logger is the central log for the whole application. There is
// only ever one log and it can be written to from anywhere with the Log()
// and Logf() functions.
//
// Entries accumulate in memory (up to a maximum, oldest entries being lost
// first) and can be inspected with Write() and Tail(). SetEcho() directs
// new entries to an io.Writer as they arrive, which is how the -log command
// line flag is implemented.
//
// A repeated entry does not appear twice; instead a repeat count is
// appended to the existing entry. Emulation code that logs on every
// occurrence of a condition (an ignored bus access, for instance) can
// therefore log freely without flooding.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// for more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho directs future log entries to the io.Writer. A nil writer turns
// echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
