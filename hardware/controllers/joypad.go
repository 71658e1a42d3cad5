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

// Package controllers emulates the standard NES controller. The console
// hardware sees the controller as an 8 bit shift register; the GUI (or a
// test) presses and releases buttons with SetButton().
package controllers

// Button is the bitmask of one button in the joypad shift register. The
// masks are in the order the register reports them.
type Button uint8

// List of buttons on the standard controller.
const (
	ButtonA      Button = 0x01
	ButtonB      Button = 0x02
	ButtonSelect Button = 0x04
	ButtonStart  Button = 0x08
	ButtonUp     Button = 0x10
	ButtonDown   Button = 0x20
	ButtonLeft   Button = 0x40
	ButtonRight  Button = 0x80
)

// Joypad is the standard NES controller.
type Joypad struct {
	// current state of the eight buttons
	buttons Button

	// while the strobe bit is set the shift register continuously reloads
	// and reads report button A
	strobe bool

	// which bit the next read will report
	cursor int
}

// NewJoypad is the preferred method of initialisation for the Joypad.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Write to the joypad register. Bit zero is the strobe.
func (j *Joypad) Write(data uint8) {
	j.strobe = data&0x01 == 0x01
	if j.strobe {
		j.cursor = 0
	}
}

// Read the next bit of the shift register. Once all eight buttons have
// been reported every further read returns 1, which is how software
// detects the end of the report.
func (j *Joypad) Read() uint8 {
	if j.cursor > 7 {
		return 1
	}

	v := uint8(j.buttons>>j.cursor) & 0x01
	if !j.strobe {
		j.cursor++
	}
	return v
}

// Peek returns what Read() would return without advancing the shift
// register.
func (j *Joypad) Peek() uint8 {
	if j.cursor > 7 {
		return 1
	}
	return uint8(j.buttons>>j.cursor) & 0x01
}

// SetButton presses or releases a button. Input arrives from outside the
// emulation so this never touches the shift register cursor.
func (j *Joypad) SetButton(button Button, pressed bool) {
	if pressed {
		j.buttons |= button
	} else {
		j.buttons &^= button
	}
}
