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

package ppu

// ControlRegister is the write-only register at 0x2000.
type ControlRegister struct {
	value uint8
}

// Write a new value to the control register.
func (reg *ControlRegister) Write(data uint8) {
	reg.value = data
}

// Value returns the raw register value.
func (reg ControlRegister) Value() uint8 {
	return reg.value
}

// BaseNametable returns the VRAM address of the selected nametable.
func (reg ControlRegister) BaseNametable() uint16 {
	return 0x2000 + uint16(reg.value&0x03)*0x0400
}

// VRAMIncrement is the step added to the address register after every
// access to the data register. Either across (1) or down (32).
func (reg ControlRegister) VRAMIncrement() uint16 {
	if reg.value&0x04 == 0x04 {
		return 32
	}
	return 1
}

// SpritePatternTable returns the pattern table address for 8x8 sprites.
func (reg ControlRegister) SpritePatternTable() uint16 {
	if reg.value&0x08 == 0x08 {
		return 0x1000
	}
	return 0x0000
}

// BackgroundPatternTable returns the pattern table address used for the
// background.
func (reg ControlRegister) BackgroundPatternTable() uint16 {
	if reg.value&0x10 == 0x10 {
		return 0x1000
	}
	return 0x0000
}

// SpriteHeight returns the height of sprites in pixels, 8 or 16.
func (reg ControlRegister) SpriteHeight() int {
	if reg.value&0x20 == 0x20 {
		return 16
	}
	return 8
}

// NMIEnabled returns true if an NMI should be raised on vblank entry.
func (reg ControlRegister) NMIEnabled() bool {
	return reg.value&0x80 == 0x80
}

// MaskRegister is the write-only register at 0x2001. The rendering
// enable flags are stored and honoured by the renderer but have no
// effect on PPU timing.
type MaskRegister struct {
	value uint8
}

// Write a new value to the mask register.
func (reg *MaskRegister) Write(data uint8) {
	reg.value = data
}

// Value returns the raw register value.
func (reg MaskRegister) Value() uint8 {
	return reg.value
}

// ShowBackground returns true if background rendering is enabled.
func (reg MaskRegister) ShowBackground() bool {
	return reg.value&0x08 == 0x08
}

// ShowSprites returns true if sprite rendering is enabled.
func (reg MaskRegister) ShowSprites() bool {
	return reg.value&0x10 == 0x10
}

// StatusRegister is the read-only register at 0x2002.
type StatusRegister struct {
	VBlank         bool
	Sprite0Hit     bool
	SpriteOverflow bool
}

// Value flattens the status flags into the register byte. The low five
// bits of the real register float and read as zero here.
func (reg StatusRegister) Value() uint8 {
	var v uint8
	if reg.VBlank {
		v |= 0x80
	}
	if reg.Sprite0Hit {
		v |= 0x40
	}
	if reg.SpriteOverflow {
		v |= 0x20
	}
	return v
}

// ScrollRegister is the write-only register at 0x2005. Written twice in
// sequence, X offset then Y offset.
type ScrollRegister struct {
	X uint8
	Y uint8

	yNext bool
}

// Write the next byte of the scroll position, alternating X and Y.
func (reg *ScrollRegister) Write(data uint8) {
	if reg.yNext {
		reg.Y = data
	} else {
		reg.X = data
	}
	reg.yNext = !reg.yNext
}

// ResetLatch puts the register back into the X-next state. A side effect
// of reading the status register.
func (reg *ScrollRegister) ResetLatch() {
	reg.yNext = false
}

// AddressRegister is the write-only register at 0x2006. Written twice in
// sequence, high byte first, to form the 14 bit VRAM pointer used by the
// data register.
type AddressRegister struct {
	value uint16

	loNext bool
}

// Write the next byte of the address, high byte first.
func (reg *AddressRegister) Write(data uint8) {
	if reg.loNext {
		reg.value = (reg.value & 0xff00) | uint16(data)
	} else {
		reg.value = (reg.value & 0x00ff) | (uint16(data) << 8)
	}

	// the pointer is 14 bits wide
	reg.value &= 0x3fff

	reg.loNext = !reg.loNext
}

// Address returns the current value of the VRAM pointer.
func (reg AddressRegister) Address() uint16 {
	return reg.value
}

// Increment the pointer by the control register's step, wrapping within
// 14 bits.
func (reg *AddressRegister) Increment(step uint16) {
	reg.value = (reg.value + step) & 0x3fff
}

// ResetLatch puts the register back into the high-byte-next state. A
// side effect of reading the status register.
func (reg *AddressRegister) ResetLatch() {
	reg.loNext = false
}
