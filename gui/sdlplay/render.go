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

package sdlplay

// render composites the visible frame from PPU state. A whole frame is
// drawn at once from the state at vblank entry, so mid-frame register
// changes (split scrolling in particular) are not visible.
func (scr *SdlPlay) render() {
	backdrop := scr.ppu.PeekVRAM(0x3f00)
	for y := 0; y < visibleScanlines; y++ {
		for x := 0; x < horizPixels; x++ {
			scr.setPixel(x, y, backdrop)
			scr.bgOpaque[y*horizPixels+x] = false
		}
	}

	if scr.ppu.Mask.ShowBackground() {
		scr.renderBackground()
	}
	if scr.ppu.Mask.ShowSprites() {
		scr.renderSprites()
	}
}

func (scr *SdlPlay) setPixel(x, y int, col uint8) {
	c := palette[col&0x3f]
	i := (y*horizPixels + x) * pixelDepth
	scr.pixels[i] = c[0]
	scr.pixels[i+1] = c[1]
	scr.pixels[i+2] = c[2]
}

func (scr *SdlPlay) renderBackground() {
	base := scr.ppu.Control.BaseNametable()
	patternTable := scr.ppu.Control.BackgroundPatternTable()

	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tile := uint16(scr.ppu.PeekVRAM(base + uint16(ty*32+tx)))

			// the attribute table divides the nametable into 4x4 tile
			// blocks, one palette per 2x2 quadrant
			attr := scr.ppu.PeekVRAM(base + 0x03c0 + uint16((ty/4)*8+tx/4))
			shift := uint(((ty%4)/2)*4 + ((tx%4)/2)*2)
			pal := uint16((attr >> shift) & 0x03)

			for row := 0; row < 8; row++ {
				lo := scr.ppu.PeekVRAM(patternTable + tile*16 + uint16(row))
				hi := scr.ppu.PeekVRAM(patternTable + tile*16 + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					px := uint16((hi>>(7-col))&0x01<<1 | (lo>>(7-col))&0x01)
					if px == 0 {
						continue
					}

					x := tx*8 + col
					y := ty*8 + row
					scr.setPixel(x, y, scr.ppu.PeekVRAM(0x3f00+pal*4+px))
					scr.bgOpaque[y*horizPixels+x] = true
				}
			}
		}
	}
}

// renderSprites draws the 64 OAM entries. Iterating back to front means
// lower numbered sprites, which have priority, end up on top.
func (scr *SdlPlay) renderSprites() {
	height := scr.ppu.Control.SpriteHeight()

	for s := 63; s >= 0; s-- {
		sy := int(scr.ppu.PeekOAM(uint8(s*4))) + 1
		tile := uint16(scr.ppu.PeekOAM(uint8(s*4 + 1)))
		attr := scr.ppu.PeekOAM(uint8(s*4 + 2))
		sx := int(scr.ppu.PeekOAM(uint8(s*4 + 3)))

		pal := uint16(attr & 0x03)
		behind := attr&0x20 == 0x20
		flipH := attr&0x40 == 0x40
		flipV := attr&0x80 == 0x80

		var patternTable uint16
		if height == 16 {
			// in 8x16 mode bit 0 of the tile index selects the pattern
			// table and the sprite occupies two consecutive tiles
			patternTable = (tile & 0x01) * 0x1000
			tile &= 0xfe
		} else {
			patternTable = scr.ppu.Control.SpritePatternTable()
		}

		for row := 0; row < height; row++ {
			r := row
			if flipV {
				r = height - 1 - row
			}

			t := tile
			if r >= 8 {
				t++
				r -= 8
			}

			lo := scr.ppu.PeekVRAM(patternTable + t*16 + uint16(r))
			hi := scr.ppu.PeekVRAM(patternTable + t*16 + uint16(r) + 8)

			for col := 0; col < 8; col++ {
				c := col
				if flipH {
					c = 7 - col
				}

				px := uint16((hi>>(7-c))&0x01<<1 | (lo>>(7-c))&0x01)
				if px == 0 {
					continue
				}

				x := sx + col
				y := sy + row
				if x >= horizPixels || y >= visibleScanlines {
					continue
				}

				if behind && scr.bgOpaque[y*horizPixels+x] {
					continue
				}

				scr.setPixel(x, y, scr.ppu.PeekVRAM(0x3f10+pal*4+px))
			}
		}
	}
}
