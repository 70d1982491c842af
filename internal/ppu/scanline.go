package ppu

// tileInfo decodes a tilemap/OAM info byte: pppLhvSn.
type tileInfo struct {
	palette  uint8
	layer    bool
	hFlip    bool
	vFlip    bool
	sprite16 bool
	highHalf bool
}

func decodeInfo(b byte) tileInfo {
	return tileInfo{
		palette:  (b >> 5) & 0x7,
		layer:    b&0x10 != 0,
		hFlip:    b&0x08 != 0,
		vFlip:    b&0x04 != 0,
		sprite16: b&0x02 != 0,
		highHalf: b&0x01 != 0,
	}
}

// patternRow returns the 4 pattern-table bytes for tile's row-th row.
func (p *PPU) patternRow(tile int, row int) [4]byte {
	base := tile*32 + row*4
	var out [4]byte
	for i := range out {
		out[i] = p.Pattern[(base+i)%patternSize]
	}
	return out
}

// pixelsOf splits the row's 4 bytes into 8 (priority, color) pairs,
// left to right: high nibble of each byte first.
func pixelsOf(row [4]byte) [8]struct {
	priority uint8
	color    uint8
} {
	var out [8]struct {
		priority uint8
		color    uint8
	}
	for i, b := range row {
		out[i*2].priority = b >> 7
		out[i*2].color = (b >> 4) & 0x7
		out[i*2+1].priority = (b >> 3) & 0x1
		out[i*2+1].color = b & 0x7
	}
	return out
}

func (p *PPU) paletteColor(paletteBank int, palette, color uint8) RGB {
	idx := (paletteBank*8+int(palette))*8 + int(color)
	hi := p.Palette[idx*2]
	lo := p.Palette[idx*2+1]
	word := uint16(hi)<<8 | uint16(lo)
	r := uint8((word >> 10) & 0x1F)
	g := uint8((word >> 5) & 0x1F)
	b := uint8(word & 0x1F)
	return RGB{R: expand5(r), G: expand5(g), B: expand5(b)}
}

// expand5 scales a 5-bit channel to 8 bits.
func expand5(v uint8) uint8 {
	return v<<3 | v>>2
}

// Scanline renders row y into out, which must have len >= ScreenWidth.
// Three sweeps run in order (BG, sprites, FG). The BG sweep writes
// every opaque pixel; the sprite and FG sweeps write a pixel only if
// its priority strictly beats what is already there.
func (p *PPU) Scanline(y int, out []RGB) {
	prio := make([]uint8, ScreenWidth)
	for x := range out[:ScreenWidth] {
		out[x] = p.paletteColor(0, 0, 0)
		prio[x] = 0
	}

	p.sweepBG(y, out, prio)
	p.sweepSprites(y, out, prio)
	p.sweepFG(y, out, prio)
}

func (p *PPU) sweepBG(y int, out []RGB, prio []uint8) {
	tileRow := euclidMod(y+int(p.bgV), 32*8) / 8
	inTileRow := euclidMod(y+int(p.bgV), 8)

	for col := 0; col < 32; col++ {
		entryAddr := (tileRow*32 + col) * 2
		info := decodeInfo(p.BG[entryAddr])
		index := int(p.BG[entryAddr+1])
		if info.highHalf {
			index += 256
		}

		row := inTileRow
		if info.vFlip {
			row = 7 - row
		}
		pixels := pixelsOf(p.patternRow(index, row))

		baseX := col*8 - int(p.bgH)
		for i := 0; i < 8; i++ {
			px := i
			if info.hFlip {
				px = 7 - i
			}
			x := euclidMod(baseX+i, 256)
			if x >= ScreenWidth {
				continue
			}
			pix := pixels[px]
			if pix.color == 0 {
				continue
			}
			// The BG sweep runs first and writes unconditionally: it
			// has nothing to compare against yet, it only establishes
			// the priority floor the later sweeps test against.
			out[x] = p.paletteColor(0, info.palette, pix.color)
			prio[x] = 2 * pix.priority
		}
	}
}

func (p *PPU) sweepFG(y int, out []RGB, prio []uint8) {
	tileRow := euclidMod(y+int(p.fgV), 32*8) / 8
	inTileRow := euclidMod(y+int(p.fgV), 8)

	for col := 0; col < 32; col++ {
		entryAddr := (tileRow*32 + col) * 2
		info := decodeInfo(p.FG[entryAddr])
		index := int(p.FG[entryAddr+1])
		if info.highHalf {
			index += 256
		}

		row := inTileRow
		if info.vFlip {
			row = 7 - row
		}
		pixels := pixelsOf(p.patternRow(index, row))

		baseX := col*8 - int(p.fgH)
		for i := 0; i < 8; i++ {
			px := i
			if info.hFlip {
				px = 7 - i
			}
			x := euclidMod(baseX+i, 256)
			if x >= ScreenWidth {
				continue
			}
			pix := pixels[px]
			if pix.color == 0 {
				continue
			}
			newPrio := 4 + 2*pix.priority
			if newPrio > prio[x] {
				out[x] = p.paletteColor(0, info.palette, pix.color)
				prio[x] = newPrio
			}
		}
	}
}

const spriteHeight = 8

func (p *PPU) sweepSprites(y int, out []RGB, prio []uint8) {
	for entry := 0; entry < 256; entry++ {
		base := entry * 4
		info := decodeInfo(p.OAM[base])
		index := int(p.OAM[base+1])
		if info.highHalf {
			index += 256
		}
		ox := int(p.OAM[base+2])
		oy := int(p.OAM[base+3])

		row := euclidMod(y-(oy-int(p.spriteV)), 256)
		if row >= spriteHeight {
			continue
		}
		if info.vFlip {
			row = 7 - row
		}
		pixels := pixelsOf(p.patternRow(index, row))

		basePrio := uint8(1)
		if info.layer {
			basePrio = 5
		}

		baseX := ox - int(p.spriteH)
		for i := 0; i < 8; i++ {
			px := i
			if info.hFlip {
				px = 7 - i
			}
			x := euclidMod(baseX+i, 256)
			if x >= ScreenWidth {
				continue
			}
			pix := pixels[px]
			if pix.color == 0 {
				continue
			}
			newPrio := basePrio + 2*pix.priority
			if newPrio > prio[x] {
				out[x] = p.paletteColor(1, info.palette, pix.color)
				prio[x] = newPrio
			}
		}
	}
}
