package emu

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/engine"

// renderFrame draws the background plane through its attribute plane and
// the live sprite table on top, using the palettes currently in color RAM.
// Tile pixel data uses plain 0x8000 addressing.
func (m *Machine) renderFrame() {
	d := m.disp
	mapBase := engine.BufferSync{}.ActiveBase(d.Control())
	scx, scy := int(d.Scroll()), int(d.ScrollY())

	for y := 0; y < ScreenH; y++ {
		bgY := (y + scy) & 0xFF
		mapY := uint16(bgY/8) & 31
		fineY := uint16(bgY & 7)
		for x := 0; x < ScreenW; x++ {
			bgX := (x + scx) & 0xFF
			mapX := uint16(bgX/8) & 31
			idxAddr := mapBase + mapY*32 + mapX

			tile := d.RawBank(0, idxAddr)
			attr := d.RawBank(1, idxAddr)

			base := 0x8000 + uint16(tile)*16 + fineY*2
			lo := d.RawBank(0, base)
			hi := d.RawBank(0, base+1)
			bit := 7 - byte(bgX&7)
			ci := ((hi>>bit)&1)<<1 | (lo>>bit)&1

			r, g, b := d.BGColorRGB(attr&0x07, ci)
			i := (y*ScreenW + x) * 4
			m.fb[i], m.fb[i+1], m.fb[i+2], m.fb[i+3] = r, g, b, 0xFF
		}
	}

	m.renderSprites()
}

// renderSprites composes the 40 live sprite slots (8x8, color 0
// transparent, no priority handling).
func (m *Machine) renderSprites() {
	d := m.disp
	oam := d.OAM()
	for slot := 0; slot < engine.SpriteSlots; slot++ {
		sy := int(oam[slot*4]) - 16
		sx := int(oam[slot*4+1]) - 8
		tile := oam[slot*4+2]
		attr := oam[slot*4+3]
		if sy <= -8 || sy >= ScreenH || sx <= -8 || sx >= ScreenW {
			continue
		}
		for py := 0; py < 8; py++ {
			y := sy + py
			if y < 0 || y >= ScreenH {
				continue
			}
			base := 0x8000 + uint16(tile)*16 + uint16(py)*2
			lo := d.RawBank(0, base)
			hi := d.RawBank(0, base+1)
			for px := 0; px < 8; px++ {
				x := sx + px
				if x < 0 || x >= ScreenW {
					continue
				}
				bit := 7 - byte(px)
				ci := ((hi>>bit)&1)<<1 | (lo>>bit)&1
				if ci == 0 {
					continue
				}
				r, g, b := d.OBJColorRGB(attr&0x07, ci)
				i := (y*ScreenW + x) * 4
				m.fb[i], m.fb[i+1], m.fb[i+2], m.fb[i+3] = r, g, b, 0xFF
			}
		}
	}
}
