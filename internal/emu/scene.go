package emu

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/display"

// scene drives the simulated game around the engine: it lays out tile
// maps, animates scrolling, swaps the displayed plane every few frames and
// cycles the override flags so all dynamic palette paths get exercised.
type scene struct {
	frame         int
	framesPerFlip int
}

func (s *scene) init(d *display.Display, framesPerFlip int) {
	if framesPerFlip == 0 {
		framesPerFlip = 7
	}
	s.framesPerFlip = framesPerFlip

	writeTileGraphics(d)
	fillPlane(d, 0x9800, 0)
	fillPlane(d, 0x9C00, 3)
	placeSprites(d)
}

func (s *scene) step(d *display.Display) {
	s.frame++
	d.SetScroll(byte(s.frame))
	if s.framesPerFlip > 0 && s.frame%s.framesPerFlip == 0 {
		d.FlipPlane()
	}

	// Walk the override flags through their ranges.
	d.SetPlayerForm(byte(s.frame / 120 % 2))
	d.SetPowerup(byte(s.frame / 90 % 4))
	d.SetBossSlot(byte(s.frame / 300 % 9))
	d.SetStage(byte(s.frame / 600 % 2))

	// The game rebuilds the staging sprite buffer it is about to send.
	d.SwapShadow()
	placeSprites(d)
}

// writeTileGraphics fills tile pixel data with per-id patterns so every
// tile renders distinctly.
func writeTileGraphics(d *display.Display) {
	for id := 0; id < 256; id++ {
		for row := 0; row < 8; row++ {
			lo := byte(id) ^ byte(row*37)
			hi := byte(id>>1) ^ byte(row*11)
			addr := uint16(0x8000 + id*16 + row*2)
			d.SetTile(addr, lo)
			d.SetTile(addr+1, hi)
		}
	}
}

// fillPlane lays out a dungeon-ish map: wall band at the top, floor below,
// items and decorations scattered.
func fillPlane(d *display.Display, base uint16, seed byte) {
	for row := 0; row < 32; row++ {
		for col := 0; col < 32; col++ {
			var tile byte
			switch {
			case row < 2 || row > 29:
				tile = 0x40 + byte(col&0x1F) // wall band
			case (row*31+col*7+int(seed))%23 == 0:
				tile = 0x90 + byte(col&0x0F) // item pickups
			case (row*13+col*3+int(seed))%37 == 0:
				tile = 0xE0 + byte(col&0x0F) // decoration
			default:
				tile = byte((row + col) & 0x3F) // floor
			}
			d.SetTile(base+uint16(row*32+col), tile)
		}
	}
}

// placeSprites writes the player in slots 0..3 and a spread of enemy and
// projectile tiles behind it into the current staging buffer.
func placeSprites(d *display.Display) {
	buf := d.CurrentShadow()
	set := func(slot int, y, x, tile, attr byte) {
		buf[slot*4+0] = y
		buf[slot*4+1] = x
		buf[slot*4+2] = tile
		buf[slot*4+3] = attr
	}
	// Player block (2x2 tiles).
	set(0, 80, 80, 0x20, 0)
	set(1, 80, 88, 0x21, 0)
	set(2, 88, 80, 0x22, 0)
	set(3, 88, 88, 0x23, 0)

	enemyTiles := []byte{0x30, 0x42, 0x55, 0x63, 0x71, 0x84, 0x11, 0x01, 0x06}
	for i, t := range enemyTiles {
		set(4+i, byte(40+i*10), byte(24+i*14), t, 0)
	}
	for slot := 4 + len(enemyTiles); slot < 40; slot++ {
		set(slot, 0, 0, 0, 0) // offscreen
	}
}
