package display

// VBlankFunc is a callback invoked when the display enters the vertical
// refresh window (the engine's once-per-cycle entry point).
type VBlankFunc func()

// Display models the retrofitted display adapter the colorization engine
// drives: two banks of tile memory (tile ids in bank 0, the parallel
// attribute planes in bank 1), a mode-sequenced status register, scroll
// and control registers, color RAM behind auto-incrementing index/data
// ports, two shadow sprite buffers with a bulk copy to the live sprite
// table, and the single-byte game flags the engine samples.
//
// Access rules match the hardware: during active scan (mode 3) tile-memory
// reads return 0xFF and writes are dropped silently. That is the failure
// mode the engine's gate and convergent sweep exist for.
type Display struct {
	vram  [0x2000]byte // bank 0: tile data + both tile maps (0x8000–0x9FFF)
	vram1 [0x2000]byte // bank 1: attribute planes at the same addresses
	oam   [0xA0]byte   // live sprite table

	// Shadow sprite buffers (staging copies in work RAM). The game writes
	// one per frame and bulk-copies it; the engine recolors both.
	shadow [2][0xA0]byte
	shadowCur int // buffer the next copy sends

	bgPal  [64]byte
	objPal [64]byte
	bcpi   byte // BG palette index port (bits 0-5 address, bit 7 auto-inc)
	ocpi   byte // OBJ palette index port

	control byte // bit 7 enable, bit 3 plane select
	status  byte // mode in bits 0-1
	scrollX byte
	scrollY byte

	// Game flags the engine reads once per cycle.
	form     byte
	boss     byte
	powerup  byte
	stage    byte
	gameplay bool

	bank byte // selected switchable bank

	dot  int
	line int

	onVBlank VBlankFunc
}

// Display geometry and timing (dots are the display's base clock).
const (
	visibleLines = 144
	totalLines   = 154
	dotsPerLine  = 456
	oamDots      = 80
	scanDots     = 172

	ControlEnable      = 0x80
	ControlPlaneSelect = 0x08
)

func New(onVBlank VBlankFunc) *Display {
	d := &Display{onVBlank: onVBlank, control: ControlEnable, gameplay: true}
	// Color RAM powers up white so uncolored content stays visible.
	for i := 0; i < 64; i += 2 {
		d.bgPal[i], d.bgPal[i+1] = 0xFF, 0x7F
		d.objPal[i], d.objPal[i+1] = 0xFF, 0x7F
	}
	return d
}

// Mode returns the 2-bit scan-mode field of the status register.
func (d *Display) Mode() byte { return d.status & 0x03 }

// Tick advances the display by the given number of dots, sequencing the
// status modes and firing the vblank callback at the start of line 144.
func (d *Display) Tick(dots int) {
	for i := 0; i < dots; i++ {
		if d.control&ControlEnable == 0 {
			continue
		}
		d.dot++
		d.status = d.status&^0x03 | d.modeForDot()
		if d.dot >= dotsPerLine {
			d.dot = 0
			d.line++
			if d.line == visibleLines {
				d.status = d.status&^0x03 | 1
				if d.onVBlank != nil {
					d.onVBlank()
				}
			} else if d.line >= totalLines {
				d.line = 0
			}
		}
	}
}

func (d *Display) modeForDot() byte {
	if d.line >= visibleLines {
		return 1
	}
	switch {
	case d.dot < oamDots:
		return 2
	case d.dot < oamDots+scanDots:
		return 3
	default:
		return 0
	}
}

// Line returns the current scan line (0..153).
func (d *Display) Line() int { return d.line }

// --- tile memory (engine.TilePlane) ---

// ReadTile reads a bank-0 byte through the access rules: 0xFF during
// active scan.
func (d *Display) ReadTile(addr uint16) byte {
	if d.Mode() == 3 {
		return 0xFF
	}
	if addr < 0x8000 || addr > 0x9FFF {
		return 0xFF
	}
	return d.vram[addr-0x8000]
}

// WriteAttr writes a bank-1 attribute byte; dropped during active scan.
func (d *Display) WriteAttr(addr uint16, value byte) {
	if d.Mode() == 3 {
		return
	}
	if addr < 0x8000 || addr > 0x9FFF {
		return
	}
	d.vram1[addr-0x8000] = value
}

// SetTile stores a tile id without access restrictions (content setup).
func (d *Display) SetTile(addr uint16, value byte) {
	if addr >= 0x8000 && addr <= 0x9FFF {
		d.vram[addr-0x8000] = value
	}
}

// RawBank reads either bank without access restrictions; renderer use only.
func (d *Display) RawBank(bank int, addr uint16) byte {
	if addr < 0x8000 || addr > 0x9FFF {
		return 0xFF
	}
	if bank == 0 {
		return d.vram[addr-0x8000]
	}
	return d.vram1[addr-0x8000]
}

// --- color RAM ports (engine.PalettePorts) ---

func (d *Display) WriteBGIndex(v byte)  { d.bcpi = v & 0xBF }
func (d *Display) WriteOBJIndex(v byte) { d.ocpi = v & 0xBF }

func (d *Display) WriteBGData(v byte) {
	idx := int(d.bcpi & 0x3F)
	d.bgPal[idx] = v
	if d.bcpi&0x80 != 0 {
		d.bcpi = d.bcpi&0xC0 | byte((idx+1)&0x3F)
	}
}

func (d *Display) WriteOBJData(v byte) {
	idx := int(d.ocpi & 0x3F)
	d.objPal[idx] = v
	if d.ocpi&0x80 != 0 {
		d.ocpi = d.ocpi&0xC0 | byte((idx+1)&0x3F)
	}
}

// BGColorRGB returns 8-bit RGB for a background palette slot and color index.
func (d *Display) BGColorRGB(slot, color byte) (r, g, b byte) {
	return decodeRGB555At(d.bgPal[:], slot, color)
}

// OBJColorRGB returns 8-bit RGB for an object palette slot and color index.
func (d *Display) OBJColorRGB(slot, color byte) (r, g, b byte) {
	return decodeRGB555At(d.objPal[:], slot, color)
}

func decodeRGB555At(pal []byte, slot, color byte) (r, g, b byte) {
	i := int(slot&7)*8 + int(color&3)*2
	v := uint16(pal[i]) | uint16(pal[i+1])<<8
	r5 := byte(v & 0x1F)
	g5 := byte((v >> 5) & 0x1F)
	b5 := byte((v >> 10) & 0x1F)
	return (r5 << 3) | (r5 >> 2), (g5 << 3) | (g5 >> 2), (b5 << 3) | (b5 >> 2)
}

// --- sprite buffers ---

// ShadowBuffers exposes both staging copies for the engine's object pass.
func (d *Display) ShadowBuffers() [][]byte {
	return [][]byte{d.shadow[0][:], d.shadow[1][:]}
}

// CurrentShadow returns the buffer the next bulk copy will send.
func (d *Display) CurrentShadow() []byte { return d.shadow[d.shadowCur][:] }

// SwapShadow switches which staging buffer the game writes and sends.
func (d *Display) SwapShadow() { d.shadowCur ^= 1 }

// RunOAMDMA bulk-copies the current shadow buffer to the live sprite table.
func (d *Display) RunOAMDMA() {
	copy(d.oam[:], d.shadow[d.shadowCur][:])
}

// OAM returns the live sprite table.
func (d *Display) OAM() []byte { return d.oam[:] }

// --- registers and flags (engine.Flags, engine.BankSelector) ---

func (d *Display) Control() byte      { return d.control }
func (d *Display) SetControl(v byte)  { d.control = v }
func (d *Display) Scroll() byte       { return d.scrollX }
func (d *Display) SetScroll(v byte)   { d.scrollX = v }
func (d *Display) ScrollY() byte      { return d.scrollY }
func (d *Display) SetScrollY(v byte)  { d.scrollY = v }

// FlipPlane toggles the displayed tile plane, as the game does every few
// frames.
func (d *Display) FlipPlane() { d.control ^= ControlPlaneSelect }

func (d *Display) PlayerForm() byte { return d.form }
func (d *Display) BossSlot() byte   { return d.boss }
func (d *Display) Powerup() byte    { return d.powerup }
func (d *Display) Stage() byte      { return d.stage }
func (d *Display) Gameplay() bool   { return d.gameplay }

func (d *Display) SetPlayerForm(v byte) { d.form = v }
func (d *Display) SetBossSlot(v byte)   { d.boss = v }
func (d *Display) SetPowerup(v byte)    { d.powerup = v }
func (d *Display) SetStage(v byte)      { d.stage = v }
func (d *Display) SetGameplay(on bool)  { d.gameplay = on }

func (d *Display) SelectedBank() byte  { return d.bank }
func (d *Display) SelectBank(v byte)   { d.bank = v }
