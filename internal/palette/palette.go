package palette

// Color is a 15-bit RGB555 value as stored in color RAM (bit 15 unused).
// Wire format is two bytes little-endian, the same layout the hardware
// palette data ports consume.
type Color uint16

// FromBytes assembles a Color from its little-endian wire form.
func FromBytes(lo, hi byte) Color {
	return Color(uint16(lo)|uint16(hi)<<8) & 0x7FFF
}

// Bytes returns the little-endian wire form.
func (c Color) Bytes() (lo, hi byte) {
	return byte(c), byte(c >> 8)
}

// RGB8 expands the 5-bit channels to 8 bits (shift and fold upper bits).
func (c Color) RGB8() (r, g, b byte) {
	r5 := byte(c & 0x1F)
	g5 := byte((c >> 5) & 0x1F)
	b5 := byte((c >> 10) & 0x1F)
	r = (r5 << 3) | (r5 >> 2)
	g = (g5 << 3) | (g5 >> 2)
	b = (b5 << 3) | (b5 >> 2)
	return
}

// Palette is one hardware palette: a name, a color-RAM slot (0..7), and
// exactly four colors. Immutable at runtime; the dynamic slots are
// substituted by the loader, not mutated in place.
type Palette struct {
	Name   string
	Slot   byte
	Colors [4]Color
}

// Encode returns the 8-byte color-RAM image of the palette.
func (p Palette) Encode() [8]byte {
	var out [8]byte
	for i, c := range p.Colors {
		out[i*2], out[i*2+1] = c.Bytes()
	}
	return out
}

// DecodeColors reads four colors back from an 8-byte color-RAM image.
func DecodeColors(b []byte) [4]Color {
	var out [4]Color
	for i := 0; i < 4 && i*2+1 < len(b); i++ {
		out[i] = FromBytes(b[i*2], b[i*2+1])
	}
	return out
}

// BossEntry pairs a boss palette with the OBJ hardware slot it overrides
// while that boss is active.
type BossEntry struct {
	Palette Palette
	Slot    byte
}

// Set is the full palette configuration the engine consumes: the static
// background and object tables plus the dynamic override tables. Built
// from configuration by an external loader; treated as read-only here.
type Set struct {
	BG  [8]Palette
	OBJ [8]Palette

	// Boss palette table, indexed by active-boss flag minus one.
	Boss [8]BossEntry

	// Powerup projectile palettes, indexed by active-powerup flag minus
	// one. Substituted into OBJ slot 0.
	Powerup [3]Palette

	// Flight variants for the two player-form palettes (OBJ slots 1 and 2),
	// used on stages where the player is airborne.
	FormFlight [2]Palette
}

// EncodeBG returns the 64-byte background color-RAM image (8 palettes).
func (s *Set) EncodeBG() [64]byte {
	var out [64]byte
	for i := range s.BG {
		enc := s.BG[i].Encode()
		copy(out[i*8:], enc[:])
	}
	return out
}

// EncodeOBJ returns the 64-byte object color-RAM image (8 palettes).
func (s *Set) EncodeOBJ() [64]byte {
	var out [64]byte
	for i := range s.OBJ {
		enc := s.OBJ[i].Encode()
		copy(out[i*8:], enc[:])
	}
	return out
}

func pal(name string, slot byte, c0, c1, c2, c3 Color) Palette {
	return Palette{Name: name, Slot: slot, Colors: [4]Color{c0, c1, c2, c3}}
}

// DefaultSet returns the built-in palette configuration used when no
// external configuration is supplied (viewer and tests).
func DefaultSet() *Set {
	s := &Set{}
	s.BG[0] = pal("floor", 0, 0x7FFF, 0x5294, 0x2108, 0x0000)
	s.BG[1] = pal("items", 1, 0x7FFF, 0x03FF, 0x0157, 0x0000)
	s.BG[2] = pal("bg2", 2, 0x7FFF, 0x5294, 0x2108, 0x0000)
	s.BG[3] = pal("bg3", 3, 0x7FFF, 0x5294, 0x2108, 0x0000)
	s.BG[4] = pal("bg4", 4, 0x7FFF, 0x5294, 0x2108, 0x0000)
	s.BG[5] = pal("bg5", 5, 0x7FFF, 0x5294, 0x2108, 0x0000)
	s.BG[6] = pal("wall", 6, 0x7FFF, 0x6318, 0x3A0C, 0x0000)
	s.BG[7] = pal("bg7", 7, 0x7FFF, 0x5294, 0x2108, 0x0000)

	s.OBJ[0] = pal("enemy-shot", 0, 0x0000, 0x7C1F, 0x5817, 0x3010)
	s.OBJ[1] = pal("form-a", 1, 0x0000, 0x03E0, 0x01C0, 0x0000)
	s.OBJ[2] = pal("form-b", 2, 0x0000, 0x2EBE, 0x511F, 0x0842)
	s.OBJ[3] = pal("player-shot", 3, 0x0000, 0x001F, 0x0017, 0x000F)
	s.OBJ[4] = pal("flyer", 4, 0x0000, 0x03FF, 0x00DF, 0x0000)
	s.OBJ[5] = pal("ground", 5, 0x0000, 0x02A0, 0x0160, 0x0000)
	s.OBJ[6] = pal("humanoid", 6, 0x0000, 0x7C1F, 0x4C0F, 0x0000)
	s.OBJ[7] = pal("aquatic", 7, 0x0000, 0x7FE0, 0x3CC0, 0x0000)

	bossSlots := [8]byte{6, 7, 6, 4, 6, 5, 6, 6}
	for i := range s.Boss {
		s.Boss[i] = BossEntry{
			Palette: pal("boss", bossSlots[i], 0x0000, 0x7FFF, 0x5294, 0x2108),
			Slot:    bossSlots[i],
		}
	}

	s.Powerup[0] = pal("spiral-shot", 0, 0x0000, 0x7FE0, 0x5EC0, 0x3E80)
	s.Powerup[1] = pal("shield-shot", 0, 0x0000, 0x03FF, 0x02BF, 0x019F)
	s.Powerup[2] = pal("turbo-shot", 0, 0x0000, 0x00FF, 0x00BF, 0x005F)

	s.FormFlight[0] = pal("form-a-flight", 1, 0x0000, 0x7FE0, 0x4EC0, 0x2D80)
	s.FormFlight[1] = pal("form-b-flight", 2, 0x0000, 0x7C1F, 0x5817, 0x3010)
	return s
}
