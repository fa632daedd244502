package engine

import "github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"

// Sprite-table geometry: 40 slots of 4 bytes {Y, X, tile, attributes},
// palette in the attribute byte's low 3 bits.
const (
	SpriteSlots     = 40
	spriteEntrySize = 4
	spriteTileOff   = 2
	spriteAttrOff   = 3
	spritePalMask   = 0x07
)

// Shadow recolors the palette field of every sprite slot each cycle. Both
// staging buffers are written, not just the one about to be copied, so the
// bulk copy to the live sprite table matches no matter which buffer the
// game sends; skipping the idle one shows a one-cycle palette mismatch
// when the buffers swap. Cost is bounded and small, so no incremental
// sweep is needed here.
type Shadow struct {
	Gate    Gate
	Cls     *classify.Classifier
	Buffers [][]byte
}

// RunCycle classifies every slot in every buffer, preserving the attribute
// bits outside the palette field.
func (s *Shadow) RunCycle(ctx classify.Context) {
	for _, buf := range s.Buffers {
		for slot := 0; slot < SpriteSlots; slot++ {
			at := slot*spriteEntrySize + spriteAttrOff
			if at >= len(buf) {
				break
			}
			if !s.Gate.AwaitSafe() {
				continue
			}
			tile := buf[slot*spriteEntrySize+spriteTileOff]
			pal := s.Cls.Classify(tile, ctx, classify.Object, slot)
			buf[at] = buf[at]&^spritePalMask | pal&spritePalMask
		}
	}
}
