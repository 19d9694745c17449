package starfighter

import (
	"github.com/vovakirdan/starfighter/internal/core"
	"github.com/vovakirdan/starfighter/internal/sim"
)

type sprite struct {
	kind  sim.SpriteKind
	pos   core.Point
	frame int
}

// spriteTable is the presenter the world reports to. It only records state;
// drawing happens in Render.
type spriteTable struct {
	next sim.Handle
	live map[sim.Handle]*sprite
}

func newSpriteTable() *spriteTable {
	return &spriteTable{live: make(map[sim.Handle]*sprite)}
}

func (t *spriteTable) Acquire(kind sim.SpriteKind, pos core.Point) sim.Handle {
	t.next++
	t.live[t.next] = &sprite{kind: kind, pos: pos}
	return t.next
}

func (t *spriteTable) Reposition(h sim.Handle, pos core.Point) {
	if s, ok := t.live[h]; ok {
		s.pos = pos
	}
}

func (t *spriteTable) SetFrame(h sim.Handle, frame int) {
	if s, ok := t.live[h]; ok {
		s.frame = frame
	}
}

func (t *spriteTable) Release(h sim.Handle) {
	delete(t.live, h)
}

// count returns how many live sprites are of the given kind.
func (t *spriteTable) count(kind sim.SpriteKind) int {
	n := 0
	for _, s := range t.live {
		if s.kind == kind {
			n++
		}
	}
	return n
}

// Ship arrows, one per 45°, counterclockwise from up like the rotation index.
var shipGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// shipGlyph picks the arrow nearest to a rotation index.
func shipGlyph(rot int) rune {
	octant := (rot*8 + sim.Steps/2) / sim.Steps
	return shipGlyphs[octant%8]
}

const bulletGlyph = '•'

// draw renders bullets, then the ship on top.
func (t *spriteTable) draw(dst *core.Screen, l layout) {
	for _, s := range t.live {
		if s.kind != sim.SpriteBullet {
			continue
		}
		c := l.toCell(s.pos)
		dst.SetColored(c.X, c.Y, bulletGlyph, core.ColorBrightYellow)
	}
	for _, s := range t.live {
		if s.kind != sim.SpriteShip {
			continue
		}
		c := l.toCell(s.pos)
		dst.SetColored(c.X, c.Y, shipGlyph(s.frame), core.ColorBrightCyan)
	}
}

var _ sim.Presenter = (*spriteTable)(nil)
