package starfighter

import (
	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/core"
)

// Screen requirements.
const (
	hudRows    = 2
	MinScreenW = 40
	MinScreenH = 12
)

// layout maps the logical play field onto terminal cells below the HUD.
type layout struct {
	cols, rows   int // play area in cells
	top          int // first play row
	cellW, cellH int // logical pixels per cell
}

func newLayout(screenW, screenH int, field config.FieldConfig) layout {
	return layout{
		cols:  screenW,
		rows:  screenH - hudRows,
		top:   hudRows,
		cellW: field.CellWidth,
		cellH: field.CellHeight,
	}
}

// size returns the play field in logical pixels.
func (l layout) size() (w, h int) {
	return l.cols * l.cellW, l.rows * l.cellH
}

// toCell maps a logical position to a screen cell.
func (l layout) toCell(p core.Point) core.Point {
	return core.Pt(core.FloorDiv(p.X, l.cellW), core.FloorDiv(p.Y, l.cellH)+l.top)
}

// inset shrinks the configured scroll inset to a third of the field on small screens.
func (l layout) inset(field config.FieldConfig) core.Point {
	w, h := l.size()
	return core.Pt(core.Min(field.InsetX, w/3), core.Min(field.InsetY, h/3))
}
