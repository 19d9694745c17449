package starfighter

import (
	"math/rand"

	"github.com/vovakirdan/starfighter/internal/core"
	"github.com/vovakirdan/starfighter/internal/sim"
)

// layer is a wrapping tile map of stars.
type layer struct {
	w, h   int
	stars  []bool
	factor int // parallax divisor: the layer moves 1/factor as fast as the camera
}

func newLayer(rng *rand.Rand, w, h, factor int, density float64) layer {
	l := layer{w: w, h: h, factor: factor, stars: make([]bool, w*h)}
	for i := range l.stars {
		l.stars[i] = rng.Float64() < density
	}
	return l
}

func (l layer) at(x, y int) bool {
	return l.stars[core.Mod(y, l.h)*l.w+core.Mod(x, l.w)]
}

// Starfield is the scrolling background. It consumes the ship's deflection,
// so the scenery moves while the ship is held at the inset edge.
type Starfield struct {
	camera core.Point // accumulated deflection in logical pixels
	near   layer
	far    layer
}

// NewStarfield generates both layers from seed.
func NewStarfield(seed int64, w, h, nearFactor, farFactor int, nearDensity, farDensity float64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	return &Starfield{
		far:  newLayer(rng, w, h, farFactor, farDensity),
		near: newLayer(rng, w, h, nearFactor, nearDensity),
	}
}

// Scroll moves the camera by the deflection.
func (s *Starfield) Scroll(delta core.Point) {
	s.camera = s.camera.Add(delta)
}

// Camera returns the accumulated scroll in logical pixels.
func (s *Starfield) Camera() core.Point {
	return s.camera
}

// offset returns a layer's scroll in logical pixels.
func (s *Starfield) offset(l layer) core.Point {
	return core.Pt(core.FloorDiv(s.camera.X, l.factor), core.FloorDiv(s.camera.Y, l.factor))
}

// draw fills the play area, far layer first.
func (s *Starfield) draw(dst *core.Screen, l layout) {
	for _, ly := range []struct {
		layer layer
		glyph rune
		color core.Color
	}{
		{s.far, '.', core.ColorDim},
		{s.near, '*', core.ColorGray},
	} {
		off := s.offset(ly.layer)
		ox := core.FloorDiv(off.X, l.cellW)
		oy := core.FloorDiv(off.Y, l.cellH)
		for row := 0; row < l.rows; row++ {
			for col := 0; col < l.cols; col++ {
				if ly.layer.at(col+ox, row+oy) {
					dst.SetColored(col, row+l.top, ly.glyph, ly.color)
				}
			}
		}
	}
}

var _ sim.Scroller = (*Starfield)(nil)
