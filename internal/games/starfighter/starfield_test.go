package starfighter

import (
	"testing"

	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/core"
)

func TestStarfieldDeterministic(t *testing.T) {
	a := NewStarfield(7, 64, 32, 2, 4, 0.1, 0.2)
	b := NewStarfield(7, 64, 32, 2, 4, 0.1, 0.2)
	c := NewStarfield(8, 64, 32, 2, 4, 0.1, 0.2)

	same, differs := true, false
	for i := range a.near.stars {
		if a.near.stars[i] != b.near.stars[i] || a.far.stars[i] != b.far.stars[i] {
			same = false
		}
		if a.near.stars[i] != c.near.stars[i] {
			differs = true
		}
	}
	if !same {
		t.Error("same seed produced different starfields")
	}
	if !differs {
		t.Error("different seeds produced identical near layers")
	}
}

func TestStarfieldParallax(t *testing.T) {
	s := NewStarfield(1, 64, 32, 2, 4, 0, 0)

	s.Scroll(core.Pt(-3, 5))
	s.Scroll(core.Pt(-4, 3))
	if s.Camera() != core.Pt(-7, 8) {
		t.Fatalf("Camera() = %v, expected (-7, 8)", s.Camera())
	}
	if got := s.offset(s.near); got != core.Pt(-4, 4) {
		t.Errorf("near offset = %v, expected (-4, 4)", got)
	}
	if got := s.offset(s.far); got != core.Pt(-2, 2) {
		t.Errorf("far offset = %v, expected (-2, 2)", got)
	}
}

func TestStarfieldDrawWraps(t *testing.T) {
	s := NewStarfield(1, 4, 2, 1, 1, 0, 0)
	s.near.stars[0] = true // tile (0, 0)

	l := newLayout(40, 12, config.DefaultStarfighterConfig().Field)
	screen := core.NewScreen(40, 12)
	s.draw(screen, l)

	// The 4x2 map tiles the 40x10 play area.
	for _, c := range []core.Point{{X: 0, Y: 2}, {X: 4, Y: 2}, {X: 0, Y: 4}, {X: 36, Y: 10}} {
		if screen.Get(c.X, c.Y) != '*' {
			t.Errorf("expected a star at %v", c)
		}
	}
	if screen.Get(1, 2) != ' ' {
		t.Error("unexpected star at (1, 2)")
	}

	// Scrolling one cell right moves the star one column left.
	s.Scroll(core.Pt(4, 0))
	screen.Clear()
	s.draw(screen, l)
	if screen.Get(3, 2) != '*' || screen.Get(0, 2) == '*' {
		t.Errorf("row after scroll = %q", screen.Row(2))
	}
}
