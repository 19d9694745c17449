package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/starfighter/internal/core"
)

// BoundaryPolicy decides where the ship ends up when it tries to move from
// current to tentative. The deflection is the part of the move that was not
// applied to the ship.
type BoundaryPolicy interface {
	Apply(current, tentative core.Point) (accepted, deflection core.Point)
}

// BoundaryMode selects a BoundaryPolicy.
type BoundaryMode int

const (
	// BoundaryScroll holds the ship inside an inset rectangle and hands the
	// overflow to the scroller.
	BoundaryScroll BoundaryMode = iota
	// BoundaryWrap wraps the ship around the field edges.
	BoundaryWrap
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryScroll:
		return "scroll"
	case BoundaryWrap:
		return "wrap"
	default:
		return fmt.Sprintf("BoundaryMode(%d)", int(m))
	}
}

// ParseBoundary parses "scroll" or "wrap" (case-insensitive). Empty means scroll.
func ParseBoundary(name string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "scroll":
		return BoundaryScroll, nil
	case "wrap":
		return BoundaryWrap, nil
	default:
		return BoundaryScroll, fmt.Errorf("sim: unknown boundary mode %q (want scroll or wrap)", name)
	}
}

// ScrollPolicy accepts a move per axis only while it stays strictly inside
// (X1, X2) × (Y1, Y2). A rejected axis keeps its position and reports the
// attempted displacement as deflection.
type ScrollPolicy struct {
	X1, X2 int
	Y1, Y2 int
}

// NewScrollPolicy builds the inset rectangle for a w×h field.
func NewScrollPolicy(w, h int, inset core.Point) ScrollPolicy {
	return ScrollPolicy{
		X1: inset.X,
		X2: w - inset.X,
		Y1: inset.Y,
		Y2: h - inset.Y,
	}
}

func (p ScrollPolicy) Apply(current, tentative core.Point) (accepted, deflection core.Point) {
	accepted.X, deflection.X = holdAxis(current.X, tentative.X, p.X1, p.X2)
	accepted.Y, deflection.Y = holdAxis(current.Y, tentative.Y, p.Y1, p.Y2)
	return accepted, deflection
}

func holdAxis(cur, try, lo, hi int) (int, int) {
	if try > lo && try < hi {
		return try, 0
	}
	return cur, try - cur
}

// WrapPolicy always accepts the move, then wraps each axis into [0, extent).
// It never deflects.
type WrapPolicy struct {
	W, H int
}

func (p WrapPolicy) Apply(_, tentative core.Point) (accepted, deflection core.Point) {
	return core.Point{X: wrapAxis(tentative.X, p.W), Y: wrapAxis(tentative.Y, p.H)}, core.Point{}
}

// Fields narrower than a tick's displacement can overshoot by several widths.
func wrapAxis(v, extent int) int {
	return core.Mod(v, extent)
}

// NewBoundaryPolicy returns the policy for mode on a w×h field.
func NewBoundaryPolicy(mode BoundaryMode, w, h int, inset core.Point) BoundaryPolicy {
	if mode == BoundaryWrap {
		return WrapPolicy{W: w, H: h}
	}
	return NewScrollPolicy(w, h, inset)
}
