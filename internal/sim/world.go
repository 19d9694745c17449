// Package sim is the fixed-tick simulation core of starfighter: a ship steered
// through 24 table-driven headings with momentum and friction, a fixed pool of
// bullets, and a boundary policy for the play-field edge.
//
// All motion is integer arithmetic with carried fixed-point remainders, so a
// run is bit-reproducible from its input sequence. The package does no I/O;
// rendering, sound and background scrolling are reported through Sinks.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starfighter/internal/core"
)

// Params configures a World.
type Params struct {
	Ship    ShipParams
	Bullets PoolParams

	Start    core.Point   // initial ship position
	Width    int          // field width in logical pixels
	Height   int          // field height in logical pixels
	Boundary BoundaryMode // how the ship meets the field edge
	Inset    core.Point   // scroll mode: distance of the hold rectangle from each edge
}

// DefaultParams returns the classic 320×224 tuning.
func DefaultParams() Params {
	return Params{
		Ship: ShipParams{
			RotationRepeat: 3,
			ThrustLimit:    1024,
			FrictionDelay:  50,
			FrictionSteps:  8,
		},
		Bullets: PoolParams{
			FireInterval: 8,
			MuzzleOffset: core.Pt(4, 4),
		},
		Start:    core.Pt(144, 104),
		Width:    320,
		Height:   224,
		Boundary: BoundaryScroll,
		Inset:    core.Pt(100, 80),
	}
}

// Validate reports the first inconsistent parameter.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("sim: field size %dx%d must be positive", p.Width, p.Height)
	case p.Ship.RotationRepeat < 1:
		return errors.New("sim: rotation repeat must be at least 1")
	case p.Ship.ThrustLimit < 1:
		return errors.New("sim: thrust limit must be positive")
	case p.Ship.FrictionDelay < 0 || p.Ship.FrictionSteps < 0:
		return errors.New("sim: friction delay and steps must not be negative")
	case p.Bullets.FireInterval < 0:
		return errors.New("sim: fire interval must not be negative")
	case p.Boundary != BoundaryScroll && p.Boundary != BoundaryWrap:
		return fmt.Errorf("sim: unknown boundary mode %d", int(p.Boundary))
	}

	field := core.NewRect(0, 0, p.Width, p.Height)
	if !field.StrictlyContains(p.Start) {
		return fmt.Errorf("sim: start position %v outside field %dx%d", p.Start, p.Width, p.Height)
	}
	if p.Boundary == BoundaryScroll {
		if p.Inset.X < 0 || p.Inset.Y < 0 || 2*p.Inset.X >= p.Width || 2*p.Inset.Y >= p.Height {
			return fmt.Errorf("sim: inset %v leaves no room in field %dx%d", p.Inset, p.Width, p.Height)
		}
		if p.Start.X <= p.Inset.X || p.Start.X >= p.Width-p.Inset.X ||
			p.Start.Y <= p.Inset.Y || p.Start.Y >= p.Height-p.Inset.Y {
			return fmt.Errorf("sim: start position %v outside inset %v", p.Start, p.Inset)
		}
	}
	return nil
}

// BulletView is the visible state of one live bullet.
type BulletView struct {
	Slot     int
	Position core.Point
	Heading  RotationIndex
}

// Frame is what one tick produced.
type Frame struct {
	Tick       int
	Position   core.Point
	Rotation   RotationIndex
	Deflection core.Point
	Bullets    []BulletView
	Requested  core.Point
	Thrust     core.Point
	Fire       FireResult
}

// Stats accumulates over the life of a World.
type Stats struct {
	Ticks        int
	ShotsFired   int
	ShotsDropped int
	Distance     int // Manhattan length of every tentative ship move, deflected or not
}

// World owns the complete simulation state. It is not safe for concurrent use;
// a tick always runs to completion on the caller's goroutine.
type World struct {
	params Params
	sinks  Sinks
	policy BoundaryPolicy
	field  core.Rect

	ship       Ship
	shipHandle Handle
	pool       Pool

	tick  int
	stats Stats
}

// NewWorld validates params, places the ship and acquires its sprite.
func NewWorld(params Params, sinks Sinks) (*World, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	sinks = sinks.withDefaults()
	w := &World{
		params: params,
		sinks:  sinks,
		policy: NewBoundaryPolicy(params.Boundary, params.Width, params.Height, params.Inset),
		field:  core.NewRect(0, 0, params.Width, params.Height),
		ship:   NewShip(params.Start),
		pool:   NewPool(),
	}
	w.shipHandle = sinks.Presenter.Acquire(SpriteShip, w.ship.Position)
	sinks.Presenter.SetFrame(w.shipHandle, int(w.ship.Rotation))
	return w, nil
}

// Step runs one tick with the given held buttons.
func (w *World) Step(b core.Buttons) Frame {
	w.tick++

	// Shots leave from where the ship was at the start of the tick, along its
	// freshly steered heading.
	w.ship.Steer(b, w.params.Ship)
	fire := FireIgnored
	if b.Has(core.ButtonFire) {
		fire = w.pool.Fire(w.ship.Rotation, w.ship.Position, w.params.Bullets, w.sinks.Audio)
	}
	w.pool.Tick()

	before := w.ship.Position
	tentative := w.ship.Move(w.params.Ship)
	var deflection core.Point
	w.ship.Position, deflection = w.policy.Apply(before, tentative)
	if w.params.Boundary == BoundaryScroll {
		w.sinks.Scroller.Scroll(deflection)
	}

	w.sinks.Presenter.SetFrame(w.shipHandle, int(w.ship.Rotation))
	w.sinks.Presenter.Reposition(w.shipHandle, w.ship.Position)

	w.pool.Advance(w.field, w.sinks.Presenter)

	w.stats.Ticks++
	w.stats.Distance += tentative.Sub(before).Manhattan()
	switch fire {
	case FireFired:
		w.stats.ShotsFired++
	case FireDropped:
		w.stats.ShotsDropped++
	}

	return w.frame(deflection, fire)
}

func (w *World) frame(deflection core.Point, fire FireResult) Frame {
	f := Frame{
		Tick:       w.tick,
		Position:   w.ship.Position,
		Rotation:   w.ship.Rotation,
		Deflection: deflection,
		Requested:  w.ship.Requested,
		Thrust:     w.ship.Thrust,
		Fire:       fire,
	}
	for i := range w.pool.slots {
		b := &w.pool.slots[i]
		if rot, ok := b.Heading.Get(); ok {
			f.Bullets = append(f.Bullets, BulletView{Slot: b.Slot, Position: b.Position, Heading: rot})
		}
	}
	return f
}

// Ship returns a copy of the ship state.
func (w *World) Ship() Ship {
	return w.ship
}

// Pool returns the bullet pool. Callers must not mutate it.
func (w *World) Pool() *Pool {
	return &w.pool
}

// Stats returns the accumulated statistics.
func (w *World) Stats() Stats {
	return w.stats
}

// Params returns the parameters the world was built with.
func (w *World) Params() Params {
	return w.params
}

// Tick returns the number of completed ticks.
func (w *World) Tick() int {
	return w.tick
}

// Close releases every sprite the world still holds.
func (w *World) Close() {
	w.pool.Reset(w.sinks.Presenter)
	if w.shipHandle != NoHandle {
		w.sinks.Presenter.Release(w.shipHandle)
		w.shipHandle = NoHandle
	}
}
