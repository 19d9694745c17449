package sim

import "github.com/vovakirdan/starfighter/internal/core"

// Ship is the player craft.
//
// Requested is the raw thrust velocity for the current tick. Thrust is the
// momentum accumulator that keeps the craft drifting after the stick is
// released and decays in FrictionSteps halvings.
type Ship struct {
	Rotation  RotationIndex
	Position  core.Point
	Requested core.Point
	Remainder core.Point
	Thrust    core.Point

	rotTimer        int
	frictionSteps   int
	frictionCounter int
}

// ShipParams tunes the ship controller.
type ShipParams struct {
	RotationRepeat int // ticks between rotation steps while a turn is held
	ThrustLimit    int // accumulator stays strictly inside (-limit, limit)
	FrictionDelay  int // a decay step happens once the counter exceeds this
	FrictionSteps  int // halvings before momentum is zeroed
}

// NewShip places a ship at pos facing up.
func NewShip(pos core.Point) Ship {
	return Ship{Position: pos}
}

// Steer applies the rotation and thrust input for one tick.
func (s *Ship) Steer(b core.Buttons, p ShipParams) {
	if s.rotTimer >= p.RotationRepeat {
		s.rotTimer = 0
		if b.Has(core.ButtonLeft) {
			s.Rotation = s.Rotation.Next()
		} else if b.Has(core.ButtonRight) {
			s.Rotation = s.Rotation.Prev()
		}
	}
	s.rotTimer++

	s.Requested = core.Point{}
	if b.Has(core.ButtonThrust) {
		s.Requested = Velocity(s.Rotation)
		s.frictionSteps = 0
	}
}

// Move integrates velocity and momentum, updates the accumulator and friction
// state, and returns the tentative position. The caller decides, via a
// BoundaryPolicy, what position is actually accepted.
func (s *Ship) Move(p ShipParams) core.Point {
	var delta core.Point
	v := s.Requested.Add(s.Thrust)
	delta, s.Remainder = IntegratePoint(v, s.Remainder, ShipShift)
	tentative := s.Position.Add(delta)

	s.Thrust.X = accumulate(s.Thrust.X, s.Requested.X, p.ThrustLimit)
	s.Thrust.Y = accumulate(s.Thrust.Y, s.Requested.Y, p.ThrustLimit)

	if s.frictionSteps < p.FrictionSteps && s.frictionCounter > p.FrictionDelay {
		s.frictionSteps++
		s.frictionCounter = 0
		if s.Requested.X == 0 {
			s.Thrust.X >>= 1
		}
		if s.Requested.Y == 0 {
			s.Thrust.Y >>= 1
		}
	}
	if s.frictionSteps >= p.FrictionSteps {
		s.Thrust = core.Point{}
	}
	s.frictionCounter++

	return tentative
}

// accumulate adds a sixteenth of the requested velocity to the momentum.
// Results outside the band are rejected rather than clamped.
func accumulate(thrust, requested, limit int) int {
	candidate := thrust + requested>>4
	if candidate > -limit && candidate < limit {
		return candidate
	}
	return thrust
}

// Step runs a full controller tick: steer, move, then resolve the tentative
// position through policy. It returns the deflection reported by the policy.
func (s *Ship) Step(b core.Buttons, p ShipParams, policy BoundaryPolicy) core.Point {
	s.Steer(b, p)
	tentative := s.Move(p)
	var deflection core.Point
	s.Position, deflection = policy.Apply(s.Position, tentative)
	return deflection
}

// FrictionStep returns how many decay halvings have been applied since thrust was last held.
func (s *Ship) FrictionStep() int {
	return s.frictionSteps
}
