package sim

import "github.com/vovakirdan/starfighter/internal/core"

// PoolSize is the number of bullet slots.
const PoolSize = 8

// Heading is an optional rotation index. A bullet slot is live exactly when
// its heading is set, and the heading never changes while it is.
type Heading struct {
	rot RotationIndex
	set bool
}

// HeadingOf returns a set heading.
func HeadingOf(r RotationIndex) Heading {
	return Heading{rot: r, set: true}
}

// Get returns the rotation index and whether the heading is set.
func (h Heading) Get() (RotationIndex, bool) {
	return h.rot, h.set
}

// Bullet is one pool slot.
type Bullet struct {
	Slot      int
	Heading   Heading
	Position  core.Point
	Remainder core.Point

	fresh  bool
	handle Handle
}

// Active reports whether the slot holds a live bullet.
func (b *Bullet) Active() bool {
	return b.Heading.set
}

// FireResult describes what happened to a fire request.
type FireResult int

const (
	FireIgnored  FireResult = iota // no fire input this tick
	FireCooldown                   // fire-rate timer not yet expired
	FireDropped                    // target slot still occupied
	FireFired
)

func (r FireResult) String() string {
	switch r {
	case FireIgnored:
		return "ignored"
	case FireCooldown:
		return "cooldown"
	case FireDropped:
		return "dropped"
	case FireFired:
		return "fired"
	default:
		return "unknown"
	}
}

// PoolParams tunes the bullet pool.
type PoolParams struct {
	FireInterval int        // the timer must exceed this before a shot is accepted
	MuzzleOffset core.Point // spawn offset from the ship position
}

// Pool is a fixed arena of bullet slots reused round-robin.
// There is no free-list: a shot always targets the slot under the cursor and
// is dropped if that slot is still in flight.
type Pool struct {
	slots  [PoolSize]Bullet
	cursor int
	timer  int
}

// NewPool returns an empty pool.
func NewPool() Pool {
	var p Pool
	for i := range p.slots {
		p.slots[i].Slot = i
	}
	return p
}

// Fire requests a shot along rot from the ship at shipPos.
func (p *Pool) Fire(rot RotationIndex, shipPos core.Point, params PoolParams, audio Audio) FireResult {
	if p.timer <= params.FireInterval {
		return FireCooldown
	}
	p.timer = 0

	b := &p.slots[p.cursor]
	if b.Active() {
		return FireDropped
	}
	mustValid(rot)
	b.Heading = HeadingOf(rot)
	b.Position = shipPos.Add(params.MuzzleOffset)
	b.Remainder = core.Point{}
	b.fresh = true
	p.cursor = (p.cursor + 1) % PoolSize
	audio.Play(EffectLaser)
	return FireFired
}

// Tick advances the fire-rate timer. Called once per tick regardless of input.
func (p *Pool) Tick() {
	p.timer++
}

// Advance moves every live bullet one tick. A bullet that leaves the open
// field rectangle is despawned and its sprite released.
func (p *Pool) Advance(field core.Rect, pres Presenter) {
	for i := range p.slots {
		b := &p.slots[i]
		rot, ok := b.Heading.Get()
		if !ok {
			continue
		}
		if b.fresh {
			b.handle = pres.Acquire(SpriteBullet, b.Position)
			b.fresh = false
		}

		var delta core.Point
		delta, b.Remainder = IntegratePoint(Velocity(rot), b.Remainder, BulletShift)
		b.Position = b.Position.Add(delta)

		if field.StrictlyContains(b.Position) {
			pres.Reposition(b.handle, b.Position)
			continue
		}
		pres.Release(b.handle)
		b.handle = NoHandle
		b.Heading = Heading{}
	}
}

// Active returns the number of live bullets.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active() {
			n++
		}
	}
	return n
}

// Slots returns a copy of the pool slots.
func (p *Pool) Slots() [PoolSize]Bullet {
	return p.slots
}

// Cursor returns the slot the next shot will target.
func (p *Pool) Cursor() int {
	return p.cursor
}

// Timer returns the ticks counted since the last accepted fire request.
func (p *Pool) Timer() int {
	return p.timer
}

// Reset releases every live bullet and clears the pool.
func (p *Pool) Reset(pres Presenter) {
	for i := range p.slots {
		if p.slots[i].handle != NoHandle {
			pres.Release(p.slots[i].handle)
		}
	}
	*p = NewPool()
}
