package sim

import "github.com/vovakirdan/starfighter/internal/core"

// SpriteKind tells the presenter what a handle draws.
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteBullet
)

func (k SpriteKind) String() string {
	switch k {
	case SpriteShip:
		return "ship"
	case SpriteBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Handle identifies a presentation resource. The zero Handle means none.
type Handle int

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// Presenter receives sprite lifecycle events. Acquire and Release are called
// exactly on spawn and despawn; Reposition and SetFrame in between.
type Presenter interface {
	Acquire(kind SpriteKind, pos core.Point) Handle
	Reposition(h Handle, pos core.Point)
	SetFrame(h Handle, frame int)
	Release(h Handle)
}

// Effect is a sound effect id.
type Effect int

// EffectLaser is played for every accepted shot. Ids below 64 are reserved for music.
const EffectLaser Effect = 64

// Audio triggers sound effects. Play must not block.
type Audio interface {
	Play(effect Effect)
}

// Scroller consumes the ship's deflection to offset background layers.
type Scroller interface {
	Scroll(delta core.Point)
}

// Sinks bundles the collaborators a World reports to. Nil members are
// replaced with no-op implementations.
type Sinks struct {
	Presenter Presenter
	Audio     Audio
	Scroller  Scroller
}

func (s Sinks) withDefaults() Sinks {
	if s.Presenter == nil {
		s.Presenter = NopPresenter{}
	}
	if s.Audio == nil {
		s.Audio = NopAudio{}
	}
	if s.Scroller == nil {
		s.Scroller = NopScroller{}
	}
	return s
}

// NopPresenter hands out a single shared handle and draws nothing.
type NopPresenter struct{}

func (NopPresenter) Acquire(SpriteKind, core.Point) Handle { return 1 }
func (NopPresenter) Reposition(Handle, core.Point)         {}
func (NopPresenter) SetFrame(Handle, int)                  {}
func (NopPresenter) Release(Handle)                        {}

// NopAudio is silent.
type NopAudio struct{}

func (NopAudio) Play(Effect) {}

// NopScroller discards deflection.
type NopScroller struct{}

func (NopScroller) Scroll(core.Point) {}
