package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/starfighter/internal/core"
)

func newTestWorld(t *testing.T, p Params) (*World, *recordingPresenter, *recordingAudio, *recordingScroller) {
	t.Helper()
	pres := newRecordingPresenter()
	audio := &recordingAudio{}
	scroll := &recordingScroller{}
	w, err := NewWorld(p, Sinks{Presenter: pres, Audio: audio, Scroller: scroll})
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w, pres, audio, scroll
}

func scriptedButtons(seed int64, n int) []core.Buttons {
	rng := rand.New(rand.NewSource(seed))
	out := make([]core.Buttons, n)
	held := core.Buttons(0)
	for i := range out {
		// Change the held set every few ticks, like a player would.
		if i%13 == 0 {
			held = core.Buttons(rng.Intn(32))
		}
		out[i] = held
	}
	return out
}

func TestNewWorldAcquiresShip(t *testing.T) {
	w, pres, _, _ := newTestWorld(t, DefaultParams())

	if len(pres.events) < 1 || pres.events[0].op != "acquire" || pres.events[0].kind != SpriteShip {
		t.Fatalf("first event = %+v, expected ship acquire", pres.events)
	}
	if pres.events[0].pos != core.Pt(144, 104) {
		t.Errorf("ship acquired at %v, expected (144, 104)", pres.events[0].pos)
	}
	if w.Ship().Position != core.Pt(144, 104) || w.Ship().Rotation != 0 {
		t.Errorf("initial ship = %+v", w.Ship())
	}
}

func TestNewWorldRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"zero rotation repeat", func(p *Params) { p.Ship.RotationRepeat = 0 }},
		{"zero thrust limit", func(p *Params) { p.Ship.ThrustLimit = 0 }},
		{"negative fire interval", func(p *Params) { p.Bullets.FireInterval = -1 }},
		{"start outside field", func(p *Params) { p.Start = core.Pt(400, 10) }},
		{"inset too large", func(p *Params) { p.Inset = core.Pt(160, 80) }},
		{"start outside inset", func(p *Params) { p.Start = core.Pt(50, 104) }},
		{"unknown boundary", func(p *Params) { p.Boundary = BoundaryMode(7) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.modify(&p)
			if _, err := NewWorld(p, Sinks{}); err == nil {
				t.Error("NewWorld() should fail")
			}
		})
	}

	// Wrap mode ignores the inset.
	p := DefaultParams()
	p.Boundary = BoundaryWrap
	p.Start = core.Pt(50, 20)
	if err := p.Validate(); err != nil {
		t.Errorf("wrap mode Validate() error = %v", err)
	}
}

func TestWorldFireScenario(t *testing.T) {
	w, pres, audio, _ := newTestWorld(t, DefaultParams())

	for i := 0; i < 9; i++ {
		f := w.Step(0)
		if len(f.Bullets) != 0 {
			t.Fatalf("tick %d: unexpected bullets", f.Tick)
		}
	}

	f := w.Step(core.ButtonFire)
	if f.Fire != FireFired {
		t.Fatalf("Fire = %v, expected fired", f.Fire)
	}
	if len(f.Bullets) != 1 {
		t.Fatalf("bullets = %v, expected exactly one", f.Bullets)
	}
	b := f.Bullets[0]
	if b.Slot != 0 || b.Heading != 0 {
		t.Errorf("bullet = %+v, expected slot 0 heading 0", b)
	}
	// Spawned at the muzzle (148, 108), then advanced once: -255>>6 = -4.
	if b.Position != core.Pt(148, 104) {
		t.Errorf("bullet position = %v, expected (148, 104)", b.Position)
	}
	if len(audio.played) != 1 || audio.played[0] != EffectLaser {
		t.Errorf("audio = %v, expected one laser", audio.played)
	}
	if len(pres.live) != 2 {
		t.Errorf("live sprites = %d, expected ship and bullet", len(pres.live))
	}

	// Holding fire yields one shot per 9 ticks.
	shots := 1
	for i := 0; i < 90; i++ {
		if w.Step(core.ButtonFire).Fire == FireFired {
			shots++
		}
	}
	if shots != 11 {
		t.Errorf("shots = %d, expected 11", shots)
	}
	if w.Stats().ShotsFired != shots {
		t.Errorf("Stats().ShotsFired = %d, expected %d", w.Stats().ShotsFired, shots)
	}
}

func TestWorldScrollsAtInset(t *testing.T) {
	p := DefaultParams()
	w, _, _, scroll := newTestWorld(t, p)

	for i := 0; i < 600; i++ {
		f := w.Step(core.ButtonThrust)
		if f.Position.Y <= p.Inset.Y || f.Position.Y >= p.Height-p.Inset.Y {
			t.Fatalf("tick %d: ship at %v left the inset", f.Tick, f.Position)
		}
	}
	if scroll.calls != 600 {
		t.Errorf("Scroll called %d times, expected every tick", scroll.calls)
	}
	if scroll.total.Y >= 0 {
		t.Errorf("scroll total = %v, expected upward deflection", scroll.total)
	}
	if scroll.total.X != 0 {
		t.Errorf("scroll total = %v, expected no horizontal deflection", scroll.total)
	}
}

func TestWorldWrapNeverScrolls(t *testing.T) {
	p := DefaultParams()
	p.Boundary = BoundaryWrap
	w, _, _, scroll := newTestWorld(t, p)

	for _, b := range scriptedButtons(7, 3000) {
		f := w.Step(b)
		if f.Position.X < 0 || f.Position.X >= p.Width || f.Position.Y < 0 || f.Position.Y >= p.Height {
			t.Fatalf("tick %d: ship at %v outside the field", f.Tick, f.Position)
		}
		if !f.Deflection.IsZero() {
			t.Fatalf("tick %d: wrap deflected by %v", f.Tick, f.Deflection)
		}
	}
	if scroll.calls != 0 {
		t.Errorf("Scroll called %d times in wrap mode", scroll.calls)
	}
}

func TestWorldWrapNarrowField(t *testing.T) {
	p := DefaultParams()
	p.Boundary = BoundaryWrap
	p.Width, p.Height = 2, 200
	p.Start = core.Pt(1, 100)
	w, _, _, _ := newTestWorld(t, p)

	for _, b := range scriptedButtons(3, 2000) {
		f := w.Step(b | core.ButtonThrust)
		if f.Position.X < 0 || f.Position.X >= p.Width || f.Position.Y < 0 || f.Position.Y >= p.Height {
			t.Fatalf("tick %d: ship at %v outside the %dx%d field", f.Tick, f.Position, p.Width, p.Height)
		}
	}
}

func TestWorldInvariants(t *testing.T) {
	for _, mode := range []BoundaryMode{BoundaryScroll, BoundaryWrap} {
		t.Run(mode.String(), func(t *testing.T) {
			p := DefaultParams()
			p.Boundary = mode
			w, pres, audio, _ := newTestWorld(t, p)

			for _, b := range scriptedButtons(42, 5000) {
				f := w.Step(b)
				if !f.Rotation.Valid() {
					t.Fatalf("tick %d: rotation %d", f.Tick, f.Rotation)
				}
				if len(f.Bullets) > PoolSize {
					t.Fatalf("tick %d: %d bullets", f.Tick, len(f.Bullets))
				}
				if len(pres.live) != 1+len(f.Bullets) {
					t.Fatalf("tick %d: %d live sprites for %d bullets", f.Tick, len(pres.live), len(f.Bullets))
				}
				rem := w.Ship().Remainder
				if rem.X < 0 || rem.X >= 1<<ShipShift || rem.Y < 0 || rem.Y >= 1<<ShipShift {
					t.Fatalf("tick %d: ship remainder %v", f.Tick, rem)
				}
				for _, s := range w.Pool().Slots() {
					if s.Active() != (s.handle != NoHandle) {
						t.Fatalf("tick %d: slot %d active=%v handle=%d", f.Tick, s.Slot, s.Active(), s.handle)
					}
				}
			}

			st := w.Stats()
			if st.Ticks != 5000 {
				t.Errorf("Stats().Ticks = %d", st.Ticks)
			}
			if st.ShotsFired != len(audio.played) {
				t.Errorf("ShotsFired %d != laser plays %d", st.ShotsFired, len(audio.played))
			}
			if st.ShotsFired == 0 || st.Distance == 0 {
				t.Errorf("scripted flight produced no activity: %+v", st)
			}

			w.Close()
			if len(pres.live) != 0 {
				t.Errorf("live sprites after Close: %v", pres.live)
			}
		})
	}
}

func TestWorldDeterministic(t *testing.T) {
	script := scriptedButtons(1234, 4000)

	run := func() []Frame {
		w, err := NewWorld(DefaultParams(), Sinks{})
		if err != nil {
			t.Fatalf("NewWorld() error = %v", err)
		}
		frames := make([]Frame, 0, len(script))
		for _, b := range script {
			frames = append(frames, w.Step(b))
		}
		return frames
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs with the same input diverged")
	}
}

func TestWorldShipFrameFollowsRotation(t *testing.T) {
	w, pres, _, _ := newTestWorld(t, DefaultParams())

	for i := 0; i < 4; i++ {
		w.Step(core.ButtonLeft)
	}
	last := spriteEvent{}
	for _, e := range pres.events {
		if e.op == "frame" {
			last = e
		}
	}
	if last.frame != 1 || last.handle != 1 {
		t.Errorf("last frame event = %+v, expected frame 1 on the ship handle", last)
	}
	if w.Tick() != 4 {
		t.Errorf("Tick() = %d, expected 4", w.Tick())
	}
}
