package core

import "testing"

func TestButtonsString(t *testing.T) {
	tests := []struct {
		b        Buttons
		expected string
	}{
		{0, "None"},
		{ButtonFire, "Fire"},
		{ButtonLeft | ButtonThrust, "Left+Thrust"},
		{ButtonLeft | ButtonRight | ButtonThrust | ButtonDown | ButtonFire, "Left+Right+Thrust+Down+Fire"},
	}

	for _, tc := range tests {
		if got := tc.b.String(); got != tc.expected {
			t.Errorf("Buttons(%d).String() = %q, expected %q", tc.b, got, tc.expected)
		}
	}
}

func TestButtonsHas(t *testing.T) {
	b := ButtonLeft.With(ButtonFire)

	if !b.Has(ButtonLeft) || !b.Has(ButtonFire) {
		t.Error("Has() should report held buttons")
	}
	if !b.Has(ButtonLeft | ButtonFire) {
		t.Error("Has() should accept a combined mask")
	}
	if b.Has(ButtonLeft | ButtonRight) {
		t.Error("Has() requires every button in the mask")
	}
	if b.Has(0) {
		t.Error("Has(0) should be false")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Hold(ButtonThrust)

	if !f.Has(ActionPause) || f.Has(ActionQuit) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}

	f.Clear()

	if f.Has(ActionPause) || f.Buttons != 0 {
		t.Error("Clear() should drop actions and buttons")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero InputFrame should have no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}

func TestHoldSampler(t *testing.T) {
	s := NewHoldSampler(5)

	if got := s.Sample(0); got != 0 {
		t.Errorf("Sample() before any press = %v, expected None", got)
	}

	s.Press(ButtonLeft, 10)
	for tick := 10; tick < 15; tick++ {
		if got := s.Sample(tick); got != ButtonLeft {
			t.Errorf("Sample(%d) = %v, expected Left", tick, got)
		}
	}
	if got := s.Sample(15); got != 0 {
		t.Errorf("Sample(15) = %v, expected hold to expire", got)
	}

	// Auto-repeat extends the hold
	s.Press(ButtonThrust, 20)
	s.Press(ButtonThrust, 23)
	if got := s.Sample(27); got != ButtonThrust {
		t.Errorf("Sample(27) = %v, expected Thrust", got)
	}

	s.Press(ButtonFire, 27)
	if got := s.Sample(27); got != ButtonThrust|ButtonFire {
		t.Errorf("Sample(27) = %v, expected Thrust+Fire", got)
	}

	s.Release(ButtonThrust)
	if got := s.Sample(28); got != ButtonFire {
		t.Errorf("Sample(28) after Release = %v, expected Fire", got)
	}

	s.Reset()
	if got := s.Sample(28); got != 0 {
		t.Errorf("Sample() after Reset = %v, expected None", got)
	}
}

func TestNewHoldSamplerDefault(t *testing.T) {
	if s := NewHoldSampler(0); s.HoldTicks != DefaultHoldTicks {
		t.Errorf("HoldTicks = %d, expected %d", s.HoldTicks, DefaultHoldTicks)
	}
}
