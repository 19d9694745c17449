package sim

import "testing"

func TestTablesWrap(t *testing.T) {
	if sinTable[Steps] != sinTable[0] {
		t.Errorf("sinTable[%d] = %d, expected %d", Steps, sinTable[Steps], sinTable[0])
	}
	if cosTable[Steps] != cosTable[0] {
		t.Errorf("cosTable[%d] = %d, expected %d", Steps, cosTable[Steps], cosTable[0])
	}
}

func TestTablesOnCircle(t *testing.T) {
	// Rounded table entries stay within 1% of the radius squared.
	const tolerance = Scale * Scale / 100
	for i := RotationIndex(0); i < Steps; i++ {
		s, c := Sine(i), Cosine(i)
		r2 := s*s + c*c
		if d := r2 - Scale*Scale; d > tolerance || d < -tolerance {
			t.Errorf("index %d: sin²+cos² = %d, expected about %d", i, r2, Scale*Scale)
		}
	}
}

func TestTableQuadrants(t *testing.T) {
	tests := []struct {
		i        RotationIndex
		sin, cos int
	}{
		{0, 0, 255},
		{6, 255, 0},
		{12, 0, -255},
		{18, -255, 0},
		{3, 180, 180},
	}

	for _, tc := range tests {
		if Sine(tc.i) != tc.sin || Cosine(tc.i) != tc.cos {
			t.Errorf("index %d = (%d, %d), expected (%d, %d)", tc.i, Sine(tc.i), Cosine(tc.i), tc.sin, tc.cos)
		}
	}
}

func TestRotationIndexWrap(t *testing.T) {
	if got := RotationIndex(Steps - 1).Next(); got != 0 {
		t.Errorf("Next() from %d = %d, expected 0", Steps-1, got)
	}
	if got := RotationIndex(0).Prev(); got != Steps-1 {
		t.Errorf("Prev() from 0 = %d, expected %d", got, Steps-1)
	}

	r := RotationIndex(0)
	for i := 0; i < 1000; i++ {
		r = r.Next()
		if !r.Valid() {
			t.Fatalf("Next() produced invalid index %d", r)
		}
	}
	if r != 1000%Steps {
		t.Errorf("after 1000 Next() = %d, expected %d", r, 1000%Steps)
	}
	for i := 0; i < 1000; i++ {
		r = r.Prev()
		if !r.Valid() {
			t.Fatalf("Prev() produced invalid index %d", r)
		}
	}
	if r != 0 {
		t.Errorf("Prev() did not undo Next(), got %d", r)
	}
}

func TestSineOutOfRangePanics(t *testing.T) {
	for _, i := range []RotationIndex{-1, Steps, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Sine(%d) should panic", i)
				}
			}()
			Sine(i)
		}()
	}
}

func TestVelocity(t *testing.T) {
	if v := Velocity(0); v.X != 0 || v.Y != -255 {
		t.Errorf("Velocity(0) = %v, expected (0, -255)", v)
	}
	if v := Velocity(6); v.X != -255 || v.Y != 0 {
		t.Errorf("Velocity(6) = %v, expected (-255, 0)", v)
	}
}
