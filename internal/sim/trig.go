package sim

import "fmt"

// Steps is the number of unique headings; Scale is the amplitude of the tables.
const (
	Steps = 24
	Scale = 255
)

// Entry Steps repeats entry 0 so a table walk can wrap without a modulo.
var sinTable = [Steps + 1]int{
	0, 65, 127, 180, 220, 246, 255, 246, 220, 180, 127, 65,
	0, -65, -127, -180, -220, -246, -255, -246, -220, -180, -127, -65,
	0,
}

var cosTable = [Steps + 1]int{
	255, 246, 220, 180, 127, 65, 0, -65, -127, -180, -220, -246,
	-255, -246, -220, -180, -127, -65, 0, 65, 127, 180, 220, 246,
	255,
}

// RotationIndex is a quantized heading in [0, Steps-1].
// Index 0 points up the screen; increasing indices turn counterclockwise.
type RotationIndex int

// Valid reports whether r addresses a table row.
func (r RotationIndex) Valid() bool {
	return r >= 0 && r < Steps
}

// Next returns the following heading, wrapping Steps-1 to 0.
func (r RotationIndex) Next() RotationIndex {
	if r >= Steps-1 {
		return 0
	}
	return r + 1
}

// Prev returns the preceding heading, wrapping 0 to Steps-1.
func (r RotationIndex) Prev() RotationIndex {
	if r <= 0 {
		return Steps - 1
	}
	return r - 1
}

func mustValid(r RotationIndex) {
	if !r.Valid() {
		panic(fmt.Sprintf("sim: rotation index %d out of range [0, %d]", r, Steps-1))
	}
}

// Sine returns Scale*sin(2πr/Steps) from the table.
// It panics if r is out of range.
func Sine(r RotationIndex) int {
	mustValid(r)
	return sinTable[r]
}

// Cosine returns Scale*cos(2πr/Steps) from the table.
// It panics if r is out of range.
func Cosine(r RotationIndex) int {
	mustValid(r)
	return cosTable[r]
}
