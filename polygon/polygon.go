// Package polygon validates closed polygon boundaries.
package polygon

import (
	"errors"
	"fmt"

	"polycheck/geom"
)

// Sequence is an ordered polygon boundary. After Close it satisfies:
// first == last, length >= 4, no equal adjacent points (Validate checks the
// latter two).
type Sequence []geom.Point

// ErrTooFewPoints reports a closed sequence shorter than a triangle plus its
// closure point.
var ErrTooFewPoints = errors.New("a polygon needs at least 3 distinct points plus the closing point")

// DuplicatePointError reports two exactly-equal consecutive points.
type DuplicatePointError struct {
	Index int
	A, B  geom.Point
}

func (e *DuplicatePointError) Error() string {
	return fmt.Sprintf("consecutive duplicate points at index %d: (%g, %g), (%g, %g)",
		e.Index, e.A.X, e.A.Y, e.B.X, e.B.Y)
}

// Close appends a copy of the first point if the boundary does not already
// end on it. Closing an already-closed sequence is a no-op; so is closing an
// empty one.
func (s Sequence) Close() Sequence {
	if len(s) == 0 {
		return s
	}
	if s[0] != s[len(s)-1] {
		s = append(s, s[0])
	}
	return s
}

// Validate checks the structural rules on a closed sequence: minimum length
// first, then absence of consecutive duplicates. It returns on the first
// violation and never mutates the sequence.
func (s Sequence) Validate() error {
	if len(s) < 4 {
		return fmt.Errorf("%w: got %d points", ErrTooFewPoints, len(s))
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] == s[i+1] {
			return &DuplicatePointError{Index: i, A: s[i], B: s[i+1]}
		}
	}
	return nil
}

// Area returns the signed shoelace area of the closed boundary. Positive
// area means counter-clockwise winding.
func (s Sequence) Area() float64 {
	var area float64
	for i := 0; i+1 < len(s); i++ {
		area += s[i].X*s[i+1].Y - s[i+1].X*s[i].Y
	}
	return area / 2
}

// Orientation reports the winding of the closed boundary as
// "counter-clockwise", "clockwise", or "degenerate" for zero area.
func (s Sequence) Orientation() string {
	switch area := s.Area(); {
	case area > 0:
		return "counter-clockwise"
	case area < 0:
		return "clockwise"
	default:
		return "degenerate"
	}
}
