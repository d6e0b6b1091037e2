package polygon

import (
	"testing"

	"polycheck/geom"
)

func TestIsSimple(t *testing.T) {
	tests := []struct {
		name string
		pts  Sequence
		want bool
	}{
		{
			name: "convex quadrilateral",
			pts:  Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
			want: true,
		},
		{
			name: "bowtie",
			pts:  Sequence{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}},
			want: false,
		},
		{
			name: "concave L-shape",
			pts: Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2},
				{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 0, Y: 4}},
			want: true,
		},
		{
			name: "vertex touching a non-adjacent edge",
			pts: Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4},
				{X: 2, Y: 0}, {X: 0, Y: 4}},
			want: false,
		},
		{
			name: "colinear vertex on an edge is fine",
			pts: Sequence{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0},
				{X: 4, Y: 4}, {X: 0, Y: 4}},
			want: true,
		},
		{
			name: "adjacent edges folding back",
			pts:  Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 4}},
			want: false,
		},
		{
			name: "degenerate colinear triangle",
			pts:  Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 6, Y: 0}},
			want: false,
		},
		{
			name: "triangle",
			pts:  Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}},
			want: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.pts.Close()
			if err := s.Validate(); err != nil {
				t.Fatalf("fixture does not validate: %v", err)
			}
			if got := s.IsSimple(geom.DefaultEpsilon); got != tc.want {
				t.Errorf("IsSimple = %v, want %v", got, tc.want)
			}
		})
	}
}

// The tolerance decides whether a near-touch counts as an intersection: a
// vertex 1e-10 above a non-adjacent edge is a touch at the default epsilon
// and a miss at a tighter one.
func TestIsSimpleEpsilon(t *testing.T) {
	const h = 1e-10
	s := Sequence{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4},
		{X: 2, Y: h}, {X: 0, Y: 4}}.Close()
	if err := s.Validate(); err != nil {
		t.Fatalf("fixture does not validate: %v", err)
	}
	if s.IsSimple(geom.DefaultEpsilon) {
		t.Errorf("IsSimple(eps=%g) = true, want false (near-touch within tolerance)", geom.DefaultEpsilon)
	}
	if !s.IsSimple(1e-12) {
		t.Errorf("IsSimple(eps=1e-12) = false, want true (clears the tighter tolerance)")
	}
}

func TestSegmentsIntersect(t *testing.T) {
	eps := geom.DefaultEpsilon
	vs := []struct {
		p1, p2, q1, q2 geom.Point
		want           bool
	}{
		// proper crossing
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 4}, true},
		// clearly apart
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 2}, geom.Point{X: 1, Y: 2}, false},
		// endpoint touch
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 2, Y: 4}, true},
		// colinear overlap
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 6, Y: 0}, true},
		// colinear but disjoint
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 3, Y: 0}, false},
		// parallel
		{geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, geom.Point{X: 0, Y: 1}, geom.Point{X: 4, Y: 1}, false},
	}
	for i, v := range vs {
		if got := segmentsIntersect(v.p1, v.p2, v.q1, v.q2, eps); got != v.want {
			t.Errorf("test=%d segmentsIntersect(%v-%v, %v-%v) = %v, want %v",
				i, v.p1, v.p2, v.q1, v.q2, got, v.want)
		}
	}
}
