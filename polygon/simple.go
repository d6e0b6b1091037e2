package polygon

import (
	"math"

	"polycheck/geom"
)

// IsSimple reports whether the closed boundary is free of
// self-intersections. Non-adjacent edges must not cross or touch at all;
// cyclically adjacent edges share exactly one endpoint and must not overlap
// colinearly beyond it. eps is the tolerance for the orientation predicates;
// pass geom.DefaultEpsilon unless configured otherwise.
//
// The sequence must already satisfy Validate; behavior on unvalidated input
// is undefined.
//
// Every unordered edge pair is tested, O(n²) for n edges. Fine for
// hand-authored or exported polygons.
func (s Sequence) IsSimple(eps float64) bool {
	m := len(s) - 1 // edge i runs s[i] -> s[i+1]
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if j == i+1 {
				if foldsBack(s[i], s[i+1], s[j+1], eps) {
					return false
				}
				continue
			}
			if i == 0 && j == m-1 {
				// wrap-around pair, shared vertex is s[0]
				if foldsBack(s[m-1], s[0], s[1], eps) {
					return false
				}
				continue
			}
			if segmentsIntersect(s[i], s[i+1], s[j], s[j+1], eps) {
				return false
			}
		}
	}
	return true
}

// foldsBack reports whether the edge b->c doubles back along a->b. With
// consecutive duplicates ruled out upstream, that is the only way two
// adjacent edges can meet outside their shared vertex.
func foldsBack(a, b, c geom.Point, eps float64) bool {
	if orientation(a, b, c, eps) != 0 {
		return false
	}
	return geom.Dot(geom.Sub(b, a), geom.Sub(c, b)) < 0
}

// orientation returns the sign of the turn a->b->c: +1 counter-clockwise,
// -1 clockwise, 0 colinear within eps.
func orientation(a, b, c geom.Point, eps float64) int {
	v := geom.Cross(geom.Sub(b, a), geom.Sub(c, a))
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, already known colinear with a-b, lies within
// the segment's bounding box (grown by eps).
func onSegment(a, b, p geom.Point, eps float64) bool {
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share any
// point: a proper crossing, an endpoint touch, or a colinear overlap.
func segmentsIntersect(p1, p2, q1, q2 geom.Point, eps float64) bool {
	d1 := orientation(q1, q2, p1, eps)
	d2 := orientation(q1, q2, p2, eps)
	d3 := orientation(p1, p2, q1, eps)
	d4 := orientation(p1, p2, q2, eps)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	if d1 == 0 && onSegment(q1, q2, p1, eps) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2, eps) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1, eps) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2, eps) {
		return true
	}
	return false
}
