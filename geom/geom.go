package geom

import "math"

// DefaultEpsilon is the tolerance used for geometric predicates on
// floating-point coordinates unless the caller overrides it.
const DefaultEpsilon = 1e-9

type Point struct {
	X, Y float64
}

type Transform struct {
	A, B, C, D, E, F float64 // 2x3 matrix: [ A C E ; B D F ]
}

func Identity() Transform {
	return Transform{A: 1, D: 1} // [1 0 0; 0 1 0]
}

// SceneKitInverse undoes the SceneKit coordinate convention by mapping
// (x, y) to (-y, -x). Applying it twice yields the identity.
var SceneKitInverse = Transform{B: -1, C: -1}

func (t Transform) Mul(u Transform) Transform {
	// t ∘ u (apply u, then t)
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// ApplyAll maps every point through the transform, returning a new slice.
func (t Transform) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

func Sub(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func AlmostEqual(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}
