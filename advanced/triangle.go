package advanced

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Triangle owns copies of its three vertices. Nothing requires the vertices to
// be distinct or non-collinear; a degenerate triangle has zero ccw.
type Triangle struct {
	vertices [3]Point
}

var defaultVertices = [3]Point{{}, {X: 1}, {Y: 1}}

// NewTriangle coerces each vertex. A nil vertex takes its default, giving the
// unit right triangle (0,0), (1,0), (0,1) when all are nil.
func NewTriangle(a, b, c interface{}) (Triangle, error) {
	var t Triangle
	for i, v := range []interface{}{a, b, c} {
		if v == nil {
			t.vertices[i] = defaultVertices[i]
			continue
		}
		p, err := NewPoint(v)
		if err != nil {
			return Triangle{}, err
		}
		t.vertices[i] = p
	}
	return t, nil
}

func MustTriangle(a, b, c interface{}) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// RandomTriangle draws vertices with Random until it has three distinct
// points inside the sphere of the given radius around origin.
func RandomTriangle(rng *rand.Rand, origin Point, radius float64) (Triangle, error) {
	if !(radius > 0) {
		return Triangle{}, errors.Errorf("radius must be positive, got %v", radius)
	}
	var t Triangle
	n := 0
	for n < 3 {
		p := Random(rng, origin, radius)
		if (n > 0 && p.Equal(t.vertices[0])) || (n > 1 && p.Equal(t.vertices[1])) {
			continue
		}
		t.vertices[n] = p
		n++
	}
	return t, nil
}

// TriangleOf builds a triangle directly from points.
func TriangleOf(a, b, c Point) Triangle {
	return Triangle{[3]Point{a, b, c}}
}

func (t Triangle) A() Point { return t.vertices[0] }
func (t Triangle) B() Point { return t.vertices[1] }
func (t Triangle) C() Point { return t.vertices[2] }

func (t Triangle) ABC() [3]Point { return t.vertices }

func (t *Triangle) SetA(v interface{}) error { return t.vertices[0].Set("xyz", v) }
func (t *Triangle) SetB(v interface{}) error { return t.vertices[1].Set("xyz", v) }
func (t *Triangle) SetC(v interface{}) error { return t.vertices[2].Set("xyz", v) }

func (t Triangle) AB() Segment { return Segment{endpoints{t.vertices[0], t.vertices[1]}} }
func (t Triangle) BA() Segment { return Segment{endpoints{t.vertices[1], t.vertices[0]}} }
func (t Triangle) BC() Segment { return Segment{endpoints{t.vertices[1], t.vertices[2]}} }
func (t Triangle) CB() Segment { return Segment{endpoints{t.vertices[2], t.vertices[1]}} }
func (t Triangle) AC() Segment { return Segment{endpoints{t.vertices[0], t.vertices[2]}} }
func (t Triangle) CA() Segment { return Segment{endpoints{t.vertices[2], t.vertices[0]}} }

func (t Triangle) Edges() [3]Segment {
	return [3]Segment{t.AB(), t.BC(), t.AC()}
}

// SideA is the length of the side opposite A.
func (t Triangle) SideA() float64 { return t.vertices[1].Distance(t.vertices[2]) }

// SideB is the length of the side opposite B.
func (t Triangle) SideB() float64 { return t.vertices[0].Distance(t.vertices[2]) }

// SideC is the length of the side opposite C.
func (t Triangle) SideC() float64 { return t.vertices[0].Distance(t.vertices[1]) }

func (t Triangle) Sides() [3]float64 {
	return [3]float64{t.SideA(), t.SideB(), t.SideC()}
}

func (t Triangle) Perimeter() float64 {
	return t.SideA() + t.SideB() + t.SideC()
}

func (t Triangle) Semiperimeter() float64 {
	return t.Perimeter() / 2
}

func (t Triangle) Ccw() float64 {
	return t.vertices[0].Ccw(t.vertices[1], t.vertices[2])
}

func (t Triangle) IsCCW() (bool, error) {
	return t.vertices[0].IsCCW(t.vertices[1], t.vertices[2])
}

func (t Triangle) Orientation() Orientation {
	return OrientationOf(t.Ccw())
}

func (t Triangle) Area() float64 {
	return math.Abs(t.Ccw()) / 2
}

// HeronsArea computes the area from the side lengths alone, so it also works
// for triangles that do not lie in the XY plane.
func (t Triangle) HeronsArea() float64 {
	s := t.Semiperimeter()
	a, b, c := t.SideA(), t.SideB(), t.SideC()
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// Alpha is the interior angle at A in radians.
func (t Triangle) Alpha() (float64, error) {
	return t.CA().RadiansBetween(t.BA())
}

// Beta is the interior angle at B in radians.
func (t Triangle) Beta() (float64, error) {
	return t.AB().RadiansBetween(t.CB())
}

// Gamma is the interior angle at C in radians.
func (t Triangle) Gamma() (float64, error) {
	return t.BC().RadiansBetween(t.AC())
}

func (t Triangle) Angles() ([3]float64, error) {
	var angles [3]float64
	var err error
	for i, f := range []func() (float64, error){t.Alpha, t.Beta, t.Gamma} {
		if angles[i], err = f(); err != nil {
			return [3]float64{}, err
		}
	}
	return angles, nil
}

// Altitudes are the distances from each vertex to the opposite side.
func (t Triangle) Altitudes() ([3]float64, error) {
	area2 := t.Area() * 2
	var alts [3]float64
	opposite := [3]Segment{t.BC(), t.AC(), t.AB()}
	for i, side := range t.Sides() {
		if side == 0 {
			return [3]float64{}, &DivisionByZeroError{Operand: opposite[i]}
		}
		alts[i] = area2 / side
	}
	return alts, nil
}

// Hypotenuse is the longest edge. Ties go to the first of AB, BC, AC.
func (t Triangle) Hypotenuse() Segment {
	edges := t.Edges()
	longest := edges[0]
	max, _ := longest.Length()
	for _, e := range edges[1:] {
		if l, _ := e.Length(); l > max {
			longest, max = e, l
		}
	}
	return longest
}

// squaredSides are sorted ascending. Comparing squares keeps the right angle
// test exact for integer coordinates.
func (t Triangle) squaredSides() [3]float64 {
	v := t.vertices
	s := []float64{v[1].DistanceSquared(v[2]), v[0].DistanceSquared(v[2]), v[0].DistanceSquared(v[1])}
	sort.Float64s(s)
	return [3]float64{s[0], s[1], s[2]}
}

func (t Triangle) IsDegenerate() bool {
	return t.vertices[0].IsCollinear(t.vertices[1], t.vertices[2])
}

func (t Triangle) IsEquilateral() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && s[0] == s[2]
}

func (t Triangle) IsIsosceles() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && (s[0] == s[1] || s[1] == s[2])
}

func (t Triangle) IsScalene() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && s[0] != s[1] && s[1] != s[2]
}

func (t Triangle) IsRight() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && s[0]+s[1] == s[2]
}

func (t Triangle) IsAcute() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && s[0]+s[1] > s[2]
}

func (t Triangle) IsObtuse() bool {
	s := t.squaredSides()
	return !t.IsDegenerate() && s[0]+s[1] < s[2]
}

// Contains is true for points inside the triangle or on its boundary, in the
// XY plane.
func (t Triangle) Contains(p Point) bool {
	v := t.vertices
	if v[0].Ccw(v[1], v[2]) == 0 {
		for _, e := range t.Edges() {
			if e.Contains(p) {
				return true
			}
		}
		return false
	}
	var neg, pos bool
	for i := range v {
		switch OrientationOf(v[i].Ccw(v[(i+1)%3], p)) {
		case Clockwise:
			neg = true
		case CounterClockwise:
			pos = true
		}
	}
	return !(neg && pos)
}

// DoesIntersect is true when either triangle holds a vertex of the other or
// any pair of edges cross.
func (t Triangle) DoesIntersect(other Triangle) bool {
	for i := range t.vertices {
		if other.Contains(t.vertices[i]) || t.Contains(other.vertices[i]) {
			return true
		}
	}
	for _, e := range t.Edges() {
		for _, f := range other.Edges() {
			if DoesIntersect(e, f) {
				return true
			}
		}
	}
	return false
}

// Flip swaps the two vertices of side, one of "AB", "BC" or "AC" (in either
// order).
func (t *Triangle) Flip(side string) error {
	var i, j int
	switch side {
	case "AB", "BA":
		i, j = 0, 1
	case "BC", "CB":
		i, j = 1, 2
	case "AC", "CA":
		i, j = 0, 2
	default:
		return errors.Wrapf(ErrInvalidSide, "%q", side)
	}
	t.vertices[i], t.vertices[j] = t.vertices[j], t.vertices[i]
	return nil
}

func (t Triangle) Equal(other Triangle) bool {
	return t.vertices == other.vertices
}

func (t Triangle) String() string {
	return fmt.Sprintf("A=(%v), B=(%v), C=(%v)", t.vertices[0], t.vertices[1], t.vertices[2])
}
