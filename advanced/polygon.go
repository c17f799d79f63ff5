package advanced

import (
	"fmt"
	"strings"

	"github.com/ctessum/geom"
	"github.com/pkg/errors"
)

// Polygon is an ordered list of vertices. It is closed unless Open is set, in
// which case the last vertex is not joined back to the first.
type Polygon struct {
	Points []Point
	Open   bool
}

// NewPolygon coerces each value into a vertex of a closed polygon.
func NewPolygon(values ...interface{}) (Polygon, error) {
	poly := Polygon{Points: make([]Point, 0, len(values))}
	for _, v := range values {
		p, err := NewPoint(v)
		if err != nil {
			return Polygon{}, err
		}
		poly.Points = append(poly.Points, p)
	}
	return poly, nil
}

func (poly Polygon) Closed() bool {
	return !poly.Open
}

// Sides are the edges in vertex order, including the closing side when the
// polygon is closed and has at least three vertices.
func (poly Polygon) Sides() []Segment {
	n := len(poly.Points)
	if n < 2 {
		return nil
	}
	count := n
	// Two vertices have a single side whether or not the polygon is closed.
	if poly.Open || n == 2 {
		count = n - 1
	}
	sides := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		sides = append(sides, Segment{endpoints{poly.Points[i], poly.Points[CircularIndex(i+1, n)]}})
	}
	return sides
}

// Perimeter is the total length of the sides. An open polygon has no
// perimeter.
func (poly Polygon) Perimeter() (float64, error) {
	if poly.Open {
		return 0, errors.Wrap(ErrInfiniteLength, "open polygon")
	}
	var total float64
	for _, side := range poly.Sides() {
		l, _ := side.Length()
		total += l
	}
	return total, nil
}

// ring projects the polygon onto the XY plane.
func (poly Polygon) ring() geom.Polygon {
	ring := make([]geom.Point, len(poly.Points))
	for i, p := range poly.Points {
		ring[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return geom.Polygon{ring}
}

// Area is the unsigned area enclosed in the XY plane.
func (poly Polygon) Area() float64 {
	if len(poly.Points) < 3 {
		return 0
	}
	return poly.ring().Area()
}

func (poly Polygon) Centroid() Point {
	if len(poly.Points) < 3 {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(p)
		}
		if len(poly.Points) == 0 {
			return sum
		}
		return sum.Scale(1 / float64(len(poly.Points)))
	}
	c := poly.ring().Centroid()
	return Point{X: c.X, Y: c.Y}
}

// Bounds returns the lower left and upper right corners of the bounding box
// in the XY plane.
func (poly Polygon) Bounds() (min, max Point) {
	if len(poly.Points) == 0 {
		return Point{}, Point{}
	}
	b := poly.ring().Bounds()
	return Point{X: b.Min.X, Y: b.Min.Y}, Point{X: b.Max.X, Y: b.Max.Y}
}

// Contains is true for points inside the polygon or on its boundary.
func (poly Polygon) Contains(p Point) bool {
	if len(poly.Points) < 3 {
		for _, side := range poly.Sides() {
			if side.Contains(p) {
				return true
			}
		}
		return false
	}
	return geom.Point{X: p.X, Y: p.Y}.Within(poly.ring()) != geom.Outside
}

// SignedArea is positive for counter-clockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var origin Point
	var sum float64
	for i, p := range poly.Points {
		sum += origin.Ccw(p, poly.Points[CircularIndex(i+1, len(poly.Points))])
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Open: poly.Open}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = "(" + p.String() + ")"
	}
	return fmt.Sprintf("Polygon[%s]", strings.Join(parts, ", "))
}
