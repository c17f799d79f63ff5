package advanced

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func (p Point) Dot(q Point) float64 {
	a, b := p.array(), q.array()
	return floats.Dot(a[:], b[:])
}

// Cross is the sum of the components of the cross product p × q. It is a
// scalar, not a vector; the planar orientation tests only need the sum.
func (p Point) Cross(q Point) float64 {
	c := [3]float64{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
	return floats.Sum(c[:])
}

func (p Point) DistanceSquared(q Point) float64 {
	d := q.Sub(p).array()
	return floats.Dot(d[:], d[:])
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// Magnitude is the distance from the origin.
func (p Point) Magnitude() float64 {
	return p.Distance(Point{})
}

func (p Point) Midpoint(q Point) Point {
	return p.Add(q).Scale(0.5)
}
