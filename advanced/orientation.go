package advanced

import "strings"

type Axis rune

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
	AxisZ Axis = 'z'
)

func (a Axis) String() string {
	return string(a)
}

func ParseAxis(s string) (Axis, error) {
	if len(s) == 1 && strings.Contains(Axes, strings.ToLower(s)) {
		return Axis(strings.ToLower(s)[0]), nil
	}
	return 0, &InvalidAxisError{Axis: s}
}

type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Unknown"
}

// OrientationOf maps a ccw value to its orientation.
func OrientationOf(ccw float64) Orientation {
	switch {
	case ccw > 0:
		return CounterClockwise
	case ccw < 0:
		return Clockwise
	}
	return Collinear
}

// Ccw is twice the signed area of the triangle p, b, c in the XY plane.
// Positive means the turn p→b→c is counter-clockwise, negative clockwise and
// zero collinear.
func (p Point) Ccw(b, c Point) float64 {
	return p.ccw(b, c, AxisZ)
}

// CcwAxis is Ccw in the plane orthogonal to axis.
func (p Point) CcwAxis(b, c Point, axis Axis) (float64, error) {
	switch axis {
	case AxisX, AxisY, AxisZ:
		return p.ccw(b, c, axis), nil
	}
	return 0, &InvalidAxisError{Axis: string(axis)}
}

func (p Point) ccw(b, c Point, axis Axis) float64 {
	b, c = b.Sub(p), c.Sub(p)
	switch axis {
	case AxisX:
		return b.Y*c.Z - b.Z*c.Y
	case AxisY:
		return b.X*c.Z - b.Z*c.X
	}
	return b.X*c.Y - b.Y*c.X
}

// Orientation classifies the turn p→b→c in the XY plane.
func (p Point) Orientation(b, c Point) Orientation {
	return OrientationOf(p.Ccw(b, c))
}

// IsCCW reports whether p→b→c turns counter-clockwise in the XY plane. It is a
// CollinearPointsError when the three points are collinear.
func (p Point) IsCCW(b, c Point) (bool, error) {
	return p.IsCCWAxis(b, c, AxisZ)
}

func (p Point) IsCCWAxis(b, c Point, axis Axis) (bool, error) {
	v, err := p.CcwAxis(b, c, axis)
	if err != nil {
		return false, err
	}
	if v == 0 {
		return false, &CollinearPointsError{A: p, B: b, C: c}
	}
	return v > 0, nil
}

// IsCollinear is true when the points are collinear in every axis plane.
func (p Point) IsCollinear(b, c Point) bool {
	return p.ccw(b, c, AxisX) == 0 && p.ccw(b, c, AxisY) == 0 && p.ccw(b, c, AxisZ) == 0
}

// IsBetween is an inclusive bounding box test on all three axes. It says
// nothing about collinearity.
func (p Point) IsBetween(a, b Point) bool {
	ok, _ := p.IsBetweenAxes(a, b, Axes)
	return ok
}

// IsBetweenAxes restricts IsBetween to the axes named in axes.
func (p Point) IsBetweenAxes(a, b Point, axes string) (bool, error) {
	for _, r := range axes {
		axis, err := ParseAxis(string(r))
		if err != nil {
			return false, err
		}
		i := strings.IndexRune(Axes, rune(axis))
		v, lo, hi := p.get(i), a.get(i), b.get(i)
		if lo > hi {
			lo, hi = hi, lo
		}
		if v < lo || v > hi {
			return false, nil
		}
	}
	return true, nil
}

func (p Point) IsBetweenX(a, b Point) bool {
	ok, _ := p.IsBetweenAxes(a, b, "x")
	return ok
}

func (p Point) IsBetweenY(a, b Point) bool {
	ok, _ := p.IsBetweenAxes(a, b, "y")
	return ok
}

func (p Point) IsBetweenZ(a, b Point) bool {
	ok, _ := p.IsBetweenAxes(a, b, "z")
	return ok
}
