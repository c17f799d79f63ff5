package advanced

func sameEndpoints(l, other LineLike) bool {
	return (l.A().Equal(other.A()) && l.B().Equal(other.B())) ||
		(l.A().Equal(other.B()) && l.B().Equal(other.A()))
}

// DoesIntersect reports whether the endpoints of each line straddle or touch
// the supporting line of the other. Touching counts as intersecting.
func DoesIntersect(l, other LineLike) bool {
	a, b := l.A(), l.B()
	c, d := other.A(), other.B()
	return a.Ccw(b, c)*a.Ccw(b, d) <= 0 && c.Ccw(d, a)*c.Ccw(d, b) <= 0
}

// Intersection solves for the point where l and other cross in the XY plane.
//
// Lines with the same endpoints (in either order) are a LinesError of kind
// ErrCoincidentLines. A zero determinant means the lines are parallel or
// coincident. Otherwise the solved point must lie on both lines, so two
// segments whose supporting lines cross outside either segment are
// ErrNoIntersection. All three kinds match ErrParallelOrCoincidentLines.
//
// Only x and y are solved; the returned point always has Z = 0. Lines lying
// in a plane other than z = 0 therefore never contain it and are reported as
// ErrNoIntersection even when they cross.
func Intersection(l, other LineLike) (Point, error) {
	if sameEndpoints(l, other) {
		return Point{}, &LinesError{Kind: ErrCoincidentLines, First: l, Next: other}
	}

	d0 := l.A().Sub(l.B())
	d1 := other.A().Sub(other.B())
	denom := d0.X*d1.Y - d0.Y*d1.X
	if denom == 0 {
		return Point{}, &LinesError{Kind: ErrParallelOrCoincidentLines, First: l, Next: other}
	}

	cp0 := l.A().Cross(l.B())
	cp1 := other.A().Cross(other.B())
	p := Point{
		X: (cp0*d1.X - d0.X*cp1) / denom,
		Y: (cp0*d1.Y - d0.Y*cp1) / denom,
	}
	if !l.Contains(p) || !other.Contains(p) {
		return Point{}, &LinesError{Kind: ErrNoIntersection, First: l, Next: other}
	}
	return p, nil
}
