package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// LineLike is the behavior shared by Line, Segment and Ray. The free
// functions Intersection and DoesIntersect work across all three.
type LineLike interface {
	A() Point
	B() Point
	Length() (float64, error)
	Contains(p Point) bool
	String() string
}

// endpoints holds the two points defining every line kind. Accessors copy
// out; mutating a returned Point never changes the line.
type endpoints struct {
	a, b Point
}

func newEndpoints(a, b interface{}) (endpoints, error) {
	pa, err := NewPoint(a)
	if err != nil {
		return endpoints{}, err
	}
	pb, err := NewPoint(b)
	if err != nil {
		return endpoints{}, err
	}
	return endpoints{pa, pb}, nil
}

func (e endpoints) A() Point { return e.a }
func (e endpoints) B() Point { return e.b }

func (e endpoints) AB() [2]Point {
	return [2]Point{e.a, e.b}
}

// M is the slope vector B - A.
func (e endpoints) M() Point {
	return e.b.Sub(e.a)
}

// PointAt returns A + t*M. t=0 is A and t=1 is B.
func (e endpoints) PointAt(t float64) Point {
	return e.a.Add(e.M().Scale(t))
}

func (e endpoints) IsDegenerate() bool {
	return e.a.Equal(e.b)
}

func (e endpoints) Len() int { return 2 }

func (e endpoints) resolve(i int) (int, error) {
	if i < 0 {
		i += 2
	}
	if i < 0 || i > 1 {
		return 0, &IndexError{Index: i, Len: 2}
	}
	return i, nil
}

// Index returns A for 0 and B for 1. Negative indices count from the end.
func (e endpoints) Index(i int) (Point, error) {
	j, err := e.resolve(i)
	if err != nil {
		return Point{}, &IndexError{Index: i, Len: 2}
	}
	return e.AB()[j], nil
}

func (e *endpoints) SetIndex(i int, v interface{}) error {
	j, err := e.resolve(i)
	if err != nil {
		return &IndexError{Index: i, Len: 2}
	}
	if j == 0 {
		return e.SetA(v)
	}
	return e.SetB(v)
}

// SetA coerces v onto the existing A, so a partial value (a scalar, a mapping
// with only "y") keeps the other ordinates.
func (e *endpoints) SetA(v interface{}) error {
	return e.a.Set("xyz", v)
}

func (e *endpoints) SetB(v interface{}) error {
	return e.b.Set("xyz", v)
}

// Flip swaps A and B.
func (e *endpoints) Flip() {
	e.a, e.b = e.b, e.a
}

func (e endpoints) Mapping() map[string]Point {
	return map[string]Point{"A": e.a, "B": e.b}
}

func (e endpoints) String() string {
	return fmt.Sprintf("A=(%v), B=(%v)", e.a, e.b)
}

func (e endpoints) normal() (endpoints, error) {
	if e.IsDegenerate() {
		return endpoints{}, errors.Wrapf(ErrDegenerateLine, "normal of %v", e)
	}
	d := e.M()
	return endpoints{Point{X: -d.Y, Y: d.X}, Point{X: d.Y, Y: -d.X}}, nil
}

// DistanceFromPoint is the perpendicular distance from the supporting line to
// p, positive when p is on the counter-clockwise side of A→B.
func (e endpoints) DistanceFromPoint(p Point) (float64, error) {
	if e.IsDegenerate() {
		return 0, errors.Wrapf(ErrDegenerateLine, "distance from %v", e)
	}
	return e.a.Ccw(e.b, p) / e.a.Distance(e.b), nil
}

// RadiansBetween is the angle between the directions of both lines, in [0, π].
func (e endpoints) RadiansBetween(other LineLike) (float64, error) {
	u, err := Unit(e.a, e.b)
	if err != nil {
		return 0, err
	}
	v, err := Unit(other.A(), other.B())
	if err != nil {
		return 0, err
	}
	return math.Acos(math.Max(-1, math.Min(1, u.Dot(v)))), nil
}

func (e endpoints) DegreesBetween(other LineLike) (float64, error) {
	rad, err := e.RadiansBetween(other)
	if err != nil {
		return 0, err
	}
	return rad * 180 / math.Pi, nil
}

// IsNormal is true when the lines meet at exactly 90 degrees.
func (e endpoints) IsNormal(other LineLike) (bool, error) {
	deg, err := e.DegreesBetween(other)
	if err != nil {
		return false, err
	}
	return math.Abs(deg) == 90, nil
}

// IsParallel is true when both directions are collinear in every axis plane.
func (e endpoints) IsParallel(other LineLike) bool {
	return Point{}.IsCollinear(e.M(), other.B().Sub(other.A()))
}

// DoesIntersect is true when each line's endpoints straddle or touch the
// other's supporting line.
func (e endpoints) DoesIntersect(other LineLike) bool {
	return DoesIntersect(Line{e}, other)
}

// Line is infinite in both directions.
type Line struct {
	endpoints
}

func NewLine(a, b interface{}) (Line, error) {
	e, err := newEndpoints(a, b)
	return Line{e}, err
}

func MustLine(a, b interface{}) Line {
	l, err := NewLine(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

func FromSegment(s Segment) Line { return Line(s) }
func FromRay(r Ray) Line         { return Line(r) }

// LineUnits returns the lines from the origin to each unit point.
func LineUnits() [3]Line {
	var lines [3]Line
	for i, u := range Units(1) {
		lines[i] = Line{endpoints{b: u}}
	}
	return lines
}

func (l Line) Length() (float64, error) {
	return 0, errors.Wrapf(ErrInfiniteLength, "line %v", l)
}

// Contains is true for any point collinear with A and B. A degenerate line
// contains only its single point.
func (l Line) Contains(p Point) bool {
	if l.IsDegenerate() {
		return p.Equal(l.a)
	}
	return l.a.IsCollinear(l.b, p)
}

func (l Line) Normal() (Line, error) {
	e, err := l.normal()
	return Line{e}, err
}

func (l Line) Equal(other Line) bool {
	return l.a.Equal(other.a) && l.b.Equal(other.b)
}

func (l Line) Intersection(other LineLike) (Point, error) {
	return Intersection(l, other)
}

// Segment is the finite piece of a line between A and B.
type Segment struct {
	endpoints
}

func NewSegment(a, b interface{}) (Segment, error) {
	e, err := newEndpoints(a, b)
	return Segment{e}, err
}

func MustSegment(a, b interface{}) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

func SegmentFromLine(l Line) Segment { return Segment(l) }
func SegmentFromRay(r Ray) Segment   { return Segment(r) }

func SegmentUnits() [3]Segment {
	var segments [3]Segment
	for i, l := range LineUnits() {
		segments[i] = Segment(l)
	}
	return segments
}

func (s Segment) Length() (float64, error) {
	return s.a.Distance(s.b), nil
}

func (s Segment) Midpoint() Point {
	return s.a.Midpoint(s.b)
}

func (s Segment) Contains(p Point) bool {
	return s.a.IsCollinear(s.b, p) && p.IsBetween(s.a, s.b)
}

func (s Segment) Normal() (Segment, error) {
	e, err := s.normal()
	return Segment{e}, err
}

// DistanceFromPoint is unsigned for segments.
func (s Segment) DistanceFromPoint(p Point) (float64, error) {
	d, err := s.endpoints.DistanceFromPoint(p)
	return math.Abs(d), err
}

// Equal ignores the order of the endpoints.
func (s Segment) Equal(other Segment) bool {
	return (s.a.Equal(other.a) && s.b.Equal(other.b)) ||
		(s.a.Equal(other.b) && s.b.Equal(other.a))
}

func (s Segment) Intersection(other LineLike) (Point, error) {
	return Intersection(s, other)
}

// Ray starts at its tail A and extends forever through its head B.
type Ray struct {
	endpoints
}

func NewRay(tail, head interface{}) (Ray, error) {
	e, err := newEndpoints(tail, head)
	return Ray{e}, err
}

func MustRay(tail, head interface{}) Ray {
	r, err := NewRay(tail, head)
	if err != nil {
		panic(err)
	}
	return r
}

func RayFromLine(l Line) Ray       { return Ray(l) }
func RayFromSegment(s Segment) Ray { return Ray(s) }

func (r Ray) Tail() Point { return r.a }
func (r Ray) Head() Point { return r.b }

func (r Ray) Length() (float64, error) {
	return 0, errors.Wrapf(ErrInfiniteLength, "ray %v", r)
}

// Contains is true for points collinear with the ray that are not behind the
// tail. A degenerate ray contains only its tail.
func (r Ray) Contains(p Point) bool {
	if r.IsDegenerate() {
		return p.Equal(r.a)
	}
	return r.a.IsCollinear(r.b, p) && p.Sub(r.a).Dot(r.M()) >= 0
}

func (r Ray) Normal() (Ray, error) {
	e, err := r.normal()
	return Ray{e}, err
}

func (r Ray) Equal(other Ray) bool {
	return r.a.Equal(other.a) && r.b.Equal(other.b)
}

func (r Ray) Intersection(other LineLike) (Point, error) {
	return Intersection(r, other)
}

// directionAngle is the angle between the ray's direction and axis i.
func (r Ray) directionAngle(i int) (float64, error) {
	if r.IsDegenerate() {
		return 0, errors.Wrapf(ErrDegenerateLine, "direction of %v", r)
	}
	m := r.M()
	cos := m.get(i) / m.Magnitude()
	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// Alpha is the angle in radians between the ray and the x axis.
func (r Ray) Alpha() (float64, error) { return r.directionAngle(0) }

// Beta is the angle in radians between the ray and the y axis.
func (r Ray) Beta() (float64, error) { return r.directionAngle(1) }

// Gamma is the angle in radians between the ray and the z axis.
func (r Ray) Gamma() (float64, error) { return r.directionAngle(2) }
