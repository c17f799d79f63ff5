// Euclidean geometry primitives for Go.
//
// Points are three dimensional value types with a fixed homogeneous w of 1.
// They can be built from numbers, slices, maps or any struct with X, Y and Z
// fields, and support the full set of element-wise arithmetic operators.
// Lines, segments, rays, triangles and polygons are built from points and use
// the same orientation predicates. All comparisons are exact; there is no
// tolerance anywhere.
//
// Most callers only need this package. The advanced package exposes the
// coercion rules and the operator funnel directly.
package geometry

import "github.com/osuushi/geometry/advanced"

type Point = advanced.Point
type Keyword = advanced.Keyword
type Axis = advanced.Axis
type Operator = advanced.Operator
type Orientation = advanced.Orientation

type LineLike = advanced.LineLike
type Line = advanced.Line
type Segment = advanced.Segment
type Ray = advanced.Ray
type Triangle = advanced.Triangle
type Polygon = advanced.Polygon

const (
	AxisX = advanced.AxisX
	AxisY = advanced.AxisY
	AxisZ = advanced.AxisZ

	Clockwise        = advanced.Clockwise
	Collinear        = advanced.Collinear
	CounterClockwise = advanced.CounterClockwise
)

// Error kinds, for use with errors.Is.
var (
	ErrUngrokkableCoercion       = advanced.ErrUngrokkableCoercion
	ErrDivisionByZero            = advanced.ErrDivisionByZero
	ErrCollinearPoints           = advanced.ErrCollinearPoints
	ErrInvalidAxis               = advanced.ErrInvalidAxis
	ErrParallelOrCoincidentLines = advanced.ErrParallelOrCoincidentLines
	ErrNoIntersection            = advanced.ErrNoIntersection
	ErrCoincidentLines           = advanced.ErrCoincidentLines
	ErrInfiniteLength            = advanced.ErrInfiniteLength
	ErrIndexOutOfRange           = advanced.ErrIndexOutOfRange
	ErrDegenerateLine            = advanced.ErrDegenerateLine
	ErrNegativeShift             = advanced.ErrNegativeShift
	ErrNotMonotone               = advanced.ErrNotMonotone
	ErrInvalidSide               = advanced.ErrInvalidSide
)

var (
	NewPoint    = advanced.NewPoint
	MustPoint   = advanced.MustPoint
	Origin      = advanced.Origin
	X           = advanced.X
	Y           = advanced.Y
	Z           = advanced.Z
	NewLine     = advanced.NewLine
	NewSegment  = advanced.NewSegment
	NewRay      = advanced.NewRay
	NewTriangle = advanced.NewTriangle
	NewPolygon  = advanced.NewPolygon
	ParseAxis   = advanced.ParseAxis

	OrientationOf = advanced.OrientationOf
)

// Intersection returns the point where two lines of any kind cross.
func Intersection(l, other LineLike) (Point, error) {
	return advanced.Intersection(l, other)
}

func DoesIntersect(l, other LineLike) bool {
	return advanced.DoesIntersect(l, other)
}

// Triangulate splits y-monotone, counterclockwise polygons given as point lists
// into counterclockwise triangles.
func Triangulate(polygonPoints ...[]Point) (result []Triangle, err error) {
	for _, points := range polygonPoints {
		triangles, err := Polygon{Points: points}.TriangulateMonotone()
		if err != nil {
			return nil, err
		}
		result = append(result, triangles...)
	}
	return result, nil
}
