package advanced

import "github.com/pkg/errors"

// Facilities for converting a Y-monotone polygon into triangles. A Y monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Point.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments. On the left chain, a
// horizontal edge must sit _above_ the inside of the polygon, while on the
// right chain, it must sit _below_.
//
// The polygon must be closed and counterclockwise.

// TriangulateMonotone splits a y-monotone polygon into counterclockwise
// triangles. Anything that does not triangulate cleanly, including a polygon
// that is not monotone, is an ErrNotMonotone.
func (poly Polygon) TriangulateMonotone() (triangles []Triangle, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = HandlePanicRecover(r)
		}
	}()
	return triangulateMonotone(poly), nil
}

func triangulateMonotone(polygon Polygon) []Triangle {
	points := polygon.Points
	n := len(points)
	if polygon.Open {
		throw(errors.Wrapf(ErrNotMonotone, "cannot triangulate open polygon"))
	}
	if n < 3 {
		throw(errors.Wrapf(ErrNotMonotone, "cannot triangulate degenerate polygon with point count: %d", n))
	}
	if !polygon.IsCCW() {
		throw(errors.Wrapf(ErrNotMonotone, "polygon is not counterclockwise"))
	}
	if n == 3 {
		return []Triangle{TriangleOf(points[0], points[1], points[2])}
	}

	triangles := make([]Triangle, 0, n-2)
	tri := func(a, b, c int) Triangle {
		return TriangleOf(points[a], points[b], points[c])
	}

	// Find the top point
	var top int
	for i, point := range points {
		if point.Above(points[top]) {
			top = i
		}
	}

	sorted := make([]int, 0, n)
	sorted = append(sorted, top)

	leftChain := map[int]struct{}{}
	isLeft := func(i int) bool {
		_, ok := leftChain[i]
		return ok
	}

	// Merge the two chains starting from the top, noting which points are on the
	// left chain, and track the bottom point separately
	leftOffset := 1
	rightOffset := 1
	var bottom int
	for {
		left := CircularIndex(top+leftOffset, n)
		right := CircularIndex(top-rightOffset, n)

		// If we've met up, we're done. The bottom point is handled at the very
		// end.
		if left == right {
			bottom = left
			break
		}

		if points[left].Above(points[right]) {
			leftChain[left] = struct{}{}
			sorted = append(sorted, left)
			leftOffset++
		} else {
			sorted = append(sorted, right)
			rightOffset++
		}
	}

	stack := make(VertexStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i, p := range sorted[2:] {
		i := i + 2

		left := isLeft(p)
		if left != isLeft(stack.Peek()) {
			// Jumping to the other chain, monotonicity guarantees that every stack
			// point is visible from the current point, so the stack empties into
			// triangles
			for !stack.Empty() {
				a := stack.Pop()
				if !stack.Empty() {
					b := stack.Peek()
					if left {
						/*
						              b
						             /|
						 diagonal-> / |
						           p--a
						*/
						triangles = appendTriangle(triangles, tri(p, a, b))
					} else {
						/*
							b
							|\ <- Diagonal
							| \
							a--p
						*/
						triangles = appendTriangle(triangles, tri(a, p, b))
					}
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(sorted[i])
		} else {
			// Always pop the last point off. If we don't create any triangles this
			// time, we'll put it back
			v := stack.Pop()

			for !stack.Empty() {
				topOfStack := stack.Peek()
				// The point "sees" the top of the stack when the triangle they make
				// is CCW
				var potential Triangle
				if left {
					/*
						q
						|\
						v \
						  \\ <- diagonal
						    \
						     p
					*/
					potential = tri(p, topOfStack, v)
				} else {
					/*
						               q
						              /|
						             / v
						            / /
						diagonal-> //
						          /
						         p
					*/
					potential = tri(p, v, topOfStack)
				}
				if potential.Ccw() > 0 {
					v = stack.Pop()
					triangles = append(triangles, potential)
				} else {
					break
				}
			}

			stack.Push(v)
			stack.Push(p)
		}
	}

	// Finally, add triangles for all remaining points on the stack. There are
	// always at least two.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft(l) {
			/*
					 p
				 / |
				l  | <- diagonal
				 \ |
				   b
			*/
			triangles = appendTriangle(triangles, tri(bottom, p, l))
		} else {
			/*
				            p
				            | \
				diagonal -> |  l
				            | /
				            b
			*/
			triangles = appendTriangle(triangles, tri(bottom, l, p))
		}
		l = p
	}

	if len(triangles) != n-2 {
		throw(errors.Wrapf(ErrNotMonotone, "got %d triangles for %d points", len(triangles), n))
	}
	return triangles
}

func appendTriangle(triangles []Triangle, t Triangle) []Triangle {
	if t.Ccw() < 0 {
		throw(errors.Wrapf(ErrNotMonotone, "triangle is clockwise: %v", t))
	}
	return append(triangles, t)
}
