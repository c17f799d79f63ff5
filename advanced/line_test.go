package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	l, err := NewLine(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Point{}, l.A())
	assert.Equal(t, Point{}, l.B())

	l, err = NewLine([]int{1, 2}, map[string]int{"z": 3})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2, 0}, l.A())
	assert.Equal(t, Point{0, 0, 3}, l.B())

	_, err = NewLine(struct{ Q int }{}, nil)
	assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	_, err = NewSegment(nil, "x")
	assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	assert.Panics(t, func() { MustRay(nil, struct{}{}) })
}

func TestLineUnits(t *testing.T) {
	units := Units(1)
	for i, l := range LineUnits() {
		assert.Equal(t, Point{}, l.A())
		assert.Equal(t, units[i], l.B())
	}
	for i, s := range SegmentUnits() {
		assert.Equal(t, units[i], s.B())
	}
}

func TestLineAccessors(t *testing.T) {
	l := MustLine([]int{1, 1}, []int{3, 5})
	assert.Equal(t, Point{2, 4, 0}, l.M())
	assert.Equal(t, Point{2, 3, 0}, l.PointAt(0.5))
	assert.Equal(t, l.A(), l.PointAt(0))
	assert.Equal(t, l.B(), l.PointAt(1))
	assert.Equal(t, [2]Point{{1, 1, 0}, {3, 5, 0}}, l.AB())
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, map[string]Point{"A": {1, 1, 0}, "B": {3, 5, 0}}, l.Mapping())

	t.Run("indexes", func(t *testing.T) {
		for i, expected := range map[int]Point{0: l.A(), 1: l.B(), -1: l.B(), -2: l.A()} {
			p, err := l.Index(i)
			require.NoError(t, err)
			assert.Equal(t, expected, p)
		}
		for _, i := range []int{2, -3} {
			_, err := l.Index(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			var indexErr *IndexError
			require.ErrorAs(t, err, &indexErr)
			assert.Equal(t, i, indexErr.Index)
		}
	})

	t.Run("accessors copy out", func(t *testing.T) {
		a := l.A()
		a.X = 100
		assert.Equal(t, 1.0, l.A().X)
	})

	t.Run("setters coerce onto the endpoint", func(t *testing.T) {
		m := l
		require.NoError(t, m.SetA(map[string]int{"y": 9}))
		assert.Equal(t, Point{1, 9, 0}, m.A())
		require.NoError(t, m.SetIndex(-1, []int{0, 0, 7}))
		assert.Equal(t, Point{0, 0, 7}, m.B())
		assert.ErrorIs(t, m.SetIndex(5, nil), ErrIndexOutOfRange)
		// l is a value, so m is a copy
		assert.Equal(t, Point{1, 1, 0}, l.A())
	})

	t.Run("flip", func(t *testing.T) {
		m := l
		m.Flip()
		assert.Equal(t, l.A(), m.B())
		assert.Equal(t, l.B(), m.A())
	})

	assert.Equal(t, "A=(x=1, y=1, z=0), B=(x=3, y=5, z=0)", l.String())
}

func TestLength(t *testing.T) {
	_, err := MustLine(nil, []int{1}).Length()
	assert.ErrorIs(t, err, ErrInfiniteLength)
	_, err = MustRay(nil, []int{1}).Length()
	assert.ErrorIs(t, err, ErrInfiniteLength)

	l, err := MustSegment([]int{1, 1}, []int{4, 5}).Length()
	require.NoError(t, err)
	assert.Equal(t, 5.0, l)
}

func TestContains(t *testing.T) {
	a, b := Point{0, 0, 0}, Point{2, 2, 0}
	before, inside, after, off := Point{-1, -1, 0}, Point{1, 1, 0}, Point{3, 3, 0}, Point{1, 0, 0}

	line := Line{endpoints{a, b}}
	assert.True(t, line.Contains(before))
	assert.True(t, line.Contains(inside))
	assert.True(t, line.Contains(after))
	assert.False(t, line.Contains(off))

	segment := Segment{endpoints{a, b}}
	assert.False(t, segment.Contains(before))
	assert.True(t, segment.Contains(inside))
	assert.True(t, segment.Contains(a))
	assert.True(t, segment.Contains(b))
	assert.False(t, segment.Contains(after))
	assert.False(t, segment.Contains(off))

	ray := Ray{endpoints{a, b}}
	assert.False(t, ray.Contains(before))
	assert.True(t, ray.Contains(a))
	assert.True(t, ray.Contains(inside))
	assert.True(t, ray.Contains(after))
	assert.False(t, ray.Contains(off))

	t.Run("degenerate", func(t *testing.T) {
		dl := Line{endpoints{a, a}}
		assert.True(t, dl.Contains(a))
		assert.False(t, dl.Contains(inside))
		dr := Ray{endpoints{a, a}}
		assert.True(t, dr.Contains(a))
		assert.False(t, dr.Contains(inside))
	})
}

func TestNormal(t *testing.T) {
	i, j, _ := Units(1)[0], Units(1)[1], Units(1)[2]

	l := LineUnits()[0]
	n, err := l.Normal()
	require.NoError(t, err)
	assert.Equal(t, j, n.A())
	assert.Equal(t, j.Neg(), n.B())

	s := MustSegment(nil, i)
	sn, err := s.Normal()
	require.NoError(t, err)
	assert.Equal(t, j, sn.A())
	isNormal, err := s.IsNormal(sn)
	require.NoError(t, err)
	assert.True(t, isNormal)

	rn, err := MustRay(nil, i).Normal()
	require.NoError(t, err)
	assert.Equal(t, j, rn.Tail())

	_, err = MustLine(i, i).Normal()
	assert.ErrorIs(t, err, ErrDegenerateLine)
}

func TestDistanceFromPoint(t *testing.T) {
	i, j := Units(1)[0], Units(1)[1]
	l := LineUnits()[0]

	d, err := l.DistanceFromPoint(i)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	d, err = l.DistanceFromPoint(j)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	d, err = l.DistanceFromPoint(j.Neg())
	require.NoError(t, err)
	assert.Equal(t, -1.0, d, "lines measure signed distance")

	s := MustSegment(nil, i)
	d, err = s.DistanceFromPoint(j)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	d, err = s.DistanceFromPoint(j.Neg())
	require.NoError(t, err)
	assert.Equal(t, 1.0, d, "segments measure unsigned distance")

	d, err = MustSegment([]int{0, 0}, []int{3, 4}).DistanceFromPoint(Point{4, -3, 0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = MustLine(i, i).DistanceFromPoint(j)
	assert.ErrorIs(t, err, ErrDegenerateLine)
}

func TestAngles(t *testing.T) {
	lines := LineUnits()
	l, m := lines[0], lines[1]

	rad, err := l.RadiansBetween(m)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, rad)

	rad, err = l.RadiansBetween(l)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rad)

	deg, err := l.DegreesBetween(m)
	require.NoError(t, err)
	assert.Equal(t, 90.0, deg)

	deg, err = l.DegreesBetween(l)
	require.NoError(t, err)
	assert.Equal(t, 0.0, deg)

	isNormal, err := l.IsNormal(m)
	require.NoError(t, err)
	assert.True(t, isNormal)

	isNormal, err = l.IsNormal(MustLine(nil, []int{1, 1}))
	require.NoError(t, err)
	assert.False(t, isNormal)

	rad, err = l.RadiansBetween(MustLine(nil, []int{-1}))
	require.NoError(t, err)
	assert.Equal(t, math.Pi, rad)

	_, err = l.RadiansBetween(MustLine(nil, nil))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestIsParallel(t *testing.T) {
	l := MustLine(nil, []int{1, 1})
	assert.True(t, l.IsParallel(MustSegment([]int{0, 1}, []int{2, 3})))
	assert.True(t, l.IsParallel(MustRay([]int{5, 5}, []int{4, 4})))
	assert.False(t, l.IsParallel(MustLine(nil, []int{1, 2})))
}

func TestSegment(t *testing.T) {
	s := MustSegment([]int{1, 2}, []int{3, 4})
	assert.Equal(t, Point{2, 3, 0}, s.Midpoint())

	reversed := s
	reversed.Flip()
	assert.True(t, s.Equal(reversed), "segment equality ignores endpoint order")
	assert.False(t, s.Equal(MustSegment([]int{1, 2}, []int{3, 5})))

	assert.True(t, FromSegment(s).Equal(FromSegment(s)))
	assert.False(t, FromSegment(s).Equal(FromSegment(reversed)), "line equality is ordered")
}

func TestConversions(t *testing.T) {
	l := MustLine([]int{1}, []int{2})
	s := SegmentFromLine(l)
	r := RayFromSegment(s)
	assert.Equal(t, l.AB(), s.AB())
	assert.Equal(t, l.AB(), r.AB())
	assert.Equal(t, l, FromRay(r))
	assert.Equal(t, r, RayFromLine(l))
	assert.Equal(t, s, SegmentFromRay(r))
}

func TestRay(t *testing.T) {
	r := MustRay([]int{1, 1}, []int{1, 3})
	assert.Equal(t, Point{1, 1, 0}, r.Tail())
	assert.Equal(t, Point{1, 3, 0}, r.Head())

	alpha, err := r.Alpha()
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, alpha)

	beta, err := r.Beta()
	require.NoError(t, err)
	assert.Equal(t, 0.0, beta)

	gamma, err := r.Gamma()
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, gamma)

	diagonal := MustRay(nil, []int{1, 1, 0})
	alpha, err = diagonal.Alpha()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, alpha, 1e-12)

	_, err = MustRay(nil, nil).Alpha()
	assert.ErrorIs(t, err, ErrDegenerateLine)

	assert.True(t, r.Equal(MustRay([]int{1, 1}, []int{1, 3})))
	assert.False(t, r.Equal(MustRay([]int{1, 3}, []int{1, 1})))
}
