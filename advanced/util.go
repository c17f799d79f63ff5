package advanced

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system, so sweeps can
// assume Y values are never equal. Comparisons are exact.
func (p Point) Below(other Point) bool {
	if p.Y == other.Y {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Above(other Point) bool {
	return !p.Below(other)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// VertexStack holds indexes into a polygon's vertex list.
type VertexStack []int

func (s *VertexStack) Push(i int) {
	*s = append(*s, i)
}

// Pop returns -1 when the stack is empty.
func (s *VertexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *VertexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}
