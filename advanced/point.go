package advanced

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Point is a location in three dimensional space. W is fixed at 1 and exists
// only so homogeneous coordinates can be read off a point.
type Point struct {
	X, Y, Z float64
}

const W = 1.0

// Axes lists the ordinate keys in index order.
const Axes = "xyz"

// Keyword sets named ordinates when passed to NewPoint. Keys is a combination
// of "x", "y" and "z"; Value is coerced against it.
type Keyword struct {
	Keys  string
	Value interface{}
}

func X(v interface{}) Keyword { return Keyword{"x", v} }
func Y(v interface{}) Keyword { return Keyword{"y", v} }
func Z(v interface{}) Keyword { return Keyword{"z", v} }

// NewPoint builds a point from positional values followed by keywords.
//
// A single positional value is coerced against "xyz", so NewPoint(1) is
// (1, 0, 0), NewPoint([]float64{1, 2}) is (1, 2, 0) and NewPoint(other) copies
// other. Several positional values are treated as a sequence. Keywords are
// applied after the positional values, in order, so the last write wins.
func NewPoint(args ...interface{}) (Point, error) {
	var p Point
	var positional []interface{}
	var keywords []Keyword
	for _, arg := range args {
		if kw, ok := arg.(Keyword); ok {
			keywords = append(keywords, kw)
		} else {
			positional = append(positional, arg)
		}
	}

	switch len(positional) {
	case 0:
	case 1:
		if err := p.Set("xyz", positional[0]); err != nil {
			return Point{}, err
		}
	default:
		if err := p.Set("xyz", positional); err != nil {
			return Point{}, err
		}
	}
	for _, kw := range keywords {
		if err := p.Set(kw.Keys, kw.Value); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}

// MustPoint is like NewPoint but panics on error.
func MustPoint(args ...interface{}) Point {
	p, err := NewPoint(args...)
	if err != nil {
		panic(err)
	}
	return p
}

func Origin() Point {
	return Point{}
}

// Units returns the points one unit along each axis, scaled by scale.
func Units(scale float64) [3]Point {
	return [3]Point{{X: scale}, {Y: scale}, {Z: scale}}
}

// Unit returns the unit vector pointing from a to b. It is a
// DivisionByZeroError when a and b are the same point.
func Unit(a, b Point) (Point, error) {
	return b.Sub(a).Div(a.Distance(b))
}

// Gaussian returns a point whose ordinates are drawn from a normal
// distribution.
func Gaussian(rng *rand.Rand, mu, sigma float64) Point {
	return Point{
		X: rng.NormFloat64()*sigma + mu,
		Y: rng.NormFloat64()*sigma + mu,
		Z: rng.NormFloat64()*sigma + mu,
	}
}

// Random returns a point inside the sphere of the given radius around origin.
func Random(rng *rand.Rand, origin Point, radius float64) Point {
	r := rng.Float64() * radius
	u := rng.Float64() * 2 * math.Pi
	v := rng.Float64()*math.Pi - math.Pi/2
	return Point{
		X: origin.X + r*math.Cos(v)*math.Cos(u),
		Y: origin.Y + r*math.Cos(v)*math.Sin(u),
		Z: origin.Z + r*math.Sin(v),
	}
}

func (p Point) get(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func (p *Point) set(i int, v float64) {
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

func (p Point) array() [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

func fromArray(a [3]float64) Point {
	return Point{a[0], a[1], a[2]}
}

// Set assigns the ordinates named by keys from v using the coercion rules.
// "w" is accepted but ignored. Nothing is modified when coercion fails.
func (p *Point) Set(keys string, v interface{}) error {
	keys, err := normalizeKeys(keys)
	if err != nil {
		return err
	}
	if keys == "" {
		return nil
	}
	c, err := Coerce(v, keys)
	if err != nil {
		return err
	}
	c.Apply(p)
	return nil
}

func normalizeKeys(keys string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(keys) {
		switch {
		case r == 'w':
		case strings.ContainsRune(Axes, r):
			b.WriteRune(r)
		default:
			return "", &InvalidAxisError{Axis: string(r)}
		}
	}
	return b.String(), nil
}

func (p *Point) SetXY(v interface{}) error   { return p.Set("xy", v) }
func (p *Point) SetYZ(v interface{}) error   { return p.Set("yz", v) }
func (p *Point) SetXZ(v interface{}) error   { return p.Set("xz", v) }
func (p *Point) SetXYZ(v interface{}) error  { return p.Set("xyz", v) }
func (p *Point) SetXYZW(v interface{}) error { return p.Set("xyzw", v) }

func (p Point) W() float64 { return W }

func (p Point) XY() [2]float64   { return [2]float64{p.X, p.Y} }
func (p Point) YZ() [2]float64   { return [2]float64{p.Y, p.Z} }
func (p Point) XZ() [2]float64   { return [2]float64{p.X, p.Z} }
func (p Point) XYZ() [3]float64  { return p.array() }
func (p Point) XYZW() [4]float64 { return [4]float64{p.X, p.Y, p.Z, W} }

// Get returns the ordinate named key, one of "x", "y", "z" or "w".
func (p Point) Get(key string) (float64, error) {
	switch strings.ToLower(key) {
	case "x":
		return p.X, nil
	case "y":
		return p.Y, nil
	case "z":
		return p.Z, nil
	case "w":
		return W, nil
	}
	return 0, &InvalidAxisError{Axis: key}
}

// Index returns ordinate i, where 0..3 are x, y, z and w.
func (p Point) Index(i int) (float64, error) {
	switch {
	case i >= 0 && i < 3:
		return p.get(i), nil
	case i == 3:
		return W, nil
	}
	return 0, &IndexError{Index: i, Len: 4}
}

// SetIndex assigns ordinate i. Index 3 is w and is ignored.
func (p *Point) SetIndex(i int, v interface{}) error {
	switch {
	case i >= 0 && i < 3:
		return p.Set(Axes[i:i+1], v)
	case i == 3:
		return nil
	}
	return &IndexError{Index: i, Len: 4}
}

// IsZero reports whether p is the origin. A point converts to false exactly
// when it is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

func (p Point) Bool() bool {
	return !p.IsZero()
}

// Equal compares every ordinate exactly.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y && p.Z == other.Z
}

// Hash is consistent with Equal: -0 and 0 hash alike.
func (p Point) Hash() uint64 {
	var buf [24]byte
	for i, v := range p.array() {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:])
}

func (p Point) String() string {
	return fmt.Sprintf("x=%v, y=%v, z=%v", p.X, p.Y, p.Z)
}

func (p Point) GoString() string {
	return fmt.Sprintf("Point(x=%v, y=%v, z=%v)", p.X, p.Y, p.Z)
}
