package advanced

import (
	"math"

	"github.com/pkg/errors"
)

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpAnd
	OpOr
	OpXor
	OpRShift
	OpLShift
)

var operatorSymbols = [...]string{"+", "-", "*", "/", "//", "%", "**", "&", "|", "^", ">>", "<<"}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorSymbols) {
		return "?"
	}
	return operatorSymbols[op]
}

// divides reports whether the right hand side of op is a divisor.
func (op Operator) divides() bool {
	return op == OpDiv || op == OpFloorDiv || op == OpMod
}

// Both truncate to integers first.
func bitwise(a, b float64, f func(a, b int64) int64) float64 {
	return float64(f(int64(a), int64(b)))
}

func shift(a, b float64, left bool) float64 {
	if b < 0 {
		throw(errors.Wrapf(ErrNegativeShift, "shift by %v", b))
	}
	if left {
		return float64(int64(a) << uint64(b))
	}
	return float64(int64(a) >> uint64(b))
}

// floatMod is the modulus with the sign of the divisor.
func floatMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func apply(op Operator, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpFloorDiv:
		return math.Floor(a / b)
	case OpMod:
		return floatMod(a, b)
	case OpPow:
		return math.Pow(a, b)
	case OpAnd:
		return bitwise(a, b, func(a, b int64) int64 { return a & b })
	case OpOr:
		return bitwise(a, b, func(a, b int64) int64 { return a | b })
	case OpXor:
		return bitwise(a, b, func(a, b int64) int64 { return a ^ b })
	case OpRShift:
		return shift(a, b, false)
	case OpLShift:
		return shift(a, b, true)
	}
	fatalf("unknown operator %d", op)
	return 0
}

// combine is the single funnel behind the forward, reflected and in-place
// forms of every operator. divisor is reported when right holds a zero and op
// divides.
func combine(op Operator, left, right [3]float64, divisor interface{}) [3]float64 {
	if op.divides() {
		for _, v := range right {
			if v == 0 {
				throw(&DivisionByZeroError{Operand: divisor})
			}
		}
	}
	var out [3]float64
	for i := range out {
		out[i] = apply(op, left[i], right[i])
	}
	return out
}

// operand resolves the other side of an operator. Scalars broadcast to every
// ordinate; anything else is coerced like NewPoint, so missing ordinates are
// zero.
func operand(v interface{}) [3]float64 {
	if c, ok, err := fromScalar(v, "x"); ok {
		if err != nil {
			throw(err)
		}
		f := c.Values[0]
		return [3]float64{f, f, f}
	}
	p, err := NewPoint(v)
	if err != nil {
		throw(err)
	}
	return p.array()
}

// Apply computes p op other.
func (p Point) Apply(op Operator, other interface{}) (result Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = HandlePanicRecover(r)
		}
	}()
	return fromArray(combine(op, p.array(), operand(other), other)), nil
}

// ApplyReflected computes other op p.
func (p Point) ApplyReflected(op Operator, other interface{}) (result Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = HandlePanicRecover(r)
		}
	}()
	return fromArray(combine(op, operand(other), p.array(), p)), nil
}

// ApplyInPlace computes p op other and stores the result in p, returning p.
// p is left untouched on error.
func (p *Point) ApplyInPlace(op Operator, other interface{}) (result *Point, err error) {
	out, err := p.Apply(op, other)
	if err != nil {
		return nil, err
	}
	*p = out
	return p, nil
}

// The typed helpers below cover the common Point/Point and Point/scalar
// cases. Operators that cannot fail for those operands return no error.

func (p Point) Add(q Point) Point {
	return fromArray(combine(OpAdd, p.array(), q.array(), q))
}

func (p Point) Sub(q Point) Point {
	return fromArray(combine(OpSub, p.array(), q.array(), q))
}

func (p Point) Mul(q Point) Point {
	return fromArray(combine(OpMul, p.array(), q.array(), q))
}

func (p Point) Pow(q Point) Point {
	return fromArray(combine(OpPow, p.array(), q.array(), q))
}

func (p Point) And(q Point) Point {
	return fromArray(combine(OpAnd, p.array(), q.array(), q))
}

func (p Point) Or(q Point) Point {
	return fromArray(combine(OpOr, p.array(), q.array(), q))
}

func (p Point) Xor(q Point) Point {
	return fromArray(combine(OpXor, p.array(), q.array(), q))
}

// Scale multiplies every ordinate by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Div divides every ordinate by s.
func (p Point) Div(s float64) (Point, error) {
	return p.Apply(OpDiv, s)
}

func (p Point) DivPoint(q Point) (Point, error) {
	return p.Apply(OpDiv, q)
}

func (p Point) FloorDiv(q Point) (Point, error) {
	return p.Apply(OpFloorDiv, q)
}

func (p Point) Mod(q Point) (Point, error) {
	return p.Apply(OpMod, q)
}

func (p Point) LShift(q Point) (Point, error) {
	return p.Apply(OpLShift, q)
}

func (p Point) RShift(q Point) (Point, error) {
	return p.Apply(OpRShift, q)
}

func (p *Point) AddAssign(q Point) *Point {
	*p = p.Add(q)
	return p
}

func (p *Point) SubAssign(q Point) *Point {
	*p = p.Sub(q)
	return p
}

func (p *Point) MulAssign(q Point) *Point {
	*p = p.Mul(q)
	return p
}

func (p *Point) DivAssign(q Point) (*Point, error) {
	return p.ApplyInPlace(OpDiv, q)
}

// Unary operators.

func (p Point) Neg() Point {
	return p.Scale(-1)
}

// Pos returns the receiver itself.
func (p *Point) Pos() *Point {
	return p
}

func (p Point) Abs() Point {
	return p.each(math.Abs)
}

// Invert is the bitwise complement of each truncated ordinate.
func (p Point) Invert() Point {
	return p.each(func(v float64) float64 { return float64(^int64(v)) })
}

// Round rounds each ordinate to n decimal places, halves to even.
func (p Point) Round(n int) Point {
	scale := math.Pow(10, float64(n))
	return p.each(func(v float64) float64 {
		if n == 0 {
			return math.RoundToEven(v)
		}
		return math.RoundToEven(v*scale) / scale
	})
}

func (p Point) Floor() Point {
	return p.each(math.Floor)
}

func (p Point) Ceil() Point {
	return p.each(math.Ceil)
}

func (p Point) Trunc() Point {
	return p.each(math.Trunc)
}

func (p Point) each(f func(float64) float64) Point {
	return Point{f(p.X), f(p.Y), f(p.Z)}
}
