package advanced

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Coercion turns heterogeneous values into Point ordinates. The rules are
// tried in a fixed order, and the first that recognizes the value wins:
//
//  1. nil resets every target ordinate to zero
//  2. a numeric scalar (or a string/bool that converts to one) sets the first
//     target ordinate only
//  3. an array or slice assigns positionally to the target ordinates; extra
//     items are ignored
//  4. a map with string keys assigns the target keys it contains
//  5. a struct (or pointer to one) with X, Y or Z fields assigns the fields it
//     has
//
// Anything else is an UngrokkableError. A mapping is always consulted before
// struct fields, and a scalar is never treated as a sequence.

// Rule identifies which coercion rule resolved a value.
type Rule int

const (
	RuleNil Rule = iota
	RuleScalar
	RuleSequence
	RuleMapping
	RuleFields
)

var ruleNames = [...]string{"nil", "scalar", "sequence", "mapping", "fields"}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}
	return ruleNames[r]
}

// Coercion is the result of resolving a value against a set of ordinate keys.
// Values and Present are indexed by axis (x=0, y=1, z=2).
type Coercion struct {
	Rule    Rule
	Values  [3]float64
	Present [3]bool
}

// Apply copies the present ordinates into dst.
func (c Coercion) Apply(dst *Point) {
	for i, ok := range c.Present {
		if ok {
			dst.set(i, c.Values[i])
		}
	}
}

func (c *Coercion) assign(key byte, v float64) {
	i := strings.IndexByte(Axes, key)
	c.Values[i] = v
	c.Present[i] = true
}

// Coerce resolves v into ordinates for keys, which must be a combination of
// "x", "y" and "z" (e.g. "xyz", "xy", "yz", "xz").
func Coerce(v interface{}, keys string) (Coercion, error) {
	if err := checkKeys(keys); err != nil {
		return Coercion{}, err
	}
	if c, ok := fromNil(v, keys); ok {
		return c, nil
	}
	if c, ok, err := fromScalar(v, keys); ok || err != nil {
		return c, err
	}
	if c, ok, err := fromSequence(v, keys); ok || err != nil {
		return c, err
	}
	if c, ok, err := fromMapping(v, keys); ok || err != nil {
		return c, err
	}
	if c, ok, err := fromFields(v, keys); ok || err != nil {
		return c, err
	}
	return Coercion{}, &UngrokkableError{Value: v}
}

// checkKeys rejects key strings that are empty or name anything other than
// x, y and z.
func checkKeys(keys string) error {
	if keys == "" {
		return &InvalidAxisError{Axis: keys}
	}
	for i := 0; i < len(keys); i++ {
		if strings.IndexByte(Axes, keys[i]) < 0 {
			return &InvalidAxisError{Axis: keys[i : i+1]}
		}
	}
	return nil
}

// FromNil, FromScalar, FromSequence, FromMapping and FromFields apply a single
// coercion rule. ok reports whether the rule recognized v. Each fails with an
// InvalidAxisError when keys is not a combination of x, y and z.

func FromNil(v interface{}, keys string) (Coercion, bool, error) {
	if err := checkKeys(keys); err != nil {
		return Coercion{}, false, err
	}
	c, ok := fromNil(v, keys)
	return c, ok, nil
}

func FromScalar(v interface{}, keys string) (Coercion, bool, error) {
	return checked(fromScalar, v, keys)
}

func FromSequence(v interface{}, keys string) (Coercion, bool, error) {
	return checked(fromSequence, v, keys)
}

func FromMapping(v interface{}, keys string) (Coercion, bool, error) {
	return checked(fromMapping, v, keys)
}

func FromFields(v interface{}, keys string) (Coercion, bool, error) {
	return checked(fromFields, v, keys)
}

func checked(rule func(interface{}, string) (Coercion, bool, error), v interface{}, keys string) (Coercion, bool, error) {
	if err := checkKeys(keys); err != nil {
		return Coercion{}, false, err
	}
	return rule(v, keys)
}

// fromNil recognizes nil interfaces and nil pointers.
func fromNil(v interface{}, keys string) (Coercion, bool) {
	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || !rv.IsNil() {
			return Coercion{}, false
		}
	}
	c := Coercion{Rule: RuleNil}
	for i := 0; i < len(keys); i++ {
		c.assign(keys[i], 0)
	}
	return c, true
}

// fromScalar recognizes a single number and assigns it to the first key.
func fromScalar(v interface{}, keys string) (Coercion, bool, error) {
	f, ok, err := scalar(reflect.ValueOf(v))
	if !ok {
		return Coercion{}, false, nil
	}
	if err != nil {
		return Coercion{}, true, &UngrokkableError{Value: v}
	}
	c := Coercion{Rule: RuleScalar}
	c.assign(keys[0], f)
	return c, true, nil
}

// fromSequence recognizes arrays and slices. Every item assigned must be a
// scalar.
func fromSequence(v interface{}, keys string) (Coercion, bool, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Coercion{}, false, nil
	}
	c := Coercion{Rule: RuleSequence}
	for i := 0; i < len(keys) && i < rv.Len(); i++ {
		f, ok, err := scalar(rv.Index(i))
		if !ok || err != nil {
			return Coercion{}, true, &UngrokkableError{Value: v}
		}
		c.assign(keys[i], f)
	}
	return c, true, nil
}

// fromMapping recognizes maps keyed by strings. Keys not named in keys are
// ignored, and absent keys are skipped.
func fromMapping(v interface{}, keys string) (Coercion, bool, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return Coercion{}, false, nil
	}
	if rv.Type().Key().Kind() != reflect.String {
		return Coercion{}, true, &UngrokkableError{Value: v}
	}
	c := Coercion{Rule: RuleMapping}
	for i := 0; i < len(keys); i++ {
		item := rv.MapIndex(reflect.ValueOf(keys[i : i+1]).Convert(rv.Type().Key()))
		if !item.IsValid() {
			continue
		}
		f, ok, err := scalar(item)
		if !ok || err != nil {
			return Coercion{}, true, &UngrokkableError{Value: v}
		}
		c.assign(keys[i], f)
	}
	return c, true, nil
}

// fromFields recognizes structs with fields named after the ordinates. Field
// names are matched case-insensitively, so both X and x are found. A struct
// with none of the fields is ungrokkable.
func fromFields(v interface{}, keys string) (Coercion, bool, error) {
	switch p := v.(type) {
	case Point:
		return fromPoint(p, keys), true, nil
	case *Point:
		return fromPoint(*p, keys), true, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Coercion{}, false, nil
	}
	c := Coercion{Rule: RuleFields}
	found := false
	for i := 0; i < len(keys); i++ {
		name := keys[i : i+1]
		field := rv.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) })
		if !field.IsValid() {
			continue
		}
		f, ok, err := scalar(field)
		if !ok || err != nil {
			return Coercion{}, true, &UngrokkableError{Value: v}
		}
		c.assign(keys[i], f)
		found = true
	}
	if !found {
		return Coercion{}, true, &UngrokkableError{Value: v}
	}
	return c, true, nil
}

func fromPoint(p Point, keys string) Coercion {
	c := Coercion{Rule: RuleFields}
	for i := 0; i < len(keys); i++ {
		c.assign(keys[i], p.get(strings.IndexByte(Axes, keys[i])))
	}
	return c
}

// scalar converts a reflected value into a float. ok reports whether the
// value has a scalar kind at all; err reports a scalar that did not convert
// (e.g. a string that is not a number).
func scalar(rv reflect.Value) (f float64, ok bool, err error) {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	var canonical interface{}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		canonical = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		canonical = rv.Uint()
	case reflect.Float32, reflect.Float64:
		canonical = rv.Float()
	case reflect.Bool:
		canonical = rv.Bool()
	case reflect.String:
		canonical = strings.TrimSpace(rv.String())
	default:
		return 0, false, nil
	}
	f, err = cast.ToFloat64E(canonical)
	return f, true, err
}
