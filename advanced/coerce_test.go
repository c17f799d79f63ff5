package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attrs struct {
	X, Y float64
}

type lowerAttrs struct {
	x int
	z string
}

type noAttrs struct {
	Name string
}

func TestCoerce(t *testing.T) {
	t.Run("nil resets every key", func(t *testing.T) {
		c, err := Coerce(nil, "xyz")
		require.NoError(t, err)
		assert.Equal(t, RuleNil, c.Rule)
		assert.Equal(t, [3]bool{true, true, true}, c.Present)
		assert.Equal(t, [3]float64{}, c.Values)
	})

	t.Run("typed nil pointer is nil", func(t *testing.T) {
		var p *Point
		c, err := Coerce(p, "xy")
		require.NoError(t, err)
		assert.Equal(t, RuleNil, c.Rule)
		assert.Equal(t, [3]bool{true, true, false}, c.Present)
	})

	t.Run("scalar sets first key only", func(t *testing.T) {
		c, err := Coerce(3, "yz")
		require.NoError(t, err)
		assert.Equal(t, RuleScalar, c.Rule)
		assert.Equal(t, [3]bool{false, true, false}, c.Present)
		assert.Equal(t, 3.0, c.Values[1])
	})

	t.Run("numeric strings are scalars", func(t *testing.T) {
		c, err := Coerce(" 2.5 ", "x")
		require.NoError(t, err)
		assert.Equal(t, RuleScalar, c.Rule)
		assert.Equal(t, 2.5, c.Values[0])
	})

	t.Run("non-numeric string is ungrokkable", func(t *testing.T) {
		_, err := Coerce("banana", "xyz")
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	})

	t.Run("sequence assigns positionally", func(t *testing.T) {
		c, err := Coerce([]int{1, 2}, "xyz")
		require.NoError(t, err)
		assert.Equal(t, RuleSequence, c.Rule)
		assert.Equal(t, [3]bool{true, true, false}, c.Present)
		assert.Equal(t, [3]float64{1, 2, 0}, c.Values)
	})

	t.Run("sequence extras are ignored", func(t *testing.T) {
		c, err := Coerce([4]float64{1, 2, 3, 4}, "xy")
		require.NoError(t, err)
		assert.Equal(t, [3]float64{1, 2, 0}, c.Values)
		assert.Equal(t, [3]bool{true, true, false}, c.Present)
	})

	t.Run("mixed sequence", func(t *testing.T) {
		c, err := Coerce([]interface{}{1, "2", 3.5}, "xyz")
		require.NoError(t, err)
		assert.Equal(t, [3]float64{1, 2, 3.5}, c.Values)
	})

	t.Run("sequence with a non-scalar is ungrokkable", func(t *testing.T) {
		_, err := Coerce([]interface{}{1, []int{2}}, "xyz")
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	})

	t.Run("mapping assigns present keys", func(t *testing.T) {
		c, err := Coerce(map[string]float64{"y": 4, "w": 9}, "xyz")
		require.NoError(t, err)
		assert.Equal(t, RuleMapping, c.Rule)
		assert.Equal(t, [3]bool{false, true, false}, c.Present)
		assert.Equal(t, 4.0, c.Values[1])
	})

	t.Run("mapping with non-string keys is ungrokkable", func(t *testing.T) {
		_, err := Coerce(map[int]float64{0: 1}, "xyz")
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	})

	t.Run("fields", func(t *testing.T) {
		c, err := Coerce(attrs{X: 1, Y: 2}, "xyz")
		require.NoError(t, err)
		assert.Equal(t, RuleFields, c.Rule)
		assert.Equal(t, [3]bool{true, true, false}, c.Present)
		assert.Equal(t, [3]float64{1, 2, 0}, c.Values)
	})

	t.Run("lower case fields through a pointer", func(t *testing.T) {
		c, err := Coerce(&lowerAttrs{x: 7, z: "8"}, "xyz")
		require.NoError(t, err)
		assert.Equal(t, [3]bool{true, false, true}, c.Present)
		assert.Equal(t, [3]float64{7, 0, 8}, c.Values)
	})

	t.Run("points", func(t *testing.T) {
		c, err := Coerce(Point{1, 2, 3}, "yz")
		require.NoError(t, err)
		assert.Equal(t, [3]float64{0, 2, 3}, c.Values)
	})

	t.Run("struct without ordinates is ungrokkable", func(t *testing.T) {
		_, err := Coerce(noAttrs{"nope"}, "xyz")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)

		var ungrokkable *UngrokkableError
		require.ErrorAs(t, err, &ungrokkable)
		assert.Equal(t, noAttrs{"nope"}, ungrokkable.Value)
	})

	t.Run("other kinds are ungrokkable", func(t *testing.T) {
		_, err := Coerce(func() {}, "xyz")
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)
		_, err = Coerce(make(chan int), "xyz")
		assert.ErrorIs(t, err, ErrUngrokkableCoercion)
	})
}

func TestCoercionApply(t *testing.T) {
	p := Point{1, 2, 3}
	c, err := Coerce(map[string]int{"z": 9}, "xyz")
	require.NoError(t, err)
	c.Apply(&p)
	assert.Equal(t, Point{1, 2, 9}, p)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "mapping", RuleMapping.String())
	assert.Equal(t, "unknown", Rule(42).String())
}

func TestCoerceInvalidKeys(t *testing.T) {
	testCases := []struct {
		value interface{}
		keys  string
	}{
		{1.0, ""},
		{1.0, "w"},
		{[]int{1, 2}, "xq"},
		{nil, "xyw"},
		{map[string]int{"x": 1}, "X"},
	}
	for _, tc := range testCases {
		_, err := Coerce(tc.value, tc.keys)
		assert.ErrorIs(t, err, ErrInvalidAxis, "keys %q", tc.keys)
	}

	rules := map[string]func(interface{}, string) (Coercion, bool, error){
		"nil":      FromNil,
		"scalar":   FromScalar,
		"sequence": FromSequence,
		"mapping":  FromMapping,
		"fields":   FromFields,
	}
	for name, rule := range rules {
		rule := rule
		t.Run(name, func(t *testing.T) {
			for _, keys := range []string{"", "w", "xq"} {
				_, ok, err := rule(1.0, keys)
				assert.False(t, ok)
				assert.ErrorIs(t, err, ErrInvalidAxis, "keys %q", keys)
			}
			_, _, err := rule(1.0, "xy")
			assert.NoError(t, err)
		})
	}
}
