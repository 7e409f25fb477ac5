package library

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barescript/internal/value"
)

func TestMathFunctions(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
		args []value.Value
		want value.Value
	}{
		{"abs", "mathAbs", []value.Value{n(-2.5)}, n(2.5)},
		{"abs non-number", "mathAbs", []value.Value{s("-2")}, value.NIL},
		{"ceil", "mathCeil", []value.Value{n(1.2)}, n(2)},
		{"floor", "mathFloor", []value.Value{n(-1.2)}, n(-2)},
		{"cos", "mathCos", []value.Value{n(0)}, n(1)},
		{"sin", "mathSin", []value.Value{n(0)}, n(0)},
		{"ln", "mathLn", []value.Value{n(1)}, n(0)},
		{"ln zero", "mathLn", []value.Value{n(0)}, value.NIL},
		{"log default base", "mathLog", []value.Value{n(1000)}, n(3)},
		{"log negative", "mathLog", []value.Value{n(-1)}, value.NIL},
		{"log base one", "mathLog", []value.Value{n(8), n(1)}, value.NIL},
		{"sqrt", "mathSqrt", []value.Value{n(9)}, n(3)},
		{"sqrt negative", "mathSqrt", []value.Value{n(-1)}, value.NIL},
		{"sign negative", "mathSign", []value.Value{n(-5)}, n(-1)},
		{"sign zero", "mathSign", []value.Value{n(0)}, n(0)},
		{"sign positive", "mathSign", []value.Value{n(0.1)}, n(1)},
		{"max", "mathMax", []value.Value{n(1), n(3), n(2)}, n(3)},
		{"min", "mathMin", []value.Value{n(1), n(-3), n(2)}, n(-3)},
		{"max empty", "mathMax", nil, value.NIL},
		{"min non-number", "mathMin", []value.Value{n(1), s("0")}, value.NIL},
		{"round half up", "mathRound", []value.Value{n(2.5)}, n(3)},
		{"round half away", "mathRound", []value.Value{n(-2.5)}, n(-3)},
		{"round digits", "mathRound", []value.Value{n(1.234), n(2)}, n(1.23)},
		{"round negative digits", "mathRound", []value.Value{n(1.234), n(-1)}, value.NIL},
		{"pi", "mathPi", nil, n(math.Pi)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.want, call(t, tc.fn, nil, tc.args...))
		})
	}
}

func TestMathInexact(t *testing.T) {
	number := func(v value.Value) float64 {
		t.Helper()
		x, ok := v.(*value.Number)
		require.True(t, ok, "want number, got %s", value.TypeOf(v))
		return x.Value
	}

	assert.InDelta(t, 3, number(call(t, "mathLog", nil, n(8), n(2))), 1e-12)
	assert.InDelta(t, math.Pi/4, number(call(t, "mathAtan2", nil, n(1), n(1))), 1e-12)
	assert.InDelta(t, math.Pi/2, number(call(t, "mathAsin", nil, n(1))), 1e-12)
	assert.InDelta(t, 0, number(call(t, "mathAcos", nil, n(1))), 1e-12)
	assert.InDelta(t, 1, number(call(t, "mathTan", nil, n(math.Pi/4))), 1e-12)
	assert.InDelta(t, math.Pi/4, number(call(t, "mathAtan", nil, n(1))), 1e-12)

	for range 100 {
		r := number(call(t, "mathRandom", nil))
		assert.GreaterOrEqual(t, r, 0.0)
		assert.Less(t, r, 1.0)
	}
}

func TestNumberFunctions(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
		args []value.Value
		want value.Value
	}{
		{"parseFloat", "numberParseFloat", []value.Value{s(" 1.5 ")}, n(1.5)},
		{"parseFloat exponent", "numberParseFloat", []value.Value{s("1e3")}, n(1000)},
		{"parseFloat invalid", "numberParseFloat", []value.Value{s("abc")}, value.NIL},
		{"parseFloat non-string", "numberParseFloat", []value.Value{n(1)}, value.NIL},
		{"parseInt", "numberParseInt", []value.Value{s("12")}, n(12)},
		{"parseInt hex", "numberParseInt", []value.Value{s("ff"), n(16)}, n(255)},
		{"parseInt base 36", "numberParseInt", []value.Value{s("z"), n(36)}, n(35)},
		{"parseInt bad radix", "numberParseInt", []value.Value{s("10"), n(1)}, value.NIL},
		{"parseInt invalid", "numberParseInt", []value.Value{s("1.5")}, value.NIL},
		{"toFixed", "numberToFixed", []value.Value{n(1.5)}, s("1.50")},
		{"toFixed digits", "numberToFixed", []value.Value{n(1.25), n(1)}, s("1.3")},
		{"toFixed zero digits", "numberToFixed", []value.Value{n(2.5), n(0)}, s("3")},
		{"toFixed trim", "numberToFixed", []value.Value{n(1.5), n(3), value.TRUE}, s("1.5")},
		{"toFixed trim integer", "numberToFixed", []value.Value{n(2), n(2), value.TRUE}, s("2")},
		{"toFixed negative digits", "numberToFixed", []value.Value{n(1), n(-1)}, value.NIL},
		{"toFixed max digits", "numberToFixed", []value.Value{n(0), n(100), value.TRUE}, s("0")},
		{"toFixed too many digits", "numberToFixed", []value.Value{n(1), n(1e12)}, value.NIL},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.want, call(t, tc.fn, nil, tc.args...))
		})
	}
}
