package library

import (
	"math"
	"math/rand/v2"

	"barescript/internal/value"
)

// mathFn1 wraps a function of one number. Arguments outside the domain
// (valid returns false) yield null.
func mathFn1(fn func(x float64) float64, valid func(x float64) bool) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		x, ok := asNumber(a[0])
		if !ok || (valid != nil && !valid(x)) {
			return value.NIL
		}

		return value.NewNumber(fn(x))
	}}
}

func positive(x float64) bool { return x > 0 }

func fnMathAbs() *value.Function   { return mathFn1(math.Abs, nil) }
func fnMathAcos() *value.Function  { return mathFn1(math.Acos, nil) }
func fnMathAsin() *value.Function  { return mathFn1(math.Asin, nil) }
func fnMathAtan() *value.Function  { return mathFn1(math.Atan, nil) }
func fnMathCeil() *value.Function  { return mathFn1(math.Ceil, nil) }
func fnMathCos() *value.Function   { return mathFn1(math.Cos, nil) }
func fnMathFloor() *value.Function { return mathFn1(math.Floor, nil) }
func fnMathLn() *value.Function    { return mathFn1(math.Log, positive) }
func fnMathSin() *value.Function   { return mathFn1(math.Sin, nil) }
func fnMathTan() *value.Function   { return mathFn1(math.Tan, nil) }

func fnMathSqrt() *value.Function {
	return mathFn1(math.Sqrt, func(x float64) bool { return x >= 0 })
}

func fnMathSign() *value.Function {
	return mathFn1(func(x float64) float64 {
		switch {
		case x < 0:
			return -1
		case x > 0:
			return 1
		}
		return 0
	}, nil)
}

func fnMathAtan2() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		y, ok := asNumber(a[0])
		x, ok2 := asNumber(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		return value.NewNumber(math.Atan2(y, x))
	}}
}

func fnMathLog() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(10))
		x, ok := asNumber(a[0])
		base, ok2 := asNumber(a[1])
		if !ok || !ok2 || x <= 0 || base <= 0 || base == 1 {
			return value.NIL
		}

		if base == 10 {
			return value.NewNumber(math.Log10(x))
		}
		return value.NewNumber(math.Log(x) / math.Log(base))
	}}
}

// mathExtreme returns the value that wins every comparison by better.
// No arguments yields null.
func mathExtreme(better func(x, best float64) bool) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		if len(args) == 0 {
			return value.NIL
		}
		var best float64
		for ix, arg := range args {
			x, ok := asNumber(arg)
			if !ok {
				return value.NIL
			}
			if ix == 0 || better(x, best) {
				best = x
			}
		}
		return value.NewNumber(best)
	}}
}

func fnMathMax() *value.Function {
	return mathExtreme(func(x, best float64) bool { return x > best })
}

func fnMathMin() *value.Function {
	return mathExtreme(func(x, best float64) bool { return x < best })
}

func fnMathPi() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		return value.NewNumber(math.Pi)
	}}
}

func fnMathRandom() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		return value.NewNumber(rand.Float64())
	}}
}

func fnMathRound() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(0))
		x, ok := asNumber(a[0])
		digits, ok2 := asInt(a[1])
		if !ok || !ok2 || digits < 0 {
			return value.NIL
		}

		return value.NewNumber(value.RoundNumber(x, digits))
	}}
}
