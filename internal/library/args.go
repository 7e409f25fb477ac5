package library

import (
	"iter"
	"math"
	"slices"

	"barescript/internal/value"
)

// DefaultArgsSeq yields one value per declared default: the caller's
// argument when present, the default otherwise. With rest set, one more
// array value holds the arguments beyond the declared arity.
func DefaultArgsSeq(args []value.Value, defaults []value.Value, rest bool) iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for ix, def := range defaults {
			v := def
			if ix < len(args) {
				v = args[ix]
			}
			if !yield(v) {
				return
			}
		}
		if rest {
			var extra []value.Value
			if len(args) > len(defaults) {
				extra = slices.Clone(args[len(defaults):])
			}
			yield(value.NewArray(extra...))
		}
	}
}

// DefaultArgs pads or truncates args to the length of defaults.
func DefaultArgs(args []value.Value, defaults ...value.Value) []value.Value {
	return slices.Collect(DefaultArgsSeq(args, defaults, false))
}

// DefaultArgsRest is DefaultArgs plus the residual arguments beyond the
// declared arity (never nil).
func DefaultArgsRest(args []value.Value, defaults ...value.Value) ([]value.Value, []value.Value) {
	filled := DefaultArgs(args, defaults...)
	rest := []value.Value{}
	if len(args) > len(defaults) {
		rest = slices.Clone(args[len(defaults):])
	}
	return filled, rest
}

func asArray(v value.Value) (*value.Array, bool) {
	a, ok := v.(*value.Array)
	return a, ok && a != nil
}

func asObject(v value.Value) (*value.Object, bool) {
	o, ok := v.(*value.Object)
	return o, ok && o != nil
}

func asString(v value.Value) (string, bool) {
	s, ok := v.(*value.String)
	if !ok || s == nil {
		return "", false
	}
	return s.Value, true
}

func asNumber(v value.Value) (float64, bool) {
	n, ok := v.(*value.Number)
	if !ok || n == nil {
		return 0, false
	}
	return n.Value, true
}

const (
	// maxSafeInteger is the largest integer a float64 holds exactly.
	maxSafeInteger = 1<<53 - 1

	// maxResultSize bounds the element count of arrays and the byte length
	// of strings built from a count argument.
	maxResultSize = 1 << 28

	// maxFormatWidth bounds formatting arguments such as fraction digits and
	// JSON indentation.
	maxFormatWidth = 100
)

// asInt accepts only numbers holding an exact integer.
func asInt(v value.Value) (int, bool) {
	f, ok := asNumber(v)
	if !ok || !value.IsInteger(f) || math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int(f), true
}

// asIndex accepts an integer in [0, length).
func asIndex(v value.Value, length int) (int, bool) {
	i, ok := asInt(v)
	if !ok || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func asFunction(v value.Value) (*value.Function, bool) {
	f, ok := v.(*value.Function)
	return f, ok && f != nil
}

func asDatetime(v value.Value) (*value.Datetime, bool) {
	d, ok := v.(*value.Datetime)
	return d, ok && d != nil
}

func asRegex(v value.Value) (*value.Regex, bool) {
	r, ok := v.(*value.Regex)
	return r, ok && r != nil && r.Re != nil
}

func num(i int) value.Value {
	return value.NewInt(i)
}

// orNull maps a nil Value to the null singleton.
func orNull(v value.Value) value.Value {
	if v == nil {
		return value.NIL
	}
	return v
}
