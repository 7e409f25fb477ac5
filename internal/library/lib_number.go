package library

import (
	"strconv"

	"barescript/internal/value"
)

func fnNumberParseFloat() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		return orNull(value.ParseNumber(s))
	}}
}

func fnNumberParseInt() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(10))
		s, ok := asString(a[0])
		radix, ok2 := asInt(a[1])
		if !ok || !ok2 || radix < 2 || radix > 36 {
			return value.NIL
		}

		return orNull(value.ParseInteger(s, radix))
	}}
}

func fnNumberToFixed() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(2), value.FALSE)
		x, ok := asNumber(a[0])
		digits, ok2 := asInt(a[1])
		if !ok || !ok2 || digits < 0 || digits > maxFormatWidth {
			return value.NIL
		}

		result := strconv.FormatFloat(value.RoundNumber(x, digits), 'f', digits, 64)
		if value.Bool(a[2]) {
			result = value.TrimNumber(result)
		}
		return value.NewString(result)
	}}
}
