package library

import (
	"log/slog"

	"barescript/internal/value"
)

func fnJSONParse() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		v, err := value.ParseJSON(s)
		if err != nil {
			slog.Debug("jsonParse failed", slog.Any("error", err))
			return value.NIL
		}
		return v
	}}
}

func fnJSONStringify() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		indent := 0
		if !value.IsNull(a[1]) {
			i, ok := asInt(a[1])
			if !ok || i < 1 || i > maxFormatWidth {
				return value.NIL
			}
			indent = i
		}

		return value.NewString(value.JSON(a[0], indent))
	}}
}
