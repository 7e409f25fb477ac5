package library

import (
	"log/slog"
	"strings"

	"barescript/internal/data"
	"barescript/internal/value"
)

func fnDataAggregate() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		rows, ok := asArray(a[0])
		aggregation, ok2 := asObject(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		result, err := data.Aggregate(rows.Elements, aggregation)
		if err != nil {
			slog.Debug("dataAggregate failed", slog.Any("error", err))
			return value.NIL
		}
		return result
	}}
}

// Each string argument contributes one or more lines; null arguments are
// skipped.
func fnDataParseCSV() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		var lines []string
		for _, arg := range args {
			if value.IsNull(arg) {
				continue
			}
			s, ok := asString(arg)
			if !ok {
				return value.NIL
			}
			lines = append(lines, splitLines(s)...)
		}

		result, err := data.ParseCSV(strings.Join(lines, "\n"))
		if err != nil {
			slog.Debug("dataParseCSV failed", slog.Any("error", err))
			return value.NIL
		}
		return result
	}}
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func fnDataSort() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		rows, ok := asArray(a[0])
		sorts, ok2 := asArray(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		if err := data.Sort(rows.Elements, sorts); err != nil {
			slog.Debug("dataSort failed", slog.Any("error", err))
			return value.NIL
		}
		return rows
	}}
}

func fnDataTop() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(1), nil)
		rows, ok := asArray(a[0])
		count, ok2 := asInt(a[1])
		if !ok || !ok2 || count < 1 {
			return value.NIL
		}

		var categoryFields []string
		if !value.IsNull(a[2]) {
			fields, ok := asArray(a[2])
			if !ok {
				return value.NIL
			}
			for _, f := range fields.Elements {
				name, ok := asString(f)
				if !ok {
					return value.NIL
				}
				categoryFields = append(categoryFields, name)
			}
		}

		result, err := data.Top(rows.Elements, count, categoryFields)
		if err != nil {
			slog.Debug("dataTop failed", slog.Any("error", err))
			return value.NIL
		}
		return result
	}}
}

func fnDataValidate() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.FALSE)
		rows, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}

		if _, err := data.Validate(rows.Elements, value.Bool(a[1])); err != nil {
			slog.Debug("dataValidate failed", slog.Any("error", err))
			return value.NIL
		}
		return rows
	}}
}
