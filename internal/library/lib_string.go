package library

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"barescript/internal/value"
)

// String indexes count Unicode code points.

func fnStringCharCodeAt() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}
		runes := []rune(s)
		index, ok := asIndex(a[1], len(runes))
		if !ok {
			return value.NIL
		}

		return num(int(runes[index]))
	}}
}

// stringAffix builds stringStartsWith and stringEndsWith.
func stringAffix(has func(s, affix string) bool) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		s, ok := asString(a[0])
		search, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		return value.NewBool(has(s, search))
	}}
}

func fnStringEndsWith() *value.Function   { return stringAffix(strings.HasSuffix) }
func fnStringStartsWith() *value.Function { return stringAffix(strings.HasPrefix) }

func fnStringFromCharCode() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		var sb strings.Builder
		for _, arg := range args {
			code, ok := asInt(arg)
			if !ok || code < 0 || code > unicode.MaxRune || !utf8.ValidRune(rune(code)) {
				return value.NIL
			}
			sb.WriteRune(rune(code))
		}
		return value.NewString(sb.String())
	}}
}

func fnStringIndexOf() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, value.NewInt(0))
		s, ok := asString(a[0])
		search, ok2 := asString(a[1])
		if !ok || !ok2 {
			return num(-1)
		}
		runes := []rune(s)
		index, ok := asIndex(a[2], len(runes))
		if !ok {
			return num(-1)
		}

		found := strings.Index(string(runes[index:]), search)
		if found < 0 {
			return num(-1)
		}
		return num(index + utf8.RuneCountInString(string(runes[index:])[:found]))
	}}
}

// stringLastIndexOf finds the last match that starts at or before index.
func fnStringLastIndexOf() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		s, ok := asString(a[0])
		search, ok2 := asString(a[1])
		if !ok || !ok2 {
			return num(-1)
		}
		runes := []rune(s)
		if value.IsNull(a[2]) {
			a[2] = num(len(runes) - 1)
		}
		index, ok := asIndex(a[2], len(runes))
		if !ok {
			return num(-1)
		}

		head := string(runes[:min(index+utf8.RuneCountInString(search), len(runes))])
		found := strings.LastIndex(head, search)
		if found < 0 {
			return num(-1)
		}
		return num(utf8.RuneCountInString(head[:found]))
	}}
}

func fnStringLength() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return num(0)
		}

		return num(utf8.RuneCountInString(s))
	}}
}

// stringMap builds the single-string transforms.
func stringMap(fn func(s string) string) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		return value.NewString(fn(s))
	}}
}

func fnStringLower() *value.Function { return stringMap(strings.ToLower) }
func fnStringTrim() *value.Function  { return stringMap(strings.TrimSpace) }
func fnStringUpper() *value.Function { return stringMap(strings.ToUpper) }

func fnStringNew() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		return value.NewString(value.String(a[0]))
	}}
}

func fnStringRepeat() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		s, ok := asString(a[0])
		count, ok2 := asInt(a[1])
		if !ok || !ok2 || count < 0 {
			return value.NIL
		}
		if count > 0 && len(s) > maxResultSize/count {
			return value.NIL
		}

		return value.NewString(strings.Repeat(s, count))
	}}
}

func fnStringReplace() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		s, ok := asString(a[0])
		old, ok2 := asString(a[1])
		replacement, ok3 := asString(a[2])
		if !ok || !ok2 || !ok3 {
			return value.NIL
		}

		return value.NewString(strings.ReplaceAll(s, old, replacement))
	}}
}

func fnStringSlice() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}
		runes := []rune(s)
		start, end, ok := sliceBounds(a[1], a[2], len(runes))
		if !ok {
			return value.NIL
		}

		return value.NewString(string(runes[start:end]))
	}}
}

// An empty separator splits the string into its characters.
func fnStringSplit() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		s, ok := asString(a[0])
		separator, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		parts := value.NewArray()
		for _, part := range strings.Split(s, separator) {
			parts.Elements = append(parts.Elements, value.NewString(part))
		}
		return parts
	}}
}
