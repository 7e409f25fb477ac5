package library

import (
	"strings"

	"barescript/internal/value"
)

const upperHex = "0123456789ABCDEF"

// quoteURL percent-encodes every byte of s except unreserved characters and
// the bytes listed in safe.
func quoteURL(s, safe string) string {
	var sb strings.Builder
	for ix := 0; ix < len(s); ix++ {
		c := s[ix]
		if isUnreserved(c) || strings.IndexByte(safe, c) >= 0 {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') ||
		c == '_' || c == '.' || c == '-' || c == '~'
}

// urlEncoder encodes with safeExtra when extra is true (the default) and
// with safe otherwise.
func urlEncoder(safeExtra, safe string) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.TRUE)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		if value.Bool(a[1]) {
			return value.NewString(quoteURL(s, safeExtra))
		}
		return value.NewString(quoteURL(s, safe))
	}}
}

func fnURLEncode() *value.Function {
	return urlEncoder("':/&(", "':/&()")
}

func fnURLEncodeComponent() *value.Function {
	return urlEncoder("'(", "'()")
}
