package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"barescript/internal/value"
)

func TestStringFunctions(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
		args []value.Value
		want value.Value
	}{
		{"charCodeAt", "stringCharCodeAt", []value.Value{s("abc"), n(1)}, n(98)},
		{"charCodeAt unicode", "stringCharCodeAt", []value.Value{s("héllo"), n(1)}, n(233)},
		{"charCodeAt out of range", "stringCharCodeAt", []value.Value{s("abc"), n(3)}, value.NIL},
		{"endsWith", "stringEndsWith", []value.Value{s("abc"), s("bc")}, value.TRUE},
		{"endsWith false", "stringEndsWith", []value.Value{s("abc"), s("b")}, value.FALSE},
		{"endsWith non-string", "stringEndsWith", []value.Value{n(1), s("1")}, value.NIL},
		{"startsWith", "stringStartsWith", []value.Value{s("abc"), s("ab")}, value.TRUE},
		{"fromCharCode", "stringFromCharCode", []value.Value{n(72), n(105), n(0x263A)}, s("Hi☺")},
		{"fromCharCode negative", "stringFromCharCode", []value.Value{n(-1)}, value.NIL},
		{"fromCharCode surrogate", "stringFromCharCode", []value.Value{n(65), n(0xD800)}, value.NIL},
		{"fromCharCode low surrogate", "stringFromCharCode", []value.Value{n(0xDFFF)}, value.NIL},
		{"fromCharCode above max", "stringFromCharCode", []value.Value{n(0x110000)}, value.NIL},
		{"indexOf", "stringIndexOf", []value.Value{s("hello"), s("l")}, n(2)},
		{"indexOf from", "stringIndexOf", []value.Value{s("hello"), s("l"), n(3)}, n(3)},
		{"indexOf unicode", "stringIndexOf", []value.Value{s("ééx"), s("x")}, n(2)},
		{"indexOf missing", "stringIndexOf", []value.Value{s("hello"), s("z")}, n(-1)},
		{"indexOf empty string", "stringIndexOf", []value.Value{s(""), s("")}, n(-1)},
		{"indexOf non-string", "stringIndexOf", []value.Value{n(5), s("5")}, n(-1)},
		{"lastIndexOf", "stringLastIndexOf", []value.Value{s("hello"), s("l")}, n(3)},
		{"lastIndexOf from", "stringLastIndexOf", []value.Value{s("hello"), s("l"), n(2)}, n(2)},
		{"lastIndexOf before", "stringLastIndexOf", []value.Value{s("hello"), s("l"), n(1)}, n(-1)},
		{"lastIndexOf multi", "stringLastIndexOf", []value.Value{s("abab"), s("ab"), n(2)}, n(2)},
		{"length", "stringLength", []value.Value{s("héllo")}, n(5)},
		{"length non-string", "stringLength", []value.Value{n(12)}, n(0)},
		{"lower", "stringLower", []value.Value{s("AbC")}, s("abc")},
		{"upper", "stringUpper", []value.Value{s("AbC")}, s("ABC")},
		{"trim", "stringTrim", []value.Value{s("  a b \n")}, s("a b")},
		{"new number", "stringNew", []value.Value{n(1.5)}, s("1.5")},
		{"new null", "stringNew", nil, s("null")},
		{"repeat", "stringRepeat", []value.Value{s("ab"), n(3)}, s("ababab")},
		{"repeat negative", "stringRepeat", []value.Value{s("ab"), n(-1)}, value.NIL},
		{"repeat too large", "stringRepeat", []value.Value{s("ab"), n(1e18)}, value.NIL},
		{"repeat above limit", "stringRepeat", []value.Value{s("ab"), n(maxResultSize/2 + 1)}, value.NIL},
		{"repeat empty", "stringRepeat", []value.Value{s(""), n(1e15)}, s("")},
		{"replace", "stringReplace", []value.Value{s("a-b-c"), s("-"), s("+")}, s("a+b+c")},
		{"slice", "stringSlice", []value.Value{s("hello"), n(1), n(3)}, s("el")},
		{"slice to end", "stringSlice", []value.Value{s("héllo"), n(1)}, s("éllo")},
		{"slice out of range", "stringSlice", []value.Value{s("abc"), n(4)}, value.NIL},
		{"split", "stringSplit", []value.Value{s("a,b,,c"), s(",")}, arr(s("a"), s("b"), s(""), s("c"))},
		{"split characters", "stringSplit", []value.Value{s("abc"), s("")}, arr(s("a"), s("b"), s("c"))},
		{"split non-string", "stringSplit", []value.Value{s("abc"), n(1)}, value.NIL},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.want, call(t, tc.fn, nil, tc.args...))
		})
	}
}

func TestStringSliceRoundTrip(t *testing.T) {
	for _, str := range []string{"", "a", "hello", "héllo wörld", "日本語"} {
		length := call(t, "stringLength", nil, s(str)).(*value.Number).Value
		for i := 0.0; i <= length; i++ {
			head := call(t, "stringSlice", nil, s(str), n(0), n(i))
			tail := call(t, "stringSlice", nil, s(str), n(i))
			assert.Equal(t, str, value.String(head)+value.String(tail), "%q at %v", str, i)
		}
	}
}

func TestURLEncode(t *testing.T) {
	testCases := []struct {
		name string
		fn   string
		args []value.Value
		want value.Value
	}{
		{"encode", "urlEncode", []value.Value{s("https://x.com/a b?q=(1)&r=é")}, s("https://x.com/a%20b%3Fq%3D(1%29&r%3D%C3%A9")},
		{"encode no extra", "urlEncode", []value.Value{s("a (b)"), value.FALSE}, s("a%20(b)")},
		{"component", "urlEncodeComponent", []value.Value{s("a/b (c)'")}, s("a%2Fb%20(c%29'")},
		{"component no extra", "urlEncodeComponent", []value.Value{s("(c)"), value.FALSE}, s("(c)")},
		{"unreserved", "urlEncodeComponent", []value.Value{s("A-z_0.9~")}, s("A-z_0.9~")},
		{"non-string", "urlEncode", []value.Value{n(1)}, value.NIL},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.want, call(t, tc.fn, nil, tc.args...))
		})
	}
}
