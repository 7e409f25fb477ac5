package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
)

// String returns the display string of a value.
func String(v Value) string {
	switch x := v.(type) {
	case nil, *Null:
		return "null"
	case *String:
		return x.Value
	case *Boolean:
		return strconv.FormatBool(x.Value)
	case *Number:
		return formatNumber(x.Value)
	case *Datetime:
		return formatDatetime(x.Value)
	case *Array, *Object:
		return JSON(v, 0)
	case *Function:
		return "<function>"
	case *Regex:
		return "<regex>"
	}
	return v.Inspect()
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return TrimNumber(strconv.FormatFloat(f, 'f', 12, 64))
}

// TrimNumber removes trailing fractional zeroes and a dangling decimal point
// from a fixed-point number string.
func TrimNumber(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// JSON serializes a value with sorted object keys. An indent of zero
// produces compact output. Functions and regexes serialize as null.
func JSON(v Value, indent int) string {
	var buf bytes.Buffer
	writeJSON(&buf, v, indent, 0)
	return buf.String()
}

func writeJSON(buf *bytes.Buffer, v Value, indent, depth int) {
	switch x := v.(type) {
	case *Boolean:
		buf.WriteString(strconv.FormatBool(x.Value))
	case *Number:
		if math.IsNaN(x.Value) || math.IsInf(x.Value, 0) {
			buf.WriteString("null")
			return
		}
		b, _ := json.Marshal(x.Value)
		buf.Write(b)
	case *String:
		writeJSONString(buf, x.Value)
	case *Datetime:
		writeJSONString(buf, formatDatetime(x.Value))
	case *Array:
		if len(x.Elements) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for ix, elem := range x.Elements {
			if ix > 0 {
				buf.WriteByte(',')
			}
			writeJSONNewline(buf, indent, depth+1)
			writeJSON(buf, elem, indent, depth+1)
		}
		writeJSONNewline(buf, indent, depth)
		buf.WriteByte(']')
	case *Object:
		if x.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		keys := x.Keys()
		slices.Sort(keys)
		buf.WriteByte('{')
		for ix, key := range keys {
			if ix > 0 {
				buf.WriteByte(',')
			}
			writeJSONNewline(buf, indent, depth+1)
			writeJSONString(buf, key)
			buf.WriteByte(':')
			if indent > 0 {
				buf.WriteByte(' ')
			}
			writeJSON(buf, x.pairs[key], indent, depth+1)
		}
		writeJSONNewline(buf, indent, depth)
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
}

func writeJSONNewline(buf *bytes.Buffer, indent, depth int) {
	if indent <= 0 {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", indent*depth))
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
}

// ParseJSON decodes JSON text into a value, keeping object keys in document
// order.
func ParseJSON(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid JSON: unexpected data after top-level value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			arr := NewArray()
			for dec.More() {
				elem, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.Elements = append(arr.Elements, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("invalid JSON: object key %v is not a string", keyTok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		}
		return nil, fmt.Errorf("invalid JSON: unexpected delimiter %q", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON number %q: %w", t, err)
		}
		return NewNumber(f), nil
	case string:
		return NewString(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NIL, nil
	}
	return nil, fmt.Errorf("invalid JSON: unexpected token %v", tok)
}
