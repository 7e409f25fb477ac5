package library

import (
	"slices"
	"strings"

	"barescript/internal/value"
)

func fnArrayCopy() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}

		return value.NewArray(slices.Clone(array.Elements)...)
	}}
}

func fnArrayExtend() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		array, ok := asArray(a[0])
		array2, ok2 := asArray(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		array.Elements = append(array.Elements, array2.Elements...)
		return array
	}}
}

func fnArrayGet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}
		index, ok := asIndex(a[1], len(array.Elements))
		if !ok {
			return value.NIL
		}

		return orNull(array.Elements[index])
	}}
}

// findIndex scans from start toward the end (step 1) or the beginning
// (step -1). The search value may be a match function, f(value) -> bool.
func findIndex(array *value.Array, search value.Value, start, step int, opts *Options) int {
	match := func(elem value.Value) bool {
		return value.Compare(elem, search) == 0
	}
	if fn, ok := asFunction(search); ok {
		match = func(elem value.Value) bool {
			return value.Bool(fn.Call([]value.Value{elem}, opts))
		}
	}

	for ix := start; ix >= 0 && ix < len(array.Elements); ix += step {
		if match(array.Elements[ix]) {
			return ix
		}
	}
	return -1
}

func fnArrayIndexOf() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, value.NewInt(0))
		array, ok := asArray(a[0])
		if !ok {
			return num(-1)
		}
		index, ok := asIndex(a[2], len(array.Elements))
		if !ok {
			return num(-1)
		}

		return num(findIndex(array, a[1], index, 1, opts))
	}}
}

func fnArrayJoin() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		array, ok := asArray(a[0])
		separator, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		parts := make([]string, len(array.Elements))
		for ix, elem := range array.Elements {
			parts[ix] = value.String(elem)
		}
		return value.NewString(strings.Join(parts, separator))
	}}
}

func fnArrayLastIndexOf() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		array, ok := asArray(a[0])
		if !ok {
			return num(-1)
		}
		if value.IsNull(a[2]) {
			a[2] = value.NewInt(len(array.Elements) - 1)
		}
		index, ok := asIndex(a[2], len(array.Elements))
		if !ok {
			return num(-1)
		}

		return num(findIndex(array, a[1], index, -1, opts))
	}}
}

func fnArrayLength() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		array, ok := asArray(a[0])
		if !ok {
			return num(0)
		}

		return num(len(array.Elements))
	}}
}

func fnArrayNew() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		return value.NewArray(slices.Clone(args)...)
	}}
}

func fnArrayNewSize() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, value.NewInt(0), value.NewInt(0))
		size, ok := asInt(a[0])
		if !ok || size < 0 || size > maxResultSize {
			return value.NIL
		}

		elements := make([]value.Value, size)
		for ix := range elements {
			elements[ix] = orNull(a[1])
		}
		return value.NewArray(elements...)
	}}
}

func fnArrayPop() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		array, ok := asArray(a[0])
		if !ok || len(array.Elements) == 0 {
			return value.NIL
		}

		last := array.Elements[len(array.Elements)-1]
		array.Elements = array.Elements[:len(array.Elements)-1]
		return orNull(last)
	}}
}

func fnArrayPush() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a, values := DefaultArgsRest(args, nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}

		array.Elements = append(array.Elements, values...)
		return array
	}}
}

func fnArraySet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}
		index, ok := asIndex(a[1], len(array.Elements))
		if !ok {
			return value.NIL
		}

		array.Elements[index] = orNull(a[2])
		return array.Elements[index]
	}}
}

func fnArrayShift() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		array, ok := asArray(a[0])
		if !ok || len(array.Elements) == 0 {
			return value.NIL
		}

		first := array.Elements[0]
		array.Elements = slices.Delete(array.Elements, 0, 1)
		return orNull(first)
	}}
}

// sliceBounds validates [start, end) against a length; both bounds may equal
// the length. An inverted range yields an empty slice.
func sliceBounds(startArg, endArg value.Value, length int) (int, int, bool) {
	if value.IsNull(endArg) {
		endArg = value.NewInt(length)
	}
	start, ok := asInt(startArg)
	if !ok || start < 0 || start > length {
		return 0, 0, false
	}
	end, ok := asInt(endArg)
	if !ok || end < 0 || end > length {
		return 0, 0, false
	}
	if start > end {
		end = start
	}
	return start, end, true
}

func fnArraySlice() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.NewInt(0), nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}
		start, end, ok := sliceBounds(a[1], a[2], len(array.Elements))
		if !ok {
			return value.NIL
		}

		return value.NewArray(slices.Clone(array.Elements[start:end])...)
	}}
}

func fnArraySort() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		array, ok := asArray(a[0])
		if !ok {
			return value.NIL
		}

		compare := value.Compare
		if !value.IsNull(a[1]) {
			compareFn, ok := asFunction(a[1])
			if !ok {
				return value.NIL
			}
			compare = func(v1, v2 value.Value) int {
				result, _ := asNumber(compareFn.Call([]value.Value{v1, v2}, opts))
				switch {
				case result < 0:
					return -1
				case result > 0:
					return 1
				}
				return 0
			}
		}

		slices.SortStableFunc(array.Elements, compare)
		return array
	}}
}
