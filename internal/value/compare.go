package value

import (
	"cmp"
	"slices"
	"strings"
)

// Bool interprets a value as a boolean.
func Bool(v Value) bool {
	switch x := v.(type) {
	case nil, *Null:
		return false
	case *Boolean:
		return x.Value
	case *Number:
		return x.Value != 0
	case *String:
		return x.Value != ""
	case *Array:
		return len(x.Elements) > 0
	default:
		return true
	}
}

// Compare orders two values: -1, 0 or 1. Null sorts before everything and
// values of different types are ordered by type name.
func Compare(left, right Value) int {
	lt, rt := TypeOf(left), TypeOf(right)
	if lt == NULL {
		if rt == NULL {
			return 0
		}
		return -1
	}
	if rt == NULL {
		return 1
	}
	if lt != rt {
		return strings.Compare(string(lt), string(rt))
	}

	switch l := left.(type) {
	case *String:
		return strings.Compare(l.Value, right.(*String).Value)
	case *Number:
		return cmp.Compare(l.Value, right.(*Number).Value)
	case *Boolean:
		r := right.(*Boolean).Value
		switch {
		case l.Value == r:
			return 0
		case !l.Value:
			return -1
		default:
			return 1
		}
	case *Datetime:
		return l.Value.Compare(right.(*Datetime).Value)
	case *Array:
		r := right.(*Array)
		for ix := 0; ix < len(l.Elements) && ix < len(r.Elements); ix++ {
			if c := Compare(l.Elements[ix], r.Elements[ix]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(l.Elements), len(r.Elements))
	case *Object:
		return compareObjects(l, right.(*Object))
	}
	return 0
}

func compareObjects(left, right *Object) int {
	lkeys, rkeys := left.Keys(), right.Keys()
	slices.Sort(lkeys)
	slices.Sort(rkeys)
	for ix := 0; ix < len(lkeys) && ix < len(rkeys); ix++ {
		if c := strings.Compare(lkeys[ix], rkeys[ix]); c != 0 {
			return c
		}
		if c := Compare(left.pairs[lkeys[ix]], right.pairs[rkeys[ix]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(lkeys), len(rkeys))
}

// Is reports whether two values are the same object. Scalars are compared
// by value, containers, functions and regexes by identity.
func Is(a, b Value) bool {
	at, bt := TypeOf(a), TypeOf(b)
	if at != bt {
		return false
	}
	switch x := a.(type) {
	case nil, *Null:
		return true
	case *Boolean:
		return x.Value == b.(*Boolean).Value
	case *Number:
		return x.Value == b.(*Number).Value
	case *String:
		return x.Value == b.(*String).Value
	case *Datetime:
		return x.Value.Equal(b.(*Datetime).Value)
	}
	return a == b
}
