package library

import (
	"barescript/internal/value"
)

func fnObjectAssign() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		obj, ok := asObject(a[0])
		obj2, ok2 := asObject(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		for _, key := range obj2.Keys() {
			v, _ := obj2.Get(key)
			obj.Set(key, v)
		}
		return obj
	}}
}

func fnObjectCopy() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		obj, ok := asObject(a[0])
		if !ok {
			return value.NIL
		}

		copied := value.NewObject()
		for _, key := range obj.Keys() {
			v, _ := obj.Get(key)
			copied.Set(key, v)
		}
		return copied
	}}
}

func fnObjectDelete() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		obj, ok := asObject(a[0])
		key, ok2 := asString(a[1])
		if ok && ok2 {
			obj.Delete(key)
		}
		return value.NIL
	}}
}

// A missing key or a non-object argument yields the default value.
func fnObjectGet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		defaultValue := orNull(a[2])
		obj, ok := asObject(a[0])
		key, ok2 := asString(a[1])
		if !ok || !ok2 {
			return defaultValue
		}

		v, ok := obj.Get(key)
		if !ok {
			return defaultValue
		}
		return orNull(v)
	}}
}

func fnObjectHas() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		obj, ok := asObject(a[0])
		key, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.FALSE
		}

		return value.NewBool(obj.Has(key))
	}}
}

func fnObjectKeys() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		obj, ok := asObject(a[0])
		if !ok {
			return value.NIL
		}

		keys := value.NewArray()
		for _, key := range obj.Keys() {
			keys.Elements = append(keys.Elements, value.NewString(key))
		}
		return keys
	}}
}

// objectNew takes alternating key and value arguments. A trailing key
// without a value maps to null.
func fnObjectNew() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		obj := value.NewObject()
		for ix := 0; ix < len(args); ix += 2 {
			key, ok := asString(args[ix])
			if !ok {
				return value.NIL
			}
			var v value.Value = value.NIL
			if ix+1 < len(args) {
				v = orNull(args[ix+1])
			}
			obj.Set(key, v)
		}
		return obj
	}}
}

func fnObjectSet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		obj, ok := asObject(a[0])
		key, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		v := orNull(a[2])
		obj.Set(key, v)
		return v
	}}
}
