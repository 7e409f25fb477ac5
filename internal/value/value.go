package value

import (
	"slices"
	"strconv"

	"github.com/dlclark/regexp2"
)

type Type string

const (
	ARRAY    Type = "array"
	BOOLEAN  Type = "boolean"
	DATETIME Type = "datetime"
	FUNCTION Type = "function"
	NULL     Type = "null"
	NUMBER   Type = "number"
	OBJECT   Type = "object"
	REGEX    Type = "regex"
	STRING   Type = "string"
)

var (
	NIL   = &Null{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

// Value is a BareScript runtime value. A nil Value is treated as null.
type Value interface {
	Type() Type
	Inspect() string
}

// BuiltinFunction is the calling convention shared by every function value.
type BuiltinFunction func(args []Value, opts *Options) Value

type Null struct{}

func (n *Null) Type() Type      { return NULL }
func (n *Null) Inspect() string { return "null" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

type Number struct {
	Value float64
}

func (n *Number) Type() Type      { return NUMBER }
func (n *Number) Inspect() string { return formatNumber(n.Value) }

type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING }
func (s *String) Inspect() string { return s.Value }

type Array struct {
	Elements []Value
}

func (a *Array) Type() Type      { return ARRAY }
func (a *Array) Inspect() string { return JSON(a, 0) }

// Object is a string-keyed mapping that iterates in insertion order.
type Object struct {
	keys  []string
	pairs map[string]Value
}

func (o *Object) Type() Type      { return OBJECT }
func (o *Object) Inspect() string { return JSON(o, 0) }

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.pairs[key]
	return v, ok
}

// Set adds or replaces a key. New keys go to the end of the iteration order.
func (o *Object) Set(key string, v Value) *Object {
	if o.pairs == nil {
		o.pairs = map[string]Value{}
	}
	if _, ok := o.pairs[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.pairs[key] = v
	return o
}

func (o *Object) Delete(key string) {
	if _, ok := o.pairs[key]; !ok {
		return
	}
	delete(o.pairs, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

func (o *Object) Has(key string) bool {
	_, ok := o.pairs[key]
	return ok
}

// Keys returns a copy of the keys in insertion order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

func (o *Object) Len() int { return len(o.keys) }

// Regex is a compiled regular expression. Groups lists the capture groups in
// pattern order, with "" for unnamed groups.
type Regex struct {
	Pattern string
	Flags   string
	Re      *regexp2.Regexp
	Groups  []string
}

func (r *Regex) Type() Type      { return REGEX }
func (r *Regex) Inspect() string { return "<regex>" }

type Function struct {
	Name string
	Fn   BuiltinFunction
}

func (f *Function) Type() Type      { return FUNCTION }
func (f *Function) Inspect() string { return "<function>" }

// Call invokes the function. Calling a nil function yields null.
func (f *Function) Call(args []Value, opts *Options) Value {
	if f == nil || f.Fn == nil {
		return NIL
	}
	return f.Fn(args, opts)
}

func NewNumber(f float64) *Number { return &Number{Value: f} }

func NewInt(i int) *Number { return &Number{Value: float64(i)} }

func NewString(s string) *String { return &String{Value: s} }

func NewBool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}

func NewArray(elements ...Value) *Array {
	if elements == nil {
		elements = []Value{}
	}
	return &Array{Elements: elements}
}

func NewObject() *Object {
	return &Object{pairs: map[string]Value{}}
}

// TypeOf returns the type tag of v, mapping a nil Value to null.
func TypeOf(v Value) Type {
	if v == nil {
		return NULL
	}
	return v.Type()
}

// IsNull reports whether v is null or a nil Value.
func IsNull(v Value) bool {
	return TypeOf(v) == NULL
}
