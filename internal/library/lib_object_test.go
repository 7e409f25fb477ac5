package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barescript/internal/value"
)

func TestObjectFunctions(t *testing.T) {
	obj := func() *value.Object {
		return value.NewObject().Set("b", n(1)).Set("a", s("x"))
	}
	testCases := []struct {
		name string
		fn   string
		args []value.Value
		want value.Value
	}{
		{"new", "objectNew", []value.Value{s("a"), n(1), s("b"), n(2)}, value.NewObject().Set("a", n(1)).Set("b", n(2))},
		{"new trailing key", "objectNew", []value.Value{s("a"), n(1), s("b")}, value.NewObject().Set("a", n(1)).Set("b", value.NIL)},
		{"new empty", "objectNew", nil, value.NewObject()},
		{"new non-string key", "objectNew", []value.Value{n(1), n(2)}, value.NIL},
		{"get", "objectGet", []value.Value{obj(), s("a")}, s("x")},
		{"get missing", "objectGet", []value.Value{obj(), s("z")}, value.NIL},
		{"get default", "objectGet", []value.Value{obj(), s("z"), n(5)}, n(5)},
		{"get non-object", "objectGet", []value.Value{arr(), s("a"), n(5)}, n(5)},
		{"has", "objectHas", []value.Value{obj(), s("b")}, value.TRUE},
		{"has missing", "objectHas", []value.Value{obj(), s("z")}, value.FALSE},
		{"has non-object", "objectHas", []value.Value{s("b"), s("b")}, value.FALSE},
		{"keys", "objectKeys", []value.Value{obj()}, arr(s("b"), s("a"))},
		{"keys non-object", "objectKeys", []value.Value{arr()}, value.NIL},
		{"copy non-object", "objectCopy", []value.Value{n(1)}, value.NIL},
		{"assign non-object", "objectAssign", []value.Value{obj(), n(1)}, value.NIL},
		{"set non-object", "objectSet", []value.Value{n(1), s("a"), n(2)}, value.NIL},
		{"delete non-object", "objectDelete", []value.Value{n(1), s("a")}, value.NIL},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.want, call(t, tc.fn, nil, tc.args...))
		})
	}
}

func TestObjectMutation(t *testing.T) {
	obj := value.NewObject().Set("a", n(1))

	assertValue(t, n(2), call(t, "objectSet", nil, obj, s("b"), n(2)))
	assertValue(t, value.NIL, call(t, "objectSet", nil, obj, s("c")))
	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())

	assertValue(t, value.NIL, call(t, "objectDelete", nil, obj, s("c")))
	assertValue(t, value.NIL, call(t, "objectDelete", nil, obj, s("missing")))
	assert.Equal(t, []string{"a", "b"}, obj.Keys())

	other := value.NewObject().Set("c", n(3)).Set("a", n(9))
	result := call(t, "objectAssign", nil, obj, other)
	assert.Same(t, obj, result)
	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
	assertValue(t, value.NewObject().Set("a", n(9)).Set("b", n(2)).Set("c", n(3)), obj)
}

func TestObjectCopyIsShallow(t *testing.T) {
	inner := arr(n(1))
	obj := value.NewObject().Set("z", inner).Set("a", n(1))

	copied, ok := call(t, "objectCopy", nil, obj).(*value.Object)
	require.True(t, ok)
	assert.NotSame(t, obj, copied)
	assert.Equal(t, []string{"z", "a"}, copied.Keys())

	copied.Set("b", n(2))
	assert.False(t, obj.Has("b"))
	v, _ := copied.Get("z")
	assert.Same(t, inner, v)
}

func TestJSONFunctions(t *testing.T) {
	parsed, ok := call(t, "jsonParse", nil, s(`{"b": 1, "a": [true, null]}`)).(*value.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, parsed.Keys())

	assertValue(t, value.NIL, call(t, "jsonParse", nil, s("{bad")))
	assertValue(t, value.NIL, call(t, "jsonParse", nil, n(1)))

	assertValue(t, s(`{"a":[true,null],"b":1}`), call(t, "jsonStringify", nil, parsed))
	assertValue(t, s("{\n  \"a\": [\n    true,\n    null\n  ],\n  \"b\": 1\n}"), call(t, "jsonStringify", nil, parsed, n(2)))
	assertValue(t, s("null"), call(t, "jsonStringify", nil))
	assertValue(t, s(`"a\"b"`), call(t, "jsonStringify", nil, s(`a"b`)))
	assertValue(t, value.NIL, call(t, "jsonStringify", nil, parsed, n(0)))
	assertValue(t, value.NIL, call(t, "jsonStringify", nil, parsed, n(1.5)))
	assertValue(t, value.NIL, call(t, "jsonStringify", nil, parsed, n(1e12)))
}
