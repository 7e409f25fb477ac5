package library

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barescript/internal/value"
)

// call invokes a script function by name.
func call(t *testing.T, name string, opts *Options, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := ScriptFunctions[name]
	require.True(t, ok, "unknown function %s", name)
	return fn.Call(args, opts)
}

func n(f float64) value.Value {
	return value.NewNumber(f)
}

func s(str string) value.Value {
	return value.NewString(str)
}

func arr(v ...value.Value) *value.Array {
	return value.NewArray(v...)
}

// assertValue compares by JSON so containers compare structurally.
func assertValue(t *testing.T, want, got value.Value) {
	t.Helper()
	assert.Equal(t, value.TypeOf(want), value.TypeOf(got))
	if diff := cmp.Diff(value.JSON(want, 0), value.JSON(got, 0)); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultArgs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []value.Value
		defaults []value.Value
		want     []value.Value
	}{
		{"pad", []value.Value{n(1)}, []value.Value{nil, n(2), n(3)}, []value.Value{n(1), n(2), n(3)}},
		{"truncate", []value.Value{n(1), n(2), n(3)}, []value.Value{nil}, []value.Value{n(1)}},
		{"exact", []value.Value{n(1), s("a")}, []value.Value{nil, nil}, []value.Value{n(1), s("a")}},
		{"no args", nil, []value.Value{nil, n(0)}, []value.Value{nil, n(0)}},
		{"explicit null kept", []value.Value{value.NIL}, []value.Value{n(5)}, []value.Value{value.NIL}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultArgs(tc.args, tc.defaults...)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, len(tc.defaults))
		})
	}
}

func TestDefaultArgsRest(t *testing.T) {
	filled, rest := DefaultArgsRest([]value.Value{n(1), n(2), n(3)}, nil)
	assert.Equal(t, []value.Value{n(1)}, filled)
	assert.Equal(t, []value.Value{n(2), n(3)}, rest)

	filled, rest = DefaultArgsRest(nil, n(7))
	assert.Equal(t, []value.Value{n(7)}, filled)
	assert.NotNil(t, rest)
	assert.Empty(t, rest)

	seq := slices.Collect(DefaultArgsSeq([]value.Value{n(1), n(2)}, []value.Value{nil}, true))
	require.Len(t, seq, 2)
	assertValue(t, arr(n(2)), seq[1])
}

func TestScriptFunctionNames(t *testing.T) {
	for name, fn := range ScriptFunctions {
		assert.Equal(t, name, fn.Name)
		assert.NotNil(t, fn.Fn, name)
	}
	assert.Len(t, ScriptFunctions, 97)
}

func TestExpressionFunctions(t *testing.T) {
	assert.Len(t, ExpressionFunctionMap, 46)
	assert.Len(t, ExpressionFunctions, len(ExpressionFunctionMap))
	for exprName, scriptName := range ExpressionFunctionMap {
		fn, ok := Lookup(exprName, true)
		require.True(t, ok, exprName)
		assert.Same(t, ScriptFunctions[scriptName], fn, exprName)
	}

	_, ok := Lookup("len", false)
	assert.False(t, ok)
	fn, ok := Lookup("stringLength", false)
	require.True(t, ok)
	assertValue(t, n(3), fn.Call([]value.Value{s("abc")}, nil))
}

// Every built-in must tolerate missing and mistyped arguments.
func TestTotality(t *testing.T) {
	argLists := [][]value.Value{
		nil,
		{value.NIL, value.NIL, value.NIL},
		{value.TRUE, value.NewObject(), arr(), n(-1)},
		{s("x"), n(1.5), value.FALSE},
		{n(1e18), n(1e18), n(1e18), n(1e18)},
		{s("ab"), n(1e18), n(1e12), n(1e12)},
		{n(2024), n(1), n(1), n(1e12), n(1e12), n(1e12), n(1e15)},
		{arr(n(1)), n(1e12), n(1e12)},
		{n(1), n(1e12), value.TRUE},
	}
	for name, fn := range ScriptFunctions {
		t.Run(name, func(t *testing.T) {
			for _, args := range argLists {
				assert.NotPanics(t, func() {
					fn.Call(slices.Clone(args), nil)
				})
			}
		})
	}
}
