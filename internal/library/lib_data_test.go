package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barescript/internal/value"
)

func record(pairs ...value.Value) *value.Object {
	obj := value.NewObject()
	for ix := 0; ix+1 < len(pairs); ix += 2 {
		key, _ := asString(pairs[ix])
		obj.Set(key, pairs[ix+1])
	}
	return obj
}

func TestDataParseCSV(t *testing.T) {
	got := call(t, "dataParseCSV", nil, s("name,count"), value.NIL, s("a, 1\r\nb,2\n"))
	want := arr(
		record(s("name"), s("a"), s("count"), n(1)),
		record(s("name"), s("b"), s("count"), n(2)),
	)
	assertValue(t, want, got)

	assertValue(t, arr(), call(t, "dataParseCSV", nil))
	assertValue(t, value.NIL, call(t, "dataParseCSV", nil, s("a"), n(1)))
}

func TestDataSortAndTop(t *testing.T) {
	rows := arr(
		record(s("cat"), s("b"), s("v"), n(1)),
		record(s("cat"), s("a"), s("v"), n(2)),
		record(s("cat"), s("b"), s("v"), n(3)),
	)

	sorted := call(t, "dataSort", nil, rows, arr(arr(s("v"), value.TRUE)))
	assert.Same(t, rows, sorted)
	assertValue(t, arr(
		record(s("cat"), s("b"), s("v"), n(3)),
		record(s("cat"), s("a"), s("v"), n(2)),
		record(s("cat"), s("b"), s("v"), n(1)),
	), rows)

	assertValue(t, arr(
		record(s("cat"), s("b"), s("v"), n(3)),
		record(s("cat"), s("a"), s("v"), n(2)),
	), call(t, "dataTop", nil, rows, n(1), arr(s("cat"))))
	assertValue(t, arr(record(s("cat"), s("b"), s("v"), n(3))), call(t, "dataTop", nil, rows))

	assertValue(t, value.NIL, call(t, "dataSort", nil, rows, s("v")))
	assertValue(t, value.NIL, call(t, "dataTop", nil, rows, n(0)))
	assertValue(t, value.NIL, call(t, "dataTop", nil, rows, n(1), arr(n(1))))
}

func TestDataAggregate(t *testing.T) {
	rows := arr(
		record(s("cat"), s("a"), s("v"), n(1)),
		record(s("cat"), s("b"), s("v"), n(5)),
		record(s("cat"), s("a"), s("v"), n(3)),
	)
	aggregation := record(
		s("categories"), arr(s("cat")),
		s("measures"), arr(record(s("field"), s("v"), s("function"), s("max"), s("name"), s("top"))),
	)

	want := arr(
		record(s("cat"), s("a"), s("top"), n(3)),
		record(s("cat"), s("b"), s("top"), n(5)),
	)
	assertValue(t, want, call(t, "dataAggregate", nil, rows, aggregation))
	assertValue(t, value.NIL, call(t, "dataAggregate", nil, rows, value.NewObject()))
}

func TestDataValidate(t *testing.T) {
	rows := arr(
		record(s("n"), n(1), s("s"), s("x")),
		record(s("n"), value.NIL, s("s"), s("y")),
	)
	assert.Same(t, rows, call(t, "dataValidate", nil, rows))

	csvRows := arr(record(s("n"), s("1"), s("d"), s("2024-01-02")))
	require.Same(t, csvRows, call(t, "dataValidate", nil, csvRows, value.TRUE))
	v, _ := csvRows.Elements[0].(*value.Object).Get("n")
	assertValue(t, n(1), v)
	d, _ := csvRows.Elements[0].(*value.Object).Get("d")
	assert.Equal(t, value.DATETIME, value.TypeOf(d))

	mixed := arr(record(s("n"), n(1)), record(s("n"), s("x")))
	assertValue(t, value.NIL, call(t, "dataValidate", nil, mixed))
	assertValue(t, value.NIL, call(t, "dataValidate", nil, arr(n(1))))
}
