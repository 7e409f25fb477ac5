// Package data implements the data-array operations behind the data
// built-ins. A data array is an array of objects ("rows") whose fields hold
// scalar values.
package data

import (
	"fmt"

	"barescript/internal/value"
)

// Validate infers the type of each field from its first non-null value and
// checks every row against it. In csv mode string values are parsed into
// datetimes, booleans and numbers (and "null" into null), updating the rows
// in place.
func Validate(rows []value.Value, csv bool) (map[string]value.Type, error) {
	types := map[string]value.Type{}
	for _, row := range rows {
		obj, err := asRow(row)
		if err != nil {
			return nil, err
		}
		for _, field := range obj.Keys() {
			if _, ok := types[field]; ok {
				continue
			}
			v, _ := obj.Get(field)
			switch x := v.(type) {
			case nil, *value.Null:
			case *value.Number:
				types[field] = value.NUMBER
			case *value.Datetime:
				types[field] = value.DATETIME
			case *value.Boolean:
				types[field] = value.BOOLEAN
			case *value.String:
				if csv && x.Value == "null" {
					continue
				}
				types[field] = stringFieldType(x.Value, csv)
			default:
				return nil, fmt.Errorf("invalid value %s for field %q", value.String(v), field)
			}
		}
	}

	for _, row := range rows {
		obj := row.(*value.Object)
		for _, field := range obj.Keys() {
			v, _ := obj.Get(field)
			if s, ok := v.(*value.String); ok && csv && s.Value == "null" {
				obj.Set(field, value.NIL)
				continue
			}
			fieldType, ok := types[field]
			if !ok || value.IsNull(v) {
				continue
			}
			coerced, err := coerceField(v, fieldType, csv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field, err)
			}
			obj.Set(field, coerced)
		}
	}
	return types, nil
}

func stringFieldType(s string, csv bool) value.Type {
	switch {
	case !csv:
		return value.STRING
	case value.ParseDatetime(s) != nil:
		return value.DATETIME
	case s == "true" || s == "false":
		return value.BOOLEAN
	case value.ParseNumber(s) != nil:
		return value.NUMBER
	}
	return value.STRING
}

func coerceField(v value.Value, fieldType value.Type, csv bool) (value.Value, error) {
	if value.TypeOf(v) == fieldType {
		return v, nil
	}
	s, isString := v.(*value.String)
	if !isString || !csv {
		return nil, fmt.Errorf("invalid %s value %s", fieldType, value.String(v))
	}

	var parsed value.Value
	switch fieldType {
	case value.NUMBER:
		parsed = value.ParseNumber(s.Value)
	case value.DATETIME:
		parsed = value.ParseDatetime(s.Value)
	case value.BOOLEAN:
		switch s.Value {
		case "true":
			parsed = value.TRUE
		case "false":
			parsed = value.FALSE
		}
	}
	if parsed == nil {
		return nil, fmt.Errorf("invalid %s value %q", fieldType, s.Value)
	}
	return parsed, nil
}

func asRow(v value.Value) (*value.Object, error) {
	obj, ok := v.(*value.Object)
	if !ok || obj == nil {
		return nil, fmt.Errorf("invalid row %s", value.String(v))
	}
	return obj, nil
}

func field(row *value.Object, name string) value.Value {
	v, ok := row.Get(name)
	if !ok {
		return value.NIL
	}
	return v
}

// categoryKey builds a map key for a tuple of field values.
func categoryKey(row *value.Object, fields []string) string {
	key := value.NewArray()
	for _, name := range fields {
		v := field(row, name)
		key.Elements = append(key.Elements, value.NewArray(value.NewString(string(value.TypeOf(v))), v))
	}
	return value.JSON(key, 0)
}
