package data

import (
	"fmt"
	"math"
	"slices"

	"barescript/internal/value"
)

type measure struct {
	field    string
	function string
	name     string
}

var aggregateFunctions = []string{"average", "count", "max", "min", "stddev", "sum"}

// parseAggregation validates an aggregation model:
//
//	{categories?: [string], measures: [{field, function, name?}]}
func parseAggregation(aggregation *value.Object) ([]string, []measure, error) {
	var categories []string
	if v, ok := aggregation.Get("categories"); ok && !value.IsNull(v) {
		arr, ok := v.(*value.Array)
		if !ok {
			return nil, nil, fmt.Errorf("invalid aggregation categories %s", value.String(v))
		}
		for _, c := range arr.Elements {
			s, ok := c.(*value.String)
			if !ok {
				return nil, nil, fmt.Errorf("invalid aggregation category %s", value.String(c))
			}
			categories = append(categories, s.Value)
		}
	}

	v, _ := aggregation.Get("measures")
	arr, ok := v.(*value.Array)
	if !ok {
		return nil, nil, fmt.Errorf("aggregation measures must be an array")
	}
	measures := make([]measure, 0, len(arr.Elements))
	for _, elem := range arr.Elements {
		obj, ok := elem.(*value.Object)
		if !ok {
			return nil, nil, fmt.Errorf("invalid aggregation measure %s", value.String(elem))
		}
		m := measure{}
		if m.field, ok = stringMember(obj, "field"); !ok {
			return nil, nil, fmt.Errorf("aggregation measure missing field")
		}
		if m.function, ok = stringMember(obj, "function"); !ok || !slices.Contains(aggregateFunctions, m.function) {
			return nil, nil, fmt.Errorf("invalid aggregation function for field %q", m.field)
		}
		m.name = m.field
		if name, ok := stringMember(obj, "name"); ok {
			m.name = name
		}
		measures = append(measures, m)
	}
	return categories, measures, nil
}

func stringMember(obj *value.Object, key string) (string, bool) {
	v, _ := obj.Get(key)
	s, ok := v.(*value.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

type aggregateGroup struct {
	row    *value.Object
	values map[string][]float64
}

// Aggregate groups rows by the category fields and computes each measure
// per group. Groups appear in order of first occurrence.
func Aggregate(rows []value.Value, aggregation *value.Object) (*value.Array, error) {
	categories, measures, err := parseAggregation(aggregation)
	if err != nil {
		return nil, err
	}

	var order []string
	groups := map[string]*aggregateGroup{}
	for _, row := range rows {
		obj, err := asRow(row)
		if err != nil {
			return nil, err
		}

		key := categoryKey(obj, categories)
		group, ok := groups[key]
		if !ok {
			group = &aggregateGroup{row: value.NewObject(), values: map[string][]float64{}}
			for _, c := range categories {
				group.row.Set(c, field(obj, c))
			}
			groups[key] = group
			order = append(order, key)
		}

		for _, m := range measures {
			v := field(obj, m.field)
			if value.IsNull(v) {
				continue
			}
			n, ok := v.(*value.Number)
			if !ok {
				return nil, fmt.Errorf("invalid measure value %s for field %q", value.String(v), m.field)
			}
			group.values[m.name] = append(group.values[m.name], n.Value)
		}
	}

	result := value.NewArray()
	for _, key := range order {
		group := groups[key]
		for _, m := range measures {
			group.row.Set(m.name, aggregateValue(m.function, group.values[m.name]))
		}
		result.Elements = append(result.Elements, group.row)
	}
	return result, nil
}

func aggregateValue(function string, values []float64) value.Value {
	if len(values) == 0 {
		return value.NIL
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	switch function {
	case "average":
		return value.NewNumber(sum / float64(len(values)))
	case "count":
		return value.NewInt(len(values))
	case "max":
		return value.NewNumber(slices.Max(values))
	case "min":
		return value.NewNumber(slices.Min(values))
	case "sum":
		return value.NewNumber(sum)
	}

	// stddev (population)
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return value.NewNumber(math.Sqrt(variance / float64(len(values))))
}
