package data

import (
	"fmt"
	"slices"

	"barescript/internal/value"
)

type sortField struct {
	name       string
	descending bool
}

// Sort orders rows in place by a list of [field, descending?] sorts. The
// sort is stable.
func Sort(rows []value.Value, sorts *value.Array) error {
	fields := make([]sortField, 0, len(sorts.Elements))
	for _, s := range sorts.Elements {
		arr, ok := s.(*value.Array)
		if !ok || len(arr.Elements) == 0 {
			return fmt.Errorf("invalid sort %s", value.String(s))
		}
		name, ok := arr.Elements[0].(*value.String)
		if !ok {
			return fmt.Errorf("invalid sort field %s", value.String(arr.Elements[0]))
		}
		sf := sortField{name: name.Value}
		if len(arr.Elements) > 1 {
			sf.descending = value.Bool(arr.Elements[1])
		}
		fields = append(fields, sf)
	}
	for _, row := range rows {
		if _, err := asRow(row); err != nil {
			return err
		}
	}

	slices.SortStableFunc(rows, func(r1, r2 value.Value) int {
		row1, row2 := r1.(*value.Object), r2.(*value.Object)
		for _, sf := range fields {
			result := value.Compare(field(row1, sf.name), field(row2, sf.name))
			if sf.descending {
				result = -result
			}
			if result != 0 {
				return result
			}
		}
		return 0
	})
	return nil
}

// Top keeps the first count rows of each category. Categories appear in
// order of first occurrence.
func Top(rows []value.Value, count int, categoryFields []string) (*value.Array, error) {
	var order []string
	groups := map[string][]value.Value{}
	for _, row := range rows {
		obj, err := asRow(row)
		if err != nil {
			return nil, err
		}
		key := categoryKey(obj, categoryFields)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	result := value.NewArray()
	for _, key := range order {
		group := groups[key]
		result.Elements = append(result.Elements, group[:min(count, len(group))]...)
	}
	return result, nil
}
