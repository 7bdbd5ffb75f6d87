package aggregate

import (
	"fmt"

	"github.com/sartorproj/tswizard/errs"
	"github.com/sartorproj/tswizard/timeseries"
)

// Grouped is a frame partitioned by the distinct values of a label
// column. Groups keep the order in which their keys first appear.
type Grouped struct {
	frame    *timeseries.Frame
	labelCol string
	keys     []string
	rows     map[string][]int
}

// GroupBy partitions the frame by the named label column.
func GroupBy(frame *timeseries.Frame, labelCol string) (*Grouped, error) {
	labels, err := frame.LabelColumn(labelCol)
	if err != nil {
		return nil, err
	}

	g := &Grouped{
		frame:    frame,
		labelCol: labelCol,
		rows:     make(map[string][]int),
	}
	for i, key := range labels {
		if _, ok := g.rows[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.rows[key] = append(g.rows[key], i)
	}
	return g, nil
}

// Keys returns the group keys in first-appearance order.
func (g *Grouped) Keys() []string {
	return g.keys
}

// Len returns the number of groups.
func (g *Grouped) Len() int {
	return len(g.keys)
}

// Group returns the values of the named numeric column for one group.
func (g *Grouped) Group(key, valueCol string) ([]float64, error) {
	idx := g.frame.ColumnIndex(valueCol)
	if idx < 0 {
		return nil, fmt.Errorf("aggregate: column %q: %w", valueCol, errs.ErrColumnNotFound)
	}
	rows, ok := g.rows[key]
	if !ok {
		return nil, fmt.Errorf("aggregate: group %q: %w", key, errs.ErrColumnNotFound)
	}

	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = g.frame.Data[r][idx]
	}
	return values, nil
}

// Agg reduces the named numeric column per group, one output row per
// group in key order, one output column per aggregation. The group
// keys come back as a label column named after the grouping column.
func (g *Grouped) Agg(valueCol string, aggs ...NamedAgg) (*timeseries.Frame, error) {
	if len(aggs) == 0 {
		return nil, fmt.Errorf("aggregate: no aggregations given: %w", errs.ErrInvalidParameter)
	}
	for _, agg := range aggs {
		if agg.err != nil {
			return nil, agg.err
		}
	}

	columns := make([]string, len(aggs))
	for i, agg := range aggs {
		columns[i] = agg.Name
	}

	out := &timeseries.Frame{Columns: columns}
	for _, key := range g.keys {
		values, err := g.Group(key, valueCol)
		if err != nil {
			return nil, err
		}

		row := make([]float64, len(aggs))
		for i, agg := range aggs {
			row[i] = agg.Fn(values)
		}
		out.Data = append(out.Data, row)
	}

	if err := out.SetLabels(g.labelCol, g.keys); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply runs an arbitrary transform over the named numeric column of
// each group and writes the results back as a new column of a copied
// frame, aligned to the rows of each group. The transform must return
// exactly one value per input value.
func (g *Grouped) Apply(valueCol string, fn func([]float64) []float64, outCol string) (*timeseries.Frame, error) {
	if fn == nil {
		return nil, fmt.Errorf("aggregate: nil transform: %w", errs.ErrInvalidParameter)
	}

	derived := make([]float64, g.frame.Rows())
	for _, key := range g.keys {
		values, err := g.Group(key, valueCol)
		if err != nil {
			return nil, err
		}

		result := fn(values)
		if len(result) != len(values) {
			return nil, fmt.Errorf("aggregate: transform returned %d values for group %q of %d: %w",
				len(result), key, len(values), errs.ErrShapeMismatch)
		}
		for i, r := range g.rows[key] {
			derived[r] = result[i]
		}
	}

	out := g.frame.Copy()
	if err := out.AddColumn(outCol, derived); err != nil {
		return nil, err
	}
	return out, nil
}
