package timeseries

import (
	"fmt"
	"slices"

	"github.com/sartorproj/tswizard/errs"
)

// Frame is a fixed-width numeric feature table with optional string
// label columns. Data is row-major: Data[i] holds row i with one value
// per entry of Columns. Label columns (group keys, identifiers) live
// apart from the numeric block so every numeric operation can treat
// Data as a dense matrix.
type Frame struct {
	Columns []string
	Data    [][]float64
	Labels  map[string][]string
}

// NewFrame creates a frame from column names and row-major data.
// Every row must have one value per column.
func NewFrame(columns []string, data [][]float64) (*Frame, error) {
	for i, row := range data {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("timeseries: row %d has %d values for %d columns: %w",
				i, len(row), len(columns), errs.ErrShapeMismatch)
		}
	}
	return &Frame{Columns: columns, Data: data}, nil
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int {
	return len(f.Data)
}

// Row returns a copy of row i.
func (f *Frame) Row(i int) []float64 {
	return slices.Clone(f.Data[i])
}

// ColumnIndex returns the index of the named numeric column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	return slices.Index(f.Columns, name)
}

// Column returns a copy of the named numeric column.
func (f *Frame) Column(name string) ([]float64, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("timeseries: column %q: %w", name, errs.ErrColumnNotFound)
	}

	values := make([]float64, len(f.Data))
	for i, row := range f.Data {
		values[i] = row[idx]
	}
	return values, nil
}

// Series returns the named numeric column as a Series.
func (f *Frame) Series(name string) (*Series, error) {
	values, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	return &Series{Values: values, Name: name}, nil
}

// SetLabels attaches a string label column. The column must have one
// entry per row.
func (f *Frame) SetLabels(name string, values []string) error {
	if len(values) != f.Rows() {
		return fmt.Errorf("timeseries: %d labels for %d rows: %w",
			len(values), f.Rows(), errs.ErrShapeMismatch)
	}
	if f.Labels == nil {
		f.Labels = make(map[string][]string)
	}
	f.Labels[name] = values
	return nil
}

// LabelColumn returns the named label column.
func (f *Frame) LabelColumn(name string) ([]string, error) {
	values, ok := f.Labels[name]
	if !ok {
		return nil, fmt.Errorf("timeseries: label column %q: %w", name, errs.ErrColumnNotFound)
	}
	return values, nil
}

// AddColumn appends a numeric column to the frame.
func (f *Frame) AddColumn(name string, values []float64) error {
	if len(values) != f.Rows() {
		return fmt.Errorf("timeseries: %d values for %d rows: %w",
			len(values), f.Rows(), errs.ErrShapeMismatch)
	}

	f.Columns = append(f.Columns, name)
	for i := range f.Data {
		f.Data[i] = append(f.Data[i], values[i])
	}
	return nil
}

// SplitXY splits the frame into feature rows X and a target vector y
// taken from the named column. The target column is removed from X.
// An empty name selects the last column.
func (f *Frame) SplitXY(targetCol string) (x [][]float64, y []float64, err error) {
	idx := len(f.Columns) - 1
	if targetCol != "" {
		idx = f.ColumnIndex(targetCol)
		if idx < 0 {
			return nil, nil, fmt.Errorf("timeseries: target column %q: %w",
				targetCol, errs.ErrColumnNotFound)
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("timeseries: frame has no columns: %w", errs.ErrShortSeries)
	}

	x = make([][]float64, len(f.Data))
	y = make([]float64, len(f.Data))
	for i, row := range f.Data {
		y[i] = row[idx]
		x[i] = make([]float64, 0, len(row)-1)
		x[i] = append(x[i], row[:idx]...)
		x[i] = append(x[i], row[idx+1:]...)
	}
	return x, y, nil
}

// Copy creates a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := &Frame{Columns: slices.Clone(f.Columns)}
	out.Data = make([][]float64, len(f.Data))
	for i, row := range f.Data {
		out.Data[i] = slices.Clone(row)
	}
	if f.Labels != nil {
		out.Labels = make(map[string][]string, len(f.Labels))
		for name, values := range f.Labels {
			out.Labels[name] = slices.Clone(values)
		}
	}
	return out
}
