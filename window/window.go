package window

import (
	"fmt"
	"iter"
	"slices"

	"github.com/sartorproj/tswizard/errs"
	"github.com/sartorproj/tswizard/timeseries"
)

// Pair is one supervised training example: a lookback window of inputs
// and the forecast window that immediately follows it. Both slices are
// copies of the source data.
type Pair struct {
	Input  []float64
	Target []float64
}

// Windower slides paired lookback/forecast windows across a series.
// NLookback is the input window length, NForecast the target window
// length, and Stride the number of positions advanced between
// consecutive pairs. All three must be positive.
type Windower struct {
	NLookback int
	NForecast int
	Stride    int
}

// NewWindower creates a windower with the given lookback and forecast
// lengths and a stride of 1.
func NewWindower(nLookback, nForecast int) *Windower {
	return &Windower{NLookback: nLookback, NForecast: nForecast, Stride: 1}
}

// WithStride sets the stride and returns the windower.
func (w *Windower) WithStride(stride int) *Windower {
	w.Stride = stride
	return w
}

// Validate checks the windower parameters.
func (w *Windower) Validate() error {
	if w.NLookback <= 0 {
		return fmt.Errorf("window: lookback must be positive, got %d: %w",
			w.NLookback, errs.ErrInvalidParameter)
	}
	if w.NForecast <= 0 {
		return fmt.Errorf("window: forecast must be positive, got %d: %w",
			w.NForecast, errs.ErrInvalidParameter)
	}
	if w.Stride <= 0 {
		return fmt.Errorf("window: stride must be positive, got %d: %w",
			w.Stride, errs.ErrInvalidParameter)
	}
	return nil
}

// Count returns the number of pairs produced for a series of length n.
func (w *Windower) Count(n int) int {
	span := n - w.NLookback - w.NForecast
	if span < 0 {
		return 0
	}
	return span/w.Stride + 1
}

// Slide produces all window pairs for the series, earliest first. A
// series shorter than NLookback+NForecast yields an empty, non-nil
// result. The input is never mutated.
func (w *Windower) Slide(values []float64) ([]Pair, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, w.Count(len(values)))
	for start := 0; start+w.NLookback+w.NForecast <= len(values); start += w.Stride {
		split := start + w.NLookback
		pairs = append(pairs, Pair{
			Input:  slices.Clone(values[start:split]),
			Target: slices.Clone(values[split : split+w.NForecast]),
		})
	}
	return pairs, nil
}

// Pairs returns a lazy iterator over the window pairs of the series,
// earliest first. Each pair is materialized only when yielded, so a
// full pass needs O(NLookback+NForecast) additional memory.
//
// Example:
//
//	for p := range pairs {
//	    train(p.Input, p.Target)
//	}
func (w *Windower) Pairs(values []float64) (iter.Seq[Pair], error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(Pair) bool) {
		for start := 0; start+w.NLookback+w.NForecast <= len(values); start += w.Stride {
			split := start + w.NLookback
			p := Pair{
				Input:  slices.Clone(values[start:split]),
				Target: slices.Clone(values[split : split+w.NForecast]),
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}

// SlideSeries produces all window pairs for the values of a series.
func (w *Windower) SlideSeries(s *timeseries.Series) ([]Pair, error) {
	return w.Slide(s.Values)
}

// SlideFrame produces multivariate window pairs from a feature table.
// Each input window is NLookback full feature rows; each target window
// is NForecast values of the target column. An empty targetCol selects
// the last column, matching the common layout of features-then-target.
func (w *Windower) SlideFrame(frame *timeseries.Frame, targetCol string) (x [][][]float64, y [][]float64, err error) {
	if err := w.Validate(); err != nil {
		return nil, nil, err
	}

	idx := len(frame.Columns) - 1
	if targetCol != "" {
		idx = frame.ColumnIndex(targetCol)
		if idx < 0 {
			return nil, nil, fmt.Errorf("window: target column %q: %w",
				targetCol, errs.ErrColumnNotFound)
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("window: frame has no columns: %w", errs.ErrInvalidParameter)
	}

	n := frame.Rows()
	x = make([][][]float64, 0, w.Count(n))
	y = make([][]float64, 0, w.Count(n))
	for start := 0; start+w.NLookback+w.NForecast <= n; start += w.Stride {
		split := start + w.NLookback

		input := make([][]float64, w.NLookback)
		for i := range input {
			input[i] = slices.Clone(frame.Data[start+i])
		}

		target := make([]float64, w.NForecast)
		for i := range target {
			target[i] = frame.Data[split+i][idx]
		}

		x = append(x, input)
		y = append(y, target)
	}
	return x, y, nil
}
