// Package window converts time series into the windowed shapes used by
// supervised sequence models and rolling feature calculations.
//
// # Sequence Windowing
//
// A Windower slides a lookback window (model input) and the forecast
// window that follows it (model target) across a series:
//
//	w := window.NewWindower(2, 1)
//	pairs, _ := w.Slide([]float64{1, 2, 3, 4, 5, 6})
//	// ([1 2] -> [3]), ([2 3] -> [4]), ([3 4] -> [5]), ([4 5] -> [6])
//
// A stride larger than one skips positions between consecutive pairs:
//
//	w = window.NewWindower(2, 1).WithStride(2)
//
// For a series of length L the number of pairs is
// max(0, (L-NLookback-NForecast)/Stride + 1); a series too short for a
// single pair yields an empty result, not an error. Non-positive
// parameters fail with errs.ErrInvalidParameter.
//
// Large series can be traversed lazily:
//
//	seq, _ := w.Pairs(values)
//	for p := range seq {
//	    train(p.Input, p.Target)
//	}
//
// Multivariate data comes from a Frame, with full feature rows as
// inputs and one column as the target:
//
//	x, y, _ := w.SlideFrame(frame, "load")
//
// # Rolling Calculations
//
// Rolling applies an arbitrary reduction over every full window,
// padding the leading short windows with NaN so the result aligns with
// the input:
//
//	ma, _ := window.Rolling(values, 50, func(win []float64) float64 {
//	    return stat.Mean(win, nil)
//	})
//
// Weights and WeightedMean cover the weighted moving average case
// where recent observations count more than old ones.
package window
