// Package errs defines the sentinel errors shared across tswizard packages.
//
// All errors returned by the library wrap one of these sentinels, so callers
// can classify failures with errors.Is:
//
//	pairs, err := w.Slide(values)
//	if errors.Is(err, errs.ErrInvalidParameter) {
//	    // malformed lookback/forecast/stride
//	}
package errs

import "errors"

var (
	// ErrInvalidParameter indicates a malformed parameter such as a
	// non-positive window length or an out-of-range percentile.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShortSeries indicates a series too short for the requested
	// operation to produce a defined result.
	ErrShortSeries = errors.New("series too short")

	// ErrColumnNotFound indicates a column name that does not exist in
	// the frame.
	ErrColumnNotFound = errors.New("column not found")

	// ErrShapeMismatch indicates inputs whose lengths or dimensions do
	// not agree.
	ErrShapeMismatch = errors.New("shape mismatch")
)
