package geocluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geocluster/projection"
)

// ErrZoomOutOfRange indicates a zoom level outside the supported range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrZoomOutOfRange struct {
	Zoom  int
	Min   int
	Max   int
	cause error
}

func (e *ErrZoomOutOfRange) Error() string {
	return fmt.Sprintf("zoom %d out of range [%d, %d]", e.Zoom, e.Min, e.Max)
}

func (e *ErrZoomOutOfRange) Unwrap() error { return e.cause }

// ErrThresholdOutOfRange indicates a pixel threshold outside the admissible
// band derived from the default distance.
type ErrThresholdOutOfRange struct {
	Threshold int
	Min       int
	Max       int
}

func (e *ErrThresholdOutOfRange) Error() string {
	return fmt.Sprintf("threshold %d out of range [%d, %d]", e.Threshold, e.Min, e.Max)
}

// ErrInvalidDefaultDistance indicates a non-positive default pixel distance.
type ErrInvalidDefaultDistance struct {
	Distance int
}

func (e *ErrInvalidDefaultDistance) Error() string {
	return fmt.Sprintf("invalid default distance: %d", e.Distance)
}

// ErrInvariantViolation indicates corrupted grouping state, such as an empty
// group reachable under a key. It signals a defect, not bad input.
type ErrInvariantViolation struct {
	Key    string
	Reason string
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation at %q: %s", e.Key, e.Reason)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Zoom range normalization.
	var zr *projection.ErrZoomOutOfRange
	if errors.As(err, &zr) {
		return &ErrZoomOutOfRange{Zoom: zr.Zoom, Min: 0, Max: projection.MaxZoom, cause: err}
	}

	return err
}
