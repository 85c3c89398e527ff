package marked

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is wrapped by every range validation failure.
var ErrInvalidRange = errors.New("marker range out of bounds")

// ValidationError describes one invalid marker.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Unwrap returns ErrInvalidRange.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRange
}

// Validate checks 0 <= start <= end <= len(text) for every marker and
// returns one error per offending marker, in marker order.
func Validate(s String) []error {
	var errs []error
	n := s.Len()

	for i, m := range s.Markers {
		path := fmt.Sprintf("markers[%d]", i)
		switch {
		case m.Start < 0:
			errs = append(errs, &ValidationError{Path: path,
				Message: fmt.Sprintf("start %d is negative", m.Start)})
		case m.End < m.Start:
			errs = append(errs, &ValidationError{Path: path,
				Message: fmt.Sprintf("end %d is before start %d", m.End, m.Start)})
		case m.End > n:
			errs = append(errs, &ValidationError{Path: path,
				Message: fmt.Sprintf("end %d is past text length %d", m.End, n)})
		}
	}

	return errs
}

// Clamp returns a copy of s with every marker range forced into the text
// bounds. A marker with end before start collapses to zero width at start.
func Clamp(s String) String {
	n := s.Len()
	out := New(s.Text, s.Markers...)
	for i := range out.Markers {
		r := &out.Markers[i].Range
		r.Start = clamp(r.Start, 0, n)
		r.End = clamp(r.End, r.Start, n)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
