package analyzer

import (
	"fmt"
)

// ErrorsOverflowPolicy determines what happens when the maximum [Errors] capacity is reached.
type ErrorsOverflowPolicy int

const (
	// ErrOverflowNoCap means no limit for error recording.
	ErrOverflowNoCap ErrorsOverflowPolicy = iota

	// ErrOverflowDrop means all errors, after the overflow reached, will be simply discarded.
	ErrOverflowDrop

	// ErrOverflowTrunc means all errors, after the overflow reached, will be discarded, but
	// the number of dropped ones will be recorded and an additional error, signalling the overflow,
	// added.
	ErrOverflowTrunc
)

// Errors maintains the ordered list of [ValidationError]s of a single document.
// The list can have maximum capacity, after which all further errors will be discarded,
// with only the number of discarded ones available.
//
// Errors is not safe for concurrent use; every analysis owns its own collector.
type Errors struct {
	policy ErrorsOverflowPolicy

	list []ValidationError

	// maxErrors defines how many errors the list can contain.
	maxErrors int

	overflowed bool

	// droppedCount is the number of the discarded errors after the overflow
	droppedCount int

	// firstDropPos is the offset of the first discarded error
	firstDropPos int

	// markerIdx is the index of the truncation marker inside list, -1 if absent
	markerIdx int
}

// NewErrors creates an Errors collector with the given overflow policy and capacity.
// It returns a ConfigError if cap is negative.
func NewErrors(policy ErrorsOverflowPolicy, cap int) (Errors, error) {
	if cap < 0 {
		return Errors{}, NewConfigError(
			ConfigNegativeErrorsCap,
			fmt.Errorf("errors cap must be non-negative, got %d", cap),
		)
	}

	return Errors{
		policy:    policy,
		list:      make([]ValidationError, 0, min(cap, 64)),
		maxErrors: cap,
		markerIdx: -1,
	}, nil
}

func (e *Errors) IsOverflow() bool {
	return e.overflowed
}

// DroppedCount is a number of errors discarded after the overflow reach.
// It is counted only with the [ErrOverflowTrunc] policy.
func (e *Errors) DroppedCount() int {
	return e.droppedCount
}

// FirstDropPos is the offset of the first discarded error.
func (e *Errors) FirstDropPos() int {
	return e.firstDropPos
}

// Len returns the number of recorded errors, including the truncation marker.
func (e *Errors) Len() int {
	return len(e.list)
}

// List returns the recorded errors in the order they were added.
func (e *Errors) List() []ValidationError {
	if e.markerIdx >= 0 {
		e.list[e.markerIdx].Dropped = e.droppedCount
	}
	return e.list
}

// Add appends new [ValidationError] item to the inner list, respecting the overflow policy.
func (e *Errors) Add(item ValidationError) {
	if e.policy == ErrOverflowNoCap {
		e.list = append(e.list, item)
		return
	}

	// After overflow: Drop = ignore, Trunc = count + ignore
	if e.overflowed {
		if e.policy == ErrOverflowTrunc {
			e.droppedCount++
		}
		return
	}

	limit := e.maxErrors
	if e.policy == ErrOverflowTrunc {
		limit = max(e.maxErrors-1, 0) // reserve slot for truncation marker
	}

	if len(e.list) < limit {
		e.list = append(e.list, item)
		return
	}

	// First overflow happens now
	e.overflowed = true
	e.firstDropPos = item.Offset

	if e.policy == ErrOverflowTrunc {
		e.droppedCount = 1
		if e.maxErrors > 0 {
			e.markerIdx = len(e.list)
			e.list = append(e.list, ValidationError{
				Issue:  IssueErrorsTruncated,
				Offset: e.firstDropPos,
			})
		}
	}
}
