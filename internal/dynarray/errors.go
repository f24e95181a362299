package dynarray

import (
	"errors"
	"fmt"
)

// Domain errors for array operations.
var (
	// ErrInvalidCapacity indicates a negative capacity or one above MaxCapacity.
	ErrInvalidCapacity = errors.New("dynarray: invalid capacity")

	// ErrInvalidGrowStep indicates a growth step below 1 or above MaxCapacity.
	ErrInvalidGrowStep = errors.New("dynarray: invalid grow step")

	// ErrIndexOutOfRange indicates an index outside the valid logical range.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
)

// ConfigError reports a rejected capacity/grow-step pair.
type ConfigError struct {
	Op       string
	Capacity int
	GrowStep int
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: capacity=%d grow=%d: %v", e.Op, e.Capacity, e.GrowStep, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IndexError reports an index outside [0, Len) for element access, or
// outside [0, Len] for insertion.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d with length %d: %v", e.Op, e.Index, e.Len, ErrIndexOutOfRange)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func validate(op string, capacity, growStep int) error {
	switch {
	case capacity < 0 || capacity > MaxCapacity:
		return &ConfigError{Op: op, Capacity: capacity, GrowStep: growStep, Err: ErrInvalidCapacity}
	case growStep <= 0 || growStep > MaxCapacity:
		return &ConfigError{Op: op, Capacity: capacity, GrowStep: growStep, Err: ErrInvalidGrowStep}
	}
	return nil
}
