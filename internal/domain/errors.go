package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Grid errors
	ErrMsgInvalidPlacement = "invalid placement"
	ErrMsgPlotNotFound     = "plot not found"

	// Save code errors
	ErrMsgInvalidSaveFormat = "invalid save format"

	// Catalog errors
	ErrMsgUnknownCrop       = "unknown crop"
	ErrMsgUnknownFertiliser = "unknown fertiliser"

	// Simulation errors
	ErrMsgCorruptState         = "corrupt state"
	ErrMsgSimulationDivergence = "simulation diverged"
	ErrMsgCrafterCapReached    = "crafter cap reached"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// ErrInvalidPlacement and ErrInvalidSaveFormat are recoverable: the grid is left untouched.
// ErrCorruptState and ErrSimulationDivergence abort the current run.
var (
	// Grid errors
	ErrInvalidPlacement = errors.New(ErrMsgInvalidPlacement)
	ErrPlotNotFound     = errors.New(ErrMsgPlotNotFound)

	// Save code errors
	ErrInvalidSaveFormat = errors.New(ErrMsgInvalidSaveFormat)

	// Catalog errors
	ErrUnknownCrop       = errors.New(ErrMsgUnknownCrop)
	ErrUnknownFertiliser = errors.New(ErrMsgUnknownFertiliser)

	// Simulation errors
	ErrCorruptState         = errors.New(ErrMsgCorruptState)
	ErrSimulationDivergence = errors.New(ErrMsgSimulationDivergence)
	ErrCrafterCapReached    = errors.New(ErrMsgCrafterCapReached)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// IsFatal reports whether err must abort the run it occurred in.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCorruptState) || errors.Is(err, ErrSimulationDivergence)
}
