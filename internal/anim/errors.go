package anim

import (
	"errors"
	"fmt"
)

// Configuration errors, returned by [New] and [Normalize].
var (
	// ErrNoCoordinates indicates the script never gives an axis a position.
	ErrNoCoordinates = errors.New("anim: script defines no positions to normalize")

	// ErrUnpositionedOffset indicates a dx/dy applied to an element with no base position.
	ErrUnpositionedOffset = errors.New("anim: offset applied to an element without a position")

	// ErrNonNumeric indicates a NaN or infinite coordinate in the script.
	ErrNonNumeric = errors.New("anim: non-numeric coordinate")

	// ErrUnknownElement indicates an action names an element the surface does not hold.
	ErrUnknownElement = errors.New("anim: unknown element")

	// ErrInvalidScript wraps every error found while checking a script before playback.
	ErrInvalidScript = errors.New("anim: invalid script")
)

// ErrStepRange indicates Advance past the last step or Retreat before the first.
var ErrStepRange = errors.New("anim: step index out of range")

// Logic errors: the script is malformed with respect to the surface.
var (
	ErrAlreadyAttached = errors.New("anim: element already exists")
	ErrNotAttached     = errors.New("anim: element is not attached")
	ErrUnknownAction   = errors.New("anim: unknown action type")
)

// StepError locates an error at a specific action of a script.
type StepError struct {
	Step    int
	Action  int
	Element ElementID
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d action %d (%s): %v", e.Step, e.Action, e.Element, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
