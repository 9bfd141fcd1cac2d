package anim

import (
	"errors"
	"fmt"
)

// Validate replays the script's attachment changes against the surface's
// current state, without mutating it. It reports unknown elements, unknown
// action kinds, creates of attached elements and deletes of detached ones.
// All failures are collected; each wraps ErrInvalidScript and a *StepError.
func Validate(surface Surface, script Script) error {
	attached := make(map[ElementID]bool)
	isAttached := func(id ElementID) bool {
		if v, ok := attached[id]; ok {
			return v
		}
		return surface.Attached(id)
	}

	var errs []error
	for i, step := range script {
		for j, a := range step {
			report := func(err error) {
				errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidScript,
					&StepError{Step: i, Action: j, Element: a.Element, Wrapped: err}))
			}
			if !surface.Contains(a.Element) {
				report(ErrUnknownElement)
				continue
			}
			switch a.Kind {
			case KindCreate:
				if isAttached(a.Element) {
					report(ErrAlreadyAttached)
					continue
				}
				attached[a.Element] = true
			case KindConfig:
			case KindDelete:
				if !isAttached(a.Element) {
					report(ErrNotAttached)
					continue
				}
				attached[a.Element] = false
			default:
				report(fmt.Errorf("%w: %v", ErrUnknownAction, a.Kind))
			}
		}
	}
	return errors.Join(errs...)
}
