package anim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Stepper applies a Script one step at a time and can reverse any applied
// step exactly by replaying its undo log.
type Stepper struct {
	surface   Surface
	root      ElementID
	steps     Script
	origin    Origin
	index     int
	log       undoLog
	logger    *slog.Logger
	observers []Observer
}

type Option func(*Stepper)

func WithLogger(l *slog.Logger) Option {
	return func(s *Stepper) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Stepper) { s.observers = append(s.observers, o) }
}

// New normalizes the script's coordinates, checks it against the surface and
// applies step 0. Elements are attached under root.
func New(surface Surface, root ElementID, script Script, opts ...Option) (*Stepper, error) {
	s := &Stepper{
		surface: surface,
		root:    root,
		steps:   script,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	origin, err := Normalize(script)
	if err != nil {
		return nil, err
	}
	s.origin = origin

	if err := Validate(surface, script); err != nil {
		return nil, err
	}

	s.logger.Debug("stepper ready", "steps", len(script), "origin_x", origin.X, "origin_y", origin.Y)

	if err := s.Advance(); err != nil {
		return nil, err
	}
	return s, nil
}

// StepIndex is the number of steps fully applied.
func (s *Stepper) StepIndex() int { return s.index }

func (s *Stepper) Len() int { return len(s.steps) }

func (s *Stepper) Origin() Origin { return s.origin }

// UndoDepth is the number of recorded reversals.
func (s *Stepper) UndoDepth() int { return s.log.depth() }

func (s *Stepper) CanAdvance() bool { return s.index < len(s.steps) }

func (s *Stepper) CanRetreat() bool { return s.index > 0 }

func (s *Stepper) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Advance applies steps[StepIndex] and increments the index. If an action
// fails, the mutations already made by this step are reversed and the index
// is left unchanged.
func (s *Stepper) Advance() error {
	if s.index < 0 || s.index >= len(s.steps) {
		return fmt.Errorf("%w: advance at %d of %d", ErrStepRange, s.index, len(s.steps))
	}

	step := s.steps[s.index]
	for j, a := range step {
		if err := s.apply(a); err != nil {
			_, undoErr := s.log.unwind(s.index)
			s.logger.Error("step aborted", "step", s.index, "action", j, "element", a.Element, "err", err)
			return errors.Join(&StepError{Step: s.index, Action: j, Element: a.Element, Wrapped: err}, undoErr)
		}
	}
	s.index++

	s.logger.Debug("advance", "step", s.index, "actions", len(step), "undo", s.log.depth())
	s.notify(Forward)
	return nil
}

// Retreat decrements the index and reverses every mutation tagged with it.
func (s *Stepper) Retreat() error {
	if s.index <= 0 || s.index > len(s.steps) {
		return fmt.Errorf("%w: retreat at %d of %d", ErrStepRange, s.index, len(s.steps))
	}

	s.index--
	n, err := s.log.unwind(s.index)
	if err != nil {
		s.logger.Error("undo failed", "step", s.index, "err", err)
		return err
	}

	s.logger.Debug("retreat", "step", s.index, "reversed", n, "undo", s.log.depth())
	s.notify(Backward)
	return nil
}

// Seek advances or retreats until StepIndex equals k.
func (s *Stepper) Seek(k int) error {
	if k < 0 || k > len(s.steps) {
		return fmt.Errorf("%w: seek to %d of %d", ErrStepRange, k, len(s.steps))
	}
	for s.index < k {
		if err := s.Advance(); err != nil {
			return err
		}
	}
	for s.index > k {
		if err := s.Retreat(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stepper) notify(dir Direction) {
	for _, o := range s.observers {
		o.OnStep(s.index, dir)
	}
}

func (s *Stepper) record(fn func() error) {
	s.log.push(s.index, fn)
}

func (s *Stepper) apply(a Action) error {
	switch a.Kind {
	case KindCreate:
		return s.create(a.Element, a.Props)
	case KindConfig:
		return s.configure(a.Element, a.Props)
	case KindDelete:
		return s.remove(a.Element)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAction, a.Kind)
	}
}

func (s *Stepper) create(id ElementID, p Props) error {
	if s.surface.Attached(id) {
		return ErrAlreadyAttached
	}
	if err := s.surface.Insert(s.root, id, ""); err != nil {
		return err
	}
	s.record(func() error { return s.surface.Detach(id) })
	return s.configure(id, p)
}

func (s *Stepper) configure(id ElementID, p Props) error {
	sf := s.surface

	if p.Label != nil {
		old := sf.Text(id)
		sf.SetText(id, *p.Label)
		s.record(func() error { sf.SetText(id, old); return nil })
	}

	// Only classes that were absent get an undo entry; removing a class that
	// predates this step would corrupt the earlier state.
	for _, name := range p.ClassNames() {
		if sf.HasClass(id, name) {
			continue
		}
		sf.AddClass(id, name)
		s.record(func() error { sf.RemoveClass(id, name); return nil })
	}

	if p.ZIndex != nil {
		old, had := sf.ZIndex(id)
		sf.SetZIndex(id, *p.ZIndex, true)
		s.record(func() error { sf.SetZIndex(id, old, had); return nil })
	}

	for _, axis := range []Axis{AxisX, AxisY} {
		if v := p.abs(axis); v != nil {
			s.setPosition(id, axis, Coord{Base: *v - s.origin.axis(axis)})
		}
	}

	for _, axis := range []Axis{AxisX, AxisY} {
		d := p.delta(axis)
		if d == 0 {
			continue
		}
		cur, ok := sf.Position(id, axis)
		if !ok {
			return fmt.Errorf("%w: %s on %s", ErrUnpositionedOffset, axis, id)
		}
		s.setPosition(id, axis, cur.Shift(d))
	}
	return nil
}

func (s *Stepper) setPosition(id ElementID, axis Axis, c Coord) {
	old, had := s.surface.Position(id, axis)
	s.surface.SetPosition(id, axis, c, true)
	s.record(func() error {
		s.surface.SetPosition(id, axis, old, had)
		return nil
	})
}

func (s *Stepper) remove(id ElementID) error {
	parent, ok := s.surface.Parent(id)
	if !ok {
		return ErrNotAttached
	}
	next, _ := s.surface.NextSibling(id)
	if err := s.surface.Detach(id); err != nil {
		return err
	}
	s.record(func() error { return s.surface.Insert(parent, id, next) })
	return nil
}
