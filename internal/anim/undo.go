package anim

import "errors"

type entry struct {
	step int
	undo func() error
}

// undoLog is a stack whose step tags never decrease from base to top.
type undoLog struct {
	entries []entry
}

func (l *undoLog) push(step int, fn func() error) {
	l.entries = append(l.entries, entry{step: step, undo: fn})
}

// unwind pops and runs entries while the top's tag is >= step. Every entry is
// run even if one fails; the failures are joined.
func (l *undoLog) unwind(step int) (int, error) {
	var errs []error
	n := 0
	for len(l.entries) > 0 {
		top := l.entries[len(l.entries)-1]
		if top.step < step {
			break
		}
		l.entries[len(l.entries)-1] = entry{}
		l.entries = l.entries[:len(l.entries)-1]
		if err := top.undo(); err != nil {
			errs = append(errs, err)
		}
		n++
	}
	return n, errors.Join(errs...)
}

func (l *undoLog) depth() int { return len(l.entries) }
