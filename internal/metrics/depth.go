package metrics

// DepthSource reports the size of an undo log; *anim.Stepper satisfies it.
type DepthSource interface {
	UndoDepth() int
}

// UndoDepth tracks the undo log size and its high-water mark.
type UndoDepth struct {
	name string
	src  DepthSource
	cur  int
	peak int
}

func NewUndoDepth(src DepthSource) *UndoDepth {
	return &UndoDepth{
		name: "undo_depth",
		src:  src,
	}
}

func (u *UndoDepth) Name() string { return u.name }

func (u *UndoDepth) Observe(index int) {
	u.cur = u.src.UndoDepth()
	u.peak = max(u.peak, u.cur)
}

func (u *UndoDepth) Value() float64 { return float64(u.cur) }

func (u *UndoDepth) Peak() int { return u.peak }
