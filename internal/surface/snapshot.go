package surface

import (
	"sort"

	"github.com/san-kum/stepviz/internal/anim"
)

// ElementState is a copy of everything observable about one element.
type ElementState struct {
	ID       anim.ElementID
	Parent   anim.ElementID
	Index    int
	Attached bool
	Text     string
	Z        int
	HasZ     bool
	X, Y     anim.Coord
	HasX     bool
	HasY     bool
	Classes  []string
}

// Pos returns the effective position.
func (e ElementState) Pos() (x, y float64) {
	return e.X.Value(), e.Y.Value()
}

func (e ElementState) HasClass(name string) bool {
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}

func (t *Tree) State(id anim.ElementID) ElementState {
	n := t.get(id)
	st := ElementState{
		ID:      n.id,
		Index:   -1,
		Text:    n.text,
		Z:       n.z,
		HasZ:    n.hasZ,
		X:       n.pos[anim.AxisX],
		Y:       n.pos[anim.AxisY],
		HasX:    n.hasPos[anim.AxisX],
		HasY:    n.hasPos[anim.AxisY],
		Classes: append([]string(nil), n.classes...),
	}
	if n.parent != nil {
		st.Attached = true
		st.Parent = n.parent.id
		for i, c := range n.parent.children {
			if c == n {
				st.Index = i
				break
			}
		}
	}
	return st
}

// Snapshot returns the state of every element, attached or not, sorted by id.
func (t *Tree) Snapshot() []ElementState {
	ids := t.IDs()
	out := make([]ElementState, len(ids))
	for i, id := range ids {
		out[i] = t.State(id)
	}
	return out
}

// Frame returns the attached descendants of the root in paint order: stacking
// order first (unset counts as 0), document order within equal values.
func (t *Tree) Frame() []ElementState {
	var out []ElementState
	var walk func(n *node)
	walk = func(n *node) {
		for _, c := range n.children {
			out = append(out, t.State(c.id))
			walk(c)
		}
	}
	walk(t.get(RootID))
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Bounds returns the extent of the positioned elements in the current frame,
// each treated as a unit square.
func (t *Tree) Bounds() (w, h float64) {
	for _, e := range t.Frame() {
		x, y := e.Pos()
		w = max(w, x+1)
		h = max(h, y+1)
	}
	return w, h
}
