// Package surface implements an in-memory render surface: a tree of elements
// with text, stacking order, composed positions and style classes.
package surface

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/san-kum/stepviz/internal/anim"
)

// RootID is the container every tree starts with.
const RootID anim.ElementID = "root"

var (
	ErrUnknown     = errors.New("surface: unknown element")
	ErrDuplicate   = errors.New("surface: element id already in use")
	ErrAttached    = errors.New("surface: element already has a parent")
	ErrNotAttached = errors.New("surface: element has no parent")
	ErrNotSibling  = errors.New("surface: reference node is not a child of parent")
	ErrCycle       = errors.New("surface: element cannot contain itself")
)

type node struct {
	id       anim.ElementID
	parent   *node
	children []*node
	text     string
	z        int
	hasZ     bool
	pos      [2]anim.Coord
	hasPos   [2]bool
	classes  []string
}

// Tree is a single-writer element tree. It implements anim.Surface.
type Tree struct {
	nodes map[anim.ElementID]*node
	seq   int
}

var _ anim.Surface = (*Tree)(nil)

func New() *Tree {
	t := &Tree{nodes: make(map[anim.ElementID]*node)}
	t.nodes[RootID] = &node{id: RootID}
	return t
}

func (t *Tree) Root() anim.ElementID { return RootID }

// NewElement creates a detached element with a generated id "prefix-N".
func (t *Tree) NewElement(prefix string) anim.ElementID {
	for {
		t.seq++
		id := anim.ElementID(fmt.Sprintf("%s-%d", prefix, t.seq))
		if _, ok := t.nodes[id]; !ok {
			t.nodes[id] = &node{id: id}
			return id
		}
	}
}

// Add creates a detached element with an explicit id.
func (t *Tree) Add(id anim.ElementID) error {
	if _, ok := t.nodes[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	t.nodes[id] = &node{id: id}
	return nil
}

func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) Contains(id anim.ElementID) bool {
	_, ok := t.nodes[id]
	return ok
}

func (t *Tree) get(id anim.ElementID) *node {
	n, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("surface: unknown element %q", id))
	}
	return n
}

func (t *Tree) lookup(id anim.ElementID) (*node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, id)
	}
	return n, nil
}

func (t *Tree) Attached(id anim.ElementID) bool {
	return t.get(id).parent != nil
}

func (t *Tree) Insert(parent, id, before anim.ElementID) error {
	p, err := t.lookup(parent)
	if err != nil {
		return err
	}
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	if n.parent != nil {
		return fmt.Errorf("%w: %s", ErrAttached, id)
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			return fmt.Errorf("%w: %s", ErrCycle, id)
		}
	}

	at := len(p.children)
	if before != "" {
		at = slices.IndexFunc(p.children, func(c *node) bool { return c.id == before })
		if at < 0 {
			return fmt.Errorf("%w: %s under %s", ErrNotSibling, before, parent)
		}
	}
	p.children = slices.Insert(p.children, at, n)
	n.parent = p
	return nil
}

func (t *Tree) Detach(id anim.ElementID) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	if n.parent == nil {
		return fmt.Errorf("%w: %s", ErrNotAttached, id)
	}
	p := n.parent
	i := slices.Index(p.children, n)
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
	return nil
}

func (t *Tree) Parent(id anim.ElementID) (anim.ElementID, bool) {
	n := t.get(id)
	if n.parent == nil {
		return "", false
	}
	return n.parent.id, true
}

func (t *Tree) NextSibling(id anim.ElementID) (anim.ElementID, bool) {
	n := t.get(id)
	if n.parent == nil {
		return "", false
	}
	siblings := n.parent.children
	i := slices.Index(siblings, n)
	if i+1 >= len(siblings) {
		return "", false
	}
	return siblings[i+1].id, true
}

// Children lists the direct children of id in order.
func (t *Tree) Children(id anim.ElementID) []anim.ElementID {
	n := t.get(id)
	out := make([]anim.ElementID, len(n.children))
	for i, c := range n.children {
		out[i] = c.id
	}
	return out
}

func (t *Tree) Text(id anim.ElementID) string { return t.get(id).text }

func (t *Tree) SetText(id anim.ElementID, text string) { t.get(id).text = text }

func (t *Tree) ZIndex(id anim.ElementID) (int, bool) {
	n := t.get(id)
	return n.z, n.hasZ
}

func (t *Tree) SetZIndex(id anim.ElementID, z int, ok bool) {
	n := t.get(id)
	n.z, n.hasZ = z, ok
	if !ok {
		n.z = 0
	}
}

func (t *Tree) Position(id anim.ElementID, axis anim.Axis) (anim.Coord, bool) {
	n := t.get(id)
	return n.pos[axis], n.hasPos[axis]
}

func (t *Tree) SetPosition(id anim.ElementID, axis anim.Axis, c anim.Coord, ok bool) {
	n := t.get(id)
	n.pos[axis], n.hasPos[axis] = c, ok
	if !ok {
		n.pos[axis] = anim.Coord{}
	}
}

func (t *Tree) HasClass(id anim.ElementID, name string) bool {
	return slices.Contains(t.get(id).classes, name)
}

// AddClass appends name to the class list if absent, like a DOM classList.
func (t *Tree) AddClass(id anim.ElementID, name string) {
	n := t.get(id)
	if !slices.Contains(n.classes, name) {
		n.classes = append(n.classes, name)
	}
}

func (t *Tree) RemoveClass(id anim.ElementID, name string) {
	n := t.get(id)
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == name })
}

func (t *Tree) Classes(id anim.ElementID) []string {
	return slices.Clone(t.get(id).classes)
}

// IDs returns every element id except the root, sorted.
func (t *Tree) IDs() []anim.ElementID {
	ids := make([]anim.ElementID, 0, len(t.nodes))
	for id := range t.nodes {
		if id != RootID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
