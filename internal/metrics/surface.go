package metrics

import "github.com/san-kum/stepviz/internal/surface"

// Attached counts the elements currently in the tree.
type Attached struct {
	name  string
	tree  *surface.Tree
	value int
}

func NewAttached(tree *surface.Tree) *Attached {
	return &Attached{
		name: "attached",
		tree: tree,
	}
}

func (a *Attached) Name() string { return a.name }

func (a *Attached) Observe(index int) {
	a.value = len(a.tree.Frame())
}

func (a *Attached) Value() float64 { return float64(a.value) }

// ClassCount counts attached elements carrying a style class.
type ClassCount struct {
	name  string
	class string
	tree  *surface.Tree
	value int
}

func NewClassCount(tree *surface.Tree, class string) *ClassCount {
	return &ClassCount{
		name:  "class:" + class,
		class: class,
		tree:  tree,
	}
}

func (c *ClassCount) Name() string { return c.name }

func (c *ClassCount) Observe(index int) {
	c.value = 0
	for _, e := range c.tree.Frame() {
		if e.HasClass(c.class) {
			c.value++
		}
	}
}

func (c *ClassCount) Value() float64 { return float64(c.value) }
