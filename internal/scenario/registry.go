// Package scenario holds the built-in animation scripts.
package scenario

import (
	"fmt"
	"sort"

	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"
)

// Builder registers its elements on tree and returns the script driving them.
type Builder func(tree *surface.Tree, size int) (anim.Script, error)

type Registry struct {
	builders     map[string]Builder
	descriptions map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		builders:     make(map[string]Builder),
		descriptions: make(map[string]string),
	}
	r.Register("squares", "sum of squares 1²+…+n² by dissection", Squares)
	r.Register("demo", "one square created, shifted and deleted", func(tree *surface.Tree, _ int) (anim.Script, error) {
		return Demo(tree)
	})
	return r
}

func (r *Registry) Register(name, description string, b Builder) {
	r.builders[name] = b
	r.descriptions[name] = description
}

func (r *Registry) Get(name string) (Builder, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s (available: %v)", name, r.List())
	}
	return b, nil
}

func (r *Registry) Describe(name string) string { return r.descriptions[name] }

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Demo is the smallest script exercising create, offset and delete.
func Demo(tree *surface.Tree) (anim.Script, error) {
	a, err := add(tree, "a")
	if err != nil {
		return nil, err
	}
	return anim.Script{
		{anim.Create(a, anim.Props{X: anim.Ptr(0.0), Y: anim.Ptr(0.0), Label: anim.Label(1), Classes: "square"})},
		{anim.Config(a, anim.Props{DX: 2})},
		{anim.Delete(a)},
	}, nil
}
