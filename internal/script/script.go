// Package script reads and writes animation scripts as YAML.
//
//	name: demo
//	steps:
//	  - - {type: create, element: a, x: 0, y: 0, label: 1, classes: square, zIndex: 2}
//	  - - {type: config, element: a, dx: 2}
//	  - - {type: delete, element: a}
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a script.
type File struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Elements    []string       `yaml:"elements,omitempty"`
	Steps       [][]ActionSpec `yaml:"steps"`
}

// ActionSpec is one action. Type is create, config or delete.
type ActionSpec struct {
	Type    string   `yaml:"type"`
	Element string   `yaml:"element"`
	Label   *string  `yaml:"label,omitempty"`
	Classes string   `yaml:"classes,omitempty"`
	ZIndex  *int     `yaml:"zIndex,omitempty"`
	X       *float64 `yaml:"x,omitempty"`
	Y       *float64 `yaml:"y,omitempty"`
	DX      float64  `yaml:"dx,omitempty"`
	DY      float64  `yaml:"dy,omitempty"`
}

// Load reads a script file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a script, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parse script: empty document")
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script %q: no steps", f.Name)
	}
	return &f, nil
}

func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Save writes f to path as YAML.
func Save(path string, f *File) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build registers every element the script names on tree, declared ones
// first, and converts the steps.
func (f *File) Build(tree *surface.Tree) (anim.Script, error) {
	declare := func(name string) error {
		if name == "" {
			return fmt.Errorf("%w: empty element name", anim.ErrUnknownElement)
		}
		id := anim.ElementID(name)
		if tree.Contains(id) {
			return nil
		}
		return tree.Add(id)
	}
	for _, name := range f.Elements {
		if err := declare(name); err != nil {
			return nil, err
		}
	}

	script := make(anim.Script, len(f.Steps))
	for i, specs := range f.Steps {
		step := make(anim.Step, len(specs))
		for j, spec := range specs {
			kind, err := anim.ParseKind(spec.Type)
			if err != nil {
				return nil, &anim.StepError{Step: i, Action: j, Element: anim.ElementID(spec.Element), Wrapped: err}
			}
			if err := declare(spec.Element); err != nil {
				return nil, &anim.StepError{Step: i, Action: j, Element: anim.ElementID(spec.Element), Wrapped: err}
			}
			step[j] = anim.Action{
				Kind:    kind,
				Element: anim.ElementID(spec.Element),
				Props: anim.Props{
					Label:   spec.Label,
					Classes: spec.Classes,
					ZIndex:  spec.ZIndex,
					X:       spec.X,
					Y:       spec.Y,
					DX:      spec.DX,
					DY:      spec.DY,
				},
			}
		}
		script[i] = step
	}
	return script, nil
}

// FromScript converts an in-memory script back to its file form.
func FromScript(name string, s anim.Script) *File {
	f := &File{Name: name, Steps: make([][]ActionSpec, len(s))}
	for i, step := range s {
		specs := make([]ActionSpec, len(step))
		for j, a := range step {
			specs[j] = ActionSpec{
				Type:    a.Kind.String(),
				Element: string(a.Element),
				Label:   a.Props.Label,
				Classes: a.Props.Classes,
				ZIndex:  a.Props.ZIndex,
				X:       a.Props.X,
				Y:       a.Props.Y,
				DX:      a.Props.DX,
				DY:      a.Props.DY,
			}
		}
		f.Steps[i] = specs
	}
	return f
}
