package anim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ElementID is the surface's handle for a visual element.
type ElementID string

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Coord is a composed position: a normalized base plus the ordered chain of
// offsets applied to it since. It is never flattened, so restoring a previous
// Coord restores the exact prior expression.
type Coord struct {
	Base    float64
	Offsets []float64
}

// Value returns the effective coordinate.
func (c Coord) Value() float64 {
	v := c.Base
	for _, d := range c.Offsets {
		v += d
	}
	return v
}

// Shift returns a new Coord with d appended. The receiver is left untouched.
func (c Coord) Shift(d float64) Coord {
	offsets := make([]float64, len(c.Offsets), len(c.Offsets)+1)
	copy(offsets, c.Offsets)
	return Coord{Base: c.Base, Offsets: append(offsets, d)}
}

func (c Coord) Equal(other Coord) bool {
	if c.Base != other.Base || len(c.Offsets) != len(other.Offsets) {
		return false
	}
	for i := range c.Offsets {
		if c.Offsets[i] != other.Offsets[i] {
			return false
		}
	}
	return true
}

// String renders the nested expression, e.g. "((3) + 2) + -1".
func (c Coord) String() string {
	s := formatNum(c.Base)
	for _, d := range c.Offsets {
		s = "(" + s + ") + " + formatNum(d)
	}
	return s
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Origin is the normalization offset: the minimum x and y the script reaches.
type Origin struct {
	X, Y float64
}

func (o Origin) axis(a Axis) float64 {
	if a == AxisY {
		return o.Y
	}
	return o.X
}

// Props holds the optional property changes of an action. They are applied in
// field order: Label, Classes, ZIndex, X, Y, DX, DY. A zero DX or DY is absent.
type Props struct {
	Label   *string
	Classes string
	ZIndex  *int
	X, Y    *float64
	DX, DY  float64
}

func (p Props) abs(a Axis) *float64 {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

func (p Props) delta(a Axis) float64 {
	if a == AxisY {
		return p.DY
	}
	return p.DX
}

// ClassNames splits Classes on whitespace.
func (p Props) ClassNames() []string {
	return strings.Fields(p.Classes)
}

// Ptr returns a pointer to v, for filling optional Props fields.
func Ptr[T any](v T) *T {
	return &v
}

// Label stringifies v for use as Props.Label.
func Label(v any) *string {
	s := fmt.Sprint(v)
	return &s
}

type Kind int

const (
	KindCreate Kind = iota + 1
	KindConfig
	KindDelete
)

var kindNames = map[Kind]string{
	KindCreate: "create",
	KindConfig: "config",
	KindDelete: "delete",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps "create", "config" and "delete" to their Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Action is one element-level instruction within a step.
type Action struct {
	Kind    Kind
	Element ElementID
	Props   Props
}

func Create(id ElementID, p Props) Action { return Action{Kind: KindCreate, Element: id, Props: p} }
func Config(id ElementID, p Props) Action { return Action{Kind: KindConfig, Element: id, Props: p} }
func Delete(id ElementID) Action          { return Action{Kind: KindDelete, Element: id} }

type Step []Action

type Script []Step

// Actions flattens the script in execution order.
func (s Script) Actions() []Action {
	n := 0
	for _, step := range s {
		n += len(step)
	}
	out := make([]Action, 0, n)
	for _, step := range s {
		out = append(out, step...)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
