package scenario

import (
	"fmt"

	"github.com/san-kum/stepviz/internal/anim"
	"github.com/san-kum/stepviz/internal/surface"
)

// unitSquare is one cell of an s-by-s square in the squares proof.
type unitSquare struct {
	x, y           int
	id             anim.ElementID
	startX, startY int
}

func triangular(n int) int { return n * (n + 1) / 2 }

// Squares builds the visual proof that 1² + 2² + … + n² = n(n+1)(2n+1)/6.
//
// Squares of every size 1..n are laid out, the smaller ones are folded into
// the largest one, and two copies of its layered numbering are added around
// it. The staircase is then slid into place so the three copies merge into an
// n by (2n+1) rectangle whose labels all equal 2n+1.
func Squares(tree *surface.Tree, n int) (anim.Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("squares: size must be positive, got %d", n)
	}

	sized := make([][]unitSquare, n)
	for s := 1; s <= n; s++ {
		for i := 0; i < n*n; i++ {
			x, y := i%n, i/n
			if x >= s || y >= s {
				continue
			}
			id, err := add(tree, fmt.Sprintf("size%d-%d-%d", s, x, y))
			if err != nil {
				return nil, err
			}
			sq := unitSquare{x: x, y: y, id: id}
			if s >= 5 {
				sq.startX = triangular(s-1) - triangular(4) + (s - 5) + x - n
				sq.startY = 5 + y - n
			} else {
				sq.startX = triangular(s-1) + (s - 1) + x - n
				sq.startY = y - n
			}
			sized[s-1] = append(sized[s-1], sq)
		}
	}
	basic := sized[n-1]

	copies := func(prefix string) ([]unitSquare, error) {
		out := make([]unitSquare, 0, n*n)
		for i := 0; i < n*n; i++ {
			x, y := i%n, i/n
			id, err := add(tree, fmt.Sprintf("%s-%d-%d", prefix, x, y))
			if err != nil {
				return nil, err
			}
			out = append(out, unitSquare{x: x, y: y, id: id})
		}
		return out, nil
	}
	top, err := copies("top")
	if err != nil {
		return nil, err
	}
	left, err := copies("left")
	if err != nil {
		return nil, err
	}

	layer := func(sq unitSquare) int { return n - max(sq.x, sq.y) }
	num := func(v int) *float64 { return anim.Ptr(float64(v)) }

	var script anim.Script

	// Every square of every size, each cell labelled 1.
	var step anim.Step
	for _, list := range sized {
		for _, sq := range list {
			step = append(step, anim.Create(sq.id, anim.Props{
				X: num(sq.startX), Y: num(sq.startY), Label: anim.Label(1), Classes: "square",
			}))
		}
	}
	script = append(script, step)

	// Stack them at the origin; the largest shows how many squares cover each cell.
	step = nil
	for _, list := range sized {
		for _, sq := range list {
			p := anim.Props{X: num(sq.x), Y: num(sq.y)}
			if len(list) == n*n {
				p.Label = anim.Label(layer(sq))
			}
			step = append(step, anim.Config(sq.id, p))
		}
	}
	script = append(script, step)

	// Drop the smaller squares and lay two coloured copies underneath.
	step = nil
	for _, list := range sized[:n-1] {
		for _, sq := range list {
			step = append(step, anim.Delete(sq.id))
		}
	}
	for _, sq := range append(append([]unitSquare(nil), top...), left...) {
		step = append(step, anim.Create(sq.id, anim.Props{
			X: num(sq.x), Y: num(sq.y), Label: anim.Label(layer(sq)), Classes: "square", ZIndex: anim.Ptr(-1),
		}))
	}
	for _, sq := range top {
		step = append(step, anim.Config(sq.id, anim.Props{Classes: "color1"}))
	}
	for _, sq := range left {
		step = append(step, anim.Config(sq.id, anim.Props{Classes: "color2"}))
	}
	script = append(script, step)

	// Flip the copies out above and to the left.
	step = nil
	for _, sq := range top {
		step = append(step, anim.Config(sq.id, anim.Props{X: num(sq.x), Y: num(-sq.y - 1)}))
	}
	for _, sq := range left {
		step = append(step, anim.Config(sq.id, anim.Props{X: num(-sq.x - 1), Y: num(sq.y)}))
	}
	script = append(script, step)

	// Split the original along its diagonal.
	step = nil
	for _, sq := range basic {
		var dx, dy float64
		switch {
		case sq.x < sq.y:
			dx, dy = float64(-n), float64(n)
		case sq.x > sq.y:
			dx, dy = float64(n), float64(-n)
		}
		step = append(step, anim.Config(sq.id, anim.Props{DX: dx, DY: dy}))
	}
	script = append(script, step)

	// Turn each half into a staircase sitting on top.
	step = nil
	for _, sq := range basic {
		p := anim.Props{ZIndex: anim.Ptr(1)}
		if sq.x > sq.y {
			p.DX = float64(-sq.y)
		}
		if sq.x < sq.y {
			p.DY = float64(-sq.x)
		}
		step = append(step, anim.Config(sq.id, p))
	}
	script = append(script, step)

	// Slide rows and columns in one at a time, merging labels to 2n+1.
	for moving := 0; moving < n-1; moving++ {
		step = nil
		for _, sq := range basic {
			if sq.x == sq.y || min(sq.x, sq.y) != moving {
				continue
			}
			d := sq.x - sq.y
			if d < 0 {
				d = -d
			}
			p := anim.Props{Classes: "merged", Label: anim.Label(n - d + 1)}
			if sq.x < sq.y {
				p.DY = float64(-n - 1)
			} else {
				p.DX = float64(-n - 1)
			}
			step = append(step, anim.Config(sq.id, p))
		}
		script = append(script, step)
	}

	return script, nil
}

func add(tree *surface.Tree, name string) (anim.ElementID, error) {
	id := anim.ElementID(name)
	if err := tree.Add(id); err != nil {
		return "", err
	}
	return id, nil
}
