package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/stepviz/internal/surface"
)

// Unit is how many terminal cells one script unit spans.
type Unit struct {
	Cols, Rows int
}

// Glyphs drawn for each class in plain output, by the same priority as fills.
var classGlyphs = map[string]rune{
	"square": '░',
	"color1": '▒',
	"color2": '▓',
	"merged": '█',
}

const blank = ' '

type cell struct {
	r     rune
	fill  lipgloss.Color
	set   bool
	label bool
}

// Canvas is a grid of terminal cells.
type Canvas struct {
	Width, Height int
	Grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]cell, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{r: blank}
		}
	}
}

// FillRect paints a w by h block at (col, row), clipped to the canvas.
func (c *Canvas) FillRect(col, row, w, h int, glyph rune, fill lipgloss.Color) {
	for y := max(row, 0); y < min(row+h, c.Height); y++ {
		for x := max(col, 0); x < min(col+w, c.Width); x++ {
			c.Grid[y][x] = cell{r: glyph, fill: fill, set: true}
		}
	}
}

// PutText writes s starting at (col, row), keeping the fill underneath.
func (c *Canvas) PutText(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.Grid[row][x].r = r
		c.Grid[row][x].label = true
	}
}

// String renders the canvas without colour, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		line := make([]rune, len(row))
		for i, cl := range row {
			line[i] = cl.r
		}
		b.WriteString(strings.TrimRight(string(line), " ") + "\n")
	}
	return b.String()
}

// Render renders the canvas with fills as background colours. Runs of cells
// sharing a fill are styled together.
func (c *Canvas) Render(theme Theme) string {
	var b strings.Builder
	for _, row := range c.Grid {
		start := 0
		for start < len(row) {
			end := start
			for end < len(row) && row[end].set == row[start].set && row[end].fill == row[start].fill {
				end++
			}
			var run strings.Builder
			for _, cl := range row[start:end] {
				if cl.set && !cl.label {
					run.WriteRune(blank)
				} else {
					run.WriteRune(cl.r)
				}
			}
			if row[start].set {
				style := lipgloss.NewStyle().Background(row[start].fill).Foreground(theme.Text).Bold(true)
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			start = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Rasterize draws the tree's current frame in paint order. Each element is a
// unit square whose top-left corner is its position; its label is centred.
func Rasterize(tree *surface.Tree, unit Unit, theme Theme) *Canvas {
	w, h := tree.Bounds()
	c := NewCanvas(int(math.Ceil(w))*unit.Cols, int(math.Ceil(h))*unit.Rows)

	bw, bh := unit.Cols, unit.Rows
	if bw > 1 {
		bw--
	}
	if bh > 1 {
		bh--
	}

	for _, e := range tree.Frame() {
		x, y := e.Pos()
		col := int(math.Round(x * float64(unit.Cols)))
		row := int(math.Round(y * float64(unit.Rows)))

		fill, _ := theme.Fill(e.Classes)
		glyph := '·'
		for _, name := range classPriority {
			if e.HasClass(name) {
				glyph = classGlyphs[name]
				break
			}
		}
		c.FillRect(col, row, bw, bh, glyph, fill)

		if e.Text != "" {
			label := []rune(e.Text)
			if len(label) > bw {
				label = label[:bw]
			}
			c.PutText(col+(bw-len(label))/2, row+(bh-1)/2, string(label))
		}
	}
	return c
}
