package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/stepviz/internal/surface"
	"github.com/san-kum/stepviz/internal/viz"
)

// FrameToSVG draws the tree's current frame as SVG, one rect per element in
// paint order. scale is the pixel size of one script unit.
func FrameToSVG(tree *surface.Tree, theme viz.Theme, scale float64) string {
	if scale <= 0 {
		scale = 40
	}
	w, h := tree.Bounds()
	width := math.Max(w*scale, scale)
	height := math.Max(h*scale, scale)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background))

	gap := scale * 0.05
	for _, e := range tree.Frame() {
		x, y := e.Pos()
		fill, _ := theme.Fill(e.Classes)
		sb.WriteString(fmt.Sprintf(`<g id="%s" class="%s">
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, html.EscapeString(string(e.ID)), html.EscapeString(strings.Join(e.Classes, " ")),
			x*scale+gap, y*scale+gap, scale-2*gap, scale-2*gap, fill))
		if e.Text != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>
`, (x+0.5)*scale, (y+0.5)*scale, theme.Text, scale*0.45, html.EscapeString(e.Text)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots one value per step as a polyline, e.g. undo-log depth.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	// Add padding
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}
	lo -= rng * 0.1
	hi += rng * 0.1
	rng = hi - lo
	span := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / span * float64(width)
		y := float64(height) - (v-lo)/rng*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
