// Package render rasterizes an hourglass scene into terminal cells. Each
// cell holds two square pixels drawn with the upper/lower half-block glyphs.
package render

import (
	"fmt"
	"math"
	"strings"

	"hourglass/internal/geometry"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette colors are hex strings like "#d79921".
type Palette struct {
	Frame      string
	Sand       string
	Drip       string
	Background string
}

// minAlpha is the opacity below which the drip line is not drawn at all.
const minAlpha = 0.02

type Renderer struct {
	layout  geometry.Layout
	palette Palette
	cols    int
	rows    int

	background colorful.Color
	drip       colorful.Color
	styles     map[[2]string]lipgloss.Style
}

func New(layout geometry.Layout, palette Palette, cols, rows int) (*Renderer, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("canvas must be at least 1x1, got %dx%d", cols, rows)
	}
	for name, hex := range map[string]string{
		"frame":      palette.Frame,
		"sand":       palette.Sand,
		"drip":       palette.Drip,
		"background": palette.Background,
	} {
		if _, err := colorful.Hex(hex); err != nil {
			return nil, fmt.Errorf("%s color %q: %w", name, hex, err)
		}
	}
	bg, _ := colorful.Hex(palette.Background)
	drip, _ := colorful.Hex(palette.Drip)

	return &Renderer{
		layout:     layout,
		palette:    palette,
		cols:       cols,
		rows:       rows,
		background: bg,
		drip:       drip,
		styles:     make(map[[2]string]lipgloss.Style),
	}, nil
}

// Canvas is a grid of pixel colors; "" means nothing is drawn there.
type Canvas struct {
	Width, Height int
	pix           []string
}

func newCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, pix: make([]string, w*h)}
}

func (c *Canvas) At(x, y int) string {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ""
	}
	return c.pix[y*c.Width+x]
}

func (c *Canvas) set(x, y int, color string) {
	c.pix[y*c.Width+x] = color
}

// Count returns how many pixels carry color.
func (c *Canvas) Count(color string) int {
	n := 0
	for _, p := range c.pix {
		if p == color {
			n++
		}
	}
	return n
}

// Raster draws the scene for percentage p with the drip line at dripAlpha
// opacity. Shapes are painted frame first, then sand, then the drip.
func (r *Renderer) Raster(p, dripAlpha float64) *Canvas {
	scene := r.layout.Scene(p)
	steps := r.layout.CurveSteps

	frame := scene.Frame.Flatten(steps)
	bottom := scene.BottomSand.Flatten(steps)
	drip := scene.Drip.Flatten(1)

	c := newCanvas(r.cols, r.rows*2)
	sx := r.layout.Canvas.Width / float64(c.Width)
	sy := r.layout.Canvas.Height / float64(c.Height)
	pitch := math.Max(sx, sy)
	frameHalf := math.Max(r.layout.FrameStroke/2, pitch/2)
	dripHalf := math.Max(r.layout.DripStroke/2, pitch/2)

	dripAlpha = geometry.Clamp01(dripAlpha)

	for py := 0; py < c.Height; py++ {
		for px := 0; px < c.Width; px++ {
			pt := geometry.Point{X: (float64(px) + 0.5) * sx, Y: (float64(py) + 0.5) * sy}

			color := ""
			if nearAny(frame, pt, frameHalf, false) {
				color = r.palette.Frame
			}
			if scene.TopSand.Contains(pt) || containsAny(bottom, pt) {
				color = r.palette.Sand
			}
			if dripAlpha >= minAlpha && nearAny(drip, pt, dripHalf, true) {
				color = r.blend(color, dripAlpha)
			}
			c.set(px, py, color)
		}
	}
	return c
}

// Render returns the scene as rows of half-block glyphs.
func (r *Renderer) Render(p, dripAlpha float64) string {
	return r.String(r.Raster(p, dripAlpha))
}

func (r *Renderer) String(c *Canvas) string {
	lines := make([]string, 0, c.Height/2)
	var sb strings.Builder
	for y := 0; y+1 < c.Height; y += 2 {
		sb.Reset()
		for x := 0; x < c.Width; x++ {
			sb.WriteString(r.cell(c.At(x, y), c.At(x, y+1)))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) cell(top, bottom string) string {
	switch {
	case top == "" && bottom == "":
		return " "
	case bottom == "":
		return r.style(top, "").Render("▀")
	case top == "":
		return r.style(bottom, "").Render("▄")
	default:
		return r.style(top, bottom).Render("▀")
	}
}

func (r *Renderer) style(fg, bg string) lipgloss.Style {
	key := [2]string{fg, bg}
	if s, ok := r.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	r.styles[key] = s
	return s
}

// blend mixes the drip color over under (or the background when nothing
// is underneath).
func (r *Renderer) blend(under string, alpha float64) string {
	base := r.background
	if under != "" {
		if c, err := colorful.Hex(under); err == nil {
			base = c
		}
	}
	return base.BlendRgb(r.drip, alpha).Clamped().Hex()
}

func containsAny(rings []geometry.Polygon, pt geometry.Point) bool {
	for _, ring := range rings {
		if ring.Contains(pt) {
			return true
		}
	}
	return false
}

func nearAny(rings []geometry.Polygon, pt geometry.Point, dist float64, open bool) bool {
	for _, ring := range rings {
		if ring.DistanceTo(pt, open) <= dist {
			return true
		}
	}
	return false
}
