package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The plot canvas rasterizes series into braille cells: every terminal cell
// carries a 2x4 dot grid, so a w x h cell viewport gives 2w x 4h addressable
// pixels. Cells keep the color of the last series that touched them.

// brailleMask[dx][dy] is the dot bit for pixel (dx, dy) inside a cell.
var brailleMask = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type plotCanvas struct {
	w, h   int
	dots   []uint8
	colors []RGBA
	em     []bool // emphasized (active series) cells
}

func newPlotCanvas(w, h int) *plotCanvas {
	return &plotCanvas{
		w:      w,
		h:      h,
		dots:   make([]uint8, w*h),
		colors: make([]RGBA, w*h),
		em:     make([]bool, w*h),
	}
}

func (c *plotCanvas) pixelSize() (int, int) { return c.w * 2, c.h * 4 }

func (c *plotCanvas) setPixel(px, py int, col RGBA, emphasize bool) {
	pw, ph := c.pixelSize()
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return
	}
	idx := (py/4)*c.w + px/2
	c.dots[idx] |= brailleMask[px%2][py%4]
	c.colors[idx] = col
	if emphasize {
		c.em[idx] = true
	}
}

// drawSegment rasterizes one line segment in pixel coordinates, clipped to
// the canvas first so far-off-screen points cost nothing.
func (c *plotCanvas) drawSegment(x0, y0, x1, y1 float64, col RGBA, emphasize bool) {
	pw, ph := c.pixelSize()
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(pw-1), float64(ph-1))
	if !ok {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.setPixel(int(math.Round(x0+dx*t)), int(math.Round(y0+dy*t)), col, emphasize)
	}
}

// clipSegment is Liang-Barsky against [0,xmax] x [0,ymax].
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx := x1 - x0
	dy := y1 - y0
	checks := [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	}
	for _, ch := range checks {
		p, q := ch[0], ch[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// plotSeries projects the points through the viewport bounds and connects
// consecutive points with segments.
func (c *plotCanvas) plotSeries(points [][2]float64, dims PlotDims, col RGBA, emphasize bool) {
	if len(points) == 0 || dims.X1 == dims.X0 || dims.Y1 == dims.Y0 {
		return
	}
	pw, ph := c.pixelSize()
	project := func(p [2]float64) (float64, float64) {
		px := (p[0] - dims.X0) / (dims.X1 - dims.X0) * float64(pw-1)
		py := (1 - (p[1]-dims.Y0)/(dims.Y1-dims.Y0)) * float64(ph-1)
		return px, py
	}
	prevX, prevY := project(points[0])
	if len(points) == 1 {
		c.setPixel(int(math.Round(prevX)), int(math.Round(prevY)), col, emphasize)
		return
	}
	for _, p := range points[1:] {
		px, py := project(p)
		c.drawSegment(prevX, prevY, px, py, col, emphasize)
		prevX, prevY = px, py
	}
}

func (c *plotCanvas) render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.w; x++ {
			idx := y*c.w + x
			if c.dots[idx] == 0 {
				b.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.colors[idx].Hex()))
			if c.em[idx] {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(string(rune(0x2800 | int(c.dots[idx])))))
		}
	}
	return b.String()
}

// RenderPlot draws every entry passing the drawing predicate into a braille
// canvas, assigning a color to each entry drawn for the first time, and
// writes the viewport bounds in use back into the session so span-relative
// gestures always see them.
func RenderPlot(s *Session, w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	dims := s.PlotDims
	if dims.XSpan() == 0 || dims.YSpan() == 0 {
		dims = autoFitDims(s)
	}
	c := newPlotCanvas(w, h)
	for _, e := range s.Entries() {
		if !e.DrawnInPlot() {
			continue
		}
		if e.Color.IsTransparent() {
			e.Color = autoColor(s.nextColorIndex())
		}
		c.plotSeries(displayedPoints(e), dims, e.Color, e.IsActive())
	}
	s.PlotDims = dims
	return c.render()
}

// displayedPoints applies the entry's current transform text to its raw
// series, re-parsed on every call. Unparsable text falls back to the neutral
// defaults instead of breaking the frame.
func displayedPoints(e *FileEntry) [][2]float64 {
	scale := e.Scale.ParseOr(1.0)
	offset := e.Offset.ParseOr(0.0)
	xoffset := e.XOffset.ParseOr(0.0)
	out := make([][2]float64, len(e.DataFile.Data))
	for i, p := range e.DataFile.Data {
		out[i] = [2]float64{p[0] + xoffset, p[1]*scale + offset}
	}
	return out
}

// autoFitDims derives viewport bounds from the drawn entries with a small
// margin. Used when the session has no usable bounds yet.
func autoFitDims(s *Session) PlotDims {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range s.Entries() {
		if !e.DrawnInPlot() {
			continue
		}
		for _, p := range displayedPoints(e) {
			minX = math.Min(minX, p[0])
			maxX = math.Max(maxX, p[0])
			minY = math.Min(minY, p[1])
			maxY = math.Max(maxY, p[1])
		}
	}
	if math.IsInf(minX, 1) {
		return PlotDims{X0: -1, X1: 1, Y0: -1, Y1: 1}
	}
	if minX == maxX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if minY == maxY {
		minY, maxY = minY-0.5, maxY+0.5
	}
	padX := (maxX - minX) * 0.05
	padY := (maxY - minY) * 0.05
	return PlotDims{X0: minX - padX, X1: maxX + padX, Y0: minY - padY, Y1: maxY + padY}
}
