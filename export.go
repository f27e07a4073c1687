package main

import (
	"fmt"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	exportWidth  = 1024
	exportHeight = 768
	exportMargin = 48.0
)

type exportSeries struct {
	name   string
	color  RGBA
	points [][2]float64
}

// ExportPNG replays the display transform of every drawn, colored entry into
// a static raster image at a fixed canvas size, with axis tick labels and a
// legend keyed by filename. Entries outside the drawing predicate or without
// an assigned color are skipped.
func (s *Session) ExportPNG(path string) error {
	var series []exportSeries
	for _, e := range s.Entries() {
		if !e.DrawnInPlot() || e.Color.IsTransparent() {
			continue
		}
		series = append(series, exportSeries{
			name:   e.Filename,
			color:  e.Color,
			points: displayedPoints(e),
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("nothing to export")
	}

	dims := s.PlotDims
	if dims.XSpan() == 0 || dims.YSpan() == 0 {
		return fmt.Errorf("plot viewport has no extent")
	}

	dc := gg.NewContext(exportWidth, exportHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	left, top := exportMargin, exportMargin
	right, bottom := float64(exportWidth)-exportMargin, float64(exportHeight)-exportMargin

	project := func(p [2]float64) (float64, float64) {
		px := left + (p[0]-dims.X0)/(dims.X1-dims.X0)*(right-left)
		py := bottom - (p[1]-dims.Y0)/(dims.Y1-dims.Y0)*(bottom-top)
		return px, py
	}

	// Frame and tick labels, three per axis.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(left, top, right-left, bottom-top)
	dc.Stroke()
	for i := 0; i <= 2; i++ {
		frac := float64(i) / 2
		xv := dims.X0 + frac*(dims.X1-dims.X0)
		yv := dims.Y0 + frac*(dims.Y1-dims.Y0)
		px := left + frac*(right-left)
		py := bottom - frac*(bottom-top)

		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(px, top, px, bottom)
		dc.DrawLine(left, py, right, py)
		dc.Stroke()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatTick(xv), px, bottom+6, 0.5, 1)
		dc.DrawStringAnchored(formatTick(yv), left-6, py, 1, 0.5)
	}

	// Series polylines, clipped to the plot frame.
	dc.Push()
	dc.DrawRectangle(left, top, right-left, bottom-top)
	dc.Clip()
	for _, sr := range series {
		dc.SetRGBA255(int(sr.color.R), int(sr.color.G), int(sr.color.B), int(sr.color.A))
		dc.SetLineWidth(2)
		for i, p := range sr.points {
			px, py := project(p)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}
	dc.ResetClip()
	dc.Pop()

	drawLegend(dc, series, right, top)

	return dc.SavePNG(path)
}

func drawLegend(dc *gg.Context, series []exportSeries, right, top float64) {
	const (
		lineHeight = 18.0
		sampleLen  = 20.0
		padding    = 8.0
	)
	maxW := 0.0
	for _, sr := range series {
		if w, _ := dc.MeasureString(sr.name); w > maxW {
			maxW = w
		}
	}
	boxW := maxW + sampleLen + 3*padding
	boxH := float64(len(series))*lineHeight + 2*padding
	x := right - boxW - padding
	y := top + padding

	dc.SetRGBA(1, 1, 1, 0.8)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, boxW, boxH)
	dc.Stroke()

	for i, sr := range series {
		cy := y + padding + (float64(i)+0.5)*lineHeight
		dc.SetRGBA255(int(sr.color.R), int(sr.color.G), int(sr.color.B), int(sr.color.A))
		dc.SetLineWidth(2)
		dc.DrawLine(x+padding, cy, x+padding+sampleLen, cy)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(sr.name, x+2*padding+sampleLen, cy, 0, 0.35)
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
