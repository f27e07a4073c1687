package main

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a display color. The zero value (fully transparent) means "no
// color assigned yet"; entries get a real color exactly once, the first time
// they are drawn.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func (c RGBA) IsTransparent() bool { return c.A == 0 }

func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// autoColor derives the color for the idx-th plotted series by stepping the
// hue with the golden ratio, which keeps successive hues maximally apart
// without storing a palette. Saturation and value are fixed.
func autoColor(idx int) RGBA {
	const goldenRatio = 0.618033988749895 // (sqrt(5)-1)/2
	h := math.Mod(float64(idx)*goldenRatio, 1.0) * 360.0
	col := colorful.Hsv(h, 0.85, 0.5)
	r, g, b := col.RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}
