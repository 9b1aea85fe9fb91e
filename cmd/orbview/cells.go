package main

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// cell is one terminal cell showing two vertically stacked pixels through
// the upper half block glyph: top as foreground, bottom as background.
type cell struct {
	top, bottom colorful.Color
}

// halfBlocks converts img into at most cols x rows cells, keeping the aspect
// ratio and never magnifying. Pixels are composited over bg.
func halfBlocks(img *image.RGBA, bg colorful.Color, cols, rows int) [][]cell {
	b := img.Bounds()
	if b.Empty() || cols <= 0 || rows <= 0 {
		return nil
	}
	scale := math.Min(1, math.Min(float64(cols)/float64(b.Dx()), float64(2*rows)/float64(b.Dy())))
	w := max(1, int(float64(b.Dx())*scale))
	h := max(2, int(float64(b.Dy())*scale))
	h += h % 2

	sample := func(x, y int) colorful.Color {
		sx := b.Min.X + min(b.Dx()-1, int(float64(x)/scale))
		sy := b.Min.Y + min(b.Dy()-1, int(float64(y)/scale))
		return over(img, sx, sy, bg)
	}

	out := make([][]cell, h/2)
	for r := range out {
		row := make([]cell, w)
		for c := range row {
			row[c] = cell{top: sample(c, 2*r), bottom: sample(c, 2*r+1)}
		}
		out[r] = row
	}
	return out
}

// over composites the premultiplied pixel at (x, y) over bg.
func over(img *image.RGBA, x, y int, bg colorful.Color) colorful.Color {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	a := float64(p[3]) / 255
	if a == 0 {
		return bg
	}
	fg := colorful.Color{
		R: float64(p[0]) / 255 / a,
		G: float64(p[1]) / 255 / a,
		B: float64(p[2]) / 255 / a,
	}.Clamped()
	return bg.BlendRgb(fg, a)
}
