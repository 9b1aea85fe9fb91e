package orb

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/orb/internal/glow"
)

// geometry is a layer placement converted to device pixels.
type geometry struct {
	cx, cy  float64
	r, ry   float64
	stroke  float64
	rotate  float64 // degrees
	opacity float64
}

// Draw rasterizes the visual as it looks at elapsed time t, with its
// top-left corner at (x, y) on dc. Static visuals ignore t.
func (v *Visual) Draw(dc *gg.Context, x, y float64, t time.Duration) error {
	return v.DrawScaled(dc, x, y, 1, t)
}

// DrawScaled is Draw with the output magnified by zoom, for supersampling.
func (v *Visual) DrawScaled(dc *gg.Context, x, y, zoom float64, t time.Duration) error {
	k := v.Scale() * zoom
	for i := range v.Layers {
		l := &v.Layers[i]
		p := l.PlaceAt(t)
		if p.Opacity <= 0 || p.Radius <= 0 {
			continue
		}
		g := geometry{
			cx:      x + p.X*k,
			cy:      y + p.Y*k,
			r:       p.Radius * k,
			ry:      p.RadiusY * k,
			stroke:  l.StrokeWidth * k,
			rotate:  p.Rotate,
			opacity: p.Opacity,
		}
		if l.Group == GroupSphere && p.Glow > 0 {
			if err := drawHalo(dc, g, p.Glow); err != nil {
				return fmt.Errorf("orb: layer %s: %w", l.Name, err)
			}
		}
		var err error
		if p.Blur > 0 {
			err = drawBlurred(dc, l, g, p.Blur*k)
		} else {
			err = drawShape(dc, l, g)
		}
		if err != nil {
			return fmt.Errorf("orb: layer %s: %w", l.Name, err)
		}
	}
	return nil
}

// Frame renders the visual at elapsed time t onto a new transparent image
// of the visual's pixel size.
func (v *Visual) Frame(t time.Duration) (*image.RGBA, error) {
	w, h := pixelSize(v.Width), pixelSize(v.Height)
	pm := gg.NewPixmap(w, h)
	dc := gg.NewContext(w, h, gg.WithPixmap(pm))
	defer dc.Close()

	if err := v.Draw(dc, 0, 0, t); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("orb: flush: %w", err)
	}
	return pm.ToImage(), nil
}

func pixelSize(v float64) int {
	return max(1, int(math.Ceil(v)))
}

func drawShape(dc *gg.Context, l *Layer, g geometry) error {
	b := brush(l.Fill, g)
	switch l.Kind {
	case ShapeRing:
		dc.SetStrokeBrush(b)
		dc.SetLineWidth(math.Max(g.stroke, 0.5))
		dc.DrawCircle(g.cx, g.cy, g.r)
		return dc.Stroke()
	case ShapeHighlight:
		ry := g.ry
		if ry <= 0 {
			ry = g.r
		}
		dc.SetFillBrush(b)
		dc.DrawEllipse(g.cx, g.cy, g.r, ry)
		return dc.Fill()
	default:
		dc.SetFillBrush(b)
		dc.DrawCircle(g.cx, g.cy, g.r)
		return dc.Fill()
	}
}

// drawBlurred draws the shape offscreen, blurs the covered region and
// composites the result onto dc.
func drawBlurred(dc *gg.Context, l *Layer, g geometry, sigma float64) error {
	w, h := dc.Width(), dc.Height()
	off := gg.NewPixmap(w, h)
	odc := gg.NewContext(w, h, gg.WithPixmap(off))
	defer odc.Close()

	if err := drawShape(odc, l, g); err != nil {
		return err
	}
	if err := odc.FlushGPU(); err != nil {
		return err
	}
	composite(dc, off, bounds(g), sigma)
	return nil
}

// drawHalo draws the sphere's pulsing glow: a blurred disc behind the sphere
// whose alpha and spread follow the glow intensity.
func drawHalo(dc *gg.Context, g geometry, intensity float64) error {
	w, h := dc.Width(), dc.Height()
	off := gg.NewPixmap(w, h)
	odc := gg.NewContext(w, h, gg.WithPixmap(off))
	defer odc.Close()

	c := gg.Hex(GlowColor)
	c.A = intensity * g.opacity
	odc.SetFillBrush(gg.Solid(c))
	odc.DrawCircle(g.cx, g.cy, g.r)
	if err := odc.Fill(); err != nil {
		return err
	}
	if err := odc.FlushGPU(); err != nil {
		return err
	}
	composite(dc, off, bounds(g), HaloSigma(g.r, intensity))
	return nil
}

func composite(dc *gg.Context, off *gg.Pixmap, region image.Rectangle, sigma float64) {
	b := glow.Blur{Sigma: sigma}
	dst := gg.NewPixmap(off.Width(), off.Height())
	b.Apply(off, dst, b.ExpandBounds(region))
	dc.DrawImage(gg.ImageBufFromImage(dst.ToImage()), 0, 0)
}

func bounds(g geometry) image.Rectangle {
	rx := g.r + g.stroke/2
	ry := math.Max(g.ry, g.r) + g.stroke/2
	return image.Rect(
		int(math.Floor(g.cx-rx)), int(math.Floor(g.cy-ry)),
		int(math.Ceil(g.cx+rx))+1, int(math.Ceil(g.cy+ry))+1,
	)
}

// brush converts a Paint into a gg brush positioned on g.
func brush(p Paint, g geometry) gg.Brush {
	switch p.Kind {
	case PaintRadial:
		rb := gg.NewRadialGradientBrush(g.cx, g.cy, 0, g.r).
			SetFocus(g.cx+p.FocusX*g.r, g.cy+p.FocusY*g.r)
		for _, s := range p.Stops {
			rb.AddColorStop(s.Offset, stopColor(s, g.opacity))
		}
		return rb
	case PaintLinear:
		dx, dy := polar(g.r, p.Angle+g.rotate)
		lb := gg.NewLinearGradientBrush(g.cx-dx, g.cy-dy, g.cx+dx, g.cy+dy)
		for _, s := range p.Stops {
			lb.AddColorStop(s.Offset, stopColor(s, g.opacity))
		}
		return lb
	case PaintConic:
		sb := gg.NewSweepGradientBrush(g.cx, g.cy, (p.Angle+g.rotate)*math.Pi/180)
		for _, s := range p.Stops {
			sb.AddColorStop(s.Offset, stopColor(s, g.opacity))
		}
		return sb
	default:
		if len(p.Stops) == 0 {
			return gg.Solid(gg.Transparent)
		}
		return gg.Solid(stopColor(p.Stops[0], g.opacity))
	}
}

func stopColor(s Stop, opacity float64) gg.RGBA {
	c := gg.Hex(s.Color)
	c.A = s.Opacity * opacity
	return c
}
