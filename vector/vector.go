// Package vector writes static orb visuals as SVG documents.
//
// The gradient strategy's view box maps one-to-one onto the SVG viewBox, so
// the document scales cleanly at any size. Animated visuals have no static
// vector form and are rejected with ErrAnimated; use package markup for
// them.
package vector

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/orb"
)

// ErrAnimated is returned for visuals whose layers carry animations.
var ErrAnimated = errors.New("vector: visual is animated")

// ErrUnsupportedPaint is returned for paints SVG 1.1 cannot express.
var ErrUnsupportedPaint = errors.New("vector: unsupported paint")

// sub is the sub-unit precision: svgo takes integer coordinates, so the
// body is drawn in a group scaled by 1/sub with coordinates multiplied by sub.
const sub = 2

// Write renders v as a standalone SVG document. The document is marked
// aria-hidden: the orb is decorative.
func Write(w io.Writer, v *orb.Visual) error {
	if v.Animated() {
		return fmt.Errorf("%w: %s", ErrAnimated, v.Strategy)
	}
	for i := range v.Layers {
		if v.Layers[i].Fill.Kind == orb.PaintConic {
			return fmt.Errorf("%w: conic fill on %s", ErrUnsupportedPaint, v.Layers[i].Name)
		}
	}

	scope := v.ScopeID()
	vb := round(v.ViewBox)
	canvas := svg.New(w)
	canvas.Start(round(v.Width), round(v.Height),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, vb, vb),
		fmt.Sprintf(`class="%s"`, html.EscapeString(classes(v))),
		`aria-hidden="true"`,
		`focusable="false"`,
		`role="presentation"`)

	canvas.Def()
	for i := range v.Layers {
		writeDefs(canvas, scope, &v.Layers[i])
	}
	canvas.DefEnd()

	canvas.Group(fmt.Sprintf(`transform="scale(%s)"`, strconv.FormatFloat(1.0/sub, 'f', -1, 64)))
	for i := range v.Layers {
		writeLayer(canvas, scope, &v.Layers[i])
	}
	canvas.Gend()
	canvas.End()

	orb.Logger().Debug("vector: wrote svg", "scope", scope, "layers", len(v.Layers))
	return nil
}

// classes returns the class attribute of the root element.
func classes(v *orb.Visual) string {
	parts := []string{"orb", v.ScopeID(), "orb-" + v.Strategy, "orb-" + v.Size.String()}
	if v.ClassName != "" {
		parts = append(parts, v.ClassName)
	}
	return strings.Join(parts, " ")
}

func writeDefs(canvas *svg.SVG, scope string, l *orb.Layer) {
	switch l.Fill.Kind {
	case orb.PaintRadial:
		fx := percent(0.5 + l.Fill.FocusX/2)
		fy := percent(0.5 + l.Fill.FocusY/2)
		canvas.RadialGradient(fillID(scope, l), 50, 50, 50, fx, fy, offcolors(l.Fill.Stops))
	case orb.PaintLinear:
		rad := l.Fill.Angle * math.Pi / 180
		dx, dy := math.Cos(rad)/2, math.Sin(rad)/2
		canvas.LinearGradient(fillID(scope, l),
			percent(0.5-dx), percent(0.5-dy), percent(0.5+dx), percent(0.5+dy),
			offcolors(l.Fill.Stops))
	}
	if l.Blur > 0 {
		canvas.Filter(blurID(scope, l), `x="-50%"`, `y="-50%"`, `width="200%"`, `height="200%"`)
		sd := l.Blur * sub
		canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, sd, sd)
		canvas.Fend()
	}
}

func writeLayer(canvas *svg.SVG, scope string, l *orb.Layer) {
	attrs := []string{
		fmt.Sprintf(`class="orb-%s"`, l.Group),
		fmt.Sprintf(`opacity="%s"`, num(l.Opacity)),
	}
	attrs = append(attrs, fillAttrs(scope, l)...)
	if l.Blur > 0 {
		attrs = append(attrs, fmt.Sprintf(`filter="url(#%s)"`, blurID(scope, l)))
	}
	style := strings.Join(attrs, " ")

	x, y, r := round(l.X*sub), round(l.Y*sub), round(l.Radius*sub)
	if l.Kind == orb.ShapeHighlight && l.RadiusY > 0 {
		canvas.Ellipse(x, y, r, round(l.RadiusY*sub), style)
		return
	}
	canvas.Circle(x, y, r, style)
}

func fillAttrs(scope string, l *orb.Layer) []string {
	prop := "fill"
	var attrs []string
	if l.StrokeWidth > 0 {
		prop = "stroke"
		attrs = append(attrs, `fill="none"`, fmt.Sprintf(`stroke-width="%s"`, num(l.StrokeWidth*sub)))
	}
	if l.Fill.Kind != orb.PaintSolid {
		return append(attrs, fmt.Sprintf(`%s="url(#%s)"`, prop, fillID(scope, l)))
	}
	if len(l.Fill.Stops) == 0 {
		return append(attrs, prop+`="none"`)
	}
	s := l.Fill.Stops[0]
	attrs = append(attrs, fmt.Sprintf(`%s="%s"`, prop, s.Color))
	if s.Opacity < 1 {
		attrs = append(attrs, fmt.Sprintf(`%s-opacity="%s"`, prop, num(s.Opacity)))
	}
	return attrs
}

func offcolors(stops []orb.Stop) []svg.Offcolor {
	out := make([]svg.Offcolor, len(stops))
	for i, s := range stops {
		out[i] = svg.Offcolor{Offset: percent(s.Offset), Color: s.Color, Opacity: s.Opacity}
	}
	return out
}

func fillID(scope string, l *orb.Layer) string { return scope + "-" + l.Name + "-fill" }
func blurID(scope string, l *orb.Layer) string { return scope + "-" + l.Name + "-blur" }

// percent converts a 0..1 fraction to the 0..100 integer svgo expects.
func percent(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 100))
}

func round(f float64) int {
	return int(math.Round(f))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
