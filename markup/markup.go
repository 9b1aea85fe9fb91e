// Package markup writes orb visuals as HTML with a scoped stylesheet.
//
// Animated visuals become stacked, absolutely positioned boxes driven by CSS
// keyframe animations. Every class and keyframe name is prefixed with the
// visual's scope, so several orbs on one page never share rules. Static
// visuals are embedded as inline SVG from package vector.
package markup

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/gogpu/orb"
	"github.com/gogpu/orb/vector"
)

// Template tags. CSS uses braces, so placeholders use brackets.
const (
	tagOpen  = "[["
	tagClose = "]]"
)

const (
	rootTemplate = `<div class="[[classes]]" aria-hidden="true" role="presentation">[[children]]</div>`

	layerTemplate = `<span class="orb-[[group]] orb-[[name]]"></span>`

	containerRule = `.[[scope]]{position:relative;display:inline-block;flex:none;` +
		`width:[[width]];height:[[height]];pointer-events:none}` +
		`.[[scope]]>span{position:absolute;display:block;box-sizing:border-box;border-radius:50%}`

	layerRule = `.[[scope]] .orb-[[name]]{left:[[left]];top:[[top]];width:[[width]];height:[[height]];` +
		`[[paint]]opacity:[[opacity]];[[extra]]}`

	keyframesRule = `@keyframes [[name]]{[[frames]]}`

	pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>[[title]]</title>
<style>body{display:flex;gap:2rem;align-items:center;justify-content:center;min-height:100vh;margin:0;background:#0f172a}</style>
[[styles]]
</head>
<body>
[[bodies]]
</body>
</html>
`
)

func execute(tpl string, m map[string]any) string {
	return fasttemplate.ExecuteString(tpl, tagOpen, tagClose, m)
}

// Document is the markup of one visual.
type Document struct {
	HTML string
	CSS  string
}

// String returns the fragment: a style element followed by the element.
func (d *Document) String() string {
	return "<style>" + d.CSS + "</style>" + d.HTML
}

// Build produces the markup of v.
func Build(v *orb.Visual) (*Document, error) {
	scope := v.ScopeID()
	css := []string{execute(containerRule, map[string]any{
		"scope":  scope,
		"width":  rem(v.Width),
		"height": rem(v.Height),
	})}

	if !v.Animated() {
		var svg bytes.Buffer
		if err := vector.Write(&svg, v); err != nil {
			return nil, fmt.Errorf("markup: %w", err)
		}
		body := svg.String()
		if i := strings.Index(body, "<svg"); i > 0 {
			body = body[i:]
		}
		return &Document{
			HTML: root(v, body),
			CSS:  strings.Join(css, ""),
		}, nil
	}

	k := newKeyframes(scope, v.Scale())
	var children strings.Builder
	for i := range v.Layers {
		l := &v.Layers[i]
		children.WriteString(execute(layerTemplate, map[string]any{
			"group": l.Group.String(),
			"name":  html.EscapeString(l.Name),
		}))
		css = append(css, rule(scope, l, k))
	}
	css = append(css, k.rules...)

	orb.Logger().Debug("markup: built",
		"scope", scope,
		"layers", len(v.Layers),
		"keyframes", len(k.rules))
	return &Document{
		HTML: root(v, children.String()),
		CSS:  strings.Join(css, ""),
	}, nil
}

// Write writes the fragment of v to w.
func Write(w io.Writer, v *orb.Visual) error {
	d, err := Build(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, d.String())
	return err
}

// Page writes a standalone HTML page showing every visual side by side.
func Page(w io.Writer, title string, visuals ...*orb.Visual) error {
	var styles, bodies strings.Builder
	for _, v := range visuals {
		d, err := Build(v)
		if err != nil {
			return err
		}
		styles.WriteString("<style>" + d.CSS + "</style>\n")
		bodies.WriteString(d.HTML + "\n")
	}
	_, err := io.WriteString(w, execute(pageTemplate, map[string]any{
		"title":  html.EscapeString(title),
		"styles": styles.String(),
		"bodies": bodies.String(),
	}))
	return err
}

func root(v *orb.Visual, children string) string {
	classes := []string{"orb", v.ScopeID(), "orb-" + v.Strategy, "orb-" + v.Size.String()}
	if v.ClassName != "" {
		classes = append(classes, v.ClassName)
	}
	return execute(rootTemplate, map[string]any{
		"classes":  html.EscapeString(strings.Join(classes, " ")),
		"children": children,
	})
}

// rule returns the positioning, paint and animation rule of one layer.
func rule(scope string, l *orb.Layer, k *keyframes) string {
	s := k.scale
	rx, ry := l.Radius, l.Radius
	if l.RadiusY > 0 {
		ry = l.RadiusY
	}
	if l.StrokeWidth > 0 {
		rx += l.StrokeWidth / 2
		ry += l.StrokeWidth / 2
	}

	var extra strings.Builder
	if l.Blur > 0 {
		fmt.Fprintf(&extra, "filter:blur(%s);", px(l.Blur*s))
	}
	if l.Animated() {
		names := make([]string, len(l.Animations))
		for i := range l.Animations {
			names[i] = animation(k.name(l, &l.Animations[i]), &l.Animations[i])
		}
		fmt.Fprintf(&extra, "animation:%s;", strings.Join(names, ","))
	}

	return execute(layerRule, map[string]any{
		"scope":   scope,
		"name":    l.Name,
		"left":    rem((l.X - rx) * s),
		"top":     rem((l.Y - ry) * s),
		"width":   rem(rx * 2 * s),
		"height":  rem(ry * 2 * s),
		"paint":   paint(l, s),
		"opacity": num(l.Opacity),
		"extra":   extra.String(),
	})
}

// animation formats the animation shorthand of a.
func animation(name string, a *orb.Animation) string {
	return fmt.Sprintf("%s %s %s %s infinite %s",
		name, seconds(a.Duration.Seconds()), a.Easing, seconds(a.Delay.Seconds()), a.Direction)
}

// paint returns the background or border declarations of a layer.
func paint(l *orb.Layer, scale float64) string {
	p := l.Fill
	if p.Kind == orb.PaintSolid && l.StrokeWidth > 0 {
		if len(p.Stops) == 0 {
			return ""
		}
		return fmt.Sprintf("border:%s solid %s;", rem(l.StrokeWidth*scale), rgba(p.Stops[0]))
	}

	var bg string
	switch p.Kind {
	case orb.PaintSolid:
		if len(p.Stops) == 0 {
			return ""
		}
		bg = rgba(p.Stops[0])
	case orb.PaintRadial:
		bg = fmt.Sprintf("radial-gradient(circle at %s %s,%s)",
			pct(0.5+p.FocusX/2), pct(0.5+p.FocusY/2), stops(p.Stops))
	case orb.PaintLinear:
		bg = fmt.Sprintf("linear-gradient(%sdeg,%s)", num(p.Angle+90), stops(p.Stops))
	case orb.PaintConic:
		bg = fmt.Sprintf("conic-gradient(from %sdeg,%s)", num(p.Angle+90), stops(p.Stops))
	}
	decl := "background:" + bg + ";"
	if l.StrokeWidth > 0 {
		// Cut the center out so only a band of StrokeWidth remains.
		w := rem(l.StrokeWidth * scale)
		m := fmt.Sprintf("radial-gradient(farthest-side,transparent calc(100%% - %s),#000 calc(100%% - %s))", w, w)
		decl += "-webkit-mask:" + m + ";mask:" + m + ";"
	}
	return decl
}

func stops(ss []orb.Stop) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = rgba(s) + " " + pct(s.Offset)
	}
	return strings.Join(parts, ",")
}

// rgba formats a stop color with its opacity.
func rgba(s orb.Stop) string {
	hex := strings.TrimPrefix(s.Color, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return s.Color
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", v>>16&0xff, v>>8&0xff, v&0xff, num(s.Opacity))
}

// rem converts pixels at the root font size into rem.
func rem(pixels float64) string {
	return num(pixels/orb.RootFontSize) + "rem"
}

func px(v float64) string { return num(v) + "px" }

func pct(f float64) string { return num(f*100) + "%" }

func seconds(s float64) string { return num(s) + "s" }

// num formats f with at most four decimals.
func num(f float64) string {
	f = math.Round(f*10000) / 10000
	if f == 0 {
		f = 0 // drop negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
