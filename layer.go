package orb

import (
	"strconv"
	"time"
)

// ShapeKind identifies the primitive a layer draws.
type ShapeKind uint8

// Shape kinds.
const (
	// ShapeCircle is a filled circle.
	ShapeCircle ShapeKind = iota
	// ShapeRing is a stroked circle outline.
	ShapeRing
	// ShapeFrame is a blurred, rotating gradient disc behind the sphere.
	ShapeFrame
	// ShapeHighlight is a filled ellipse used as a specular patch.
	ShapeHighlight
	// ShapeDot is a small filled circle (particles, data streams, nodes).
	ShapeDot
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRing:
		return "ring"
	case ShapeFrame:
		return "frame"
	case ShapeHighlight:
		return "highlight"
	case ShapeDot:
		return "dot"
	default:
		return "ShapeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Group tags a layer with the role it plays in the composition.
type Group uint8

// Layer groups. The first six belong to the layered strategy, the rest to
// the gradient strategy.
const (
	GroupRing Group = iota
	GroupFrame
	GroupSphere
	GroupHighlight
	GroupParticle
	GroupStream
	GroupAtmosphere
	GroupBody
	GroupGloss
	GroupNeural
	GroupNode
)

var groupNames = [...]string{
	GroupRing:       "ring",
	GroupFrame:      "frame",
	GroupSphere:     "sphere",
	GroupHighlight:  "highlight",
	GroupParticle:   "particle",
	GroupStream:     "stream",
	GroupAtmosphere: "atmosphere",
	GroupBody:       "body",
	GroupGloss:      "gloss",
	GroupNeural:     "neural",
	GroupNode:       "node",
}

// String returns the group name. It doubles as the CSS class suffix.
func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "Group(" + strconv.Itoa(int(g)) + ")"
}

// PaintKind selects how a Paint is filled.
type PaintKind uint8

// Paint kinds.
const (
	PaintSolid PaintKind = iota
	PaintRadial
	PaintLinear
	PaintConic
)

// Stop is one color stop of a gradient paint.
type Stop struct {
	Offset  float64 // 0..1
	Color   string  // #rrggbb
	Opacity float64 // 0..1
}

// Paint describes a fill independent of the output backend.
// Raster, SVG and CSS output all read the same description.
type Paint struct {
	Kind  PaintKind
	Stops []Stop

	// FocusX and FocusY place the radial focal point relative to the shape
	// center, as fractions of the radius.
	FocusX, FocusY float64

	// Angle is the direction of a linear gradient in degrees (90 runs top to
	// bottom) or the start angle of a conic gradient.
	Angle float64
}

// Solid returns a single-color paint.
func Solid(color string, opacity float64) Paint {
	return Paint{Kind: PaintSolid, Stops: []Stop{{Offset: 0, Color: color, Opacity: opacity}}}
}

// Layer is one shape of an orb composition.
//
// Coordinates are in the visual's own units: pixels for the layered
// strategy, view-box units for the gradient strategy. Layers are declared
// statically; their position in Visual.Layers is their z-order.
type Layer struct {
	Name  string
	Kind  ShapeKind
	Group Group

	// X and Y are the center of the shape, or of the orbit for orbiting layers.
	X, Y float64

	Radius float64
	// RadiusY makes the shape an ellipse when non-zero.
	RadiusY float64

	Fill Paint
	// StrokeWidth > 0 strokes the outline with Fill instead of filling.
	StrokeWidth float64

	Opacity float64
	// Blur is the Gaussian standard deviation applied to the layer.
	Blur float64
	// Orbit is the distance from (X, Y) at which the shape travels.
	Orbit float64

	Animations []Animation
}

// Animated reports whether the layer carries any animation.
func (l *Layer) Animated() bool {
	return len(l.Animations) > 0
}

// Placement is the resolved geometry of a layer at one instant.
type Placement struct {
	X, Y     float64
	Radius   float64
	RadiusY  float64
	Rotate   float64 // degrees
	Opacity  float64
	Glow     float64
	Blur     float64
	Animated bool
}

// PlaceAt resolves the layer's geometry at elapsed time t.
func (l *Layer) PlaceAt(t time.Duration) Placement {
	st := l.StateAt(t)
	p := Placement{
		X:        l.X + st.TranslateX,
		Y:        l.Y + st.TranslateY,
		Radius:   l.Radius * st.Scale,
		RadiusY:  l.RadiusY * st.Scale,
		Rotate:   st.Rotate,
		Opacity:  l.Opacity * st.Opacity,
		Glow:     st.Glow,
		Blur:     l.Blur,
		Animated: l.Animated(),
	}
	if l.Orbit > 0 {
		x, y := polar(l.Orbit, st.Rotate)
		p.X += x
		p.Y += y
	}
	return p
}
