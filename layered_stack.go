package orb

import (
	"math"
	"strconv"
	"time"
)

// layeredStack is the keyframe-animated strategy: stacked round boxes sized
// by ResolveDimensions, each layer looping on its own timing.
type layeredStack struct{}

func (layeredStack) Name() string { return "layered" }

// anchor is a point inside the container as fractions of its edge,
// measured from the top-left corner.
type anchor struct{ left, top float64 }

// particleSpec describes one orbiting particle.
type particleSpec struct {
	at        anchor
	duration  time.Duration
	direction Direction
}

// Particle durations and directions are staggered so the four never line up
// again before the composite period.
var particleSpecs = [4]particleSpec{
	{at: anchor{0.85, 0.15}, duration: 8 * time.Second, direction: DirectionNormal},
	{at: anchor{0.10, 0.75}, duration: 10 * time.Second, direction: DirectionReverse},
	{at: anchor{0.05, 0.30}, duration: 12 * time.Second, direction: DirectionNormal},
	{at: anchor{0.80, 0.80}, duration: 9 * time.Second, direction: DirectionReverse},
}

// streamAnchors places the data-stream points.
var streamAnchors = [3]anchor{
	{0.50, 0.10},
	{0.90, 0.50},
	{0.30, 0.90},
}

const (
	floatAmplitude = 8.0 // px, independent of size
	ringWidth      = 1.0
	particleRadius = 1.0
	streamRadius   = 0.5
)

func (layeredStack) Compose(size Size) *Visual {
	dims := ResolveDimensions(size)
	edge := dims.Container.Pixels(RootFontSize)
	c := edge / 2
	sphereR := dims.Sphere.Pixels(RootFontSize) / 2

	layers := make([]Layer, 0, 12)

	// The two type rings share one 6s cycle, the wider one two seconds
	// ahead. Borders sit inside their boxes.
	rings := []struct {
		box   Length
		alpha float64
	}{
		{dims.RingInner, 0.3},
		{dims.RingOuter, 0.2},
	}
	for i, r := range rings {
		layers = append(layers, Layer{
			Name:        "ring-" + strconv.Itoa(i+1),
			Kind:        ShapeRing,
			Group:       GroupRing,
			X:           c,
			Y:           c,
			Radius:      (r.box.Pixels(RootFontSize) - ringWidth) / 2,
			Fill:        Solid(colorCode, r.alpha),
			StrokeWidth: ringWidth,
			Opacity:     1,
			Animations:  []Animation{ringPulse(time.Duration(-2*i) * time.Second)},
		})
	}

	// The frame hangs one pixel outside the sphere, behind it, and rides
	// along with its float.
	layers = append(layers, Layer{
		Name:   "frame",
		Kind:   ShapeFrame,
		Group:  GroupFrame,
		X:      c,
		Y:      c,
		Radius: sphereR + 1,
		Fill: Paint{Kind: PaintLinear, Angle: -45, Stops: []Stop{
			{Offset: 0, Color: colorCode, Opacity: 0.8},
			{Offset: 0.5, Color: colorBlue800, Opacity: 0.6},
			{Offset: 1, Color: colorBlue900, Opacity: 0.8},
		}},
		Opacity: 1,
		Blur:    2,
		Animations: []Animation{
			{
				Name:     "frame-spin",
				Duration: 12 * time.Second,
				Easing:   Linear,
				Props:    PropRotate,
				Keyframes: []Keyframe{
					{Offset: 0, State: Rest},
					{Offset: 1, State: State{Rotate: 360, Scale: 1, Opacity: 1}},
				},
			},
			sphereFloat(PropTranslate | PropScale),
		},
	})

	layers = append(layers, Layer{
		Name:   "sphere",
		Kind:   ShapeCircle,
		Group:  GroupSphere,
		X:      c,
		Y:      c,
		Radius: sphereR,
		Fill: Paint{Kind: PaintLinear, Angle: 45, Stops: []Stop{
			{Offset: 0, Color: colorCode, Opacity: 1},
			{Offset: 0.25, Color: colorCodeDeep, Opacity: 1},
			{Offset: 0.5, Color: colorBlue800, Opacity: 1},
			{Offset: 0.75, Color: colorBlue900, Opacity: 1},
			{Offset: 1, Color: colorSlate800, Opacity: 1},
		}},
		Opacity:    1,
		Animations: []Animation{sphereFloat(PropTranslate | PropScale), sphereGlow()},
	})

	// The highlight covers a quarter of the sphere box, 20% from its top
	// and 25% from its left.
	layers = append(layers, Layer{
		Name:   "highlight",
		Kind:   ShapeHighlight,
		Group:  GroupHighlight,
		X:      c - sphereR*0.25,
		Y:      c - sphereR*0.35,
		Radius: sphereR * 0.25,
		Fill: Paint{Kind: PaintRadial, Stops: []Stop{
			{Offset: 0, Color: colorWhite, Opacity: 0.9},
			{Offset: 0.5, Color: colorWhite, Opacity: 0.4},
			{Offset: 0.8, Color: colorWhite, Opacity: 0},
		}},
		Opacity: 1,
		Animations: []Animation{
			{
				Name:     "highlight-pulse",
				Duration: 3 * time.Second,
				Easing:   EaseInOut,
				Props:    PropScale | PropOpacity,
				Keyframes: []Keyframe{
					{Offset: 0, State: State{Scale: 1, Opacity: 0.4}},
					{Offset: 0.5, State: State{Scale: 1.1, Opacity: 0.8}},
					{Offset: 1, State: State{Scale: 1, Opacity: 0.4}},
				},
			},
			sphereFloat(PropTranslate),
		},
	})

	// Particles circle the sphere center, starting at their anchor's angle.
	// Orbits keep the anchors' relative distances, scaled so the farthest
	// particle stays inside the container.
	var farthest float64
	for _, p := range particleSpecs {
		farthest = math.Max(farthest, math.Hypot(p.at.left-0.5, p.at.top-0.5))
	}
	for i, p := range particleSpecs {
		dx, dy := p.at.left-0.5, p.at.top-0.5
		angle := math.Atan2(dy, dx) * 180 / math.Pi
		layers = append(layers, Layer{
			Name:    "particle-" + strconv.Itoa(i+1),
			Kind:    ShapeDot,
			Group:   GroupParticle,
			X:       c,
			Y:       c,
			Radius:  particleRadius,
			Fill:    Solid(colorCode, 1),
			Opacity: 1,
			Orbit:   math.Hypot(dx, dy) / farthest * (c - particleRadius),
			Animations: []Animation{{
				Name:      "orbit-" + strconv.Itoa(i+1),
				Duration:  p.duration,
				Direction: p.direction,
				Easing:    Linear,
				Props:     PropRotate | PropOpacity,
				Keyframes: []Keyframe{
					{Offset: 0, State: State{Rotate: angle, Scale: 1, Opacity: 0.7}},
					{Offset: 0.5, State: State{Rotate: angle + 180, Scale: 1, Opacity: 1}},
					{Offset: 1, State: State{Rotate: angle + 360, Scale: 1, Opacity: 0.7}},
				},
			}},
		})
	}

	for i, a := range streamAnchors {
		layers = append(layers, Layer{
			Name:       "stream-" + strconv.Itoa(i+1),
			Kind:       ShapeDot,
			Group:      GroupStream,
			X:          a.left * edge,
			Y:          a.top * edge,
			Radius:     streamRadius,
			Fill:       Solid(colorCode, 0.6),
			Opacity:    1,
			Animations: []Animation{streamPulse(time.Duration(-i) * time.Second)},
		})
	}

	return &Visual{
		Width:   edge,
		Height:  edge,
		ViewBox: edge,
		Layers:  layers,
	}
}

// ringPulse expands a ring while it fades out.
func ringPulse(delay time.Duration) Animation {
	return Animation{
		Name:     "ring-pulse",
		Duration: 6 * time.Second,
		Delay:    delay,
		Easing:   EaseInOut,
		Props:    PropScale | PropOpacity,
		Keyframes: []Keyframe{
			{Offset: 0, State: State{Scale: 0.9, Opacity: 0.6}},
			{Offset: 0.5, State: State{Scale: 1.05, Opacity: 0.3}},
			{Offset: 1, State: State{Scale: 1.2, Opacity: 0}},
		},
	}
}

// sphereFloat lifts the sphere by floatAmplitude and swells it slightly.
// Layers riding on the sphere pass the properties they follow.
func sphereFloat(props Prop) Animation {
	return Animation{
		Name:     "float",
		Duration: 4 * time.Second,
		Easing:   EaseInOut,
		Props:    props,
		Keyframes: []Keyframe{
			{Offset: 0, State: Rest},
			{Offset: 0.5, State: State{TranslateY: -floatAmplitude, Scale: 1.02, Opacity: 1}},
			{Offset: 1, State: Rest},
		},
	}
}

func sphereGlow() Animation {
	return Animation{
		Name:      "glow",
		Duration:  2 * time.Second,
		Direction: DirectionAlternate,
		Easing:    EaseInOut,
		Props:     PropGlow,
		Keyframes: []Keyframe{
			{Offset: 0, State: State{Scale: 1, Opacity: 1, Glow: 0.4}},
			{Offset: 1, State: State{Scale: 1, Opacity: 1, Glow: 0.6}},
		},
	}
}

func streamPulse(delay time.Duration) Animation {
	return Animation{
		Name:     "stream-pulse",
		Duration: 3 * time.Second,
		Delay:    delay,
		Easing:   EaseInOut,
		Props:    PropScale | PropOpacity,
		Keyframes: []Keyframe{
			{Offset: 0, State: State{Scale: 0.5, Opacity: 0}},
			{Offset: 0.5, State: State{Scale: 1.5, Opacity: 1}},
			{Offset: 1, State: State{Scale: 0.5, Opacity: 0}},
		},
	}
}
