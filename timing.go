package orb

import (
	"fmt"
	"math"
	"time"
)

// Direction is the playback direction of an animation.
type Direction uint8

// Directions, with CSS animation-direction semantics.
const (
	DirectionNormal Direction = iota
	DirectionReverse
	DirectionAlternate
	DirectionAlternateReverse
)

// String returns the CSS keyword for d.
func (d Direction) String() string {
	switch d {
	case DirectionNormal:
		return "normal"
	case DirectionReverse:
		return "reverse"
	case DirectionAlternate:
		return "alternate"
	case DirectionAlternateReverse:
		return "alternate-reverse"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Easing is a CSS cubic-bezier timing function.
type Easing struct {
	X1, Y1, X2, Y2 float64
}

// Timing functions used by the orb.
var (
	Linear    = Easing{0, 0, 1, 1}
	EaseInOut = Easing{0.42, 0, 0.58, 1}
)

// String returns the CSS form of the timing function.
func (e Easing) String() string {
	switch e {
	case Linear:
		return "linear"
	case EaseInOut:
		return "ease-in-out"
	}
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", e.X1, e.Y1, e.X2, e.Y2)
}

// Apply maps linear progress x in [0,1] to eased progress.
func (e Easing) Apply(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if e == Linear {
		return x
	}
	return bezier(e.Y1, e.Y2, e.solve(x))
}

// solve finds the curve parameter whose x coordinate is x.
// Newton iterations first, bisection if the slope flattens out.
func (e Easing) solve(x float64) float64 {
	s := x
	for range 8 {
		dx := bezier(e.X1, e.X2, s) - x
		if math.Abs(dx) < 1e-7 {
			return s
		}
		d := bezierSlope(e.X1, e.X2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}
	lo, hi := 0.0, 1.0
	s = x
	for range 40 {
		v := bezier(e.X1, e.X2, s)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// bezier evaluates one axis of a cubic bezier anchored at 0 and 1.
func bezier(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(p1, p2, s float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

// Prop is a bit set of the properties an animation drives.
type Prop uint8

// Animatable properties.
const (
	PropTranslate Prop = 1 << iota
	PropRotate
	PropScale
	PropOpacity
	PropGlow
)

// State is the value of every animatable property at one instant.
// Opacity and Scale are multipliers on the layer's own values.
type State struct {
	TranslateX, TranslateY float64
	Rotate                 float64 // degrees
	Scale                  float64
	Opacity                float64
	Glow                   float64 // 0..1
}

// Rest is the state of a layer with no animation applied.
var Rest = State{Scale: 1, Opacity: 1}

func (s State) lerp(o State, t float64) State {
	return State{
		TranslateX: lerp(s.TranslateX, o.TranslateX, t),
		TranslateY: lerp(s.TranslateY, o.TranslateY, t),
		Rotate:     lerp(s.Rotate, o.Rotate, t),
		Scale:      lerp(s.Scale, o.Scale, t),
		Opacity:    lerp(s.Opacity, o.Opacity, t),
		Glow:       lerp(s.Glow, o.Glow, t),
	}
}

// merge copies the properties in mask from o into s.
func (s State) merge(o State, mask Prop) State {
	if mask&PropTranslate != 0 {
		s.TranslateX, s.TranslateY = o.TranslateX, o.TranslateY
	}
	if mask&PropRotate != 0 {
		s.Rotate = o.Rotate
	}
	if mask&PropScale != 0 {
		s.Scale = o.Scale
	}
	if mask&PropOpacity != 0 {
		s.Opacity = o.Opacity
	}
	if mask&PropGlow != 0 {
		s.Glow = o.Glow
	}
	return s
}

// Keyframe pins a State at an offset in [0,1] of one iteration.
type Keyframe struct {
	Offset float64
	State  State
}

// Animation is an infinitely repeating keyframe animation.
//
// It is the portable form of one CSS animation: the same parameter table
// drives the generated stylesheet and the raster timing model.
type Animation struct {
	Name      string
	Duration  time.Duration
	Delay     time.Duration // negative delays start mid-cycle
	Direction Direction
	Easing    Easing
	Props     Prop
	Keyframes []Keyframe // sorted by Offset, first at 0, last at 1
}

// Progress returns the directed iteration progress in [0,1] at elapsed
// time t. Before a positive delay elapses the animation sits at keyframe
// offset 0 whatever its direction.
func (a *Animation) Progress(t time.Duration) float64 {
	elapsed := t - a.Delay
	if a.Duration <= 0 || elapsed < 0 {
		return 0
	}
	iter := int64(elapsed / a.Duration)
	frac := float64(elapsed%a.Duration) / float64(a.Duration)
	odd := iter%2 == 1
	switch a.Direction {
	case DirectionReverse:
		return 1 - frac
	case DirectionAlternate:
		if odd {
			return 1 - frac
		}
	case DirectionAlternateReverse:
		if !odd {
			return 1 - frac
		}
	}
	return frac
}

// Sample returns the animated state at elapsed time t. The easing applies
// to each keyframe interval separately, as in CSS.
func (a *Animation) Sample(t time.Duration) State {
	kf := a.Keyframes
	switch len(kf) {
	case 0:
		return Rest
	case 1:
		return kf[0].State
	}
	p := a.Progress(t)
	for i := 1; i < len(kf); i++ {
		if p > kf[i].Offset && i < len(kf)-1 {
			continue
		}
		from, to := kf[i-1], kf[i]
		span := to.Offset - from.Offset
		if span <= 0 {
			return to.State
		}
		local := (p - from.Offset) / span
		return from.State.lerp(to.State, a.Easing.Apply(local))
	}
	return kf[len(kf)-1].State
}

// StateAt composes every animation of the layer at elapsed time t. Each
// animation only overrides the properties it declares, so independent
// animations (float and glow on the sphere) run concurrently on one layer.
func (l *Layer) StateAt(t time.Duration) State {
	st := Rest
	for i := range l.Animations {
		a := &l.Animations[i]
		st = st.merge(a.Sample(t), a.Props)
	}
	return st
}

// Period returns the time after which every animation of the layers is back
// at the same phase: the least common multiple of all durations. A static
// composition has a period of zero.
func Period(layers []Layer) time.Duration {
	var p int64
	for i := range layers {
		for _, a := range layers[i].Animations {
			d := a.Duration.Milliseconds()
			if d <= 0 {
				continue
			}
			if p == 0 {
				p = d
				continue
			}
			p = p / gcd(p, d) * d
		}
	}
	return time.Duration(p) * time.Millisecond
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// polar returns the offset of a point at distance r and angle deg
// (degrees, clockwise from the positive x axis in screen space).
func polar(r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return r * math.Cos(rad), r * math.Sin(rad)
}
