package orb

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestRenderReferentiallyTransparent(t *testing.T) {
	for _, s := range Strategies() {
		for _, size := range Sizes {
			a := Render(WithStrategy(s), WithSize(size), WithClassName("x"))
			b := Render(WithStrategy(s), WithSize(size), WithClassName("x"))
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%s/%v: two renders differ", s.Name(), size)
			}
		}
	}
}

func TestRenderDefaults(t *testing.T) {
	got := Render()
	want := Render(WithSize(SizeDefault))
	if !reflect.DeepEqual(got, want) {
		t.Error("Render() differs from Render(WithSize(SizeDefault))")
	}
	if got.Strategy != Layered.Name() {
		t.Errorf("default strategy = %q, want %q", got.Strategy, Layered.Name())
	}
	if got.ClassName != "" {
		t.Errorf("default class = %q, want empty", got.ClassName)
	}
	if !reflect.DeepEqual(Render(WithStrategy(nil)), got) {
		t.Error("WithStrategy(nil) should keep the default strategy")
	}
}

func TestLayeredCounts(t *testing.T) {
	want := map[Group]int{
		GroupRing:      2,
		GroupFrame:     1,
		GroupSphere:    1,
		GroupHighlight: 1,
		GroupParticle:  4,
		GroupStream:    3,
	}
	for _, size := range Sizes {
		v := Render(WithSize(size))
		for g, n := range want {
			if got := v.Count(g); got != n {
				t.Errorf("%v: Count(%v) = %d, want %d", size, g, got, n)
			}
		}
		if len(v.Layers) != 12 {
			t.Errorf("%v: %d layers, want 12", size, len(v.Layers))
		}
	}
}

func TestGradientCounts(t *testing.T) {
	for _, size := range Sizes {
		v := Render(WithStrategy(Gradient), WithSize(size))
		shapes := v.Count(GroupAtmosphere) + v.Count(GroupBody) + v.Count(GroupGloss) + v.Count(GroupNeural)
		if shapes != 5 {
			t.Errorf("%v: %d gradient shapes, want 5", size, shapes)
		}
		if got := v.Count(GroupNode); got != 4 {
			t.Errorf("%v: %d energy nodes, want 4", size, got)
		}
		if v.Animated() {
			t.Errorf("%v: gradient visual must be static", size)
		}
		if v.Period() != 0 {
			t.Errorf("%v: period = %v, want 0", size, v.Period())
		}
	}
}

func TestGradientGeometryFixed(t *testing.T) {
	small := Render(WithStrategy(Gradient), WithSize(SizeSmall))
	large := Render(WithStrategy(Gradient), WithSize(SizeLarge))
	if !reflect.DeepEqual(small.Layers, large.Layers) {
		t.Error("gradient layers must not depend on size")
	}
	if small.ViewBox != ViewBoxSize || large.ViewBox != ViewBoxSize {
		t.Errorf("view boxes = %v, %v, want %v", small.ViewBox, large.ViewBox, ViewBoxSize)
	}
	if small.Width >= large.Width {
		t.Errorf("small width %v not below large width %v", small.Width, large.Width)
	}

	radii := []float64{130, 110, 80, 80, 70}
	for i, r := range radii {
		if got := small.Layers[i].Radius; got != r {
			t.Errorf("layer %d radius = %v, want %v", i, got, r)
		}
	}
	for _, l := range small.Layers[5:] {
		if l.Radius < 2.5 || l.Radius > 4 {
			t.Errorf("%s radius %v outside [2.5, 4]", l.Name, l.Radius)
		}
		if l.Opacity < 0.6 || l.Opacity > 0.9 {
			t.Errorf("%s opacity %v outside [0.6, 0.9]", l.Name, l.Opacity)
		}
	}
	if n := len(small.Layers[2].Fill.Stops); n != 4 {
		t.Errorf("body gradient has %d stops, want 4", n)
	}
}

func TestParticleDirections(t *testing.T) {
	v := Render()
	want := []Direction{DirectionNormal, DirectionReverse, DirectionNormal, DirectionReverse}
	wantDur := []time.Duration{8 * time.Second, 10 * time.Second, 12 * time.Second, 9 * time.Second}
	var got []Direction
	var gotDur []time.Duration
	var orbits []float64
	for _, l := range v.Layers {
		if l.Group == GroupParticle {
			got = append(got, l.Animations[0].Direction)
			gotDur = append(gotDur, l.Animations[0].Duration)
			orbits = append(orbits, l.Orbit)
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("particle directions = %v, want %v", got, want)
	}
	if !slices.Equal(gotDur, wantDur) {
		t.Errorf("particle durations = %v, want %v", gotDur, wantDur)
	}
	seen := map[float64]bool{}
	for _, o := range orbits {
		if seen[o] {
			t.Errorf("duplicate orbit radius %v", o)
		}
		seen[o] = true
	}
}

func TestStreamDelays(t *testing.T) {
	v := Render()
	want := []time.Duration{0, -time.Second, -2 * time.Second}
	var got []time.Duration
	for _, l := range v.Layers {
		if l.Group == GroupStream {
			got = append(got, l.Animations[0].Delay)
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("stream delays = %v, want %v", got, want)
	}
}

func TestRingPhaseOffset(t *testing.T) {
	v := Render()
	var delays []time.Duration
	for _, l := range v.Layers {
		if l.Group == GroupRing {
			delays = append(delays, l.Animations[0].Delay)
			if l.Animations[0].Duration != 6*time.Second {
				t.Errorf("%s duration = %v, want 6s", l.Name, l.Animations[0].Duration)
			}
		}
	}
	if !slices.Equal(delays, []time.Duration{0, -2 * time.Second}) {
		t.Errorf("ring delays = %v, want [0 -2s]", delays)
	}
}

func TestLayeredZOrder(t *testing.T) {
	want := []Group{
		GroupRing, GroupRing,
		GroupFrame, GroupSphere, GroupHighlight,
		GroupParticle, GroupParticle, GroupParticle, GroupParticle,
		GroupStream, GroupStream, GroupStream,
	}
	for _, size := range Sizes {
		if got := Render(WithSize(size)).Groups(); !slices.Equal(got, want) {
			t.Errorf("%v: z-order = %v, want %v", size, got, want)
		}
	}
}

func TestSmallerThanLarge(t *testing.T) {
	small := Render(WithSize(SizeSmall))
	large := Render(WithSize(SizeLarge))
	if small.Width >= large.Width {
		t.Errorf("small container %v not below large %v", small.Width, large.Width)
	}
	if !slices.Equal(small.Groups(), large.Groups()) {
		t.Error("small and large differ in layer order")
	}
}

func TestLayersStayInsideContainer(t *testing.T) {
	for _, size := range Sizes {
		v := Render(WithSize(size))
		c := v.Width / 2
		for _, l := range v.Layers {
			if l.Group != GroupParticle {
				continue
			}
			if l.Orbit+l.Radius > c+1e-9 {
				t.Errorf("%v: %s leaves the container (orbit %v, radius %v, half edge %v)", size, l.Name, l.Orbit, l.Radius, c)
			}
		}
	}
}

func TestScope(t *testing.T) {
	a := Render(WithClassName("a"))
	b := Render(WithClassName("b"))
	if a.Scope == b.Scope {
		t.Error("different class names share a scope")
	}
	if a.Scope != Render(WithClassName("a")).Scope {
		t.Error("scope is not stable across renders")
	}
	id := a.ScopeID()
	if !strings.HasPrefix(id, "orb-") || len(id) != len("orb-")+8 {
		t.Errorf("ScopeID() = %q, want orb- plus 8 hex digits", id)
	}
}

func TestScopeIDWithoutRender(t *testing.T) {
	for _, s := range Strategies() {
		for _, size := range Sizes {
			composed := s.Compose(size)
			composed.Strategy, composed.Size = s.Name(), size
			if got, want := composed.ScopeID(), Render(WithStrategy(s), WithSize(size)).ScopeID(); got != want {
				t.Errorf("%s/%v: ScopeID() = %q, want %q", s.Name(), size, got, want)
			}
		}
	}
	if id := Layered.Compose(SizeSmall).ScopeID(); !strings.HasPrefix(id, "orb-") {
		t.Errorf("bare composed ScopeID() = %q", id)
	}
}

func TestLayeredPaint(t *testing.T) {
	v := Render()
	byName := map[string]Layer{}
	for _, l := range v.Layers {
		byName[l.Name] = l
	}

	for name, alpha := range map[string]float64{"ring-1": 0.3, "ring-2": 0.2} {
		st := byName[name].Fill.Stops[0]
		if st.Color != colorCode || st.Opacity != alpha {
			t.Errorf("%s border = %+v, want %s at %v", name, st, colorCode, alpha)
		}
	}

	sphere := byName["sphere"].Fill
	if sphere.Kind != PaintLinear || sphere.Angle != 45 || len(sphere.Stops) != 5 {
		t.Errorf("sphere paint = %+v, want a five-stop 45deg linear gradient", sphere)
	}
	if sphere.Stops[0].Color != colorCode || sphere.Stops[4].Color != colorSlate800 {
		t.Errorf("sphere runs %s to %s", sphere.Stops[0].Color, sphere.Stops[4].Color)
	}

	hl := byName["highlight"]
	pulse := hl.Animations[0]
	if pulse.Duration != 3*time.Second {
		t.Errorf("highlight pulse duration = %v, want 3s", pulse.Duration)
	}
	if st := pulse.Sample(1500 * time.Millisecond); !approxEqual(st.Scale, 1.1) || !approxEqual(st.Opacity, 0.8) {
		t.Errorf("highlight at half cycle = %+v, want scale 1.1 opacity 0.8", st)
	}
	if st := pulse.Sample(0); !approxEqual(st.Opacity, 0.4) {
		t.Errorf("highlight at rest opacity = %v, want 0.4", st.Opacity)
	}

	for _, l := range v.Layers {
		if l.Group == GroupStream && (l.Fill.Stops[0].Color != colorCode || l.Fill.Stops[0].Opacity != 0.6) {
			t.Errorf("%s fill = %+v", l.Name, l.Fill.Stops[0])
		}
	}
	if GlowColor != colorCode {
		t.Errorf("GlowColor = %s, want %s", GlowColor, colorCode)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"", Layered},
		{"layered", Layered},
		{"Gradient", Gradient},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil {
			t.Errorf("ParseStrategy(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got.Name(), tt.want.Name())
		}
	}
	if _, err := ParseStrategy("css"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(css) error = %v, want ErrUnknownStrategy", err)
	}
}

func TestPlaceAtOrbit(t *testing.T) {
	l := Layer{
		X: 50, Y: 50, Radius: 2, Opacity: 1, Orbit: 10,
		Animations: []Animation{{
			Duration: 4 * time.Second,
			Easing:   Linear,
			Props:    PropRotate,
			Keyframes: []Keyframe{
				{Offset: 0, State: State{Rotate: 0, Scale: 1, Opacity: 1}},
				{Offset: 1, State: State{Rotate: 360, Scale: 1, Opacity: 1}},
			},
		}},
	}
	p := l.PlaceAt(time.Second)
	if !approxEqual(p.X, 50) || !approxEqual(p.Y, 60) {
		t.Errorf("PlaceAt(1s) = (%v, %v), want (50, 60)", p.X, p.Y)
	}
	if !p.Animated {
		t.Error("PlaceAt should report the layer as animated")
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
