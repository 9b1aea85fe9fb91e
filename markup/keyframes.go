package markup

import (
	"fmt"
	"strings"

	"github.com/gogpu/orb"
)

// keyframes collects the @keyframes rules of one visual.
//
// Rules are named <scope>-<animation>. Layers sharing an animation share its
// rule unless their own opacity or geometry changes the frames, in which
// case the layer name is appended.
type keyframes struct {
	scope string
	scale float64
	seen  map[string]string
	rules []string
}

func newKeyframes(scope string, scale float64) *keyframes {
	return &keyframes{scope: scope, scale: scale, seen: make(map[string]string)}
}

// name registers the frames of a on l and returns the rule name to use.
func (k *keyframes) name(l *orb.Layer, a *orb.Animation) string {
	body := k.frames(l, a)
	for _, n := range []string{k.scope + "-" + a.Name, k.scope + "-" + a.Name + "-" + l.Name} {
		prev, ok := k.seen[n]
		if ok && prev == body {
			return n
		}
		if !ok {
			k.seen[n] = body
			k.rules = append(k.rules, execute(keyframesRule, map[string]any{
				"name":   n,
				"frames": body,
			}))
			return n
		}
	}
	// Layer names are unique within a visual, so the second name is free.
	panic(fmt.Sprintf("markup: duplicate layer %q", l.Name))
}

// frames renders the keyframe blocks of a as applied to l.
func (k *keyframes) frames(l *orb.Layer, a *orb.Animation) string {
	var b strings.Builder
	for _, kf := range a.Keyframes {
		b.WriteString(pct(kf.Offset))
		b.WriteByte('{')
		b.WriteString(k.declarations(l, a.Props, kf.State))
		b.WriteByte('}')
	}
	return b.String()
}

// declarations returns the properties of st selected by props.
//
// Translation, rotation and scale use the individual CSS properties, so
// several animations on one element move it together instead of
// overriding each other's transform. Orbits need rotate-then-translate and
// use transform.
func (k *keyframes) declarations(l *orb.Layer, props orb.Prop, st orb.State) string {
	var decls []string
	if props&orb.PropTranslate != 0 {
		decls = append(decls, fmt.Sprintf("translate:%s %s",
			px(st.TranslateX*k.scale), px(st.TranslateY*k.scale)))
	}
	if props&orb.PropRotate != 0 {
		if l.Orbit > 0 {
			decls = append(decls, fmt.Sprintf("transform:rotate(%sdeg) translateX(%s)",
				num(st.Rotate), rem(l.Orbit*k.scale)))
		} else {
			decls = append(decls, fmt.Sprintf("rotate:%sdeg", num(st.Rotate)))
		}
	}
	if props&orb.PropScale != 0 {
		decls = append(decls, "scale:"+num(st.Scale))
	}
	if props&orb.PropOpacity != 0 {
		decls = append(decls, "opacity:"+num(l.Opacity*st.Opacity))
	}
	if props&orb.PropGlow != 0 {
		r := l.Radius * k.scale
		c := rgba(orb.Stop{Color: orb.GlowColor, Opacity: st.Glow})
		decls = append(decls, fmt.Sprintf("box-shadow:0 0 %s %s", px(2*orb.HaloSigma(r, st.Glow)), c))
	}
	return strings.Join(decls, ";")
}
