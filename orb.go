package orb

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Strategy produces the layers of an orb for a size class.
//
// Two strategies ship with the package: Layered (animated stacked boxes)
// and Gradient (static vector composition). Both compose the same concept;
// neither is more authoritative than the other.
type Strategy interface {
	// Name identifies the strategy in configuration and markup.
	Name() string

	// Compose returns the geometry of the orb for size. The returned
	// visual's identity fields are filled in by Render.
	Compose(size Size) *Visual
}

// Built-in strategies.
var (
	Layered  Strategy = layeredStack{}
	Gradient Strategy = gradientStack{}
)

// Strategies returns the built-in strategies.
func Strategies() []Strategy {
	return []Strategy{Layered, Gradient}
}

// ParseStrategy returns the built-in strategy with the given name.
// The empty string selects Layered.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Layered, nil
	}
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Visual is one composed orb: an immutable, z-ordered stack of layers plus
// the size it renders at. It emits nothing and observes nothing; motion is a
// pure function of elapsed time (see Layer.StateAt).
type Visual struct {
	Strategy  string
	Size      Size
	ClassName string

	// Scope is a name-based UUID derived from strategy, size and class name.
	// Exporters prefix animation names with it so that orbs with different
	// inputs never share keyframe rules.
	Scope string

	// Width and Height are the output size in pixels.
	Width, Height float64

	// ViewBox is the edge of the square coordinate space the layers are
	// expressed in. Output pixels per unit is Width / ViewBox.
	ViewBox float64

	Layers []Layer
}

// Scale returns output pixels per layer unit.
func (v *Visual) Scale() float64 {
	if v.ViewBox == 0 {
		return 1
	}
	return v.Width / v.ViewBox
}

// Count returns how many layers belong to g.
func (v *Visual) Count(g Group) int {
	n := 0
	for i := range v.Layers {
		if v.Layers[i].Group == g {
			n++
		}
	}
	return n
}

// Groups returns the group of every layer in z-order.
func (v *Visual) Groups() []Group {
	groups := make([]Group, len(v.Layers))
	for i := range v.Layers {
		groups[i] = v.Layers[i].Group
	}
	return groups
}

// Animated reports whether any layer moves.
func (v *Visual) Animated() bool {
	for i := range v.Layers {
		if v.Layers[i].Animated() {
			return true
		}
	}
	return false
}

// Period returns the loop length of the whole composition, zero if static.
func (v *Visual) Period() time.Duration {
	return Period(v.Layers)
}

// ScopeID returns a short CSS-safe identifier derived from Scope. Visuals
// that did not come from Render have no Scope; theirs is derived from the
// identity fields on the fly.
func (v *Visual) ScopeID() string {
	s := v.Scope
	if s == "" {
		s = scope(v.Strategy, v.Size, v.ClassName)
	}
	return "orb-" + strings.ReplaceAll(s, "-", "")[:8]
}

// scopeNamespace roots the name-based scope UUIDs.
var scopeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gogpu/orb"))

func scope(strategy string, size Size, className string) string {
	return uuid.NewSHA1(scopeNamespace, []byte(strategy+"|"+size.String()+"|"+className)).String()
}

// Render composes an orb. Without options it renders the default size with
// the layered strategy and no extra class.
//
// Render is referentially transparent: equal options yield deeply equal
// visuals. It panics if the size is outside the enumeration.
func Render(opts ...Option) *Visual {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.size.mustValid()

	v := o.strategy.Compose(o.size)
	v.Strategy = o.strategy.Name()
	v.Size = o.size
	v.ClassName = o.className
	v.Scope = scope(v.Strategy, v.Size, v.ClassName)

	Logger().Debug("orb: composed",
		"strategy", v.Strategy,
		"size", v.Size.String(),
		"layers", len(v.Layers),
		"width", v.Width,
		"period", v.Period())
	return v
}
