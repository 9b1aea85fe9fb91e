// Package orb renders the branded "status orb": a small decorative widget
// composed of layered animated shapes (rings, a gradient sphere, orbiting
// particles, glow) that signals an AI-active aesthetic.
//
// # Quick Start
//
//	import "github.com/gogpu/orb"
//
//	v := orb.Render(orb.WithSize(orb.SizeLarge))
//	img, err := v.Frame(1500 * time.Millisecond)
//
// # Strategies
//
// Two strategies compose the same concept:
//   - [Layered]: stacked round boxes, each looping on its own keyframe
//     animation (rings pulse, sphere floats and glows, frame spins,
//     particles orbit, data streams cascade).
//   - [Gradient]: a static vector composition in a fixed 400x400 view box
//     (atmosphere glow, gradient body, gloss, neural glow, energy nodes),
//     scaled uniformly to the requested size.
//
// Both are selected through [WithStrategy]; [Layered] is the default.
//
// # Sizes
//
// [Size] is a closed enumeration. [ResolveDimensions] and [ResolveScale]
// map it to concrete geometry; there is no free-form numeric size.
//
// # Timing
//
// Every animation is a parameter table ([Animation]): duration, delay,
// direction, easing and keyframes. [Layer.StateAt] evaluates those tables as
// a pure function of elapsed time, so any single render loop (a GIF encoder,
// a terminal preview) can drive the orb without timers of its own. The same
// tables are emitted as scoped CSS by package markup.
//
// # Output
//
//   - [Visual.Frame] and [Visual.Draw]: raster via gg.
//   - package frames: frame sequences and animated GIF.
//   - package vector: SVG for static visuals.
//   - package markup: HTML and scoped CSS keyframes.
package orb
