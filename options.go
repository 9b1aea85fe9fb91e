package orb

// Option configures a Render call.
//
// Example:
//
//	v := orb.Render(orb.WithSize(orb.SizeLarge), orb.WithClassName("hero-orb"))
type Option func(*options)

// options holds the inputs of one render.
type options struct {
	size      Size
	className string
	strategy  Strategy
}

// defaultOptions returns the defaults: default size, no class name, the
// layered strategy.
func defaultOptions() options {
	return options{
		size:     SizeDefault,
		strategy: Layered,
	}
}

// WithSize selects the size class.
func WithSize(s Size) Option {
	return func(o *options) {
		o.size = s
	}
}

// WithClassName appends an extra style class to the rendered unit.
// The string is opaque: it is neither parsed nor validated.
func WithClassName(className string) Option {
	return func(o *options) {
		o.className = className
	}
}

// WithStrategy selects the rendering strategy. A nil strategy keeps the
// default.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		if s != nil {
			o.strategy = s
		}
	}
}
