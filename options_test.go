package orb

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.size != SizeDefault {
		t.Errorf("size = %v, want default", o.size)
	}
	if o.className != "" {
		t.Errorf("className = %q, want empty", o.className)
	}
	if o.strategy != Layered {
		t.Errorf("strategy = %s, want layered", o.strategy.Name())
	}
}

func TestOptionsApply(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{
			name: "size",
			opts: []Option{WithSize(SizeLarge)},
			check: func(t *testing.T, o options) {
				if o.size != SizeLarge {
					t.Errorf("size = %v", o.size)
				}
			},
		},
		{
			name: "class",
			opts: []Option{WithClassName("hero")},
			check: func(t *testing.T, o options) {
				if o.className != "hero" {
					t.Errorf("className = %q", o.className)
				}
			},
		},
		{
			name: "strategy",
			opts: []Option{WithStrategy(Gradient)},
			check: func(t *testing.T, o options) {
				if o.strategy != Gradient {
					t.Errorf("strategy = %s", o.strategy.Name())
				}
			},
		},
		{
			name: "last wins",
			opts: []Option{WithSize(SizeSmall), WithSize(SizeLarge)},
			check: func(t *testing.T, o options) {
				if o.size != SizeLarge {
					t.Errorf("size = %v", o.size)
				}
			},
		},
		{
			name: "nil strategy ignored",
			opts: []Option{WithStrategy(Gradient), WithStrategy(nil)},
			check: func(t *testing.T, o options) {
				if o.strategy != Gradient {
					t.Errorf("strategy = %v", o.strategy)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}

func TestRenderPanicsOnUnknownSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Render with an out-of-range size did not panic")
		}
	}()
	Render(WithSize(Size(42)))
}
