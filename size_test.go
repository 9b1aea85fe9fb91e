package orb

import (
	"errors"
	"testing"
)

func TestResolveDimensionsOrdering(t *testing.T) {
	for _, s := range Sizes {
		t.Run(s.String(), func(t *testing.T) {
			d := ResolveDimensions(s)
			px := func(l Length) float64 { return l.Pixels(RootFontSize) }
			if !(px(d.Container) > px(d.RingOuter) &&
				px(d.RingOuter) > px(d.RingInner) &&
				px(d.RingInner) > px(d.Sphere) &&
				px(d.Sphere) > 0) {
				t.Errorf("dimensions not strictly decreasing: %+v", d)
			}
		})
	}
}

func TestResolveDimensionsValues(t *testing.T) {
	tests := []struct {
		size                        Size
		container, outer, inner, sp string
	}{
		{SizeSmall, "4rem", "3.75rem", "3.5rem", "2.5rem"},
		{SizeDefault, "120px", "110px", "100px", "5rem"},
		{SizeLarge, "9rem", "8rem", "7rem", "6rem"},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			d := ResolveDimensions(tt.size)
			got := []string{d.Container.String(), d.RingOuter.String(), d.RingInner.String(), d.Sphere.String()}
			want := []string{tt.container, tt.outer, tt.inner, tt.sp}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("dimensions = %v, want %v", got, want)
					break
				}
			}
		})
	}
}

func TestResolveScalePositive(t *testing.T) {
	for _, s := range Sizes {
		if got := ResolveScale(s); got <= 0 {
			t.Errorf("ResolveScale(%v) = %v, want > 0", s, got)
		}
	}
}

func TestSizesAscending(t *testing.T) {
	for i := 1; i < len(Sizes); i++ {
		prev, cur := Sizes[i-1], Sizes[i]
		if ResolveDimensions(prev).Container.Pixels(RootFontSize) >= ResolveDimensions(cur).Container.Pixels(RootFontSize) {
			t.Errorf("container of %v not smaller than %v", prev, cur)
		}
		if ResolveScale(prev) >= ResolveScale(cur) {
			t.Errorf("scale of %v not smaller than %v", prev, cur)
		}
	}
}

func TestResolvePanicsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"dimensions", func() { ResolveDimensions(Size(9)) }},
		{"scale", func() { ResolveScale(Size(9)) }},
		{"render", func() { Render(WithSize(Size(9))) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrUnknownSize) {
					t.Errorf("recovered %v, want ErrUnknownSize", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"", SizeDefault, false},
		{"default", SizeDefault, false},
		{"small", SizeSmall, false},
		{" Large ", SizeLarge, false},
		{"sm", SizeSmall, false},
		{"lg", SizeLarge, false},
		{"huge", SizeDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownSize) {
			t.Errorf("ParseSize(%q) error = %v, want ErrUnknownSize", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSizeTextRoundTrip(t *testing.T) {
	for _, s := range Sizes {
		b, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var got Size
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, b, got)
		}
	}
	if _, err := Size(7).MarshalText(); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("MarshalText(Size(7)) error = %v, want ErrUnknownSize", err)
	}
}

func TestLengthString(t *testing.T) {
	tests := []struct {
		l    Length
		want string
	}{
		{Rem(5), "5rem"},
		{Rem(4.5), "4.5rem"},
		{Px(8), "8px"},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.l, got, tt.want)
		}
	}
	if got := Rem(2).Pixels(16); got != 32 {
		t.Errorf("Rem(2).Pixels(16) = %v, want 32", got)
	}
	if got := Px(7).Pixels(16); got != 7 {
		t.Errorf("Px(7).Pixels(16) = %v, want 7", got)
	}
}
