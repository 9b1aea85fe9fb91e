package orb

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the coarse size class of an orb.
//
// The zero value is SizeDefault. Size is a closed enumeration: every resolver
// handles all three values, and an out-of-range value (only reachable through
// an explicit conversion) is a programming error that panics.
type Size uint8

// Size values.
const (
	SizeDefault Size = iota
	SizeSmall
	SizeLarge
)

// Sizes lists every size class in ascending order of rendered size.
var Sizes = []Size{SizeSmall, SizeDefault, SizeLarge}

// String returns the size name as used in configuration.
func (s Size) String() string {
	switch s {
	case SizeDefault:
		return "default"
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "Size(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is one of the declared size classes.
func (s Size) Valid() bool {
	return s <= SizeLarge
}

// ParseSize converts a size name into a Size.
// The empty string maps to SizeDefault.
func ParseSize(name string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "md":
		return SizeDefault, nil
	case "small", "sm":
		return SizeSmall, nil
	case "large", "lg":
		return SizeLarge, nil
	}
	return SizeDefault, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so sizes can be read
// directly from TOML and YAML documents.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := ParseSize(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// mustValid panics when s is outside the enumeration.
func (s Size) mustValid() {
	if !s.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownSize, uint8(s)))
	}
}

// Unit is a CSS length unit.
type Unit uint8

// Length units.
const (
	UnitRem Unit = iota
	UnitPx
)

// RootFontSize is the pixel size of one rem when a layout length is
// rasterized.
const RootFontSize = 16.0

// Length is a CSS-like length.
type Length struct {
	Value float64
	Unit  Unit
}

// Rem returns a length in rem units.
func Rem(v float64) Length { return Length{Value: v, Unit: UnitRem} }

// Px returns a length in pixels.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPx} }

// Pixels converts the length to pixels using rootPx as the size of one rem.
func (l Length) Pixels(rootPx float64) float64 {
	if l.Unit == UnitRem {
		return l.Value * rootPx
	}
	return l.Value
}

// String formats the length as a CSS value, e.g. "4.5rem".
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == UnitRem {
		return v + "rem"
	}
	return v + "px"
}

// DimensionSet holds the box sizes of the layered strategy.
// Container > RingOuter > RingInner > Sphere for every size class.
type DimensionSet struct {
	Container Length
	RingOuter Length
	RingInner Length
	Sphere    Length
}

// dimensionTable is indexed by Size. The small outer ring is 3.75rem so
// that it stays inside the 4rem container.
var dimensionTable = [...]DimensionSet{
	SizeDefault: {Container: Px(120), RingOuter: Px(110), RingInner: Px(100), Sphere: Rem(5)},
	SizeSmall:   {Container: Rem(4), RingOuter: Rem(3.75), RingInner: Rem(3.5), Sphere: Rem(2.5)},
	SizeLarge:   {Container: Rem(9), RingOuter: Rem(8), RingInner: Rem(7), Sphere: Rem(6)},
}

// scaleTable is indexed by Size and holds the rendered edge length, in
// pixels, of the gradient strategy's 400x400 view box.
var scaleTable = [...]float64{
	SizeDefault: 120,
	SizeSmall:   64,
	SizeLarge:   200,
}

// ResolveDimensions returns the layered strategy's dimensions for s.
// It panics if s is not a declared size class.
func ResolveDimensions(s Size) DimensionSet {
	s.mustValid()
	return dimensionTable[s]
}

// ResolveScale returns the output edge length in pixels of the gradient
// strategy for s. It panics if s is not a declared size class.
func ResolveScale(s Size) float64 {
	s.mustValid()
	return scaleTable[s]
}
