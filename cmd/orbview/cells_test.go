package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/orb"
)

func TestHalfBlocksSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 48, 48))
	bg := colorful.Color{}

	tests := []struct {
		name       string
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"fits", 100, 40, 48, 24},
		{"narrow", 24, 40, 24, 12},
		{"short", 100, 12, 24, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := halfBlocks(img, bg, tt.cols, tt.rows)
			if len(cells) != tt.wantH || len(cells[0]) != tt.wantW {
				t.Errorf("got %dx%d cells, want %dx%d", len(cells[0]), len(cells), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestHalfBlocksEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if cells := halfBlocks(img, colorful.Color{}, 0, 10); cells != nil {
		t.Error("zero columns produced cells")
	}
}

func TestOver(t *testing.T) {
	bg := colorful.Color{R: 0, G: 0, B: 1}
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(2, 0, color.NRGBA{R: 255, A: 128})

	if got := over(img, 0, 0, bg); got != bg {
		t.Errorf("transparent pixel = %v, want background", got)
	}
	if got := over(img, 1, 0, bg); !got.AlmostEqualRgb(colorful.Color{R: 1}) {
		t.Errorf("opaque pixel = %v, want red", got)
	}
	half := over(img, 2, 0, bg)
	if half.R < 0.45 || half.R > 0.55 || half.B < 0.45 || half.B > 0.55 {
		t.Errorf("half pixel = %v, want an even mix", half)
	}
}

func TestHalfBlocksOrb(t *testing.T) {
	img, err := orb.Render(orb.WithSize(orb.SizeSmall)).Frame(0)
	if err != nil {
		t.Fatal(err)
	}
	bg := colorful.Color{}
	cells := halfBlocks(img, bg, 80, 40)
	center := cells[len(cells)/2][len(cells[0])/2]
	if center.top == bg && center.bottom == bg {
		t.Error("center of the orb is empty")
	}
	corner := cells[0][0]
	if corner.top != bg {
		t.Errorf("corner = %v, want background", corner.top)
	}
}
