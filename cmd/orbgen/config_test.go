package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/orb"
)

func TestParseBatch(t *testing.T) {
	b, err := ParseBatch(`
dir = "out"

[[asset]]
size = "large"
out = "orb-large.gif"
duration = "6s"
fps = 12

[[asset]]
strategy = "gradient"
size = "sm"
class = "hero"
out = "orb-small.svg"

[[asset]]
logo = true
wordmark = "orbit"
out = "logo.png"
time = "1.5s"
`)
	if err != nil {
		t.Fatalf("ParseBatch: %v", err)
	}
	if len(b.Assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(b.Assets))
	}

	gif := b.Assets[0]
	if gif.Size != orb.SizeLarge || gif.Format != formatGIF || gif.FPS != 12 {
		t.Errorf("asset 1 = %+v", gif)
	}
	if want := filepath.Join("out", "orb-large.gif"); gif.Out != want {
		t.Errorf("asset 1 out = %q, want %q", gif.Out, want)
	}
	if d, _ := gif.duration(); d.Seconds() != 6 {
		t.Errorf("asset 1 duration = %v", d)
	}

	svg := b.Assets[1]
	if svg.Size != orb.SizeSmall || svg.Format != formatSVG || svg.Class != "hero" {
		t.Errorf("asset 2 = %+v", svg)
	}
	v, err := svg.Visual()
	if err != nil {
		t.Fatalf("Visual: %v", err)
	}
	if v.Strategy != "gradient" || v.ClassName != "hero" {
		t.Errorf("visual = %s/%s", v.Strategy, v.ClassName)
	}

	logo := b.Assets[2]
	if !logo.Logo || logo.Size != orb.SizeDefault {
		t.Errorf("asset 3 = %+v", logo)
	}
}

func TestParseBatchErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", `dir = "x"`},
		{"no out", "[[asset]]\nsize = \"large\""},
		{"format", "[[asset]]\nout = \"orb.bmp\""},
		{"strategy", "[[asset]]\nstrategy = \"spiral\"\nout = \"orb.png\""},
		{"logo gif", "[[asset]]\nlogo = true\nout = \"logo.gif\""},
		{"duration", "[[asset]]\nout = \"orb.gif\"\nduration = \"soon\""},
		{"negative time", "[[asset]]\nout = \"orb.png\"\ntime = \"-1s\""},
		{"negative fps", "[[asset]]\nout = \"orb.gif\"\nfps = -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(tt.data)
			if !errors.Is(err, errConfig) {
				t.Errorf("ParseBatch() error = %v, want errConfig", err)
			}
		})
	}
}

func TestParseBatchUnknownSize(t *testing.T) {
	_, err := ParseBatch("[[asset]]\nsize = \"huge\"\nout = \"orb.png\"")
	if !errors.Is(err, orb.ErrUnknownSize) {
		t.Errorf("ParseBatch() error = %v, want ErrUnknownSize", err)
	}
}

func TestLoadBatchRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assets.toml")
	data := "dir = \"gen\"\n[[asset]]\nout = \"orb.htm\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBatch(path)
	if err != nil {
		t.Fatalf("LoadBatch: %v", err)
	}
	a := b.Assets[0]
	if want := filepath.Join(dir, "gen", "orb.htm"); a.Out != want {
		t.Errorf("out = %q, want %q", a.Out, want)
	}
	if a.Format != formatHTML {
		t.Errorf("format = %q, want html", a.Format)
	}
}
