package main

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gogpu/orb"
	"github.com/gogpu/orb/frames"
	"github.com/gogpu/orb/markup"
	"github.com/gogpu/orb/vector"
)

// export renders a validated asset to its output file.
func export(ctx context.Context, a Asset) error {
	if dir := filepath.Dir(a.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if a.Logo {
		return exportLogo(a)
	}

	v, err := a.Visual()
	if err != nil {
		return err
	}

	switch a.Format {
	case formatPNG:
		t, _ := a.instant()
		img, err := frames.Frame(v, t, a.Supersample)
		if err != nil {
			return err
		}
		return savePNG(a.Out, img)
	case formatGIF:
		d, _ := a.duration()
		seq, err := frames.Render(ctx, v, frames.Options{
			FPS:         a.FPS,
			Duration:    d,
			Supersample: a.Supersample,
		})
		if err != nil {
			return err
		}
		return writeFile(a.Out, func(w io.Writer) error {
			return frames.EncodeGIF(w, seq, frames.GIFOptions{FPS: a.FPS})
		})
	case formatSVG:
		return writeFile(a.Out, func(w io.Writer) error {
			return vector.Write(w, v)
		})
	case formatHTML:
		return writeFile(a.Out, func(w io.Writer) error {
			return markup.Page(w, "orb "+v.Strategy+" "+v.Size.String(), v)
		})
	}
	return fmt.Errorf("%w: unsupported format %q", errConfig, a.Format)
}

func exportLogo(a Asset) error {
	var opts []orb.LogoOption
	if a.Wordmark != "" {
		opts = append(opts, orb.WithWordmark(a.Wordmark))
	}
	if a.Strategy != "" {
		s, err := orb.ParseStrategy(a.Strategy)
		if err != nil {
			return err
		}
		opts = append(opts, orb.WithLogoStrategy(s))
	}
	t, _ := a.instant()
	img, err := orb.NewLogo(opts...).Frame(t)
	if err != nil {
		return err
	}
	return savePNG(a.Out, img)
}

func savePNG(path string, img image.Image) error {
	return gg.FromImage(img).SavePNG(path)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
