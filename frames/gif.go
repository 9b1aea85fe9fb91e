package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// GIFOptions controls EncodeGIF.
type GIFOptions struct {
	// FPS sets the frame delay. Zero means DefaultFPS.
	FPS int

	// Background is composited under every frame, since GIF has no partial
	// transparency. Nil means white.
	Background color.Color
}

// EncodeGIF writes frames as a looping animated GIF.
func EncodeGIF(w io.Writer, frames []*image.RGBA, opts GIFOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	delay := max(2, 100/fps)

	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		b := f.Bounds()
		flat := image.NewRGBA(b)
		draw.Draw(flat, b, image.NewUniform(bg), image.Point{}, draw.Src)
		draw.Draw(flat, b, f, b.Min, draw.Over)

		p := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(p, b, flat, b.Min)

		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("frames: encode gif: %w", err)
	}
	return nil
}
