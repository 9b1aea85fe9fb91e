package frames

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"
	"time"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/orb"
)

// Defaults for Options.
const (
	DefaultFPS = 24

	// MaxLoop caps the default loop length. The layered orb only repeats
	// exactly after six minutes, far too long for an asset.
	MaxLoop = 12 * time.Second
)

// ErrNoFrames is returned by encoders handed an empty sequence.
var ErrNoFrames = errors.New("frames: no frames")

// Options controls sequence rendering.
type Options struct {
	// FPS is the sampling rate. Zero means DefaultFPS.
	FPS int

	// Duration is the length of the sequence. Zero means the visual's
	// period capped at MaxLoop; static visuals yield a single frame.
	Duration time.Duration

	// Supersample renders each frame at this multiple of the output size
	// and scales it down. Values below 2 disable supersampling.
	Supersample int

	// Workers bounds parallel rendering. Zero means GOMAXPROCS.
	Workers int
}

func (o Options) withDefaults(v *orb.Visual) Options {
	if o.FPS <= 0 {
		o.FPS = DefaultFPS
	}
	if o.Duration <= 0 && v.Animated() {
		o.Duration = min(v.Period(), MaxLoop)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Count returns the number of frames in the sequence.
func (o Options) Count() int {
	if o.Duration <= 0 {
		return 1
	}
	return max(1, int(math.Round(o.Duration.Seconds()*float64(o.FPS))))
}

// At returns the timestamp of frame i.
func (o Options) At(i int) time.Duration {
	return time.Duration(i) * time.Second / time.Duration(o.FPS)
}

// Render renders one loop of v. Frames are rendered concurrently; the
// visual is immutable and each frame is a pure function of its timestamp.
// Render stops early and returns ctx.Err() when ctx is cancelled.
func Render(ctx context.Context, v *orb.Visual, opts Options) ([]*image.RGBA, error) {
	opts = opts.withDefaults(v)
	n := opts.Count()
	out := make([]*image.RGBA, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Frame(v, opts.At(i), opts.Supersample)
			if err != nil {
				return fmt.Errorf("frames: frame %d: %w", i, err)
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	orb.Logger().Debug("frames: rendered",
		"strategy", v.Strategy,
		"size", v.Size.String(),
		"frames", n,
		"fps", opts.FPS)
	return out, nil
}

// Frame renders v at t. With supersample >= 2 the frame is drawn at that
// multiple of its size and reduced with a Catmull-Rom filter.
func Frame(v *orb.Visual, t time.Duration, supersample int) (*image.RGBA, error) {
	if supersample < 2 {
		return v.Frame(t)
	}

	w, h := pixels(v.Width), pixels(v.Height)
	bw, bh := w*supersample, h*supersample
	pm := gg.NewPixmap(bw, bh)
	dc := gg.NewContext(bw, bh, gg.WithPixmap(pm))
	defer dc.Close()

	if err := v.DrawScaled(dc, 0, 0, float64(supersample), t); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), pm.ToImage(), image.Rect(0, 0, bw, bh), xdraw.Src, nil)
	return dst, nil
}

func pixels(v float64) int {
	return max(1, int(math.Ceil(v)))
}
