// Command orbgen exports status orbs as PNG, animated GIF, SVG or HTML.
//
// Single asset:
//
//	orbgen -size large -format gif -duration 6s -out orb.gif
//
// Batch, from a TOML file listing [[asset]] tables:
//
//	orbgen -config assets.toml
//
// The navigation tree bundled with the package is printed with -nav.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/orb"
	"github.com/gogpu/orb/nav"
)

func main() {
	var (
		strategy    = flag.String("strategy", "layered", "layered or gradient")
		size        = flag.String("size", "default", "small, default or large")
		class       = flag.String("class", "", "extra class name for markup output")
		format      = flag.String("format", "", "png, gif, svg or html (default: from -out)")
		out         = flag.String("out", "orb.png", "output file")
		at          = flag.Duration("t", 0, "instant rendered into png output")
		fps         = flag.Int("fps", 0, "gif frame rate")
		duration    = flag.Duration("duration", 0, "gif length (default: one loop, capped)")
		supersample = flag.Int("supersample", 2, "raster supersampling factor")
		logo        = flag.Bool("logo", false, "export the logo instead of a bare orb")
		wordmark    = flag.String("wordmark", "", "logo wordmark")
		config      = flag.String("config", "", "TOML batch file")
		showNav     = flag.Bool("nav", false, "print the navigation tree and exit")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	orb.SetLogger(logger)

	if *showNav {
		if err := printNav(os.Stdout, nav.Default()); err != nil {
			log.Fatalf("Failed to print navigation: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var assets []Asset
	if *config != "" {
		b, err := LoadBatch(*config)
		if err != nil {
			log.Fatal(err)
		}
		assets = b.Assets
	} else {
		sz, err := orb.ParseSize(*size)
		if err != nil {
			log.Fatal(err)
		}
		a := Asset{
			Strategy:    *strategy,
			Size:        sz,
			Class:       *class,
			Format:      *format,
			Out:         *out,
			FPS:         *fps,
			Supersample: *supersample,
			Logo:        *logo,
			Wordmark:    *wordmark,
		}
		if *at > 0 {
			a.Time = at.String()
		}
		if *duration > 0 {
			a.Duration = duration.String()
		}
		if err := a.Validate(); err != nil {
			log.Fatal(err)
		}
		assets = []Asset{a}
	}

	for _, a := range assets {
		if err := export(ctx, a); err != nil {
			log.Fatalf("Failed to export %s: %v", a.Out, err)
		}
		logger.Info("orbgen: wrote", "out", a.Out, "format", a.Format, "logo", a.Logo)
	}
}
