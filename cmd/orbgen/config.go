package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/orb"
)

// Output formats.
const (
	formatPNG  = "png"
	formatGIF  = "gif"
	formatSVG  = "svg"
	formatHTML = "html"
)

var errConfig = errors.New("orbgen: invalid asset")

// Asset describes one exported file.
type Asset struct {
	Strategy string   `toml:"strategy"`
	Size     orb.Size `toml:"size"`
	Class    string   `toml:"class"`

	// Format defaults to the extension of Out.
	Format string `toml:"format"`
	Out    string `toml:"out"`

	// Time is the instant rendered into a still image.
	Time string `toml:"time"`

	// Duration, FPS and Supersample control animated GIF output.
	Duration    string `toml:"duration"`
	FPS         int    `toml:"fps"`
	Supersample int    `toml:"supersample"`

	// Logo exports the logo (mark plus wordmark) instead of a bare orb.
	Logo     bool   `toml:"logo"`
	Wordmark string `toml:"wordmark"`
}

// Batch is the contents of a -config file.
//
//	dir = "assets"
//
//	[[asset]]
//	strategy = "layered"
//	size = "large"
//	out = "orb-large.gif"
//	duration = "6s"
type Batch struct {
	// Dir is prepended to relative output paths.
	Dir    string  `toml:"dir"`
	Assets []Asset `toml:"asset"`
}

// LoadBatch reads and validates a batch file.
func LoadBatch(path string) (*Batch, error) {
	var b Batch
	if _, err := toml.DecodeFile(path, &b); err != nil {
		return nil, fmt.Errorf("orbgen: decode %s: %w", path, err)
	}
	return b.normalize(filepath.Dir(path))
}

// ParseBatch decodes a batch from TOML text. Relative paths stay relative
// to the working directory.
func ParseBatch(data string) (*Batch, error) {
	var b Batch
	if _, err := toml.Decode(data, &b); err != nil {
		return nil, fmt.Errorf("orbgen: decode batch: %w", err)
	}
	return b.normalize("")
}

func (b *Batch) normalize(base string) (*Batch, error) {
	if len(b.Assets) == 0 {
		return nil, fmt.Errorf("%w: batch lists no assets", errConfig)
	}
	dir := b.Dir
	if base != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	for i := range b.Assets {
		a := &b.Assets[i]
		if a.Out != "" && !filepath.IsAbs(a.Out) {
			a.Out = filepath.Join(dir, a.Out)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("asset %d: %w", i+1, err)
		}
	}
	return b, nil
}

// Validate fills in the format and checks the asset can be exported.
func (a *Asset) Validate() error {
	if a.Out == "" {
		return fmt.Errorf("%w: no output path", errConfig)
	}
	if a.Format == "" {
		a.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(a.Out)), ".")
	}
	switch a.Format {
	case formatPNG, formatGIF, formatSVG, formatHTML:
	case "htm":
		a.Format = formatHTML
	default:
		return fmt.Errorf("%w: unsupported format %q", errConfig, a.Format)
	}
	if !a.Size.Valid() {
		return fmt.Errorf("%w: %w", errConfig, orb.ErrUnknownSize)
	}
	if _, err := orb.ParseStrategy(a.Strategy); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if a.Logo && a.Format != formatPNG {
		return fmt.Errorf("%w: logo exports only as png", errConfig)
	}
	if a.FPS < 0 || a.Supersample < 0 {
		return fmt.Errorf("%w: negative fps or supersample", errConfig)
	}
	if _, err := a.instant(); err != nil {
		return err
	}
	if _, err := a.duration(); err != nil {
		return err
	}
	return nil
}

func (a *Asset) instant() (time.Duration, error) {
	return parseDuration("time", a.Time)
}

func (a *Asset) duration() (time.Duration, error) {
	return parseDuration("duration", a.Duration)
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errConfig, field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s is negative", errConfig, field)
	}
	return d, nil
}

// Visual composes the orb the asset describes.
func (a *Asset) Visual() (*orb.Visual, error) {
	s, err := orb.ParseStrategy(a.Strategy)
	if err != nil {
		return nil, err
	}
	return orb.Render(
		orb.WithStrategy(s),
		orb.WithSize(a.Size),
		orb.WithClassName(a.Class),
	), nil
}
