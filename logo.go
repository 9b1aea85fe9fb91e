package orb

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultWordmark is the text shown next to the mark.
const DefaultWordmark = "orb"

// logoSize is the fixed size class of the mark inside the logo.
const logoSize = SizeSmall

// Logo is the brand lockup: a small orb followed by a wordmark on one row.
// It has no logic of its own beyond laying the two out.
type Logo struct {
	Mark     *Visual
	Wordmark string

	// FontSize is the wordmark size in points; Gap separates mark and text.
	FontSize float64
	Gap      float64
}

// LogoOption configures NewLogo.
type LogoOption func(*logoOptions)

type logoOptions struct {
	strategy Strategy
	wordmark string
}

// WithLogoStrategy selects the strategy of the embedded mark.
func WithLogoStrategy(s Strategy) LogoOption {
	return func(o *logoOptions) {
		if s != nil {
			o.strategy = s
		}
	}
}

// WithWordmark replaces the wordmark text.
func WithWordmark(s string) LogoOption {
	return func(o *logoOptions) {
		o.wordmark = s
	}
}

// NewLogo builds the lockup around one orb of the fixed logo size.
func NewLogo(opts ...LogoOption) *Logo {
	o := logoOptions{strategy: Layered, wordmark: DefaultWordmark}
	for _, opt := range opts {
		opt(&o)
	}
	mark := Render(WithSize(logoSize), WithStrategy(o.strategy), WithClassName("logo-mark"))
	return &Logo{
		Mark:     mark,
		Wordmark: o.wordmark,
		FontSize: mark.Height * 0.45,
		Gap:      mark.Width * 0.25,
	}
}

// wordmarkFont parses the embedded Go Bold font once.
var wordmarkFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gobold.TTF)
})

func (l *Logo) face() (text.Face, error) {
	src, err := wordmarkFont()
	if err != nil {
		return nil, fmt.Errorf("orb: wordmark font: %w", err)
	}
	return src.Face(l.FontSize), nil
}

// Size returns the pixel size of the lockup.
func (l *Logo) Size() (w, h float64, err error) {
	face, err := l.face()
	if err != nil {
		return 0, 0, err
	}
	tw, th := text.Measure(l.Wordmark, face)
	return l.Mark.Width + l.Gap + tw, max(l.Mark.Height, th), nil
}

// Draw renders the lockup at elapsed time t with its top-left corner at
// (x, y).
func (l *Logo) Draw(dc *gg.Context, x, y float64, t time.Duration) error {
	face, err := l.face()
	if err != nil {
		return err
	}
	_, h, err := l.Size()
	if err != nil {
		return err
	}
	if err := l.Mark.Draw(dc, x, y+(h-l.Mark.Height)/2, t); err != nil {
		return err
	}
	if l.Wordmark == "" {
		return nil
	}
	dc.SetFont(face)
	dc.SetHexColor(colorBlue800)
	dc.DrawStringAnchored(l.Wordmark, x+l.Mark.Width+l.Gap, y+h/2, 0, 0.35)
	return nil
}

// Frame renders the lockup at elapsed time t onto a new transparent image.
func (l *Logo) Frame(t time.Duration) (*image.RGBA, error) {
	w, h, err := l.Size()
	if err != nil {
		return nil, err
	}
	pw, ph := pixelSize(w), pixelSize(h)
	pm := gg.NewPixmap(pw, ph)
	dc := gg.NewContext(pw, ph, gg.WithPixmap(pm))
	defer dc.Close()

	if err := l.Draw(dc, 0, 0, t); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("orb: flush: %w", err)
	}
	return pm.ToImage(), nil
}
