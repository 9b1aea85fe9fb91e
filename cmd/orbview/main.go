// Command orbview previews a status orb in the terminal.
//
// One ticker drives the loop: every tick samples the orb's timing model at
// the elapsed time and draws the frame with half-block cells. Press q, Esc or
// Ctrl-C to quit.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/orb"
	"github.com/gogpu/orb/frames"
)

// upperHalf shows the top pixel as foreground, the bottom as background.
const upperHalf = '▀'

type viewer struct {
	screen tcell.Screen
	visual *orb.Visual
	frames *frames.Cache
	bg     colorful.Color
	start  time.Time
}

func main() {
	var (
		strategy = flag.String("strategy", "layered", "layered or gradient")
		size     = flag.String("size", "small", "small, default or large")
		fps      = flag.Int("fps", 20, "frames per second")
		bg       = flag.String("bg", "#0f172a", "background color")
	)
	flag.Parse()

	s, err := orb.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	sz, err := orb.ParseSize(*size)
	if err != nil {
		log.Fatal(err)
	}
	background, err := colorful.Hex(*bg)
	if err != nil {
		log.Fatalf("Invalid background %q: %v", *bg, err)
	}
	if *fps <= 0 {
		*fps = frames.DefaultFPS
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	v := orb.Render(orb.WithStrategy(s), orb.WithSize(sz))
	w := &viewer{
		screen: screen,
		visual: v,
		frames: frames.NewCache(v, *fps, 0),
		bg:     background,
		start:  time.Now(),
	}

	err = w.run(context.Background(), *fps)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// run draws frames until the user quits or ctx is done.
func (w *viewer) run(ctx context.Context, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	if err := w.draw(0); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				w.screen.Sync()
			}
		case now := <-ticker.C:
			if err := w.draw(now.Sub(w.start)); err != nil {
				return err
			}
		}
	}
}

// draw shows the frame at elapsed time t centered on the screen.
func (w *viewer) draw(t time.Duration) error {
	img, err := w.frames.At(t)
	if err != nil {
		return err
	}
	cols, rows := w.screen.Size()
	cells := halfBlocks(img, w.bg, cols, rows-1)

	base := tcell.StyleDefault.Background(tcellColor(w.bg))
	w.screen.SetStyle(base)
	w.screen.Clear()

	top := (rows - 1 - len(cells)) / 2
	for r, row := range cells {
		left := (cols - len(row)) / 2
		for c, cl := range row {
			style := tcell.StyleDefault.Foreground(tcellColor(cl.top)).Background(tcellColor(cl.bottom))
			w.screen.SetContent(left+c, top+r, upperHalf, nil, style)
		}
	}

	status := w.visual.Strategy + " " + w.visual.Size.String() + "  q quits"
	for i, ch := range status {
		w.screen.SetContent(i, rows-1, ch, nil, base.Foreground(tcell.ColorGray))
	}
	w.screen.Show()
	return nil
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
