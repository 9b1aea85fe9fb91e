package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/orb/nav"
)

var (
	navGroupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818cf8")).
			Bold(true)

	navTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0e7ff")).
			PaddingLeft(2)

	navHrefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280")).
			Italic(true)
)

// printNav writes the navigation tree, one group heading followed by its
// links with their targets aligned.
func printNav(w io.Writer, t nav.Tree) error {
	width := 0
	for _, g := range t {
		for _, l := range g.Links {
			width = max(width, lipgloss.Width(l.Title))
		}
	}

	var b strings.Builder
	for i, g := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(navGroupStyle.Render(g.Title))
		b.WriteByte('\n')
		for _, l := range g.Links {
			pad := strings.Repeat(" ", width-lipgloss.Width(l.Title))
			b.WriteString(navTitleStyle.Render(l.Title+pad) + "  " + navHrefStyle.Render(l.Href))
			b.WriteByte('\n')
		}
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}
