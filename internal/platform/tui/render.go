package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Palette holds the colors for one theme.
type Palette struct {
	Title     lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Good      lipgloss.Color
	Bad       lipgloss.Color
	Highlight lipgloss.Color
	Border    lipgloss.Color
}

var (
	lightPalette = Palette{
		Title:     lipgloss.Color("22"),
		Accent:    lipgloss.Color("208"),
		Text:      lipgloss.Color("235"),
		Muted:     lipgloss.Color("245"),
		Good:      lipgloss.Color("28"),
		Bad:       lipgloss.Color("160"),
		Highlight: lipgloss.Color("229"),
		Border:    lipgloss.Color("240"),
	}
	darkPalette = Palette{
		Title:     lipgloss.Color("229"),
		Accent:    lipgloss.Color("214"),
		Text:      lipgloss.Color("252"),
		Muted:     lipgloss.Color("241"),
		Good:      lipgloss.Color("10"),
		Bad:       lipgloss.Color("9"),
		Highlight: lipgloss.Color("57"),
		Border:    lipgloss.Color("240"),
	}
)

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Palette  Palette
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style
	Box      lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles returns the styles for the light or dark theme.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Styles{
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Title),
		Subtitle: lipgloss.NewStyle().Foreground(p.Accent),
		Text:     lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Good:     lipgloss.NewStyle().Bold(true).Foreground(p.Good),
		Bad:      lipgloss.NewStyle().Bold(true).Foreground(p.Bad),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Disabled: lipgloss.NewStyle().Strikethrough(true).Foreground(p.Muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// progressBar renders a fixed-width bar for a 0-100 percentage.
func progressBar(percent, width int) string {
	if width < 3 {
		width = 3
	}
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// truncate shortens s to at most width cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, ".")
}

// percentLabel renders "n/total pct%".
func percentLabel(n, total, percent int) string {
	return fmt.Sprintf("%d/%d %3d%%", n, total, percent)
}
