package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

var (
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleKeys   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleMap    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

const helpText = "+/- zoom · arrows pan · p points · L lines · r reset · q quit"

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	mapH := m.height - 1
	if mapH < 1 {
		mapH = 1
	}

	var b strings.Builder
	b.WriteString(styleMap.Render(m.renderMap(m.width, mapH)))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// renderMap draws all visible items onto a braille canvas.
func (m Model) renderMap(w, h int) string {
	c := newCanvas(w, h)

	for _, item := range m.items {
		switch it := item.(type) {
		case mapfile.PointItem:
			if !m.showPoints {
				continue
			}
			if x, y, ok := m.screenXY(it.Point.X, it.Point.Y, w, h); ok {
				// A 2x2 micro blob reads as a dot at cell resolution.
				c.set(x, y)
				c.set(x+1, y)
				c.set(x, y+1)
				c.set(x+1, y+1)
			}
		case mapfile.LineItem:
			if !m.showLines {
				continue
			}
			x0, y0, ok0 := m.screenXY(it.From.X, it.From.Y, w, h)
			x1, y1, ok1 := m.screenXY(it.To.X, it.To.Y, w, h)
			if ok0 && ok1 {
				c.line(x0, y0, x1, y1)
			}
		}
	}

	rows := make([]string, h)
	for cy := 0; cy < h; cy++ {
		var row strings.Builder
		for cx := 0; cx < w; cx++ {
			row.WriteRune(c.rune(cx, cy))
		}
		rows[cy] = row.String()
	}
	return strings.Join(rows, "\n")
}

func (m Model) statusLine() string {
	if m.helpOpen {
		return styleKeys.Render(helpText)
	}
	status := fmt.Sprintf("%d points · %d lines · zoom %.2fx · ? help",
		m.items.Points(), m.items.Lines(), m.zoom)
	if m.status != "" {
		status = m.status + " · " + status
	}
	return styleStatus.Render(status)
}
