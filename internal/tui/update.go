package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// panStep is the pan distance in micro-pixels per keypress.
const panStep = 4

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.zoom *= 1.25
		case "-", "_":
			if m.zoom > 0.1 {
				m.zoom /= 1.25
			}
		case "left", "h":
			m.offsetX += panStep
		case "right", "l":
			m.offsetX -= panStep
		case "up", "k":
			m.offsetY += panStep
		case "down", "j":
			m.offsetY -= panStep
		case "r":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = ""
		case "p":
			m.showPoints = !m.showPoints
		case "L":
			m.showLines = !m.showLines
		case "?":
			m.helpOpen = !m.helpOpen
		}
	}
	return m, nil
}
