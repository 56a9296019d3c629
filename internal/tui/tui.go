package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

// Run starts the interactive preview and blocks until the user quits.
func Run(ctx context.Context, items mapfile.MapItems, box mapfile.Box) error {
	p := tea.NewProgram(New(items, box), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
