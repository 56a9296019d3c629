package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

// Model is the bubbletea model for the map preview.
type Model struct {
	width  int
	height int

	items mapfile.MapItems
	box   mapfile.Box

	zoom    float64
	offsetX int
	offsetY int

	showPoints bool
	showLines  bool
	helpOpen   bool

	status string
}

// New creates a preview model for the loaded items.
func New(items mapfile.MapItems, box mapfile.Box) Model {
	return Model{
		items:      items,
		box:        box,
		zoom:       1.0,
		showPoints: true,
		showLines:  true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// screenXY projects a map coordinate onto the micro-pixel grid for the
// current zoom and pan. The projection matches the SVG orientation: y
// grows downward.
func (m Model) screenXY(x, y float32, w, h int) (int, int, bool) {
	if m.box.W <= 0 && m.box.H <= 0 {
		// Degenerate box (single point / empty): center everything.
		return w, 2 * h, true
	}

	// Normalize into [0,1] preserving aspect via the larger extent.
	extent := m.box.W
	if m.box.H > extent {
		extent = m.box.H
	}
	nx := float64(x-m.box.X) / float64(extent)
	ny := float64(y-m.box.Y) / float64(extent)

	// Apply zoom about the viewport center.
	nx = 0.5 + (nx-0.5)*m.zoom
	ny = 0.5 + (ny-0.5)*m.zoom

	mx := int(nx*float64(2*w-1)) + m.offsetX
	my := int(ny*float64(4*h-1)) + m.offsetY
	return mx, my, true
}
