package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

func testModel() Model {
	items := mapfile.MapItems{
		mapfile.LineItem{From: mapfile.Point{X: 0, Y: 0}, To: mapfile.Point{X: 10, Y: 5}},
		mapfile.PointItem{Point: mapfile.Point{X: 5, Y: 2}, Label: "mid"},
	}
	m := New(items, mapfile.Bounds(items))
	m.width = 40
	m.height = 10
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{}
}

func TestScreenXYCorners(t *testing.T) {
	m := testModel()

	// The bounding box origin maps to the top-left micro-pixel.
	x, y, ok := m.screenXY(0, 0, 40, 10)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != 0 || y != 0 {
		t.Errorf("origin = (%d,%d), want (0,0)", x, y)
	}

	// The far corner stays on the grid. Aspect is preserved via the larger
	// extent, so y lands short of the bottom for a wide box.
	x, y, ok = m.screenXY(10, 5, 40, 10)
	if !ok {
		t.Fatal("far corner not visible")
	}
	if x != 2*40-1 {
		t.Errorf("far x = %d, want %d", x, 2*40-1)
	}
	if y < 0 || y >= 4*10 {
		t.Errorf("far y = %d out of grid", y)
	}
}

func TestScreenXYDegenerateBox(t *testing.T) {
	items := mapfile.MapItems{mapfile.PointItem{Point: mapfile.Point{X: 3, Y: 4}}}
	m := New(items, mapfile.Bounds(items))

	// A single point has a zero-extent box and is drawn centered.
	x, y, ok := m.screenXY(3, 4, 40, 10)
	if !ok {
		t.Fatal("point not visible")
	}
	if x != 40 || y != 20 {
		t.Errorf("center = (%d,%d), want (40,20)", x, y)
	}
}

func TestUpdateQuit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m := testModel()
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("key %q did not quit", key)
		}
	}
}

func TestUpdateZoomAndReset(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("+"))
	m = next.(Model)
	if m.zoom <= 1.0 {
		t.Errorf("zoom = %g after zoom in, want > 1", m.zoom)
	}

	next, _ = m.Update(keyMsg("left"))
	m = next.(Model)
	if m.offsetX == 0 {
		t.Error("pan left did not move the offset")
	}

	next, _ = m.Update(keyMsg("r"))
	m = next.(Model)
	if m.zoom != 1.0 || m.offsetX != 0 || m.offsetY != 0 {
		t.Errorf("reset left zoom=%g offset=(%d,%d)", m.zoom, m.offsetX, m.offsetY)
	}
}

func TestUpdateToggles(t *testing.T) {
	m := testModel()

	next, _ := m.Update(keyMsg("p"))
	m = next.(Model)
	if m.showPoints {
		t.Error("p did not toggle points off")
	}

	next, _ = m.Update(keyMsg("L"))
	m = next.(Model)
	if m.showLines {
		t.Error("L did not toggle lines off")
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
}
