package tui

import "testing"

func TestCanvasSet(t *testing.T) {
	c := newCanvas(2, 2)

	// Top-left micro-pixel of the top-left cell is dot 1 (U+2801).
	c.set(0, 0)
	if got := c.rune(0, 0); got != '⠁' {
		t.Errorf("rune(0,0) = %q, want ⠁", got)
	}

	// Empty cells render as spaces.
	if got := c.rune(1, 1); got != ' ' {
		t.Errorf("rune(1,1) = %q, want space", got)
	}

	// Dots accumulate within a cell.
	c.set(1, 3)
	if got := c.rune(0, 0); got != rune(brailleBase+0x01+0x80) {
		t.Errorf("rune(0,0) = %q after two dots", got)
	}
}

func TestCanvasSetOutOfRange(t *testing.T) {
	c := newCanvas(2, 2)

	// Out-of-range micro-pixels are dropped, not wrapped.
	c.set(-1, 0)
	c.set(0, -1)
	c.set(4, 0)
	c.set(0, 8)

	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 2; cx++ {
			if got := c.rune(cx, cy); got != ' ' {
				t.Errorf("rune(%d,%d) = %q, want space", cx, cy, got)
			}
		}
	}
}

func TestCanvasLine(t *testing.T) {
	c := newCanvas(4, 2)

	// A horizontal line across the top row touches every cell it crosses.
	c.line(0, 0, 7, 0)
	for cx := 0; cx < 4; cx++ {
		if got := c.rune(cx, 0); got == ' ' {
			t.Errorf("cell (%d,0) empty after horizontal line", cx)
		}
	}

	// Endpoints are always set, including for steep lines.
	c = newCanvas(4, 2)
	c.line(0, 7, 7, 0)
	if c.rune(0, 1) == ' ' {
		t.Error("start endpoint not set")
	}
	if c.rune(3, 0) == ' ' {
		t.Error("end endpoint not set")
	}
}
