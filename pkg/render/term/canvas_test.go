package term

import (
	"strings"
	"testing"

	"github.com/wqcharts/bizchart/pkg/geom"
)

func lines(c *Canvas) []string {
	out := strings.Split(strings.TrimRight(c.View(), "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimRight(l, " ")
	}
	return out
}

func TestCanvasSize(t *testing.T) {
	c := New(geom.Rect{X: 3, Y: 4, Width: 5.4, Height: 2.6})
	if c.Width() != 5 || c.Height() != 3 {
		t.Errorf("size = %dx%d, want 5x3", c.Width(), c.Height())
	}
}

func TestCanvasFillTranslatesByOffset(t *testing.T) {
	c := New(geom.Rect{X: 10, Y: 20, Width: 4, Height: 3})
	c.FillRect(geom.Rect{X: 11, Y: 21, Width: 2, Height: 1}, "")

	got := lines(c)
	want := []string{"", " ██", ""}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestCanvasFillClipped(t *testing.T) {
	c := New(geom.Rect{Width: 4, Height: 2})
	c.ClipToRect(geom.Rect{X: 0, Y: 0, Width: 2, Height: 1})
	c.FillRect(geom.Rect{Width: 4, Height: 2}, "")
	c.ResetClip()

	got := lines(c)
	if got[0] != "██" || got[1] != "" {
		t.Errorf("View() = %q", got)
	}
}

func TestCanvasFillOutsideGrid(t *testing.T) {
	c := New(geom.Rect{Width: 3, Height: 1})
	c.FillRect(geom.Rect{X: -5, Y: 0, Width: 6, Height: 1}, "")
	c.FillRect(geom.Rect{X: 10, Y: 0, Width: 6, Height: 1}, "")

	if got := lines(c)[0]; got != "█" {
		t.Errorf("View() = %q, want %q", got, "█")
	}
}

func TestCanvasText(t *testing.T) {
	c := New(geom.Rect{X: 2, Width: 6, Height: 1})
	c.ClipToRect(geom.Rect{X: 2, Width: 4, Height: 1})
	c.Text(geom.Point{X: 3, Y: 0}, "hello", "36")

	if got := lines(c)[0]; got != " hel" {
		t.Errorf("View() = %q, want %q", got, " hel")
	}
}

func TestCanvasClear(t *testing.T) {
	c := New(geom.Rect{Width: 2, Height: 1})
	c.ClipToRect(geom.Rect{Width: 1, Height: 1})
	c.Clear()
	c.FillRect(geom.Rect{Width: 2, Height: 1}, "")

	if got := lines(c)[0]; got != "██" {
		t.Errorf("Clear() should drop the clip, got %q", got)
	}
}
