package chart

import (
	"reflect"
	"testing"

	"github.com/wqcharts/bizchart/pkg/geom"
)

// layoutThree lays out rows of cross size 10, 20, 15 with a separator of 2
// in a 100x12 viewport: frames span y=[0,10), [12,32), [34,49).
func layoutThree(t *testing.T) (*View, *recordingAdapter) {
	t.Helper()
	a := newRecordingAdapter(
		rangeRow{fixedRow{width: 10, length: -1}},
		rangeRow{fixedRow{width: 20, length: -1}},
		rangeRow{fixedRow{width: 15, length: -1}},
	)
	v := NewView()
	v.SetAdapter(a)
	v.SetSeparatorWidth(2)
	v.Layout(geom.Size{Width: 100, Height: 12})
	a.resetCalls()
	return v, a
}

func TestDrawVisibilityGating(t *testing.T) {
	v, a := layoutThree(t)

	v.Draw(&recordingContext{}, geom.Rect{Width: 100, Height: 12})

	want := []string{"will", "distribute:0", "draw:0", "did"}
	if !reflect.DeepEqual(a.events, want) {
		t.Errorf("events = %v, want %v", a.events, want)
	}

	// Off-screen rows still receive frames.
	frames := []geom.Rect{
		{X: 0, Y: 0, Width: 100, Height: 10},
		{X: 0, Y: 12, Width: 100, Height: 20},
		{X: 0, Y: 34, Width: 100, Height: 15},
	}
	for i, want := range frames {
		got, ok := v.RowFrame(i)
		if !ok {
			t.Fatalf("RowFrame(%d) not set", i)
		}
		if got != want {
			t.Errorf("RowFrame(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestDrawScrolledToMiddle(t *testing.T) {
	v, a := layoutThree(t)

	v.Draw(&recordingContext{}, geom.Rect{Y: 20, Width: 100, Height: 12})

	want := []string{"will", "distribute:1", "draw:1", "did"}
	if !reflect.DeepEqual(a.events, want) {
		t.Errorf("events = %v, want %v", a.events, want)
	}
	if f := a.drawnFrames[1]; f != (geom.Rect{X: 0, Y: 12, Width: 100, Height: 20}) {
		t.Errorf("frame seen by adapter = %+v", f)
	}
}

func TestDrawBounceCompensation(t *testing.T) {
	tests := []struct {
		name     string
		offsetY  float64
		wantRows []string
		wantMinY float64
	}{
		{name: "at rest", offsetY: 0, wantRows: []string{"draw:0"}, wantMinY: 0},
		{name: "within range", offsetY: 30, wantRows: []string{"draw:1", "draw:2"}, wantMinY: 30},
		{name: "pulled past top", offsetY: -8, wantRows: []string{"draw:0"}, wantMinY: 0},
		{name: "pushed past bottom", offsetY: 60, wantRows: []string{"draw:2"}, wantMinY: 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, a := layoutThree(t)
			bounds := geom.Rect{Y: tt.offsetY, Width: 100, Height: 12}

			if got := v.VisibleBounds(bounds).MinY(); got != tt.wantMinY {
				t.Errorf("VisibleBounds().MinY() = %v, want %v", got, tt.wantMinY)
			}

			v.Draw(&recordingContext{}, bounds)
			var drawn []string
			for _, e := range a.events {
				if len(e) > 5 && e[:5] == "draw:" {
					drawn = append(drawn, e)
				}
			}
			if !reflect.DeepEqual(drawn, tt.wantRows) {
				t.Errorf("drawn = %v, want %v", drawn, tt.wantRows)
			}
		})
	}
}

func TestBounceOffset(t *testing.T) {
	tests := []struct {
		name                      string
		offset, content, viewport float64
		want                      float64
	}{
		{name: "rest at start", offset: 0, content: 100, viewport: 40, want: 0},
		{name: "rest at end", offset: 60, content: 100, viewport: 40, want: 0},
		{name: "overscroll start", offset: -15, content: 100, viewport: 40, want: 15},
		{name: "overscroll end", offset: 70, content: 100, viewport: 40, want: -10},
		{name: "content smaller than viewport", offset: 5, content: 30, viewport: 40, want: -5},
		{name: "content smaller at rest", offset: 0, content: 30, viewport: 40, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BounceOffset(tt.offset, tt.content, tt.viewport); got != tt.want {
				t.Errorf("BounceOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVisibleBoundsAtRestEqualsPaddedViewport(t *testing.T) {
	v := NewView()
	v.SetAdapter(minimalAdapter{rows: []Row{fixedRow{width: 200, length: 300}}})
	pad := geom.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	v.SetPadding(pad)
	v.Layout(geom.Size{Width: 100, Height: 50})

	for _, off := range []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 206, Y: 154}} {
		bounds := geom.Rect{X: off.X, Y: off.Y, Width: 100, Height: 50}
		if got, want := v.VisibleBounds(bounds), bounds.Inset(pad); got != want {
			t.Errorf("VisibleBounds(%+v) = %+v, want %+v", off, got, want)
		}
	}
}

func TestDrawDistributionBounds(t *testing.T) {
	a := newRecordingAdapter(rangeRow{fixedRow{width: 10, length: 300}})
	v := NewView()
	v.SetAdapter(a)
	v.SetPadding(geom.Insets{Left: 4, Right: 6})
	v.Layout(geom.Size{Width: 100, Height: 10})

	if got := v.ContentSize().Width; got != 310 {
		t.Fatalf("content width = %v, want 310", got)
	}

	v.Draw(&recordingContext{}, geom.Rect{X: 50, Width: 100, Height: 10})

	path, ok := a.paths[0].(rangePath)
	if !ok {
		t.Fatalf("path = %#v, want rangePath", a.paths[0])
	}
	if path.lower != 50 || path.upper != 140 {
		t.Errorf("distribution bounds = [%v, %v], want [50, 140]", path.lower, path.upper)
	}

	frame, _ := v.RowFrame(0)
	want := geom.Rect{X: 54, Y: 0, Width: 90, Height: 10}
	if frame != want {
		t.Errorf("RowFrame(0) = %+v, want %+v", frame, want)
	}
}

func TestDrawShortRowKeepsMeasuredLength(t *testing.T) {
	a := newRecordingAdapter(fixedRow{width: 10, length: 30})
	v := NewView()
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 100, Height: 10})
	v.Draw(&recordingContext{}, geom.Rect{Width: 100, Height: 10})

	if f, _ := v.RowFrame(0); f.Width != 30 {
		t.Errorf("frame width = %v, want 30", f.Width)
	}
}

func TestDrawSkipsDistributionForPlainRows(t *testing.T) {
	a := newRecordingAdapter(fixedRow{width: 10, length: -1})
	v := NewView()
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 100, Height: 10})
	a.resetCalls()

	v.Draw(&recordingContext{}, geom.Rect{Width: 100, Height: 10})

	want := []string{"will", "draw:0", "did"}
	if !reflect.DeepEqual(a.events, want) {
		t.Errorf("events = %v, want %v", a.events, want)
	}
}

func TestDrawWithMinimalAdapter(t *testing.T) {
	v := NewView()
	v.SetAdapter(minimalAdapter{rows: []Row{rangeRow{fixedRow{width: 10, length: -1}}}})
	v.Layout(geom.Size{Width: 100, Height: 10})

	ctx := &recordingContext{}
	v.Draw(ctx, geom.Rect{Width: 100, Height: 10})

	if _, ok := v.RowFrame(0); !ok {
		t.Error("RowFrame(0) should be set without optional hooks")
	}
	if len(ctx.ops) != 0 {
		t.Errorf("context ops = %v, want none", ctx.ops)
	}
}

func TestDrawWillDidWithZeroRows(t *testing.T) {
	a := newRecordingAdapter()
	v := NewView()
	v.SetAdapter(a)
	v.Layout(geom.Size{Width: 10, Height: 10})
	a.resetCalls()

	v.Draw(&recordingContext{}, geom.Rect{Width: 10, Height: 10})

	want := []string{"will", "did"}
	if !reflect.DeepEqual(a.events, want) {
		t.Errorf("events = %v, want %v", a.events, want)
	}
}

func TestDrawWithoutAdapter(t *testing.T) {
	v := NewView()
	v.SetClipRect(geom.Rect{Width: 5, Height: 5})
	v.Layout(geom.Size{Width: 500, Height: 500})

	ctx := &recordingContext{}
	v.Draw(ctx, geom.Rect{Width: 500, Height: 500})

	if len(ctx.ops) != 0 {
		t.Errorf("context ops = %v, want none", ctx.ops)
	}
	if !v.ContentSize().IsZero() {
		t.Errorf("ContentSize() = %+v, want zero", v.ContentSize())
	}
}

func TestDrawClipIsScopedToPass(t *testing.T) {
	v, _ := layoutThree(t)
	v.SetClipRect(geom.Rect{X: 1, Y: 2, Width: 3, Height: 4})

	ctx := &recordingContext{}
	v.Draw(ctx, geom.Rect{Width: 100, Height: 12})

	want := []string{"clip:1,2,3,4", "reset"}
	if !reflect.DeepEqual(ctx.ops, want) {
		t.Errorf("ops = %v, want %v", ctx.ops, want)
	}

	v.ClearClipRect()
	ctx.ops = nil
	v.Draw(ctx, geom.Rect{Width: 100, Height: 12})
	if len(ctx.ops) != 0 {
		t.Errorf("ops after ClearClipRect = %v, want none", ctx.ops)
	}
}

func TestDrawToleratesSkippedLayout(t *testing.T) {
	v, a := layoutThree(t)
	a.rows = append(a.rows, fixedRow{width: 5, length: -1})

	// No invalidation: the stale row list is drawn as is.
	v.Layout(geom.Size{Width: 100, Height: 12})
	v.Draw(&recordingContext{}, geom.Rect{Width: 100, Height: 100})

	if n := len(v.Rows()); n != 3 {
		t.Errorf("len(Rows()) = %d, want 3", n)
	}
	if _, ok := v.RowFrame(3); ok {
		t.Error("row 3 should not exist until the next layout")
	}
}

func TestDrawClearsNeedsRedraw(t *testing.T) {
	v, _ := layoutThree(t)
	if !v.NeedsRedraw() {
		t.Fatal("layout should request a redraw")
	}
	v.Draw(&recordingContext{}, geom.Rect{Width: 100, Height: 12})
	if v.NeedsRedraw() {
		t.Error("Draw should clear NeedsRedraw")
	}
}

func TestDrawNilContext(t *testing.T) {
	v, a := layoutThree(t)
	v.Draw(nil, geom.Rect{Width: 100, Height: 12})
	if len(a.events) != 0 {
		t.Errorf("events = %v, want none", a.events)
	}
}
