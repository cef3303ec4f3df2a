package layout

import "testing"

// TestFrameCenterlineOffset 验证：左、上两边的描边中心线距画布边缘恰为 outer + stroke/2。
func TestFrameCenterlineOffset(t *testing.T) {
	for outer := 0; outer <= 6; outer++ {
		for stroke := 0; stroke <= 7; stroke++ {
			g := Geometry{
				Width:   200,
				Height:  80,
				Margins: BorderModel{Outer: outer}.Margins(),
				Stroke:  stroke,
			}
			f := g.FrameRect()
			want := outer + stroke/2
			if f.X != want || f.Y != want {
				t.Fatalf("outer=%d stroke=%d: frame origin (%d,%d), want %d", outer, stroke, f.X, f.Y, want)
			}
			wantW := int(float64(200-2*outer) - 1.5*float64(stroke))
			if f.Width != wantW {
				t.Fatalf("outer=%d stroke=%d: width %d, want %d", outer, stroke, f.Width, wantW)
			}
		}
	}
}

func TestFrameRectOddStrokeTruncates(t *testing.T) {
	g := Geometry{Width: 100, Height: 50, Stroke: 3}
	f := g.FrameRect()
	// 3/2 = 1；100 - 4.5 = 95.5 → 95
	if f != (Rect{X: 1, Y: 1, Width: 95, Height: 45}) {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestMarginsAddOuterToEverySide(t *testing.T) {
	perSide := BorderModel{Mode: BorderPerSide, Outer: 2, Left: 1, Right: 3, Top: 5, Bottom: 7}
	if got := perSide.Margins(); got != (Insets{Left: 3, Top: 7, Right: 5, Bottom: 9}) {
		t.Fatalf("per-side margins wrong: %+v", got)
	}
	symmetric := perSide
	symmetric.Mode = BorderSymmetric
	if got := symmetric.Margins(); got != (Insets{Left: 2, Top: 2, Right: 2, Bottom: 2}) {
		t.Fatalf("symmetric margins should ignore per-side extras: %+v", got)
	}
}

func TestPerSideFrameUsesIndependentMargins(t *testing.T) {
	g := Geometry{
		Width:   300,
		Height:  100,
		Margins: BorderModel{Mode: BorderPerSide, Outer: 1, Left: 9, Top: 4}.Margins(),
		Stroke:  2,
		Inner:   3,
	}
	f := g.FrameRect()
	// left = 10, top = 5, right = bottom = 1
	if f.X != 11 || f.Y != 6 {
		t.Fatalf("unexpected frame origin %+v", f)
	}
	if f.Width != 300-10-1-3 || f.Height != 100-5-1-3 {
		t.Fatalf("unexpected frame size %+v", f)
	}
	r := g.Region()
	if r != (Rect{X: 15, Y: 10, Width: 300 - 11 - 10, Height: 100 - 6 - 10}) {
		t.Fatalf("unexpected region %+v", r)
	}
}

func TestColumnGeometrySwapsAxes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 300
	cfg.Border = BorderModel{Mode: BorderPerSide, Top: 8, Right: 1, Bottom: 2, Left: 3}
	cfg.Stroke = 0
	cfg.Text.Layout = LayoutColumn

	g := cfg.Geometry()
	if g.Width != 300 || g.Height != 100 {
		t.Fatalf("expected swapped logical canvas, got %dx%d", g.Width, g.Height)
	}
	// 逻辑左 = 物理上，逻辑上 = 物理右，逻辑右 = 物理下，逻辑下 = 物理左
	if g.Margins != (Insets{Left: 8, Top: 1, Right: 2, Bottom: 3}) {
		t.Fatalf("unexpected logical margins %+v", g.Margins)
	}
}
