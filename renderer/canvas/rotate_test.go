package canvasrenderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ByLCY/boxlabel/layout"
)

// markedImage 返回一张每个像素颜色都不同的图，便于追踪像素去向。
func markedImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x * y), A: 255})
		}
	}
	return img
}

func TestRotatePixelMapping(t *testing.T) {
	const w, h = 7, 4
	src := markedImage(w, h)

	cases := []struct {
		rotation layout.Rotation
		size     image.Point
		dst      func(x, y int) (int, int)
	}{
		{layout.Rotate90, image.Pt(h, w), func(x, y int) (int, int) { return h - 1 - y, x }},
		{layout.Rotate180, image.Pt(w, h), func(x, y int) (int, int) { return w - 1 - x, h - 1 - y }},
		{layout.Rotate270, image.Pt(h, w), func(x, y int) (int, int) { return y, w - 1 - x }},
	}
	for _, tc := range cases {
		out, err := Rotate(src, tc.rotation)
		if err != nil {
			t.Fatalf("rotate %d: %v", tc.rotation, err)
		}
		if got := out.Bounds().Size(); got != tc.size {
			t.Fatalf("rotate %d: size %v, want %v", tc.rotation, got, tc.size)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx, dy := tc.dst(x, y)
				if got, want := out.RGBAAt(dx, dy), src.RGBAAt(x, y); got != want {
					t.Fatalf("rotate %d: src (%d,%d) -> dst (%d,%d) = %v, want %v", tc.rotation, x, y, dx, dy, got, want)
				}
			}
		}
	}
}

func TestRotateZeroReturnsSource(t *testing.T) {
	src := markedImage(3, 2)
	out, err := Rotate(src, layout.Rotate0)
	if err != nil {
		t.Fatalf("rotate 0: %v", err)
	}
	if out != src {
		t.Fatalf("rotate 0 should return the source image")
	}
}

func TestRotateFourQuarterTurnsIsIdentity(t *testing.T) {
	src := markedImage(11, 5)
	img := src
	for i := 0; i < 4; i++ {
		var err error
		img, err = Rotate(img, layout.Rotate90)
		if err != nil {
			t.Fatalf("rotate step %d: %v", i, err)
		}
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", img.Bounds(), src.Bounds())
	}
	if !bytes.Equal(img.Pix, src.Pix) {
		t.Fatalf("four quarter turns should reproduce the source pixels")
	}
}

func TestRotateRejectsOddAngle(t *testing.T) {
	if _, err := Rotate(markedImage(2, 2), layout.Rotation(45)); err == nil {
		t.Fatalf("expected error for 45°")
	}
}
