package canvasrenderer

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/ByLCY/boxlabel/layout"
)

// Rotate 将合成好的画布顺时针旋转 0/90/180/270 度。
// 0 度直接返回原图；其余角度以 Src 算子（替换而非混合）一次性贴到新画布上，
// 90/270 度时新画布宽高互换。
func Rotate(src *image.RGBA, rotation layout.Rotation) (*image.RGBA, error) {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	minX, minY := float64(b.Min.X), float64(b.Min.Y)

	// s2d 把源坐标映射到目标坐标：dst = (m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5])。
	var s2d f64.Aff3
	var size image.Point
	switch rotation {
	case layout.Rotate0:
		return src, nil
	case layout.Rotate90:
		s2d = f64.Aff3{0, -1, h + minY, 1, 0, -minX}
		size = image.Pt(b.Dy(), b.Dx())
	case layout.Rotate180:
		s2d = f64.Aff3{-1, 0, w + minX, 0, -1, h + minY}
		size = image.Pt(b.Dx(), b.Dy())
	case layout.Rotate270:
		s2d = f64.Aff3{0, 1, -minY, -1, 0, w + minX}
		size = image.Pt(b.Dy(), b.Dx())
	default:
		return nil, fmt.Errorf("无效的旋转角度 %d°", int(rotation))
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.NearestNeighbor.Transform(dst, s2d, src, b, xdraw.Src, nil)
	return dst, nil
}
