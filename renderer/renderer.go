package renderer

import (
	"image"

	"github.com/ByLCY/boxlabel/layout"
)

// Renderer 将布局结果合成为最终图像。
// Compose 返回旋转后的栅格图像；Render 在此基础上编码为 PNG 字节。
type Renderer interface {
	Compose(result *layout.Result) (*image.RGBA, error)
	Render(result *layout.Result) ([]byte, error)
}
