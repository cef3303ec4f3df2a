package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/boxlabel/fonts"
	"github.com/ByLCY/boxlabel/layout"
	"github.com/ByLCY/boxlabel/renderer"
)

// 画布以 mm 为单位，按 1 mm = 1 px 栅格化，布局中的像素坐标可直接使用。
var resolution = canvas.DPMM(1.0)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	// injected resources
	fontRes map[string]Resource // by lower-case family name

	fontMu         sync.Mutex
	fontFamilies   map[string]*canvas.FontFamily
	fallbackFamily *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	Fonts map[string]Resource // font files registered under a family name
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer that only knows built-in and system fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontRes:      map[string]Resource{},
		fontFamilies: map[string]*canvas.FontFamily{},
	}
	for name, res := range opts.Fonts {
		if name == "" || (len(res.Bytes) == 0 && res.Path == "") {
			continue
		}
		r.fontRes[familyKey(name)] = res
	}
	return r
}

// Render 合成标签并编码为 PNG。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	img, err := r.Compose(result)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// Compose 按 背景 → 边框 → 文本 → 旋转 的顺序合成标签。
func (r *Renderer) Compose(result *layout.Result) (*image.RGBA, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if result.Width <= 0 || result.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %dx%d", result.Width, result.Height)
	}

	c := canvas.New(float64(result.Width), float64(result.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	drawBackground(ctx, result.Width, result.Height)
	if result.Frame != nil {
		drawFrame(ctx, *result.Frame)
	}
	if err := r.drawLines(ctx, result); err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, resolution, canvas.DefaultColorSpace)
	return Rotate(img, result.Rotation)
}

// MeasureLines 实现 layout.Typesetter 接口：只创建一个字体面并用于所有行。
func (r *Renderer) MeasureLines(family string, sizePx int, lines []string) ([]layout.TextLine, error) {
	face, err := r.fontFace(family, sizePx)
	if err != nil {
		return nil, err
	}
	lineHeight := face.Metrics().LineHeight
	out := make([]layout.TextLine, len(lines))
	for i, line := range lines {
		out[i] = layout.TextLine{
			Content: line,
			Width:   face.TextWidth(line),
			Height:  lineHeight,
		}
	}
	return out, nil
}

// drawBackground 用整像素矩形铺满画布，边缘不会产生半透明像素。
func drawBackground(ctx *canvas.Context, width, height int) {
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.DrawPath(0, 0, canvas.Rectangle(float64(width), float64(height)))
}

// drawFrame 以圆角矩形描边绘制边框，不填充。
func drawFrame(ctx *canvas.Context, f layout.Frame) {
	if f.Stroke <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(float64(f.Stroke))
	ctx.DrawPath(float64(f.X), float64(f.Y), canvas.RoundedRectangle(float64(f.Width), float64(f.Height), float64(f.Radius)))
}

func (r *Renderer) drawLines(ctx *canvas.Context, result *layout.Result) error {
	if len(result.Lines) == 0 {
		return nil
	}
	face, err := r.fontFace(result.Font.Family, result.Font.SizePx)
	if err != nil {
		return err
	}
	// 行的 Y 为行框顶部，基线位于顶部之下一个上升部的距离。
	ascent := face.Metrics().Ascent
	for _, line := range result.Lines {
		text := canvas.NewTextLine(face, line.Content, canvas.Left)
		ctx.DrawText(float64(line.X), float64(line.Y)+ascent, text)
	}
	return nil
}

func (r *Renderer) fontFace(family string, sizePx int) (*canvas.FontFace, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("字号必须为正数: %d", sizePx)
	}
	fam, err := r.ensureFontFamily(family)
	if err != nil {
		return nil, err
	}
	return fam.Face(layout.PxToPt(float64(sizePx)), canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}

// ensureFontFamily 依次尝试：注入的字体文件、内置字体、系统字体，最后退回默认内置字体。
// 注入的字体文件加载失败时直接报错，不做回退。
func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	if strings.TrimSpace(name) == "" {
		name = fonts.Default
	}
	key := familyKey(name)
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[key]; ok {
		return family, nil
	}

	if res, ok := r.fontRes[key]; ok {
		family, err := loadFamily(name, res)
		if err != nil {
			return nil, err
		}
		r.fontFamilies[key] = family
		return family, nil
	}

	family := canvas.NewFontFamily(name)
	var err error
	if data, ok := fonts.Lookup(name); ok {
		err = family.LoadFont(data, 0, canvas.FontRegular)
	} else {
		err = family.LoadSystemFont(name, canvas.FontRegular)
	}
	if err != nil {
		fallback, fbErr := r.fallback()
		if fbErr != nil {
			return nil, err
		}
		r.fontFamilies[key] = fallback
		return fallback, nil
	}
	r.fontFamilies[key] = family
	return family, nil
}

func loadFamily(name string, res Resource) (*canvas.FontFamily, error) {
	data := res.Bytes
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(res.Path)
		if err != nil {
			return nil, fmt.Errorf("读取字体文件 %s 失败: %w", res.Path, err)
		}
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", name, err)
	}
	return family, nil
}

// fallback 在调用方持有 fontMu 时使用。
func (r *Renderer) fallback() (*canvas.FontFamily, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("boxlabel-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	r.fallbackFamily = family
	return family, nil
}

func familyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
