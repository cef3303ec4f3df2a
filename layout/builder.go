package layout

import (
	"fmt"
	"math"
)

// LineTooLongError 表示某行文本在当前字号下超出可绘制宽度。
// 这是致命错误：不会继续合成，也不会写出任何文件。
type LineTooLongError struct {
	Line  string
	Width int
	Limit int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("文本 %q 过长（%dpx > %dpx），已中止", e.Line, e.Width, e.Limit)
}

// Build 根据配置计算边框、字号、行距与每一行的位置。
func Build(cfg Config, opts BuildOptions) (*Result, error) {
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}
	if len(cfg.Lines) == 0 {
		return nil, &ConfigError{Field: "text", Reason: "没有要打印的文本"}
	}

	geo := cfg.Geometry()
	region := geo.Region()
	if region.Empty() {
		return nil, &ConfigError{Field: "border", Reason: "没有可绘制区域"}
	}

	n := len(cfg.Lines)
	size := cfg.Font.SizePx
	if size == 0 {
		size = AutoSize(cfg.Text.Layout, region.Height, n)
	}
	if size <= 0 {
		return nil, &ConfigError{
			Field:  "fontsize",
			Reason: fmt.Sprintf("可绘制高度 %dpx 不足以容纳 %d 行文本", region.Height, n),
		}
	}

	measured, err := opts.Typesetter.MeasureLines(cfg.Font.Family, size, cfg.Lines)
	if err != nil {
		return nil, fmt.Errorf("测量文本失败: %w", err)
	}
	if len(measured) != n {
		return nil, fmt.Errorf("排版后端返回 %d 行，期望 %d 行", len(measured), n)
	}

	tops, step, gap := VerticalPositions(cfg.Text.Spacing, region, size, n)
	lines := make([]PlacedLine, n)
	for i, m := range measured {
		width := int(math.Ceil(m.Width))
		if width > region.Width {
			return nil, &LineTooLongError{Line: cfg.Lines[i], Width: width, Limit: region.Width}
		}
		lines[i] = PlacedLine{
			Content: cfg.Lines[i],
			X:       CenterX(region, width),
			Y:       tops[i],
			Width:   width,
			Height:  int(math.Ceil(m.Height)),
		}
	}

	rotation := cfg.Rotation
	if cfg.Text.Layout == LayoutColumn {
		rotation = rotation.Add(Rotate90)
	}

	res := &Result{
		Width:    geo.Width,
		Height:   geo.Height,
		Rotation: rotation,
		Region:   region,
		Font:     FontSpec{Family: cfg.Font.Family, File: cfg.Font.File, SizePx: size},
		Text:     cfg.Text,
		LineStep: step,
		LineGap:  gap,
		Lines:    lines,
	}
	if cfg.DrawFrame {
		res.Frame = &Frame{Rect: geo.FrameRect(), Stroke: cfg.Stroke, Radius: cfg.Radius}
	}
	return res, nil
}

// AutoSize 按排列方式计算自动字号（像素）。
//
//	rows:   height / n * 7 / 8
//	column: n == 1 时为 height，否则 height * 6 / 7 / n
func AutoSize(mode LayoutMode, height, n int) int {
	if n <= 0 {
		return 0
	}
	if mode == LayoutColumn {
		if n == 1 {
			return height
		}
		return height * 6 / 7 / n
	}
	return height / n * 7 / 8
}

// VerticalPositions 返回每行行框顶部的 y 坐标、相邻两行的步长以及行间空隙。
func VerticalPositions(mode SpacingMode, region Rect, size, n int) (tops []int, step, gap int) {
	if n <= 0 {
		return nil, 0, 0
	}
	var y int
	switch mode {
	case SpacingLegacy:
		step = region.Height / n
		gap = max(step-size, 0)
		y = region.Y
	default:
		gap = max((region.Height-n*size)/(n+1), 0)
		step = size + gap
		y = region.Y + gap
	}
	tops = make([]int, n)
	for i := range tops {
		tops[i] = y
		y += step
	}
	return tops, step, gap
}

// CenterX 返回宽度为 width 的行在区域内水平居中时的 x（整数截断）。
func CenterX(region Rect, width int) int {
	return region.X + (region.Width-width)/2
}
