package layout

// Geometry 汇总计算边框与可绘制区域所需的尺寸，全部为像素。
type Geometry struct {
	Width   int
	Height  int
	Margins Insets
	Stroke  int
	Inner   int
}

// Margins 返回四边外边距。外边框总是叠加到每一侧；对称模式下忽略四边额外值。
func (b BorderModel) Margins() Insets {
	if b.Mode == BorderPerSide {
		return Insets{
			Left:   b.Left + b.Outer,
			Top:    b.Top + b.Outer,
			Right:  b.Right + b.Outer,
			Bottom: b.Bottom + b.Outer,
		}
	}
	return Insets{Left: b.Outer, Top: b.Outer, Right: b.Outer, Bottom: b.Outer}
}

// ToColumnFrame 把物理画布的四边映射到竖排逻辑画布。
// 逻辑画布最终顺时针旋转 90°，因此逻辑左边对应物理上边，依此类推。
func (i Insets) ToColumnFrame() Insets {
	return Insets{Left: i.Top, Top: i.Right, Right: i.Bottom, Bottom: i.Left}
}

// Geometry 返回逻辑画布的几何参数。竖排模式下逻辑画布宽高互换。
func (c Config) Geometry() Geometry {
	g := Geometry{
		Width:   c.Width,
		Height:  c.Height,
		Margins: c.Border.Margins(),
		Stroke:  c.Stroke,
		Inner:   c.Border.Inner,
	}
	if c.Text.Layout == LayoutColumn {
		g.Width, g.Height = c.Height, c.Width
		g.Margins = g.Margins.ToColumnFrame()
	}
	return g
}

// FrameRect 返回边框描边中心线所在的矩形。
// 左上角内缩 stroke/2（整数除法），宽高在外边距之内再减去 1.5 倍线宽，
// 让右侧与底部的描边不会贴到画布边缘被裁掉。
func (g Geometry) FrameRect() Rect {
	m := g.Margins
	s := g.Stroke
	spanW := g.Width - m.Left - m.Right
	spanH := g.Height - m.Top - m.Bottom
	return Rect{
		X:      m.Left + s/2,
		Y:      m.Top + s/2,
		Width:  int(float64(spanW) - 1.5*float64(s)),
		Height: int(float64(spanH) - 1.5*float64(s)),
	}
}

// Region 返回文本可绘制区域：画布减去每侧的 外边距 + 线宽 + 内边距。
func (g Geometry) Region() Rect {
	m := g.Margins
	return Rect{
		X:      m.Left + g.Inner + g.Stroke,
		Y:      m.Top + g.Inner + g.Stroke,
		Width:  g.Width - m.Left - m.Right - 2*g.Inner - 2*g.Stroke,
		Height: g.Height - m.Top - m.Bottom - 2*g.Inner - 2*g.Stroke,
	}
}
