package layout

import (
	"fmt"
	"strings"
)

// 该文件定义标签配置与布局结果，供布局计算、渲染与调试 JSON 共用。

// Rotation 表示合成完成后整张画布的旋转角度（度，顺时针）。
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Valid 仅接受 0/90/180/270。
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	default:
		return false
	}
}

// Add 叠加两个旋转角度。
func (r Rotation) Add(o Rotation) Rotation { return (r + o) % 360 }

// SwapsAxes 报告旋转后宽高是否互换。
func (r Rotation) SwapsAxes() bool { return r == Rotate90 || r == Rotate270 }

// BorderMode 选择边框模型：对称外边距或四边独立外边距。
type BorderMode int

const (
	BorderSymmetric BorderMode = iota
	BorderPerSide
)

func (m BorderMode) String() string {
	switch m {
	case BorderSymmetric:
		return "symmetric"
	case BorderPerSide:
		return "per-side"
	default:
		return fmt.Sprintf("BorderMode(%d)", int(m))
	}
}

// MarshalText 让调试 JSON 输出可读名称。
func (m BorderMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseBorderMode 解析命令行或预设中的边框模型名称。
func ParseBorderMode(s string) (BorderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symmetric", "uniform", "":
		return BorderSymmetric, nil
	case "per-side", "perside", "sides":
		return BorderPerSide, nil
	default:
		return 0, fmt.Errorf("未知的边框模型 %q（可选 symmetric、per-side）", s)
	}
}

// LayoutMode 选择文本排列方式及对应的自动字号公式。
type LayoutMode int

const (
	// LayoutRows 按行自上而下堆叠，自动字号为 height/n*7/8。
	LayoutRows LayoutMode = iota
	// LayoutColumn 文本沿竖向排列、各行自右向左排布，自动字号为
	// 单行 height、多行 height*6/7/n。
	LayoutColumn
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutRows:
		return "rows"
	case LayoutColumn:
		return "column"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

func (m LayoutMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseLayoutMode 解析排列方式名称。
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row", "":
		return LayoutRows, nil
	case "column", "col", "vertical":
		return LayoutColumn, nil
	default:
		return 0, fmt.Errorf("未知的排列方式 %q（可选 rows、column）", s)
	}
}

// SpacingMode 选择行间距算法。
type SpacingMode int

const (
	// SpacingGapped 在首行之上、行与行之间、末行之下留出相等空隙。
	SpacingGapped SpacingMode = iota
	// SpacingLegacy 以 height/n 为步长，从可绘制区域顶部开始排布。
	SpacingLegacy
)

func (m SpacingMode) String() string {
	switch m {
	case SpacingGapped:
		return "gapped"
	case SpacingLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("SpacingMode(%d)", int(m))
	}
}

func (m SpacingMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseSpacingMode 解析行间距算法名称。
func ParseSpacingMode(s string) (SpacingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gapped", "even", "":
		return SpacingGapped, nil
	case "legacy", "step":
		return SpacingLegacy, nil
	default:
		return 0, fmt.Errorf("未知的行距算法 %q（可选 gapped、legacy）", s)
	}
}

// Insets 以像素记录四边距离。
type Insets struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Rect 为整数像素矩形，原点在左上角。
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty 报告矩形是否没有可用面积。
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// CenterX 返回矩形水平中心（可能为半像素）。
func (r Rect) CenterX() float64 { return float64(r.X) + float64(r.Width)/2 }

// BorderModel 描述外边框、内边距以及四边额外外边距。
type BorderModel struct {
	Mode   BorderMode `json:"mode"`
	Outer  int        `json:"outer"`
	Inner  int        `json:"inner"`
	Left   int        `json:"left"`
	Right  int        `json:"right"`
	Top    int        `json:"top"`
	Bottom int        `json:"bottom"`
}

// FontSpec 描述字体族与像素字号，SizePx 为 0 表示自动计算。
type FontSpec struct {
	Family string `json:"family,omitempty"`
	File   string `json:"file,omitempty"`
	SizePx int    `json:"sizePx"`
}

// TextMode 组合排列方式与行距算法。
type TextMode struct {
	Layout  LayoutMode  `json:"layout"`
	Spacing SpacingMode `json:"spacing"`
}

// Config 是一次渲染的完整配置。经 NewConfig 校验后视为只读，
// 以值的形式传给流水线的每个阶段。
type Config struct {
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Rotation  Rotation    `json:"rotation"`
	DrawFrame bool        `json:"drawFrame"`
	Border    BorderModel `json:"border"`
	Stroke    int         `json:"stroke"`
	Radius    int         `json:"radius"`
	Font      FontSpec    `json:"font"`
	Text      TextMode    `json:"text"`
	Lines     []string    `json:"lines"`
	Output    string      `json:"output"`
}

// Result 保存布局后可直接绘制的标签。坐标均位于未旋转的逻辑画布上，
// Rotation 为渲染最后一步需要施加的旋转。
type Result struct {
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Rotation Rotation     `json:"rotation"`
	Frame    *Frame       `json:"frame,omitempty"`
	Region   Rect         `json:"region"`
	Font     FontSpec     `json:"font"`
	Text     TextMode     `json:"text"`
	LineStep int          `json:"lineStep"`
	LineGap  int          `json:"lineGap"`
	Lines    []PlacedLine `json:"lines"`
}

// OutputSize 返回旋转之后的图像尺寸。
func (r *Result) OutputSize() (width, height int) {
	if r.Rotation.SwapsAxes() {
		return r.Height, r.Width
	}
	return r.Width, r.Height
}

// Frame 是边框描边的中心线矩形。
type Frame struct {
	Rect
	Stroke int `json:"stroke"`
	Radius int `json:"radius"`
}

// PlacedLine 表示一行已确定位置的文本，Y 为行框顶部。
type PlacedLine struct {
	Content string `json:"content"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// TextLine 表示排版后端测得的一行文本宽高（像素，可为小数）。
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}
