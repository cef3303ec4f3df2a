package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// 渲染器按 1 mm = 1 px 栅格化画布，而字体系统以 pt 为字号单位，
// 因此像素字号需要在这里换算。

// Conversion constants between pt and mm.
const (
	PtToMm = 25.4 / 72
	MmToPt = 1.0 / PtToMm
)

// PxToPt 将像素（即画布上的 mm）换算为 pt。
func PxToPt(px float64) float64 { return px * MmToPt }

// PtToPx 将 pt 换算为像素。
func PtToPx(pt float64) float64 { return pt * PtToMm }

// ParsePixels 解析预设中的长度，只接受无单位整数或带 px 后缀的整数。
func ParsePixels(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimSpace(strings.TrimSuffix(v, "px"))
	if v == "" {
		return 0, fmt.Errorf("长度为空")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("无法解析像素长度 %q", value)
	}
	return n, nil
}
