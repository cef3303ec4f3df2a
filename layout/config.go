package layout

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// 默认值与原始命令行工具保持一致。
const (
	DefaultWidth  = 350
	DefaultHeight = 106
	DefaultInner  = 4
	DefaultStroke = 2
	DefaultRadius = 10
)

// ConfigError 描述某个配置项不合法。
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("配置项 %s 无效: %s", e.Field, e.Reason)
}

// DefaultConfig 返回一份尚未校验的默认配置草稿。
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Rotation:  Rotate0,
		DrawFrame: true,
		Border:    BorderModel{Mode: BorderSymmetric, Inner: DefaultInner},
		Stroke:    DefaultStroke,
		Radius:    DefaultRadius,
	}
}

// NewConfig 校验草稿并返回独立的配置副本，之后不应再修改。
func NewConfig(draft Config) (Config, error) {
	cfg := draft
	cfg.Lines = slices.Clone(draft.Lines)
	// 组合字符统一为 NFC，测量与绘制使用同一字形序列。
	for i, line := range cfg.Lines {
		cfg.Lines[i] = norm.NFC.String(line)
	}
	if cfg.Font.File != "" && cfg.Font.Family == "" {
		base := filepath.Base(cfg.Font.File)
		cfg.Font.Family = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !c.Rotation.Valid() {
		return &ConfigError{Field: "rotate", Reason: fmt.Sprintf("无效的旋转角度 %d°，仅允许 0、90、180 或 270", int(c.Rotation))}
	}
	if len(c.Lines) == 0 {
		return &ConfigError{Field: "text", Reason: "没有要打印的文本"}
	}
	for i, line := range c.Lines {
		if line == "" {
			return &ConfigError{Field: "text", Reason: fmt.Sprintf("第 %d 行为空", i+1)}
		}
	}
	if c.Output == "" {
		return &ConfigError{Field: "outfile", Reason: "未指定输出文件"}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return &ConfigError{Field: "size", Reason: fmt.Sprintf("画布尺寸 %dx%d 必须为正数", c.Width, c.Height)}
	}
	for _, v := range []struct {
		name  string
		value int
	}{
		{"ob", c.Border.Outer}, {"ib", c.Border.Inner},
		{"lb", c.Border.Left}, {"rb", c.Border.Right},
		{"tb", c.Border.Top}, {"bb", c.Border.Bottom},
		{"stroke", c.Stroke}, {"radius", c.Radius},
		{"fontsize", c.Font.SizePx},
	} {
		if v.value < 0 {
			return &ConfigError{Field: v.name, Reason: fmt.Sprintf("不能为负数: %d", v.value)}
		}
	}
	switch c.Border.Mode {
	case BorderSymmetric, BorderPerSide:
	default:
		return &ConfigError{Field: "border", Reason: c.Border.Mode.String()}
	}
	switch c.Text.Layout {
	case LayoutRows, LayoutColumn:
	default:
		return &ConfigError{Field: "layout", Reason: c.Text.Layout.String()}
	}
	switch c.Text.Spacing {
	case SpacingGapped, SpacingLegacy:
	default:
		return &ConfigError{Field: "spacing", Reason: c.Text.Spacing.String()}
	}
	if region := c.Geometry().Region(); region.Empty() {
		return &ConfigError{
			Field:  "border",
			Reason: fmt.Sprintf("边框与内边距之后没有可绘制区域（%dx%d）", region.Width, region.Height),
		}
	}
	return nil
}
