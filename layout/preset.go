package layout

import (
	"fmt"
	"strings"

	"github.com/ByLCY/boxlabel/dsl"
)

// ApplyPreset 将预设文档中的设置写入配置草稿。
// 预设中出现的裸字符串依次成为文本行，并替换草稿中已有的行。
func ApplyPreset(doc *dsl.Document, draft *Config) error {
	if doc == nil || doc.Block == nil {
		return fmt.Errorf("预设文档为空")
	}
	if draft == nil {
		return fmt.Errorf("配置草稿为空")
	}

	var lines []string
	for _, st := range doc.Block.Statements {
		switch {
		case st.Assignment != nil:
			if err := applyAssignment(st.Assignment, draft); err != nil {
				return fmt.Errorf("%s: %w", st.Assignment.Pos, err)
			}
		case st.Command != nil:
			if err := applyCommand(st.Command, draft); err != nil {
				return fmt.Errorf("%s: %w", st.Command.Pos, err)
			}
		case st.Text != nil:
			lines = append(lines, string(st.Text.Value))
		}
	}
	if len(lines) > 0 {
		draft.Lines = lines
	}
	return nil
}

func applyAssignment(a *dsl.Assignment, cfg *Config) error {
	key := strings.ToLower(a.Key)
	if key == "lines" || key == "text" {
		lines, err := a.Value.Strings()
		if err != nil {
			return fmt.Errorf("%s: %w", a.Key, err)
		}
		cfg.Lines = lines
		return nil
	}
	value, err := a.Value.Text()
	if err != nil {
		return fmt.Errorf("%s: %w", a.Key, err)
	}
	return setOption(cfg, key, value)
}

// applyCommand 处理 `name arg...` 形式的语句。
// border/font/layout/size 接受 “键 值” 成对参数，其余单词为开关或模式名。
func applyCommand(cmd *dsl.Command, cfg *Config) error {
	name := strings.ToLower(cmd.Name)
	args := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		args[i] = a.Value
	}

	switch name {
	case "noframe", "noborder":
		if len(args) != 0 {
			return fmt.Errorf("%s 不接受参数", cmd.Name)
		}
		cfg.DrawFrame = false
		return nil
	case "frame":
		if len(args) == 0 {
			cfg.DrawFrame = true
			return nil
		}
		return applyPairs(cfg, args, func(k string) string {
			switch k {
			case "stroke", "radius":
				return k
			}
			return ""
		})
	case "size":
		if len(args) != 2 {
			return fmt.Errorf("size 需要宽和高两个参数")
		}
		if err := setOption(cfg, "width", args[0]); err != nil {
			return err
		}
		return setOption(cfg, "height", args[1])
	case "text":
		if len(args) == 0 {
			return fmt.Errorf("text 至少需要一行文本")
		}
		cfg.Lines = args
		return nil
	case "border":
		if len(args) > 0 && len(args)%2 == 1 {
			mode, err := ParseBorderMode(args[0])
			if err != nil {
				return err
			}
			cfg.Border.Mode = mode
			args = args[1:]
		}
		return applyPairs(cfg, args, func(k string) string {
			switch k {
			case "outer", "inner", "left", "right", "top", "bottom":
				return k
			}
			return ""
		})
	case "font":
		if len(args)%2 == 1 {
			cfg.Font.Family = args[0]
			args = args[1:]
		}
		return applyPairs(cfg, args, func(k string) string {
			switch k {
			case "size":
				return "fontsize"
			case "file":
				return "fontfile"
			case "family":
				return "font"
			}
			return ""
		})
	case "layout":
		if len(args)%2 == 1 {
			if err := setOption(cfg, "layout", args[0]); err != nil {
				return err
			}
			args = args[1:]
		}
		return applyPairs(cfg, args, func(k string) string {
			if k == "spacing" {
				return k
			}
			return ""
		})
	default:
		return fmt.Errorf("未知的命令 %q", cmd.Name)
	}
}

// applyPairs 依次应用 “键 值” 参数，keyFor 把局部键名映射为配置项名。
func applyPairs(cfg *Config, args []string, keyFor func(string) string) error {
	if len(args)%2 != 0 {
		return fmt.Errorf("参数 %q 缺少取值", args[len(args)-1])
	}
	for i := 0; i < len(args); i += 2 {
		key := keyFor(strings.ToLower(args[i]))
		if key == "" {
			return fmt.Errorf("未知的参数 %q", args[i])
		}
		if err := setOption(cfg, key, args[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// setOption 设置单个配置项，键名与命令行长选项一致。
func setOption(cfg *Config, key, value string) error {
	switch key {
	case "font", "family":
		cfg.Font.Family = value
		return nil
	case "fontfile":
		cfg.Font.File = value
		return nil
	case "output", "outfile":
		cfg.Output = value
		return nil
	case "frame":
		on, err := parseSwitch(value)
		if err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		cfg.DrawFrame = on
		return nil
	case "border":
		mode, err := ParseBorderMode(value)
		if err != nil {
			return err
		}
		cfg.Border.Mode = mode
		return nil
	case "layout":
		mode, err := ParseLayoutMode(value)
		if err != nil {
			return err
		}
		cfg.Text.Layout = mode
		return nil
	case "spacing":
		mode, err := ParseSpacingMode(value)
		if err != nil {
			return err
		}
		cfg.Text.Spacing = mode
		return nil
	}

	target := intOption(cfg, key)
	if target == nil {
		return fmt.Errorf("未知的配置项 %q", key)
	}
	n, err := ParsePixels(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*target = n
	switch key {
	case "left", "right", "top", "bottom":
		cfg.Border.Mode = BorderPerSide
	}
	return nil
}

func intOption(cfg *Config, key string) *int {
	switch key {
	case "width":
		return &cfg.Width
	case "height":
		return &cfg.Height
	case "rotate", "rotation":
		return (*int)(&cfg.Rotation)
	case "stroke":
		return &cfg.Stroke
	case "radius":
		return &cfg.Radius
	case "fontsize":
		return &cfg.Font.SizePx
	case "outer":
		return &cfg.Border.Outer
	case "inner":
		return &cfg.Border.Inner
	case "left":
		return &cfg.Border.Left
	case "right":
		return &cfg.Border.Right
	case "top":
		return &cfg.Border.Top
	case "bottom":
		return &cfg.Border.Bottom
	default:
		return nil
	}
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("无法识别的开关取值 %q", v)
	}
}
