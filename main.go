package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/boxlabel/binding"
	"github.com/ByLCY/boxlabel/dsl"
	"github.com/ByLCY/boxlabel/layout"
	canvasrenderer "github.com/ByLCY/boxlabel/renderer/canvas"
)

// 退出码：0 成功；1 选项解析、渲染或写文件失败；2 参数缺失或无效、文本过长。
const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliOptions 保存命令行取值；只有显式给出的选项才会覆盖预设。
type cliOptions struct {
	font, fontFile, outfile    string
	preset, data, debug        string
	border, layoutMode, spacing string

	fontSize, width, height, rotate int
	outer, inner                    int
	right, left, top, bottom        int
	stroke, radius                  int

	noFrame, verbose bool
}

func newFlagSet(o *cliOptions, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("boxlabel", flag.ContinueOnError)
	fs.SetOutput(stderr)

	str := func(p *string, short, long, usage string) {
		if short != "" {
			fs.StringVar(p, short, *p, usage)
		}
		fs.StringVar(p, long, *p, usage)
	}
	num := func(p *int, short, long string, value int, usage string) {
		if short != "" {
			fs.IntVar(p, short, value, usage)
		}
		fs.IntVar(p, long, value, usage)
	}

	str(&o.font, "f", "font", "字体族名称（内置：Go、Go Mono、Latin Modern Roman 等）")
	str(&o.fontFile, "F", "fontfile", "TTF/OTF 字体文件，按 --font 或文件名注册")
	num(&o.fontSize, "p", "fontsize", 0, "字号（像素），0 表示自动计算")
	num(&o.width, "w", "width", layout.DefaultWidth, "标签宽度（像素）")
	num(&o.height, "h", "height", layout.DefaultHeight, "标签高度（像素）")
	num(&o.rotate, "r", "rotate", 0, "图像旋转角度：0、90、180 或 270")
	fs.BoolVar(&o.noFrame, "noframe", false, "不绘制文本外框")
	fs.BoolVar(&o.noFrame, "noborder", false, "同 --noframe")
	fs.BoolVar(&o.noFrame, "b", false, "同 --noframe")
	num(&o.outer, "", "ob", 0, "外框之外的留白")
	num(&o.inner, "", "ib", layout.DefaultInner, "外框之内的留白")
	num(&o.right, "", "rb", 0, "右侧额外留白")
	num(&o.left, "", "lb", 0, "左侧额外留白")
	num(&o.top, "", "tb", 0, "上方额外留白")
	num(&o.bottom, "", "bb", 0, "下方额外留白")
	num(&o.stroke, "", "stroke", layout.DefaultStroke, "外框线宽（像素）")
	num(&o.radius, "", "radius", layout.DefaultRadius, "外框圆角半径（像素）")
	str(&o.border, "", "border", "边框模型：symmetric 或 per-side")
	str(&o.layoutMode, "", "layout", "排列方式：rows 或 column")
	str(&o.spacing, "", "spacing", "行距算法：gapped 或 legacy")
	str(&o.outfile, "o", "outfile", "输出 PNG 文件名")
	str(&o.preset, "c", "preset", "标签预设文件")
	str(&o.data, "d", "data", "绑定到文本占位符 ${...} 的 JSON 数据")
	str(&o.debug, "", "debug", "布局调试 JSON 输出路径")
	fs.BoolVar(&o.verbose, "v", false, "输出字号、行距与每行尺寸")
	fs.BoolVar(&o.verbose, "verbose", false, "同 -v")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "用法: boxlabel [选项] 文本行...\n\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseInterleaved 允许选项与文本行交错出现；"--" 之后全部视为文本。
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	var o cliOptions
	fs := newFlagSet(&o, stderr)
	lines, err := parseInterleaved(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitFailure
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[canonicalFlag(f.Name)] = true })

	draft := layout.DefaultConfig()
	if o.preset != "" {
		if err := loadPreset(o.preset, &draft); err != nil {
			logger.Printf("%v", err)
			return exitInvalid
		}
	}
	if err := applyFlags(&draft, &o, set); err != nil {
		logger.Printf("%v", err)
		return exitInvalid
	}
	if len(lines) > 0 {
		draft.Lines = lines
	}
	if o.data != "" {
		data, err := binding.ParseData(o.data)
		if err != nil {
			logger.Printf("%v", err)
			return exitInvalid
		}
		draft.Lines = binding.Lines(draft.Lines, data)
	}

	cfg, err := layout.NewConfig(draft)
	if err != nil {
		logger.Printf("%v", err)
		return exitInvalid
	}

	r := canvasrenderer.NewRendererWithOptions(rendererOptions(cfg.Font))
	result, err := layout.Build(cfg, layout.BuildOptions{Typesetter: r})
	if err != nil {
		logger.Printf("%v", err)
		var tooLong *layout.LineTooLongError
		var cfgErr *layout.ConfigError
		if errors.As(err, &tooLong) || errors.As(err, &cfgErr) {
			return exitInvalid
		}
		return exitFailure
	}
	if o.verbose {
		printLayout(stdout, result)
	}

	if o.debug != "" {
		if err := writeDebug(result, o.debug); err != nil {
			logger.Printf("%v", err)
			return exitFailure
		}
	}

	pngBytes, err := r.Render(result)
	if err != nil {
		logger.Printf("渲染标签失败: %v", err)
		return exitFailure
	}
	if err := writeOutput(cfg.Output, pngBytes); err != nil {
		logger.Printf("%v", err)
		return exitFailure
	}
	fmt.Fprintf(stdout, "已生成标签：%s\n", cfg.Output)
	return exitOK
}

func loadPreset(path string, draft *layout.Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("无法打开预设文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(path, file)
	if err != nil {
		return fmt.Errorf("解析预设失败: %w", err)
	}
	if err := layout.ApplyPreset(doc, draft); err != nil {
		return fmt.Errorf("应用预设失败: %w", err)
	}
	return nil
}

// canonicalFlag 把短选项与别名映射到长选项名。
func canonicalFlag(name string) string {
	switch name {
	case "f":
		return "font"
	case "F":
		return "fontfile"
	case "p":
		return "fontsize"
	case "w":
		return "width"
	case "h":
		return "height"
	case "r":
		return "rotate"
	case "b", "noborder":
		return "noframe"
	case "o":
		return "outfile"
	case "c":
		return "preset"
	case "d":
		return "data"
	case "v":
		return "verbose"
	default:
		return name
	}
}

// applyFlags 将显式给出的选项写入草稿。给出任一单边留白时自动切换到 per-side 边框模型。
func applyFlags(draft *layout.Config, o *cliOptions, set map[string]bool) error {
	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"width", o.width, &draft.Width},
		{"height", o.height, &draft.Height},
		{"rotate", o.rotate, (*int)(&draft.Rotation)},
		{"fontsize", o.fontSize, &draft.Font.SizePx},
		{"ob", o.outer, &draft.Border.Outer},
		{"ib", o.inner, &draft.Border.Inner},
		{"rb", o.right, &draft.Border.Right},
		{"lb", o.left, &draft.Border.Left},
		{"tb", o.top, &draft.Border.Top},
		{"bb", o.bottom, &draft.Border.Bottom},
		{"stroke", o.stroke, &draft.Stroke},
		{"radius", o.radius, &draft.Radius},
	}
	for _, v := range ints {
		if set[v.name] {
			*v.dst = v.src
		}
	}
	if set["rb"] || set["lb"] || set["tb"] || set["bb"] {
		draft.Border.Mode = layout.BorderPerSide
	}
	if set["noframe"] && o.noFrame {
		draft.DrawFrame = false
	}
	if set["font"] {
		draft.Font.Family = o.font
	}
	if set["fontfile"] {
		draft.Font.File = o.fontFile
	}
	if set["outfile"] {
		draft.Output = o.outfile
	}
	if set["border"] {
		mode, err := layout.ParseBorderMode(o.border)
		if err != nil {
			return err
		}
		draft.Border.Mode = mode
	}
	if set["layout"] {
		mode, err := layout.ParseLayoutMode(o.layoutMode)
		if err != nil {
			return err
		}
		draft.Text.Layout = mode
	}
	if set["spacing"] {
		mode, err := layout.ParseSpacingMode(o.spacing)
		if err != nil {
			return err
		}
		draft.Text.Spacing = mode
	}
	return nil
}

func rendererOptions(font layout.FontSpec) canvasrenderer.Options {
	if font.File == "" {
		return canvasrenderer.Options{}
	}
	return canvasrenderer.Options{Fonts: map[string]canvasrenderer.Resource{
		font.Family: {Path: font.File},
	}}
}

func printLayout(w io.Writer, res *layout.Result) {
	fmt.Fprintf(w, "Using line spacing %d, font size: %d pixel\n", res.LineStep, res.Font.SizePx)
	for _, line := range res.Lines {
		fmt.Fprintf(w, "Writing> %s  size: %dx%d\n", line.Content, line.Width, line.Height)
	}
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}
