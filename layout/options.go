package layout

// BuildOptions 配置布局阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Typesetter Typesetter
}

// Typesetter 负责以给定字体族与像素字号测量文本行。
// 一次调用内只解析一次字体，所有行共用同一个字体面。
type Typesetter interface {
	MeasureLines(family string, sizePx int, lines []string) ([]TextLine, error)
}
