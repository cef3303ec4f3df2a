package fonts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是未指定字体或找不到字体时使用的内置字体。
const Default = "Go"

type builtin struct {
	name    string
	aliases []string
	data    []byte
}

// 别名覆盖常见的通用字体族名称，使 "sans"、"serif"、"monospace" 在没有系统字体时也能得到确定的结果。
var builtins = []builtin{
	{name: "Go", aliases: []string{"go regular", "sans", "sans-serif"}, data: goregular.TTF},
	{name: "Go Bold", aliases: []string{"sans bold"}, data: gobold.TTF},
	{name: "Go Mono", aliases: []string{"monospace", "mono"}, data: gomono.TTF},
	{name: "Latin Modern Roman", aliases: []string{"lmroman", "serif"}, data: lmroman10regular.TTF},
	{name: "Latin Modern Sans", aliases: []string{"lmsans"}, data: lmsans10regular.TTF},
	{name: "Latin Modern Mono", aliases: []string{"lmmono"}, data: lmmono10regular.TTF},
}

var byName = func() map[string][]byte {
	m := make(map[string][]byte)
	for _, b := range builtins {
		m[strings.ToLower(b.name)] = b.data
		for _, a := range b.aliases {
			m[a] = b.data
		}
	}
	return m
}()

// Lookup 按名称（不区分大小写）查找内置字体数据。
func Lookup(name string) ([]byte, bool) {
	data, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return data, ok
}

// Load 返回内置字体的字节数据，name 可写为 "builtin:Go" 或直接 "Go"。
func Load(name string) ([]byte, error) {
	clean := strings.TrimPrefix(strings.TrimPrefix(name, "built-in:"), "builtin:")
	data, ok := Lookup(clean)
	if !ok {
		return nil, fmt.Errorf("找不到内置字体 %s", clean)
	}
	return data, nil
}

// Names 返回所有内置字体的主名称，按字母排序。
func Names() []string {
	names := make([]string, len(builtins))
	for i, b := range builtins {
		names[i] = b.name
	}
	sort.Strings(names)
	return names
}
