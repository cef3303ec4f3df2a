package layout

import (
	"strings"
	"testing"

	"github.com/ByLCY/boxlabel/dsl"
)

func applyPresetText(t *testing.T, src string) (Config, error) {
	t.Helper()
	doc, err := dsl.ParseString(src)
	if err != nil {
		t.Fatalf("解析预设失败: %v", err)
	}
	cfg := DefaultConfig()
	err = ApplyPreset(doc, &cfg)
	return cfg, err
}

func TestApplyPresetFull(t *testing.T) {
	cfg, err := applyPresetText(t, `
label Shipping {
  size 400 120
  rotate: 90
  frame stroke 3 radius 6
  border outer 2 inner 5 left 6
  font "Latin Modern Roman" size 30
  layout column spacing legacy
  output: "out/ship.png"
  "Order ${order.id}"
  "Fragile"
}
`)
	if err != nil {
		t.Fatalf("ApplyPreset error: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 120 || cfg.Rotation != Rotate90 {
		t.Fatalf("unexpected canvas %+v", cfg)
	}
	if !cfg.DrawFrame || cfg.Stroke != 3 || cfg.Radius != 6 {
		t.Fatalf("unexpected frame settings %+v", cfg)
	}
	want := BorderModel{Mode: BorderPerSide, Outer: 2, Inner: 5, Left: 6}
	if cfg.Border != want {
		t.Fatalf("border = %+v, want %+v", cfg.Border, want)
	}
	if cfg.Font.Family != "Latin Modern Roman" || cfg.Font.SizePx != 30 {
		t.Fatalf("unexpected font %+v", cfg.Font)
	}
	if cfg.Text != (TextMode{Layout: LayoutColumn, Spacing: SpacingLegacy}) {
		t.Fatalf("unexpected text mode %+v", cfg.Text)
	}
	if cfg.Output != "out/ship.png" {
		t.Fatalf("unexpected output %q", cfg.Output)
	}
	if strings.Join(cfg.Lines, "|") != "Order ${order.id}|Fragile" {
		t.Fatalf("unexpected lines %v", cfg.Lines)
	}
}

func TestApplyPresetAssignments(t *testing.T) {
	cfg, err := applyPresetText(t, `label {
  width: 200
  height: 64px
  frame: off
  border: per-side
  top: 3
  fontsize: 12
  font: "Go Mono"
  spacing: gapped
  lines: ["a", "b", "c"]
}`)
	if err != nil {
		t.Fatalf("ApplyPreset error: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 64 || cfg.DrawFrame {
		t.Fatalf("unexpected values %+v", cfg)
	}
	if cfg.Border.Mode != BorderPerSide || cfg.Border.Top != 3 {
		t.Fatalf("unexpected border %+v", cfg.Border)
	}
	if cfg.Font.Family != "Go Mono" || cfg.Font.SizePx != 12 {
		t.Fatalf("unexpected font %+v", cfg.Font)
	}
	if len(cfg.Lines) != 3 {
		t.Fatalf("unexpected lines %v", cfg.Lines)
	}
}

func TestApplyPresetKeepsLinesWhenNoneGiven(t *testing.T) {
	doc, err := dsl.ParseString("label {\n  noframe\n}\n")
	if err != nil {
		t.Fatalf("解析预设失败: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Lines = []string{"from flags"}
	if err := ApplyPreset(doc, &cfg); err != nil {
		t.Fatalf("ApplyPreset error: %v", err)
	}
	if cfg.DrawFrame || len(cfg.Lines) != 1 || cfg.Lines[0] != "from flags" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestApplyPresetErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "label {\n  colour: 3\n}",
		"unknown command":   "label {\n  shadow on\n}",
		"bad number":        "label {\n  width: wide\n}",
		"bad switch":        "label {\n  frame: maybe\n}",
		"dangling pair":     "label {\n  border outer 2 inner\n}",
		"unknown border":    "label {\n  border diagonal 3\n}",
		"size arity":        "label {\n  size 10\n}",
		"noframe with args": "label {\n  noframe now\n}",
		"array scalar":      "label {\n  width: [1]\n}",
	}
	for name, src := range cases {
		if _, err := applyPresetText(t, src); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestApplyPresetErrorHasPosition(t *testing.T) {
	_, err := applyPresetText(t, "label {\n  width: 1\n  colour: 3\n}")
	if err == nil || !strings.Contains(err.Error(), "3:") {
		t.Fatalf("error should carry the line number, got %v", err)
	}
}
