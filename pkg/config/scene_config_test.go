package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/herofx/pkg/embedded"
)

func TestParsePresetSet(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *PresetSet)
	}{
		{
			name: "valid presets",
			yamlContent: `
defaultPreset: dataflow
seed: 42
presets:
  blackhole:
    model: radial
    fixedSize: true
    width: 600
    height: 600
    particleCount: 300
    eventHorizonRadius: 60
    accretionDiskRadius: 100
    rotationStep: 0.01
  dataflow:
    model: drift
    maxCanvasSize: 300
    viewportDivisor: 3
    particleCount: 100
    connectionThreshold: 70
`,
			validate: func(t *testing.T, set *PresetSet) {
				if set.DefaultPreset != "dataflow" {
					t.Errorf("expected default preset dataflow, got %s", set.DefaultPreset)
				}
				if set.Seed != 42 {
					t.Errorf("expected seed 42, got %d", set.Seed)
				}
				bh, ok := set.Get("blackhole")
				if !ok {
					t.Fatal("blackhole preset missing")
				}
				if bh.ParticleCount != 300 || bh.EventHorizonRadius != 60 {
					t.Errorf("unexpected blackhole preset: %+v", bh)
				}
				df, _ := set.Get("dataflow")
				if df.ConnectionThreshold != 70 {
					t.Errorf("expected threshold 70, got %f", df.ConnectionThreshold)
				}
			},
		},
		{
			name: "empty default picks first name",
			yamlContent: `
presets:
  static:
    model: static
    fixedSize: true
    width: 10
    height: 10
`,
			validate: func(t *testing.T, set *PresetSet) {
				if set.DefaultPreset != "static" {
					t.Errorf("expected default preset static, got %s", set.DefaultPreset)
				}
			},
		},
		{
			name:        "no presets",
			yamlContent: `defaultPreset: blackhole`,
			wantErr:     true,
			errContains: "no presets defined",
		},
		{
			name: "unknown default",
			yamlContent: `
defaultPreset: nebula
presets:
  static:
    model: static
    fixedSize: true
    width: 10
    height: 10
`,
			wantErr:     true,
			errContains: "default preset 'nebula'",
		},
		{
			name: "unknown model",
			yamlContent: `
presets:
  odd:
    model: spiral
    fixedSize: true
    width: 10
    height: 10
`,
			wantErr:     true,
			errContains: "unknown motion model",
		},
		{
			name: "radial without horizon",
			yamlContent: `
presets:
  blackhole:
    model: radial
    fixedSize: true
    width: 600
    height: 600
    accretionDiskRadius: 100
`,
			wantErr:     true,
			errContains: "eventHorizonRadius",
		},
		{
			name: "drift without threshold",
			yamlContent: `
presets:
  dataflow:
    model: drift
    maxCanvasSize: 300
    viewportDivisor: 3
`,
			wantErr:     true,
			errContains: "connectionThreshold",
		},
		{
			name:        "malformed yaml",
			yamlContent: "presets: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParsePresetSet([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, set)
			}
		})
	}
}

func TestLoadPresetSet(t *testing.T) {
	// 仓库自带的配置文件必须能通过验证
	set, err := LoadPresetSet(filepath.Join("..", "..", PresetConfigPath))
	if err != nil {
		t.Fatalf("failed to load bundled presets: %v", err)
	}
	for _, name := range []string{PresetBlackHole, PresetDataFlow, PresetStatic} {
		if _, ok := set.Get(name); !ok {
			t.Errorf("bundled presets missing %s", name)
		}
	}

	// 文件不存在
	_, err = LoadPresetSet(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}

	// 临时文件
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := "presets:\n  static:\n    model: static\n    fixedSize: true\n    width: 5\n    height: 5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if _, err := LoadPresetSet(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefaultPresetsAreValid(t *testing.T) {
	set := DefaultPresets()
	if err := set.Validate(); err != nil {
		t.Fatalf("default presets invalid: %v", err)
	}

	bh, _ := set.Get(PresetBlackHole)
	if bh.ParticleCount != 300 {
		t.Errorf("blackhole particleCount: got %d, want 300", bh.ParticleCount)
	}
	if bh.EventHorizonRadius != 60 || bh.AccretionDiskRadius != 100 {
		t.Errorf("blackhole radii: got %.0f/%.0f, want 60/100", bh.EventHorizonRadius, bh.AccretionDiskRadius)
	}

	df, _ := set.Get(PresetDataFlow)
	if df.ParticleCount != 100 {
		t.Errorf("dataflow particleCount: got %d, want 100", df.ParticleCount)
	}
	if df.ConnectionThreshold != 70 {
		t.Errorf("dataflow threshold: got %.0f, want 70", df.ConnectionThreshold)
	}

	names := set.Names()
	if len(names) != 3 || names[0] != PresetBlackHole {
		t.Errorf("unexpected preset names: %v", names)
	}
}

func TestCanvasSize(t *testing.T) {
	drift := DefaultDataFlow()
	tests := []struct {
		name      string
		cfg       SceneConfig
		viewportW int
		viewportH int
		wantW     int
		wantH     int
	}{
		{"宽屏封顶", drift, 1920, 1080, 300, 300},
		{"窄屏按比例", drift, 600, 800, 200, 200},
		{"恰好等于上限", drift, 900, 400, 300, 300},
		{"零宽度退化", drift, 0, 400, 0, 0},
		{"固定尺寸忽略视口", DefaultBlackHole(), 320, 200, 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.cfg.CanvasSize(tt.viewportW, tt.viewportH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("CanvasSize(%d, %d) = %dx%d, want %dx%d",
					tt.viewportW, tt.viewportH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadEmbeddedPresetSet(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", PresetConfigPath))
	if err != nil {
		t.Fatalf("failed to read bundled presets: %v", err)
	}
	embedded.Init(fstest.MapFS{"hero_presets.yaml": &fstest.MapFile{Data: data}})

	set, err := LoadEmbeddedPresetSet(PresetConfigPath)
	if err != nil {
		t.Fatalf("LoadEmbeddedPresetSet() error: %v", err)
	}
	if set.DefaultPreset != PresetBlackHole {
		t.Errorf("default preset = %s, want %s", set.DefaultPreset, PresetBlackHole)
	}

	if _, err := LoadEmbeddedPresetSet("data/missing.yaml"); err == nil {
		t.Error("expected error for missing embedded file")
	}
}

func TestPresetSetPick(t *testing.T) {
	set := DefaultPresets()

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"命令行优先", []string{PresetStatic, PresetDataFlow}, PresetStatic},
		{"使用保存的偏好", []string{"", PresetDataFlow}, PresetDataFlow},
		{"默认值", []string{"", ""}, PresetBlackHole},
		{"无候选", nil, PresetBlackHole},
		{"忽略未知名称", []string{"nebula"}, PresetBlackHole},
		{"未知名称后继续查找", []string{"nebula", PresetStatic}, PresetStatic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Pick(tt.candidates...); got != tt.want {
				t.Errorf("Pick(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}

func TestLoadPresetsOrDefault(t *testing.T) {
	set := LoadPresetsOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if _, ok := set.Get(PresetBlackHole); !ok {
		t.Fatal("fallback presets should contain blackhole")
	}

	set = LoadPresetsOrDefault(filepath.Join("..", "..", PresetConfigPath))
	if len(set.Presets) != 3 {
		t.Errorf("bundled presets = %d, want 3", len(set.Presets))
	}
}
