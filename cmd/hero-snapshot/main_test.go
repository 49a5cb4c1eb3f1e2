package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/embedded"
)

func TestRenderSnapshot(t *testing.T) {
	presets := config.DefaultPresets()

	tests := []struct {
		name  string
		wantW int
	}{
		{config.PresetBlackHole, 600},
		{config.PresetDataFlow, 300},
		{config.PresetStatic, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := renderSnapshot(presets, tt.name, 30, 900, 900, 1)
			if err != nil {
				t.Fatalf("renderSnapshot() error: %v", err)
			}
			if w := img.Bounds().Dx(); w != tt.wantW {
				t.Errorf("width = %d, want %d", w, tt.wantW)
			}

			// 画面不应是纯色
			first := img.RGBAAt(0, 0)
			varied := false
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y && !varied; y += 7 {
				for x := b.Min.X; x < b.Max.X; x += 7 {
					if img.RGBAAt(x, y) != first {
						varied = true
						break
					}
				}
			}
			if !varied {
				t.Error("snapshot is a flat color")
			}
		})
	}
}

func TestRenderSnapshotErrors(t *testing.T) {
	presets := config.DefaultPresets()

	if _, err := renderSnapshot(presets, "nebula", 1, 900, 900, 1); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := renderSnapshot(presets, config.PresetDataFlow, 5, 0, 0, 1); err == nil {
		t.Error("expected error for degenerate viewport")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := renderSnapshot(config.DefaultPresets(), config.PresetDataFlow, 2, 300, 300, 1)
	if err != nil {
		t.Fatalf("renderSnapshot() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "hero.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if decoded.Bounds().Dx() != 100 {
		t.Errorf("decoded width = %d, want 100", decoded.Bounds().Dx())
	}
}

func TestLoadPresetsIgnoresWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	presets := loadPresets("")
	if !embedded.Exists(config.PresetConfigPath) {
		t.Fatalf("%s should be readable from the embedded data", config.PresetConfigPath)
	}
	if _, err := config.LoadEmbeddedPresetSet(config.PresetConfigPath); err != nil {
		t.Fatalf("LoadEmbeddedPresetSet() error: %v", err)
	}
	for _, name := range []string{config.PresetBlackHole, config.PresetDataFlow, config.PresetStatic} {
		if _, ok := presets.Get(name); !ok {
			t.Errorf("presets missing %s", name)
		}
	}
}
