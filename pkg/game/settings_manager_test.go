package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Preset != "" {
		t.Errorf("Preset: got %q, want empty", settings.Preset)
	}
	if settings.ShowHUD {
		t.Error("ShowHUD: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	sm.SetShowHUD(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if !sm.GetSettings().ShowHUD {
		t.Error("in-memory settings should still change")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_herofx_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetPreset("dataflow")
	sm1.SetShowHUD(true)
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()
	if settings.Preset != "dataflow" {
		t.Errorf("Loaded Preset: got %q, want dataflow", settings.Preset)
	}
	if !settings.ShowHUD {
		t.Error("Loaded ShowHUD: got false, want true")
	}
}

// TestSettingsLoadCorrupted 测试数据损坏时回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_herofx_settings_corrupted",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("preset: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("expected unmarshal error")
	}
	if sm.GetSettings().Preset != "" {
		t.Error("corrupted data should fall back to defaults")
	}
}
