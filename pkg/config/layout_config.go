package config

// 窗口布局配置常量
// 预设画布绘制在窗口中央，窗口尺寸即"视口"尺寸

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1024

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 720

	// HUDMarginX / HUDMarginY HUD 文字左上角偏移
	HUDMarginX = 8
	HUDMarginY = 8

	// HUDLineHeight HUD 行高（basicfont 7x13）
	HUDLineHeight = 16
)

// PresetConfigPath 嵌入的预设配置文件路径
const PresetConfigPath = "data/hero_presets.yaml"
