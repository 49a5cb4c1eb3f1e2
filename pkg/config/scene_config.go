package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	"github.com/decker502/herofx/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MotionModelKind 运动模型类型
//
// 在场景构建时选定，决定粒子的更新规则和附加渲染层。
type MotionModelKind string

const (
	// MotionRadial 径向吸引（黑洞）
	MotionRadial MotionModelKind = "radial"
	// MotionDrift 线性上漂（数据流）
	MotionDrift MotionModelKind = "drift"
	// MotionStatic 静态背景（无粒子）
	MotionStatic MotionModelKind = "static"
)

// SceneConfig 单个可视化预设的不可变常量
//
// 配置文件位置: data/hero_presets.yaml
type SceneConfig struct {
	// Model 运动模型
	Model MotionModelKind `yaml:"model"`

	// FixedSize 为 true 时画布尺寸在挂载时确定，忽略视口变化
	FixedSize bool `yaml:"fixedSize"`
	// Width / Height 固定尺寸预设的画布大小
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// MaxCanvasSize / ViewportDivisor 可变尺寸预设：size = min(viewportWidth/divisor, max)
	MaxCanvasSize   int     `yaml:"maxCanvasSize"`
	ViewportDivisor float64 `yaml:"viewportDivisor"`

	// ParticleCount 粒子数量（连线渲染为平方复杂度）
	ParticleCount int `yaml:"particleCount"`

	// EventHorizonRadius 事件视界半径，小于该距离的粒子被"吞噬"并重生
	EventHorizonRadius float64 `yaml:"eventHorizonRadius"`
	// AccretionDiskRadius 吸积盘特征半径
	AccretionDiskRadius float64 `yaml:"accretionDiskRadius"`

	// ConnectionThreshold 连线距离阈值，0 表示不绘制连线
	ConnectionThreshold float64 `yaml:"connectionThreshold"`

	// RotationStep 吸积盘每帧旋转相位增量
	RotationStep float64 `yaml:"rotationStep"`

	// FadeInSeconds 静态背景淡入时长
	FadeInSeconds float64 `yaml:"fadeInSeconds"`
}

// PresetSet 预设集合
type PresetSet struct {
	// DefaultPreset 启动时挂载的预设名称
	DefaultPreset string `yaml:"defaultPreset"`
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
	// Presets 预设名称 -> 场景配置
	Presets map[string]SceneConfig `yaml:"presets"`
}

// 预设名称
const (
	PresetBlackHole = "blackhole"
	PresetDataFlow  = "dataflow"
	PresetStatic    = "static"
)

// DefaultBlackHole 返回黑洞预设的默认配置
func DefaultBlackHole() SceneConfig {
	return SceneConfig{
		Model:               MotionRadial,
		FixedSize:           true,
		Width:               600,
		Height:              600,
		ParticleCount:       300,
		EventHorizonRadius:  60,
		AccretionDiskRadius: 100,
		RotationStep:        0.01,
	}
}

// DefaultDataFlow 返回数据流预设的默认配置
func DefaultDataFlow() SceneConfig {
	return SceneConfig{
		Model:               MotionDrift,
		FixedSize:           false,
		MaxCanvasSize:       300,
		ViewportDivisor:     3,
		ParticleCount:       100,
		ConnectionThreshold: 70,
	}
}

// DefaultStatic 返回静态背景预设的默认配置
func DefaultStatic() SceneConfig {
	return SceneConfig{
		Model:         MotionStatic,
		FixedSize:     true,
		Width:         600,
		Height:        600,
		FadeInSeconds: 0.7,
	}
}

// DefaultPresets 返回内置预设集合
//
// 配置文件缺失或解析失败时作为兜底使用。
func DefaultPresets() *PresetSet {
	return &PresetSet{
		DefaultPreset: PresetBlackHole,
		Presets: map[string]SceneConfig{
			PresetBlackHole: DefaultBlackHole(),
			PresetDataFlow:  DefaultDataFlow(),
			PresetStatic:    DefaultStatic(),
		},
	}
}

// LoadPresetSet 从文件加载预设集合
//
// 参数:
//   - path: 配置文件路径（如 "data/hero_presets.yaml"）
//
// 返回:
//   - *PresetSet: 加载并验证后的预设集合
//   - error: 读取、解析或验证失败时返回错误
func LoadPresetSet(path string) (*PresetSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hero presets: %w", err)
	}
	return ParsePresetSet(data)
}

// ParsePresetSet 解析 YAML 格式的预设集合
//
// 嵌入资源通过 embedded.ReadFile 读取后调用此函数。
func ParsePresetSet(data []byte) (*PresetSet, error) {
	var set PresetSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse hero presets: %w", err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hero presets: %w", err)
	}

	return &set, nil
}

// Validate 验证预设集合
//
// 检查：
//   - 至少包含一个预设
//   - 默认预设存在（为空时取名称排序后的第一个）
//   - 每个预设自身有效
func (s *PresetSet) Validate() error {
	if len(s.Presets) == 0 {
		return fmt.Errorf("no presets defined")
	}

	if s.DefaultPreset == "" {
		s.DefaultPreset = s.Names()[0]
	}
	if _, ok := s.Presets[s.DefaultPreset]; !ok {
		return fmt.Errorf("default preset '%s' is not defined", s.DefaultPreset)
	}

	for name, preset := range s.Presets {
		if err := preset.Validate(); err != nil {
			return fmt.Errorf("preset '%s': %w", name, err)
		}
	}
	return nil
}

// Names 返回排序后的预设名称列表
func (s *PresetSet) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get 获取指定名称的预设
func (s *PresetSet) Get(name string) (SceneConfig, bool) {
	cfg, ok := s.Presets[name]
	return cfg, ok
}

// Validate 验证单个场景配置
func (c SceneConfig) Validate() error {
	switch c.Model {
	case MotionRadial, MotionDrift, MotionStatic:
	default:
		return fmt.Errorf("unknown motion model '%s'", c.Model)
	}

	if c.ParticleCount < 0 {
		return fmt.Errorf("particleCount must be >= 0, got %d", c.ParticleCount)
	}

	if c.FixedSize {
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("fixed size preset needs positive width/height, got %dx%d", c.Width, c.Height)
		}
	} else {
		if c.MaxCanvasSize <= 0 {
			return fmt.Errorf("maxCanvasSize must be > 0, got %d", c.MaxCanvasSize)
		}
		if c.ViewportDivisor <= 0 {
			return fmt.Errorf("viewportDivisor must be > 0, got %.2f", c.ViewportDivisor)
		}
	}

	if c.Model == MotionRadial {
		if c.EventHorizonRadius <= 0 {
			return fmt.Errorf("eventHorizonRadius must be > 0, got %.1f", c.EventHorizonRadius)
		}
		if c.AccretionDiskRadius <= 0 {
			return fmt.Errorf("accretionDiskRadius must be > 0, got %.1f", c.AccretionDiskRadius)
		}
	}

	if c.ConnectionThreshold < 0 {
		return fmt.Errorf("connectionThreshold must be >= 0, got %.1f", c.ConnectionThreshold)
	}
	if c.Model == MotionDrift && c.ConnectionThreshold == 0 {
		return fmt.Errorf("drift preset needs connectionThreshold > 0")
	}
	return nil
}

// CanvasSize 根据视口尺寸计算画布尺寸
//
// 固定尺寸预设直接返回 Width/Height；
// 可变尺寸预设返回正方形 size = min(viewportWidth/divisor, maxCanvasSize)。
//
// 参数:
//   - viewportWidth / viewportHeight: 当前视口尺寸
//
// 返回:
//   - width, height: 画布尺寸（可能 <= 0，调用方需按退化几何处理）
//
// 示例:
//
//	CanvasSize(1920, 1080) = 300x300 (1920/3=640 > 300)
//	CanvasSize(600, 800)   = 200x200
func (c SceneConfig) CanvasSize(viewportWidth, viewportHeight int) (int, int) {
	if c.FixedSize {
		return c.Width, c.Height
	}
	size := int(math.Min(float64(viewportWidth)/c.ViewportDivisor, float64(c.MaxCanvasSize)))
	return size, size
}

// LoadEmbeddedPresetSet 从嵌入资源加载预设集合
//
// 调用前必须先调用 embedded.Init()。
func LoadEmbeddedPresetSet(path string) (*PresetSet, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hero presets %s: %w", path, err)
	}
	return ParsePresetSet(data)
}

// LoadPresetsOrDefault 加载预设集合，任何失败都回退到内置默认值
//
// path 为空时从嵌入资源读取 PresetConfigPath，否则从文件系统读取。
func LoadPresetsOrDefault(path string) *PresetSet {
	var (
		set *PresetSet
		err error
	)
	if path != "" {
		set, err = LoadPresetSet(path)
	} else {
		set, err = LoadEmbeddedPresetSet(PresetConfigPath)
	}
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in presets)", err)
		return DefaultPresets()
	}
	log.Printf("[Config] Loaded %d presets, default: %s", len(set.Presets), set.DefaultPreset)
	return set
}

// Pick 返回候选名称中第一个存在的预设，都不存在时返回默认预设
//
// 用于决定启动预设：命令行 > 保存的偏好 > 配置默认值。
func (s *PresetSet) Pick(candidates ...string) string {
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if _, ok := s.Presets[name]; ok {
			return name
		}
		log.Printf("[Config] Warning: preset '%s' not found, ignoring", name)
	}
	return s.DefaultPreset
}
