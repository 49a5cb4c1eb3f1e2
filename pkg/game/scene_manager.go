package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/render"
	"github.com/decker502/herofx/pkg/systems"
)

// ErrUnknownPreset 请求的预设不存在
var ErrUnknownPreset = errors.New("unknown preset")

// RandFactory 为每次挂载创建新的随机源
type RandFactory func() systems.RandSource

// NewRandFactory 使用第一个非零种子创建随机源工厂
//
// 固定种子时每次挂载都从同一序列开始，便于复现画面；全部为 0 时按当前时间播种。
func NewRandFactory(seeds ...int64) RandFactory {
	var seed int64
	for _, s := range seeds {
		if s != 0 {
			seed = s
			break
		}
	}
	return func() systems.RandSource {
		if seed == 0 {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return rand.New(rand.NewSource(seed))
	}
}

// SceneManager 保证任意时刻只有一个预设处于挂载状态
//
// 切换预设 = 停止当前调度器（卸载） + 为新预设创建引擎和调度器（挂载）。
type SceneManager struct {
	presets *config.PresetSet
	host    FrameHost
	factory render.SurfaceFactory
	newRand RandFactory

	current     *FrameScheduler
	currentName string
}

// NewSceneManager 创建预设管理器，初始没有挂载任何预设
//
// 参数:
//   - presets: 已验证的预设集合
//   - host: 所有调度器共享的帧时钟
//   - factory: 绘制表面工厂
//   - newRand: 随机源工厂
func NewSceneManager(presets *config.PresetSet, host FrameHost, factory render.SurfaceFactory, newRand RandFactory) *SceneManager {
	return &SceneManager{
		presets: presets,
		host:    host,
		factory: factory,
		newRand: newRand,
	}
}

// SwitchTo 卸载当前预设并挂载指定预设
//
// 返回:
//   - error: 预设不存在（ErrUnknownPreset）或配置无效时返回错误，当前预设保持不变
func (sm *SceneManager) SwitchTo(name string) error {
	cfg, ok := sm.presets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	engine, err := NewEngine(cfg, sm.newRand())
	if err != nil {
		return fmt.Errorf("failed to build preset '%s': %w", name, err)
	}

	if sm.current != nil {
		sm.current.Stop()
	}

	sm.current = NewFrameScheduler(sm.host, engine, sm.factory)
	sm.currentName = name
	sm.current.Start()

	log.Printf("[SceneManager] Switched to preset: %s (%s)", name, sm.current.State())
	return nil
}

// Next 按名称顺序切换到下一个预设
func (sm *SceneManager) Next() error {
	names := sm.presets.Names()
	if len(names) == 0 {
		return fmt.Errorf("no presets defined")
	}

	next := names[0]
	for i, name := range names {
		if name == sm.currentName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return sm.SwitchTo(next)
}

// Current 返回当前调度器，未挂载时为 nil
func (sm *SceneManager) Current() *FrameScheduler {
	return sm.current
}

// CurrentName 返回当前预设名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Names 返回全部预设名称
func (sm *SceneManager) Names() []string {
	return sm.presets.Names()
}

// Close 卸载当前预设
func (sm *SceneManager) Close() {
	if sm.current == nil {
		return
	}
	sm.current.Stop()
	sm.current = nil
	sm.currentName = ""
}
