// Package app 提供动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/game"
	"github.com/decker502/herofx/pkg/render/ebitensurface"
	"github.com/decker502/herofx/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Preset 启动时挂载的预设，为空则使用保存的偏好或配置默认值
	Preset string
	// PresetPath 外部预设文件路径，为空则使用嵌入的 data/hero_presets.yaml
	PresetPath string
	// Seed 随机种子，0 表示使用配置文件中的种子（仍为 0 则按时间）
	Seed int64
	// NoSave 不读写观看偏好
	NoSave bool
}

var backgroundColor = color.RGBA{R: 5, G: 6, B: 12, A: 255}

// App 是动画应用的核心包装器，实现 ebiten.Game 接口
//
// Draw 每调用一次就推进一次帧时钟，相当于浏览器的一次绘制；
// Layout 报告的窗口尺寸即视口尺寸，在下一次 Update 时转交给帧时钟。
type App struct {
	loop     *game.FrameLoop
	scenes   *game.SceneManager
	settings *game.SettingsManager
	hud      *HUD

	verbose bool

	viewportWidth  int
	viewportHeight int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化动画应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	presets := config.LoadPresetsOrDefault(cfg.PresetPath)
	settings := game.NewSettingsManager(openStorage(cfg.NoSave))

	loop := game.NewFrameLoop(config.GameWindowWidth, config.GameWindowHeight)
	scenes := game.NewSceneManager(presets, loop, ebitensurface.NewFactory(), game.NewRandFactory(cfg.Seed, presets.Seed))

	a := &App{
		loop:           loop,
		scenes:         scenes,
		settings:       settings,
		hud:            NewHUD(),
		verbose:        cfg.Verbose,
		viewportWidth:  config.GameWindowWidth,
		viewportHeight: config.GameWindowHeight,
	}
	a.hud.Visible = settings.GetSettings().ShowHUD

	name := presets.Pick(cfg.Preset, settings.GetSettings().Preset)
	if err := scenes.SwitchTo(name); err != nil {
		return nil, fmt.Errorf("failed to mount preset %s: %w", name, err)
	}
	log.Printf("[App] Started with preset: %s", name)

	return a, nil
}

// openStorage 打开偏好存储，失败时返回 nil（降级模式）
func openStorage(disabled bool) *gdata.Manager {
	if disabled {
		return nil
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v (preferences will not be saved)", err)
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: "herofx"})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (preferences will not be saved)", err)
		return nil
	}
	return manager
}

// Update 处理输入和视口变化
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	a.loop.SetHidden(ebiten.IsWindowMinimized())
	a.loop.SetViewport(a.viewportWidth, a.viewportHeight)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.hud.Visible = !a.hud.Visible
		a.settings.SetShowHUD(a.hud.Visible)
		a.saveSettings()
	}

	names := a.scenes.Names()
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			a.switchTo(names[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || a.tapped() {
		if err := a.scenes.Next(); err != nil {
			log.Printf("[App] Error: %v", err)
		} else {
			a.rememberPreset()
		}
	}

	return nil
}

// tapped 点击或轻触屏幕切换到下一个预设
func (a *App) tapped() bool {
	pressed, _, _ := isJustTouchedOrClicked()
	return pressed
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

func (a *App) switchTo(name string) {
	if name == a.scenes.CurrentName() {
		return
	}
	if err := a.scenes.SwitchTo(name); err != nil {
		log.Printf("[App] Error: %v", err)
		return
	}
	a.rememberPreset()
}

func (a *App) rememberPreset() {
	a.settings.SetPreset(a.scenes.CurrentName())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 推进一次帧时钟，并把当前预设的画布居中绘制到屏幕
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.loop.Advance()

	current := a.scenes.Current()
	if current == nil {
		return
	}

	if surface, ok := current.Surface().(*ebitensurface.Surface); ok {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		cw, ch := surface.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(sw-cw)/2, float64(sh-ch)/2)
		screen.DrawImage(surface.Image(), op)
	}

	a.hud.Draw(screen, a.scenes.CurrentName(), current)
}

// Layout 使用窗口尺寸作为逻辑屏幕尺寸，窗口尺寸即视口尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewportWidth = outsideWidth
	a.viewportHeight = outsideHeight
	return outsideWidth, outsideHeight
}

// Close 卸载当前预设
func (a *App) Close() {
	a.scenes.Close()
}

// SceneManager 返回预设管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.scenes
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// IsTermination 判断 RunGame 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
