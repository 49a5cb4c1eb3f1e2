package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/herofx/data"
	"github.com/decker502/herofx/pkg/app"
	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志")
	preset := flag.String("preset", "", "启动预设 (blackhole, dataflow, static)")
	configPath := flag.String("config", "", "外部预设文件路径（默认使用嵌入的 data/hero_presets.yaml）")
	seed := flag.Int64("seed", 0, "随机种子（0 = 使用配置文件或当前时间）")
	noSave := flag.Bool("no-save", false, "不读写观看偏好")
	flag.Parse()

	embedded.Init(data.FS)

	heroApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Preset:     *preset,
		PresetPath: *configPath,
		Seed:       *seed,
		NoSave:     *noSave,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("HeroFX")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 窗口失去焦点时不推进动画
	ebiten.SetRunnableOnUnfocused(false)

	if err := ebiten.RunGame(heroApp); err != nil && !app.IsTermination(err) {
		log.Fatal(err)
	}
	heroApp.Close()
}
