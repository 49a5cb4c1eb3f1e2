// hero-snapshot 无头渲染指定预设的某一帧并导出 PNG
//
// 不需要窗口和图形驱动，适合生成静态回退图或在 CI 中检查画面。
//
// 用法:
//
//	go run ./cmd/hero-snapshot --preset blackhole --frames 240 --out blackhole.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/decker502/herofx/data"
	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/embedded"
	"github.com/decker502/herofx/pkg/game"
	"github.com/decker502/herofx/pkg/render"
)

// renderSnapshot 挂载预设，推进 frames 帧后返回最后一帧图像
//
// 参数:
//   - presets: 预设集合
//   - name: 预设名称
//   - frames: 推进的帧数（至少 1）
//   - viewportWidth, viewportHeight: 模拟的视口尺寸
//   - seed: 随机种子
func renderSnapshot(presets *config.PresetSet, name string, frames, viewportWidth, viewportHeight int, seed int64) (*image.RGBA, error) {
	if frames < 1 {
		frames = 1
	}

	var last *render.RasterSurface
	factory := func(width, height int) (render.Surface, error) {
		s, err := render.NewRasterSurface(width, height)
		if err != nil {
			return nil, err
		}
		last = s
		return s, nil
	}

	loop := game.NewFrameLoop(viewportWidth, viewportHeight)
	scenes := game.NewSceneManager(presets, loop, factory, game.NewRandFactory(seed, presets.Seed))
	if err := scenes.SwitchTo(name); err != nil {
		return nil, err
	}
	defer scenes.Close()

	current := scenes.Current()
	if current.State() != game.StateRunning {
		return nil, fmt.Errorf("preset %s did not start: %w", name, render.ErrSurfaceUnavailable)
	}

	for i := 0; i < frames; i++ {
		loop.Advance()
	}
	if last == nil || current.Ticks() == 0 {
		return nil, fmt.Errorf("preset %s rendered no frames (viewport %dx%d)", name, viewportWidth, viewportHeight)
	}
	return last.Image(), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}

// loadPresets 读取预设集合
// path 为空时使用嵌入的配置，与当前工作目录无关
func loadPresets(path string) *config.PresetSet {
	embedded.Init(data.FS)
	return config.LoadPresetsOrDefault(path)
}

func main() {
	preset := flag.String("preset", "", "预设名称 (blackhole, dataflow, static)")
	configPath := flag.String("config", "", "外部预设文件路径（默认使用嵌入的 data/hero_presets.yaml）")
	frames := flag.Int("frames", 120, "导出前推进的帧数")
	viewportWidth := flag.Int("width", 900, "模拟视口宽度")
	viewportHeight := flag.Int("height", 900, "模拟视口高度")
	seed := flag.Int64("seed", 1, "随机种子（0 = 使用配置文件或当前时间）")
	out := flag.String("out", "hero.png", "输出文件")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	presets := loadPresets(*configPath)
	name := presets.Pick(*preset)

	img, err := renderSnapshot(presets, name, *frames, *viewportWidth, *viewportHeight, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("%s: %d frames, %dx%d -> %s\n", name, *frames, b.Dx(), b.Dy(), *out)
}
