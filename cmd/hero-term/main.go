// hero-term 在终端中运行动画
//
// 每个终端单元格用背景色表示一块画布，视口按单元格近似为 8x16 像素换算。
//
// 用法:
//
//	go run ./cmd/hero-term --preset dataflow
//
// 按键: 1/2/3 切换预设，Tab 下一个，Esc / q / Ctrl+C 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/herofx/data"
	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/embedded"
	"github.com/decker502/herofx/pkg/game"
	"github.com/decker502/herofx/pkg/render"
)

// 单元格对应的近似像素尺寸
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

type terminalHost struct {
	screen tcell.Screen
	loop   *game.FrameLoop
	scenes *game.SceneManager
}

func newTerminalHost(screen tcell.Screen, presets *config.PresetSet, seed int64) *terminalHost {
	cols, rows := screen.Size()
	loop := game.NewFrameLoop(cols*cellPixelWidth, rows*cellPixelHeight)
	scenes := game.NewSceneManager(presets, loop, render.NewCellSurfaceFactory(screen), game.NewRandFactory(seed, presets.Seed))
	return &terminalHost{screen: screen, loop: loop, scenes: scenes}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			h.report(h.scenes.Next())
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r >= '1' && r <= '9':
				names := h.scenes.Names()
				if i := int(r - '1'); i < len(names) {
					h.report(h.scenes.SwitchTo(names[i]))
				}
			}
		}

	case *tcell.EventResize:
		h.screen.Clear()
		h.resize()
	}
	return true
}

// resize 把新的终端尺寸转交给帧时钟
//
// 固定尺寸预设不监听视口变化，但单元格映射依赖终端尺寸，需要重新挂载。
func (h *terminalHost) resize() {
	cols, rows := h.screen.Size()
	h.loop.SetViewport(cols*cellPixelWidth, rows*cellPixelHeight)

	current := h.scenes.Current()
	if current != nil && !current.Engine().Resizable() {
		h.report(h.scenes.SwitchTo(h.scenes.CurrentName()))
	}
}

func (h *terminalHost) report(err error) {
	if err != nil {
		log.Printf("[Term] Error: %v", err)
	}
}

// paint 推进一帧并绘制状态行
func (h *terminalHost) paint() {
	h.loop.Advance()

	current := h.scenes.Current()
	if current == nil {
		return
	}
	status := fmt.Sprintf(" %s  ticks:%d  [1/2/3] preset [Tab] next [q] quit ", h.scenes.CurrentName(), current.Ticks())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range status {
		h.screen.SetContent(i, 0, r, nil, style)
	}
	h.screen.Show()
}

func (h *terminalHost) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.paint()
		}
	}
}

// loadPresets 读取预设集合
// path 为空时使用嵌入的配置，与当前工作目录无关
func loadPresets(path string) *config.PresetSet {
	embedded.Init(data.FS)
	return config.LoadPresetsOrDefault(path)
}

func main() {
	preset := flag.String("preset", "", "启动预设 (blackhole, dataflow, static)")
	configPath := flag.String("config", "", "外部预设文件路径（默认使用嵌入的 data/hero_presets.yaml）")
	seed := flag.Int64("seed", 0, "随机种子")
	logPath := flag.String("log", "", "日志文件（终端被占用，默认丢弃日志）")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	presets := loadPresets(*configPath)
	host := newTerminalHost(screen, presets, *seed)
	name := presets.Pick(*preset)
	if err := host.scenes.SwitchTo(name); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start preset %s: %v\n", name, err)
		os.Exit(1)
	}
	defer host.scenes.Close()

	host.run()
}
