package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/herofx/pkg/config"
	"github.com/decker502/herofx/pkg/game"
	"github.com/decker502/herofx/pkg/utils"
)

var (
	hudTextColor   = color.RGBA{R: 200, G: 210, B: 255, A: 255}
	hudShadowColor = color.RGBA{A: 180}
)

// HUD 左上角的调试信息
type HUD struct {
	Visible bool
	face    text.Face
}

// NewHUD 创建使用 basicfont 7x13 的 HUD（默认隐藏）
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Lines 返回要显示的文本行
func (h *HUD) Lines(preset string, fs *game.FrameScheduler) []string {
	engine := fs.Engine()
	lines := []string{
		fmt.Sprintf("preset: %s (%s)", preset, fs.State()),
		fmt.Sprintf("particles: %d", len(engine.Particles())),
		fmt.Sprintf("ticks: %d  skipped: %d", fs.Ticks(), fs.Skipped()),
	}
	if engine.Connections() > 0 {
		lines = append(lines, fmt.Sprintf("links: %d", engine.Connections()))
	}
	lines = append(lines, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	if utils.IsMobile() {
		lines = append(lines, "[tap] next preset")
	} else {
		lines = append(lines, "[1/2/3] preset  [Tab/click] next  [H] hud  [Esc] quit")
	}
	return lines
}

// Draw 绘制 HUD（带阴影）
func (h *HUD) Draw(screen *ebiten.Image, preset string, fs *game.FrameScheduler) {
	if !h.Visible || fs == nil {
		return
	}

	for i, line := range h.Lines(preset, fs) {
		x := float64(config.HUDMarginX)
		y := float64(config.HUDMarginY + i*config.HUDLineHeight)

		shadowOp := &text.DrawOptions{}
		shadowOp.GeoM.Translate(x+1, y+1)
		shadowOp.ColorScale.ScaleWithColor(hudShadowColor)
		text.Draw(screen, line, h.face, shadowOp)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, h.face, op)
	}
}
