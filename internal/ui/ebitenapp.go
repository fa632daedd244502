package ui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/emu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App presents the machine's framebuffer in a window: the simulated game
// and the engine's colorization, live.
type App struct {
	cfg    Config
	m      *emu.Machine
	tex    *ebiten.Image
	paused bool
	fast   bool
	stats  bool
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(emu.ScreenW*cfg.Scale, emu.ScreenH*cfg.Scale)
	return &App{cfg: cfg, m: m}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	// Pause toggle (P)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	// Fast-forward (Tab): while held, run multiple frames per update
	a.fast = ebiten.IsKeyPressed(ebiten.KeyTab)

	// Frame-step when paused (N)
	if a.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.m.StepFrame()
	}
	// Engine state overlay (S)
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.stats = !a.stats
	}
	// Screenshot (F12)
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		_ = a.saveScreenshot()
	}

	if !a.paused {
		if a.fast {
			for i := 0; i < 5; i++ {
				a.m.StepFrame()
			}
		} else {
			a.m.StepFrame()
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(emu.ScreenW, emu.ScreenH)
	}
	a.tex.WritePixels(a.m.Framebuffer())
	screen.DrawImage(a.tex, nil)

	if a.stats {
		st := a.m.State()
		d := a.m.Display()
		msg := fmt.Sprintf("sweep=%04X plane=%04X scx=%d boss=%d pw=%d form=%d",
			st.SweepPos, st.PlaneBase, d.Scroll(), d.BossSlot(), d.Powerup(), d.PlayerForm())
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return emu.ScreenW, emu.ScreenH }

func (a *App) saveScreenshot() error {
	fb := a.m.Framebuffer()
	img := &image.RGBA{
		Pix:    make([]byte, len(fb)),
		Stride: 4 * emu.ScreenW,
		Rect:   image.Rect(0, 0, emu.ScreenW, emu.ScreenH),
	}
	copy(img.Pix, fb)
	ts := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("screenshot_%s.png", ts)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
