package emu

import (
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/classify"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/display"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/engine"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
)

// Screen geometry in pixels.
const (
	ScreenW = 160
	ScreenH = 144
)

// Dots in one full display frame.
const frameDots = 154 * 456

// Machine wires the simulated display to the colorization engine and
// renders the result. Each StepFrame advances the display through one
// refresh; the engine's orchestrator runs at the start of the vertical
// window, exactly as the injected code does on the target.
type Machine struct {
	cfg  Config
	disp *display.Display
	orch *engine.Orchestrator
	st   engine.State

	fb    []byte // RGBA ScreenW*ScreenH*4
	scene scene
}

// New builds a machine around a palette set and engine configuration.
func New(cfg Config, ecfg engine.Config, set *palette.Set) *Machine {
	m := &Machine{
		cfg: cfg,
		fb:  make([]byte, ScreenW*ScreenH*4),
	}
	m.disp = display.New(func() { m.orch.RunCycle(&m.st) })

	cls := classify.New(set)
	gate := engine.Gate{Status: m.disp.Mode, MaxPolls: ecfg.GateMaxPolls}
	m.orch = &engine.Orchestrator{
		Flags:      m.disp,
		Background: engine.NewBackground(ecfg, m.disp, gate, cls),
		Loader:     &engine.Loader{Ports: m.disp, Set: set},
		Shadow:     &engine.Shadow{Gate: gate, Cls: cls, Buffers: m.disp.ShadowBuffers()},
		Banks:      m.disp,
		DataBank:   13,
		DMA:        m.disp.RunOAMDMA,
	}
	if cfg.Scripted {
		m.scene.init(m.disp, cfg.FramesPerFlip)
	}
	return m
}

// Display exposes the simulated display (tests, viewer overlays).
func (m *Machine) Display() *display.Display { return m.disp }

// State exposes the engine's persistent sweep state.
func (m *Machine) State() *engine.State { return &m.st }

// StepFrame advances the scene, runs one full display refresh (which runs
// the engine at vblank), and renders the framebuffer.
func (m *Machine) StepFrame() {
	if m.cfg.Scripted {
		m.scene.step(m.disp)
	}
	m.disp.Tick(frameDots)
	m.renderFrame()
}

// Framebuffer returns the RGBA pixels of the last rendered frame.
func (m *Machine) Framebuffer() []byte { return m.fb }
