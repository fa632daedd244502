package main

import (
	"flag"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/emu"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/engine"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/palette"
	"github.com/FabianRolfMatthiasNoll/DXColorizer/internal/ui"
)

type CLIFlags struct {
	Scale int
	Title string

	// engine timing tunables (measure, don't guess)
	WindowUnits int
	PerTileCost int

	// headless
	Headless bool
	Frames   int
	PNGOut   string
	Expect   string // expected framebuffer CRC32 hex (e.g., "1a2b3c4d")
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.IntVar(&f.Scale, "scale", 3, "window scale")
	flag.StringVar(&f.Title, "title", "dxview", "window title")
	flag.IntVar(&f.WindowUnits, "window", 0, "override refresh-window budget units")
	flag.IntVar(&f.PerTileCost, "tilecost", 0, "override per-tile cost units")

	// headless options
	flag.BoolVar(&f.Headless, "headless", false, "run without a window")
	flag.IntVar(&f.Frames, "frames", 300, "frames to run in headless mode")
	flag.StringVar(&f.PNGOut, "outpng", "", "write last framebuffer to PNG at path")
	flag.StringVar(&f.Expect, "expect", "", "assert framebuffer CRC32 (hex)")
	flag.Parse()
	return f
}

func runHeadless(m *emu.Machine, frames int, pngPath, expectCRC string) error {
	if frames <= 0 {
		frames = 1
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		m.StepFrame()
	}
	dur := time.Since(start)

	fb := m.Framebuffer()
	crc := crc32.ChecksumIEEE(fb)
	fps := float64(frames) / dur.Seconds()

	log.Printf("headless: frames=%d elapsed=%s fps=%.2f fb_crc32=%08x",
		frames, dur.Truncate(time.Millisecond), fps, crc)

	if pngPath != "" {
		if err := saveFramePNG(fb, emu.ScreenW, emu.ScreenH, pngPath); err != nil {
			return fmt.Errorf("write PNG: %w", err)
		}
		log.Printf("wrote %s", pngPath)
	}

	if expectCRC != "" {
		want := strings.TrimPrefix(strings.ToLower(expectCRC), "0x")
		got := fmt.Sprintf("%08x", crc)
		if got != want {
			return fmt.Errorf("checksum mismatch: got %s, want %s", got, want)
		}
	}
	return nil
}

func saveFramePNG(fb []byte, w, h int, path string) error {
	img := &image.RGBA{
		Pix:    make([]byte, len(fb)),
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
	copy(img.Pix, fb)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func main() {
	f := parseFlags()

	ecfg := engine.DefaultConfig()
	if f.WindowUnits > 0 {
		ecfg.WindowUnits = f.WindowUnits
	}
	if f.PerTileCost > 0 {
		ecfg.PerTileCost = f.PerTileCost
	}
	sched := engine.NewScheduler(ecfg)
	if err := sched.CheckStride(sched.TilesPerCycle() + ecfg.PlaneRows); err != nil {
		// Edge column plus sweep must fit the window together.
		log.Printf("budget: edge pass borrows from the sweep (%v)", err)
	}
	log.Printf("budget: window=%d units, %d units/tile -> %d tiles/cycle",
		ecfg.WindowUnits, ecfg.PerTileCost, sched.TilesPerCycle())

	m := emu.New(emu.Config{Scripted: true}, ecfg, palette.DefaultSet())

	if f.Headless {
		if err := runHeadless(m, f.Frames, f.PNGOut, f.Expect); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := ui.NewApp(ui.Config{Title: f.Title, Scale: f.Scale}, m)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
