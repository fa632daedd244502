package emu

// Config contains settings that affect the harness behavior.
type Config struct {
	Scripted      bool // drive the built-in demo scene each frame
	FramesPerFlip int  // scene: frames between tile-plane flips, 0 = never
}
