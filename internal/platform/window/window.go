// Package window runs the game in a native window through Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

// Options configures the window host.
type Options struct {
	Title    string
	Scale    float64 // Window size relative to the 800x600 arena
	TickRate int
	Logger   *log.Logger
}

// binding maps one action to its keys.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// Host implements ebiten.Game over a scene stack. Ebitengine calls Update at
// the fixed tick rate, so every Update is exactly one simulation tick.
type Host struct {
	stack   *scene.Stack
	ctx     *scene.Context
	surface *ImageSurface
	dt      float64
	logger  *log.Logger
}

// NewHost creates a window host.
func NewHost(stack *scene.Stack, ctx *scene.Context, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	return &Host{
		stack:   stack,
		ctx:     ctx,
		surface: NewImageSurface(nil),
		dt:      1.0 / float64(rate),
		logger:  logger,
	}
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Update reads the keyboard and runs one tick.
func (h *Host) Update() error {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		if anyPressed(b.keys, ebiten.IsKeyPressed) && b.action.IsMovement() {
			frame.Set(b.action)
		}
	}
	h.ctx.Input = frame

	for _, b := range bindings {
		if anyPressed(b.keys, inpututil.IsKeyJustPressed) {
			h.stack.KeyDown(h.ctx, core.KeyEvent{Action: b.action})
		}
		if anyPressed(b.keys, inpututil.IsKeyJustReleased) {
			h.stack.KeyUp(h.ctx, core.KeyEvent{Action: b.action})
		}
	}

	if err := h.stack.Tick(h.ctx, h.dt); err != nil {
		h.logger.Error("tick failed", "error", err)
		return err
	}
	if h.ctx.Quitting() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the stack onto the window.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(core.Background)
	h.surface.SetTarget(screen)
	if err := h.stack.Draw(h.ctx, h.surface); err != nil {
		h.logger.Warn("draw failed", "error", err)
	}
}

// Layout keeps the logical screen at arena size; Ebitengine scales it to the
// window.
func (h *Host) Layout(int, int) (int, int) {
	return int(core.ArenaWidth), int(core.ArenaHeight)
}

// Run opens the window and blocks until the player quits or a tick fails.
func Run(stack *scene.Stack, ctx *scene.Context, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Bullet Dodger"
	}

	ebiten.SetWindowSize(int(core.ArenaWidth*scale), int(core.ArenaHeight*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	err := ebiten.RunGame(NewHost(stack, ctx, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
