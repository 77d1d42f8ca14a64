// Package scene implements the scene stack: one live scene above an ordered
// list of paused scenes, changed only through events drained once per tick.
package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-dodger/internal/audio"
	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Scene is a self-contained game mode.
type Scene interface {
	// Update advances the scene by one fixed tick. Transitions are requested
	// through q and applied at the start of the next tick.
	Update(ctx *Context, dt float64, q *Queue) error
	// Draw renders the scene onto dst.
	Draw(ctx *Context, dst core.Surface) error

	// KeyDown and KeyUp receive discrete key events while the scene is live.
	KeyDown(ctx *Context, ev core.KeyEvent, q *Queue)
	KeyUp(ctx *Context, ev core.KeyEvent, q *Queue)

	OnEntry(ctx *Context)
	OnExit(ctx *Context)

	// UpdateInBackground reports whether Update runs while paused.
	UpdateInBackground() bool
	// DrawInBackground reports whether Draw runs while paused.
	DrawInBackground() bool
}

// Base provides no-op defaults. Concrete scenes embed it and override what
// they need.
type Base struct{}

func (Base) Update(*Context, float64, *Queue) error { return nil }
func (Base) Draw(*Context, core.Surface) error { return nil }
func (Base) KeyDown(*Context, core.KeyEvent, *Queue) {}
func (Base) KeyUp(*Context, core.KeyEvent, *Queue) {}
func (Base) OnEntry(*Context) {}
func (Base) OnExit(*Context) {}
func (Base) UpdateInBackground() bool { return false }
func (Base) DrawInBackground() bool { return false }

// Context carries the host services every scene call may use.
type Context struct {
	// Input is the set of held actions, refreshed by the host before each tick.
	Input  core.InputFrame
	Audio  audio.Service
	Logger *log.Logger

	quit     func()
	quitting bool
}

// NewContext creates a context. A nil service or logger is replaced by a
// silent one; quit may be nil.
func NewContext(svc audio.Service, logger *log.Logger, quit func()) *Context {
	if svc == nil {
		svc = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Input:  core.NewInputFrame(),
		Audio:  svc,
		Logger: logger,
		quit:   quit,
	}
}

// Quit asks the host to shut down.
func (c *Context) Quit() {
	if c.quitting {
		return
	}
	c.quitting = true
	if c.quit != nil {
		c.quit()
	}
}

// Quitting reports whether Quit was called.
func (c *Context) Quitting() bool {
	return c.quitting
}
