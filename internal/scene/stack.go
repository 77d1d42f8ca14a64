package scene

import (
	"fmt"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Stack owns the live scene and the paused scenes beneath it. Scenes move
// between slots and are never held by two slots at once.
type Stack struct {
	live   Scene
	paused []Scene // Bottom first
	queue  Queue
}

// New creates a stack with the given live scene and paused scenes listed
// bottom first. No hooks run.
func New(live Scene, paused ...Scene) *Stack {
	return &Stack{
		live:   live,
		paused: append([]Scene(nil), paused...),
	}
}

// Live returns the live scene, or nil.
func (s *Stack) Live() Scene {
	return s.live
}

// Paused returns the paused scenes, bottom first.
func (s *Stack) Paused() []Scene {
	return s.paused
}

// Queue returns the pending event queue.
func (s *Stack) Queue() *Queue {
	return &s.queue
}

// Tick runs one fixed step: pending events are applied in order, then the
// live scene updates, then paused scenes that opt in update from the top
// of the stack down. The first update error stops the tick.
func (s *Stack) Tick(ctx *Context, dt float64) error {
	for _, ev := range s.queue.drain() {
		s.apply(ctx, ev)
	}

	if s.live != nil {
		if err := s.live.Update(ctx, dt, &s.queue); err != nil {
			return fmt.Errorf("scene: update %s: %w", name(s.live), err)
		}
	}

	for i := len(s.paused) - 1; i >= 0; i-- {
		p := s.paused[i]
		if !p.UpdateInBackground() {
			continue
		}
		if err := p.Update(ctx, dt, &s.queue); err != nil {
			return fmt.Errorf("scene: background update %s: %w", name(p), err)
		}
	}
	return nil
}

func (s *Stack) apply(ctx *Context, ev Event) {
	switch ev.Kind {
	case EventPush:
		ev.Scene.OnEntry(ctx)
		if s.live != nil {
			s.live.OnExit(ctx)
			s.paused = append(s.paused, s.live)
		}
		s.live = ev.Scene
	case EventPop:
		if len(s.paused) == 0 {
			ctx.Logger.Debug("pop on empty stack ignored")
			return
		}
		top := s.paused[len(s.paused)-1]
		s.paused[len(s.paused)-1] = nil
		s.paused = s.paused[:len(s.paused)-1]
		top.OnEntry(ctx)
		s.live = top
	case EventReplace:
		ev.Scene.OnEntry(ctx)
		s.live = ev.Scene
	}
	ctx.Logger.Debug("scene transition", "event", ev.Kind, "live", name(s.live), "paused", len(s.paused))
}

// Draw renders paused scenes that opt in, bottom first, then the live scene.
// A draw error aborts the frame.
func (s *Stack) Draw(ctx *Context, dst core.Surface) error {
	for _, p := range s.paused {
		if !p.DrawInBackground() {
			continue
		}
		if err := p.Draw(ctx, dst); err != nil {
			return fmt.Errorf("scene: draw %s: %w", name(p), err)
		}
	}
	if s.live != nil {
		if err := s.live.Draw(ctx, dst); err != nil {
			return fmt.Errorf("scene: draw %s: %w", name(s.live), err)
		}
	}
	return nil
}

// KeyDown routes a key press to the live scene.
func (s *Stack) KeyDown(ctx *Context, ev core.KeyEvent) {
	if s.live != nil {
		s.live.KeyDown(ctx, ev, &s.queue)
	}
}

// KeyUp routes a key release to the live scene.
func (s *Stack) KeyUp(ctx *Context, ev core.KeyEvent) {
	if s.live != nil {
		s.live.KeyUp(ctx, ev, &s.queue)
	}
}

func name(s Scene) string {
	if s == nil {
		return "<none>"
	}
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
