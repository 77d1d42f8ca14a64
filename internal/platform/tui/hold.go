package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// HoldTracker emulates held movement keys. Terminals only report presses
// (and auto-repeats), so a press counts as held until hold has passed
// without another press of the same key.
type HoldTracker struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold duration.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// Press records a press of a movement action at now. It reports whether the
// key was already held and which opposing action it released, if any.
func (h *HoldTracker) Press(a core.Action, now time.Time) (repeat bool, released core.Action) {
	if !a.IsMovement() {
		return false, core.ActionNone
	}
	_, repeat = h.until[a]
	h.until[a] = now.Add(h.hold)

	released = core.ActionNone
	if o := opposite(a); o != core.ActionNone {
		if _, ok := h.until[o]; ok {
			delete(h.until, o)
			released = o
		}
	}
	return repeat, released
}

// Expire releases every key whose hold ran out by now and returns them in
// action order.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, t := range h.until {
		if !now.Before(t) {
			released = append(released, a)
		}
	}
	for _, a := range released {
		delete(h.until, a)
	}
	slices.Sort(released)
	return released
}

// Frame returns the currently held actions.
func (h *HoldTracker) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a := range h.until {
		f.Set(a)
	}
	return f
}

// Reset releases every key and returns the released actions in action
// order.
func (h *HoldTracker) Reset() []core.Action {
	released := make([]core.Action, 0, len(h.until))
	for a := range h.until {
		released = append(released, a)
	}
	clear(h.until)
	slices.Sort(released)
	return released
}
