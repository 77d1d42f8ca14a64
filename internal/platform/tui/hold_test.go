package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

func TestHoldTrackerExpiry(t *testing.T) {
	h := NewHoldTracker(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	repeat, released := h.Press(core.ActionUp, t0)
	if repeat || released != core.ActionNone {
		t.Errorf("first Press() = %v, %v; expected false, ActionNone", repeat, released)
	}
	if !h.Frame().Has(core.ActionUp) {
		t.Fatal("Up not held after press")
	}

	repeat, _ = h.Press(core.ActionUp, t0.Add(150*time.Millisecond))
	if !repeat {
		t.Error("second Press() within hold not reported as repeat")
	}

	if got := h.Expire(t0.Add(300 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %v before the extended hold ran out", got)
	}
	if got := h.Expire(t0.Add(350 * time.Millisecond)); !reflect.DeepEqual(got, []core.Action{core.ActionUp}) {
		t.Errorf("Expire() = %v, expected [Up]", got)
	}
	if h.Frame().Has(core.ActionUp) {
		t.Error("Up still held after expiry")
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Unix(0, 0)

	h.Press(core.ActionLeft, now)
	h.Press(core.ActionUp, now)
	_, released := h.Press(core.ActionRight, now)

	if released != core.ActionLeft {
		t.Errorf("released = %v, expected Left", released)
	}
	f := h.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("Frame() = %v, expected Up and Right", f.Actions)
	}
	if dir := f.Direction(); dir != core.V(1, -1) {
		t.Errorf("Direction() = %v, expected (1, -1)", dir)
	}
}

func TestHoldTrackerIgnoresDiscreteActions(t *testing.T) {
	h := NewHoldTracker(time.Second)
	h.Press(core.ActionConfirm, time.Unix(0, 0))
	if len(h.Frame().Actions) != 0 {
		t.Errorf("discrete action held: %v", h.Frame().Actions)
	}
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	h := NewHoldTracker(10 * time.Millisecond)
	now := time.Unix(0, 0)
	h.Press(core.ActionRight, now)
	h.Press(core.ActionDown, now)
	h.Press(core.ActionUp, now)

	got := h.Expire(now.Add(time.Second))
	// Pressing Up released Down.
	expected := []core.Action{core.ActionUp, core.ActionRight}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expire() = %v, expected %v", got, expected)
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionUp, t0)

	got := h.Reset()
	if !reflect.DeepEqual(got, []core.Action{core.ActionUp, core.ActionRight}) {
		t.Errorf("Reset() = %v, expected [Up Right]", got)
	}
	if f := h.Frame(); f.Has(core.ActionUp) || f.Has(core.ActionRight) {
		t.Error("keys still held after Reset()")
	}
	if got := h.Reset(); len(got) != 0 {
		t.Errorf("second Reset() = %v, expected none", got)
	}
}
