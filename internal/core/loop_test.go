package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	f := NewFixedStep(60)
	start := time.Unix(0, 0)

	if n := f.Advance(start); n != 0 {
		t.Errorf("first Advance() = %d, expected 0", n)
	}

	// 55ms at 60Hz is 3 whole ticks (55 / 16.67)
	if n := f.Advance(start.Add(55 * time.Millisecond)); n != 3 {
		t.Errorf("Advance(+55ms) = %d, expected 3", n)
	}

	// Remainder carries over: another 20ms makes 75ms total = 4 ticks
	if n := f.Advance(start.Add(75 * time.Millisecond)); n != 1 {
		t.Errorf("Advance(+20ms) = %d, expected 1", n)
	}
}

func TestFixedStepCapsFrameTime(t *testing.T) {
	f := NewFixedStep(60)
	now := time.Unix(0, 0)
	f.Advance(now)

	n := f.Advance(now.Add(10 * time.Second))
	if n < 14 || n > 15 {
		t.Errorf("Advance(+10s) = %d, expected about 15 (capped at 0.25s)", n)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	f := NewFixedStep(0)
	if f.DT() != 1.0/60 {
		t.Errorf("DT() = %v, expected 1/60", f.DT())
	}
}
