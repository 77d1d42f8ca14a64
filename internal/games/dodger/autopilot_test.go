package dodger

import (
	"testing"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
)

func TestFleeRunsFromNearestEnemy(t *testing.T) {
	gp := New(config.DefaultConfig(), 1, nil).NewGameplay()
	gp.enemies = []actor.Actor{
		actor.NewBullet(core.V(450, 250), core.V(5, 5), core.Vec2{}), // up-right, near
		actor.NewBullet(core.V(100, 500), core.V(5, 5), core.Vec2{}),
	}

	dir := Flee(gp).Direction()
	if dir != core.V(-1, 1) {
		t.Errorf("Flee() direction = %v, expected (-1, 1)", dir)
	}
}

func TestFleeAcrossWrap(t *testing.T) {
	gp := New(config.DefaultConfig(), 1, nil).NewGameplay()
	gp.player.SetPosition(core.V(790, 300))
	gp.enemies = []actor.Actor{
		// 20 units to the right once wrapped.
		actor.NewBullet(core.V(10, 300), core.V(5, 5), core.Vec2{}),
	}

	dir := Flee(gp).Direction()
	if dir != core.V(-1, 0) {
		t.Errorf("Flee() direction = %v, expected (-1, 0)", dir)
	}
}

func TestParseAutopilot(t *testing.T) {
	for _, name := range []string{"", "none", "flee"} {
		if _, err := ParseAutopilot(name); err != nil {
			t.Errorf("ParseAutopilot(%q) error: %v", name, err)
		}
	}
	if _, err := ParseAutopilot("chase"); err == nil {
		t.Error("ParseAutopilot(chase) expected an error")
	}

	gp := New(config.DefaultConfig(), 1, nil).NewGameplay()
	if len(Idle(gp).Actions) != 0 {
		t.Error("Idle() held actions")
	}
}
