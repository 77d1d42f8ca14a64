package dodger

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

// countUpSeconds is how long the survival time takes to count up.
const countUpSeconds = 1.0

// GameOver overlays the frozen arena with the survival time.
type GameOver struct {
	scene.Base

	game    *Game
	elapsed float64
	stats   Stats
	counter *gween.Tween
	shown   float64
}

func newGameOver(g *Game, elapsed float64, stats Stats) *GameOver {
	return &GameOver{
		game:    g,
		elapsed: elapsed,
		stats:   stats,
		counter: gween.New(0, float32(elapsed), countUpSeconds, ease.OutCubic),
	}
}

// String names the scene in logs.
func (o *GameOver) String() string {
	return "game over"
}

// Elapsed returns the survival time of the finished run.
func (o *GameOver) Elapsed() float64 {
	return o.elapsed
}

// Shown returns the survival time currently displayed by the count-up.
func (o *GameOver) Shown() float64 {
	return o.shown
}

// Update advances the count-up.
func (o *GameOver) Update(_ *scene.Context, dt float64, _ *scene.Queue) error {
	v, done := o.counter.Update(float32(dt))
	if done {
		o.shown = o.elapsed
		return nil
	}
	o.shown = float64(v)
	return nil
}

// KeyDown restarts or quits.
func (o *GameOver) KeyDown(ctx *scene.Context, ev core.KeyEvent, q *scene.Queue) {
	if ev.Repeat {
		return
	}
	switch ev.Action {
	case core.ActionRestart:
		// The finished run comes back live for an instant and is replaced.
		q.Pop()
		q.Replace(o.game.NewGameplay())
	case core.ActionQuit, core.ActionPause:
		ctx.Quit()
	}
}

// Draw renders the result and the prompt.
func (o *GameOver) Draw(_ *scene.Context, dst core.Surface) error {
	if err := dst.DrawText(core.Text{
		X:     core.ArenaWidth / 2,
		Y:     core.ArenaHeight / 3,
		Body:  "Game Over...",
		Color: core.ColorBrightRed,
		Align: core.AlignCenter,
		Large: true,
	}); err != nil {
		return err
	}

	body := fmt.Sprintf("You survived for %.2f seconds.\nBest %.2f s over %d runs.\n\nPress [R] to Restart.\nPress [Q] to Quit.",
		o.shown, o.stats.Best, o.stats.Runs)
	return dst.DrawText(core.Text{
		X:     core.ArenaWidth / 2,
		Y:     core.ArenaHeight / 2,
		Body:  body,
		Color: core.ColorWhite,
		Align: core.AlignCenter,
	})
}
