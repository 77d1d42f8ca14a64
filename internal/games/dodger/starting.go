package dodger

import (
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

const (
	titleText        = "Bullet Dodger"
	instructionsText = "[W,A,S,D] to move.\nDodge the bullets for as long as possible.\n\n[Space] or a direction to start. [Q] to quit."
)

// Starting is the title screen.
type Starting struct {
	scene.Base
	game *Game
}

// String names the scene in logs.
func (s *Starting) String() string {
	return "starting"
}

// KeyDown starts the game on a movement or confirm key and quits on quit or
// escape.
func (s *Starting) KeyDown(ctx *scene.Context, ev core.KeyEvent, q *scene.Queue) {
	if ev.Repeat {
		return
	}
	switch {
	case ev.Action.IsMovement(), ev.Action == core.ActionConfirm:
		if s.game.cfg.Scenes.StartMode == config.StartFresh {
			q.Replace(s.game.NewGameplay())
			return
		}
		q.Pop()
	case ev.Action == core.ActionQuit, ev.Action == core.ActionPause:
		ctx.Quit()
	}
}

// Draw renders the title and instructions.
func (s *Starting) Draw(_ *scene.Context, dst core.Surface) error {
	if err := dst.DrawText(core.Text{
		X:     core.ArenaWidth / 2,
		Y:     core.ArenaHeight / 3,
		Body:  titleText,
		Color: core.ColorBrightYellow,
		Align: core.AlignCenter,
		Large: true,
	}); err != nil {
		return err
	}
	return dst.DrawText(core.Text{
		X:     core.ArenaWidth / 2,
		Y:     core.ArenaHeight / 2,
		Body:  instructionsText,
		Color: core.ColorWhite,
		Align: core.AlignCenter,
	})
}
