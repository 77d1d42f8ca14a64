package dodger

import (
	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

// Pause freezes the run beneath it until resumed.
type Pause struct {
	scene.Base
}

// String names the scene in logs.
func (p *Pause) String() string {
	return "pause"
}

// KeyDown resumes on pause or confirm and quits on quit.
func (p *Pause) KeyDown(ctx *scene.Context, ev core.KeyEvent, q *scene.Queue) {
	if ev.Repeat {
		return
	}
	switch ev.Action {
	case core.ActionPause, core.ActionConfirm:
		q.Pop()
	case core.ActionQuit:
		ctx.Quit()
	}
}

// Draw renders the pause banner.
func (p *Pause) Draw(_ *scene.Context, dst core.Surface) error {
	return dst.DrawText(core.Text{
		X:     core.ArenaWidth / 2,
		Y:     core.ArenaHeight / 2,
		Body:  "PAUSED\n\n[P] resume   [Q] quit",
		Color: core.ColorBrightCyan,
		Align: core.AlignCenter,
		Large: true,
	})
}
