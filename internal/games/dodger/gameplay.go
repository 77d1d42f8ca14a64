package dodger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
	"github.com/vovakirdan/bullet-dodger/internal/spawn"
)

// Gameplay is one run: the player, the enemies spawned so far and the
// timers that drive them. Enemies are never removed during a run.
type Gameplay struct {
	scene.Base

	game    *Game
	id      uuid.UUID
	spawner *spawn.Spawner

	player  *actor.Player
	enemies []actor.Actor // Spawn order

	timer    float64 // Seconds until the next spawn
	total    float64 // Seconds survived
	ticks    uint64
	gameOver bool
	active   bool
}

// String names the scene in logs.
func (g *Gameplay) String() string {
	return "gameplay"
}

// RunID identifies the run in logs and snapshots.
func (g *Gameplay) RunID() uuid.UUID {
	return g.id
}

// Player returns the player actor.
func (g *Gameplay) Player() *actor.Player {
	return g.player
}

// Enemies returns the enemies in spawn order. The slice must not be modified.
func (g *Gameplay) Enemies() []actor.Actor {
	return g.enemies
}

// Elapsed returns the seconds survived.
func (g *Gameplay) Elapsed() float64 {
	return g.total
}

// IsGameOver reports whether the player has been hit.
func (g *Gameplay) IsGameOver() bool {
	return g.gameOver
}

// IsActive reports whether the scene is live.
func (g *Gameplay) IsActive() bool {
	return g.active
}

// SpawnCounts returns the number of enemies spawned per variant.
func (g *Gameplay) SpawnCounts() map[spawn.Variant]int {
	return g.spawner.Counts()
}

// OnEntry marks the scene live and shows the HUD.
func (g *Gameplay) OnEntry(ctx *scene.Context) {
	g.active = true
	switch {
	case g.gameOver:
		// Revived only to be replaced by a restart.
	case g.ticks == 0:
		ctx.Logger.Info("run started", "run", g.id)
	default:
		ctx.Logger.Info("run resumed", "run", g.id, "elapsed", g.total)
	}
}

// OnExit hides the HUD.
func (g *Gameplay) OnExit(*scene.Context) {
	g.active = false
}

// UpdateInBackground follows the scenes.gameplay_update_in_background
// setting.
func (g *Gameplay) UpdateInBackground() bool {
	return g.game.cfg.Scenes.GameplayUpdateInBackground
}

// DrawInBackground keeps the arena visible beneath overlays.
func (g *Gameplay) DrawInBackground() bool {
	return true
}

// Update runs one simulation tick while live. Paused scenes only drift their
// enemies: no spawns, no collisions and no transitions.
func (g *Gameplay) Update(ctx *scene.Context, dt float64, q *scene.Queue) error {
	if !g.active || g.gameOver {
		return g.drift(dt)
	}
	return g.step(ctx, dt, q)
}

// step advances the run by dt. Every actor change is staged on copies and
// committed only once the whole tick succeeded; a failed tick also rewinds
// the spawner.
func (g *Gameplay) step(ctx *scene.Context, dt float64, q *scene.Queue) (err error) {
	cfg := g.game.cfg

	checkpoint := g.spawner.Checkpoint()
	defer func() {
		if err != nil {
			g.spawner.Rollback(checkpoint)
		}
	}()

	total := g.total + dt
	timer := g.timer - dt

	var spawned actor.Actor
	if timer <= 0 {
		timer += cfg.Spawner.Interval
		a, err := g.spawner.Spawn(g.player.Position())
		if err != nil {
			return fmt.Errorf("gameplay: %w", err)
		}
		spawned = a
	}

	player := *g.player
	player.Steer(ctx.Input.Direction())
	if err := player.Update(dt); err != nil {
		return fmt.Errorf("gameplay: player: %w", err)
	}
	player.SetPosition(core.WrapVec(player.Position(), core.ArenaWidth, core.ArenaHeight))
	if !player.Position().IsFinite() {
		return fmt.Errorf("gameplay: player: %w: %v", core.ErrNonFinite, player.Position())
	}

	staged, err := g.stage(1)
	if err != nil {
		return err
	}
	if spawned != nil {
		staged = append(staged, spawned)
	}

	bounds := player.Bounds()
	hit, err := g.game.pool.Any(len(staged), func(i int) (bool, error) {
		e := staged[i]
		if err := advance(e, dt); err != nil {
			return false, fmt.Errorf("enemy %d (%s): %w", i, actor.Kind(e), err)
		}
		return e.Bounds().Intersects(bounds), nil
	})
	if err != nil {
		return fmt.Errorf("gameplay: update: %w", err)
	}

	if !hit {
		born, err := g.act(dt, &player, staged)
		if err != nil {
			return fmt.Errorf("gameplay: action: %w", err)
		}
		staged = append(staged, born...)
	}

	g.total = total
	g.timer = timer
	g.player = &player
	g.enemies = staged
	g.ticks++

	if spawned != nil {
		ctx.Logger.Debug("spawned", "run", g.id, "kind", actor.Kind(spawned), "enemies", len(g.enemies))
	}
	if hit {
		g.finish(ctx, q)
	}
	return nil
}

// act runs every enemy's action against a read-only view of enemies and
// returns the actors they produced, in enemy order.
func (g *Gameplay) act(dt float64, player *actor.Player, enemies []actor.Actor) ([]actor.Actor, error) {
	view := enemies[:len(enemies):len(enemies)]
	results := make([][]actor.Actor, len(enemies))

	err := g.game.pool.ForEach(len(enemies), func(i int) error {
		e := enemies[i]
		if !e.HasAction() {
			return nil
		}
		out, err := e.Action(dt, player, view)
		if err != nil {
			return fmt.Errorf("enemy %d (%s): %w", i, actor.Kind(e), err)
		}
		results[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	var born []actor.Actor
	for _, out := range results {
		born = append(born, out...)
	}
	return born, nil
}

func (g *Gameplay) finish(ctx *scene.Context, q *scene.Queue) {
	g.gameOver = true
	best := g.game.session.Record(g.total)
	ctx.Logger.Info("game over", "run", g.id, "elapsed", g.total, "enemies", len(g.enemies), "best", best)

	q.Push(g.game.NewGameOver(g.total))

	if err := ctx.Audio.PlayExplosion(); err != nil {
		ctx.Logger.Warn("explosion cue failed", "error", err)
	}
}

func (g *Gameplay) drift(dt float64) error {
	if len(g.enemies) == 0 {
		return nil
	}
	staged, err := g.stage(0)
	if err != nil {
		return err
	}
	err = g.game.pool.ForEach(len(staged), func(i int) error {
		return advance(staged[i], dt)
	})
	if err != nil {
		return fmt.Errorf("gameplay: drift: %w", err)
	}
	g.enemies = staged
	return nil
}

// stage copies the enemies, leaving room for extra appended actors.
func (g *Gameplay) stage(extra int) ([]actor.Actor, error) {
	staged := make([]actor.Actor, len(g.enemies), len(g.enemies)+extra)
	for i, e := range g.enemies {
		c, err := actor.Clone(e)
		if err != nil {
			return nil, fmt.Errorf("gameplay: stage enemy %d: %w", i, err)
		}
		staged[i] = c
	}
	return staged, nil
}

func advance(a actor.Actor, dt float64) error {
	if err := a.Update(dt); err != nil {
		return err
	}
	pos := core.WrapVec(a.Position(), core.ArenaWidth, core.ArenaHeight)
	if !pos.IsFinite() {
		return fmt.Errorf("%w: %v", core.ErrNonFinite, pos)
	}
	a.SetPosition(pos)
	return nil
}

// KeyDown opens the pause overlay or quits.
func (g *Gameplay) KeyDown(ctx *scene.Context, ev core.KeyEvent, q *scene.Queue) {
	if ev.Repeat || g.gameOver {
		return
	}
	switch ev.Action {
	case core.ActionPause:
		q.Push(g.game.NewPause())
	case core.ActionQuit:
		ctx.Quit()
	}
}

// Draw batches every actor into one mesh and overlays the HUD while live.
func (g *Gameplay) Draw(_ *scene.Context, dst core.Surface) error {
	mesh := core.NewMeshBuilder()
	for _, e := range g.enemies {
		if err := e.Draw(dst, mesh); err != nil {
			return err
		}
	}
	if err := g.player.Draw(dst, mesh); err != nil {
		return err
	}
	if err := dst.DrawMesh(mesh); err != nil {
		return err
	}

	if !g.active {
		return nil
	}
	return dst.DrawText(core.Text{
		X:     8,
		Y:     8,
		Body:  fmt.Sprintf("%.1f s   enemies: %d", g.total, len(g.enemies)),
		Color: core.ColorWhite,
	})
}
