// Package dodger implements the bullet dodger scenes: the start screen, the
// gameplay simulation, the game-over overlay and the pause overlay.
package dodger

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bullet-dodger/internal/actor"
	"github.com/vovakirdan/bullet-dodger/internal/config"
	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/parallel"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
	"github.com/vovakirdan/bullet-dodger/internal/spawn"
)

// Game builds scenes that share one configuration, seed source, worker pool
// and session.
type Game struct {
	cfg     config.Config
	logger  *log.Logger
	rng     *rand.Rand
	pool    *parallel.Pool
	session *Session
}

// New creates a game factory. Every gameplay scene draws its own seed from
// seed, so a seed reproduces a whole session.
func New(cfg config.Config, seed int64, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
		pool:    parallel.New(cfg.Simulation.Workers),
		session: NewSession(),
	}
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Session returns the in-memory session statistics.
func (g *Game) Session() *Session {
	return g.session
}

// Tuning converts the actor section of the configuration.
func (g *Game) Tuning() actor.Tuning {
	return actor.Tuning{
		DrunkFactor:      g.cfg.Actors.DrunkFactor,
		HomingFactor:     g.cfg.Actors.HomingFactor,
		SpeedLimit:       g.cfg.Actors.HomingSpeedLimit,
		StrictDirections: g.cfg.Simulation.StrictDirections,
	}
}

// NewStack returns the opening scene stack. In resume mode a gameplay scene
// waits paused beneath the start screen; in fresh mode the start screen is
// alone and creates the gameplay scene itself.
func (g *Game) NewStack() *scene.Stack {
	start := g.NewStarting()
	if g.cfg.Scenes.StartMode == config.StartFresh {
		return scene.New(start)
	}
	return scene.New(start, g.NewGameplay())
}

// NewRunStack returns a stack that enters a new gameplay scene on its first
// tick, skipping the start screen.
func (g *Game) NewRunStack() (*scene.Stack, *Gameplay) {
	gp := g.NewGameplay()
	st := scene.New(nil)
	st.Queue().Replace(gp)
	return st, gp
}

// NewStarting creates the start screen.
func (g *Game) NewStarting() *Starting {
	return &Starting{game: g}
}

// NewGameplay creates a fresh run with the player centered in the arena.
func (g *Game) NewGameplay() *Gameplay {
	seed := g.rng.Int63()
	id, err := uuid.NewRandomFromReader(rand.New(rand.NewSource(seed)))
	if err != nil {
		id = uuid.New()
	}

	center := core.V(core.ArenaWidth/2, core.ArenaHeight/2)
	return &Gameplay{
		game:    g,
		id:      id,
		spawner: spawn.New(seed, g.cfg.Spawner, g.Tuning(), core.ArenaWidth, core.ArenaHeight),
		player:  actor.NewPlayer(center, g.cfg.Player.Size, g.cfg.Player.Speed),
		timer:   g.cfg.Spawner.InitialDelay,
	}
}

// NewGameOver creates the game-over overlay for a run that lasted elapsed
// seconds.
func (g *Game) NewGameOver(elapsed float64) *GameOver {
	return newGameOver(g, elapsed, g.session.Stats())
}

// NewPause creates the pause overlay.
func (g *Game) NewPause() *Pause {
	return &Pause{}
}
