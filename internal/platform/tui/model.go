package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-dodger/internal/core"
	"github.com/vovakirdan/bullet-dodger/internal/scene"
)

// helpRows is the number of rows below the arena used by the help line.
const helpRows = 1

// Options configures the terminal host.
type Options struct {
	Runtime core.RuntimeConfig
	KeyHold time.Duration // How long a press counts as held
	Logger  *log.Logger
}

// Model is the Bubble Tea model that hosts a scene stack.
type Model struct {
	stack   *scene.Stack
	ctx     *scene.Context
	screen  *core.Screen
	surface *ScreenSurface
	painter *renderer
	step    *core.FixedStep
	holds   *HoldTracker
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig
	logger  *log.Logger
	err     error

	// lastTick timestamps key presses so holds and ticks share one clock.
	lastTick time.Time
}

// NewModel creates a model that drives stack with ctx.
func NewModel(stack *scene.Stack, ctx *scene.Context, opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= helpRows {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows)
	return Model{
		stack:   stack,
		ctx:     ctx,
		screen:  screen,
		surface: NewScreenSurface(screen),
		painter: newRenderer(),
		step:    core.NewFixedStep(cfg.TickRate),
		holds:   NewHoldTracker(opts.KeyHold),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  logger,
	}
}

// Err returns the error that stopped the simulation, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, m.clock())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		return m.handleBlur()

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) clock() time.Time {
	if m.lastTick.IsZero() {
		return time.Now()
	}
	return m.lastTick
}

// handleKey routes a key press to the live scene.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(now); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	repeat, released := m.holds.Press(action, now)
	if released != core.ActionNone {
		m.stack.KeyUp(m.ctx, core.KeyEvent{Action: released})
	}
	m.ctx.Input = m.holds.Frame()
	m.stack.KeyDown(m.ctx, core.KeyEvent{Action: action, Repeat: repeat})

	if m.ctx.Quitting() {
		return m, tea.Quit
	}
	return m, nil
}

// handleBlur releases held keys when the terminal loses focus.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Reset() {
		m.stack.KeyUp(m.ctx, core.KeyEvent{Action: a})
	}
	m.ctx.Input = m.holds.Frame()
	return m, nil
}

// handleResize fits the screen to the terminal. The arena is rescaled, the
// simulation is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Height <= helpRows || msg.Width <= 0 {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs every fixed tick that is due at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = now
	for _, a := range m.holds.Expire(now) {
		m.stack.KeyUp(m.ctx, core.KeyEvent{Action: a})
	}
	m.ctx.Input = m.holds.Frame()

	for n := m.step.Advance(now); n > 0; n-- {
		if err := m.stack.Tick(m.ctx, m.step.DT()); err != nil {
			m.logger.Error("tick failed", "error", err)
			m.err = err
			return m, tea.Quit
		}
	}

	if m.ctx.Quitting() {
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// render draws the stack into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	if err := m.stack.Draw(m.ctx, m.surface); err != nil {
		m.logger.Warn("draw failed", "error", err)
	}
}

// saveScreenshot writes the current screen as text to
// ~/.dodger/screenshots.
func (m Model) saveScreenshot(now time.Time) error {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".dodger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("dodger_%s.txt", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.ctx.Quitting() {
		return ""
	}
	m.render()
	return m.painter.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(stack *scene.Stack, ctx *scene.Context, opts Options) error {
	model := NewModel(stack, ctx, opts)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
