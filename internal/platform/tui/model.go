package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// DefaultFPS is the tick rate used when Options.FPS is not set.
const DefaultFPS = 60

// Options configures the play program.
type Options struct {
	FPS    int         // Tick rate; DefaultFPS when <= 0
	Logger *log.Logger // Game event log; discarded when nil
}

// Model is the Bubble Tea model for a breakout session.
type Model struct {
	ctrl   *breakout.Controller
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	fps    int
	clock  *frameClock
	input  core.InputFrame

	width    int
	height   int
	quitting bool
}

// NewModel wraps ctrl in a Bubble Tea model.
func NewModel(ctrl *breakout.Controller, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	w, h := breakout.MinScreen(ctrl.Model())
	m := Model{
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
		fps:    opts.FPS,
		clock:  &frameClock{},
		input:  core.NewInputFrame(),
		width:  w,
		height: h + 1,
	}
	m.screen = core.NewScreen(w, h)
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"seed", m.ctrl.Seed(),
		"bricks", m.ctrl.Model().BrickCount(),
		"fps", m.fps,
	)
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended",
			"frames", m.ctrl.Frames(),
			"bricks", m.ctrl.Model().BrickCount(),
		)
		return m, tea.Quit
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation frame with the input collected since the
// previous tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	dt := m.clock.advance(time.Time(msg))
	wasLive := m.ctrl.Model().Ball().Live

	ev := m.ctrl.Step(m.input, dt)
	if m.input.Has(core.ActionRestart) {
		m.clock.reset()
		m.logger.Info("restart", "seed", m.ctrl.Seed())
	} else {
		m.logFrame(ev, wasLive)
	}

	m.input.Clear()
	return m, tickCmd(m.fps)
}

func (m Model) logFrame(ev breakout.Event, wasLive bool) {
	game := m.ctrl.Model()
	ball := game.Ball()

	if !wasLive && ball.Live {
		m.logger.Info("launch", "x", ball.X, "vx", ball.Velocity.Width, "vy", ball.Velocity.Height)
	}

	switch ev {
	case breakout.EventIdle, breakout.EventMove:
	case breakout.EventBallLost:
		m.logger.Info("ball lost", "frame", m.ctrl.Frames(), "paddle", game.Paddle().X)
	case breakout.EventBrick:
		m.logger.Info("brick destroyed", "remaining", game.BrickCount(), "vx", ball.Velocity.Width)
		if game.Cleared() {
			m.logger.Info("board cleared", "frames", m.ctrl.Frames())
		}
	default:
		m.logger.Debug("bounce", "event", ev, "x", ball.X, "y", ball.Y)
	}
}

// layout sizes the game screen to the window, leaving room for the help bar.
func (m *Model) layout() {
	helpLines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			helpLines = max(helpLines, len(col))
		}
	}
	m.help.Width = m.width
	m.screen.Resize(m.width, max(m.height-helpLines, 0))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.ctrl, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for ctrl and blocks until the player quits.
func Run(ctrl *breakout.Controller, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctrl, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
