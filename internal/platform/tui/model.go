package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Model is the Bubble Tea model driving one game.
//
// Keypresses are held in a single slot until the next tick, newest wins.
// While the game waits for a key, presses are delivered immediately.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	keys     KeyMap
	sched    *core.FixedStep
	now      func() time.Time
	pending  core.Key
	resized  bool
	quitting bool
}

// NewModel creates a model for a game drawing onto screen.
func NewModel(game *pong.Game, screen *core.Screen) Model {
	return Model{
		game:   game,
		screen: screen,
		keys:   DefaultKeyMap(),
		sched:  core.NewFixedStep(time.Now()),
		now:    time.Now,
	}
}

// Init paints the opening screen and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Map(msg)
	if m.game.Waiting() {
		m.game.Step(k)
		if m.game.Phase() == pong.PhaseActive {
			m.sched.Reset(m.now())
		}
		return m.checkQuit()
	}

	m.pending = k
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	if m.game.Waiting() {
		m.game.Step(core.KeyResize)
		return m, nil
	}
	m.resized = true
	return m, nil
}

// handleTick runs every simulation tick that is due.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.Phase() == pong.PhaseActive {
		due := m.sched.Advance(now, m.game.TickInterval())
		for i := 0; i < due && m.game.Phase() == pong.PhaseActive; i++ {
			m.game.Step(m.takeKey())
		}
	}

	if m.game.Phase() == pong.PhaseQuit {
		return m.checkQuit()
	}
	return m, tickCmd(m.game.TickInterval())
}

// takeKey empties the input slot. A pending resize is delivered first.
func (m *Model) takeKey() core.Key {
	if m.resized {
		m.resized = false
		return core.KeyResize
	}
	k := m.pending
	m.pending = core.KeyNone
	return k
}

func (m Model) checkQuit() (tea.Model, tea.Cmd) {
	if m.game.Phase() == pong.PhaseQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program for the game.
func Run(game *pong.Game, screen *core.Screen) error {
	p := tea.NewProgram(
		NewModel(game, screen),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
