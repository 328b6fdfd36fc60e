package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-rush/internal/account"
	"github.com/vovakirdan/dino-rush/internal/bridge"
	"github.com/vovakirdan/dino-rush/internal/config"
	"github.com/vovakirdan/dino-rush/internal/core"
	"github.com/vovakirdan/dino-rush/internal/game"
)

// duckHold is how long a duck key press keeps the duck flag held. Terminals
// deliver no key-release events, so a held key arrives as repeated presses;
// each press extends the window.
const duckHold = 250 * time.Millisecond

// mode selects which screen the model is showing.
type mode int

const (
	modePlay mode = iota
	modeAccount
)

// Model is the Bubble Tea model driving one runner session.
type Model struct {
	engine *game.Engine
	bridge *bridge.Bridge
	ledger *account.Ledger
	cfg    config.Game

	screen   *core.Screen
	tickRate int
	lastTick time.Time
	duckTill time.Time
	inputs   core.InputFrame

	mode mode
	form loginForm

	notice         string
	noticeSeverity account.Severity

	width, height int
	quitting      bool
}

// NewModel creates a model around an already-constructed engine, ledger, and
// bridge. tickRate is the simulation rate in ticks per second.
func NewModel(engine *game.Engine, ledger *account.Ledger, br *bridge.Bridge, cfg config.Game, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Model{
		engine:   engine,
		bridge:   br,
		ledger:   ledger,
		cfg:      cfg,
		screen:   core.NewScreen(80, 24),
		tickRate: tickRate,
		inputs:   core.NewInputFrame(),
		form:     newLoginForm(),
		width:    80,
		height:   24,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-2, 4)) // Header and footer rows
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// keyToAction maps a key press to its semantic action.
func keyToAction(key string) core.Action {
	switch key {
	case " ", "up", "w":
		return core.ActionJump
	case "down", "s":
		return core.ActionDuck
	case "l":
		return core.ActionLocation
	case "a":
		return core.ActionAccount
	case "esc":
		return core.ActionLogout
	case "q", "ctrl+c":
		return core.ActionQuit
	}
	return core.ActionNone
}

// handleKey processes keyboard input for the current mode. Simulation actions
// are buffered into the input frame and applied on the next tick; UI actions
// take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.mode == modeAccount {
		return m.handleAccountKey(msg)
	}

	switch keyToAction(msg.String()) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump, core.ActionDuck, core.ActionLocation:
		m.inputs.Set(keyToAction(msg.String()))
	case core.ActionAccount:
		m.mode = modeAccount
		m.form = m.form.Reset()
	case core.ActionLogout:
		if _, ok := m.ledger.Current(); ok {
			m.ledger.Logout()
			m.setNotice("signed out", account.SeverityInfo)
		}
	}

	return m, nil
}

// handleAccountKey routes input to the login form.
func (m Model) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, result := m.form.Update(msg)
	m.form = form

	switch result {
	case formCancelled:
		m.mode = modePlay

	case formSubmitted:
		username, password := m.form.Values()
		var err error
		if m.form.register {
			_, err = m.ledger.Register(username, password)
		} else {
			_, err = m.ledger.Login(username, password)
		}
		if err != nil {
			m.setNotice(err.Error(), account.SeverityFor(err))
			return m, cmd
		}
		if m.form.register {
			m.setNotice("account created, welcome "+username, account.SeveritySuccess)
		} else {
			m.setNotice("welcome back, "+username, account.SeveritySuccess)
		}
		m.mode = modePlay
	}

	return m, cmd
}

// handleTick drains the buffered input frame and advances the simulation by
// one normalized frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	deltaMillis := frameDelta(m.lastTick, now)
	m.lastTick = now

	if m.inputs.Has(core.ActionJump) {
		m.engine.Jump()
	}
	if m.inputs.Has(core.ActionDuck) {
		m.duckTill = now.Add(duckHold)
	}
	if m.inputs.Has(core.ActionLocation) {
		m.engine.CycleLocation()
	}
	m.inputs.Clear()

	m.engine.SetDuck(now.Before(m.duckTill))
	m.engine.Advance(game.NormalizeDelta(deltaMillis))

	return m, tickCmd(m.tickRate)
}

// frameDelta returns the elapsed milliseconds between ticks, falling back to
// one nominal frame on the first tick.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 1000.0 / 60.0
	}
	return float64(now.Sub(last).Microseconds()) / 1000.0
}

// setNotice stores a short status message for the footer.
func (m *Model) setNotice(text string, severity account.Severity) {
	m.notice = text
	m.noticeSeverity = severity
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}
	return m.renderGame()
}
