package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-rush/internal/game"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	CactusChar = '▓'
	BirdChar   = '▀'
	RockChar   = '●'
	GroundChar = '═'
	DebrisChar = '·'
)

var (
	hudStyle = lipgloss.NewStyle().Bold(true)

	noticeStyles = map[string]lipgloss.Style{
		"info":    lipgloss.NewStyle().Faint(true),
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"error":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// renderGame projects the simulation canvas into the cell buffer and frames
// it with a HUD header and a status footer.
func (m Model) renderGame() string {
	s := m.screen
	s.Clear()

	cw := m.cfg.Canvas.Width
	ch := m.cfg.Canvas.Height

	// Canvas-to-cell projection
	toX := func(x float64) int {
		return int(math.Round(x * float64(s.Width()) / cw))
	}
	toY := func(y float64) int {
		return int(math.Round(y * float64(s.Height()) / ch))
	}

	// Ground line
	groundY := toY(ch - m.cfg.Canvas.GroundHeight)
	s.DrawHLine(0, groundY, s.Width(), GroundChar)

	// Obstacles
	for _, o := range m.engine.Obstacles() {
		x := toX(o.X)
		y := toY(o.Y)
		w := maxCell(toX(o.X+o.W) - x)
		h := maxCell(toY(o.Y+o.H) - y)
		s.FillRect(x, y, w, h, obstacleChar(o.Kind))
	}

	// Player (duck-adjusted box, same geometry as the hitbox)
	hb := m.engine.Player().Hitbox()
	px := toX(hb.X)
	py := toY(hb.Y)
	s.FillRect(px, py, maxCell(toX(hb.Right())-px), maxCell(toY(hb.Bottom())-py), PlayerChar)

	// Particles
	for _, pt := range m.engine.Particles() {
		if pt.IsDebris() {
			s.Set(toX(pt.X), toY(pt.Y), DebrisChar)
		} else {
			s.DrawText(toX(pt.X), toY(pt.Y), pt.Text)
		}
	}

	if !m.engine.Running() {
		s.DrawTextCentered(s.Height()/2, "GAME OVER")
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("Score: %d  |  Press Space to restart", m.engine.Score()))
	}

	body := s.String()

	// The account form replaces the canvas center while open; the simulation
	// keeps ticking underneath.
	if m.mode == modeAccount {
		body = lipgloss.Place(m.width, s.Height(), lipgloss.Center, lipgloss.Center, m.form.View())
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

// renderHeader draws the score/coin HUD tinted with the location palette.
func (m Model) renderHeader() string {
	loc := m.engine.Location()

	left := fmt.Sprintf(" %s · score %d · best %d · device best %d ",
		loc.Name, m.engine.Score(), m.engine.Best(), m.bridge.GlobalBest())

	right := " guest "
	if acc, ok := m.ledger.Current(); ok {
		skin := m.ledger.EquippedSkin()
		right = fmt.Sprintf(" %s · %d coins · %s skin ", acc.Username, acc.Coins, skin.Name)
	}

	style := hudStyle.
		Foreground(lipgloss.Color(loc.Obstacle)).
		Background(lipgloss.Color(loc.Sky))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return style.Width(m.width).Render(left + spaces(gap) + right)
}

// renderFooter draws the key help line and any pending notice.
func (m Model) renderFooter() string {
	help := " space: jump · down: duck · l: location · a: account · esc: sign out · q: quit "
	if m.notice == "" {
		return noticeStyles["info"].Render(help)
	}

	style, ok := noticeStyles[string(m.noticeSeverity)]
	if !ok {
		style = noticeStyles["info"]
	}
	return style.Render(" " + m.notice + " ")
}

// obstacleChar maps an obstacle kind to its display rune.
func obstacleChar(kind game.Kind) rune {
	switch kind {
	case game.KindBird:
		return BirdChar
	case game.KindRock:
		return RockChar
	default:
		return CactusChar
	}
}

// maxCell ensures a projected span covers at least one cell.
func maxCell(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// spaces returns n spaces.
func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
