package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Alucard666haku/front-end-ludo-app/internal/advisor"
	"github.com/Alucard666haku/front-end-ludo-app/internal/config"
	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

// hintTimeout bounds how long a hint may keep "thinking...".
const hintTimeout = 20 * time.Second

type sessionState int

const (
	stateSetup sessionState = iota
	statePlaying
)

type model struct {
	state  sessionState
	cfg    *config.Config
	opts   []engine.Option
	logger *log.Entry

	form        setupForm
	eng         *engine.Engine
	gw          *gateway
	advisor     advisor.Advisor
	hintTimeout time.Duration

	// what the gateway told us to show
	turn     int
	turnSeq  int
	die      int
	offered  []models.TokenID
	roll     *rollAnim
	move     *moveAnim
	shake    *timer
	cheers   map[models.TokenID]*timer
	hint     string
	thinking bool
	ticking  bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	gameLog  []string
	width    int
	height   int
}

// NewModel builds the program model. opts are handed to every engine the
// model creates, which lets callers pin the dice.
func NewModel(cfg *config.Config, adv advisor.Advisor, logger *log.Entry, opts ...engine.Option) model {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return model{
		state:       stateSetup,
		cfg:         cfg,
		opts:        opts,
		logger:      logger,
		form:        newSetupForm(cfg),
		advisor:     adv,
		hintTimeout: hintTimeout,
		keys:        defaultKeys(),
		help:        help.New(),
		viewport:    viewport.New(40, 10),
		cheers:      make(map[models.TokenID]*timer),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type hintMsg struct {
	session string
	turnSeq int
	choice  advisor.Choice
	err     error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.eng != nil {
			m.eng.Resize(msg.Width, msg.Height)
			return m.applyEffects()
		}
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch m.state {
		case stateSetup:
			return m.updateSetup(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		}

	case frameMsg:
		return m.advanceFrame()

	case hintMsg:
		if m.eng == nil || msg.session != m.eng.ID() || msg.turnSeq != m.turnSeq {
			return m, nil
		}
		m.thinking = false
		if msg.err != nil {
			m.hint = "advisor: " + msg.err.Error()
			return m, nil
		}
		m.hint = m.describeChoice(msg.choice)
		return m, nil
	}

	if m.state == stateSetup {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	cfg, err := m.form.apply(m.cfg)
	if err != nil {
		m.form.err = err
		return m, nil
	}
	return m.start(cfg)
}

// start configures a new engine and switches to the board.
func (m model) start(cfg *config.Config) (tea.Model, tea.Cmd) {
	gw := &gateway{}
	opts := append([]engine.Option{
		engine.WithRollFrames(cfg.RollFrames),
		engine.WithLogger(m.logger),
	}, m.opts...)
	eng, err := engine.New(cfg.Game(), gw, opts...)
	if err != nil {
		m.form.err = err
		return m, nil
	}

	m.cfg = cfg
	m.eng = eng
	m.gw = gw
	m.form.err = nil
	m.state = statePlaying
	m.clearTransient()
	m.gameLog = nil
	m.logf("New game: %d players, %d pawns each, path of %d cells.", cfg.NumPlayers, cfg.PawnsPerPlayer, cfg.PathLength)
	if m.width > 0 {
		eng.Resize(m.width, m.height)
	}
	return m.applyEffects()
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Roll):
		if _, err := m.eng.RollDice(); err != nil {
			return m, nil
		}
		return m.applyEffects()

	case key.Matches(msg, m.keys.Select):
		idx := int(msg.String()[0] - '1')
		if m.eng.Turn().Phase != models.PhaseRolled || idx >= len(m.offered) {
			return m, nil
		}
		if _, err := m.eng.SelectToken(m.offered[idx]); err != nil {
			m.logger.WithError(err).Debug("selection refused")
			return m, nil
		}
		return m.applyEffects()

	case key.Matches(msg, m.keys.Hint):
		return m.requestHint()

	case key.Matches(msg, m.keys.ResetView):
		m.eng.ResetView()
		return m.applyEffects()

	case key.Matches(msg, m.keys.NewGame):
		m.eng.Reset()
		m.clearTransient()
		m.gameLog = nil
		m.logf("New game.")
		return m.applyEffects()

	case key.Matches(msg, m.keys.Reconfigure):
		m.state = stateSetup
		m.form = newSetupForm(m.cfg)
		m.eng = nil
		m.gw = nil
		m.clearTransient()
		return m, nil
	}
	return m, nil
}

func (m model) requestHint() (tea.Model, tea.Cmd) {
	if m.advisor == nil || m.thinking || m.eng.Turn().Phase != models.PhaseRolled {
		return m, nil
	}
	m.thinking = true
	m.hint = "thinking..."

	adv := m.advisor
	session := m.eng.Snapshot()
	moves := m.eng.Candidates()
	seq := m.turnSeq
	timeout := m.hintTimeout
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		c, err := adv.Choose(ctx, session, moves)
		return hintMsg{session: session.ID, turnSeq: seq, choice: c, err: err}
	}
}

func (m model) describeChoice(c advisor.Choice) string {
	for i, id := range m.offered {
		if id == c.Token {
			return fmt.Sprintf("hint: press %d (P%d), %s", i+1, i+1, c.Reason)
		}
	}
	return fmt.Sprintf("hint: token %d, %s", c.Token, c.Reason)
}

// applyEffects drains what the engine asked the gateway for and turns it
// into screen state, starting the frame clock when something animates.
func (m model) applyEffects() (tea.Model, tea.Cmd) {
	if m.gw == nil {
		return m, nil
	}
	for _, e := range m.gw.drain() {
		switch e := e.(type) {
		case rollEffect:
			m.roll = newRollAnim(e.faces)
			m.hint = ""
		case moveEffect:
			m.move = newMoveAnim(e.id, e.from, e.to)
			m.offered = nil
			m.logf("%s moves P%d %s -> %s", playerName(m.turn), m.slotOf(e.id), cellLabel(e.from), cellLabel(e.to))
		case arrivalEffect:
			m.cheers[e.id] = newTimer(cheerDuration)
			m.logf("%s P%d reached the goal!", playerName(m.turn), m.slotOf(e.id))
		case turnEffect:
			if e.player != m.turn || m.turnSeq == 0 {
				m.logf("%s to roll.", playerName(e.player))
			} else {
				m.logf("%s rolls again.", playerName(e.player))
			}
			m.turn = e.player
			m.turnSeq++
			m.offered = nil
			m.hint = ""
			m.thinking = false
		case dieEffect:
			m.die = e.value
			if e.value > 0 {
				m.logf("%s rolled %d.", playerName(m.turn), e.value)
			}
		case offerEffect:
			m.offered = e.ids
		case rejectEffect:
			m.shake = newTimer(shakeDuration)
			m.offered = nil
			m.logf("P%d cannot move with a %d.", m.slotOf(e.id), m.die)
		case resetViewEffect:
			m.hint = ""
			m.viewport.GotoBottom()
		case resizeEffect:
			m.resize(e.width, e.height)
		}
	}
	cmd := m.ensureTicking()
	return m, cmd
}

func (m *model) ensureTicking() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m model) animating() bool {
	return m.roll != nil || m.move != nil || m.shake != nil || len(m.cheers) > 0
}

// advanceFrame steps every running animation. Finished roll and move
// animations report back to the engine.
func (m model) advanceFrame() (tea.Model, tea.Cmd) {
	m.ticking = false
	if m.eng == nil {
		return m, nil
	}
	dt := frameSeconds()

	if m.shake != nil && m.shake.update(dt) {
		m.shake = nil
	}
	for id, t := range m.cheers {
		if t.update(dt) {
			delete(m.cheers, id)
		}
	}
	if m.roll != nil && m.roll.update(dt) {
		m.roll = nil
		if err := m.eng.RollSettled(); err != nil {
			m.logger.WithError(err).Warn("roll settled twice")
		}
	}
	if m.move != nil && m.move.update(dt) {
		m.move = nil
		if err := m.eng.MoveCompleted(); err != nil {
			m.logger.WithError(err).Warn("move completed twice")
		}
	}
	return m.applyEffects()
}

func (m *model) clearTransient() {
	m.turn = 0
	m.turnSeq = 0
	m.die = 0
	m.offered = nil
	m.roll = nil
	m.move = nil
	m.shake = nil
	m.cheers = make(map[models.TokenID]*timer)
	m.hint = ""
	m.thinking = false
}

func (m *model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = max(20, width/3)
	m.viewport.Height = max(5, height-8)
	m.viewport.SetContent(strings.Join(m.gameLog, "\n"))
}

func (m *model) logf(format string, args ...any) {
	m.gameLog = append(m.gameLog, fmt.Sprintf(format, args...))
	m.viewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.viewport.GotoBottom()
}

func (m model) slotOf(id models.TokenID) int {
	if t, ok := m.eng.Token(id); ok {
		return t.Slot + 1
	}
	return 0
}

func cellLabel(c models.PathCell) string {
	if c.IsHome() {
		return "home"
	}
	return fmt.Sprint(c.Order)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateSetup:
		s = m.form.view()

	case statePlaying:
		board := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("LUDO"),
			"",
			m.renderBoard(),
			"",
			m.renderStatus(),
		)
		logView := logStyle.Height(m.viewport.Height).Render(m.viewport.View())
		s = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", logView),
			"",
			m.help.View(m.keys),
		)
	}

	return "\n" + s + "\n"
}

func (m model) renderBoard() string {
	cfg := m.eng.Config()
	paths := m.eng.Paths()
	var rows []string
	for p := 0; p < cfg.NumPlayers; p++ {
		length := paths.Len(p)
		cells := make([][]string, length+1) // index 0 is home
		styles := make([]lipgloss.Style, length+1)
		for i := range styles {
			styles[i] = cellStyle
		}

		for _, t := range m.eng.Tokens(p) {
			at := t.Progress
			label := fmt.Sprint(t.Slot + 1)
			if m.move != nil && m.move.id == t.ID {
				at = m.move.cell()
				styles[at] = movingStyle.Foreground(colorOf(p).Color)
			}
			if _, ok := m.cheers[t.ID]; ok {
				styles[at] = celebrateStyle.Foreground(colorOf(p).Color)
			}
			cells[at] = append(cells[at], label)
		}

		marker := "  "
		if p == m.turn {
			marker = "> "
		}
		var b strings.Builder
		b.WriteString(marker)
		b.WriteString(playerStyle(p).Width(8).Render(playerName(p)))
		home := fmt.Sprintf("%-*s", cfg.PawnsPerPlayer, strings.Join(cells[0], ""))
		b.WriteString(" home[" + playerStyle(p).Render(home) + "] ")
		for order := 1; order <= length; order++ {
			content := strings.Join(cells[order], "")
			if content == "" {
				content = "."
				if order == length {
					content = "*"
				}
			} else if len(content) > 2 {
				content = content[:1] + "+"
			}
			b.WriteString(styles[order].Render(fmt.Sprintf("[%-2s]", content)))
		}
		fmt.Fprintf(&b, "  %d/%d", m.arrived(p), cfg.PawnsPerPlayer)
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (m model) arrived(player int) int {
	n := 0
	length := m.eng.Paths().Len(player)
	for _, t := range m.eng.Tokens(player) {
		if t.AtGoal(length) {
			n++
		}
	}
	return n
}

func (m model) renderStatus() string {
	face := "-"
	switch {
	case m.roll != nil:
		face = fmt.Sprint(m.roll.face)
	case m.die > 0:
		face = fmt.Sprint(m.die)
	}
	style := dieStyle
	if m.shake != nil {
		style = shakeStyle
	}
	die := style.Render(face)

	lines := []string{playerStyle(m.turn).Render(playerName(m.turn)) + " to play"}
	switch m.eng.Turn().Phase {
	case models.PhaseWaiting:
		lines = append(lines, "press space to roll")
	case models.PhaseRolling:
		lines = append(lines, "rolling...")
	case models.PhaseRolled:
		lines = append(lines, m.renderOffer())
	case models.PhaseMoving:
		lines = append(lines, "moving...")
	}
	if m.hint != "" {
		lines = append(lines, helpStyle.Render(m.hint))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, die, "  ", strings.Join(lines, "\n"))
}

func (m model) renderOffer() string {
	legal := make(map[models.TokenID]bool)
	for _, mv := range m.eng.Candidates() {
		legal[mv.Token] = mv.Legal
	}
	var parts []string
	for i, id := range m.offered {
		label := fmt.Sprintf("[%d] P%d", i+1, m.slotOf(id))
		if legal[id] {
			label = playerStyle(m.turn).Render(label)
		} else {
			label = helpStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return "move: " + strings.Join(parts, " ")
}

// Run shows the setup form and plays games until the user quits.
func Run(cfg *config.Config, adv advisor.Advisor, logger *log.Entry, opts ...engine.Option) error {
	p := tea.NewProgram(NewModel(cfg, adv, logger, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
