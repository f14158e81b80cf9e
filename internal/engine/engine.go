// Package engine implements the turn and movement state machine.
//
// An Engine is driven by three commands (RollDice, SelectToken and the two
// completion signals RollSettled / MoveCompleted) issued from a single
// goroutine. The current phase is the only guard against overlapping
// commands: anything issued out of phase is rejected and changes nothing.
package engine

import (
	"fmt"

	"github.com/Alucard666haku/front-end-ludo-app/internal/board"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	MinPlayers        = 2
	MaxPlayers        = 8
	DefaultRollFrames = 10
)

type Engine struct {
	id     string
	cfg    models.GameConfiguration
	paths  *board.Paths
	tokens *Registry
	turn   models.TurnState

	gw      Gateway
	dice    Dice
	flicker Dice
	frames  int

	rolledDie int
	pending   *Move

	baseLog *log.Entry
	log     *log.Entry
}

type Option func(*Engine)

// WithDice sets the source of the settled die value.
func WithDice(d Dice) Option {
	return func(e *Engine) { e.dice = d }
}

// WithFlicker sets the source of the intermediate faces shown while rolling.
func WithFlicker(d Dice) Option {
	return func(e *Engine) { e.flicker = d }
}

// WithRollFrames sets how many faces a roll shows, the last one being the result.
func WithRollFrames(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.frames = n
		}
	}
}

// WithPaths replaces the uniform board built from the configuration.
func WithPaths(p *board.Paths) Option {
	return func(e *Engine) { e.paths = p }
}

func WithLogger(l *log.Entry) Option {
	return func(e *Engine) { e.baseLog = l }
}

// Validate rejects configurations the engine cannot run.
func Validate(cfg models.GameConfiguration) error {
	switch {
	case cfg.NumPlayers < MinPlayers || cfg.NumPlayers > MaxPlayers:
		return fmt.Errorf("%w: %d players, want %d-%d", ErrDegenerateConfiguration, cfg.NumPlayers, MinPlayers, MaxPlayers)
	case cfg.PawnsPerPlayer < 1:
		return fmt.Errorf("%w: %d pawns per player", ErrDegenerateConfiguration, cfg.PawnsPerPlayer)
	case cfg.PathLength < 1:
		return fmt.Errorf("%w: path length %d", ErrDegenerateConfiguration, cfg.PathLength)
	}
	return nil
}

// New configures a session. The configuration is read-only from here on.
func New(cfg models.GameConfiguration, gw Gateway, opts ...Option) (*Engine, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	if gw == nil {
		gw = NopGateway{}
	}

	e := &Engine{
		cfg:    cfg,
		gw:     gw,
		frames: DefaultRollFrames,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.paths == nil {
		paths, err := board.NewUniform(cfg.NumPlayers, cfg.PathLength)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDegenerateConfiguration, err)
		}
		e.paths = paths
	} else if e.paths.Players() != cfg.NumPlayers {
		return nil, fmt.Errorf("%w: board has %d paths for %d players", ErrDegenerateConfiguration, e.paths.Players(), cfg.NumPlayers)
	}
	if e.dice == nil {
		e.dice = NewRandomDice(0)
	}
	if e.flicker == nil {
		e.flicker = e.dice
	}
	if e.baseLog == nil {
		e.baseLog = log.NewEntry(log.StandardLogger())
	}

	e.Reset()
	return e, nil
}

// Reset starts a fresh session with the same configuration. Any roll or move
// in flight is forgotten; late completion signals for it are rejected.
func (e *Engine) Reset() {
	e.id = uuid.NewString()
	e.log = e.baseLog.WithField("session", e.id)
	e.tokens = NewRegistry(e.cfg.NumPlayers, e.cfg.PawnsPerPlayer)
	e.turn = models.TurnState{Phase: models.PhaseWaiting}
	e.rolledDie = 0
	e.pending = nil

	e.log.WithFields(log.Fields{
		"players": e.cfg.NumPlayers,
		"pawns":   e.cfg.PawnsPerPlayer,
		"path":    e.cfg.PathLength,
	}).Info("session started")

	e.gw.DisplayTurn(e.turn.CurrentPlayer)
	e.gw.DisplayDie(0)
}

// RollDice starts a roll. The gateway animates the faces and reports back
// through RollSettled.
func (e *Engine) RollDice() ([]int, error) {
	if e.turn.Phase != models.PhaseWaiting {
		return nil, e.reject("roll", ErrInvalidPhase)
	}

	faces := make([]int, e.frames)
	for i := 0; i < len(faces)-1; i++ {
		faces[i] = e.flicker.Roll()
	}
	faces[len(faces)-1] = e.dice.Roll()

	e.rolledDie = faces[len(faces)-1]
	e.turn.Phase = models.PhaseRolling
	e.log.WithField("player", e.turn.CurrentPlayer).Debug("rolling")

	e.gw.RequestRoll(faces)
	return faces, nil
}

// RollSettled ends the roll animation and offers the current player's tokens.
func (e *Engine) RollSettled() error {
	if e.turn.Phase != models.PhaseRolling {
		return e.reject("roll settled", ErrInvalidPhase)
	}

	e.turn.LastDie = e.rolledDie
	e.rolledDie = 0
	e.turn.Phase = models.PhaseRolled
	e.log.WithFields(log.Fields{
		"player": e.turn.CurrentPlayer,
		"die":    e.turn.LastDie,
	}).Debug("rolled")

	e.gw.DisplayDie(e.turn.LastDie)
	e.gw.OfferTokens(e.tokens.IDsOf(e.turn.CurrentPlayer))
	return nil
}

// SelectToken plays the rolled die with one of the current player's tokens.
//
// A selection the rules do not allow is not an error: the gateway is told to
// reject it, the returned Move has Legal unset, and the turn is over.
func (e *Engine) SelectToken(id models.TokenID) (Move, error) {
	if e.turn.Phase != models.PhaseRolled {
		return Move{}, e.reject("select", ErrInvalidPhase)
	}
	t, ok := e.tokens.Get(id)
	if !ok {
		return Move{}, e.reject("select", ErrTokenNotFound)
	}
	if t.Owner != e.turn.CurrentPlayer {
		return Move{}, e.reject("select", ErrInvalidTokenOwner)
	}

	m := Resolve(t, e.turn.LastDie, e.paths)
	fields := log.Fields{
		"player": e.turn.CurrentPlayer,
		"die":    e.turn.LastDie,
		"token":  id,
	}
	if !m.Legal {
		e.log.WithFields(fields).Debug("selection rejected")
		e.gw.RejectSelection(id)
		e.advance()
		return m, nil
	}

	e.pending = &m
	e.turn.Phase = models.PhaseMoving
	fields["from"], fields["to"] = m.From.ID(), m.To.ID()
	e.log.WithFields(fields).Debug("moving")

	e.gw.RequestMove(id, m.From, m.To)
	return m, nil
}

// MoveCompleted applies the move in flight and passes the turn. Only the
// first call per move has an effect.
func (e *Engine) MoveCompleted() error {
	if e.turn.Phase != models.PhaseMoving || e.pending == nil {
		return e.reject("move completed", ErrInvalidPhase)
	}
	m := *e.pending
	e.pending = nil

	if err := e.tokens.SetProgress(m.Token, true, m.To.Order); err != nil {
		e.log.WithError(err).Error("applying move")
	} else if m.Arrives {
		e.log.WithField("token", m.Token).Info("token arrived")
		e.gw.NotifyArrival(m.Token)
	}

	e.advance()
	return nil
}

// ResetView is forwarded to the gateway.
func (e *Engine) ResetView() {
	e.gw.ResetView()
}

// Resize is forwarded to the gateway.
func (e *Engine) Resize(width, height int) {
	e.gw.Resize(width, height)
}

// advance ends the turn: a six keeps the same player.
func (e *Engine) advance() {
	if e.turn.LastDie != 6 {
		e.turn.CurrentPlayer = (e.turn.CurrentPlayer + 1) % e.cfg.NumPlayers
	}
	e.turn.LastDie = 0
	e.turn.Phase = models.PhaseWaiting

	e.gw.DisplayTurn(e.turn.CurrentPlayer)
	e.gw.DisplayDie(0)
}

func (e *Engine) reject(cmd string, err error) error {
	e.log.WithFields(log.Fields{
		"command": cmd,
		"phase":   e.turn.Phase,
	}).Debug(err)
	return err
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Config() models.GameConfiguration {
	return e.cfg
}

func (e *Engine) Paths() *board.Paths {
	return e.paths
}

func (e *Engine) Turn() models.TurnState {
	return e.turn
}

func (e *Engine) Token(id models.TokenID) (models.Token, bool) {
	return e.tokens.Get(id)
}

func (e *Engine) Tokens(player int) []models.Token {
	return e.tokens.TokensOf(player)
}

// Candidates resolves the rolled die against each of the current player's
// tokens. It is empty outside the Rolled phase.
func (e *Engine) Candidates() []Move {
	if e.turn.Phase != models.PhaseRolled {
		return nil
	}
	var out []Move
	for _, t := range e.tokens.TokensOf(e.turn.CurrentPlayer) {
		out = append(out, Resolve(t, e.turn.LastDie, e.paths))
	}
	return out
}

// Snapshot copies the session state.
func (e *Engine) Snapshot() models.GameSession {
	lengths := make([]int, e.paths.Players())
	for p := range lengths {
		lengths[p] = e.paths.Len(p)
	}
	return models.GameSession{
		ID:          e.id,
		Config:      e.cfg,
		Turn:        e.turn,
		Tokens:      e.tokens.All(),
		PathLengths: lengths,
	}
}
