// Package advisor suggests which token the current player should move.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	log "github.com/sirupsen/logrus"
)

var ErrNoCandidates = errors.New("no tokens to choose from")

// Choice is a suggested selection.
type Choice struct {
	Token  models.TokenID `yaml:"token"`
	Reason string         `yaml:"reason"`
}

type Advisor interface {
	// Choose picks one of moves, the rolled die resolved against each of the
	// current player's tokens.
	Choose(ctx context.Context, session models.GameSession, moves []engine.Move) (Choice, error)
}

// Greedy prefers finishing a token, then entering a new one, then pushing
// the most advanced token still on its way.
type Greedy struct{}

func (Greedy) Choose(_ context.Context, session models.GameSession, moves []engine.Move) (Choice, error) {
	if len(moves) == 0 {
		return Choice{}, ErrNoCandidates
	}

	best, bestScore := moves[0], -1
	reason := "no legal move"
	for _, m := range moves {
		score, why := score(m, session.PathLen(session.Turn.CurrentPlayer))
		if score > bestScore {
			best, bestScore, reason = m, score, why
		}
	}
	return Choice{Token: best.Token, Reason: reason}, nil
}

func score(m engine.Move, pathLength int) (int, string) {
	switch {
	case !m.Legal:
		return 0, "no legal move"
	case m.From.Order == m.To.Order:
		return 1, "already at the goal, stays put"
	case m.Arrives:
		return 3*pathLength + 2, "reaches the goal"
	case m.From.IsHome():
		return 2*pathLength + 1, "enters the board"
	default:
		return pathLength + m.From.Order, fmt.Sprintf("advances from %d to %d", m.From.Order, m.To.Order)
	}
}

// Fallback asks Primary first and Secondary when Primary fails or picks a
// token that is not among the candidates.
type Fallback struct {
	Primary   Advisor
	Secondary Advisor
	Log       *log.Entry
}

func (f Fallback) Choose(ctx context.Context, session models.GameSession, moves []engine.Move) (Choice, error) {
	c, err := f.Primary.Choose(ctx, session, moves)
	if err == nil {
		if _, ok := find(moves, c.Token); ok {
			return c, nil
		}
		err = fmt.Errorf("token %d is not a candidate", c.Token)
	}
	if f.Log != nil {
		f.Log.WithError(err).Warn("advisor failed, falling back")
	}
	return f.Secondary.Choose(ctx, session, moves)
}

func find(moves []engine.Move, id models.TokenID) (engine.Move, bool) {
	for _, m := range moves {
		if m.Token == id {
			return m, true
		}
	}
	return engine.Move{}, false
}
