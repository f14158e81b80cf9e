package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/Alucard666haku/front-end-ludo-app/internal/advisor"
	"github.com/Alucard666haku/front-end-ludo-app/internal/config"
	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	log "github.com/sirupsen/logrus"
)

func main() {
	turns := flag.Int("turns", 200, "maximum number of turns to play")
	out := flag.String("out", "transcript.yaml", "where to write the transcript")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	logger := log.WithField("app", "simulate")

	var adv advisor.Advisor = advisor.Greedy{}
	if cfg.AdvisorEnabled() {
		gem, err := advisor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create advisor: %v", err)
		}
		defer gem.Close()
		adv = advisor.Fallback{Primary: gem, Secondary: advisor.Greedy{}, Log: logger}
	}

	gw := &headless{}
	eng, err := engine.New(cfg.Game(), gw,
		engine.WithDice(engine.NewRandomDice(cfg.Seed)),
		engine.WithRollFrames(cfg.RollFrames),
		engine.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to configure game: %v", err)
	}

	fmt.Printf("--- Session %s: %d players, %d pawns, path %d ---\n",
		eng.ID(), cfg.NumPlayers, cfg.PawnsPerPlayer, cfg.PathLength)

	tr, err := simulate(ctx, eng, gw, adv, *turns)
	if err != nil {
		log.Fatalf("Simulation stopped: %v", err)
	}
	for _, r := range tr.Turns {
		fmt.Println(describe(r))
	}
	if err := tr.Save(*out); err != nil {
		log.Fatalf("Failed to save transcript: %v", err)
	}
	fmt.Printf("\nTranscript written to %s\n", *out)
}

// headless stands in for a screen: it finishes every roll and move at once
// by remembering what the engine is waiting on.
type headless struct {
	engine.NopGateway
	rolling bool
	moving  bool
	arrived []models.TokenID
}

func (h *headless) RequestRoll([]int) { h.rolling = true }

func (h *headless) RequestMove(models.TokenID, models.PathCell, models.PathCell) {
	h.moving = true
}

func (h *headless) NotifyArrival(id models.TokenID) {
	h.arrived = append(h.arrived, id)
}

// simulate plays up to maxTurns turns, or until every token has reached its
// goal, letting adv pick the token each time.
func simulate(ctx context.Context, eng *engine.Engine, gw *headless, adv advisor.Advisor, maxTurns int) (*models.Transcript, error) {
	tr := &models.Transcript{SessionID: eng.ID(), Config: eng.Config()}

	for len(tr.Turns) < maxTurns && !finished(eng) {
		player := eng.Turn().CurrentPlayer
		if _, err := eng.RollDice(); err != nil {
			return tr, err
		}
		if gw.rolling {
			gw.rolling = false
			if err := eng.RollSettled(); err != nil {
				return tr, err
			}
		}
		die := eng.Turn().LastDie

		choice, err := adv.Choose(ctx, eng.Snapshot(), eng.Candidates())
		if err != nil {
			return tr, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
		}
		m, err := eng.SelectToken(choice.Token)
		if err != nil {
			return tr, fmt.Errorf("turn %d: %w", len(tr.Turns)+1, err)
		}

		gw.arrived = nil
		if gw.moving {
			gw.moving = false
			if err := eng.MoveCompleted(); err != nil {
				return tr, err
			}
		}

		rec := models.TurnRecord{
			Player:    player,
			Die:       die,
			Token:     choice.Token,
			Rejected:  !m.Legal,
			ExtraTurn: eng.Turn().CurrentPlayer == player,
			Reason:    choice.Reason,
		}
		if m.Legal {
			rec.From = m.From.ID()
			rec.To = m.To.ID()
			rec.Arrived = len(gw.arrived) > 0
		}
		tr.Append(rec)
	}

	if eng.Turn().Phase != models.PhaseWaiting {
		return tr, errors.New("session left mid-turn")
	}
	tr.Final = eng.Snapshot().Tokens
	return tr, nil
}

func finished(eng *engine.Engine) bool {
	for p := 0; p < eng.Config().NumPlayers; p++ {
		length := eng.Paths().Len(p)
		for _, t := range eng.Tokens(p) {
			if !t.AtGoal(length) {
				return false
			}
		}
	}
	return true
}

func describe(r models.TurnRecord) string {
	s := fmt.Sprintf("Turn %d: player %d rolled %d, token %d", r.Turn, r.Player, r.Die, r.Token)
	switch {
	case r.Rejected:
		s += " cannot move"
	default:
		s += fmt.Sprintf(" %s -> %s", r.From, r.To)
	}
	if r.Arrived {
		s += " (goal!)"
	}
	if r.ExtraTurn {
		s += ", rolls again"
	}
	return s
}
