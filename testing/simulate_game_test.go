package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/Alucard666haku/front-end-ludo-app/internal/advisor"
	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T, cfg models.GameConfiguration, faces ...int) (*engine.Engine, *headless) {
	t.Helper()
	l := log.New()
	l.SetOutput(io.Discard)
	gw := &headless{}
	eng, err := engine.New(cfg, gw,
		engine.WithDice(engine.NewScriptedDice(faces...)),
		engine.WithFlicker(engine.NewScriptedDice(3)),
		engine.WithLogger(log.NewEntry(l)),
	)
	require.NoError(t, err)
	return eng, gw
}

func TestSimulateRecordsTurns(t *testing.T) {
	cfg := models.GameConfiguration{NumPlayers: 2, PawnsPerPlayer: 1, PathLength: 3}
	eng, gw := newSim(t, cfg, 2, 6, 6, 6, 1)

	tr, err := simulate(context.Background(), eng, gw, advisor.Greedy{}, 4)
	require.NoError(t, err)
	require.Len(t, tr.Turns, 4)

	first := tr.Turns[0]
	assert.Equal(t, 1, first.Turn)
	assert.Equal(t, 0, first.Player)
	assert.True(t, first.Rejected)
	assert.False(t, first.ExtraTurn)

	enter := tr.Turns[1]
	assert.Equal(t, 1, enter.Player)
	assert.Equal(t, "p1:home", enter.From)
	assert.Equal(t, "p1:1", enter.To)
	assert.True(t, enter.ExtraTurn)

	goal := tr.Turns[2]
	assert.Equal(t, "p1:3", goal.To)
	assert.True(t, goal.Arrived)
	assert.True(t, goal.ExtraTurn)

	parked := tr.Turns[3]
	assert.Equal(t, "p1:3", parked.From)
	assert.Equal(t, "p1:3", parked.To)
	assert.True(t, parked.Arrived, "landing on the goal again still arrives")

	assert.Len(t, tr.Final, 2)
	assert.Equal(t, models.PhaseWaiting, eng.Turn().Phase)
}

func TestSimulateStopsWhenEveryTokenArrived(t *testing.T) {
	cfg := models.GameConfiguration{NumPlayers: 2, PawnsPerPlayer: 1, PathLength: 1}
	eng, gw := newSim(t, cfg, 6, 1, 6)

	tr, err := simulate(context.Background(), eng, gw, advisor.Greedy{}, 100)
	require.NoError(t, err)
	require.Len(t, tr.Turns, 3)
	assert.True(t, tr.Turns[0].Arrived)
	assert.True(t, tr.Turns[1].Arrived)
	assert.Equal(t, 0, tr.Turns[1].Player)
	assert.Equal(t, 1, tr.Turns[2].Player)
	assert.True(t, tr.Turns[2].Arrived)
	assert.True(t, finished(eng))
}

func TestTranscriptWritten(t *testing.T) {
	cfg := models.GameConfiguration{NumPlayers: 3, PawnsPerPlayer: 2, PathLength: 4}
	eng, gw := newSim(t, cfg, 6, 3, 5, 6, 2)

	tr, err := simulate(context.Background(), eng, gw, advisor.Greedy{}, 10)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "transcript.yaml")
	require.NoError(t, tr.Save(path))
	got, err := models.LoadTranscript(path)
	require.NoError(t, err)
	assert.Equal(t, eng.ID(), got.SessionID)
	assert.Equal(t, cfg, got.Config)
	assert.Len(t, got.Turns, 10)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Turn 3: player 1 rolled 6, token 4 p1:home -> p1:1, rolls again",
		describe(models.TurnRecord{Turn: 3, Player: 1, Die: 6, Token: 4, From: "p1:home", To: "p1:1", ExtraTurn: true}))
	assert.Equal(t, "Turn 1: player 0 rolled 2, token 0 cannot move",
		describe(models.TurnRecord{Turn: 1, Player: 0, Die: 2, Token: 0, Rejected: true}))
}
