package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/Alucard666haku/front-end-ludo-app/internal/engine"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(player, order int) models.PathCell {
	return models.PathCell{PlayerIndex: player, Order: order}
}

func testSession() models.GameSession {
	return models.GameSession{
		ID:     "s",
		Config: models.GameConfiguration{NumPlayers: 2, PawnsPerPlayer: 3, PathLength: 5},
		Turn:   models.TurnState{CurrentPlayer: 0, LastDie: 6, Phase: models.PhaseRolled},
		Tokens: []models.Token{
			{ID: 0, Owner: 0, Slot: 0, InPlay: true, Progress: 2},
			{ID: 1, Owner: 0, Slot: 1},
			{ID: 2, Owner: 0, Slot: 2, InPlay: true, Progress: 5},
			{ID: 3, Owner: 1, Slot: 0, InPlay: true, Progress: 4},
			{ID: 4, Owner: 1, Slot: 1},
			{ID: 5, Owner: 1, Slot: 2},
		},
	}
}

func TestGreedy(t *testing.T) {
	ctx := context.Background()
	s := testSession()

	enter := engine.Move{Token: 1, Legal: true, From: cell(0, 0), To: cell(0, 1)}
	advance := engine.Move{Token: 0, Legal: true, From: cell(0, 2), To: cell(0, 4)}
	finish := engine.Move{Token: 0, Legal: true, From: cell(0, 2), To: cell(0, 5), Arrives: true}
	parked := engine.Move{Token: 2, Legal: true, From: cell(0, 5), To: cell(0, 5), Arrives: true}
	stuck := engine.Move{Token: 1, From: cell(0, 0)}

	cases := []struct {
		name  string
		moves []engine.Move
		want  models.TokenID
	}{
		{"finish beats enter", []engine.Move{enter, finish, parked}, 0},
		{"enter beats advance", []engine.Move{advance, enter, parked}, 1},
		{"advance beats parked", []engine.Move{parked, advance, stuck}, 0},
		{"parked beats stuck", []engine.Move{stuck, parked}, 2},
		{"nothing legal picks first", []engine.Move{stuck}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Greedy{}.Choose(ctx, s, tc.moves)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Token)
			assert.NotEmpty(t, c.Reason)
		})
	}

	_, err := Greedy{}.Choose(ctx, s, nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestGreedyParkedReason(t *testing.T) {
	parked := engine.Move{Token: 2, Legal: true, From: cell(0, 5), To: cell(0, 5), Arrives: true}
	c, err := Greedy{}.Choose(context.Background(), testSession(), []engine.Move{parked})
	require.NoError(t, err)
	assert.Equal(t, "already at the goal, stays put", c.Reason)
}

func TestGreedyUsesOwnPathLength(t *testing.T) {
	s := testSession()
	s.PathLengths = []int{12, 5}

	enter := engine.Move{Token: 1, Legal: true, From: cell(0, 0), To: cell(0, 1)}
	advance := engine.Move{Token: 0, Legal: true, From: cell(0, 9), To: cell(0, 11)}
	c, err := Greedy{}.Choose(context.Background(), s, []engine.Move{advance, enter})
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(1), c.Token, "scored against the 12-cell path, not the configured 5")
}

type stubAdvisor struct {
	choice Choice
	err    error
}

func (s stubAdvisor) Choose(context.Context, models.GameSession, []engine.Move) (Choice, error) {
	return s.choice, s.err
}

func TestFallback(t *testing.T) {
	ctx := context.Background()
	moves := []engine.Move{
		{Token: 0, Legal: true, From: cell(0, 2), To: cell(0, 4)},
		{Token: 1, Legal: true, From: cell(0, 0), To: cell(0, 1)},
	}
	secondary := stubAdvisor{choice: Choice{Token: 1, Reason: "fallback"}}

	c, err := Fallback{Primary: stubAdvisor{choice: Choice{Token: 0}}, Secondary: secondary}.Choose(ctx, testSession(), moves)
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(0), c.Token)

	c, err = Fallback{Primary: stubAdvisor{err: errors.New("quota")}, Secondary: secondary}.Choose(ctx, testSession(), moves)
	require.NoError(t, err)
	assert.Equal(t, "fallback", c.Reason)

	c, err = Fallback{Primary: stubAdvisor{choice: Choice{Token: 9}}, Secondary: secondary}.Choose(ctx, testSession(), moves)
	require.NoError(t, err)
	assert.Equal(t, "fallback", c.Reason)
}

func TestParseChoice(t *testing.T) {
	moves := []engine.Move{{Token: 0}, {Token: 1}}

	c, err := parseChoice("```yaml\ntoken: 1\nreason: enters the board\n```", moves)
	require.NoError(t, err)
	assert.Equal(t, Choice{Token: 1, Reason: "enters the board"}, c)

	c, err = parseChoice("token: 0", moves)
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(0), c.Token)

	_, err = parseChoice("reason: forgot the token", moves)
	assert.Error(t, err)
	_, err = parseChoice("token: 7", moves)
	assert.Error(t, err)
	_, err = parseChoice("token: [", moves)
	assert.Error(t, err)
}

func TestRenderPrompt(t *testing.T) {
	moves := []engine.Move{
		{Token: 0, Legal: true, From: cell(0, 2), To: cell(0, 5), Arrives: true},
		{Token: 1, Legal: true, From: cell(0, 0), To: cell(0, 1)},
	}

	prompt, err := renderPrompt(testSession(), moves)
	require.NoError(t, err)
	assert.Contains(t, prompt, "The die shows 6.")
	assert.Contains(t, prompt, "- token 0 (pawn P1): at p0:2, would move to p0:5 and reach the goal")
	assert.Contains(t, prompt, "- token 1 (pawn P2): at p0:home, would move to p0:1")
	assert.Contains(t, prompt, "- player 1: 4, 0, 0")
	assert.Contains(t, prompt, "private path of 5 cells")
}

func TestRenderPromptParkedAndUnevenPaths(t *testing.T) {
	s := testSession()
	s.PathLengths = []int{7, 5}
	moves := []engine.Move{
		{Token: 2, Legal: true, From: cell(0, 7), To: cell(0, 7), Arrives: true},
	}

	prompt, err := renderPrompt(s, moves)
	require.NoError(t, err)
	assert.Contains(t, prompt, "- token 2 (pawn P3): at p0:7, already at the goal and stays put")
	assert.NotContains(t, prompt, "reach the goal")
	assert.Contains(t, prompt, "private path of 7 cells")
}
