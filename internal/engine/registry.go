package engine

import (
	"fmt"

	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
)

// Registry owns every token of a session. Tokens are stored by ID (the slice
// index) with a per-owner list of IDs in creation order.
type Registry struct {
	tokens  []models.Token
	byOwner [][]models.TokenID
}

// NewRegistry creates pawnsPerPlayer home tokens for each player. Token IDs
// are owner*pawnsPerPlayer + slot.
func NewRegistry(numPlayers, pawnsPerPlayer int) *Registry {
	r := &Registry{
		tokens:  make([]models.Token, 0, numPlayers*pawnsPerPlayer),
		byOwner: make([][]models.TokenID, numPlayers),
	}
	for owner := 0; owner < numPlayers; owner++ {
		for slot := 0; slot < pawnsPerPlayer; slot++ {
			id := models.TokenID(len(r.tokens))
			r.tokens = append(r.tokens, models.Token{ID: id, Owner: owner, Slot: slot})
			r.byOwner[owner] = append(r.byOwner[owner], id)
		}
	}
	return r
}

func (r *Registry) Get(id models.TokenID) (models.Token, bool) {
	if id < 0 || int(id) >= len(r.tokens) {
		return models.Token{}, false
	}
	return r.tokens[id], true
}

// TokensOf returns a copy of the player's tokens in creation order.
func (r *Registry) TokensOf(player int) []models.Token {
	if player < 0 || player >= len(r.byOwner) {
		return nil
	}
	out := make([]models.Token, 0, len(r.byOwner[player]))
	for _, id := range r.byOwner[player] {
		out = append(out, r.tokens[id])
	}
	return out
}

// IDsOf returns the player's token IDs in creation order.
func (r *Registry) IDsOf(player int) []models.TokenID {
	if player < 0 || player >= len(r.byOwner) {
		return nil
	}
	return append([]models.TokenID(nil), r.byOwner[player]...)
}

func (r *Registry) All() []models.Token {
	return append([]models.Token(nil), r.tokens...)
}

// SetProgress records a completed move. Progress may only grow, and a home
// token can only leave home, never the reverse.
func (r *Registry) SetProgress(id models.TokenID, inPlay bool, progress int) error {
	t, ok := r.Get(id)
	if !ok {
		return fmt.Errorf("token %d: %w", id, ErrTokenNotFound)
	}
	switch {
	case !inPlay && progress != 0:
		return fmt.Errorf("token %d: home token with progress %d", id, progress)
	case inPlay && progress < 1:
		return fmt.Errorf("token %d: in-play token with progress %d", id, progress)
	case t.InPlay && !inPlay:
		return fmt.Errorf("token %d: cannot return home", id)
	case progress < t.Progress:
		return fmt.Errorf("token %d: progress %d would go back from %d", id, progress, t.Progress)
	}
	r.tokens[id].InPlay = inPlay
	r.tokens[id].Progress = progress
	return nil
}
