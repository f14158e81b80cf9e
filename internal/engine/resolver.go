package engine

import (
	"github.com/Alucard666haku/front-end-ludo-app/internal/board"
	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
)

// Move is the outcome of resolving a die value against a token.
type Move struct {
	Token   models.TokenID
	Legal   bool
	From    models.PathCell
	To      models.PathCell
	Arrives bool
}

// Resolve computes where the token would go with the given die value.
//
// A home token needs a six to enter on order 1. A token in play always moves,
// clamped to the goal instead of bouncing or waiting for an exact roll. Any
// move that ends on the goal arrives, including one by a token already there.
func Resolve(t models.Token, die int, paths *board.Paths) Move {
	m := Move{Token: t.ID, From: paths.Home(t.Owner)}
	length := paths.Len(t.Owner)

	if !t.InPlay {
		if die != 6 {
			return m
		}
		entry, ok := paths.Entry(t.Owner)
		if !ok {
			return m
		}
		m.Legal = true
		m.To = entry
		m.Arrives = length == 1
		return m
	}

	from, ok := paths.Cell(t.Owner, t.Progress)
	if !ok {
		return m
	}
	m.From = from
	m.To, _ = paths.Cell(t.Owner, min(t.Progress+die, length))
	m.Legal = true
	m.Arrives = m.To.Order == length
	return m
}
