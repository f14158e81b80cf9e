// Package board holds the per-player paths a token walks from entry to goal.
//
// Board geometry (polygon, cross, grid) belongs to the front end; this package
// only knows the ordered cell sequence of every player. All cells live in one
// arena slice and each player owns a contiguous window of it, so a lookup by
// (player, order) is a single index operation.
package board

import (
	"fmt"

	"github.com/Alucard666haku/front-end-ludo-app/internal/models"
)

type Paths struct {
	cells  []models.PathCell
	offset []int
	length []int
}

// NewUniform builds numPlayers paths of pathLength cells each.
func NewUniform(numPlayers, pathLength int) (*Paths, error) {
	if numPlayers < 0 {
		return nil, fmt.Errorf("negative player count %d", numPlayers)
	}
	lengths := make([]int, numPlayers)
	for i := range lengths {
		lengths[i] = pathLength
	}
	return New(lengths)
}

// New builds one path per entry of lengths. A zero length is allowed and
// yields a player whose tokens can never enter the board.
func New(lengths []int) (*Paths, error) {
	total := 0
	for player, n := range lengths {
		if n < 0 {
			return nil, fmt.Errorf("player %d: negative path length %d", player, n)
		}
		total += n
	}

	p := &Paths{
		cells:  make([]models.PathCell, 0, total),
		offset: make([]int, len(lengths)),
		length: make([]int, len(lengths)),
	}
	for player, n := range lengths {
		p.offset[player] = len(p.cells)
		p.length[player] = n
		for order := 1; order <= n; order++ {
			p.cells = append(p.cells, models.PathCell{PlayerIndex: player, Order: order})
		}
	}
	return p, nil
}

func (p *Paths) Players() int {
	return len(p.length)
}

// Len returns the number of cells on the player's path, 0 for unknown players.
func (p *Paths) Len(player int) int {
	if player < 0 || player >= len(p.length) {
		return 0
	}
	return p.length[player]
}

// Cell returns the cell with the given 1-based order on the player's path.
func (p *Paths) Cell(player, order int) (models.PathCell, bool) {
	if order < 1 || order > p.Len(player) {
		return models.PathCell{}, false
	}
	return p.cells[p.offset[player]+order-1], true
}

// Home is the pseudo-cell a token occupies before entering the path.
func (p *Paths) Home(player int) models.PathCell {
	return models.PathCell{PlayerIndex: player}
}

// Entry is the first cell of the player's path.
func (p *Paths) Entry(player int) (models.PathCell, bool) {
	return p.Cell(player, 1)
}

// Goal is the last cell of the player's path.
func (p *Paths) Goal(player int) (models.PathCell, bool) {
	return p.Cell(player, p.Len(player))
}

// Cells returns a copy of the player's path in order.
func (p *Paths) Cells(player int) []models.PathCell {
	n := p.Len(player)
	out := make([]models.PathCell, n)
	if n > 0 {
		copy(out, p.cells[p.offset[player]:p.offset[player]+n])
	}
	return out
}
