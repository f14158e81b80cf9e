package tui

import "github.com/Alucard666haku/front-end-ludo-app/internal/models"

// Effects the engine asks the screen for. The engine runs inside Update, so
// the gateway only queues them and the model applies them before returning.
type (
	rollEffect struct {
		faces []int
	}
	moveEffect struct {
		id       models.TokenID
		from, to models.PathCell
	}
	arrivalEffect struct {
		id models.TokenID
	}
	turnEffect struct {
		player int
	}
	dieEffect struct {
		value int
	}
	offerEffect struct {
		ids []models.TokenID
	}
	rejectEffect struct {
		id models.TokenID
	}
	resizeEffect struct {
		width, height int
	}
)

type resetViewEffect struct{}

type gateway struct {
	queue []any
}

func (g *gateway) push(e any) {
	g.queue = append(g.queue, e)
}

func (g *gateway) drain() []any {
	q := g.queue
	g.queue = nil
	return q
}

func (g *gateway) RequestRoll(faces []int) {
	g.push(rollEffect{faces: faces})
}

func (g *gateway) RequestMove(id models.TokenID, from, to models.PathCell) {
	g.push(moveEffect{id: id, from: from, to: to})
}

func (g *gateway) NotifyArrival(id models.TokenID) {
	g.push(arrivalEffect{id: id})
}

func (g *gateway) DisplayTurn(player int) {
	g.push(turnEffect{player: player})
}

func (g *gateway) DisplayDie(value int) {
	g.push(dieEffect{value: value})
}

func (g *gateway) OfferTokens(ids []models.TokenID) {
	g.push(offerEffect{ids: ids})
}

func (g *gateway) RejectSelection(id models.TokenID) {
	g.push(rejectEffect{id: id})
}

func (g *gateway) ResetView() {
	g.push(resetViewEffect{})
}

func (g *gateway) Resize(width, height int) {
	g.push(resizeEffect{width: width, height: height})
}
