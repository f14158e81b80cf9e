package engine

import "github.com/Alucard666haku/front-end-ludo-app/internal/models"

// Gateway is everything the engine needs from rendering, animation and UI.
//
// RequestRoll and RequestMove start asynchronous work; the implementation
// must eventually call Engine.RollSettled or Engine.MoveCompleted, on the same
// goroutine that drives the engine. The engine tolerates duplicate calls.
type Gateway interface {
	RequestRoll(faces []int)
	RequestMove(id models.TokenID, from, to models.PathCell)
	NotifyArrival(id models.TokenID)
	DisplayTurn(player int)
	DisplayDie(value int)
	OfferTokens(ids []models.TokenID)
	RejectSelection(id models.TokenID)
	ResetView()
	Resize(width, height int)
}

// NopGateway ignores every call. Embed it to implement only part of Gateway.
type NopGateway struct{}

func (NopGateway) RequestRoll([]int) {}
func (NopGateway) RequestMove(models.TokenID, models.PathCell, models.PathCell) {}
func (NopGateway) NotifyArrival(models.TokenID) {}
func (NopGateway) DisplayTurn(int) {}
func (NopGateway) DisplayDie(int) {}
func (NopGateway) OfferTokens([]models.TokenID) {}
func (NopGateway) RejectSelection(models.TokenID) {}
func (NopGateway) ResetView() {}
func (NopGateway) Resize(int, int) {}
