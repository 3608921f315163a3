package event

import "github.com/ratel-online/uno-server/uno/card"

type CardsDrawnPayload struct {
	PlayerID   int
	PlayerName string
	Cards      []card.Card
	Reason     DrawReason
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}

type DrawReason int

const (
	ReasonDeal DrawReason = iota
	ReasonDraw
	ReasonPenalty
	ReasonUnoPenalty
)

func (r DrawReason) String() string {
	switch r {
	case ReasonDeal:
		return "deal"
	case ReasonDraw:
		return "draw"
	case ReasonPenalty:
		return "penalty"
	case ReasonUnoPenalty:
		return "uno-penalty"
	default:
		return "unknown"
	}
}
