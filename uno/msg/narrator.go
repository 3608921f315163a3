package msg

import "github.com/ratel-online/uno-server/uno/event"

// Narrator turns session events into table messages. reveal decides whether
// the cards a player draws are shown or only counted.
type Narrator struct {
	write  func(string)
	reveal func(playerID int) bool
}

func NewNarrator(write func(string), reveal func(playerID int) bool) *Narrator {
	return &Narrator{write: write, reveal: reveal}
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.write(Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.write(Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.write(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.write(Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	switch payload.Reason {
	case event.ReasonPenalty:
		n.write(Message.PlayerPenalized(payload.PlayerName, len(payload.Cards), false))
	case event.ReasonUnoPenalty:
		n.write(Message.PlayerPenalized(payload.PlayerName, len(payload.Cards), true))
	}
	if n.reveal(payload.PlayerID) {
		n.write(Message.HumanPlayerDrewCards(payload.PlayerName, payload.Cards))
		return
	}
	n.write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.write(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnDirectionReversed(event.DirectionReversedPayload) {
	n.write(Message.TurnOrderReversed())
}

func (n *Narrator) OnUnoCalled(payload event.UnoCalledPayload) {
	n.write(Message.PlayerCalledUno(payload.PlayerName))
}

func (n *Narrator) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	n.write(Message.DeckReshuffled(payload.DeckSize))
}

func (n *Narrator) OnTurnStarted(payload event.TurnStartedPayload) {
	if n.reveal(payload.PlayerID) {
		n.write(Message.HumanPlayerTurnStarted(payload.PlayerName))
		return
	}
	n.write(Message.PlayerTurnStarted(payload.PlayerName))
}

func (n *Narrator) OnRoundOver(payload event.RoundOverPayload) {
	n.write(Message.WinnerFound(payload.WinnerName, payload.Score))
}
