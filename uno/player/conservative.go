package player

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

// Conservative plays the card that leaves the most follow-up plays in hand.
type Conservative struct{}

func NewConservative() game.Policy {
	return Conservative{}
}

func (Conservative) Name() string {
	return consts.StrategyConservative
}

func (Conservative) ChooseAction(hand []card.Card, topCard card.Card, activeColor color.Color) *game.Choice {
	playable := playableCards(hand, topCard, activeColor)
	if len(playable) == 0 {
		return nil
	}

	var best *game.Choice
	maxSpareCards := -1
	for _, playableCard := range playable {
		choice := choose(hand, playableCard)
		nextColor := playableCard.Color
		if playableCard.Wild() {
			nextColor = choice.Color
		}
		spareCards := len(playableCards(without(hand, playableCard.ID), playableCard, nextColor))
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			best = choice
		}
	}
	return best
}
