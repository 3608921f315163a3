package player

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

// Offensive plays action and wild cards as soon as it can and keeps number
// cards for later.
type Offensive struct{}

func NewOffensive() game.Policy {
	return Offensive{}
}

func (Offensive) Name() string {
	return consts.StrategyOffensive
}

func (Offensive) ChooseAction(hand []card.Card, topCard card.Card, activeColor color.Color) *game.Choice {
	playable := playableCards(hand, topCard, activeColor)
	if len(playable) == 0 {
		return nil
	}
	for _, candidate := range playable {
		if candidate.Kind != card.KindNumber {
			return choose(hand, candidate)
		}
	}
	return choose(hand, playable[0])
}
