package player

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

func playableCards(hand []card.Card, topCard card.Card, activeColor color.Color) []card.Card {
	var playable []card.Card
	for _, candidate := range hand {
		if game.Playable(candidate, topCard, activeColor) {
			playable = append(playable, candidate)
		}
	}
	return playable
}

func without(hand []card.Card, cardID int) []card.Card {
	rest := make([]card.Card, 0, len(hand))
	for _, handCard := range hand {
		if handCard.ID != cardID {
			rest = append(rest, handCard)
		}
	}
	return rest
}

// favoriteColor is the most common color among the non-wild cards, ties going
// to the earlier entry of color.All. An all-wild or empty hand picks red.
func favoriteColor(cards []card.Card) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range cards {
		if !handCard.Wild() {
			colorCounts[handCard.Color]++
		}
	}

	mostFrequentColor := color.Red
	mostFrequentColorAmount := 0
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

func choose(hand []card.Card, selected card.Card) *game.Choice {
	choice := &game.Choice{
		Card:    selected,
		CallUno: len(hand) == 2,
	}
	if selected.Wild() {
		choice.Color = favoriteColor(without(hand, selected.ID))
	}
	return choice
}
