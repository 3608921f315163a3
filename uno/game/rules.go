package game

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Playable reports whether candidateCard may be played on topCard while
// activeColor is in force. Value equality covers both numbers and action names.
func Playable(candidateCard card.Card, topCard card.Card, activeColor color.Color) bool {
	return candidateCard.Color == activeColor ||
		candidateCard.Wild() ||
		candidateCard.Value == topCard.Value
}

// Effect describes what a played card does to the table.
type Effect struct {
	NextActiveColor color.Color
	Reverse         bool
	SkipCount       int
	DrawPenalty     int
	IsWin           bool
}

// DirectionDelta is -2 when the direction flips and 0 otherwise.
func (e Effect) DirectionDelta() int {
	if e.Reverse {
		return -2
	}
	return 0
}

// Apply returns the direction after the effect.
func (e Effect) Apply(direction int) int {
	return direction + e.DirectionDelta()*direction
}

// ResolveEffect folds the card's actions into an Effect. chosenColor is only
// read for wild cards, where color.Wild means no choice was made.
// remaining is the size of the player's hand after the card leaves it.
func ResolveEffect(playedCard card.Card, chosenColor color.Color, playerCount int, remaining int) (Effect, error) {
	effect := Effect{
		NextActiveColor: playedCard.Color,
		IsWin:           remaining == 0,
	}
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.PickColorAction:
			if !chosenColor.Real() {
				return Effect{}, consts.ErrorsMissingColorChoice
			}
			effect.NextActiveColor = chosenColor
		case action.SkipTurnAction:
			effect.SkipCount = 1
		case action.ReverseTurnsAction:
			effect.Reverse = true
			// With two seats a reverse hands the turn straight back, like a skip.
			if playerCount == 2 {
				effect.SkipCount = 1
			}
		case action.DrawCardsAction:
			effect.DrawPenalty = cardAction.Amount()
		}
	}
	return effect, nil
}

// PickNextPlayer moves from currentIndex in direction, jumping over skipCount seats.
func PickNextPlayer(currentIndex, direction, playerCount, skipCount int) int {
	if playerCount <= 0 {
		return 0
	}
	next := (currentIndex + direction*(1+skipCount)) % playerCount
	if next < 0 {
		next += playerCount
	}
	return next
}
