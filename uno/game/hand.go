package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(cardID int) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.ID == cardID {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) PlayableCards(topCard card.Card, activeColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, topCard, activeColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard drops the card with the given id, keeping the order of the rest.
func (h *Hand) RemoveCard(cardID int) (card.Card, bool) {
	for index, cardInHand := range h.cards {
		if cardInHand.ID == cardID {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Points sums the score value of the cards left in the hand.
func (h *Hand) Points() int {
	points := 0
	for _, cardInHand := range h.cards {
		points += cardInHand.Value.Points()
	}
	return points
}
