package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Deck is the draw stack. Cards are drawn from the front.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// NewDeck builds the standard 108 cards and shuffles them.
func NewDeck(rng *rand.Rand) *Deck {
	deck := NewDeckFromCards(BuildStandardCards(), rng)
	deck.Shuffle()
	return deck
}

// NewDeckFromCards keeps the given order; cards[0] is drawn first.
func NewDeckFromCards(cards []card.Card, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	deck := &Deck{cards: make([]card.Card, len(cards)), rng: rng}
	copy(deck.cards, cards)
	return deck
}

// BuildStandardCards returns the unshuffled card set with ids 0..107.
func BuildStandardCards() []card.Card {
	cards := make([]card.Card, 0, 108)
	cards = appendBlackCards(cards)
	for _, cardColor := range color.All {
		cards = appendColorCards(cards, cardColor)
	}
	return cards
}

func appendColorCards(cards []card.Card, cardColor color.Color) []card.Card {
	cards = append(cards, card.MustNew(len(cards), cardColor, 0))
	for number := 1; number <= 9; number++ {
		cards = append(cards, card.MustNew(len(cards), cardColor, card.Value(number)))
		cards = append(cards, card.MustNew(len(cards), cardColor, card.Value(number)))
	}
	for _, value := range []card.Value{card.Skip, card.Reverse, card.DrawTwo} {
		cards = append(cards, card.MustNew(len(cards), cardColor, value))
		cards = append(cards, card.MustNew(len(cards), cardColor, value))
	}
	return cards
}

func appendBlackCards(cards []card.Card) []card.Card {
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildCard(len(cards)))
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, card.NewWildDrawFourCard(len(cards)))
	}
	return cards
}

// Shuffle applies a Fisher-Yates permutation.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

// Draw removes up to amount cards; fewer are returned when the deck runs out.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount <= 0 {
		return []card.Card{}
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return card.Card{}, false
	}
	return cards[0], true
}

// Insert puts a card back at a random position.
func (d *Deck) Insert(c card.Card) {
	position := d.rng.Intn(len(d.cards) + 1)
	d.cards = append(d.cards, card.Card{})
	copy(d.cards[position+1:], d.cards[position:])
	d.cards[position] = c
}

// Refill adds reclaimed cards and reshuffles the whole deck.
func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
