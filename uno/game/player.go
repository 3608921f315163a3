package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Choice is what an automated player wants to do with its turn.
type Choice struct {
	Card    card.Card
	Color   color.Color
	CallUno bool
}

// Policy picks a card for an automated seat. It returns nil when no card in
// hand is playable, which means the seat draws.
type Policy interface {
	Name() string
	ChooseAction(hand []card.Card, topCard card.Card, activeColor color.Color) *Choice
}

// Player is a seat at the table. IDs start at 1 and follow seat order.
type Player struct {
	id        int
	name      string
	human     bool
	hand      *Hand
	unoCalled bool
	score     int
}

func newPlayer(id int, name string, human bool) *Player {
	return &Player{
		id:    id,
		name:  name,
		human: human,
		hand:  NewHand(),
	}
}

func (p *Player) ID() int {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsHuman() bool {
	return p.human
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) UnoCalled() bool {
	return p.unoCalled
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) addCards(cards []card.Card) {
	if len(cards) == 0 {
		return
	}
	p.hand.AddCards(cards)
	p.unoCalled = false
}

func (p *Player) view() PlayerView {
	return PlayerView{
		ID:        p.id,
		Name:      p.name,
		IsHuman:   p.human,
		Hand:      p.hand.Cards(),
		HandSize:  p.hand.Size(),
		UnoCalled: p.unoCalled,
		Score:     p.score,
	}
}
