package card

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Kind int

const (
	KindNumber Kind = iota
	KindAction
	KindWild
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindAction:
		return "action"
	case KindWild:
		return "wild"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a face value: 0..9 for number cards, or one of the named values below.
type Value int

const (
	Skip Value = 10 + iota
	Reverse
	DrawTwo
	WildCard
	WildDrawFour
)

func (v Value) Kind() Kind {
	switch {
	case v >= 0 && v <= 9:
		return KindNumber
	case v == Skip || v == Reverse || v == DrawTwo:
		return KindAction
	default:
		return KindWild
	}
}

func (v Value) Valid() bool {
	return v >= 0 && v <= WildDrawFour
}

// Points is the score a card is worth when left in an opponent's hand.
func (v Value) Points() int {
	switch v.Kind() {
	case KindNumber:
		return int(v)
	case KindAction:
		return 20
	default:
		return 50
	}
}

func (v Value) String() string {
	switch v {
	case Skip:
		return "skip"
	case Reverse:
		return "reverse"
	case DrawTwo:
		return "draw2"
	case WildCard:
		return "wild"
	case WildDrawFour:
		return "wild4"
	default:
		return fmt.Sprintf("%d", int(v))
	}
}

// Card is an immutable card value. Build one with New so the
// color/kind invariant holds.
type Card struct {
	ID    int         `json:"id"`
	Color color.Color `json:"color"`
	Value Value       `json:"value"`
	Kind  Kind        `json:"kind"`
}

// New validates and builds a card: wild cards carry color.Wild and every
// other card carries a playable color.
func New(id int, c color.Color, v Value) (Card, error) {
	if !v.Valid() {
		return Card{}, fmt.Errorf("invalid card value %d", int(v))
	}
	kind := v.Kind()
	if kind == KindWild && c != color.Wild {
		return Card{}, fmt.Errorf("wild card %s cannot carry color %s", v, c.Name())
	}
	if kind != KindWild && !c.Real() {
		return Card{}, fmt.Errorf("%s card %s needs a playable color", kind, v)
	}
	return Card{ID: id, Color: c, Value: v, Kind: kind}, nil
}

func MustNew(id int, c color.Color, v Value) Card {
	card, err := New(id, c, v)
	if err != nil {
		panic(err)
	}
	return card
}

func NewNumberCard(id int, c color.Color, number int) (Card, error) {
	if number < 0 || number > 9 {
		return Card{}, fmt.Errorf("number %d out of range", number)
	}
	return New(id, c, Value(number))
}

func NewWildCard(id int) Card {
	return MustNew(id, color.Wild, WildCard)
}

func NewWildDrawFourCard(id int) Card {
	return MustNew(id, color.Wild, WildDrawFour)
}

func (c Card) Wild() bool {
	return c.Kind == KindWild
}

// Number returns the face number and whether the card is a number card.
func (c Card) Number() (int, bool) {
	if c.Kind != KindNumber {
		return 0, false
	}
	return int(c.Value), true
}

func (c Card) Actions() []action.Action {
	switch c.Value {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(2),
		}
	case WildCard:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewSkipTurnAction(),
			action.NewDrawCardsAction(4),
		}
	default:
		return []action.Action{}
	}
}

// Equal compares face (color and value), ignoring the id.
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Value == other.Value
}

func (c Card) String() string {
	switch c.Value {
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	case DrawTwo:
		return c.Color.Paint("+2!")
	case WildCard:
		return c.Color.Paint("(*)")
	case WildDrawFour:
		return c.Color.Paint("+4!")
	default:
		return c.Color.Paintf("[%d]", int(c.Value))
	}
}
