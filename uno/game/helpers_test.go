package game_test

import (
	"math/rand"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func c(cardColor color.Color, value card.Value) card.Card {
	if value.Kind() == card.KindWild {
		return card.MustNew(-1, color.Wild, value)
	}
	return card.MustNew(-1, cardColor, value)
}

// stacked returns the standard cards with the ones matching front moved to
// the top of the deck, in order. The real ids are kept.
func stacked(front ...card.Card) []card.Card {
	rest := game.BuildStandardCards()
	cards := make([]card.Card, 0, len(rest))
	for _, wanted := range front {
		for index, candidate := range rest {
			if candidate.Equal(wanted) {
				cards = append(cards, candidate)
				rest = append(rest[:index], rest[index+1:]...)
				break
			}
		}
	}
	return append(cards, rest...)
}

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func config(names ...string) game.Config {
	humans := make([]bool, len(names))
	for i := range humans {
		humans[i] = true
	}
	return game.Config{
		Names:  names,
		Humans: humans,
		Rand:   rand.New(rand.NewSource(7)),
		Logger: quietLogger(),
	}
}

func cardID(t interface{ Fatalf(string, ...interface{}) }, hand []card.Card, wanted card.Card) int {
	for _, candidate := range hand {
		if candidate.Equal(wanted) {
			return candidate.ID
		}
	}
	t.Fatalf("%s not in hand %v", wanted, hand)
	return -1
}

// firstLegal plays the first playable card and always picks red.
type firstLegal struct{}

func (firstLegal) Name() string {
	return "first-legal"
}

func (firstLegal) ChooseAction(hand []card.Card, topCard card.Card, activeColor color.Color) *game.Choice {
	for _, candidate := range hand {
		if game.Playable(candidate, topCard, activeColor) {
			return &game.Choice{Card: candidate, Color: color.Red, CallUno: len(hand) == 2}
		}
	}
	return nil
}
