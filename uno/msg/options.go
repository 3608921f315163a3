package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/uno/card"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

// CardOption binds a typed label to a card in hand.
type CardOption struct {
	Label string
	Card  card.Card
}

// CardOptions labels cards A, B, C... in hand order.
func CardOptions(cards []card.Card) []CardOption {
	sequence := runeSequence{}
	options := make([]CardOption, 0, len(cards))
	for _, c := range cards {
		options = append(options, CardOption{Label: string(sequence.next()), Card: c})
	}
	return options
}

func FindOption(options []CardOption, label string) (CardOption, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for _, option := range options {
		if option.Label == label {
			return option, true
		}
	}
	return CardOption{}, false
}

// CardSelection lists the options, marking the ones playable reports true for.
func CardSelection(options []CardOption, playable func(card.Card) bool) string {
	lines := []string{"Your hand:"}
	for _, option := range options {
		marker := " "
		if playable(option.Card) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %s (enter %s)", marker, option.Card, option.Label))
	}
	return Sprintlns(lines)
}
