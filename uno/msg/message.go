package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(playerName string, cards []card.Card) string {
	return Sprintfln("%s drew %s!", playerName, cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return Sprintfln("%s, none of your cards match %s! Type 'draw'.", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("%s is thinking...", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPenalized(playerName string, amount int, forgotUno bool) string {
	if forgotUno {
		return Sprintfln("%s forgot to call UNO and draws %d!", playerName, amount)
	}
	return Sprintfln("%s must draw %d!", playerName, amount)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) PlayerCalledUno(playerName string) string {
	return Sprintfln("%s calls %s!", playerName, unoLogo())
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return Sprintfln("The discard pile was shuffled back into the deck (%d cards).", deckSize)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln("WELCOME TO %s", unoLogo())
}

func (m MessageWriter) WinnerFound(playerName string, score int) string {
	return Sprintfln("%s wins and scores %d point(s)!", playerName, score)
}

func (m MessageWriter) ActionHelp(canPass bool) string {
	commands := []string{"a card letter to play it", "'draw'", "'uno' with two cards left"}
	if canPass {
		commands = append(commands, "'pass'")
	}
	return Sprintfln("Enter %s.", strings.Join(commands, ", "))
}

func (m MessageWriter) ColorPrompt() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func unoLogo() string {
	return fmt.Sprintf(
		"%s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}
