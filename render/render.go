package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/uno-server/uno/game"
)

func HomeOptions() string {
	buf := bytes.Buffer{}
	buf.WriteString("1.New game\n")
	buf.WriteString("2.Rules\n")
	return buf.String()
}

func Rules() string {
	buf := bytes.Buffer{}
	buf.WriteString("Match the top card by color or by value, or play a wild card.\n")
	buf.WriteString("Skip (/) skips the next player, reverse <=> flips the turn order,\n")
	buf.WriteString("+2! and +4! make the next player draw and lose their turn.\n")
	buf.WriteString("Call 'uno' while holding two cards before you play down to one,\n")
	buf.WriteString("or you draw two cards as a penalty. First empty hand wins the round\n")
	buf.WriteString("and scores the cards left in the other hands.\n")
	return buf.String()
}

func direction(snapshot game.Snapshot) string {
	if snapshot.Direction < 0 {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Table renders everything visible to the whole table: no hands.
func Table(snapshot game.Snapshot) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-3s%-20s%-10s%-6s%-10s\n", "", "Name", "Cards", "UNO", "Score"))
	for index, player := range snapshot.Players {
		marker := ""
		if index == snapshot.CurrentPlayer {
			marker = ">"
		}
		uno := ""
		if player.UnoCalled {
			uno = "yes"
		}
		buf.WriteString(fmt.Sprintf("%-3s%-20s%-10d%-6s%-10d\n", marker, player.Name, player.HandSize, uno, player.Score))
	}
	buf.WriteString(fmt.Sprintf("Top card: %s, active color: %s, %s\n", snapshot.Top, snapshot.ActiveColor, direction(snapshot)))
	buf.WriteString(fmt.Sprintf("Deck: %d, discard pile: %d\n", snapshot.DeckSize, snapshot.DiscardSize))
	if snapshot.PendingPenalty > 0 && snapshot.PenaltyTarget >= 0 {
		buf.WriteString(fmt.Sprintf("%s has to draw %d\n", snapshot.Players[snapshot.PenaltyTarget].Name, snapshot.PendingPenalty))
	}
	return buf.String()
}

// Standings lists every player with the cards left in hand once a round is over.
func Standings(snapshot game.Snapshot) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-20s%-10s%-10s\n", "Name", "Score", "Title"))
	for index, player := range snapshot.Players {
		title := "player"
		if index == snapshot.Winner {
			title = "winner"
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10d%-10s\n", player.Name, player.Score, title))
	}
	return buf.String()
}
