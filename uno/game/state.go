package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type PlayerView struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	IsHuman   bool        `json:"isHuman"`
	Hand      []card.Card `json:"hand"`
	HandSize  int         `json:"handSize"`
	UnoCalled bool        `json:"unoCalled"`
	Score     int         `json:"score"`
}

// Snapshot is a read-only copy of the table. Indexes refer to Players.
type Snapshot struct {
	SessionID      uuid.UUID    `json:"sessionId"`
	Players        []PlayerView `json:"players"`
	Top            card.Card    `json:"top"`
	ActiveColor    color.Color  `json:"activeColor"`
	CurrentPlayer  int          `json:"currentPlayer"`
	Direction      int          `json:"direction"`
	Phase          Phase        `json:"phase"`
	DeckSize       int          `json:"deckSize"`
	DiscardSize    int          `json:"discardSize"`
	PendingPenalty int          `json:"pendingPenalty"`
	PenaltyTarget  int          `json:"penaltyTarget"`
	Winner         int          `json:"winner"`
	DrawnCard      *card.Card   `json:"drawnCard,omitempty"`
	Turn           int          `json:"turn"`
}

func (s Snapshot) Current() PlayerView {
	return s.Players[s.CurrentPlayer]
}

func (s Snapshot) Player(playerID int) (PlayerView, bool) {
	for _, player := range s.Players {
		if player.ID == playerID {
			return player, true
		}
	}
	return PlayerView{}, false
}

func (s Snapshot) RoundOver() bool {
	return s.Phase == RoundOver
}

// CardCount is the number of cards on the table, in hands, deck and discard pile.
func (s Snapshot) CardCount() int {
	total := s.DeckSize + s.DiscardSize
	for _, player := range s.Players {
		total += player.HandSize
	}
	return total
}

func (s Snapshot) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s (active color %s)", s.Top, s.ActiveColor))

	var playerStatuses []string
	for index, player := range s.Players {
		playerStatus := fmt.Sprintf("%s (%d card(s))", player.Name, player.HandSize)
		if index == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	arrow := "->"
	if s.Direction < 0 {
		arrow = "<-"
	}
	lines = append(lines, fmt.Sprintf("Turn order %s: %s", arrow, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Deck: %d, discard pile: %d, phase: %s", s.DeckSize, s.DiscardSize, s.Phase))
	if s.Winner >= 0 {
		winner := s.Players[s.Winner]
		lines = append(lines, fmt.Sprintf("%s won with %d point(s)", winner.Name, winner.Score))
	}
	return strings.Join(lines, "\n")
}
