package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/render"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

type uno struct{}

func (g *uno) Next(player *model.Player) (consts.StateID, error) {
	snapshot, err := games.GetState(player.Session)
	if err != nil {
		player.Session = uuid.Nil
		return consts.StateHome, player.WriteError(err)
	}
	if snapshot.RoundOver() {
		return g.roundOver(player, snapshot)
	}
	if snapshot.Phase == game.ResolvingPenalty {
		_, err = games.ResolvePenalty(player.Session)
		return 0, g.report(player, err)
	}
	current := snapshot.Current()
	if !current.IsHuman {
		_, err = games.RequestAiTurn(player.Context(), player.Session)
		return 0, g.report(player, err)
	}
	return 0, g.humanTurn(player, snapshot, current)
}

func (g *uno) humanTurn(player *model.Player, snapshot game.Snapshot, current game.PlayerView) error {
	options := msg.CardOptions(current.Hand)
	playable := func(c card.Card) bool {
		return game.Playable(c, snapshot.Top, snapshot.ActiveColor)
	}
	buf := strings.Builder{}
	buf.WriteString(render.Table(snapshot))
	buf.WriteString(msg.Message.HumanPlayerTurnStarted(current.Name))
	buf.WriteString(msg.CardSelection(options, playable))
	if snapshot.DrawnCard == nil && !anyPlayable(current.Hand, playable) {
		buf.WriteString(msg.Message.HumanPlayerHasNoMatchingCardsInHand(current.Name, snapshot.Top))
	}
	buf.WriteString(msg.Message.ActionHelp(snapshot.DrawnCard != nil))
	err := player.WriteString(buf.String())
	if err != nil {
		return player.WriteError(err)
	}

	answer, err := player.AskForString(consts.PlayTimeout)
	if err == consts.ErrorsTimeout {
		_ = player.WriteString(fmt.Sprintf("Time is up, %s.\n", current.Name))
		if snapshot.DrawnCard != nil {
			_, err = games.Pass(player.Session, current.ID)
		} else {
			_, err = games.Draw(player.Session, current.ID)
		}
		return g.report(player, err)
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(answer) {
	case "draw", "d":
		_, err = games.Draw(player.Session, current.ID)
	case "pass", "p":
		_, err = games.Pass(player.Session, current.ID)
	case "uno", "u":
		_, err = games.CallUno(player.Session, current.ID)
	default:
		option, ok := msg.FindOption(options, answer)
		if !ok {
			return player.WriteError(consts.ErrorsInputInvalid)
		}
		chosen := color.Wild
		if option.Card.Wild() {
			chosen, err = g.askColor(player)
			if err != nil {
				return err
			}
		}
		_, err = games.Play(player.Session, current.ID, option.Card.ID, chosen)
	}
	return g.report(player, err)
}

func anyPlayable(hand []card.Card, playable func(card.Card) bool) bool {
	for _, c := range hand {
		if playable(c) {
			return true
		}
	}
	return false
}

func (g *uno) askColor(player *model.Player) (color.Color, error) {
	for {
		err := player.WriteString(msg.Message.ColorPrompt())
		if err != nil {
			return color.Wild, player.WriteError(err)
		}
		answer, err := player.AskForString(consts.PlayTimeout)
		if err != nil {
			return color.Wild, err
		}
		chosen, err := color.ByName(answer)
		if err != nil {
			_ = player.WriteString(err.Error() + "\n")
			continue
		}
		return chosen, nil
	}
}

func (g *uno) roundOver(player *model.Player, snapshot game.Snapshot) (consts.StateID, error) {
	err := player.WriteString(render.Standings(snapshot) + "Play again? (y/n)\n")
	if err != nil {
		return 0, player.WriteError(err)
	}
	answer, err := player.AskForString()
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(strings.ToLower(answer), "y") {
		_, err = games.Reset(player.Session)
		return 0, g.report(player, err)
	}
	return g.Exit(player), nil
}

// report shows rule errors to the player. Anything else ends the state.
func (g *uno) report(player *model.Player, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(consts.Error); ok {
		return player.WriteError(err)
	}
	if player.Context().Err() != nil {
		return consts.ErrorsChanClosed
	}
	log.Error(err)
	return err
}

func (g *uno) Exit(player *model.Player) consts.StateID {
	if player.Session != uuid.Nil {
		games.Delete(player.Session)
		player.Session = uuid.Nil
	}
	return consts.StateHome
}
