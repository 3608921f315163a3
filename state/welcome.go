package state

import (
	"fmt"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/msg"
)

type welcome struct{}

func (*welcome) Next(player *model.Player) (consts.StateID, error) {
	err := player.WriteString(msg.Message.Welcome() + fmt.Sprintf("Hi %s! Type 'exit' at any prompt to go back.\n", player.Name))
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *model.Player) consts.StateID {
	return 0
}
