package state

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/render"
	"github.com/spf13/cast"
)

type home struct{}

func (*home) Next(player *model.Player) (consts.StateID, error) {
	err := player.WriteString(render.HomeOptions())
	if err != nil {
		return 0, player.WriteError(err)
	}
	answer, err := player.AskForString()
	if err != nil {
		return 0, err
	}
	selected, err := cast.ToIntE(answer)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsInputInvalid)
	}
	if selected == 1 {
		return consts.StateCreate, nil
	} else if selected == 2 {
		return consts.StateRules, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *model.Player) consts.StateID {
	return 0
}

type rules struct{}

func (*rules) Next(player *model.Player) (consts.StateID, error) {
	err := player.WriteString(render.Rules())
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}

func (*rules) Exit(player *model.Player) consts.StateID {
	return consts.StateHome
}
