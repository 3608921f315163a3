package state

import (
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/service"
)

var states = map[consts.StateID]State{}

var games *service.Service

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateRules, &rules{})
	register(consts.StateCreate, &create{})
	register(consts.StateUnoGame, &uno{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Setup wires the session service every connection plays against.
func Setup(svc *service.Service) {
	games = svc
}

type State interface {
	Next(player *model.Player) (consts.StateID, error)
	Exit(player *model.Player) consts.StateID
}

func Run(player *model.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		release(player)
		log.Infof("player %s state machine break up.\n", player.Name)
	}()
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err1, ok := err.(consts.Error); ok {
				if err1 == consts.ErrorsChanClosed {
					return
				}
				if err1.Exit {
					stateId = state.Exit(player)
				}
			} else {
				log.Error(err)
				state.Exit(player)
				return
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

// Leave takes the player offline. The state loop then stops and drops the table.
func Leave(player *model.Player) {
	player.Offline()
}

// release drops the player's table. Only the state loop touches player.Session.
func release(player *model.Player) {
	if player.Session != uuid.Nil {
		games.Delete(player.Session)
		player.Session = uuid.Nil
	}
}
