package state

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/msg"
	"github.com/ratel-online/uno-server/uno/player"
	"github.com/spf13/cast"
)

type create struct{}

func (*create) Next(p *model.Player) (consts.StateID, error) {
	count, err := askForInt(p, fmt.Sprintf("How many players? (%d-%d)\n", consts.MinPlayers, consts.MaxPlayers), consts.MinPlayers, consts.MaxPlayers)
	if err != nil {
		return 0, err
	}
	humans, err := askForInt(p, fmt.Sprintf("How many of them are human? (1-%d)\n", count), 1, count)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, count)
	seats := make([]bool, 0, count)
	names = append(names, p.Name)
	seats = append(seats, true)
	for seat := 2; seat <= humans; seat++ {
		err = p.WriteString(fmt.Sprintf("Name of player %d:\n", seat))
		if err != nil {
			return 0, p.WriteError(err)
		}
		name, err := p.AskForString(consts.PlayTimeout)
		if err != nil && err != consts.ErrorsTimeout {
			return 0, err
		}
		if name == "" {
			name = fmt.Sprintf("Player %d", seat)
		}
		names = append(names, name)
		seats = append(seats, true)
	}
	for _, name := range player.BotNames(count-humans, rand.New(rand.NewSource(time.Now().UnixNano()))) {
		names = append(names, name)
		seats = append(seats, false)
	}

	handle, err := games.NewSession(names, seats)
	if err != nil {
		return 0, p.WriteError(err)
	}
	p.Session = handle
	narrator := msg.NewNarrator(
		func(text string) { _ = p.WriteString(text) },
		func(playerID int) bool { return playerID >= 1 && playerID <= len(seats) && seats[playerID-1] },
	)
	err = games.Subscribe(handle, narrator)
	if err != nil {
		return 0, p.WriteError(err)
	}
	err = p.WriteString(fmt.Sprintf("Table ready: %v\n", names))
	if err != nil {
		return 0, p.WriteError(err)
	}
	return consts.StateUnoGame, nil
}

func (*create) Exit(_ *model.Player) consts.StateID {
	return consts.StateHome
}

// askForInt keeps asking until the answer is a number in [minimum, maximum].
func askForInt(p *model.Player, question string, minimum, maximum int) (int, error) {
	for {
		err := p.WriteString(question)
		if err != nil {
			return 0, p.WriteError(err)
		}
		answer, err := p.AskForString()
		if err != nil {
			return 0, err
		}
		value, err := cast.ToIntE(answer)
		if err != nil || value < minimum || value > maximum {
			_ = p.WriteError(consts.ErrorsInputInvalid)
			continue
		}
		return value, nil
	}
}
