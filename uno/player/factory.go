package player

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// BotNames returns amount distinct names for automated seats.
func BotNames(amount int, rng *rand.Rand) []string {
	names := make([]string, len(botNames))
	copy(names, botNames)
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	return names[:amount]
}

// PolicyByName maps a strategy name to its policy. An empty name is offensive.
func PolicyByName(name string) (game.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", consts.StrategyOffensive:
		return NewOffensive(), nil
	case consts.StrategyConservative:
		return NewConservative(), nil
	default:
		return nil, fmt.Errorf("%w: unknown bot strategy %q", consts.ErrorsInputInvalid, name)
	}
}
