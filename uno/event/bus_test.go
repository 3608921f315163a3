package event_test

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/stretchr/testify/require"
)

type playedOnly struct {
	played []event.CardPlayedPayload
}

func (l *playedOnly) OnCardPlayed(payload event.CardPlayedPayload) {
	l.played = append(l.played, payload)
}

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	bus.CardPlayed.AddListener(listenerOne)
	bus.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerID:   1,
			PlayerName: "Someone",
			Card:       card.NewWildCard(0),
		},
		{
			PlayerID:   2,
			PlayerName: "Somebody",
			Card:       card.MustNew(40, color.Green, card.DrawTwo),
		},
	}

	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestColorPicked(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.ColorPicked.AddListener(listener)

	payloads := []event.ColorPickedPayload{
		{PlayerName: "Someone", Color: color.Red},
		{PlayerName: "Somebody", Color: color.Yellow},
	}
	for _, payload := range payloads {
		bus.ColorPicked.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listener.ReceivedPayloads())
}

func TestAddListener(t *testing.T) {
	t.Run("dummy_listener_joins_every_emitter", func(t *testing.T) {
		bus := event.NewBus()
		listener := event.NewDummyListener()

		require.Equal(t, 11, bus.AddListener(listener))

		bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.MustNew(10, color.Red, 4)})
		bus.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: "Someone"})
		bus.CardsDrawn.Emit(event.CardsDrawnPayload{PlayerID: 1, Reason: event.ReasonPenalty})
		bus.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: "Somebody"})
		bus.DirectionReversed.Emit(event.DirectionReversedPayload{Direction: -1})
		bus.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: "Someone"})
		bus.DeckReshuffled.Emit(event.DeckReshuffledPayload{DeckSize: 40})
		bus.TurnStarted.Emit(event.TurnStartedPayload{PlayerID: 2, Turn: 3})
		bus.RoundOver.Emit(event.RoundOverPayload{WinnerID: 2, Score: 57})

		require.Len(t, listener.ReceivedPayloads(), 9)
		require.Equal(t, event.PlayerPassedPayload{PlayerName: "Someone"}, listener.ReceivedPayloads()[1])
	})

	t.Run("partial_listener_joins_matching_emitter", func(t *testing.T) {
		bus := event.NewBus()
		listener := &playedOnly{}

		require.Equal(t, 1, bus.AddListener(listener))

		bus.ColorPicked.Emit(event.ColorPickedPayload{Color: color.Blue})
		bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerName: "Someone"})

		require.Len(t, listener.played, 1)
	})

	t.Run("unrelated_value_is_ignored", func(t *testing.T) {
		require.Zero(t, event.NewBus().AddListener("nothing"))
	})

	t.Run("buses_are_isolated", func(t *testing.T) {
		first, second := event.NewBus(), event.NewBus()
		listener := event.NewDummyListener()
		first.AddListener(listener)

		second.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: "Someone"})

		require.Empty(t, listener.ReceivedPayloads())
	})
}

func TestDrawReason(t *testing.T) {
	require.Equal(t, "deal", event.ReasonDeal.String())
	require.Equal(t, "uno-penalty", event.ReasonUnoPenalty.String())
	require.Equal(t, "unknown", event.DrawReason(42).String())
}
