package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackedSession(t *testing.T, cfg game.Config, handSize int, front ...card.Card) (*game.Session, *event.DummyListener) {
	cfg.HandSize = handSize
	session, err := game.NewSessionWithDeck(cfg, stacked(front...))
	require.NoError(t, err)
	listener := event.NewDummyListener()
	session.Events().AddListener(listener)
	return session, listener
}

func hand(session *game.Session, playerID int) []card.Card {
	view, _ := session.Snapshot().Player(playerID)
	return view.Hand
}

func TestNewSession(t *testing.T) {
	t.Run("deals_seven_cards_each", func(t *testing.T) {
		session, err := game.NewSession(config("A", "B", "C", "D"))
		require.NoError(t, err)

		snapshot := session.Snapshot()
		for index, player := range snapshot.Players {
			assert.Equal(t, index+1, player.ID)
			assert.Equal(t, 7, player.HandSize)
		}
		assert.Equal(t, 108-28-1, snapshot.DeckSize)
		assert.Equal(t, 1, snapshot.DiscardSize)
		assert.Equal(t, card.KindNumber, snapshot.Top.Kind)
		assert.Equal(t, snapshot.Top.Color, snapshot.ActiveColor)
		assert.Equal(t, 0, snapshot.CurrentPlayer)
		assert.Equal(t, 1, snapshot.Direction)
		assert.Equal(t, game.AwaitingAction, snapshot.Phase)
		assert.Equal(t, -1, snapshot.Winner)
		assert.Equal(t, 108, snapshot.CardCount())
	})

	t.Run("rejects_bad_player_counts", func(t *testing.T) {
		_, err := game.NewSession(config("A"))
		require.Equal(t, consts.ErrorsInvalidPlayerCount, err)

		_, err = game.NewSession(config("A", "B", "C", "D", "E", "F", "G"))
		require.Equal(t, consts.ErrorsInvalidPlayerCount, err)

		cfg := config("A", "B", "C")
		cfg.Humans = cfg.Humans[:2]
		_, err = game.NewSession(cfg)
		require.Equal(t, consts.ErrorsInvalidPlayerCount, err)
	})

	t.Run("returns_action_cards_flipped_at_start", func(t *testing.T) {
		session, _ := newStackedSession(t, config("A", "B"), 1,
			c(color.Red, 1), c(color.Red, 2),
			c(color.Wild, card.WildCard), c(color.Blue, card.Skip), c(color.Green, card.DrawTwo))

		snapshot := session.Snapshot()
		require.Equal(t, card.KindNumber, snapshot.Top.Kind)
		require.Equal(t, snapshot.Top.Color, snapshot.ActiveColor)
		require.Equal(t, 1, snapshot.DiscardSize)
		require.Equal(t, 108, snapshot.CardCount())
	})

	t.Run("each_session_has_its_own_id", func(t *testing.T) {
		first, err := game.NewSession(config("A", "B"))
		require.NoError(t, err)
		second, err := game.NewSession(config("A", "B"))
		require.NoError(t, err)
		require.NotEqual(t, first.ID(), second.ID())
	})
}

func TestPlay(t *testing.T) {
	t.Run("last_card_wins_the_round", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2"), 1,
			c(color.Red, 5), c(color.Green, 3), c(color.Blue, 5))

		require.NoError(t, session.Play(1, hand(session, 1)[0].ID, color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, game.RoundOver, snapshot.Phase)
		require.Equal(t, color.Red, snapshot.ActiveColor)
		require.Equal(t, 0, snapshot.Winner)
		require.Equal(t, 0, snapshot.Players[0].HandSize)
		require.Equal(t, 3, snapshot.Players[0].Score)
		require.Contains(t, listener.ReceivedPayloads(), event.RoundOverPayload{WinnerID: 1, WinnerName: "P1", Score: 3})

		require.Equal(t, consts.ErrorsActionAfterRoundOver, session.Draw(2))
		require.Equal(t, consts.ErrorsActionAfterRoundOver, session.Play(2, hand(session, 2)[0].ID, color.Wild))
		require.Equal(t, consts.ErrorsActionAfterRoundOver, session.CallUno(2))
		require.Equal(t, snapshot, session.Snapshot())
	})

	t.Run("winning_draw_two_still_penalizes", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2"), 1,
			c(color.Red, card.DrawTwo), c(color.Green, 3), c(color.Red, 5))

		require.NoError(t, session.Play(1, hand(session, 1)[0].ID, color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, game.RoundOver, snapshot.Phase)
		require.Equal(t, 0, snapshot.Winner)
		require.Equal(t, 0, snapshot.CurrentPlayer)
		require.Equal(t, 0, snapshot.PendingPenalty)
		require.Equal(t, -1, snapshot.PenaltyTarget)
		require.Equal(t, 3, snapshot.Players[1].HandSize)
		require.Equal(t, 108, snapshot.CardCount())

		points := 0
		for _, left := range snapshot.Players[1].Hand {
			points += left.Value.Points()
		}
		require.Equal(t, points, snapshot.Players[0].Score)

		penalized := false
		for _, payload := range listener.ReceivedPayloads() {
			if drawn, ok := payload.(event.CardsDrawnPayload); ok && drawn.Reason == event.ReasonPenalty {
				require.Equal(t, 2, drawn.PlayerID)
				require.Len(t, drawn.Cards, 2)
				penalized = true
			}
		}
		require.True(t, penalized)
	})

	t.Run("draw_two_penalizes_and_skips_the_next_player", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2", "P3", "P4"), 3,
			c(color.Red, card.DrawTwo), c(color.Red, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2), c(color.Green, 3),
			c(color.Yellow, 1), c(color.Yellow, 2), c(color.Yellow, 3),
			c(color.Blue, 4), c(color.Blue, 5), c(color.Blue, 6),
			c(color.Red, 4))

		require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, card.DrawTwo)), color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, game.ResolvingPenalty, snapshot.Phase)
		require.Equal(t, 2, snapshot.PendingPenalty)
		require.Equal(t, 1, snapshot.PenaltyTarget)
		require.Equal(t, consts.ErrorsWrongPhase, session.Draw(2))

		require.NoError(t, session.ResolvePenalty())

		snapshot = session.Snapshot()
		require.Equal(t, 5, snapshot.Players[1].HandSize)
		require.Equal(t, 2, snapshot.Players[0].HandSize)
		require.Equal(t, 2, snapshot.CurrentPlayer)
		require.Equal(t, game.AwaitingAction, snapshot.Phase)
		require.Equal(t, 108, snapshot.CardCount())
		require.Contains(t, listener.ReceivedPayloads(), event.TurnSkippedPayload{PlayerName: "P2"})
		require.Equal(t, consts.ErrorsNoPendingPenalty, session.ResolvePenalty())
	})

	t.Run("wild_draw_four_needs_a_color", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2", "P3"), 2,
			c(color.Wild, card.WildDrawFour), c(color.Red, 1),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Yellow, 1), c(color.Yellow, 2),
			c(color.Blue, 7))
		wild := cardID(t, hand(session, 1), c(color.Wild, card.WildDrawFour))
		before := session.Snapshot()

		require.Equal(t, consts.ErrorsMissingColorChoice, session.Play(1, wild, color.Wild))
		require.Equal(t, before, session.Snapshot())

		require.NoError(t, session.CallUno(1))
		require.NoError(t, session.Play(1, wild, color.Yellow))
		require.NoError(t, session.ResolvePenalty())

		snapshot := session.Snapshot()
		require.Equal(t, color.Yellow, snapshot.ActiveColor)
		require.Equal(t, 6, snapshot.Players[1].HandSize)
		require.Equal(t, 2, snapshot.CurrentPlayer)
		require.Contains(t, listener.ReceivedPayloads(), event.ColorPickedPayload{PlayerName: "P1", Color: color.Yellow})
	})

	t.Run("reverse_with_two_players_acts_as_skip", func(t *testing.T) {
		play := func(value card.Value) game.Snapshot {
			session, _ := newStackedSession(t, config("P1", "P2"), 3,
				c(color.Red, value), c(color.Red, 1), c(color.Red, 2),
				c(color.Blue, 1), c(color.Blue, 2), c(color.Blue, 3),
				c(color.Red, 5))
			require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, value)), color.Wild))
			return session.Snapshot()
		}

		reversed := play(card.Reverse)
		skipped := play(card.Skip)

		require.Equal(t, -1, reversed.Direction)
		require.Equal(t, 1, skipped.Direction)
		require.Equal(t, skipped.CurrentPlayer, reversed.CurrentPlayer)
		require.Equal(t, 0, reversed.CurrentPlayer)
	})

	t.Run("reverse_changes_direction_for_more_players", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2", "P3"), 2,
			c(color.Red, card.Reverse), c(color.Red, 1),
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5))

		require.NoError(t, session.CallUno(1))
		require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, card.Reverse)), color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, -1, snapshot.Direction)
		require.Equal(t, 2, snapshot.CurrentPlayer)
		require.Contains(t, listener.ReceivedPayloads(), event.DirectionReversedPayload{Direction: -1})
	})

	t.Run("rejected_plays_leave_state_untouched", func(t *testing.T) {
		session, _ := newStackedSession(t, config("P1", "P2"), 2,
			c(color.Green, 8), c(color.Red, 1),
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Red, 5))
		before := session.Snapshot()

		require.Equal(t, consts.ErrorsIllegalCard, session.Play(1, cardID(t, hand(session, 1), c(color.Green, 8)), color.Wild))
		require.Equal(t, consts.ErrorsCardNotInHand, session.Play(1, hand(session, 2)[0].ID, color.Wild))
		require.Equal(t, consts.ErrorsNotYourTurn, session.Play(2, hand(session, 2)[0].ID, color.Wild))
		require.Equal(t, consts.ErrorsUnknownPlayer, session.Play(3, 0, color.Wild))
		require.Equal(t, consts.ErrorsNotYourTurn, session.Draw(2))
		require.Equal(t, before, session.Snapshot())
	})
}

func TestUno(t *testing.T) {
	front := []card.Card{
		c(color.Red, 1), c(color.Red, 2),
		c(color.Red, 3), c(color.Blue, 9),
		c(color.Red, 5),
	}

	t.Run("forgetting_uno_draws_two", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2"), 2, front...)

		require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, 1)), color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, 3, snapshot.Players[0].HandSize)
		require.False(t, snapshot.Players[0].UnoCalled)
		require.Equal(t, 1, snapshot.CurrentPlayer)
		require.Equal(t, 108, snapshot.CardCount())

		var penalties []event.CardsDrawnPayload
		for _, payload := range listener.ReceivedPayloads() {
			if drawn, ok := payload.(event.CardsDrawnPayload); ok && drawn.Reason == event.ReasonUnoPenalty {
				penalties = append(penalties, drawn)
			}
		}
		require.Len(t, penalties, 1)
		require.Len(t, penalties[0].Cards, 2)
	})

	t.Run("calling_uno_avoids_the_penalty", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2"), 2, front...)

		require.NoError(t, session.CallUno(1))
		require.Equal(t, consts.ErrorsUnoCallInvalid, session.CallUno(1))
		require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, 1)), color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, 1, snapshot.Players[0].HandSize)
		require.True(t, snapshot.Players[0].UnoCalled)
		require.Contains(t, listener.ReceivedPayloads(), event.UnoCalledPayload{PlayerName: "P1"})
	})

	t.Run("call_at_one_card_is_too_late", func(t *testing.T) {
		session, _ := newStackedSession(t, config("P1", "P2"), 2, front...)
		require.NoError(t, session.CallUno(1))
		require.NoError(t, session.Play(1, cardID(t, hand(session, 1), c(color.Red, 1)), color.Wild))
		require.Equal(t, consts.ErrorsNotYourTurn, session.CallUno(1))
		require.NoError(t, session.Play(2, cardID(t, hand(session, 2), c(color.Red, 3)), color.Wild))

		require.Equal(t, 0, session.Snapshot().CurrentPlayer)
		require.Equal(t, consts.ErrorsUnoCallInvalid, session.CallUno(1))
	})

	t.Run("call_with_a_big_hand_is_rejected", func(t *testing.T) {
		session, err := game.NewSession(config("P1", "P2"))
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsUnoCallInvalid, session.CallUno(1))
		require.False(t, session.Snapshot().Players[0].UnoCalled)
	})
}

func TestDrawAndPass(t *testing.T) {
	t.Run("unplayable_draw_ends_the_turn", func(t *testing.T) {
		session, _ := newStackedSession(t, config("P1", "P2"), 2,
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5), c(color.Yellow, 7))

		require.Equal(t, consts.ErrorsCannotPass, session.Pass(1))
		require.NoError(t, session.Draw(1))

		snapshot := session.Snapshot()
		require.Equal(t, 3, snapshot.Players[0].HandSize)
		require.Equal(t, 1, snapshot.CurrentPlayer)
		require.Nil(t, snapshot.DrawnCard)
	})

	t.Run("playable_draw_keeps_the_turn", func(t *testing.T) {
		session, listener := newStackedSession(t, config("P1", "P2"), 2,
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5), c(color.Red, 7))

		require.NoError(t, session.Draw(1))

		snapshot := session.Snapshot()
		require.Equal(t, 0, snapshot.CurrentPlayer)
		require.NotNil(t, snapshot.DrawnCard)
		require.True(t, snapshot.DrawnCard.Equal(c(color.Red, 7)))
		require.Equal(t, consts.ErrorsAlreadyDrew, session.Draw(1))

		require.NoError(t, session.Pass(1))
		require.Equal(t, 1, session.Snapshot().CurrentPlayer)
		require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "P1"})
	})

	t.Run("drawn_card_can_be_played", func(t *testing.T) {
		session, _ := newStackedSession(t, config("P1", "P2"), 2,
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5), c(color.Red, 7))

		require.NoError(t, session.Draw(1))
		drawn := session.Snapshot().DrawnCard
		require.NoError(t, session.Play(1, drawn.ID, color.Wild))

		snapshot := session.Snapshot()
		require.Equal(t, drawn.ID, snapshot.Top.ID)
		require.Equal(t, 1, snapshot.CurrentPlayer)
	})

	t.Run("empty_deck_reshuffles_the_discard_pile", func(t *testing.T) {
		cfg := config("P1", "P2")
		cfg.HandSize = 3
		cards := []card.Card{
			card.MustNew(0, color.Green, 5), card.MustNew(1, color.Red, 1), card.MustNew(2, color.Red, 2),
			card.MustNew(3, color.Blue, 1), card.MustNew(4, color.Blue, 2), card.MustNew(5, color.Blue, 4),
			card.MustNew(6, color.Green, 3),
			card.MustNew(7, color.Yellow, 7),
		}
		session, err := game.NewSessionWithDeck(cfg, cards)
		require.NoError(t, err)
		listener := event.NewDummyListener()
		session.Events().AddListener(listener)

		require.NoError(t, session.Play(1, 0, color.Wild))
		require.NoError(t, session.Draw(2))
		require.Equal(t, 0, session.Snapshot().DeckSize)

		require.NoError(t, session.Draw(1))

		snapshot := session.Snapshot()
		require.Equal(t, 0, snapshot.DeckSize)
		require.Equal(t, 1, snapshot.DiscardSize)
		require.Equal(t, 0, snapshot.Top.ID)
		require.Equal(t, 3, snapshot.Players[0].HandSize)
		require.Equal(t, 6, snapshot.DrawnCard.ID)
		require.Equal(t, 0, snapshot.CurrentPlayer)
		require.Equal(t, len(cards), snapshot.CardCount())
		require.Contains(t, listener.ReceivedPayloads(), event.DeckReshuffledPayload{DeckSize: 1})
	})
}

func TestPlayAutomatedTurn(t *testing.T) {
	t.Run("requires_an_automated_seat", func(t *testing.T) {
		session, err := game.NewSession(config("P1", "P2"))
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsNotAutomated, session.PlayAutomatedTurn())
	})

	t.Run("requires_a_policy", func(t *testing.T) {
		cfg := config("P1", "P2")
		cfg.Humans[0] = false
		session, err := game.NewSession(cfg)
		require.NoError(t, err)
		require.Equal(t, consts.ErrorsNoPolicy, session.PlayAutomatedTurn())
	})

	t.Run("draws_then_plays_the_drawn_card", func(t *testing.T) {
		cfg := config("Bot", "P2")
		cfg.Humans[0] = false
		cfg.Policy = firstLegal{}
		session, _ := newStackedSession(t, cfg, 2,
			c(color.Blue, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5), c(color.Red, 7))

		require.NoError(t, session.PlayAutomatedTurn())

		snapshot := session.Snapshot()
		require.True(t, snapshot.Top.Equal(c(color.Red, 7)))
		require.Equal(t, 2, snapshot.Players[0].HandSize)
		require.Equal(t, 1, snapshot.CurrentPlayer)
	})

	t.Run("calls_uno_before_going_down_to_one", func(t *testing.T) {
		cfg := config("Bot", "P2")
		cfg.Humans[0] = false
		cfg.Policy = firstLegal{}
		session, _ := newStackedSession(t, cfg, 2,
			c(color.Red, 1), c(color.Blue, 2),
			c(color.Green, 1), c(color.Green, 2),
			c(color.Red, 5))

		require.NoError(t, session.PlayAutomatedTurn())

		snapshot := session.Snapshot()
		require.Equal(t, 1, snapshot.Players[0].HandSize)
		require.True(t, snapshot.Players[0].UnoCalled)
	})
}

func TestCardConservation(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := config("A", "B", "C", "D")
		cfg.Humans = []bool{false, false, false, false}
		cfg.Policy = firstLegal{}
		cfg.Rand = rand.New(rand.NewSource(seed))
		session, err := game.NewSession(cfg)
		require.NoError(t, err)

		for step := 0; step < 2000 && session.Phase() != game.RoundOver; step++ {
			if session.Phase() == game.ResolvingPenalty {
				require.NoError(t, session.ResolvePenalty())
			} else {
				require.NoError(t, session.PlayAutomatedTurn())
			}
			snapshot := session.Snapshot()
			require.Equal(t, 108, snapshot.CardCount())
			require.True(t, snapshot.ActiveColor.Real())
		}
	}
}
