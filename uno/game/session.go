package game

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Names  []string
	Humans []bool
	// Policy drives every seat that is not human.
	Policy Policy
	Rand   *rand.Rand
	Logger logrus.FieldLogger
	// HandSize defaults to consts.StartingHandSize.
	HandSize int
}

// Session owns one round of play. It is not safe for concurrent use; callers
// serialize access to it.
type Session struct {
	id      uuid.UUID
	players []*Player
	cycler  *Cycler
	deck    *Deck
	pile    *Pile
	policy  Policy
	events  *event.Bus
	logger  logrus.FieldLogger

	activeColor    color.Color
	phase          Phase
	pendingPenalty int
	penaltyTarget  int
	winner         int
	turn           int
	drawnCard      *card.Card
}

// NewSession deals a round from a freshly shuffled deck.
func NewSession(config Config) (*Session, error) {
	if err := validateSeats(config); err != nil {
		return nil, err
	}
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return start(config, NewDeck(rng))
}

// NewSessionWithDeck deals from cards as given, cards[0] first. The first
// HandSize cards go to seat 0, the next ones to seat 1 and so on.
func NewSessionWithDeck(config Config, cards []card.Card) (*Session, error) {
	if err := validateSeats(config); err != nil {
		return nil, err
	}
	return start(config, NewDeckFromCards(cards, config.Rand))
}

func validateSeats(config Config) error {
	count := len(config.Names)
	if count < consts.MinPlayers || count > consts.MaxPlayers || count != len(config.Humans) {
		return consts.ErrorsInvalidPlayerCount
	}
	return nil
}

func start(config Config, deck *Deck) (*Session, error) {
	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	handSize := config.HandSize
	if handSize <= 0 {
		handSize = consts.StartingHandSize
	}
	dealt := len(config.Names) * handSize
	if dealt > deck.Size() {
		dealt = deck.Size()
	}
	if !hasNumberCard(deck.Cards()[dealt:]) {
		return nil, consts.ErrorsInvalidCard
	}

	s := &Session{
		id:            uuid.New(),
		players:       make([]*Player, len(config.Names)),
		cycler:        NewCycler(len(config.Names)),
		deck:          deck,
		pile:          NewPile(),
		policy:        config.Policy,
		events:        event.NewBus(),
		phase:         AwaitingAction,
		penaltyTarget: -1,
		winner:        -1,
	}
	s.logger = logger.WithField("session", s.id.String())
	for index, name := range config.Names {
		s.players[index] = newPlayer(index+1, name, config.Humans[index])
	}
	s.cycler.ForEach(func(index int) {
		s.players[index].addCards(s.deck.Draw(handSize))
	})

	firstCard, _ := s.deck.DrawOne()
	for firstCard.Kind != card.KindNumber {
		s.deck.Insert(firstCard)
		firstCard, _ = s.deck.DrawOne()
	}
	s.pile.Add(firstCard)
	s.activeColor = firstCard.Color
	s.turn = 1

	s.logger.WithFields(logrus.Fields{
		"players": len(s.players),
		"card":    firstCard.String(),
	}).Info("round started")
	return s, nil
}

func hasNumberCard(cards []card.Card) bool {
	for _, c := range cards {
		if c.Kind == card.KindNumber {
			return true
		}
	}
	return false
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Events exposes the session's event bus. Listeners added here only hear
// this session.
func (s *Session) Events() *event.Bus {
	return s.events
}

// Announce replays the opening of the round to listeners added after NewSession.
func (s *Session) Announce() {
	top, _ := s.pile.Top()
	s.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: top})
	s.emitTurnStarted()
}

func (s *Session) Players() []*Player {
	return s.players
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Current() *Player {
	return s.players[s.cycler.Current()]
}

func (s *Session) Snapshot() Snapshot {
	top, _ := s.pile.Top()
	views := make([]PlayerView, len(s.players))
	for index, player := range s.players {
		views[index] = player.view()
	}
	var drawnCard *card.Card
	if s.drawnCard != nil {
		c := *s.drawnCard
		drawnCard = &c
	}
	return Snapshot{
		SessionID:      s.id,
		Players:        views,
		Top:            top,
		ActiveColor:    s.activeColor,
		CurrentPlayer:  s.cycler.Current(),
		Direction:      s.cycler.Direction(),
		Phase:          s.phase,
		DeckSize:       s.deck.Size(),
		DiscardSize:    s.pile.Size(),
		PendingPenalty: s.pendingPenalty,
		PenaltyTarget:  s.penaltyTarget,
		Winner:         s.winner,
		DrawnCard:      drawnCard,
		Turn:           s.turn,
	}
}

func (s *Session) playerByID(playerID int) (*Player, error) {
	if playerID < 1 || playerID > len(s.players) {
		return nil, consts.ErrorsUnknownPlayer
	}
	return s.players[playerID-1], nil
}

// actor checks that playerID may act right now.
func (s *Session) actor(playerID int) (*Player, error) {
	if s.phase == RoundOver {
		return nil, consts.ErrorsActionAfterRoundOver
	}
	player, err := s.playerByID(playerID)
	if err != nil {
		return nil, err
	}
	if s.phase != AwaitingAction {
		return nil, consts.ErrorsWrongPhase
	}
	if player != s.Current() {
		return nil, consts.ErrorsNotYourTurn
	}
	return player, nil
}

func (s *Session) reject(player int, action string, err error) error {
	s.logger.WithFields(logrus.Fields{
		"player": player,
		"action": action,
	}).WithError(err).Warn("action rejected")
	return err
}

// Play puts cardID from the player's hand on the discard pile. chosenColor is
// required for wild cards and ignored otherwise.
func (s *Session) Play(playerID int, cardID int, chosenColor color.Color) error {
	player, err := s.actor(playerID)
	if err != nil {
		return s.reject(playerID, "play", err)
	}
	playedCard, ok := player.hand.Find(cardID)
	if !ok {
		return s.reject(playerID, "play", consts.ErrorsCardNotInHand)
	}
	top, _ := s.pile.Top()
	if !Playable(playedCard, top, s.activeColor) {
		return s.reject(playerID, "play", consts.ErrorsIllegalCard)
	}
	effect, err := ResolveEffect(playedCard, chosenColor, len(s.players), player.hand.Size()-1)
	if err != nil {
		return s.reject(playerID, "play", err)
	}

	player.hand.RemoveCard(cardID)
	s.pile.Add(playedCard)
	s.activeColor = effect.NextActiveColor
	s.drawnCard = nil
	s.logger.WithFields(logrus.Fields{
		"player": player.name,
		"card":   playedCard.String(),
	}).Debug("card played")
	s.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerID:   player.id,
		PlayerName: player.name,
		Card:       playedCard,
	})
	if playedCard.Wild() {
		s.events.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: player.name,
			Color:      effect.NextActiveColor,
		})
	}
	if effect.Reverse {
		s.cycler.Reverse()
		s.events.DirectionReversed.Emit(event.DirectionReversedPayload{Direction: s.cycler.Direction()})
	}

	if effect.IsWin {
		// The penalty still lands so the final score counts it; the turn stays put.
		if effect.DrawPenalty > 0 {
			s.drawInto(s.players[s.cycler.Peek(0)], effect.DrawPenalty, event.ReasonPenalty)
		}
		s.finish(player)
		return nil
	}

	if player.hand.Size() == 1 && !player.unoCalled {
		s.logger.WithField("player", player.name).Info("uno not called")
		s.drawInto(player, consts.UnoPenaltyCards, event.ReasonUnoPenalty)
	} else if player.hand.Size() != 1 {
		player.unoCalled = false
	}

	if effect.DrawPenalty > 0 {
		s.pendingPenalty = effect.DrawPenalty
		s.penaltyTarget = s.cycler.Peek(0)
		s.phase = ResolvingPenalty
		return nil
	}
	if effect.SkipCount > 0 {
		s.emitSkipped(s.players[s.cycler.Peek(0)])
	}
	s.advance(effect.SkipCount)
	return nil
}

// ResolvePenalty hands the pending draw penalty to its target, whose turn is
// consumed.
func (s *Session) ResolvePenalty() error {
	if s.phase == RoundOver {
		return s.reject(0, "resolve", consts.ErrorsActionAfterRoundOver)
	}
	if s.phase != ResolvingPenalty {
		return s.reject(0, "resolve", consts.ErrorsNoPendingPenalty)
	}
	target := s.players[s.penaltyTarget]
	s.drawInto(target, s.pendingPenalty, event.ReasonPenalty)
	s.emitSkipped(target)
	s.pendingPenalty = 0
	s.penaltyTarget = -1
	s.phase = AwaitingAction
	s.advance(1)
	return nil
}

// Draw takes one card from the deck. A playable card keeps the turn so the
// player can play or pass; anything else ends it.
func (s *Session) Draw(playerID int) error {
	player, err := s.actor(playerID)
	if err != nil {
		return s.reject(playerID, "draw", err)
	}
	if s.drawnCard != nil {
		return s.reject(playerID, "draw", consts.ErrorsAlreadyDrew)
	}
	cards := s.drawInto(player, 1, event.ReasonDraw)
	if len(cards) == 1 {
		top, _ := s.pile.Top()
		if Playable(cards[0], top, s.activeColor) {
			s.drawnCard = &cards[0]
			return nil
		}
	}
	s.advance(0)
	return nil
}

// Pass ends the turn of a player who drew a playable card and kept it.
func (s *Session) Pass(playerID int) error {
	player, err := s.actor(playerID)
	if err != nil {
		return s.reject(playerID, "pass", err)
	}
	if s.drawnCard == nil {
		return s.reject(playerID, "pass", consts.ErrorsCannotPass)
	}
	s.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: player.name})
	s.advance(0)
	return nil
}

// CallUno is accepted on the caller's turn while they hold exactly two cards.
func (s *Session) CallUno(playerID int) error {
	player, err := s.actor(playerID)
	if err != nil {
		return s.reject(playerID, "uno", err)
	}
	if player.hand.Size() != 2 || player.unoCalled {
		return s.reject(playerID, "uno", consts.ErrorsUnoCallInvalid)
	}
	player.unoCalled = true
	s.events.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: player.name})
	return nil
}

// PlayAutomatedTurn runs the session policy for the current seat through the
// same Play, Draw and Pass calls a human would use.
func (s *Session) PlayAutomatedTurn() error {
	if s.phase == RoundOver {
		return consts.ErrorsActionAfterRoundOver
	}
	if s.phase != AwaitingAction {
		return consts.ErrorsWrongPhase
	}
	player := s.Current()
	if player.human {
		return consts.ErrorsNotAutomated
	}
	if s.policy == nil {
		return consts.ErrorsNoPolicy
	}

	for {
		top, _ := s.pile.Top()
		choice := s.policy.ChooseAction(player.hand.Cards(), top, s.activeColor)
		if choice != nil {
			if choice.CallUno && player.hand.Size() == 2 && !player.unoCalled {
				if err := s.CallUno(player.id); err != nil {
					return err
				}
			}
			return s.Play(player.id, choice.Card.ID, choice.Color)
		}
		if s.drawnCard != nil {
			return s.Pass(player.id)
		}
		if err := s.Draw(player.id); err != nil {
			return err
		}
		if s.drawnCard == nil {
			return nil
		}
	}
}

// drawInto moves up to amount cards into the player's hand, reshuffling the
// discard pile when the deck runs dry.
func (s *Session) drawInto(player *Player, amount int, reason event.DrawReason) []card.Card {
	cards := s.deck.Draw(amount)
	if len(cards) < amount {
		s.reshuffle()
		cards = append(cards, s.deck.Draw(amount-len(cards))...)
	}
	player.addCards(cards)
	s.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   player.id,
		PlayerName: player.name,
		Cards:      cards,
		Reason:     reason,
	})
	s.logger.WithFields(logrus.Fields{
		"player": player.name,
		"amount": len(cards),
		"reason": reason.String(),
	}).Debug("cards drawn")
	return cards
}

func (s *Session) reshuffle() {
	reclaimed := s.pile.Reclaim()
	if len(reclaimed) == 0 {
		return
	}
	s.deck.Refill(reclaimed)
	s.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{DeckSize: s.deck.Size()})
	s.logger.WithField("deck", s.deck.Size()).Debug("discard pile reshuffled")
}

func (s *Session) emitSkipped(player *Player) {
	s.events.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerName: player.name})
}

func (s *Session) advance(skip int) {
	s.cycler.Next(skip)
	s.drawnCard = nil
	s.turn++
	s.emitTurnStarted()
}

func (s *Session) emitTurnStarted() {
	current := s.Current()
	s.events.TurnStarted.Emit(event.TurnStartedPayload{
		PlayerID:   current.id,
		PlayerName: current.name,
		Turn:       s.turn,
	})
}

func (s *Session) finish(winner *Player) {
	score := 0
	for _, player := range s.players {
		if player != winner {
			score += player.hand.Points()
		}
	}
	winner.score += score
	s.winner = winner.id - 1
	s.phase = RoundOver
	s.drawnCard = nil
	s.events.RoundOver.Emit(event.RoundOverPayload{
		WinnerID:   winner.id,
		WinnerName: winner.name,
		Score:      score,
	})
	s.logger.WithFields(logrus.Fields{
		"player": winner.name,
		"score":  score,
	}).Info("round over")
}
