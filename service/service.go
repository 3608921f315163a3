package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/player"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Strategy names the bot policy, see player.PolicyByName.
	Strategy string
	// AutoResolvePenalties hands out pending draw penalties before Play and
	// RequestAiTurn return.
	AutoResolvePenalties bool
	// AiDelay is waited out by RequestAiTurn before the bot moves.
	AiDelay time.Duration
	// IdleTTL is how long an untouched session survives the janitor.
	IdleTTL time.Duration
	Logger  logrus.FieldLogger
	// Seed makes dealing reproducible when non-zero.
	Seed int64
}

func DefaultOptions() Options {
	return Options{
		Strategy:             consts.StrategyOffensive,
		AutoResolvePenalties: true,
		IdleTTL:              consts.SessionTTL,
	}
}

// Service is the boundary a presentation layer talks to. Sessions are
// addressed by handle and each one is serialized by its own lock.
type Service struct {
	opts     Options
	policy   game.Policy
	logger   logrus.FieldLogger
	sessions *registry

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(opts Options) (*Service, error) {
	policy, err := player.PolicyByName(opts.Strategy)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = consts.SessionTTL
	}
	return &Service{
		opts:     opts,
		policy:   policy,
		logger:   logger,
		sessions: newRegistry(),
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *Service) nextRand() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func (s *Service) deal(names []string, humans []bool) (*game.Session, error) {
	return game.NewSession(game.Config{
		Names:  names,
		Humans: humans,
		Policy: s.policy,
		Rand:   s.nextRand(),
		Logger: s.logger,
	})
}

func (s *Service) NewSession(names []string, humans []bool) (uuid.UUID, error) {
	session, err := s.deal(names, humans)
	if err != nil {
		return uuid.Nil, err
	}
	e := &entry{
		handle:  uuid.New(),
		session: session,
		names:   append([]string(nil), names...),
		humans:  append([]bool(nil), humans...),
		touched: time.Now(),
	}
	s.sessions.add(e)
	s.logger.WithFields(logrus.Fields{
		"handle":  e.handle.String(),
		"session": session.ID().String(),
	}).Info("session created")
	return e.handle, nil
}

// apply runs action under the session lock and returns the resulting
// snapshot. A rejected action returns the unchanged snapshot with the error.
func (s *Service) apply(handle uuid.UUID, action func(session *game.Session) error) (game.Snapshot, error) {
	e, err := s.sessions.get(handle)
	if err != nil {
		return game.Snapshot{}, err
	}
	e.Lock()
	defer e.Unlock()
	e.touched = time.Now()
	err = action(e.session)
	if err == nil {
		err = s.settle(e.session)
	}
	return e.session.Snapshot(), err
}

func (s *Service) settle(session *game.Session) error {
	if s.opts.AutoResolvePenalties && session.Phase() == game.ResolvingPenalty {
		return session.ResolvePenalty()
	}
	return nil
}

func (s *Service) GetState(handle uuid.UUID) (game.Snapshot, error) {
	return s.apply(handle, func(*game.Session) error { return nil })
}

func (s *Service) Play(handle uuid.UUID, playerID, cardID int, chosen color.Color) (game.Snapshot, error) {
	return s.apply(handle, func(session *game.Session) error {
		return session.Play(playerID, cardID, chosen)
	})
}

func (s *Service) Draw(handle uuid.UUID, playerID int) (game.Snapshot, error) {
	return s.apply(handle, func(session *game.Session) error {
		return session.Draw(playerID)
	})
}

func (s *Service) Pass(handle uuid.UUID, playerID int) (game.Snapshot, error) {
	return s.apply(handle, func(session *game.Session) error {
		return session.Pass(playerID)
	})
}

func (s *Service) CallUno(handle uuid.UUID, playerID int) (game.Snapshot, error) {
	return s.apply(handle, func(session *game.Session) error {
		return session.CallUno(playerID)
	})
}

func (s *Service) ResolvePenalty(handle uuid.UUID) (game.Snapshot, error) {
	return s.apply(handle, func(session *game.Session) error {
		return session.ResolvePenalty()
	})
}

// RequestAiTurn plays the current automated seat after AiDelay. The move is
// dropped when ctx ends or the session is reset while waiting.
func (s *Service) RequestAiTurn(ctx context.Context, handle uuid.UUID) (game.Snapshot, error) {
	e, err := s.sessions.get(handle)
	if err != nil {
		return game.Snapshot{}, err
	}
	e.Lock()
	generation := e.generation
	e.Unlock()

	if s.opts.AiDelay > 0 {
		timer := time.NewTimer(s.opts.AiDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return game.Snapshot{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return game.Snapshot{}, err
	}

	return s.apply(handle, func(session *game.Session) error {
		if e.generation != generation {
			return consts.ErrorsSessionInvalid
		}
		if err := s.settle(session); err != nil {
			return err
		}
		return session.PlayAutomatedTurn()
	})
}

// Subscribe adds listener to the session's event bus. It stays subscribed
// across Reset.
func (s *Service) Subscribe(handle uuid.UUID, listener interface{}) error {
	e, err := s.sessions.get(handle)
	if err != nil {
		return err
	}
	e.Lock()
	defer e.Unlock()
	if e.session.Events().AddListener(listener) == 0 {
		return consts.ErrorsInputInvalid
	}
	e.listeners = append(e.listeners, listener)
	return nil
}

// Reset deals a new round to the same seats under the same handle.
func (s *Service) Reset(handle uuid.UUID) (game.Snapshot, error) {
	e, err := s.sessions.get(handle)
	if err != nil {
		return game.Snapshot{}, err
	}
	e.Lock()
	defer e.Unlock()
	session, err := s.deal(e.names, e.humans)
	if err != nil {
		return e.session.Snapshot(), err
	}
	for _, listener := range e.listeners {
		session.Events().AddListener(listener)
	}
	e.session = session
	e.generation++
	e.touched = time.Now()
	session.Announce()
	s.logger.WithFields(logrus.Fields{
		"handle":  handle.String(),
		"session": session.ID().String(),
	}).Info("session reset")
	return session.Snapshot(), nil
}

func (s *Service) Delete(handle uuid.UUID) {
	s.sessions.del(handle)
}

// StartJanitor removes sessions idle for longer than IdleTTL, checking every
// interval until ctx is done.
func (s *Service) StartJanitor(ctx context.Context, every time.Duration) {
	async.Async(func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.sweep(now)
			}
		}
	})
}

func (s *Service) sweep(now time.Time) int {
	removed := 0
	for _, e := range s.sessions.list() {
		e.Lock()
		idle := now.Sub(e.touched)
		e.Unlock()
		if idle > s.opts.IdleTTL {
			s.sessions.del(e.handle)
			removed++
			s.logger.WithField("handle", e.handle.String()).Infof("session idle for %s, removed", idle.Round(time.Second))
		}
	}
	return removed
}
