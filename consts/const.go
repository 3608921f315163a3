package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateRules
	StateCreate
	StateUnoGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 6

	DeckSize         = 108
	StartingHandSize = 7
	UnoPenaltyCards  = 2

	PlayTimeout  = 60 * time.Second
	LoginTimeout = 3 * time.Second
	BotDelay     = 1 * time.Second
	SessionTTL   = 30 * time.Minute
)

const (
	StrategyOffensive    = "offensive"
	StrategyConservative = "conservative"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Transport errors.
var (
	ErrorsExist        = NewErr(1, true, "Exist. ")
	ErrorsChanClosed   = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout      = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail     = NewErr(1, true, "Auth fail. ")
)

// Rule errors. None of them mutate the session, the same player may retry.
var (
	ErrorsInvalidPlayerCount   = NewErr(10, false, "Player count must be between 2 and 6. ")
	ErrorsNotYourTurn          = NewErr(11, false, "It's not your turn. ")
	ErrorsIllegalCard          = NewErr(12, false, "Card must match the active color or the top card value. ")
	ErrorsMissingColorChoice   = NewErr(13, false, "Choose a color for the wild card. ")
	ErrorsCardNotInHand        = NewErr(14, false, "Card is not in your hand. ")
	ErrorsActionAfterRoundOver = NewErr(15, false, "The round is over. ")
	ErrorsUnknownPlayer        = NewErr(16, false, "Unknown player. ")
	ErrorsWrongPhase           = NewErr(17, false, "Action not allowed right now. ")
	ErrorsNoPendingPenalty     = NewErr(18, false, "No draw penalty is pending. ")
	ErrorsAlreadyDrew          = NewErr(19, false, "You have already drawn a card this turn. ")
	ErrorsCannotPass           = NewErr(20, false, "You can only pass after drawing a playable card. ")
	ErrorsUnoCallInvalid       = NewErr(21, false, "UNO can only be called with exactly two cards in hand. ")
	ErrorsNotAutomated         = NewErr(22, false, "Current player is not automated. ")
	ErrorsNoPolicy             = NewErr(23, false, "No opponent policy configured. ")
	ErrorsSessionInvalid       = NewErr(24, false, "Session invalid. ")
	ErrorsInvalidCard          = NewErr(25, false, "Invalid card. ")
)
