package game

type Phase int

const (
	AwaitingAction Phase = iota
	// AwaitingColorChoice is never entered: a wild play must carry its color.
	AwaitingColorChoice
	ResolvingPenalty
	RoundOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingAction:
		return "awaiting-action"
	case AwaitingColorChoice:
		return "awaiting-color-choice"
	case ResolvingPenalty:
		return "resolving-draw-penalty"
	case RoundOver:
		return "round-over"
	default:
		return "unknown"
	}
}
