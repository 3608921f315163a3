package event

// Bus groups the emitters of a single game session.
type Bus struct {
	FirstCardPlayed   FirstCardPlayedEmitter
	CardPlayed        CardPlayedEmitter
	ColorPicked       ColorPickedEmitter
	PlayerPassed      PlayerPassedEmitter
	CardsDrawn        CardsDrawnEmitter
	TurnSkipped       TurnSkippedEmitter
	DirectionReversed DirectionReversedEmitter
	UnoCalled         UnoCalledEmitter
	DeckReshuffled    DeckReshuffledEmitter
	TurnStarted       TurnStartedEmitter
	RoundOver         RoundOverEmitter
}

func NewBus() *Bus {
	return &Bus{}
}

// AddListener subscribes listener to every event whose listener interface it
// implements and returns how many emitters accepted it.
func (b *Bus) AddListener(listener interface{}) int {
	added := 0
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
		added++
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		added++
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		added++
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
		added++
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		added++
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
		added++
	}
	if l, ok := listener.(DirectionReversedListener); ok {
		b.DirectionReversed.AddListener(l)
		added++
	}
	if l, ok := listener.(UnoCalledListener); ok {
		b.UnoCalled.AddListener(l)
		added++
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
		added++
	}
	if l, ok := listener.(TurnStartedListener); ok {
		b.TurnStarted.AddListener(l)
		added++
	}
	if l, ok := listener.(RoundOverListener); ok {
		b.RoundOver.AddListener(l)
		added++
	}
	return added
}
