package event

type RoundOverPayload struct {
	WinnerID   int
	WinnerName string
	Score      int
}

type RoundOverListener interface {
	OnRoundOver(RoundOverPayload)
}

type RoundOverEmitter struct {
	listeners []RoundOverListener
}

func (e *RoundOverEmitter) AddListener(listener RoundOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *RoundOverEmitter) Emit(payload RoundOverPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundOver(payload)
	}
}
