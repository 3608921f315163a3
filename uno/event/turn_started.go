package event

type TurnStartedPayload struct {
	PlayerID   int
	PlayerName string
	Turn       int
}

type TurnStartedListener interface {
	OnTurnStarted(TurnStartedPayload)
}

type TurnStartedEmitter struct {
	listeners []TurnStartedListener
}

func (e *TurnStartedEmitter) AddListener(listener TurnStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnStartedEmitter) Emit(payload TurnStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnStarted(payload)
	}
}
