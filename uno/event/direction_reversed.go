package event

type DirectionReversedPayload struct {
	Direction int
}

type DirectionReversedListener interface {
	OnDirectionReversed(DirectionReversedPayload)
}

type DirectionReversedEmitter struct {
	listeners []DirectionReversedListener
}

func (e *DirectionReversedEmitter) AddListener(listener DirectionReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DirectionReversedEmitter) Emit(payload DirectionReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnDirectionReversed(payload)
	}
}
