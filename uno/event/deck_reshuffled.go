package event

type DeckReshuffledPayload struct {
	DeckSize int
}

type DeckReshuffledListener interface {
	OnDeckReshuffled(DeckReshuffledPayload)
}

type DeckReshuffledEmitter struct {
	listeners []DeckReshuffledListener
}

func (e *DeckReshuffledEmitter) AddListener(listener DeckReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DeckReshuffledEmitter) Emit(payload DeckReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckReshuffled(payload)
	}
}
