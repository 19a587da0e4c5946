package event

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ratel-online/influence/influence/role"
)

var CardRevealed = &cardRevealedEmitter{}

type CardRevealedPayload struct {
	GameID     uuid.UUID
	PlayerName string
	Role       role.Role
}

type CardRevealedListener interface {
	OnCardRevealed(CardRevealedPayload)
}

type cardRevealedEmitter struct {
	mu        sync.RWMutex
	listeners []CardRevealedListener
}

func (e *cardRevealedEmitter) AddListener(listener CardRevealedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardRevealedEmitter) Emit(payload CardRevealedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnCardRevealed(payload)
	}
}
