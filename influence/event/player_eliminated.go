package event

import (
	"sync"

	"github.com/google/uuid"
)

var PlayerEliminated = &playerEliminatedEmitter{}

type PlayerEliminatedPayload struct {
	GameID     uuid.UUID
	PlayerName string
}

type PlayerEliminatedListener interface {
	OnPlayerEliminated(PlayerEliminatedPayload)
}

type playerEliminatedEmitter struct {
	mu        sync.RWMutex
	listeners []PlayerEliminatedListener
}

func (e *playerEliminatedEmitter) AddListener(listener PlayerEliminatedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *playerEliminatedEmitter) Emit(payload PlayerEliminatedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnPlayerEliminated(payload)
	}
}
