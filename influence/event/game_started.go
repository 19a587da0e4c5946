package event

import (
	"sync"

	"github.com/google/uuid"
)

var GameStarted = &gameStartedEmitter{}

type GameStartedPayload struct {
	GameID      uuid.UUID
	PlayerNames []string
}

type GameStartedListener interface {
	OnGameStarted(GameStartedPayload)
}

type gameStartedEmitter struct {
	mu        sync.RWMutex
	listeners []GameStartedListener
}

func (e *gameStartedEmitter) AddListener(listener GameStartedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *gameStartedEmitter) Emit(payload GameStartedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnGameStarted(payload)
	}
}
