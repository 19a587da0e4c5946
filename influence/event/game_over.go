package event

import (
	"sync"

	"github.com/google/uuid"
)

var GameOver = &gameOverEmitter{}

type GameOverPayload struct {
	GameID     uuid.UUID
	WinnerID   int64
	WinnerName string
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	mu        sync.RWMutex
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}
