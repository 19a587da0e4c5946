package event

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ratel-online/influence/influence/action"
)

var ActionDeclared = &actionDeclaredEmitter{}

type ActionDeclaredPayload struct {
	GameID     uuid.UUID
	PlayerName string
	Action     action.Action
	TargetName string
}

type ActionDeclaredListener interface {
	OnActionDeclared(ActionDeclaredPayload)
}

type actionDeclaredEmitter struct {
	mu        sync.RWMutex
	listeners []ActionDeclaredListener
}

func (e *actionDeclaredEmitter) AddListener(listener ActionDeclaredListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *actionDeclaredEmitter) Emit(payload ActionDeclaredPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnActionDeclared(payload)
	}
}
