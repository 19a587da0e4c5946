package event

import "sync"

type DummyListener struct {
	mu               sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) receive(payload interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnGameStarted(payload GameStartedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnActionDeclared(payload ActionDeclaredPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardRevealed(payload CardRevealedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerEliminated(payload PlayerEliminatedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnGameOver(payload GameOverPayload) {
	l.receive(payload)
}
