// Package event publishes engine events to process-wide listeners.
package event

// Listener receives every event kind.
type Listener interface {
	GameStartedListener
	ActionDeclaredListener
	CardRevealedListener
	PlayerEliminatedListener
	GameOverListener
}

// Subscribe registers listener with every emitter.
func Subscribe(listener Listener) {
	GameStarted.AddListener(listener)
	ActionDeclared.AddListener(listener)
	CardRevealed.AddListener(listener)
	PlayerEliminated.AddListener(listener)
	GameOver.AddListener(listener)
}
