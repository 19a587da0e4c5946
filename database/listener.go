package database

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/influence/influence/event"
)

func init() {
	event.Subscribe(logListener{})
}

// logListener writes every engine event to the server log.
type logListener struct{}

func (logListener) OnGameStarted(payload event.GameStartedPayload) {
	log.Infof("game %s started, players %v\n", payload.GameID, payload.PlayerNames)
}

func (logListener) OnActionDeclared(payload event.ActionDeclaredPayload) {
	if payload.TargetName != "" {
		log.Infof("game %s: %s declared %s on %s\n", payload.GameID, payload.PlayerName, payload.Action, payload.TargetName)
		return
	}
	log.Infof("game %s: %s declared %s\n", payload.GameID, payload.PlayerName, payload.Action)
}

func (logListener) OnCardRevealed(payload event.CardRevealedPayload) {
	log.Infof("game %s: %s revealed %s\n", payload.GameID, payload.PlayerName, payload.Role)
}

func (logListener) OnPlayerEliminated(payload event.PlayerEliminatedPayload) {
	log.Infof("game %s: %s eliminated\n", payload.GameID, payload.PlayerName)
}

func (logListener) OnGameOver(payload event.GameOverPayload) {
	log.Infof("game %s over, winner %s[%d]\n", payload.GameID, payload.WinnerName, payload.WinnerID)
}
