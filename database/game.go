package database

import (
	"time"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/game"
	"github.com/ratel-online/influence/influence/intent"
)

const (
	EventGameStarted = "gameStarted"
	EventGameState   = "gameState"
	EventError       = "error"
)

// Envelope is what JSON clients receive for game traffic.
type Envelope struct {
	Event   string      `json:"event"`
	State   *game.State `json:"state,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Apply runs one intent against the room's game while holding the room
// lock, then broadcasts the new state if anything changed.
func (room *Room) Apply(player *Player, in intent.Intent) (bool, error) {
	room.Lock()
	defer room.Unlock()
	if room.Game == nil {
		return false, nil
	}
	changed, err := room.Game.Apply(player.ID, in)
	if err != nil || !changed {
		return false, err
	}
	room.ActiveTime = time.Now()
	room.broadcastState(EventGameState)
	if room.Game.Over() {
		room.endGame()
	}
	return true, nil
}

// Awaiting returns the intent kind the room's game expects from the player.
func (room *Room) Awaiting(playerID int64) intent.Kind {
	room.Lock()
	defer room.Unlock()
	if room.Game == nil {
		return 0
	}
	kind, _ := room.Game.Awaiting(playerID)
	return kind
}

// SendState writes the player's view of the current game.
func (room *Room) SendState(player *Player) error {
	room.Lock()
	defer room.Unlock()
	if room.Game == nil {
		return consts.ErrorsRoomInvalid
	}
	return player.WriteState(EventGameState, room.Game.ExtractState(player.ID))
}

// broadcastState sends every member its own redacted view. The caller holds the room lock.
func (room *Room) broadcastState(event string) {
	if room.Game == nil {
		return
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := GetPlayer(playerId); player != nil {
			_ = player.WriteState(event, room.Game.ExtractState(playerId))
		}
	}
}
