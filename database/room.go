package database

import (
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/game"
)

const roomType = "Influence"

type Room struct {
	sync.Mutex

	ID         int64      `json:"id"`
	State      int        `json:"state"`
	Players    int        `json:"players"`
	Creator    int64      `json:"creator"`
	ActiveTime time.Time  `json:"activeTime"`
	Game       *game.Game `json:"-"`
	Rounds     int        `json:"rounds"`
}

func (r *Room) Model() model.Room {
	return model.Room{
		ID:        r.ID,
		TypeDesc:  roomType,
		Players:   r.Players,
		State:     r.State,
		StateDesc: consts.RoomStates[r.State],
		Creator:   r.Creator,
	}
}

// Running reports whether a game is in progress.
func (room *Room) Running() bool {
	room.Lock()
	defer room.Unlock()
	return room.State == consts.RoomStateRunning
}

// removePlayer drops the player from the room and hands ownership to
// another member if needed. It reports whether the owner changed.
func (room *Room) removePlayer(player *Player) bool {
	if room == nil || player == nil {
		return false
	}
	room.ActiveTime = time.Now()
	ownerChanged := false
	playersIds := getRoomPlayers(room.ID)
	if _, ok := playersIds[player.ID]; ok {
		room.Players--
		player.RoomID = 0
		delete(playersIds, player.ID)
		if len(playersIds) > 0 && room.Creator == player.ID {
			for _, next := range RoomPlayers(room.ID) {
				room.Creator = next.ID
				ownerChanged = true
				break
			}
		}
	}
	if len(playersIds) == 0 {
		room.delete()
	}
	return ownerChanged
}

// Cancel deletes the room when it has been idle longer than idle or when no
// member is online. The caller holds the room lock.
func (room *Room) Cancel(idle time.Duration) {
	if room.ActiveTime.Add(idle).Before(time.Now()) {
		log.Infof("room %d is timeout %s, removed.\n", room.ID, idle)
		room.delete()
		return
	}
	living := false
	for id := range getRoomPlayers(room.ID) {
		if player := GetPlayer(id); player != nil && player.online {
			living = true
			break
		}
	}
	if !living {
		log.Infof("room %d is not living, removed.\n", room.ID)
		room.delete()
	}
}

// StartGame deals a new game for the current members. The caller holds the room lock.
func (room *Room) StartGame() error {
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	members := RoomPlayers(room.ID)
	seats := make([]game.Seat, 0, len(members))
	for _, player := range members {
		seats = append(seats, game.Seat{ID: player.ID, Name: player.Name})
	}
	g, err := game.New(seats)
	if err != nil {
		return err
	}
	room.Game = g
	room.State = consts.RoomStateRunning
	room.Rounds++
	room.ActiveTime = time.Now()
	log.Infof("room %d started game %s with %d players\n", room.ID, g.ID(), len(seats))
	room.broadcastState(EventGameStarted)
	return nil
}

// endGame announces the winner and puts the room back to waiting.
func (room *Room) endGame() {
	if winner, ok := room.Game.Winner(); ok {
		room.broadcast(fmt.Sprintf("%s wins! \n", winner.Name()))
	}
	room.Game = nil
	room.State = consts.RoomStateWaiting
}

func (room *Room) broadcast(msg string, exclude ...int64) {
	room.ActiveTime = time.Now()
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for playerId := range getRoomPlayers(room.ID) {
		if player := GetPlayer(playerId); player != nil && !excludeSet[playerId] {
			_ = player.WriteString(">> " + msg)
		}
	}
}

func (room *Room) delete() {
	if room != nil {
		rooms.Del(room.ID)
		roomPlayers.Del(room.ID)
		room.Game = nil
	}
}
