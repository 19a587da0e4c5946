package database

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/influence/consts"
)

var roomIds int64 = 0
var players = hashmap.New()
var rooms = hashmap.New()
var roomPlayers = hashmap.New()
var roomIdle = 24 * time.Hour

// StartReaper removes idle or abandoned rooms every consts.ReapInterval.
func StartReaper(idle time.Duration) {
	roomIdle = idle
	async.Async(func() {
		for {
			time.Sleep(consts.ReapInterval)
			Reap(idle)
		}
	})
}

func Reap(idle time.Duration) {
	for _, room := range GetRooms() {
		room.Lock()
		room.Cancel(idle)
		room.Unlock()
	}
}

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
		Mode:  consts.ModeText,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func CreateRoom(creator int64) *Room {
	room := &Room{
		ID:         atomic.AddInt64(&roomIds, 1),
		State:      consts.RoomStateWaiting,
		Creator:    creator,
		ActiveTime: time.Now(),
	}
	rooms.Set(room.ID, room)
	roomPlayers.Set(room.ID, map[int64]bool{})
	return room
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

func GetRoom(roomId int64) *Room {
	if v, ok := rooms.Get(roomId); ok {
		return v.(*Room)
	}
	return nil
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func getRoomPlayers(roomId int64) map[int64]bool {
	if v, ok := roomPlayers.Get(roomId); ok {
		return v.(map[int64]bool)
	}
	return map[int64]bool{}
}

// RoomPlayers returns the members of a room, owner first, then by id.
func RoomPlayers(roomId int64) []*Player {
	room := GetRoom(roomId)
	list := make([]*Player, 0)
	for id := range getRoomPlayers(roomId) {
		if player := GetPlayer(id); player != nil {
			list = append(list, player)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if room != nil && (list[i].ID == room.Creator) != (list[j].ID == room.Creator) {
			return list[i].ID == room.Creator
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func JoinRoom(roomId, playerId int64) error {
	player := GetPlayer(playerId)
	if player == nil {
		return consts.ErrorsExist
	}
	room := GetRoom(roomId)
	if room == nil {
		return consts.ErrorsRoomInvalid
	}
	room.Lock()
	defer room.Unlock()
	if room.State == consts.RoomStateRunning {
		return consts.ErrorsJoinFailForRoomRunning
	}
	if room.Players >= consts.MaxPlayers {
		return consts.ErrorsRoomPlayersIsFull
	}
	playersIds := getRoomPlayers(roomId)
	if !playersIds[playerId] {
		playersIds[playerId] = true
		room.Players++
	}
	player.RoomID = roomId
	room.ActiveTime = time.Now()
	return nil
}

// LeaveRoom removes the player and reports whether ownership moved.
func LeaveRoom(roomId, playerId int64) (ownerChanged bool) {
	room := GetRoom(roomId)
	if room == nil {
		return false
	}
	room.Lock()
	defer room.Unlock()
	return room.removePlayer(GetPlayer(playerId))
}

// Broadcast sends msg to every member. The caller must not hold the room lock.
func Broadcast(roomId int64, msg string, exclude ...int64) {
	room := GetRoom(roomId)
	if room == nil {
		return
	}
	room.Lock()
	defer room.Unlock()
	room.broadcast(msg, exclude...)
}
