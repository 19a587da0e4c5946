package state

import (
	"strconv"
	"strings"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/render"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	err := render.RoomList(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	roomId, err := strconv.ParseInt(strings.TrimSpace(signal), 10, 64)
	if err != nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	room := database.GetRoom(roomId)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	err = database.JoinRoom(roomId, player.ID)
	if err != nil {
		return 0, player.WriteError(err)
	}
	render.Join(player, room)
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
