package state

import (
	"fmt"
	"strings"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/render"
)

type waiting struct{}

func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, consts.ErrorsExist
	}
	_ = render.RoomInfo(player, room)
	access, err := waitingForStart(player, room)
	if err != nil {
		return 0, err
	}
	if access {
		return consts.StateGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		if database.LeaveRoom(room.ID, player.ID) {
			render.OwnerChange(room)
		}
		render.Exit(player, room)
	}
	return consts.StateHome
}

func waitingForStart(player *database.Player, room *database.Room) (bool, error) {
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(pollInterval)
		if err != nil && err != consts.ErrorsTimeout {
			return false, err
		}
		if room.Running() {
			return true, nil
		}
		signal = strings.TrimSpace(signal)
		switch lower := strings.ToLower(signal); {
		case lower == "":
		case isLs(lower):
			_ = render.RoomInfo(player, room)
		case lower == "start" || lower == "s":
			if room.Creator != player.ID {
				_ = player.WriteString("Only the owner can start the game. \n")
				continue
			}
			room.Lock()
			err = room.StartGame()
			room.Unlock()
			if err != nil {
				_ = player.WriteError(err)
				continue
			}
			return true, nil
		default:
			player.BroadcastChat(fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}
