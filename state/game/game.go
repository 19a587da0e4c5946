package game

import (
	"strings"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/render"
)

// PollInterval bounds how long a player blocks on input before the room
// is checked for the end of the game.
var PollInterval = consts.PollInterval

type Game struct{}

func (g *Game) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomID)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsExist)
	}
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		if !room.Running() || database.GetRoom(room.ID) == nil {
			return consts.StateWaiting, nil
		}
		signal, err := player.AskForStringWithoutTransaction(PollInterval)
		if err == consts.ErrorsTimeout {
			continue
		}
		if err != nil {
			return 0, err
		}
		if err = handle(room, player, signal); err != nil {
			if err == consts.ErrorsExist || err == consts.ErrorsChanClosed {
				return 0, err
			}
			_ = player.WriteError(err)
		}
	}
}

func (*Game) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomID)
	if room != nil {
		if database.LeaveRoom(room.ID, player.ID) {
			render.OwnerChange(room)
		}
		render.Exit(player, room)
	}
	return consts.StateHome
}

// handle turns one line of input into an intent and applies it. Illegal
// intents change nothing and are not answered.
func handle(room *database.Room, player *database.Player, signal string) error {
	signal = strings.TrimSpace(signal)
	if signal == "" {
		return nil
	}
	if lower := strings.ToLower(signal); lower == "ls" || lower == "v" {
		return room.SendState(player)
	}
	in, err := intent.Parse([]byte(signal), room.Awaiting(player.ID))
	if err != nil {
		return err
	}
	_, err = room.Apply(player, in)
	return err
}
