package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	constx "github.com/ratel-online/core/consts"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
)

var (
	title = color.New(color.FgHiWhite, color.Bold).SprintfFunc()
	owner = color.New(color.FgHiYellow).SprintfFunc()
)

// write sends object to JSON clients and msg to terminal clients.
func write(player *database.Player, msg string, object interface{}) error {
	if player.Mode == consts.ModeJSON {
		return player.WriteObject(object)
	}
	return player.WriteString(msg)
}

func Welcome(player *database.Player) error {
	msg := fmt.Sprintf("Hi %s, Welcome to influence online! \n", player.Name)
	return write(player, title(msg), model.Data{
		Code: constx.CodeWelcome,
		Msg:  msg,
	})
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Join\n")
	buf.WriteString("2.New\n")
	return write(player, buf.String(), model.Options{
		Data: model.Data{
			Code: constx.CodeHomeOptions,
			Msg:  buf.String(),
		},
		Options: []model.Option{
			{ID: 1, Name: "Join"},
			{ID: 2, Name: "New"},
		},
	})
}

func RoomList(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s\n", "ID", "Players", "State"))
	modelRooms := make([]model.Room, 0)
	for _, room := range database.GetRooms() {
		buf.WriteString(fmt.Sprintf("%-10d%-10d%-10s\n", room.ID, room.Players, consts.RoomStates[room.State]))
		modelRooms = append(modelRooms, room.Model())
	}
	return write(player, buf.String(), model.RoomList{
		Data: model.Data{
			Code: constx.CodeRoomList,
			Msg:  buf.String(),
		},
		Rooms: modelRooms,
	})
}

func RoomInfo(player *database.Player, room *database.Room) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room ID: %d, games played: %d\n", room.ID, room.Rounds))
	buf.WriteString(fmt.Sprintf("%-10s%-20s%-10s\n", "ID", "Name", "Title"))
	for _, member := range database.RoomPlayers(room.ID) {
		role := "player"
		if member.ID == room.Creator {
			role = owner("owner")
		}
		buf.WriteString(fmt.Sprintf("%-10d%-20s%-10s\n", member.ID, member.Name, role))
	}
	if room.Creator == player.ID {
		buf.WriteString(fmt.Sprintf("Type start to play once %d to %d players are in.\n", consts.MinPlayers, consts.MaxPlayers))
	}
	return player.WriteString(buf.String())
}

func Join(player *database.Player, room *database.Room) {
	database.Broadcast(room.ID, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.Players))
}

func Exit(player *database.Player, room *database.Room) {
	database.Broadcast(room.ID, fmt.Sprintf("%s exited room! room current has %d players\n", player.Name, room.Players))
}

func OwnerChange(room *database.Room) {
	if newOwner := database.GetPlayer(room.Creator); newOwner != nil {
		database.Broadcast(room.ID, fmt.Sprintf("%s become new owner\n", newOwner.Name))
	}
}
