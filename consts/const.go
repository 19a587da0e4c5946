package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	MinPlayers = 2
	MaxPlayers = 6

	RoomStateWaiting = 1
	RoomStateRunning = 2

	// ModeText clients get rendered text, ModeJSON clients get snapshot objects.
	ModeText = 1
	ModeJSON = 2

	AuthTimeout  = 3 * time.Second
	PollInterval = time.Second
	ReapInterval = time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")
	ErrorsGamePlayersInvalid     = NewErr(1, false, "Game players invalid. ")
	ErrorsConfigInvalid          = NewErr(1, true, "Config invalid. ")

	ErrorsUnknownAction   = NewErr(2, false, "Unknown action. ")
	ErrorsUnknownRole     = NewErr(2, false, "Unknown role. ")
	ErrorsUnknownIntent   = NewErr(2, false, "Unknown intent. ")
	ErrorsIntentMalformed = NewErr(2, false, "Intent malformed. ")
	ErrorsRoleNames       = NewErr(2, false, "Role names must be 5 distinct non-empty names. ")

	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}
)
