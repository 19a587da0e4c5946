package state

import (
	"strings"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/state/game"
)

var states = map[consts.StateID]State{}

// pollInterval bounds how long a waiting or playing player blocks on input
// before the room state is checked again.
var pollInterval = consts.PollInterval

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateGame, &game.Game{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// SetPollInterval changes the input poll used by the waiting room and the game.
func SetPollInterval(d time.Duration) {
	pollInterval = d
	game.PollInterval = d
}

// Run drives the player through the lobby until the connection closes.
func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("player %s state machine panic: %v\n", player, err)
		}
	}()
	for player.IsOnline() {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsChanClosed {
				return
			}
			if e, ok := err.(consts.Error); ok && e.Exit {
				stateId = state.Exit(player)
			} else if !ok {
				log.Error(err)
				stateId = state.Exit(player)
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isLs(signal string) bool {
	signal = strings.ToLower(strings.TrimSpace(signal))
	return signal == "ls" || signal == "v"
}
