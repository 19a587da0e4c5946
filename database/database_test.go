package database_test

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/database"
	"github.com/ratel-online/influence/influence/game"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect registers a player whose output is drained and discarded.
func connect(t *testing.T, id int64, name string) *database.Player {
	t.Helper()
	server, client := net.Pipe()
	go func() { _, _ = io.Copy(io.Discard, client) }()
	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
	})
	conn := network.Wrapper(protocol.NewTcpReadWriteCloser(server))
	return database.Connected(conn, &model.AuthInfo{ID: id, Name: name})
}

func TestRoomMembership(t *testing.T) {
	alice := connect(t, 101, "alice")
	bob := connect(t, 102, "bob")
	carol := connect(t, 103, "carol")

	room := database.CreateRoom(carol.ID)
	require.NoError(t, database.JoinRoom(room.ID, carol.ID))
	require.NoError(t, database.JoinRoom(room.ID, alice.ID))
	require.NoError(t, database.JoinRoom(room.ID, bob.ID))
	assert.Equal(t, 3, room.Players)
	assert.Equal(t, room.ID, alice.RoomID)

	t.Run("owner_is_seated_first", func(t *testing.T) {
		members := database.RoomPlayers(room.ID)
		require.Len(t, members, 3)
		assert.Equal(t, []int64{carol.ID, alice.ID, bob.ID}, []int64{members[0].ID, members[1].ID, members[2].ID})
	})

	t.Run("owner_leaving_hands_over", func(t *testing.T) {
		assert.True(t, database.LeaveRoom(room.ID, carol.ID))
		assert.Equal(t, alice.ID, room.Creator)
		assert.Equal(t, int64(0), carol.RoomID)
		assert.Equal(t, 2, room.Players)
	})

	t.Run("member_leaving_keeps_owner", func(t *testing.T) {
		assert.False(t, database.LeaveRoom(room.ID, bob.ID))
		assert.Equal(t, alice.ID, room.Creator)
	})

	t.Run("last_member_leaving_deletes_room", func(t *testing.T) {
		database.LeaveRoom(room.ID, alice.ID)
		assert.Nil(t, database.GetRoom(room.ID))
	})
}

func TestJoinRoom(t *testing.T) {
	t.Run("unknown_room", func(t *testing.T) {
		player := connect(t, 201, "alice")
		assert.Equal(t, consts.ErrorsRoomInvalid, database.JoinRoom(-1, player.ID))
	})

	t.Run("unknown_player", func(t *testing.T) {
		room := database.CreateRoom(202)
		assert.Equal(t, consts.ErrorsExist, database.JoinRoom(room.ID, 202))
	})

	t.Run("full_room", func(t *testing.T) {
		room := database.CreateRoom(210)
		for id := int64(210); id < 210+consts.MaxPlayers; id++ {
			connect(t, id, "player")
			require.NoError(t, database.JoinRoom(room.ID, id))
		}
		connect(t, 299, "late")
		assert.Equal(t, consts.ErrorsRoomPlayersIsFull, database.JoinRoom(room.ID, 299))
	})
}

func TestStartGame(t *testing.T) {
	alice := connect(t, 301, "alice")
	bob := connect(t, 302, "bob")
	room := database.CreateRoom(alice.ID)
	require.NoError(t, database.JoinRoom(room.ID, alice.ID))

	room.Lock()
	err := room.StartGame()
	room.Unlock()
	assert.Equal(t, consts.ErrorsGamePlayersInvalid, err)
	assert.Equal(t, consts.RoomStateWaiting, room.State)
	assert.False(t, room.Running())

	require.NoError(t, database.JoinRoom(room.ID, bob.ID))
	room.Lock()
	require.NoError(t, room.StartGame())
	room.Unlock()
	assert.Equal(t, consts.RoomStateRunning, room.State)
	assert.True(t, room.Running())
	require.NotNil(t, room.Game)
	assert.Equal(t, game.PhaseAction, room.Game.Phase())
	assert.Equal(t, alice.ID, room.Game.Current().ID())

	t.Run("running_room_refuses_joins", func(t *testing.T) {
		carol := connect(t, 303, "carol")
		assert.Equal(t, consts.ErrorsJoinFailForRoomRunning, database.JoinRoom(room.ID, carol.ID))
	})

	t.Run("apply_serializes_intents", func(t *testing.T) {
		assert.Equal(t, intent.PerformAction, room.Awaiting(alice.ID))
		assert.Equal(t, intent.Kind(0), room.Awaiting(bob.ID))

		changed, err := room.Apply(bob, intent.Intent{Kind: intent.PerformAction, Action: "income"})
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = room.Apply(alice, intent.Intent{Kind: intent.PerformAction, Action: "income"})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, bob.ID, room.Game.Current().ID())

		_, err = room.Apply(bob, intent.Intent{Kind: intent.PerformAction, Action: "embezzle"})
		assert.Equal(t, consts.ErrorsUnknownAction, err)
	})

	t.Run("send_state", func(t *testing.T) {
		assert.NoError(t, room.SendState(alice))
	})
}

func TestReap(t *testing.T) {
	alice := connect(t, 401, "alice")
	stale := database.CreateRoom(alice.ID)
	require.NoError(t, database.JoinRoom(stale.ID, alice.ID))
	stale.ActiveTime = time.Now().Add(-2 * time.Hour)

	fresh := database.CreateRoom(alice.ID)
	require.NoError(t, database.JoinRoom(fresh.ID, alice.ID))

	empty := database.CreateRoom(402)

	database.Reap(time.Hour)

	assert.Nil(t, database.GetRoom(stale.ID))
	assert.NotNil(t, database.GetRoom(fresh.ID))
	assert.Nil(t, database.GetRoom(empty.ID), "rooms with nobody online are removed")
}
