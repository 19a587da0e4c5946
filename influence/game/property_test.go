package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ratel-online/influence/influence/action"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/influence/role"
	"github.com/stretchr/testify/require"
)

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		seats := 2 + int(seed)%5
		t.Run(fmt.Sprintf("seed_%d_players_%d", seed, seats), func(t *testing.T) {
			playRandomGame(t, seed, seats)
		})
	}
}

func playRandomGame(t *testing.T, seed int64, count int) {
	r := rand.New(rand.NewSource(seed))
	seats := make([]Seat, count)
	for i := range seats {
		seats[i] = Seat{ID: int64(i + 1), Name: names[i]}
	}
	g, err := New(seats, WithSeed(seed))
	require.NoError(t, err)

	for step := 0; step < 3000; step++ {
		playerID := int64(r.Intn(count) + 1)
		in := randomIntent(r, g, playerID, count)
		before := capture(g)
		wasOver := g.Over()

		changed, err := g.Apply(playerID, in)
		if err != nil || !changed {
			require.Equal(t, before, capture(g), "rejected %+v from %d changed the state", in, playerID)
		}
		if wasOver {
			require.False(t, changed)
		}
		requireInvariants(t, g)
	}
}

// randomIntent is usually a legal kind for playerID with random fields.
func randomIntent(r *rand.Rand, g *Game, playerID int64, count int) intent.Intent {
	kinds := g.LegalIntents(playerID)
	kind := intent.Kind(r.Intn(8) + 1)
	if len(kinds) > 0 && r.Intn(10) < 8 {
		kind = kinds[r.Intn(len(kinds))]
	}
	randomRole := func() string {
		return role.All[r.Intn(len(role.All))].String()
	}
	responses := []intent.Response{intent.Challenge, intent.Pass, intent.Block}

	in := intent.Intent{Kind: kind}
	switch kind {
	case intent.PerformAction:
		in.Action = action.All[r.Intn(len(action.All))].String()
		in.TargetID = int64(r.Intn(count + 1))
	case intent.ChallengeResponse, intent.BlockResponse:
		in.Response = responses[r.Intn(2)]
	case intent.ForeignAidResponse, intent.SmuggleGoodsResponse:
		in.Response = responses[1+r.Intn(2)]
	case intent.DeclareBlock:
		in.BlockType = randomRole()
		if r.Intn(2) == 0 {
			in.BlockType = intent.NoBlock
		}
	case intent.RevealCard:
		in.CardName = randomRole()
	case intent.ReturnExchangeCards:
		for i := r.Intn(3); i >= 0; i-- {
			in.KeptCards = append(in.KeptCards, randomRole())
		}
	}
	return in
}

func requireInvariants(t *testing.T, g *Game) {
	t.Helper()
	requireConserved(t, g)

	alive := 0
	for _, p := range g.players {
		require.GreaterOrEqual(t, p.coins, 0)
		require.Equal(t, len(p.hand) > 0, p.Alive())
		cards := len(p.hand) + len(p.revealed)
		if g.exchange != nil && g.exchange.PlayerID == p.id {
			require.Equal(t, StartingHand+action.ExchangeDraw, cards)
		} else {
			require.Equal(t, StartingHand, cards)
		}
		if p.Alive() {
			alive++
		}
	}

	require.True(t, g.players[g.current].Alive(), "cursor on an eliminated seat")
	require.Equal(t, alive == 1, g.Over())
	if g.phase == PhaseAction {
		require.Empty(t, g.passed)
		require.Nil(t, g.pending)
		require.Nil(t, g.block)
		require.Nil(t, g.reveal)
		require.Nil(t, g.exchange)
	}
	if g.phase == PhaseBlockChallenge {
		require.NotNil(t, g.block)
	}
	if g.phase == PhaseRevealCard {
		require.NotNil(t, g.reveal)
	}
}
