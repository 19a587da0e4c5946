package game

import (
	"testing"

	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/influence/role"
	"github.com/stretchr/testify/require"
)

var names = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

// rig starts a game whose seats hold the given hands. Seat i has id i+1.
// The deck holds the remaining cards with top first, then the rest in role order.
func rig(t *testing.T, hands [][]role.Role, top ...role.Role) *Game {
	t.Helper()
	seats := make([]Seat, len(hands))
	for i := range hands {
		seats[i] = Seat{ID: int64(i + 1), Name: names[i]}
	}
	g, err := New(seats, WithSeed(1))
	require.NoError(t, err)

	remaining := map[role.Role]int{}
	for _, r := range role.All {
		remaining[r] = role.Copies
	}
	for i, hand := range hands {
		g.players[i].hand = append([]role.Role(nil), hand...)
		for _, r := range hand {
			remaining[r]--
		}
	}
	deck := append([]role.Role(nil), top...)
	for _, r := range top {
		remaining[r]--
	}
	for _, r := range role.All {
		require.GreaterOrEqual(t, remaining[r], 0, "too many %s", r)
		for n := 0; n < remaining[r]; n++ {
			deck = append(deck, r)
		}
	}
	g.deck = NewDeckOf(deck, g.rand)
	requireConserved(t, g)
	return g
}

func requireConserved(t *testing.T, g *Game) {
	t.Helper()
	total := g.deck.Size()
	for _, p := range g.players {
		total += len(p.hand) + len(p.revealed)
	}
	require.Equal(t, DeckSize, total)
}

func mustApply(t *testing.T, g *Game, playerID int64, in intent.Intent) {
	t.Helper()
	changed, err := g.Apply(playerID, in)
	require.NoError(t, err)
	require.True(t, changed, "%s from %d was not applied in %s", in.Kind, playerID, g.phase)
}

func perform(name string, target int64) intent.Intent {
	return intent.Intent{Kind: intent.PerformAction, Action: name, TargetID: target}
}

func challenge() intent.Intent {
	return intent.Intent{Kind: intent.ChallengeResponse, Response: intent.Challenge}
}

func pass() intent.Intent {
	return intent.Intent{Kind: intent.ChallengeResponse, Response: intent.Pass}
}

func declareBlock(blockType string) intent.Intent {
	return intent.Intent{Kind: intent.DeclareBlock, BlockType: blockType}
}

func blockResponse(response intent.Response) intent.Intent {
	return intent.Intent{Kind: intent.BlockResponse, Response: response}
}

func foreignAidResponse(response intent.Response) intent.Intent {
	return intent.Intent{Kind: intent.ForeignAidResponse, Response: response}
}

func reveal(card role.Role) intent.Intent {
	return intent.Intent{Kind: intent.RevealCard, CardName: card.String()}
}

func keep(cards ...role.Role) intent.Intent {
	return intent.Intent{Kind: intent.ReturnExchangeCards, KeptCards: role.Names(cards)}
}

// snapshot is a deep copy of every engine field, used to prove no-ops.
type snapshot struct {
	players  []Player
	deck     []role.Role
	current  int
	phase    Phase
	pending  *PendingAction
	block    *PendingBlock
	reveal   *RevealRequest
	passed   map[int64]bool
	exchange *ExchangeOffer
	winner   int64
	log      []string
}

func capture(g *Game) snapshot {
	s := snapshot{
		players: g.Players(),
		deck:    g.deck.Cards(),
		current: g.current,
		phase:   g.phase,
		passed:  map[int64]bool{},
		winner:  g.winner,
		log:     g.Log(),
	}
	for id, ok := range g.passed {
		s.passed[id] = ok
	}
	if g.pending != nil {
		pending := *g.pending
		s.pending = &pending
	}
	if g.block != nil {
		block := *g.block
		s.block = &block
	}
	if g.reveal != nil {
		reveal := *g.reveal
		s.reveal = &reveal
	}
	if g.exchange != nil {
		exchange := *g.exchange
		exchange.Options = append([]role.Role(nil), g.exchange.Options...)
		s.exchange = &exchange
	}
	return s
}
