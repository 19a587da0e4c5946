// Package game is the rules engine of one influence game: the deck, the
// seats, and the phase machine that resolves actions, challenges, blocks
// and reveals.
//
// A Game is not safe for concurrent use. Callers serialize intents, the
// server does it with the room lock.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/action"
	"github.com/ratel-online/influence/influence/event"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/influence/role"
)

const (
	StartingCoins = 2
	StartingHand  = 2
)

type PendingAction struct {
	Action   action.Action `json:"action"`
	ActorID  int64         `json:"actorId"`
	TargetID int64         `json:"targetId,omitempty"`
	Claim    role.Role     `json:"claim,omitempty"`
}

type PendingBlock struct {
	BlockerID int64     `json:"blockerId"`
	Role      role.Role `json:"role"`
}

type RevealRequest struct {
	PlayerID int64        `json:"playerId"`
	Reason   RevealReason `json:"reason"`
}

// ExchangeOffer is the pool an exchanging player picks Keep cards from.
type ExchangeOffer struct {
	PlayerID int64       `json:"playerId"`
	Options  []role.Role `json:"options,omitempty"`
	Keep     int         `json:"keep"`
}

type Game struct {
	id       uuid.UUID
	players  []*Player
	deck     *Deck
	rand     *rand.Rand
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

type Option func(*Game)

func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rand = r
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// New deals a game for the seats in order. The first seat moves first.
func New(seats []Seat, opts ...Option) (*Game, error) {
	if len(seats) < consts.MinPlayers || len(seats) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	g := &Game{
		id:     uuid.New(),
		passed: map[int64]bool{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.deck = NewDeck(g.rand)

	seen := map[int64]bool{}
	names := make([]string, 0, len(seats))
	for _, seat := range seats {
		if seat.ID == 0 || seen[seat.ID] {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		seen[seat.ID] = true
		player := newPlayer(seat)
		player.coins = StartingCoins
		player.give(g.deck.Draw(StartingHand)...)
		g.players = append(g.players, player)
		names = append(names, seat.Name)
	}
	g.setPhase(PhaseAction)
	g.logf("Game started with %d players", len(seats))

	event.GameStarted.Emit(event.GameStartedPayload{
		GameID:      g.id,
		PlayerNames: names,
	})
	return g, nil
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Over() bool {
	return g.phase == PhaseGameOver
}

// Winner returns the last living player once the game is over.
func (g *Game) Winner() (Player, bool) {
	if p := g.player(g.winner); p != nil {
		return p.clone(), true
	}
	return Player{}, false
}

// Current returns the seat whose turn it is.
func (g *Game) Current() Player {
	return g.players[g.current].clone()
}

func (g *Game) Players() []Player {
	players := make([]Player, len(g.players))
	for i, p := range g.players {
		players[i] = p.clone()
	}
	return players
}

func (g *Game) Player(id int64) (Player, bool) {
	if p := g.player(id); p != nil {
		return p.clone(), true
	}
	return Player{}, false
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) Log() []string {
	return append([]string(nil), g.log...)
}

// Apply routes an intent from playerID to its entry point. changed is false
// when the intent was illegal in the current state; err is set only for
// malformed input.
func (g *Game) Apply(playerID int64, in intent.Intent) (changed bool, err error) {
	switch in.Kind {
	case intent.PerformAction:
		return g.PerformAction(playerID, in.Action, in.TargetID)
	case intent.ChallengeResponse:
		return g.ChallengeResponse(playerID, in.Response)
	case intent.DeclareBlock:
		return g.DeclareBlock(playerID, in.BlockType)
	case intent.BlockResponse:
		return g.BlockResponse(playerID, in.Response)
	case intent.ForeignAidResponse, intent.SmuggleGoodsResponse:
		return g.ForeignAidResponse(playerID, in.Response)
	case intent.RevealCard:
		return g.RevealCard(playerID, in.CardName)
	case intent.ReturnExchangeCards:
		return g.ReturnExchangeCards(playerID, in.KeptCards)
	}
	return false, consts.ErrorsUnknownIntent
}

// LegalIntents lists the intent kinds playerID may send in the current phase.
func (g *Game) LegalIntents(playerID int64) []intent.Kind {
	switch g.phase {
	case PhaseAction:
		if g.players[g.current].id == playerID {
			return []intent.Kind{intent.PerformAction}
		}
	case PhaseChallenge:
		if g.canRespond(playerID, g.pending.ActorID) {
			return []intent.Kind{intent.ChallengeResponse}
		}
	case PhaseDeclareBlock:
		if g.pending.TargetID == playerID {
			return []intent.Kind{intent.DeclareBlock}
		}
	case PhaseBlockDeclarationPeriod:
		if g.canRespond(playerID, g.pending.ActorID) {
			return []intent.Kind{intent.ForeignAidResponse, intent.SmuggleGoodsResponse}
		}
	case PhaseBlockChallenge:
		if g.canRespond(playerID, g.block.BlockerID) {
			return []intent.Kind{intent.BlockResponse}
		}
	case PhaseRevealCard:
		if g.reveal.PlayerID == playerID {
			return []intent.Kind{intent.RevealCard}
		}
	case PhaseExchangeCards:
		if g.exchange.PlayerID == playerID {
			return []intent.Kind{intent.ReturnExchangeCards}
		}
	case PhaseGameOver:
	}
	return nil
}

// Awaiting returns the first legal intent kind for playerID.
func (g *Game) Awaiting(playerID int64) (intent.Kind, bool) {
	kinds := g.LegalIntents(playerID)
	if len(kinds) == 0 {
		return 0, false
	}
	return kinds[0], true
}

func (g *Game) player(id int64) *Player {
	if id == 0 {
		return nil
	}
	for _, p := range g.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	g.passed = map[int64]bool{}
}

func (g *Game) logf(format string, args ...interface{}) {
	g.log = append(g.log, fmt.Sprintf(format, args...))
}
